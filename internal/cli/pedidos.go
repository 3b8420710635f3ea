package cli

import (
	"fmt"
	"strconv"
	"strings"

	"huertohogar/internal/dto"
	"huertohogar/internal/service"
	"huertohogar/internal/uistate"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newPedidosCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pedidos",
		Short: "Crea, consulta y cancela pedidos",
	}
	cmd.AddCommand(
		newPedidoCrearCmd(app),
		newPedidoListarCmd(app),
		newPedidoDetalleCmd(app),
		newPedidoCancelarCmd(app),
		newPedidoEstadoCmd(app),
	)
	return cmd
}

func newPedidoCrearCmd(app *App) *cobra.Command {
	var email, direccion, pago string
	var items []string

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Arma un carrito y lo convierte en un pedido",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			usuario, err := app.Cuentas.ObtenerPorEmail(ctx, email)
			if err != nil {
				return err
			}
			if usuario == nil {
				return fmt.Errorf("no existe una cuenta con email %q", email)
			}

			sesion := service.NewSesion()
			sesion.Iniciar(usuario)
			defer sesion.Cerrar()

			carrito := sesion.Carrito()
			for _, linea := range items {
				id, cantidad, err := parseItem(linea)
				if err != nil {
					return err
				}
				producto, err := app.Catalogo.ObtenerPorID(ctx, id)
				if err != nil {
					return err
				}
				if producto == nil {
					return fmt.Errorf("producto %s no existe", id)
				}
				carrito.Agregar(*producto, cantidad)
			}

			estado := uistate.Loading[uuid.UUID]()
			pedidoID, err := app.Pedidos.CrearPedido(ctx, dto.CrearPedidoRequest{
				UsuarioID:        usuario.ID,
				Items:            carrito.Items(),
				DireccionEntrega: direccion,
				MetodoPago:       pago,
			})
			if err != nil {
				estado = uistate.Error[uuid.UUID](err.Error())
			} else {
				estado = uistate.Success(pedidoID)
			}

			out := cmd.OutOrStdout()
			estado.Match(
				func() {},
				func() { fmt.Fprintln(out, "procesando…") },
				func(id uuid.UUID) {
					fmt.Fprintf(out, "pedido %s creado, total $%s\n", id, carrito.Total().StringFixed(0))
					carrito.Vaciar()
				},
				func(mensaje string) { fmt.Fprintf(out, "no se pudo crear el pedido: %s\n", mensaje) },
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "usuario", "", "email de la cuenta que compra")
	cmd.Flags().StringSliceVar(&items, "item", nil, "línea productoID:cantidad (repetible)")
	cmd.Flags().StringVar(&direccion, "direccion", "", "dirección de entrega")
	cmd.Flags().StringVar(&pago, "pago", "Efectivo", "método de pago")
	return cmd
}

func parseItem(linea string) (uuid.UUID, int, error) {
	parts := strings.SplitN(linea, ":", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("item %q: id inválido", linea)
	}
	cantidad := 1
	if len(parts) == 2 {
		cantidad, err = strconv.Atoi(parts[1])
		if err != nil {
			return uuid.Nil, 0, fmt.Errorf("item %q: cantidad inválida", linea)
		}
	}
	return id, cantidad, nil
}

func newPedidoListarCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista los pedidos de una cuenta, el más reciente primero",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			usuario, err := app.Cuentas.ObtenerPorEmail(ctx, email)
			if err != nil {
				return err
			}
			if usuario == nil {
				return fmt.Errorf("no existe una cuenta con email %q", email)
			}
			pedidos, err := app.Pedidos.ListarPorUsuario(ctx, usuario.ID)
			if err != nil {
				return err
			}
			if len(pedidos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sin pedidos")
				return nil
			}
			for _, p := range pedidos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  $%s  %s  %s\n",
					p.ID, p.CreatedAt.Format("2006-01-02 15:04"), p.Total.StringFixed(0), p.Estado, p.DireccionEntrega)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "usuario", "", "email de la cuenta")
	return cmd
}

func newPedidoDetalleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detalle <pedidoID>",
		Short: "Muestra las líneas de un pedido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			pedido, err := app.Pedidos.ObtenerPorID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if pedido == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "pedido no encontrado")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pedido %s  %s  total $%s\n", pedido.ID, pedido.Estado, pedido.Total.StringFixed(0))
			for _, d := range pedido.Detalles {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-28s x%d  $%s  = $%s\n",
					d.NombreProducto, d.Cantidad, d.PrecioUnitario.StringFixed(0), d.Subtotal.StringFixed(0))
			}
			return nil
		},
	}
}

func newPedidoCancelarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelar <pedidoID>",
		Short: "Cancela un pedido (idempotente)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			if err := app.Pedidos.CancelarPedido(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "pedido cancelado")
			return nil
		},
	}
}

func newPedidoEstadoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "estado <pedidoID> <estado>",
		Short: "Cambia el estado de un pedido (escritura directa, sin validación de transición)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("id inválido: %w", err)
			}
			if err := app.Pedidos.ActualizarEstado(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "estado actualizado a %q\n", args[1])
			return nil
		},
	}
}
