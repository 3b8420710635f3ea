package cli

import (
	"fmt"

	"huertohogar/internal/model"

	"github.com/spf13/cobra"
)

func newProductosCmd(app *App) *cobra.Command {
	var buscar, categoria string
	var soloDisponibles bool

	cmd := &cobra.Command{
		Use:   "productos",
		Short: "Lista el catálogo; admite búsqueda por texto y filtro por categoría",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				productos []model.Producto
				err       error
			)
			switch {
			case buscar != "":
				productos, err = app.Catalogo.Buscar(ctx, buscar)
			case soloDisponibles:
				productos, err = app.Catalogo.Disponibles(ctx)
			default:
				productos, err = app.Catalogo.FiltrarPorCategoria(ctx, categoria)
			}
			if err != nil {
				return err
			}

			if len(productos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "sin productos")
				return nil
			}
			for _, p := range productos {
				disp := "disponible"
				if !p.Disponible {
					disp = "no disponible"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-28s $%s  %-10s stock=%d  %s\n",
					p.ID, p.Nombre, p.Precio.StringFixed(0), p.Categoria, p.Stock, disp)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&buscar, "buscar", "", "texto a buscar en nombre o descripción")
	cmd.Flags().StringVar(&categoria, "categoria", model.CategoriaTodos, "categoría exacta (Todos = sin filtro)")
	cmd.Flags().BoolVar(&soloDisponibles, "disponibles", false, "solo productos disponibles con stock")
	return cmd
}
