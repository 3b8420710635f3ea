package cli

import (
	"errors"
	"fmt"

	"huertohogar/internal/apperror"
	"huertohogar/internal/dto"
	"huertohogar/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// demoProductos is the demo catalog the mobile app ships with.
func demoProductos() []model.Producto {
	return []model.Producto{
		{
			Nombre:      "Tomates Orgánicos",
			Descripcion: "Tomates frescos cultivados sin pesticidas",
			Precio:      decimal.NewFromInt(2500),
			Categoria:   "Verduras",
			Origen:      "Región Metropolitana",
			Disponible:  true,
			Stock:       50,
		},
		{
			Nombre:      "Lechugas Hidropónicas",
			Descripcion: "Lechugas frescas cultivadas en sistema hidropónico",
			Precio:      decimal.NewFromInt(1800),
			Categoria:   "Verduras",
			Origen:      "Valparaíso",
			Disponible:  true,
			Stock:       30,
		},
		{
			Nombre:      "Manzanas Fuji",
			Descripcion: "Manzanas dulces y crujientes",
			Precio:      decimal.NewFromInt(3200),
			Categoria:   "Frutas",
			Origen:      "Región del Maule",
			Disponible:  true,
			Stock:       100,
		},
		{
			Nombre:      "Zanahorias Orgánicas",
			Descripcion: "Zanahorias frescas sin químicos",
			Precio:      decimal.NewFromInt(1500),
			Categoria:   "Verduras",
			Origen:      "Concepción",
			Disponible:  true,
			Stock:       75,
		},
		{
			Nombre:      "Fresas Premium",
			Descripcion: "Fresas dulces de temporada",
			Precio:      decimal.NewFromInt(4500),
			Categoria:   "Frutas",
			Origen:      "Puerto Montt",
			Disponible:  true,
			Stock:       25,
		},
		{
			Nombre:      "Papas Nativas",
			Descripcion: "Papas chilenas de variedades ancestrales",
			Precio:      decimal.NewFromInt(2000),
			Categoria:   "Verduras",
			Origen:      "Chiloé",
			Disponible:  true,
			Stock:       60,
		},
	}
}

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga el catálogo de demostración y el usuario demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			for _, p := range demoProductos() {
				producto := p
				if _, err := app.Catalogo.Crear(ctx, &producto); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "producto %q creado\n", producto.Nombre)
			}

			_, err := app.Cuentas.Registrar(ctx, dto.RegistroRequest{
				Nombre:    "Usuario",
				Apellido:  "Demo",
				Email:     "demo@huertohogar.cl",
				Password:  "123456",
				Telefono:  "+56912345678",
				Direccion: "Av. Principal 123",
				Ciudad:    "Santiago",
				Region:    "Región Metropolitana",
			})
			if errors.Is(err, apperror.ErrEmailRegistrado) {
				fmt.Fprintln(cmd.OutOrStdout(), "usuario demo ya existía")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "usuario demo@huertohogar.cl creado (password 123456)")
			return nil
		},
	}
}
