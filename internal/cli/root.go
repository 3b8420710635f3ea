// Package cli wires the services into an offline command-line surface. There
// is no network API anywhere in the system: every command talks to the
// services in-process, over the embedded store.
package cli

import (
	"huertohogar/internal/service"

	"github.com/spf13/cobra"
)

// App carries the composed services into the commands.
type App struct {
	Catalogo service.CatalogoService
	Cuentas  service.CuentaService
	Pedidos  service.PedidoService
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "huertohogar",
		Short:         "HuertoHogar: catálogo, cuentas y pedidos de la verdulería, sin conexión",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSeedCmd(app),
		newProductosCmd(app),
		newRegistrarCmd(app),
		newLoginCmd(app),
		newPedidosCmd(app),
	)
	return root
}
