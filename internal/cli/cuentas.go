package cli

import (
	"fmt"

	"huertohogar/internal/dto"

	"github.com/spf13/cobra"
)

func newRegistrarCmd(app *App) *cobra.Command {
	var req dto.RegistroRequest

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Registra una cuenta nueva",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Cuentas.Registrar(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cuenta creada: %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Nombre, "nombre", "", "nombre")
	cmd.Flags().StringVar(&req.Apellido, "apellido", "", "apellido")
	cmd.Flags().StringVar(&req.Email, "email", "", "email (único)")
	cmd.Flags().StringVar(&req.Password, "password", "", "contraseña (mínimo 6 caracteres)")
	cmd.Flags().StringVar(&req.Telefono, "telefono", "", "teléfono")
	cmd.Flags().StringVar(&req.Direccion, "direccion", "", "dirección")
	cmd.Flags().StringVar(&req.Ciudad, "ciudad", "", "ciudad")
	cmd.Flags().StringVar(&req.Region, "region", "", "región")
	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verifica credenciales (email y contraseña, coincidencia exacta)",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Cuentas.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if u == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "credenciales inválidas")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bienvenido %s %s (%s)\n", u.Nombre, u.Apellido, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	return cmd
}
