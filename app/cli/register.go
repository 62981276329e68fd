package cli

import (
	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
	"github.com/ihelperdrone/droneops/app/domain"
)

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account and sign in",
	Long: `Register a new account with the identity provider.

When the provider issues a session on registration the new account is signed
in immediately and a default backend profile is created for it.

Examples:
  droneops register user@example.com --name "Maria Silva"`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringP("name", "n", "", "display name")
	registerCmd.Flags().StringP("password", "p", "", "password (prompted when omitted)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	email := args[0]
	name, _ := cmd.Flags().GetString("name")

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = promptPassword(printer)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	ok, msg := app.Session.Register(ctx, name, email, password)
	if !ok {
		return &output.CLIError{
			Summary:  msg,
			ExitCode: output.ExitAuthError,
		}
	}

	snap := app.Session.Snapshot()
	if snap.State == domain.AuthStateAuthenticated {
		printer.Success("Account created, logged in as %s", printer.Bold(email))
	} else {
		printer.Success("Account created")
		printer.Info("Verify your email before logging in")
	}
	return nil
}
