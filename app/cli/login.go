package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Authenticate and cache the session locally",
	Long: `Authenticate against the identity provider with the password method.

On success the session token and the backend profile are cached locally, so
subsequent commands run authenticated without logging in again.

Examples:
  droneops login user@example.com                 # Prompt for the password
  droneops login user@example.com -p 'secret'     # Password from flag`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("password", "p", "", "password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	email := args[0]

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

	ok, msg := app.Session.Login(ctx, email, password)
	if !ok {
		return &output.CLIError{
			Summary:  msg,
			ExitCode: output.ExitAuthError,
		}
	}

	snap := app.Session.Snapshot()
	if snap.User != nil {
		printer.Success("Logged in as %s (%s)", printer.Bold(snap.User.Name), snap.User.AccessLevel)
	} else {
		printer.Success("Logged in as %s", printer.Bold(email))
		printer.Warning("Backend profile not confirmed yet; it will sync on the next command")
	}
	return nil
}

func promptPassword(printer *output.Printer) (string, error) {
	printer.Print("Password:")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", &output.CLIError{
			Summary:  "could not read password from stdin",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
