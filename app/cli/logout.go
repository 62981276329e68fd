package cli

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	Long: `Revoke the identity provider session and clear the local session cache.

The local cache is cleared even when the provider revocation fails, so the
client never stays logged in locally after a logout.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Session.Logout(ctx); err != nil {
		printer.Warning("Provider sign-out failed: %v", err)
	}

	printer.Success("Logged out")
	return nil
}
