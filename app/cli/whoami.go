package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/domain"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Display the current session state, identity and backend profile.

Examples:
  droneops whoami            # Human-readable session summary
  droneops whoami --json     # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	snap := app.Session.Snapshot()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(whoamiJSON(snap))
	}

	printer := newPrinter()
	printer.Header("Session")
	printer.Print("State:  %s", string(snap.State))

	if snap.Identity != nil {
		printer.Print("Email:  %s", snap.Identity.Email)
		printer.Print("ID:     %s", snap.Identity.ID)
		if snap.Identity.Verified {
			printer.Print("Email verified: yes")
		} else {
			printer.Print("Email verified: no")
		}
	}

	if snap.User != nil {
		printer.Header("Profile")
		printer.Print("Name:         %s", snap.User.Name)
		printer.Print("Access level: %s", snap.User.AccessLevel)
		printer.Print("Status:       %s %s", printer.StatusBadge(string(snap.User.Status)), snap.User.Status)
		if snap.User.ID != 0 {
			printer.Print("User ID:      %d", snap.User.ID)
		}
	}

	if !snap.IsAuthenticated() && snap.User == nil {
		printer.Print("Not logged in")
	}

	return nil
}

func whoamiJSON(snap domain.Session) map[string]interface{} {
	result := map[string]interface{}{
		"state": snap.State,
	}
	if snap.Identity != nil {
		result["identity"] = snap.Identity
	}
	if snap.User != nil {
		result["profile"] = snap.User
	}
	return result
}
