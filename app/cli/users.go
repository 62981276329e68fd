package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
	"github.com/ihelperdrone/droneops/app/domain"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE:  runUsersList,
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersGet,
}

var usersSetLevelCmd = &cobra.Command{
	Use:   "set-level <id> <level>",
	Short: "Change a user's access level",
	Long: `Change a user's access level.

Valid levels: OPERADOR, USER, ADMIN.

Examples:
  droneops users set-level 42 ADMIN`,
	Args: cobra.ExactArgs(2),
	RunE: runUsersSetLevel,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersDelete,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersSetLevelCmd, usersDeleteCmd)

	usersListCmd.Flags().Bool("json", false, "output as JSON")
}

func runUsersList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	users, err := app.Users.List(ctx)
	if err != nil {
		return wrapAPIError(err, "users")
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	}

	printer := newPrinter()
	if len(users) == 0 {
		printer.Info("No users registered")
		return nil
	}

	table := output.NewTable([]string{"ID", "NAME", "EMAIL", "LEVEL", "STATUS"})
	for _, u := range users {
		table.AddRow([]string{
			fmt.Sprintf("%d", u.ID),
			u.Name,
			u.Email,
			string(u.AccessLevel),
			printer.StatusBadge(string(u.Status)) + " " + string(u.Status),
		})
	}
	table.Render()
	printer.Info("Total: %d user(s)", len(users))
	return nil
}

func runUsersGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := app.Users.GetByID(ctx, id)
	if err != nil {
		return wrapAPIError(err, "user")
	}

	printer := newPrinter()
	printer.Header(user.Name)
	printer.Print("Email:        %s", user.Email)
	printer.Print("Access level: %s", user.AccessLevel)
	printer.Print("Status:       %s %s", printer.StatusBadge(string(user.Status)), user.Status)
	printer.Print("Created:      %s", orDash(user.CreatedAt))
	return nil
}

func runUsersSetLevel(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	level := domain.AccessLevel(args[1])
	if err := level.Validate(); err != nil {
		return &output.CLIError{
			Summary:    err.Error(),
			Suggestion: "Valid levels: OPERADOR, USER, ADMIN",
			ExitCode:   output.ExitUsageError,
		}
	}

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := app.Users.GetByID(ctx, id)
	if err != nil {
		return wrapAPIError(err, "user")
	}

	if err := user.ChangeAccessLevel(level); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	updated, err := app.Users.Update(ctx, id, user)
	if err != nil {
		return wrapAPIError(err, "user")
	}

	newPrinter().Success("User %s is now %s", updated.Name, updated.AccessLevel)
	return nil
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Users.Delete(ctx, id); err != nil {
		return wrapAPIError(err, "user")
	}

	newPrinter().Success("User %d removed", id)
	return nil
}
