package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
)

var signageCmd = &cobra.Command{
	Use:   "signage",
	Short: "Manage road signage",
}

var signageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List signage",
	Args:  cobra.NoArgs,
	RunE:  runSignageList,
}

var signageGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a signage record",
	Args:  cobra.ExactArgs(1),
	RunE:  runSignageGet,
}

var signageDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a signage record",
	Args:  cobra.ExactArgs(1),
	RunE:  runSignageDelete,
}

func init() {
	rootCmd.AddCommand(signageCmd)
	signageCmd.AddCommand(signageListCmd, signageGetCmd, signageDeleteCmd)

	signageListCmd.Flags().Bool("json", false, "output as JSON")
}

func runSignageList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	records, err := app.Signage.List(ctx)
	if err != nil {
		return wrapAPIError(err, "signage")
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	printer := newPrinter()
	if len(records) == 0 {
		printer.Info("No signage registered")
		return nil
	}

	table := output.NewTable([]string{"ID", "TYPE", "STATUS", "AREA", "INSTALLED"})
	for _, s := range records {
		table.AddRow([]string{
			fmt.Sprintf("%d", s.ID),
			s.Type,
			printer.StatusBadge(s.Status) + " " + s.Status,
			areaName(s.Area),
			orDash(s.InstalledAt),
		})
	}
	table.Render()
	printer.Info("Total: %d record(s)", len(records))
	return nil
}

func runSignageGet(cmd *cobra.Command, args []string) error {
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

	record, err := app.Signage.GetByID(ctx, id)
	if err != nil {
		return wrapAPIError(err, "signage")
	}

	printer := newPrinter()
	printer.Header(fmt.Sprintf("Signage %d (%s)", record.ID, record.Type))
	printer.Print("Status:      %s %s", printer.StatusBadge(record.Status), record.Status)
	printer.Print("Area:        %s", areaName(record.Area))
	printer.Print("Installed:   %s", orDash(record.InstalledAt))
	printer.Print("Description: %s", orDash(record.Description))
	return nil
}

func runSignageDelete(cmd *cobra.Command, args []string) error {
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

	if err := app.Signage.Delete(ctx, id); err != nil {
		return wrapAPIError(err, "signage")
	}

	newPrinter().Success("Signage %d removed", id)
	return nil
}
