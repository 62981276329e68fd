package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Manage raised alerts",
}

var alertsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List alerts",
	Args:  cobra.NoArgs,
	RunE:  runAlertsList,
}

var alertsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show an alert",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlertsGet,
}

var alertsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an alert",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlertsDelete,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsListCmd, alertsGetCmd, alertsDeleteCmd)

	alertsListCmd.Flags().Bool("json", false, "output as JSON")
	alertsListCmd.Flags().String("severity", "", "filter by severity")
}

func runAlertsList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	severity, _ := cmd.Flags().GetString("severity")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	alerts, err := app.Alerts.List(ctx)
	if err != nil {
		return wrapAPIError(err, "alerts")
	}

	if severity != "" {
		filtered := alerts[:0]
		for _, a := range alerts {
			if a.Severity == severity {
				filtered = append(filtered, a)
			}
		}
		alerts = filtered
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(alerts)
	}

	printer := newPrinter()
	if len(alerts) == 0 {
		printer.Info("No alerts")
		return nil
	}

	table := output.NewTable([]string{"ID", "TYPE", "SEVERITY", "STATUS", "AREA", "WHEN"})
	for _, a := range alerts {
		table.AddRow([]string{
			fmt.Sprintf("%d", a.ID),
			a.Type,
			a.Severity,
			printer.StatusBadge(a.Status) + " " + a.Status,
			areaName(a.Area),
			a.OccurredAt,
		})
	}
	table.Render()
	printer.Info("Total: %d alert(s)", len(alerts))
	return nil
}

func runAlertsGet(cmd *cobra.Command, args []string) error {
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

	alert, err := app.Alerts.GetByID(ctx, id)
	if err != nil {
		return wrapAPIError(err, "alert")
	}

	printer := newPrinter()
	printer.Header(fmt.Sprintf("Alert %d (%s)", alert.ID, alert.Type))
	printer.Print("Severity:    %s", alert.Severity)
	printer.Print("Status:      %s %s", printer.StatusBadge(alert.Status), alert.Status)
	printer.Print("When:        %s", alert.OccurredAt)
	printer.Print("Area:        %s", areaName(alert.Area))
	if alert.Drone != nil {
		printer.Print("Drone:       %s", alert.Drone.Name)
	}
	if alert.User != nil {
		printer.Print("Handled by:  %s", alert.User.Name)
	}
	printer.Print("Description: %s", orDash(alert.Description))
	return nil
}

func runAlertsDelete(cmd *cobra.Command, args []string) error {
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

	if err := app.Alerts.Delete(ctx, id); err != nil {
		return wrapAPIError(err, "alert")
	}

	newPrinter().Success("Alert %d removed", id)
	return nil
}
