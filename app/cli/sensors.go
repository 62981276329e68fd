package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Manage field sensors",
}

var sensorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sensors",
	Args:  cobra.NoArgs,
	RunE:  runSensorsList,
}

var sensorsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a sensor",
	Args:  cobra.ExactArgs(1),
	RunE:  runSensorsGet,
}

var sensorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a sensor",
	Args:  cobra.ExactArgs(1),
	RunE:  runSensorsDelete,
}

func init() {
	rootCmd.AddCommand(sensorsCmd)
	sensorsCmd.AddCommand(sensorsListCmd, sensorsGetCmd, sensorsDeleteCmd)

	sensorsListCmd.Flags().Bool("json", false, "output as JSON")
}

func runSensorsList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	sensors, err := app.Sensors.List(ctx)
	if err != nil {
		return wrapAPIError(err, "sensors")
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sensors)
	}

	printer := newPrinter()
	if len(sensors) == 0 {
		printer.Info("No sensors registered")
		return nil
	}

	table := output.NewTable([]string{"ID", "TYPE", "UNIT", "STATUS", "INTERVAL", "AREA"})
	for _, s := range sensors {
		table.AddRow([]string{
			fmt.Sprintf("%d", s.ID),
			s.Type,
			s.MeasurementUnit,
			printer.StatusBadge(s.Status) + " " + s.Status,
			fmt.Sprintf("%ds", s.ReadingInterval),
			areaName(s.Area),
		})
	}
	table.Render()
	printer.Info("Total: %d sensor(s)", len(sensors))
	return nil
}

func runSensorsGet(cmd *cobra.Command, args []string) error {
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

	sensor, err := app.Sensors.GetByID(ctx, id)
	if err != nil {
		return wrapAPIError(err, "sensor")
	}

	printer := newPrinter()
	printer.Header(fmt.Sprintf("Sensor %d (%s)", sensor.ID, sensor.Type))
	printer.Print("Status:      %s %s", printer.StatusBadge(sensor.Status), sensor.Status)
	printer.Print("Unit:        %s", sensor.MeasurementUnit)
	printer.Print("Interval:    %ds", sensor.ReadingInterval)
	printer.Print("Area:        %s", areaName(sensor.Area))
	printer.Print("Installed:   %s", orDash(sensor.InstalledAt))
	printer.Print("Description: %s", orDash(sensor.Description))
	return nil
}

func runSensorsDelete(cmd *cobra.Command, args []string) error {
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

	if err := app.Sensors.Delete(ctx, id); err != nil {
		return wrapAPIError(err, "sensor")
	}

	newPrinter().Success("Sensor %d removed", id)
	return nil
}
