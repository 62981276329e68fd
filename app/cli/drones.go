package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
	"github.com/ihelperdrone/droneops/app/domain"
)

var dronesCmd = &cobra.Command{
	Use:   "drones",
	Short: "Manage the drone fleet",
}

var dronesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered drones",
	Args:  cobra.NoArgs,
	RunE:  runDronesList,
}

var dronesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a drone",
	Args:  cobra.ExactArgs(1),
	RunE:  runDronesGet,
}

var dronesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a drone",
	Long: `Register a new drone in the fleet.

Examples:
  droneops drones create --name "Falcao-1" --model "DJI M300" \
    --lat -23.5505 --lon -46.6333 --battery 100 --capacity 2.5`,
	Args: cobra.NoArgs,
	RunE: runDronesCreate,
}

var dronesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a drone",
	Args:  cobra.ExactArgs(1),
	RunE:  runDronesDelete,
}

func init() {
	rootCmd.AddCommand(dronesCmd)
	dronesCmd.AddCommand(dronesListCmd, dronesGetCmd, dronesCreateCmd, dronesDeleteCmd)

	dronesListCmd.Flags().Bool("json", false, "output as JSON")

	dronesCreateCmd.Flags().String("name", "", "drone name")
	dronesCreateCmd.Flags().String("model", "", "drone model")
	dronesCreateCmd.Flags().String("status", "DISPONIVEL", "initial status")
	dronesCreateCmd.Flags().Float64("lat", 0, "latitude")
	dronesCreateCmd.Flags().Float64("lon", 0, "longitude")
	dronesCreateCmd.Flags().Int("battery", 100, "battery percentage")
	dronesCreateCmd.Flags().Float64("capacity", 0, "payload capacity in kg")
	dronesCreateCmd.Flags().String("operating-hours", "08:00-18:00", "operating hours window")
	_ = dronesCreateCmd.MarkFlagRequired("name")
	_ = dronesCreateCmd.MarkFlagRequired("model")
}

func runDronesList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	drones, err := app.Drones.List(ctx)
	if err != nil {
		return wrapAPIError(err, "drones")
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(drones)
	}

	printer := newPrinter()
	if len(drones) == 0 {
		printer.Info("No drones registered")
		return nil
	}

	table := output.NewTable([]string{"ID", "NAME", "MODEL", "STATUS", "BATTERY", "POSITION"})
	for _, d := range drones {
		table.AddRow([]string{
			fmt.Sprintf("%d", d.ID),
			d.Name,
			d.Model,
			printer.StatusBadge(d.Status) + " " + d.Status,
			fmt.Sprintf("%d%%", d.Battery),
			formatCoord(d.Latitude, d.Longitude),
		})
	}
	table.Render()
	printer.Info("Total: %d drone(s)", len(drones))
	return nil
}

func runDronesGet(cmd *cobra.Command, args []string) error {
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

	drone, err := app.Drones.GetByID(ctx, id)
	if err != nil {
		return wrapAPIError(err, "drone")
	}

	printer := newPrinter()
	printer.Header(drone.Name)
	printer.Print("Model:           %s", drone.Model)
	printer.Print("Status:          %s %s", printer.StatusBadge(drone.Status), drone.Status)
	printer.Print("Battery:         %d%%", drone.Battery)
	printer.Print("Position:        %s", formatCoord(drone.Latitude, drone.Longitude))
	printer.Print("Capacity:        %.2f kg", drone.PayloadCapacity)
	printer.Print("Operating hours: %s", orDash(drone.OperatingHours))
	printer.Print("Last maintenance: %s", orDash(drone.LastMaintenanceAt))
	return nil
}

func runDronesCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	model, _ := cmd.Flags().GetString("model")
	status, _ := cmd.Flags().GetString("status")
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	battery, _ := cmd.Flags().GetInt("battery")
	capacity, _ := cmd.Flags().GetFloat64("capacity")
	hours, _ := cmd.Flags().GetString("operating-hours")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	created, err := app.Drones.Create(ctx, &domain.Drone{
		Name:            name,
		Model:           model,
		Status:          status,
		Latitude:        lat,
		Longitude:       lon,
		Battery:         battery,
		PayloadCapacity: capacity,
		OperatingHours:  hours,
	})
	if err != nil {
		return wrapAPIError(err, "drone")
	}

	newPrinter().Success("Drone %s created (id %d)", created.Name, created.ID)
	return nil
}

func runDronesDelete(cmd *cobra.Command, args []string) error {
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

	if err := app.Drones.Delete(ctx, id); err != nil {
		return wrapAPIError(err, "drone")
	}

	newPrinter().Success("Drone %d removed", id)
	return nil
}
