package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihelperdrone/droneops/app/cli/output"
	"github.com/ihelperdrone/droneops/app/domain"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Manage monitored risk areas",
}

var areasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List risk areas",
	Args:  cobra.NoArgs,
	RunE:  runAreasList,
}

var areasGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a risk area",
	Args:  cobra.ExactArgs(1),
	RunE:  runAreasGet,
}

var areasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a risk area",
	Long: `Register a new monitored risk area.

Examples:
  droneops areas create --name "Encosta Norte" --lat -23.5505 --lon -46.6333 \
    --radius 500 --description "Deslizamento recorrente"`,
	Args: cobra.NoArgs,
	RunE: runAreasCreate,
}

var areasDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a risk area",
	Args:  cobra.ExactArgs(1),
	RunE:  runAreasDelete,
}

func init() {
	rootCmd.AddCommand(areasCmd)
	areasCmd.AddCommand(areasListCmd, areasGetCmd, areasCreateCmd, areasDeleteCmd)

	areasListCmd.Flags().Bool("json", false, "output as JSON")

	areasCreateCmd.Flags().String("name", "", "area name")
	areasCreateCmd.Flags().String("description", "", "description")
	areasCreateCmd.Flags().String("status", "ATIVO", "initial status")
	areasCreateCmd.Flags().Float64("lat", 0, "latitude")
	areasCreateCmd.Flags().Float64("lon", 0, "longitude")
	areasCreateCmd.Flags().Float64("radius", 0, "coverage radius in meters")
	_ = areasCreateCmd.MarkFlagRequired("name")
}

func runAreasList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	areas, err := app.Areas.List(ctx)
	if err != nil {
		return wrapAPIError(err, "risk areas")
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(areas)
	}

	printer := newPrinter()
	if len(areas) == 0 {
		printer.Info("No risk areas registered")
		return nil
	}

	table := output.NewTable([]string{"ID", "NAME", "STATUS", "POSITION", "RADIUS"})
	for _, a := range areas {
		table.AddRow([]string{
			fmt.Sprintf("%d", a.ID),
			a.Name,
			printer.StatusBadge(a.Status) + " " + a.Status,
			formatCoord(a.Latitude, a.Longitude),
			fmt.Sprintf("%.0f m", a.CoverageRadius),
		})
	}
	table.Render()
	printer.Info("Total: %d area(s)", len(areas))
	return nil
}

func runAreasGet(cmd *cobra.Command, args []string) error {
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

	area, err := app.Areas.GetByID(ctx, id)
	if err != nil {
		return wrapAPIError(err, "risk area")
	}

	printer := newPrinter()
	printer.Header(area.Name)
	printer.Print("Status:      %s %s", printer.StatusBadge(area.Status), area.Status)
	printer.Print("Position:    %s", formatCoord(area.Latitude, area.Longitude))
	printer.Print("Radius:      %.0f m", area.CoverageRadius)
	printer.Print("Description: %s", orDash(area.Description))
	return nil
}

func runAreasCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	radius, _ := cmd.Flags().GetFloat64("radius")

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	created, err := app.Areas.Create(ctx, &domain.RiskArea{
		Name:           name,
		Description:    description,
		Status:         status,
		Latitude:       lat,
		Longitude:      lon,
		CoverageRadius: radius,
	})
	if err != nil {
		return wrapAPIError(err, "risk area")
	}

	newPrinter().Success("Risk area %s created (id %d)", created.Name, created.ID)
	return nil
}

func runAreasDelete(cmd *cobra.Command, args []string) error {
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

	if err := app.Areas.Delete(ctx, id); err != nil {
		return wrapAPIError(err, "risk area")
	}

	newPrinter().Success("Risk area %d removed", id)
	return nil
}
