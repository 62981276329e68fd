package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ihelperdrone/droneops/app/cli/output"
	"github.com/ihelperdrone/droneops/app/domain"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load fixture data into the backend",
	Long: `Load a YAML fixture file into the backend for development or demo
environments. Records are created through the same API the commands use.

Fixture format:
  areas:
    - name: Encosta Norte
      latitude: -23.5505
      longitude: -46.6333
      radius: 500
  drones:
    - name: Falcao-1
      model: DJI M300
      battery: 100

Examples:
  droneops seed fixtures/demo.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type seedFile struct {
	Areas []struct {
		Name        string  `yaml:"name"`
		Description string  `yaml:"description"`
		Status      string  `yaml:"status"`
		Latitude    float64 `yaml:"latitude"`
		Longitude   float64 `yaml:"longitude"`
		Radius      float64 `yaml:"radius"`
	} `yaml:"areas"`
	Drones []struct {
		Name           string  `yaml:"name"`
		Model          string  `yaml:"model"`
		Status         string  `yaml:"status"`
		Latitude       float64 `yaml:"latitude"`
		Longitude      float64 `yaml:"longitude"`
		Battery        int     `yaml:"battery"`
		Capacity       float64 `yaml:"capacity"`
		OperatingHours string  `yaml:"operating_hours"`
	} `yaml:"drones"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	printer := newPrinter()
	path := args[0]

	raw, err := os.ReadFile(path)
	if err != nil {
		return &output.CLIError{
			Summary:  fmt.Sprintf("could not read fixture file: %s", path),
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	var fixture seedFile
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return &output.CLIError{
			Summary:  "invalid fixture file",
			Detail:   err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	if len(fixture.Areas) == 0 && len(fixture.Drones) == 0 {
		printer.Warning("Fixture file has no records")
		return nil
	}

	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	printer.Header("Seeding Backend")

	for _, a := range fixture.Areas {
		status := a.Status
		if status == "" {
			status = "ATIVO"
		}
		created, err := app.Areas.Create(ctx, &domain.RiskArea{
			Name:           a.Name,
			Description:    a.Description,
			Status:         status,
			Latitude:       a.Latitude,
			Longitude:      a.Longitude,
			CoverageRadius: a.Radius,
		})
		if err != nil {
			return wrapAPIError(err, "risk area")
		}
		printer.Success("Area %s (id %d)", created.Name, created.ID)
	}

	for _, d := range fixture.Drones {
		status := d.Status
		if status == "" {
			status = "DISPONIVEL"
		}
		created, err := app.Drones.Create(ctx, &domain.Drone{
			Name:            d.Name,
			Model:           d.Model,
			Status:          status,
			Latitude:        d.Latitude,
			Longitude:       d.Longitude,
			Battery:         d.Battery,
			PayloadCapacity: d.Capacity,
			OperatingHours:  d.OperatingHours,
		})
		if err != nil {
			return wrapAPIError(err, "drone")
		}
		printer.Success("Drone %s (id %d)", created.Name, created.ID)
	}

	printer.Info("Seeded %d area(s), %d drone(s)", len(fixture.Areas), len(fixture.Drones))
	return nil
}
