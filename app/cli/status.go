package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ihelperdrone/droneops/app/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a fleet overview",
	Long: `Display a summary of the fleet: drones by status, open alerts,
active sensors and monitored risk areas. The four resources are fetched
concurrently.

Examples:
  droneops status`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	var (
		drones  []domain.Drone
		areas   []domain.RiskArea
		sensors []domain.Sensor
		alerts  []domain.Alert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		drones, err = app.Drones.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		areas, err = app.Areas.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sensors, err = app.Sensors.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = app.Alerts.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return wrapAPIError(err, "fleet status")
	}

	printer := newPrinter()

	printer.Header("Fleet")
	droneStates := countBy(drones, func(d domain.Drone) string { return d.Status })
	printer.Print("Drones: %d", len(drones))
	for state, n := range droneStates {
		printer.Print("  %s %-12s %d", printer.StatusBadge(state), state, n)
	}

	printer.Header("Alerts")
	open := 0
	for _, a := range alerts {
		if a.Status != "RESOLVIDO" {
			open++
		}
	}
	printer.Print("Total: %d, open: %d", len(alerts), open)

	printer.Header("Coverage")
	activeSensors := 0
	for _, s := range sensors {
		if s.Status == "ATIVO" {
			activeSensors++
		}
	}
	printer.Print("Risk areas: %d", len(areas))
	printer.Print("Sensors:    %d (%d active)", len(sensors), activeSensors)

	fmt.Println()
	if open > 0 {
		printer.Warning("%d alert(s) need attention", open)
	} else {
		printer.Success("No open alerts")
	}
	return nil
}

func countBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}
