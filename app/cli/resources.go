package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ihelperdrone/droneops/app/cli/output"
	"github.com/ihelperdrone/droneops/app/domain"
	"github.com/ihelperdrone/droneops/app/driver/rest"
)

// parseID parses a numeric resource id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, &output.CLIError{
			Summary:  fmt.Sprintf("invalid id: %s", arg),
			ExitCode: output.ExitUsageError,
		}
	}
	return id, nil
}

// wrapAPIError converts backend failures into structured CLI errors.
func wrapAPIError(err error, resource string) error {
	var apiErr *rest.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	cliErr := &output.CLIError{
		Summary:  fmt.Sprintf("%s request failed", resource),
		Detail:   apiErr.Error(),
		ExitCode: output.ExitAPIError,
	}
	switch apiErr.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		cliErr.Suggestion = "Log in first: droneops login <email>"
		cliErr.ExitCode = output.ExitAuthError
	case http.StatusNotFound:
		cliErr.Summary = fmt.Sprintf("%s not found", resource)
	}
	return cliErr
}

// orDash substitutes a dash for empty table cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// areaName renders the bound risk area of a resource, or a dash.
func areaName(area *domain.RiskArea) string {
	if area == nil {
		return "-"
	}
	return area.Name
}

func formatCoord(lat, lon float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lon)
}
