// Package cli contains all commands for the droneops CLI.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ihelperdrone/droneops/app/cli/output"
	"github.com/ihelperdrone/droneops/app/config"
	"github.com/ihelperdrone/droneops/app/di"
	"github.com/ihelperdrone/droneops/app/domain"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "droneops",
	Short: "Rescue drone fleet monitoring CLI",
	Long: `droneops is a terminal client for the rescue drone fleet monitoring
platform. It authenticates against the identity provider, keeps a local
session, and queries the fleet backend.

Example usage:
  droneops login user@example.com     # Authenticate and cache the session
  droneops whoami                     # Show the current session
  droneops drones list                # List registered drones
  droneops alerts list                # List raised alerts
  droneops status                     # Fleet overview`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr, ok := err.(*output.CLIError); ok {
			output.NewPrinter().FormatError(cliErr)
			os.Exit(cliErr.ExitCode)
		}
	}
	return err
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .droneops.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads the config file and environment variables and sets up the
// logger. Environment variables use the DRONEOPS_ prefix; the bare names the
// library reads (KRATOS_PUBLIC_URL, API_BASE_URL) work as a fallback.
func initConfig() error {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".droneops")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/droneops")
	}

	v.SetEnvPrefix("DRONEOPS")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("kratos_public_url", os.Getenv("KRATOS_PUBLIC_URL"))
	v.SetDefault("api_base_url", getEnvOrDefault("API_BASE_URL", "http://localhost:8080/api"))
	v.SetDefault("data_dir", os.Getenv("DRONEOPS_DATA_DIR"))
	v.SetDefault("default_access_level", getEnvOrDefault("DEFAULT_ACCESS_LEVEL", string(domain.AccessLevelOperator)))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg = &config.Config{
		LogLevel:           v.GetString("log_level"),
		KratosPublicURL:    v.GetString("kratos_public_url"),
		APIBaseURL:         v.GetString("api_base_url"),
		DataDir:            v.GetString("data_dir"),
		DefaultAccessLevel: domain.AccessLevel(v.GetString("default_access_level")),
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	if cfg.KratosPublicURL == "" {
		return &output.CLIError{
			Summary:    "identity provider URL is not configured",
			Suggestion: "Set DRONEOPS_KRATOS_PUBLIC_URL or add kratos_public_url to .droneops.yaml",
			ExitCode:   output.ExitConfigError,
		}
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolving config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "droneops")
	}

	if err := cfg.Validate(); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitConfigError,
		}
	}

	logLevel := slog.LevelInfo
	if verbose || cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	logger.Debug("configuration loaded",
		"kratos_public_url", cfg.KratosPublicURL,
		"api_base_url", cfg.APIBaseURL,
		"data_dir", cfg.DataDir,
	)

	return nil
}

// newApp builds and starts the application container: the persisted session
// is restored before the command body runs.
func newApp(ctx context.Context) (*di.Container, error) {
	app, err := di.NewContainer(cfg)
	if err != nil {
		return nil, err
	}
	app.Start(ctx)
	return app, nil
}

func newPrinter() *output.Printer {
	return output.NewPrinter()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
