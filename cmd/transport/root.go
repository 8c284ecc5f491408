package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/transitkit/opendata-go/internal/config"
	"github.com/transitkit/opendata-go/pkg/transport"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transport",
		Short: "Query the transport.opendata.ch API",
		Long: `transport runs location, connection and stationboard queries against
the Swiss public transport open-data API and prints the raw JSON payload.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("base-url", "", "API root (default from config)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout (default from config)")
	rootCmd.PersistentFlags().String("log-level", "", "zerolog level (default from config)")

	rootCmd.AddCommand(newLocationsCmd(), newConnectionsCmd(), newStationboardCmd())
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the config file, or over the environment when no file is given
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.LoadFromEnv()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		config.WithBaseURL(baseURL)(cfg)
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		config.WithHTTPTimeout(timeout)(cfg)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		config.WithLogLevel(level)(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.InitializeLogging()
	return cfg, nil
}

// runner owns the client of one command invocation
type runner struct {
	client *transport.Client
	wait   time.Duration
}

func newRunner(cmd *cobra.Command) (*runner, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return &runner{
		client: cfg.NewClient(),
		// Leave the HTTP client room to report its own timeout first
		wait: cfg.HTTPTimeout + 5*time.Second,
	}, nil
}

// print waits for the single result of a call and writes its raw body
func (r *runner) print(cmd *cobra.Command, results <-chan transport.Result) error {
	select {
	case result := <-results:
		if result.Err != nil {
			return result.Err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(result.Body))
		return err
	case <-time.After(r.wait):
		return fmt.Errorf("no response after %s", r.wait)
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}
}

func parseModes(cmd *cobra.Command) ([]transport.TransportMode, error) {
	raw, _ := cmd.Flags().GetStringSlice("mode")
	var modes []transport.TransportMode
	for _, value := range raw {
		mode, err := transport.ParseTransportMode(value)
		if err != nil {
			return nil, transport.NewParameterError("mode", err.Error())
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetInt(name)
	return &value
}

func optionalBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetBool(name)
	return &value
}

func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("mode", nil, "transport modes, e.g. bus,ec_ic,tramway_underground")
}
