package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mapq/mapq/config"
	"github.com/mapq/mapq/mapzen"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *mapzen.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mapq",
	Short: "Query geocoding, routing and address-normalization APIs",
	Long: `mapq is a CLI for Mapzen-style geospatial APIs. It can geocode place
names, autocomplete partial input, reverse-geocode coordinates, compute
routes between two points, and parse or expand postal addresses.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata for the version command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON responses")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints build metadata without touching config or the network.
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mapq %s (built %s)\n", version, buildTime)
	},
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	client = mapzen.NewClient(cfg.Mapzen.APIKey, logger,
		mapzen.WithVersion(cfg.Mapzen.Version),
		mapzen.WithSearchHost(cfg.Mapzen.SearchHost),
		mapzen.WithRouteHost(cfg.Mapzen.RouteHost),
		mapzen.WithPostalHost(cfg.Mapzen.PostalHost),
		mapzen.WithTimeout(time.Duration(cfg.Mapzen.TimeoutSeconds)*time.Second),
	)

	if cfg.Mapzen.CacheMode == mapzen.CacheMiss {
		client.UseMissCache()
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// parseLatLon parses a "lat,lon" argument.
func parseLatLon(s string) (mapzen.LatLon, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mapzen.LatLon{}, fmt.Errorf("invalid coordinate %q (expected lat,lon)", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return mapzen.LatLon{}, fmt.Errorf("invalid latitude in %q: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return mapzen.LatLon{}, fmt.Errorf("invalid longitude in %q: %w", s, err)
	}

	return mapzen.LatLon{Lat: lat, Lon: lon}, nil
}

// printJSON pretty-prints a value to stdout.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func jsonOutput(cmd *cobra.Command) bool {
	asJSON, _ := cmd.Flags().GetBool("json")
	return asJSON
}

// printFeatures renders geocoding results as a human-readable list.
func printFeatures(features []mapzen.Feature) {
	if len(features) == 0 {
		fmt.Println("No places found.")
		return
	}

	fmt.Printf("\nFound %d places:\n", len(features))
	fmt.Println(strings.Repeat("-", 80))

	for _, feature := range features {
		point := feature.Point()
		fmt.Printf("• %s (%.5f, %.5f)\n", feature.Properties.Label, point.Lat, point.Lon)
		if feature.Properties.Layer != "" {
			fmt.Printf("  Layer: %s", feature.Properties.Layer)
			if feature.Properties.Source != "" {
				fmt.Printf("  Source: %s", feature.Properties.Source)
			}
			if feature.Properties.Confidence > 0 {
				fmt.Printf("  Confidence: %.2f", feature.Properties.Confidence)
			}
			fmt.Println()
		}
	}
}
