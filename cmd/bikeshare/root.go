package main

import (
	"fmt"
	"go-bikeshare/internal/config"
	"go-bikeshare/internal/logging"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"go-bikeshare/internal/source"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	cfg       *config.Config
	logger    *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore city bike-share trip data",
	Long: `bikeshare computes descriptive statistics over the Chicago, New York City
and Washington bike-share trip datasets, optionally filtered by month and day.

Example usage:
  bikeshare stats --city chicago --month june --day friday
  bikeshare rows --city washington --pages 2
  bikeshare cities
  bikeshare serve --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bikeshare.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (overrides config)")
}

// initConfig loads configuration and builds the logger
func initConfig(cmd *cobra.Command) error {
	var err error

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	format := cfg.Logging.Format
	if logFormat != "" {
		format = logFormat
	}
	logger = logging.New(logging.Config{Level: level, Format: format, Writer: cmd.ErrOrStderr()})

	logger.Debug("configuration loaded",
		"data_dir", cfg.Data.Dir,
		"sources", len(cfg.Sources),
		"cache_size", cfg.Cache.Size,
	)
	return nil
}

// newService wires configured sources into a query service
func newService() (*pipeline.Service, error) {
	specs, err := cfg.SourceSpecs()
	if err != nil {
		return nil, err
	}
	registry, err := source.BuildRegistry(specs)
	if err != nil {
		return nil, fmt.Errorf("building sources: %w", err)
	}
	return pipeline.NewService(registry,
		pipeline.WithCache(cfg.Cache.Size),
		pipeline.WithLogger(logger),
	)
}

// filterFlags are shared by stats and rows
type filterFlags struct {
	city  string
	month string
	day   string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.city, "city", "", "city: chicago, new york city or washington (required)")
	cmd.Flags().StringVar(&f.month, "month", model.All, "month name (january..december) or all")
	cmd.Flags().StringVar(&f.day, "day", model.All, "day name (monday..sunday) or all")
	_ = cmd.MarkFlagRequired("city")
}

func (f *filterFlags) spec() (model.FilterSpec, error) {
	return model.ParseFilterSpec(f.city, f.month, f.day)
}
