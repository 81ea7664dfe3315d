// Package config provides Viper-based configuration for bikeshare
package config

import (
	"fmt"
	"go-bikeshare/internal/model"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete bikeshare configuration
type Config struct {
	Data    DataConfig              `mapstructure:"data"`
	Sources map[string]SourceConfig `mapstructure:"sources"`
	Cache   CacheConfig             `mapstructure:"cache"`
	Server  ServerConfig            `mapstructure:"server"`
	Logging LoggingConfig           `mapstructure:"logging"`
}

// DataConfig locates the trip files
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// SourceConfig describes where one city's trips live
type SourceConfig struct {
	Type  string `mapstructure:"type"`
	Path  string `mapstructure:"path"`
	Table string `mapstructure:"table"`
}

// CacheConfig sizes the derived dataset cache; 0 disables it
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bikeshare")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bikeshare")
	}

	// BIKESHARE_CACHE_SIZE overrides cache.size
	v.SetEnvPrefix("BIKESHARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", "data")

	// One CSV per city, named after its slug
	for _, city := range model.Cities {
		key := "sources." + city.Slug()
		v.SetDefault(key+".type", "csv")
		v.SetDefault(key+".path", city.Slug()+".csv")
		v.SetDefault(key+".table", "")
	}

	v.SetDefault("cache.size", len(model.Cities))

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// validate checks configuration for errors
func validate(cfg *Config) error {
	for slug, src := range cfg.Sources {
		if _, err := model.ParseCity(slug); err != nil {
			return fmt.Errorf("sources.%s: unknown city", slug)
		}
		switch strings.ToLower(src.Type) {
		case "csv", "sqlite", "sqlite3":
		default:
			return fmt.Errorf("sources.%s.type: unsupported source type %q", slug, src.Type)
		}
		if src.Path == "" {
			return fmt.Errorf("sources.%s.path is required", slug)
		}
	}

	if cfg.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// SourceSpecs resolves each configured source to a loader description.
// Relative paths are joined to data.dir; a SQLite source without a table
// reads the table named after the city slug.
func (c *Config) SourceSpecs() (map[model.City]model.Source, error) {
	specs := make(map[model.City]model.Source, len(c.Sources))
	for slug, src := range c.Sources {
		city, err := model.ParseCity(slug)
		if err != nil {
			return nil, err
		}

		path := src.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Data.Dir, path)
		}

		typ := strings.ToLower(src.Type)
		table := src.Table
		if typ != "csv" && table == "" {
			table = city.Slug()
		}

		specs[city] = model.Source{Type: typ, Path: path, Table: table}
	}
	return specs, nil
}
