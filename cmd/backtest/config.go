package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mhollan/solstice/pkg/utility/fixed"
)

type FeedConfig struct {
	// Kind selects the bar source: synthetic, historical, duckdb or
	// stream.
	Kind string `mapstructure:"kind"`

	// Path locates the packed bar file (historical) or database file
	// (duckdb).
	Path string `mapstructure:"path"`

	// Url is the websocket endpoint for the stream feed.
	Url string `mapstructure:"url"`

	Seed            int64  `mapstructure:"seed"`
	Steps           int    `mapstructure:"steps"`
	IntervalMinutes int    `mapstructure:"interval_minutes"`
	Start           string `mapstructure:"start"`
	End             string `mapstructure:"end"`
}

type Config struct {
	Symbols          []string `mapstructure:"symbols"`
	FormationPeriods int      `mapstructure:"formation_periods"`
	HoldingPeriods   int      `mapstructure:"holding_periods"`

	InitialCash string `mapstructure:"initial_cash"`
	UnitSize    int64  `mapstructure:"unit_size"`

	RouterEventCapacity int  `mapstructure:"router_event_capacity"`
	MonitorEvents       bool `mapstructure:"monitor_events"`

	Feed FeedConfig `mapstructure:"feed"`

	EquityCurvePath string `mapstructure:"equity_curve_path"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("formation_periods", 3)
	v.SetDefault("holding_periods", 3)
	v.SetDefault("initial_cash", "100000")
	v.SetDefault("unit_size", 10)
	v.SetDefault("router_event_capacity", 1000)
	v.SetDefault("feed.kind", "synthetic")
	v.SetDefault("feed.seed", 1)
	v.SetDefault("feed.steps", 252)
	v.SetDefault("feed.interval_minutes", 1440)
	v.SetDefault("feed.start", "2024-01-01T00:00:00Z")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if len(cfg.Symbols) == 0 {
		return fmt.Errorf("at least one symbol is required")
	}
	if cfg.FormationPeriods <= 0 || cfg.HoldingPeriods <= 0 {
		return fmt.Errorf("formation and holding periods must be positive")
	}
	if _, err := fixed.Parse(cfg.InitialCash); err != nil {
		return fmt.Errorf("invalid initial_cash: %w", err)
	}
	switch cfg.Feed.Kind {
	case "synthetic":
		if _, err := time.Parse(time.RFC3339, cfg.Feed.Start); err != nil {
			return fmt.Errorf("invalid feed.start: %w", err)
		}
	case "historical", "duckdb":
		if cfg.Feed.Path == "" {
			return fmt.Errorf("feed.path is required for the %s feed", cfg.Feed.Kind)
		}
	case "stream":
		if cfg.Feed.Url == "" {
			return fmt.Errorf("feed.url is required for the stream feed")
		}
	default:
		return fmt.Errorf("unknown feed kind %q", cfg.Feed.Kind)
	}
	return nil
}

func (cfg *Config) initialCash() fixed.Point {
	cash, _ := fixed.Parse(cfg.InitialCash)
	return cash
}

func (cfg *Config) feedStart() time.Time {
	start, _ := time.Parse(time.RFC3339, cfg.Feed.Start)
	return start
}

func (cfg *Config) feedInterval() time.Duration {
	return time.Duration(cfg.Feed.IntervalMinutes) * time.Minute
}
