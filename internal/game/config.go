package game

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. A seed of 0 means a random seed will be generated.
	Seed int64 `env:"PYRPG_SEED" envDefault:"0"`
	// EnemyCadence is how many player actions pass per enemy step.
	EnemyCadence int `env:"PYRPG_ENEMY_CADENCE" envDefault:"2"`
	// BannerDuration is how long encounter and flee banners stay up.
	BannerDuration time.Duration `env:"PYRPG_BANNER_DURATION" envDefault:"2s"`
	// FPS is the frame clock rate.
	FPS int `env:"PYRPG_FPS" envDefault:"60"`
	// DataDir overrides the embedded maps, items, and enemies when set.
	DataDir string `env:"PYRPG_DATA_DIR"`
	// LogFile receives the process log. Empty discards it.
	LogFile string `env:"PYRPG_LOG_FILE"`
	// Telemetry enables OTLP trace export.
	Telemetry bool `env:"PYRPG_TELEMETRY" envDefault:"false"`
	// HoneycombAPIKey and HoneycombDataset configure the trace exporter.
	HoneycombAPIKey  string `env:"HONEYCOMB_PYRPG_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_PYRPG_DATASET" envDefault:"pyrpg"`
}

// DefaultConfig returns the configuration used when no environment is set.
// The envDefault tags are the only source of default values.
func DefaultConfig() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("invalid config defaults: %v", err))
	}
	return cfg
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// cadence returns EnemyCadence, treating values below 1 as 1.
func (c Config) cadence() int {
	if c.EnemyCadence < 1 {
		return 1
	}
	return c.EnemyCadence
}

// FrameInterval returns the time between frame clock ticks.
func (c Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
