package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains the environment, the icon pipeline paths, logging and metrics settings.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Icons contains the input and output locations of the sprite pipeline
	Icons struct {
		// InputDir is the directory scanned recursively for *.svg files
		InputDir string `env:"ICONS_INPUT_DIR" env-default:"public/svg" yaml:"inputDir"`
		// SpritePath is where the combined sprite document is written
		SpritePath string `env:"ICONS_SPRITE_PATH" env-default:"public/sprite.svg" yaml:"spritePath"`
		// ManifestPath is where the IconName type declaration is written
		ManifestPath string `env:"ICONS_MANIFEST_PATH" env-default:"src/types/icon.d.ts" yaml:"manifestPath"`
		// FingerprintPath stores a digest of all sources; empty disables content tracking
		FingerprintPath string `env:"ICONS_FINGERPRINT_PATH" env-default:"" yaml:"fingerprintPath"`
		// Concurrency limits how many icons are read and transformed at the same time
		Concurrency int `env:"ICONS_CONCURRENCY" env-default:"16" yaml:"concurrency"`
	} `yaml:"icons"`

	// Log contains logging related configurations
	Log struct {
		// Verbose logs every processed icon and output path
		Verbose bool `env:"LOG_VERBOSE" env-default:"false" yaml:"verbose"`
	} `yaml:"log"`

	// Metrics contains where run metrics are published; both targets are optional
	Metrics struct {
		// PushgatewayURL is the Prometheus Pushgateway base URL
		PushgatewayURL string `env:"METRICS_PUSHGATEWAY_URL" env-default:"" yaml:"pushgatewayURL"`
		// JobName is the job label used when pushing
		JobName string `env:"METRICS_JOB_NAME" env-default:"spritegen" yaml:"jobName"`
		// TextfilePath is a .prom file for the node_exporter textfile collector
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" env-default:"" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: values then come from the environment and defaults.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
