package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	furigana "github.com/tassa-yoniso-manasi-karoto/go-furigana"
)

// Config holds the CLI settings. Flags override it.
type Config struct {
	DictPath   string        `yaml:"dict_path"   env:"FURIGANA_DICT"        env-description:"KANJIDIC2 XML or CSV kanji table (default: XDG data dir)"`
	Nanori     bool          `yaml:"nanori"      env:"FURIGANA_NANORI"      env-default:"false" env-description:"also use name readings"`
	Format     string        `yaml:"format"      env:"FURIGANA_FORMAT"      env-default:"html"  env-description:"html or bracket"`
	MaxResults int           `yaml:"max_results" env:"FURIGANA_MAX_RESULTS" env-default:"10000" env-description:"candidate cap per word, 0 for none"`
	Timeout    time.Duration `yaml:"timeout"     env:"FURIGANA_TIMEOUT"     env-default:"10s"   env-description:"give up on a search after this long"`
	LogLevel   string        `yaml:"log_level"   env:"FURIGANA_LOG_LEVEL"   env-default:"warn"  env-description:"zerolog level"`
}

// loadConfig reads CONFIG_PATH when set, otherwise the environment and
// defaults only.
func loadConfig() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values that cleanenv cannot.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := furigana.ParseFormat(c.Format); !ok {
		errs = append(errs, fmt.Errorf("format: unknown %q", c.Format))
	}
	if c.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("max_results: must be >= 0, got %d", c.MaxResults))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout: must be positive, got %s", c.Timeout))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}
