package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	OutputYAML = "yaml"
	OutputText = "text"
)

// Config holds loader and presentation settings for welllog.
type Config struct {
	HeaderType        string
	Workers           int
	LogLevel          string
	Output            string
	ShowDiscrepancies bool
	MaterializeOnLoad bool
}

// welllog config.toml key mapping.
type fileConfig struct {
	HeaderType        string `toml:"header_type"`
	Workers           int    `toml:"workers"`
	LogLevel          string `toml:"log_level"`
	Output            string `toml:"output"`
	ShowDiscrepancies bool   `toml:"show_discrepancies"`
	MaterializeOnLoad bool   `toml:"materialize_on_load"`
}

func Default() Config {
	return Config{
		HeaderType:        "FILE-HEADER",
		Workers:           runtime.GOMAXPROCS(0),
		LogLevel:          "info",
		Output:            OutputYAML,
		ShowDiscrepancies: true,
		MaterializeOnLoad: true,
	}
}

// Load overlays the keys defined in the TOML file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("header_type") {
		cfg.HeaderType = strings.TrimSpace(raw.HeaderType)
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("show_discrepancies") {
		cfg.ShowDiscrepancies = raw.ShowDiscrepancies
	}
	if meta.IsDefined("materialize_on_load") {
		cfg.MaterializeOnLoad = raw.MaterializeOnLoad
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.HeaderType) == "" {
		return fmt.Errorf("header_type is required")
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", cfg.Workers)
	}
	switch cfg.Output {
	case OutputYAML, OutputText:
	default:
		return fmt.Errorf("unsupported output %q (expected %s or %s)", cfg.Output, OutputYAML, OutputText)
	}
	return nil
}
