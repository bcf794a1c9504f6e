// Package config defines the plain-data configuration the CLI loads
// from .mdtoken.yaml and environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the tokenizer's tunable configuration, serialized as YAML.
type Config struct {
	// TabWidth is read from tab_width (default 4) and must be at least 1.
	// It is not passed to the tokenizer, whose indentation accounting
	// counts a tab as one column.
	TabWidth int `yaml:"tab_width"`

	// EntityTablePath, if set, names a supplementary named-entity
	// resource file merged on top of the built-in table (§4.7).
	EntityTablePath string `yaml:"entity_table_path"`

	// StrictLazyContinuation is read from strict_lazy_continuation but
	// not passed to the tokenizer: whatever its value, link reference
	// definitions are only recognized at the very start of a paragraph.
	StrictLazyContinuation bool `yaml:"strict_lazy_continuation"`
}

// Default returns the configuration used when no .mdtoken.yaml is
// present.
func Default() Config {
	return Config{
		TabWidth: 4,
	}
}

// Load reads and validates a .mdtoken.yaml file at path, falling back
// to [Default] if path is empty. After the file is parsed, the
// MDTOKEN_ENTITY_TABLE_PATH environment variable, when set, overrides
// EntityTablePath; no other field has an environment override.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, cfg.validate()
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("MDTOKEN_ENTITY_TABLE_PATH"); ok {
		cfg.EntityTablePath = v
	}
}

func (c Config) validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("tab_width must be >= 1, got %d", c.TabWidth)
	}
	return nil
}
