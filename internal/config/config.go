// Package config resolves taskboard settings from defaults, an optional TOML
// file and TASKBOARD_* environment variables. Command-line flags are applied
// on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultFile      = "taskboard.toml"
)

// Config holds runtime settings shared by every command.
type Config struct {
	// Seed is a YAML or JSON board document. Empty means the built-in sample board.
	Seed string `toml:"seed"`

	// Empty starts from a board with no lists instead of the sample.
	Empty bool `toml:"empty"`

	Addr      string `toml:"addr"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Debug     bool   `toml:"debug"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Addr:      DefaultAddr,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load builds a Config from defaults, the TOML file at path and the environment.
// An empty path falls back to DefaultFile in the working directory, which may be absent.
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFile(cfg, path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadFromEnv overrides fields from TASKBOARD_* variables.
func loadFromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("TASKBOARD_SEED"); ok {
		cfg.Seed = v
	}
	if v, ok := lookup("TASKBOARD_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("TASKBOARD_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("TASKBOARD_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	for name, dst := range map[string]*bool{
		"TASKBOARD_DEBUG": &cfg.Debug,
		"TASKBOARD_EMPTY": &cfg.Empty,
	} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.Seed != "" && c.Empty {
		errs = append(errs, errors.New("seed and empty are mutually exclusive"))
	}
	return errors.Join(errs...)
}
