package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hexinspect/internal/interp"
	"hexinspect/internal/layout"
	"hexinspect/internal/logging"

	"github.com/BurntSushi/toml"
)

const appName = "hexinspect"

type View struct {
	Endian      string `toml:"endian"`
	BytesPerRow int    `toml:"bytes_per_row"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Config struct {
	View View `toml:"view"`
	Log  Log  `toml:"log"`
}

type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func DefaultConfig() *Config {
	return &Config{
		View: View{
			Endian:      interp.Little.String(),
			BytesPerRow: layout.DefaultBytesPerRow,
		},
	}
}

func ConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return appName + ".toml"
	}
	return filepath.Join(home, ".config", appName, appName+".toml")
}

// Load reads the config at path, or at ConfigPath when path is empty. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := interp.ParseEndianness(c.View.Endian); err != nil {
		return &ValidationError{Field: "endian", Value: c.View.Endian, Reason: "want little or big"}
	}
	if c.View.BytesPerRow < 1 || c.View.BytesPerRow > layout.MaxBytesPerRow {
		return &ValidationError{
			Field:  "bytes_per_row",
			Value:  c.View.BytesPerRow,
			Reason: fmt.Sprintf("must be between 1 and %d", layout.MaxBytesPerRow),
		}
	}
	if c.Log.Level != "" {
		if _, err := logging.ParseLevel(c.Log.Level); err != nil {
			return &ValidationError{Field: "log level", Value: c.Log.Level, Reason: "want debug, info, warn or error"}
		}
	}
	return nil
}

// Endian returns the validated initial byte order.
func (c *Config) Endian() interp.Endianness {
	e, _ := interp.ParseEndianness(c.View.Endian)
	return e
}

func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Encode(f)
}
