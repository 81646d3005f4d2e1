package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults loaded from ~/.config/px/config.yaml.
// A missing file is not an error; built-in defaults apply.
type Config struct {
	Width  int               `yaml:"width,omitempty"`
	Height int               `yaml:"height,omitempty"`
	Order  string            `yaml:"order,omitempty"`
	Colors map[string]string `yaml:"colors,omitempty"` // name -> "#rrggbb"
}

const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultOrder  = "BGR"

	// EnvOrder overrides the configured channel order.
	EnvOrder = "PX_ORDER"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "px"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (*Config, error) {
	cfg := &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Order:  DefaultOrder,
		Colors: make(map[string]string),
	}

	path, err := Path()
	if err != nil {
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Order == "" {
		cfg.Order = DefaultOrder
	}
	if cfg.Colors == nil {
		cfg.Colors = make(map[string]string)
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg *Config) *Config {
	if v := os.Getenv(EnvOrder); v != "" {
		cfg.Order = v
	}
	return cfg
}

// ResolveColor looks up a user-named color. The returned string is the
// configured hex value; ok is false when the name is not configured.
func (c *Config) ResolveColor(name string) (string, bool) {
	v, ok := c.Colors[name]
	return v, ok
}
