package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a batch of files to generate in one run, so a
// whole suite of test screens comes out of a single invocation.
type Manifest struct {
	Defaults ManifestDefaults `yaml:"defaults,omitempty"`
	Outputs  []ManifestOutput `yaml:"outputs"`
}

type ManifestDefaults struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Order  string `yaml:"order,omitempty"`
}

type ManifestOutput struct {
	File    string `yaml:"file"`
	Pattern string `yaml:"pattern"`
	Width   int    `yaml:"width,omitempty"`
	Height  int    `yaml:"height,omitempty"`
	Order   string `yaml:"order,omitempty"`

	// Pattern parameters; unused ones are ignored by the pattern.
	Color  string `yaml:"color,omitempty"`  // solid
	Color2 string `yaml:"color2,omitempty"` // stripes, checkerboard
	Color3 string `yaml:"color3,omitempty"` // stripes
	From   string `yaml:"from,omitempty"`   // gradients
	To     string `yaml:"to,omitempty"`     // gradients
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}

	if len(m.Outputs) == 0 {
		return nil, fmt.Errorf("manifest %s lists no outputs", path)
	}

	return m, nil
}

// Merged fills the output's unset dimensions and order from manifest
// defaults, then from the user config.
func (o ManifestOutput) Merged(d ManifestDefaults, cfg *Config) ManifestOutput {
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Order == "" {
		o.Order = d.Order
	}
	if o.Width == 0 {
		o.Width = cfg.Width
	}
	if o.Height == 0 {
		o.Height = cfg.Height
	}
	if o.Order == "" {
		o.Order = cfg.Order
	}
	return o
}
