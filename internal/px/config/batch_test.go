package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
defaults:
  width: 1920
  height: 1080
  order: bgr
outputs:
  - file: bars.bmp
    pattern: color-bars
  - file: warm.bmp
    pattern: solid
    color: "#ff8000"
    width: 64
    height: 64
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Outputs, 2)
	require.Equal(t, 1920, m.Defaults.Width)
	require.Equal(t, "bars.bmp", m.Outputs[0].File)
	require.Equal(t, "#ff8000", m.Outputs[1].Color)
}

func TestLoadManifest_NoOutputs(t *testing.T) {
	path := writeManifest(t, "defaults:\n  width: 10\n")

	_, err := LoadManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no outputs")
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestManifestOutput_Merged(t *testing.T) {
	cfg := &Config{Width: 320, Height: 240, Order: "BGR"}
	defaults := ManifestDefaults{Width: 1920, Order: "rgb"}

	tests := []struct {
		name       string
		output     ManifestOutput
		wantWidth  int
		wantHeight int
		wantOrder  string
	}{
		{
			name:       "output wins over defaults",
			output:     ManifestOutput{Width: 64, Height: 32, Order: "bgr"},
			wantWidth:  64,
			wantHeight: 32,
			wantOrder:  "bgr",
		},
		{
			name:       "manifest defaults fill gaps",
			output:     ManifestOutput{},
			wantWidth:  1920,
			wantHeight: 240, // no manifest default, falls to config
			wantOrder:  "rgb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.output.Merged(defaults, cfg)
			require.Equal(t, tt.wantWidth, got.Width)
			require.Equal(t, tt.wantHeight, got.Height)
			require.Equal(t, tt.wantOrder, got.Order)
		})
	}
}
