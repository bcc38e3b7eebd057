package waveform

import (
	"errors"
	"image/color"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidWidth},
		{"negative width", func(c *Config) { c.Width = -10 }, ErrInvalidWidth},
		{"zero height", func(c *Config) { c.Height = 0 }, ErrInvalidHeight},
		{"zero oversample", func(c *Config) { c.Oversample = 0 }, ErrInvalidOversample},
		{"negative oversample", func(c *Config) { c.Oversample = -1 }, ErrInvalidOversample},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 1920 || cfg.Height != 120 || cfg.Oversample != 32 {
		t.Errorf("unexpected default dimensions: %dx%d oversample %d", cfg.Width, cfg.Height, cfg.Oversample)
	}
	if cfg.Foreground != (color.NRGBA{A: 255}) {
		t.Errorf("expected opaque black foreground, got %v", cfg.Foreground)
	}
	if cfg.Background != (color.NRGBA{}) {
		t.Errorf("expected transparent background, got %v", cfg.Background)
	}
	if cfg.Normalize {
		t.Error("normalization must be off by default")
	}
}
