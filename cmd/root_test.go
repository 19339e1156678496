package cmd

import (
	"testing"

	"github.com/fatih/color"

	"github.com/klytics/sheetpick/internal/config"
)

func TestApplyColor(t *testing.T) {
	restore := color.NoColor
	defer func() { color.NoColor = restore }()

	colorOff := &config.Config{}
	colorOn := &config.Config{}
	colorOn.Output.Color = true

	cases := []struct {
		name    string
		cfg     *config.Config
		flag    bool
		disable bool
	}{
		{"config disables color", colorOff, false, true},
		{"flag disables color", colorOn, true, true},
		{"flag wins without config", nil, true, true},
		{"color stays enabled", colorOn, false, false},
		{"nil config leaves color alone", nil, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			color.NoColor = false
			applyColor(c.cfg, c.flag)
			if color.NoColor != c.disable {
				t.Errorf("NoColor = %v, want %v", color.NoColor, c.disable)
			}
		})
	}
}
