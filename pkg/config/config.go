package config

import (
	"fmt"

	"nonogram/pkg/constants"
)

// Config holds the validated run configuration for the CLI entrypoint.
type Config struct {
	Theme    string
	NoColor  bool
	MaxSteps int
}

// Load validates the flag values gathered by the CLI layer and returns a
// Config, or an error describing the first invalid value.
func Load(theme string, noColor bool, maxSteps int) (*Config, error) {
	switch theme {
	case constants.ThemeAscii, constants.ThemeUnicode, constants.ThemeBrief:
	default:
		return nil, fmt.Errorf("unrecognized theme %q: must be one of ascii, unicode, brief", theme)
	}

	if maxSteps <= 0 {
		return nil, fmt.Errorf("max-steps must be positive, got %d", maxSteps)
	}

	return &Config{
		Theme:    theme,
		NoColor:  noColor || theme == constants.ThemeBrief,
		MaxSteps: maxSteps,
	}, nil
}
