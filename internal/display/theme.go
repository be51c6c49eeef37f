// Package display renders a Puzzle as text, in one of three themes,
// grounded on original_source/src/puzzle.rs's Theme/View.
package display

import (
	"fmt"

	"github.com/fatih/color"

	"nonogram/pkg/constants"
)

// Theme selects the glyph set and coloring used by Render.
type Theme int

const (
	Ascii Theme = iota
	Unicode
	Brief
)

func (t Theme) String() string {
	switch t {
	case Ascii:
		return constants.ThemeAscii
	case Brief:
		return constants.ThemeBrief
	default:
		return constants.ThemeUnicode
	}
}

func (t Theme) filled() string     { return t.glyph('#', '■', 'E') }
func (t Theme) crossed() string    { return t.glyph('.', '⨉', 'E') }
func (t Theme) impossible() string { return t.glyph('!', '!', 'E') }
func (t Theme) undecided() string  { return t.glyph(' ', '·', 'E') }

func (t Theme) glyph(ascii, unicode, brief rune) string {
	switch t {
	case Brief:
		return string(brief)
	case Unicode:
		return string(unicode)
	default:
		return string(ascii)
	}
}

// ThemeFlag implements pflag.Value so --theme/-t is validated at
// flag-parse time, the way a cobra-based CLI in the retrieval pack
// typically wires a restricted-choice flag.
type ThemeFlag struct {
	Theme Theme
}

func NewThemeFlag(def Theme) *ThemeFlag { return &ThemeFlag{Theme: def} }

func (f *ThemeFlag) String() string { return f.Theme.String() }

func (f *ThemeFlag) Set(s string) error {
	switch s {
	case constants.ThemeAscii:
		f.Theme = Ascii
	case constants.ThemeUnicode:
		f.Theme = Unicode
	case constants.ThemeBrief:
		f.Theme = Brief
	default:
		return fmt.Errorf("unrecognized theme %q: must be one of ascii, unicode, brief", s)
	}
	return nil
}

func (f *ThemeFlag) Type() string { return "theme" }

// ApplyColorPolicy forces color.NoColor on for the Brief theme (it is a
// machine round-trip format) and whenever the caller asks for no color.
func ApplyColorPolicy(theme Theme, noColor bool) {
	color.NoColor = noColor || theme == Brief
}
