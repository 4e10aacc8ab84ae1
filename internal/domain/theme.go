package domain

import (
	"fmt"
	"strings"
)

// Theme is the persisted color scheme preference
type Theme int

const (
	ThemePrimary Theme = iota
	ThemeDark
	ThemeLight
)

// DefaultTheme is used when no valid preference is stored
const DefaultTheme = ThemePrimary

// Themes lists the selectable themes in menu order
var Themes = []Theme{ThemePrimary, ThemeDark, ThemeLight}

func (t Theme) String() string {
	switch t {
	case ThemePrimary:
		return "PRIMARY"
	case ThemeDark:
		return "DARK"
	case ThemeLight:
		return "LIGHT"
	default:
		return "UNKNOWN"
	}
}

// Label returns the human-readable theme name
func (t Theme) Label() string {
	switch t {
	case ThemePrimary:
		return "Primary (dark blue)"
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	default:
		return "Unknown"
	}
}

// ParseTheme matches a stored theme name. Names are case-insensitive.
func ParseTheme(s string) (Theme, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, t := range Themes {
		if t.String() == norm {
			return t, nil
		}
	}
	return DefaultTheme, fmt.Errorf("unknown theme: %q (expected PRIMARY, DARK, or LIGHT)", s)
}

// ThemeOrDefault parses a stored value, falling back to DefaultTheme
func ThemeOrDefault(s string) Theme {
	t, err := ParseTheme(s)
	if err != nil {
		return DefaultTheme
	}
	return t
}
