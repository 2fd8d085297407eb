package entity

import "strings"

// ThemeMode is the user-facing color scheme preference.
type ThemeMode string

// Theme modes.
const (
	ThemeModeLight  ThemeMode = "light"
	ThemeModeDark   ThemeMode = "dark"
	ThemeModeSystem ThemeMode = "system"
)

// DefaultThemeMode is used when no preference has been stored yet.
const DefaultThemeMode = ThemeModeSystem

// ThemeModes lists every mode in menu order.
func ThemeModes() []ThemeMode {
	return []ThemeMode{ThemeModeLight, ThemeModeDark, ThemeModeSystem}
}

// ParseThemeMode parses a persisted or user supplied mode.
// Matching is exact: persisted values are written by us in lowercase,
// anything else is treated as malformed.
func ParseThemeMode(s string) (ThemeMode, bool) {
	switch ThemeMode(s) {
	case ThemeModeLight, ThemeModeDark, ThemeModeSystem:
		return ThemeMode(s), true
	default:
		return "", false
	}
}

// ParseThemeModeLoose is like ParseThemeMode but tolerates case and
// surrounding whitespace. Used for CLI flags and config values.
func ParseThemeModeLoose(s string) (ThemeMode, bool) {
	return ParseThemeMode(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether m is one of the three modes.
func (m ThemeMode) Valid() bool {
	_, ok := ParseThemeMode(string(m))
	return ok
}

func (m ThemeMode) String() string {
	return string(m)
}

// EffectiveScheme is the scheme that is actually painted.
type EffectiveScheme string

// Effective schemes.
const (
	SchemeLight EffectiveScheme = "light"
	SchemeDark  EffectiveScheme = "dark"
)

// FallbackScheme is used when the system preference cannot be queried.
const FallbackScheme = SchemeLight

// SchemeFromDark converts a prefers-dark flag into a scheme.
func SchemeFromDark(prefersDark bool) EffectiveScheme {
	if prefersDark {
		return SchemeDark
	}
	return SchemeLight
}

// Opposite returns the other scheme.
func (s EffectiveScheme) Opposite() EffectiveScheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

// IsDark reports whether s is the dark scheme.
func (s EffectiveScheme) IsDark() bool {
	return s == SchemeDark
}

// Mode returns the explicit mode that pins this scheme.
func (s EffectiveScheme) Mode() ThemeMode {
	if s == SchemeDark {
		return ThemeModeDark
	}
	return ThemeModeLight
}

func (s EffectiveScheme) String() string {
	return string(s)
}

// Resolve derives the effective scheme from the chosen mode and the
// system preference. The injected head script encodes the same rule.
func Resolve(mode ThemeMode, system EffectiveScheme) EffectiveScheme {
	switch mode {
	case ThemeModeLight:
		return SchemeLight
	case ThemeModeDark:
		return SchemeDark
	default:
		if system == SchemeDark {
			return SchemeDark
		}
		return SchemeLight
	}
}

// ThemeState is the published theme state.
type ThemeState struct {
	Mode      ThemeMode       `json:"mode"`
	Effective EffectiveScheme `json:"effectiveScheme"`
}
