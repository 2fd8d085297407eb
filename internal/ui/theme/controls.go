package theme

import "github.com/bnema/themesync/internal/domain/entity"

// Icon names a Material symbol.
type Icon string

// Icons used by the mode controls.
const (
	IconLightMode          Icon = "light_mode"
	IconDarkMode           Icon = "dark_mode"
	IconSettingsBrightness Icon = "settings_brightness"
	IconCheck              Icon = "check"
)

// Glyph returns a text fallback for surfaces without the icon font.
func (i Icon) Glyph() string {
	switch i {
	case IconLightMode:
		return "☀"
	case IconDarkMode:
		return "☾"
	case IconSettingsBrightness:
		return "◐"
	case IconCheck:
		return "✓"
	default:
		return ""
	}
}

// Endpoints the rendered controls submit to.
const (
	ModeEndpoint   = "/api/theme/mode"
	ToggleEndpoint = "/api/theme/toggle"
)

// ModeOption is one entry of the mode menu.
type ModeOption struct {
	Mode     entity.ThemeMode
	Label    string
	Icon     Icon
	Selected bool
}

// ModeMenu is the three-way mode control.
type ModeMenu struct {
	// Icon reflects the painted scheme.
	Icon    Icon
	Tooltip string
	Options []ModeOption
}

// SimpleToggle is the two-state control. It shows the icon of the scheme
// it switches to.
type SimpleToggle struct {
	Icon    Icon
	Tooltip string
	Target  entity.EffectiveScheme
}

// Placeholder is shown in place of a control until the controller is ready.
type Placeholder struct {
	Icon      Icon
	AriaLabel string
}

// ModeLabel returns the menu label of a mode.
func ModeLabel(mode entity.ThemeMode) string {
	switch mode {
	case entity.ThemeModeLight:
		return "Light"
	case entity.ThemeModeDark:
		return "Dark"
	default:
		return "System"
	}
}

// ModeIcon returns the menu icon of a mode.
func ModeIcon(mode entity.ThemeMode) Icon {
	switch mode {
	case entity.ThemeModeLight:
		return IconLightMode
	case entity.ThemeModeDark:
		return IconDarkMode
	default:
		return IconSettingsBrightness
	}
}

// SchemeIcon returns the icon of an effective scheme.
func SchemeIcon(scheme entity.EffectiveScheme) Icon {
	if scheme.IsDark() {
		return IconDarkMode
	}
	return IconLightMode
}

// ModeTooltip describes the current state, e.g. "System (dark)".
func ModeTooltip(state entity.ThemeState) string {
	switch state.Mode {
	case entity.ThemeModeLight:
		return "Light theme"
	case entity.ThemeModeDark:
		return "Dark theme"
	case entity.ThemeModeSystem:
		return "System (" + state.Effective.String() + ")"
	default:
		return "Change theme"
	}
}

// NewModeMenu builds the menu for a published state.
func NewModeMenu(state entity.ThemeState) ModeMenu {
	modes := entity.ThemeModes()
	options := make([]ModeOption, 0, len(modes))
	for _, mode := range modes {
		options = append(options, ModeOption{
			Mode:     mode,
			Label:    ModeLabel(mode),
			Icon:     ModeIcon(mode),
			Selected: mode == state.Mode,
		})
	}
	return ModeMenu{
		Icon:    SchemeIcon(state.Effective),
		Tooltip: ModeTooltip(state),
		Options: options,
	}
}

// NewSimpleToggle builds the toggle for a published state.
func NewSimpleToggle(state entity.ThemeState) SimpleToggle {
	target := state.Effective.Opposite()
	return SimpleToggle{
		Icon:    SchemeIcon(target),
		Tooltip: "Switch to " + target.String() + " theme",
		Target:  target,
	}
}

// NewPlaceholder returns the neutral control placeholder.
func NewPlaceholder() Placeholder {
	return Placeholder{
		Icon:      IconSettingsBrightness,
		AriaLabel: "Change theme",
	}
}
