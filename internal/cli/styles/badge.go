package styles

import (
	"github.com/bnema/themesync/internal/domain/entity"
)

// ModeIcon returns the icon of a theme mode.
func ModeIcon(mode entity.ThemeMode) string {
	switch mode {
	case entity.ThemeModeLight:
		return IconSun
	case entity.ThemeModeDark:
		return IconMoon
	default:
		return IconAdjust
	}
}

// SchemeIcon returns the icon of an effective scheme.
func SchemeIcon(scheme entity.EffectiveScheme) string {
	if scheme.IsDark() {
		return IconMoon
	}
	return IconSun
}

// ModeBadge renders the mode as an accent badge.
func (t *Theme) ModeBadge(mode entity.ThemeMode) string {
	return t.Badge.Render(ModeIcon(mode) + " " + mode.String())
}

// SchemeBadge renders the effective scheme as a muted badge.
func (t *Theme) SchemeBadge(scheme entity.EffectiveScheme) string {
	return t.BadgeMuted.Render(SchemeIcon(scheme) + " " + scheme.String())
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusText renders ok/failure text with the matching status color.
func (t *Theme) StatusText(ok bool, yes, no string) string {
	if ok {
		return t.SuccessStyle.Render(IconCheck + " " + yes)
	}
	return t.ErrorStyle.Render(IconX + " " + no)
}
