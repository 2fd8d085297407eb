package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/domain/entity"
)

// ModeRenderer renders the theme state.
type ModeRenderer struct {
	theme *Theme
}

// NewModeRenderer creates a new ModeRenderer.
func NewModeRenderer(theme *Theme) *ModeRenderer {
	return &ModeRenderer{theme: theme}
}

// Render renders state on one line, e.g. "mode system -> dark".
// source names the detector behind the system preference and is only
// shown when the mode follows the system.
func (r *ModeRenderer) Render(state entity.ThemeState, source string) string {
	arrow := lipgloss.NewStyle().Foreground(r.theme.Muted).Render("->")
	line := fmt.Sprintf("%s %s %s", r.theme.ModeBadge(state.Mode), arrow, r.theme.SchemeBadge(state.Effective))
	if state.Mode == entity.ThemeModeSystem && source != "" {
		line += " " + r.theme.Subtle.Render("via "+source)
	}
	return line
}

// RenderChange renders a change notification with a leading label.
func (r *ModeRenderer) RenderChange(label string, state entity.ThemeState) string {
	return fmt.Sprintf("%s %s", r.theme.Subtle.Render(label), r.Render(state, ""))
}
