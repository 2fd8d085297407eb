// Package styles renders CLI output with lipgloss in the same palette the
// pages use for the effective scheme.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
	uitheme "github.com/bnema/themesync/internal/ui/theme"
)

// Theme is a set of terminal colors and styles for one scheme.
type Theme struct {
	Scheme entity.EffectiveScheme

	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	Title     lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style

	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Picker rows.
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	HelpKey          lipgloss.Style
	HelpDesc         lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme builds the theme for scheme from cfg's palette overrides.
// cfg may be nil.
func NewTheme(cfg *config.Config, scheme entity.EffectiveScheme) *Theme {
	var overrides *config.ColorPalette
	if cfg != nil {
		overrides = &cfg.Appearance.LightPalette
		if scheme.IsDark() {
			overrides = &cfg.Appearance.DarkPalette
		}
	}
	p := uitheme.PaletteFromConfig(overrides, scheme.IsDark())

	t := &Theme{
		Scheme:         scheme,
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(p.Destructive),
		Warning:        lipgloss.Color(p.Warning),
		Success:        lipgloss.Color(p.Success),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)

	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.ListItem = fg(t.Text).PaddingLeft(2)
	t.ListItemSelected = t.Highlight.Background(t.SurfaceVariant).PaddingLeft(2)
	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)

	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(t.SurfaceVariant).Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.BoxHeader = t.Title.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Border).
		MarginBottom(1)
	return t
}
