package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/domain/build"
)

// logo is a half-lit disc.
const logo = ` ▄███▄
█████  █
█████  █
 ▀███▀`

// AboutRenderer prints build info beside the logo.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

func (r *AboutRenderer) Render(info build.Info) string {
	t := r.theme
	art := t.Highlight.MarginTop(1).MarginLeft(2).Render(logo)

	icon := lipgloss.NewStyle().Foreground(t.Accent)
	field := func(glyph, label, value string) string {
		return icon.Render(glyph) + " " + t.Subtle.Render(label) + " " + t.Highlight.Render(value)
	}

	lines := []string{
		field(IconVersion, "Version", info.Version),
		field(IconGitBranch, "Commit", info.Commit),
		field(IconCalendar, "Built", info.BuildDate),
		field(IconGo, "Go", info.GoVersion),
		field(SchemeIcon(t.Scheme), "Scheme", t.Scheme.String()),
		"",
		icon.Render(IconGithub) + " " + t.Subtle.Render(build.RepoURL()),
		field(IconHeart, "Maintained by", strings.Join(build.Contributors(), ", ")),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, art, "   ", strings.Join(lines, "\n"))
}
