package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/domain/entity"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Config    DoctorConfigReport
	System    DoctorSystemReport
	Store     DoctorStoreReport
	Script    DoctorScriptReport
}

type DoctorConfigReport struct {
	File   string
	Errors []string
}

type DoctorSystemReport struct {
	Detectors []DoctorDetector
	Scheme    entity.EffectiveScheme
	Source    string
}

type DoctorDetector struct {
	Name        string
	Priority    int
	Available   bool
	Answered    bool
	PrefersDark bool
}

type DoctorStoreReport struct {
	Path string
	// Opened is false when the database could not be opened or migrated.
	Opened bool
	OK     bool
	Error  string
	Stored bool
	Mode   entity.ThemeMode
}

type DoctorScriptReport struct {
	Backend  string
	Digest   string
	Cases    int
	Failures int
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)
	sections := []string{
		r.renderConfig(report.Config),
		r.renderSystem(report.System),
		r.renderStore(report.Store),
		r.renderScript(report.Script),
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) section(icon, name string, lines []string) string {
	head := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), name))
	return r.theme.Box.Render(head + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderConfig(c DoctorConfigReport) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("File"), r.theme.Normal.Render(c.File)),
	}
	if len(c.Errors) == 0 {
		lines = append(lines, r.theme.StatusText(true, "valid", ""))
	}
	for _, e := range c.Errors {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(e)))
	}
	return r.section(IconConfig, "Config", lines)
}

func (r *DoctorRenderer) renderSystem(s DoctorSystemReport) string {
	lines := make([]string, 0, len(s.Detectors)+2)
	for _, d := range s.Detectors {
		lines = append(lines, r.renderDetector(d))
	}
	if len(s.Detectors) == 0 {
		lines = append(lines, r.theme.WarningStyle.Render(IconWarning+" no detectors enabled"))
	}
	lines = append(lines, "", fmt.Sprintf(
		"%s %s %s",
		r.theme.Subtle.Render("Resolved"),
		r.theme.SchemeBadge(s.Scheme),
		r.theme.Subtle.Render("via "+s.Source),
	))
	return r.section(IconDesktop, "System preference", lines)
}

func (r *DoctorRenderer) renderDetector(d DoctorDetector) string {
	icon := IconCheck
	style := r.theme.SuccessStyle
	var answer string
	switch {
	case !d.Available:
		icon = IconX
		style = r.theme.Subtle
		answer = "unavailable"
	case !d.Answered:
		icon = IconWarning
		style = r.theme.WarningStyle
		answer = "no answer"
	default:
		answer = entity.SchemeFromDark(d.PrefersDark).String()
	}
	return fmt.Sprintf(
		"%s %s %s %s",
		style.Render(icon),
		r.theme.Normal.Render(d.Name),
		r.theme.MutedBadge(fmt.Sprintf("priority %d", d.Priority)),
		style.Render(answer),
	)
}

func (r *DoctorRenderer) renderStore(s DoctorStoreReport) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Database"), r.theme.Normal.Render(s.Path)),
	}
	switch {
	case !s.OK && !s.Opened:
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render("cannot open: "+s.Error)))
	case !s.OK:
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(s.Error)))
	case s.Stored:
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Stored mode"), r.theme.ModeBadge(s.Mode)))
	default:
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("Stored mode"), r.theme.Subtle.Render("none, default "+s.Mode.String())))
	}
	return r.section(IconDatabase, "Preference store", lines)
}

func (r *DoctorRenderer) renderScript(s DoctorScriptReport) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Backend"), r.theme.Normal.Render(s.Backend)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("CSP"), r.theme.Normal.Render(s.Digest)),
	}
	ok := s.Failures == 0
	lines = append(lines, r.theme.StatusText(ok,
		fmt.Sprintf("%d parity cases pass", s.Cases),
		fmt.Sprintf("%d of %d parity cases fail", s.Failures, s.Cases),
	))
	return r.section(IconScript, "Head script", lines)
}
