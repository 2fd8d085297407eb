package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// VerifyRenderer renders the head script parity report.
type VerifyRenderer struct {
	theme *Theme
}

// NewVerifyRenderer creates a new VerifyRenderer.
func NewVerifyRenderer(theme *Theme) *VerifyRenderer {
	return &VerifyRenderer{theme: theme}
}

// Render renders every case as a table followed by the failures.
func (r *VerifyRenderer) Render(backend string, rows []ParityRow) string {
	tableRows := make([]table.Row, 0, len(rows))
	var failures []string
	for _, row := range rows {
		tableRows = append(tableRows, row.ToRow())
		if !row.OK {
			detail := fmt.Sprintf("stored %s, system %s: want %s, got %s", row.Stored, row.System, row.Want, row.Got)
			if row.Err != "" {
				detail += " (" + row.Err + ")"
			}
			failures = append(failures, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(detail)))
		}
	}

	width := 0
	for _, c := range ParityTableColumns() {
		width += c.Width + 2
	}
	t := NewStyledTable(r.theme, ParityTableColumns(), tableRows, width, len(tableRows)+1)

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconScript),
		r.theme.Title.Render("Head script parity"),
		r.theme.MutedBadge(backend),
	)

	parts := []string{header, "", t.View(), ""}
	if len(failures) == 0 {
		parts = append(parts, r.theme.StatusText(true, fmt.Sprintf("%d cases agree with the controller", len(rows)), ""))
	} else {
		parts = append(parts, failures...)
	}
	return strings.Join(parts, "\n")
}
