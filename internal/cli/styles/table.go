package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Unfocused static output: no row is highlighted.
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// ParityTableColumns returns columns for the head script parity table.
func ParityTableColumns() []table.Column {
	return []table.Column{
		{Title: "Stored", Width: 12},
		{Title: "System", Width: 12},
		{Title: "Want", Width: 6},
		{Title: "Got", Width: 6},
		{Title: "Critical", Width: 9},
		{Title: "Meta", Width: 9},
		{Title: "Result", Width: 8},
	}
}

// ParityRow is one executed (stored value, system preference) case.
type ParityRow struct {
	Stored        string
	System        string
	Want          string
	Got           string
	CriticalStyle bool
	Meta          string
	OK            bool
	Err           string
}

// ToRow converts to table.Row.
func (p ParityRow) ToRow() table.Row {
	critical := "-"
	if p.CriticalStyle {
		critical = "present"
	}
	result := "pass"
	if !p.OK {
		result = "FAIL"
	}
	got := p.Got
	if got == "" {
		got = "-"
	}
	return table.Row{p.Stored, p.System, p.Want, got, critical, p.Meta, result}
}
