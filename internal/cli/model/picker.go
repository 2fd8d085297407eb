// Package model holds the Bubble Tea models of interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
	uitheme "github.com/bnema/themesync/internal/ui/theme"
)

// PickerModel is the three-way mode control of `mode pick`. It drives the
// theme controller through port.ThemeState and renders the same options
// as the dashboard mode menu.
type PickerModel struct {
	help help.Model
	keys styles.PickerKeyMap

	current entity.ThemeState
	cursor  int
	changed bool
	err     error

	ctx   context.Context
	state port.ThemeState
	theme *styles.Theme
}

// stateMsg carries the result of a mutation.
type stateMsg struct {
	state entity.ThemeState
	err   error
}

// NewPickerModel creates a picker with the cursor on the current mode.
func NewPickerModel(ctx context.Context, theme *styles.Theme, state port.ThemeState) PickerModel {
	m := PickerModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPickerKeyMap(),
		current: state.State(),
		ctx:     ctx,
		state:   state,
		theme:   theme,
	}
	m.cursor = m.selectedIndex()
	return m
}

func (m PickerModel) selectedIndex() int {
	for i, opt := range uitheme.NewModeMenu(m.current).Options {
		if opt.Selected {
			return i
		}
	}
	return 0
}

// Init implements tea.Model.
func (PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) setMode(mode entity.ThemeMode) tea.Cmd {
	return func() tea.Msg {
		s, err := m.state.SetMode(m.ctx, mode)
		return stateMsg{state: s, err: err}
	}
}

func (m PickerModel) toggle() tea.Cmd {
	return func() tea.Msg {
		s, err := m.state.ToggleTheme(m.ctx)
		return stateMsg{state: s, err: err}
	}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case stateMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.current = msg.state
		m.changed = true
		m.cursor = m.selectedIndex()

	case tea.KeyMsg:
		options := entity.ThemeModes()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			return m, m.setMode(options[m.cursor])
		case key.Matches(msg, m.keys.Light):
			return m, m.setMode(entity.ThemeModeLight)
		case key.Matches(msg, m.keys.Dark):
			return m, m.setMode(entity.ThemeModeDark)
		case key.Matches(msg, m.keys.System):
			return m, m.setMode(entity.ThemeModeSystem)
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggle()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(styles.IconPalette + " Theme"))
	b.WriteString("  ")
	b.WriteString(m.theme.Subtle.Render(uitheme.ModeTooltip(m.current)))
	b.WriteString("\n\n")

	for i, opt := range uitheme.NewModeMenu(m.current).Options {
		line := fmt.Sprintf("%s %s", styles.ModeIcon(opt.Mode), opt.Label)
		if opt.Selected {
			line += " " + styles.IconCheck
		}
		if i == m.cursor {
			b.WriteString(m.theme.ListItemSelected.Render(styles.IconCursor + " " + line))
		} else {
			b.WriteString(m.theme.ListItem.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorStyle.Render(styles.IconX + " " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// State returns the last published state seen by the picker.
func (m PickerModel) State() entity.ThemeState {
	return m.current
}

// Changed reports whether a mutation succeeded while the picker was open.
func (m PickerModel) Changed() bool {
	return m.changed
}

// Err returns the last mutation error, if any.
func (m PickerModel) Err() error {
	return m.err
}
