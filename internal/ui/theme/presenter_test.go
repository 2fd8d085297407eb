package theme_test

import (
	"context"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/ui/theme"
	"github.com/bnema/themesync/internal/ui/theme/mocks"
)

func readyChan(ready bool) <-chan struct{} {
	ch := make(chan struct{})
	if ready {
		close(ch)
	}
	return ch
}

func newPresenter(t *testing.T, ready bool, state entity.ThemeState) (*theme.Presenter, *mocks.MockThemeState) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockState := mocks.NewMockThemeState(ctrl)
	mockState.EXPECT().Ready().Return(readyChan(ready)).AnyTimes()
	mockState.EXPECT().State().Return(state).AnyTimes()
	return theme.NewPresenter(context.Background(), mockState, config.DefaultConfig()), mockState
}

func TestPresenter_NotReadyRendersNeutralMarkup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockState := mocks.NewMockThemeState(ctrl)
	mockState.EXPECT().Ready().Return(readyChan(false)).AnyTimes()
	// State must not be consulted before the controller is ready.
	mockState.EXPECT().State().Times(0)

	p := theme.NewPresenter(context.Background(), mockState, nil)

	assert.False(t, p.Ready())

	_, ok := p.Current()
	assert.False(t, ok)
	_, ok = p.ModeMenu()
	assert.False(t, ok)
	_, ok = p.Toggle()
	assert.False(t, ok)

	controls, err := p.RenderControls(theme.ControlModeMenu)
	require.NoError(t, err)
	assert.Contains(t, string(controls), `aria-label="Change theme"`)
	assert.Contains(t, string(controls), `data-icon="settings_brightness"`)
	assert.NotContains(t, string(controls), "theme-menu")

	content, err := p.RenderContent(template.HTML("<main>dashboard</main>"))
	require.NoError(t, err)
	assert.Contains(t, string(content), theme.LoadingMessage)
	assert.Contains(t, string(content), "background-color: Canvas")
	assert.NotContains(t, string(content), "dashboard")
	assert.NotContains(t, string(content), "#")
}

func TestPresenter_CurrentFollowsPublishedScheme(t *testing.T) {
	p, _ := newPresenter(t, true, entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeDark})

	style, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, entity.SchemeDark, style.Scheme)
	assert.Equal(t, "dark", style.ClassName)
	assert.Equal(t, "dark", style.ColorScheme)
	assert.Equal(t, "#0f172a", style.Palette.Background)
	assert.Contains(t, style.CSSVars, "--bg: #0f172a;")

	content, err := p.RenderContent(template.HTML("<main>dashboard</main>"))
	require.NoError(t, err)
	assert.Equal(t, template.HTML("<main>dashboard</main>"), content)
}

func TestPresenter_StyleConfigsArePrecomputed(t *testing.T) {
	p, _ := newPresenter(t, true, entity.ThemeState{Mode: entity.ThemeModeLight, Effective: entity.SchemeLight})

	light := p.Style(entity.SchemeLight)
	assert.Equal(t, light, p.Style(entity.SchemeLight))
	assert.NotEqual(t, light.Palette, p.Style(entity.SchemeDark).Palette)

	css := p.Stylesheet()
	assert.Contains(t, css, `[data-theme="light"] {`)
	assert.Contains(t, css, `[data-theme="dark"] {`)
	assert.Contains(t, css, ":root { color-scheme: light dark; }")
	assert.Less(t, strings.Index(css, `[data-theme="light"]`), strings.Index(css, `[data-theme="dark"]`))
}

func TestPresenter_UpdateFromConfig(t *testing.T) {
	p, _ := newPresenter(t, true, entity.ThemeState{Mode: entity.ThemeModeDark, Effective: entity.SchemeDark})

	cfg := config.DefaultConfig()
	cfg.Appearance.DarkPalette.Background = "#000000"
	cfg.Appearance.DarkPalette.Accent = ""
	p.UpdateFromConfig(context.Background(), cfg)

	style, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "#000000", style.Palette.Background)
	assert.Equal(t, theme.DefaultDarkPalette().Accent, style.Palette.Accent)
	assert.Contains(t, p.Stylesheet(), "--bg: #000000;")
}

func TestPresenter_RenderModeMenu(t *testing.T) {
	p, _ := newPresenter(t, true, entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeDark})

	menu, ok := p.ModeMenu()
	require.True(t, ok)
	assert.Equal(t, "System (dark)", menu.Tooltip)

	html, err := p.RenderControls(theme.ControlModeMenu)
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `action="/api/theme/mode"`)
	assert.Contains(t, out, `title="System (dark)"`)
	assert.Contains(t, out, `value="light" role="menuitemradio" aria-checked="false"`)
	assert.Contains(t, out, `value="system" role="menuitemradio" aria-checked="true"`)
	assert.Equal(t, 1, strings.Count(out, `data-icon="check"`))
}

func TestPresenter_RenderSimpleToggle(t *testing.T) {
	p, _ := newPresenter(t, true, entity.ThemeState{Mode: entity.ThemeModeLight, Effective: entity.SchemeLight})

	html, err := p.RenderControls(theme.ControlSimpleToggle)
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, `action="/api/theme/toggle"`)
	assert.Contains(t, out, `title="Switch to dark theme"`)
	assert.Contains(t, out, `data-icon="dark_mode"`)
}

func TestPresenter_ForStateSharesStyles(t *testing.T) {
	base := theme.NewPresenter(context.Background(), nil, config.DefaultConfig())
	assert.False(t, base.Ready())
	assert.NotEmpty(t, base.Stylesheet())

	ctrl := gomock.NewController(t)
	mockState := mocks.NewMockThemeState(ctrl)
	mockState.EXPECT().Ready().Return(readyChan(true)).AnyTimes()
	mockState.EXPECT().State().Return(entity.ThemeState{Mode: entity.ThemeModeDark, Effective: entity.SchemeDark}).AnyTimes()

	derived := base.ForState(mockState)
	require.True(t, derived.Ready())

	cfg := config.DefaultConfig()
	cfg.Appearance.DarkPalette.Surface = "#111111"
	base.UpdateFromConfig(context.Background(), cfg)

	style, ok := derived.Current()
	require.True(t, ok)
	assert.Equal(t, "#111111", style.Palette.Surface)
}
