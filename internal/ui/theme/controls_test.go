package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

func TestModeTooltip(t *testing.T) {
	tests := []struct {
		state entity.ThemeState
		want  string
	}{
		{entity.ThemeState{Mode: entity.ThemeModeLight, Effective: entity.SchemeLight}, "Light theme"},
		{entity.ThemeState{Mode: entity.ThemeModeDark, Effective: entity.SchemeDark}, "Dark theme"},
		{entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeDark}, "System (dark)"},
		{entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeLight}, "System (light)"},
		{entity.ThemeState{}, "Change theme"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ModeTooltip(tt.state))
	}
}

func TestNewModeMenu(t *testing.T) {
	menu := NewModeMenu(entity.ThemeState{Mode: entity.ThemeModeDark, Effective: entity.SchemeDark})

	assert.Equal(t, IconDarkMode, menu.Icon)
	if assert.Len(t, menu.Options, 3) {
		assert.Equal(t, ModeOption{Mode: entity.ThemeModeLight, Label: "Light", Icon: IconLightMode}, menu.Options[0])
		assert.Equal(t, ModeOption{Mode: entity.ThemeModeDark, Label: "Dark", Icon: IconDarkMode, Selected: true}, menu.Options[1])
		assert.Equal(t, ModeOption{Mode: entity.ThemeModeSystem, Label: "System", Icon: IconSettingsBrightness}, menu.Options[2])
	}
}

func TestNewSimpleToggle_ShowsTargetScheme(t *testing.T) {
	toggle := NewSimpleToggle(entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeDark})

	assert.Equal(t, entity.SchemeLight, toggle.Target)
	assert.Equal(t, IconLightMode, toggle.Icon)
	assert.Equal(t, "Switch to light theme", toggle.Tooltip)
}

func TestNewPlaceholder(t *testing.T) {
	p := NewPlaceholder()
	assert.Equal(t, IconSettingsBrightness, p.Icon)
	assert.Equal(t, "Change theme", p.AriaLabel)
}

func TestIconGlyph(t *testing.T) {
	for _, icon := range []Icon{IconLightMode, IconDarkMode, IconSettingsBrightness, IconCheck} {
		assert.NotEmpty(t, icon.Glyph(), icon)
	}
	assert.Empty(t, Icon("unknown").Glyph())
}

func TestPaletteFromConfig(t *testing.T) {
	assert.Equal(t, DefaultLightPalette(), PaletteFromConfig(nil, false))
	assert.Equal(t, DefaultDarkPalette(), PaletteFromConfig(nil, true))

	p := PaletteFromConfig(&config.ColorPalette{Accent: "#ff0000"}, false)
	assert.Equal(t, "#ff0000", p.Accent)
	assert.Equal(t, DefaultLightPalette().Background, p.Background)
	assert.Equal(t, DefaultLightPalette().Destructive, p.Destructive)
}

func TestPaletteValidate(t *testing.T) {
	assert.NoError(t, DefaultLightPalette().Validate())
	assert.NoError(t, DefaultDarkPalette().Validate())

	p := DefaultDarkPalette()
	p.Border = "slate"
	err := p.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "palette.border")
	}
}

func TestBuildStylesheet_KeysByAttribute(t *testing.T) {
	css := buildStylesheet("data-theme", newStyleConfig(entity.SchemeDark, DefaultDarkPalette()))
	assert.Contains(t, css, "[data-theme=\"dark\"] {\n  color-scheme: dark;\n  --bg: #0f172a;")
}
