package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ExplicitModeIgnoresSystem(t *testing.T) {
	for _, system := range []EffectiveScheme{SchemeLight, SchemeDark} {
		assert.Equal(t, SchemeLight, Resolve(ThemeModeLight, system))
		assert.Equal(t, SchemeDark, Resolve(ThemeModeDark, system))
	}
}

func TestResolve_SystemFollowsSystem(t *testing.T) {
	assert.Equal(t, SchemeLight, Resolve(ThemeModeSystem, SchemeLight))
	assert.Equal(t, SchemeDark, Resolve(ThemeModeSystem, SchemeDark))
}

func TestResolve_UnknownSystemFallsBackToLight(t *testing.T) {
	assert.Equal(t, SchemeLight, Resolve(ThemeModeSystem, ""))
}

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		in     string
		want   ThemeMode
		wantOK bool
	}{
		{"light", ThemeModeLight, true},
		{"dark", ThemeModeDark, true},
		{"system", ThemeModeSystem, true},
		{"", "", false},
		{"Dark", "", false},
		{"auto", "", false},
		{`"dark"`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseThemeMode(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseThemeModeLoose(t *testing.T) {
	got, ok := ParseThemeModeLoose("  Dark ")
	assert.True(t, ok)
	assert.Equal(t, ThemeModeDark, got)

	_, ok = ParseThemeModeLoose("prefer-dark")
	assert.False(t, ok)
}

func TestEffectiveScheme_Opposite(t *testing.T) {
	assert.Equal(t, SchemeDark, SchemeLight.Opposite())
	assert.Equal(t, SchemeLight, SchemeDark.Opposite())
	assert.Equal(t, ThemeModeDark, SchemeDark.Mode())
	assert.Equal(t, ThemeModeLight, SchemeLight.Mode())
}

func TestDefaultDocumentContract(t *testing.T) {
	c := DefaultDocumentContract()

	assert.Equal(t, "theme-mode", c.StorageKey)
	assert.Equal(t, ThemeModeSystem, c.DefaultMode)
	assert.Equal(t, "#1f2937", c.Style(SchemeDark).MetaColor)
	assert.Equal(t, "#ffffff", c.Style(SchemeLight).MetaColor)
	assert.Empty(t, c.Light.CriticalRules)
	assert.NotEmpty(t, c.Dark.CriticalRules)

	// Both schemes must write the same property names so a switch is
	// an overwrite.
	var lightNames, darkNames []string
	for _, p := range c.Light.Properties {
		lightNames = append(lightNames, p.Name)
	}
	for _, p := range c.Dark.Properties {
		darkNames = append(darkNames, p.Name)
	}
	assert.Equal(t, lightNames, darkNames)
}
