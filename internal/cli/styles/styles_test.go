package styles_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

func TestNewTheme_FollowsScheme(t *testing.T) {
	cfg := config.DefaultConfig()

	light := styles.NewTheme(cfg, entity.SchemeLight)
	dark := styles.NewTheme(cfg, entity.SchemeDark)

	assert.Equal(t, entity.SchemeLight, light.Scheme)
	assert.Equal(t, entity.SchemeDark, dark.Scheme)
	assert.NotEqual(t, light.Background, dark.Background)
}

func TestModeRenderer_ShowsSourceOnlyForSystem(t *testing.T) {
	r := styles.NewModeRenderer(styles.NewTheme(config.DefaultConfig(), entity.SchemeDark))

	out := r.Render(entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeDark}, "portal")
	assert.Contains(t, out, "system")
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "via portal")

	out = r.Render(entity.ThemeState{Mode: entity.ThemeModeLight, Effective: entity.SchemeLight}, "portal")
	assert.NotContains(t, out, "via portal")
}

func TestVerifyRenderer_ListsFailures(t *testing.T) {
	r := styles.NewVerifyRenderer(styles.NewTheme(config.DefaultConfig(), entity.SchemeLight))

	out := r.Render("cookie", []styles.ParityRow{
		{Stored: "absent", System: "dark", Want: "dark", Got: "dark", OK: true},
		{Stored: "unknown", System: "light", Want: "light", Got: "dark", Err: "boom"},
	})
	assert.Contains(t, out, "Head script parity")
	assert.Contains(t, out, "cookie")
	assert.Contains(t, out, "stored unknown, system light: want light, got dark (boom)")
}

func TestDoctorRenderer_Sections(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme(config.DefaultConfig(), entity.SchemeLight))

	out := r.Render(styles.DoctorReport{
		Config: styles.DoctorConfigReport{File: "/tmp/themesync/config.toml"},
		System: styles.DoctorSystemReport{
			Detectors: []styles.DoctorDetector{
				{Name: "portal", Priority: 55},
				{Name: "env", Priority: 10, Available: true, Answered: true, PrefersDark: true},
			},
			Scheme: entity.SchemeDark,
			Source: "env",
		},
		Store:  styles.DoctorStoreReport{Path: "/tmp/themesync.db", Error: "locked"},
		Script: styles.DoctorScriptReport{Backend: "cookie", Digest: "'sha256-x'", Cases: 24, Failures: 1},
	})

	for _, want := range []string{"Needs attention", "config.toml", "unavailable", "priority 55", "via env", "locked", "1 of 24 parity cases fail"} {
		assert.Contains(t, out, want)
	}
}

func TestDoctorRenderer_StoreNotOpened(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme(config.DefaultConfig(), entity.SchemeLight))

	out := r.Render(styles.DoctorReport{
		Store: styles.DoctorStoreReport{Path: "/tmp/themesync.db", Error: "permission denied"},
	})
	assert.Contains(t, out, "cannot open: permission denied")

	out = r.Render(styles.DoctorReport{
		Store: styles.DoctorStoreReport{Path: "/tmp/themesync.db", Opened: true, Error: "locked"},
	})
	assert.Contains(t, out, "locked")
	assert.NotContains(t, out, "cannot open")
}

func TestParityRow_ToRow(t *testing.T) {
	row := styles.ParityRow{Stored: "absent", System: "unavailable", Want: "light", CriticalStyle: true, Meta: "#ffffff"}.ToRow()
	require.Len(t, row, len(styles.ParityTableColumns()))
	assert.Equal(t, "-", row[3])
	assert.Equal(t, "present", row[4])
	assert.Equal(t, "FAIL", row[6])
}

func TestConfigSchemaRenderer_GroupsBySection(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme(nil, entity.SchemeLight))
	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "system.detectors", Section: config.SectionSystem, Type: "[]string"},
		{Key: "appearance.default_mode", Section: config.SectionAppearance, Type: "string", Values: []string{"light", "dark", "system"}},
	})

	assert.Less(t, strings.Index(out, "appearance.default_mode"), strings.Index(out, "system.detectors"))
	assert.Contains(t, out, "Values: light, dark, system")

	assert.Contains(t, r.Render(nil), "No configuration keys")
}
