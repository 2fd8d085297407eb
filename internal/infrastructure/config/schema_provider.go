package config

import (
	"fmt"
	"strings"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionAppearance = "Appearance"
	SectionServer     = "Server"
	SectionDatabase   = "Database"
	SectionLogging    = "Logging"
	SectionSystem     = "System"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getServerKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getSystemKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	modes := make([]string, 0, 3)
	for _, m := range entity.ThemeModes() {
		modes = append(modes, m.String())
	}
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.default_mode",
			Type:        "string",
			Default:     defaults.Appearance.DefaultMode,
			Description: "Theme mode used until the user picks one",
			Values:      modes,
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.storage_key",
			Type:        "string",
			Default:     defaults.Appearance.StorageKey,
			Description: "Key of the stored preference (cookie name in the page shell)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.storage_backend",
			Type:        "string",
			Default:     defaults.Appearance.StorageBackend,
			Description: "Where the head script reads the preference",
			Values:      []string{StorageBackendLocalStorage, StorageBackendCookie},
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.light_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Light palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Dark palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
	}
}

func (*SchemaProvider) getServerKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "server.listen",
			Type:        "string",
			Default:     defaults.Server.Listen,
			Description: "Address the page shell listens on",
			Section:     SectionServer,
		},
		{
			Key:         "server.cookie_max_age_days",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Server.CookieMaxAgeDays),
			Description: "Lifetime of the preference cookie",
			Range:       ">=1",
			Section:     SectionServer,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/themesync/themesync.db",
			Description: "SQLite file holding the CLI preference",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.dir",
			Type:        "string",
			Default:     "",
			Description: "Directory for rotated JSON log files (empty = stderr only)",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Size at which the log file is rotated",
			Range:       "1+",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated files kept (0 = unlimited)",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAgeDays),
			Description: "Days rotated files are kept (0 = forever)",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.Compress),
			Description: "Gzip rotated files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getSystemKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "system.detectors",
			Type:        "[]string",
			Default:     strings.Join(defaults.System.Detectors, ","),
			Description: "Enabled system color scheme detectors",
			Values:      []string{DetectorPortal, DetectorGsettings, DetectorEnv},
			Section:     SectionSystem,
		},
		{
			Key:         "system.override",
			Type:        "string",
			Default:     defaults.System.Override,
			Description: "Force the system preference (THEMESYNC_SYSTEM_SCHEME)",
			Values:      []string{"", "light", "dark"},
			Section:     SectionSystem,
		},
		{
			Key:         "system.monitor",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.System.Monitor),
			Description: "Follow desktop changes with gsettings monitor",
			Section:     SectionSystem,
		},
	}
}
