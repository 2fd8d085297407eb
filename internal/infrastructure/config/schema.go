// Package config loads themesync configuration with viper: TOML file in the
// XDG config directory, THEMESYNC_ environment overrides, defaults,
// normalization, validation and hot reload.
package config

// Config is the full configuration.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Server     ServerConfig     `mapstructure:"server" toml:"server" json:"server"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	System     SystemConfig     `mapstructure:"system" toml:"system" json:"system"`
}

// AppearanceConfig holds the theme contract and palettes.
type AppearanceConfig struct {
	// DefaultMode applies when no preference has been stored.
	DefaultMode string `mapstructure:"default_mode" toml:"default_mode" json:"default_mode" jsonschema:"enum=light,enum=dark,enum=system,default=system"`
	// StorageKey is the key of the persisted preference record.
	StorageKey string `mapstructure:"storage_key" toml:"storage_key" json:"storage_key" jsonschema:"default=theme-mode"`
	// StorageBackend is where the head script reads the record in a browser.
	StorageBackend string `mapstructure:"storage_backend" toml:"storage_backend" json:"storage_backend" jsonschema:"enum=localStorage,enum=cookie,default=cookie"`

	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text           string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border         string `mapstructure:"border" toml:"border" json:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}

// ServerConfig configures the page shell.
type ServerConfig struct {
	Listen string `mapstructure:"listen" toml:"listen" json:"listen" jsonschema:"default=127.0.0.1:8080"`
	// CookieMaxAgeDays is the lifetime of the preference cookie.
	CookieMaxAgeDays int `mapstructure:"cookie_max_age_days" toml:"cookie_max_age_days" json:"cookie_max_age_days" jsonschema:"minimum=1,default=365"`
}

// DatabaseConfig configures the local preference database.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/themesync/themesync.db.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// Dir receives themesync.log in JSON lines. Empty logs to stderr only.
	Dir        string `mapstructure:"dir" toml:"dir" json:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0,default=14"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// SystemConfig configures system color scheme detection.
type SystemConfig struct {
	// Detectors lists the enabled detectors.
	Detectors []string `mapstructure:"detectors" toml:"detectors" json:"detectors" jsonschema:"uniqueItems=true"`
	// Override forces the system preference ("light" or "dark"). Empty disables it.
	Override string `mapstructure:"override" toml:"override" json:"override" jsonschema:"enum=,enum=light,enum=dark"`
	// Monitor follows desktop changes with `gsettings monitor`.
	Monitor bool `mapstructure:"monitor" toml:"monitor" json:"monitor"`
}

// Detector names accepted in system.detectors.
const (
	DetectorEnv       = "env"
	DetectorGsettings = "gsettings"
	DetectorPortal    = "portal"
)

// Storage backends accepted in appearance.storage_backend.
const (
	StorageBackendLocalStorage = "localStorage"
	StorageBackendCookie       = "cookie"
)
