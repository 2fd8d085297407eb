package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/themesync/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfigFile uses path instead of the XDG config file.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		m.configFile = path
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configFile == "" {
		configFile, err := GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configFile = configFile
	}

	v := m.viper
	v.SetConfigFile(m.configFile)
	v.SetConfigType("toml")

	// THEMESYNC_SERVER_LISTEN, THEMESYNC_APPEARANCE_DEFAULT_MODE, ...
	v.SetEnvPrefix("THEMESYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "THEMESYNC_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESYNC_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "THEMESYNC_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESYNC_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("system.override", "THEMESYNC_SYSTEM_SCHEME"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESYNC_SYSTEM_SCHEME: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload unmarshals, normalizes and validates. Caller holds m.mu for write.
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	if mode, ok := entity.ParseThemeModeLoose(config.Appearance.DefaultMode); ok {
		config.Appearance.DefaultMode = string(mode)
	} else if strings.TrimSpace(config.Appearance.DefaultMode) == "" {
		config.Appearance.DefaultMode = string(entity.DefaultThemeMode)
	}

	config.Appearance.StorageKey = strings.TrimSpace(config.Appearance.StorageKey)

	switch strings.ToLower(strings.TrimSpace(config.Appearance.StorageBackend)) {
	case "", strings.ToLower(StorageBackendCookie):
		config.Appearance.StorageBackend = StorageBackendCookie
	case strings.ToLower(StorageBackendLocalStorage), "local_storage":
		config.Appearance.StorageBackend = StorageBackendLocalStorage
	}

	config.Appearance.LightPalette = normalizePalette(config.Appearance.LightPalette)
	config.Appearance.DarkPalette = normalizePalette(config.Appearance.DarkPalette)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}

	config.System.Override = strings.ToLower(strings.TrimSpace(config.System.Override))
	detectors := make([]string, 0, len(config.System.Detectors))
	for _, d := range config.System.Detectors {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" && !slices.Contains(detectors, d) {
			detectors = append(detectors, d)
		}
	}
	config.System.Detectors = detectors

	if config.Server.CookieMaxAgeDays == 0 {
		config.Server.CookieMaxAgeDays = DefaultConfig().Server.CookieMaxAgeDays
	}
}

func normalizePalette(p ColorPalette) ColorPalette {
	lower := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return ColorPalette{
		Background:     lower(p.Background),
		Surface:        lower(p.Surface),
		SurfaceVariant: lower(p.SurfaceVariant),
		Text:           lower(p.Text),
		Muted:          lower(p.Muted),
		Accent:         lower(p.Accent),
		Border:         lower(p.Border),
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// clone copies cfg so callers can mutate it freely.
func (c *Config) clone() *Config {
	out := *c
	out.System.Detectors = slices.Clone(c.System.Detectors)
	return &out
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	dir := filepath.Dir(m.configFile)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	if err := writeConfigFile(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(dir); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is resolved in reload(), no default written
	m.setAppearanceDefaults(defaults)
	m.viper.SetDefault("server.listen", defaults.Server.Listen)
	m.viper.SetDefault("server.cookie_max_age_days", defaults.Server.CookieMaxAgeDays)
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.dir", defaults.Logging.Dir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
	m.viper.SetDefault("system.detectors", defaults.System.Detectors)
	m.viper.SetDefault("system.override", defaults.System.Override)
	m.viper.SetDefault("system.monitor", defaults.System.Monitor)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.default_mode", defaults.Appearance.DefaultMode)
	m.viper.SetDefault("appearance.storage_key", defaults.Appearance.StorageKey)
	m.viper.SetDefault("appearance.storage_backend", defaults.Appearance.StorageBackend)
	m.setPaletteDefaults("appearance.light_palette", defaults.Appearance.LightPalette)
	m.setPaletteDefaults("appearance.dark_palette", defaults.Appearance.DarkPalette)
}

func (m *Manager) setPaletteDefaults(prefix string, p ColorPalette) {
	m.viper.SetDefault(prefix+".background", p.Background)
	m.viper.SetDefault(prefix+".surface", p.Surface)
	m.viper.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	m.viper.SetDefault(prefix+".text", p.Text)
	m.viper.SetDefault(prefix+".muted", p.Muted)
	m.viper.SetDefault(prefix+".accent", p.Accent)
	m.viper.SetDefault(prefix+".border", p.Border)
}
