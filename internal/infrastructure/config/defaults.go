package config

import (
	"github.com/bnema/themesync/internal/domain/entity"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			DefaultMode:    string(entity.DefaultThemeMode),
			StorageKey:     entity.DefaultDocumentContract().StorageKey,
			StorageBackend: StorageBackendCookie,
			LightPalette: ColorPalette{
				Background:     "#ffffff",
				Surface:        "#f8fafc",
				SurfaceVariant: "#f1f5f9",
				Text:           "#0f172a",
				Muted:          "#64748b",
				Accent:         "#2563eb",
				Border:         "#e2e8f0",
			},
			DarkPalette: ColorPalette{
				Background:     "#0f172a",
				Surface:        "#1e293b",
				SurfaceVariant: "#273449",
				Text:           "#f8fafc",
				Muted:          "#cbd5e1",
				Accent:         "#3b82f6",
				Border:         "#334155",
			},
		},
		Server: ServerConfig{
			Listen:           "127.0.0.1:8080",
			CookieMaxAgeDays: 365,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
		System: SystemConfig{
			Detectors: []string{DetectorPortal, DetectorEnv, DetectorGsettings},
			Monitor:   true,
		},
	}
}
