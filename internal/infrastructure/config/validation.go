package config

import (
	"fmt"
	"net"
	"slices"
	"strings"

	"github.com/bnema/themesync/internal/domain/entity"
	domainvalidation "github.com/bnema/themesync/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSystem(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	a := config.Appearance

	if _, ok := entity.ParseThemeMode(a.DefaultMode); !ok {
		validationErrors = append(validationErrors, "appearance.default_mode must be one of: light, dark, system")
	}
	validationErrors = append(validationErrors, domainvalidation.ValidateStorageKey("appearance.storage_key", a.StorageKey)...)
	if a.StorageBackend != StorageBackendCookie && a.StorageBackend != StorageBackendLocalStorage {
		validationErrors = append(validationErrors, "appearance.storage_backend must be one of: localStorage, cookie")
	}
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", a.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", a.DarkPalette)...)
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	return domainvalidation.ValidatePaletteHex(prefix,
		domainvalidation.PaletteField{Name: "background", Value: p.Background},
		domainvalidation.PaletteField{Name: "surface", Value: p.Surface},
		domainvalidation.PaletteField{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.PaletteField{Name: "text", Value: p.Text},
		domainvalidation.PaletteField{Name: "muted", Value: p.Muted},
		domainvalidation.PaletteField{Name: "accent", Value: p.Accent},
		domainvalidation.PaletteField{Name: "border", Value: p.Border},
	)
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Server.Listen); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("server.listen must be host:port (%v)", err))
	}
	if config.Server.CookieMaxAgeDays < 1 {
		validationErrors = append(validationErrors, "server.cookie_max_age_days must be at least 1")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validLevels := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if !slices.Contains(validLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s", strings.Join(validLevels, ", ")))
	}
	validFormats := []string{"console", "json"}
	if !slices.Contains(validFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: %s", strings.Join(validFormats, ", ")))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must not be negative")
	}
	return validationErrors
}

var knownDetectors = []string{DetectorPortal, DetectorGsettings, DetectorEnv}

func validateSystem(config *Config) []string {
	var validationErrors []string
	for _, d := range config.System.Detectors {
		if !slices.Contains(knownDetectors, d) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("system.detectors: unknown detector %q (valid: %s)", d, strings.Join(knownDetectors, ", ")))
		}
	}
	switch config.System.Override {
	case "", "light", "dark":
	default:
		validationErrors = append(validationErrors, "system.override must be empty, light or dark")
	}
	return validationErrors
}
