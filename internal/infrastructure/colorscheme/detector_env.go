package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "env"
	priorityEnv     = 20

	// EnvSystemScheme forces the system preference to "light" or "dark".
	EnvSystemScheme = "THEMESYNC_SYSTEM_SCHEME"

	envGTKTheme = "GTK_THEME"
)

// EnvDetector answers from THEMESYNC_SYSTEM_SCHEME, then from a ":dark"
// style GTK_THEME.
type EnvDetector struct {
	lookup func(string) string
}

func NewEnvDetector() *EnvDetector {
	return &EnvDetector{lookup: os.Getenv}
}

func (*EnvDetector) Name() string  { return detectorNameEnv }
func (*EnvDetector) Priority() int { return priorityEnv }

func (d *EnvDetector) Available() bool {
	return d.lookup(EnvSystemScheme) != "" || d.lookup(envGTKTheme) != ""
}

func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	forced := strings.ToLower(strings.TrimSpace(d.lookup(EnvSystemScheme)))
	if forced == "dark" || forced == "light" {
		return forced == "dark", true
	}
	if gtk := d.lookup(envGTKTheme); gtk != "" {
		return strings.Contains(strings.ToLower(gtk), "dark"), true
	}
	return false, false
}
