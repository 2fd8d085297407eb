package colorscheme

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 50

	gsettingsSchema  = "org.gnome.desktop.interface"
	gsettingsKey     = "color-scheme"
	gsettingsTimeout = 2 * time.Second
)

// GsettingsDetector reads GNOME's interface color-scheme key.
type GsettingsDetector struct {
	bin string
	run func(ctx context.Context, bin string, args ...string) ([]byte, error)
}

func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{
		bin: "gsettings",
		run: func(ctx context.Context, bin string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, bin, args...).Output()
		},
	}
}

func (*GsettingsDetector) Name() string  { return detectorNameGsettings }
func (*GsettingsDetector) Priority() int { return priorityGsettings }

// Available reports whether the gsettings binary is on PATH.
func (d *GsettingsDetector) Available() bool {
	_, err := exec.LookPath(d.bin)
	return err == nil
}

func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), gsettingsTimeout)
	defer cancel()

	out, err := d.run(ctx, d.bin, "get", gsettingsSchema, gsettingsKey)
	if err != nil {
		return false, false
	}
	return parseGsettingsValue(string(out))
}

// parseGsettingsValue accepts both `get` output ("'prefer-dark'") and
// `monitor` lines ("color-scheme: 'prefer-dark'"). "default" is no answer.
func parseGsettingsValue(raw string) (prefersDark, ok bool) {
	v := strings.TrimSpace(raw)
	if _, after, found := strings.Cut(v, ":"); found {
		v = strings.TrimSpace(after)
	}
	switch strings.Trim(v, `'"`) {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	}
	return false, false
}
