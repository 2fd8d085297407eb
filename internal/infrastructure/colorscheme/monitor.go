package colorscheme

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/logging"
)

const (
	detectorNameMonitor = "gsettings-monitor"
	priorityMonitor     = 60
)

// Monitor follows live desktop color-scheme changes through
// `gsettings monitor` and refreshes the resolver on every change.
type Monitor struct {
	resolver port.SystemPreferenceReader
	detector *StaticDetector
	command  string
}

// NewMonitor creates a monitor that feeds resolver.
// Its detector is registered on the resolver and stays unavailable until
// the first value is seen.
func NewMonitor(resolver port.SystemPreferenceReader) *Monitor {
	detector := NewStaticDetector(false)
	detector.name = detectorNameMonitor
	detector.SetAvailable(false)
	resolver.RegisterDetector(monitorDetector{detector})

	return &Monitor{
		resolver: resolver,
		detector: detector,
		command:  "gsettings",
	}
}

// monitorDetector lowers the static detector priority so explicit
// overrides still win.
type monitorDetector struct {
	*StaticDetector
}

func (monitorDetector) Priority() int {
	return priorityMonitor
}

// Available reports whether the gsettings binary exists.
func (m *Monitor) Available() bool {
	_, err := exec.LookPath(m.command)
	return err == nil
}

// Run blocks until ctx is cancelled or the monitor process exits.
func (m *Monitor) Run(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str(logging.ComponentField, "colorscheme-monitor").Logger()

	cmd := exec.CommandContext(ctx, m.command, "monitor", gsettingsSchema, gsettingsKey)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("gsettings monitor pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start gsettings monitor: %w", err)
	}
	log.Debug().Msg("following desktop color-scheme changes")

	m.Consume(ctx, stdout)

	if err := cmd.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("gsettings monitor exited: %w", err)
	}
	return nil
}

// Consume reads monitor lines from r until EOF or cancellation.
func (m *Monitor) Consume(ctx context.Context, r io.Reader) {
	log := logging.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		prefersDark, ok := parseGsettingsValue(scanner.Text())
		m.detector.SetAvailable(ok)
		if ok {
			m.detector.Set(prefersDark)
		}
		pref := m.resolver.Refresh()
		log.Debug().
			Str("line", scanner.Text()).
			Bool("prefers_dark", pref.PrefersDark).
			Str("source", pref.Source).
			Msg("desktop color-scheme changed")
	}
}
