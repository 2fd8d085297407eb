package colorscheme

import "sync/atomic"

const (
	detectorNameStatic = "override"
	priorityStatic     = 200
)

// StaticDetector reports a fixed preference that can be changed at runtime.
// Used for explicit CLI overrides and to simulate system changes.
type StaticDetector struct {
	name      string
	available atomic.Bool
	dark      atomic.Bool
}

// NewStaticDetector creates a detector that reports prefersDark.
func NewStaticDetector(prefersDark bool) *StaticDetector {
	d := &StaticDetector{name: detectorNameStatic}
	d.available.Store(true)
	d.dark.Store(prefersDark)
	return d
}

// Name implements port.ColorSchemeDetector.
func (d *StaticDetector) Name() string {
	return d.name
}

// Priority implements port.ColorSchemeDetector.
func (*StaticDetector) Priority() int {
	return priorityStatic
}

// Available implements port.ColorSchemeDetector.
func (d *StaticDetector) Available() bool {
	return d.available.Load()
}

// Detect implements port.ColorSchemeDetector.
func (d *StaticDetector) Detect() (prefersDark, ok bool) {
	if !d.Available() {
		return false, false
	}
	return d.dark.Load(), true
}

// Set changes the reported preference.
func (d *StaticDetector) Set(prefersDark bool) {
	d.dark.Store(prefersDark)
}

// SetAvailable toggles whether the detector answers at all.
func (d *StaticDetector) SetAvailable(available bool) {
	d.available.Store(available)
}
