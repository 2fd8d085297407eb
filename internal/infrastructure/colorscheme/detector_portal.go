package colorscheme

import (
	"context"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	detectorNamePortal = "portal"
	priorityPortal     = 55

	portalDest        = "org.freedesktop.portal.Desktop"
	portalPath        = "/org/freedesktop/portal/desktop"
	portalSettings    = "org.freedesktop.portal.Settings"
	portalNamespace   = "org.freedesktop.appearance"
	portalKey         = "color-scheme"
	portalCallTimeout = 2 * time.Second
)

// PortalDetector reads org.freedesktop.appearance color-scheme from the
// XDG desktop portal. It works on GNOME, KDE and wlroots desktops alike,
// inside and outside of sandboxes.
type PortalDetector struct {
	connect func() (*dbus.Conn, error)

	once sync.Once
	conn *dbus.Conn
}

// NewPortalDetector creates a detector on the shared session bus.
// Nothing connects until the detector is first used.
func NewPortalDetector() *PortalDetector {
	return &PortalDetector{connect: dbus.SessionBus}
}

// Name implements port.ColorSchemeDetector.
func (*PortalDetector) Name() string {
	return detectorNamePortal
}

// Priority implements port.ColorSchemeDetector.
func (*PortalDetector) Priority() int {
	return priorityPortal
}

func (d *PortalDetector) bus() *dbus.Conn {
	d.once.Do(func() {
		conn, err := d.connect()
		if err == nil {
			d.conn = conn
		}
	})
	return d.conn
}

// Available implements port.ColorSchemeDetector.
// Returns true when a session bus is reachable.
func (d *PortalDetector) Available() bool {
	return d.bus() != nil
}

// Detect implements port.ColorSchemeDetector.
func (d *PortalDetector) Detect() (prefersDark, ok bool) {
	conn := d.bus()
	if conn == nil {
		return false, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), portalCallTimeout)
	defer cancel()

	obj := conn.Object(portalDest, portalPath)
	var value dbus.Variant
	err := obj.CallWithContext(ctx, portalSettings+".ReadOne", 0, portalNamespace, portalKey).Store(&value)
	if err != nil {
		// Portal versions before 2 only have the deprecated Read.
		if err = obj.CallWithContext(ctx, portalSettings+".Read", 0, portalNamespace, portalKey).Store(&value); err != nil {
			return false, false
		}
	}
	return parsePortalValue(value)
}

// parsePortalValue maps the portal enum: 0 no preference, 1 prefer dark,
// 2 prefer light. The deprecated Read wraps the value in a second variant.
func parsePortalValue(v dbus.Variant) (prefersDark, ok bool) {
	if inner, nested := v.Value().(dbus.Variant); nested {
		v = inner
	}
	switch n, _ := v.Value().(uint32); n {
	case 1:
		return true, true
	case 2:
		return false, true
	default:
		return false, false
	}
}
