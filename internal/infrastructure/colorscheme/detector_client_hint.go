package colorscheme

import (
	"net/http"
	"strings"
)

const (
	detectorNameClientHint = "client-hint"
	priorityClientHint     = 150

	// ClientHintHeader is the user-agent client hint carrying the
	// browser's prefers-color-scheme value.
	ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"
)

// ClientHintDetector reads the prefers-color-scheme client hint of one request.
type ClientHintDetector struct {
	value string
}

// NewClientHintDetector creates a detector for the given request headers.
func NewClientHintDetector(h http.Header) *ClientHintDetector {
	return &ClientHintDetector{value: h.Get(ClientHintHeader)}
}

// Name implements port.ColorSchemeDetector.
func (*ClientHintDetector) Name() string {
	return detectorNameClientHint
}

// Priority implements port.ColorSchemeDetector.
func (*ClientHintDetector) Priority() int {
	return priorityClientHint
}

// Available implements port.ColorSchemeDetector.
func (d *ClientHintDetector) Available() bool {
	return d.value != ""
}

// Detect implements port.ColorSchemeDetector.
// Header values are structured-field tokens, possibly quoted: "dark".
func (d *ClientHintDetector) Detect() (prefersDark, ok bool) {
	switch strings.ToLower(strings.Trim(strings.TrimSpace(d.value), `"`)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}
