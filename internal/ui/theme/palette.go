// Package theme is the scheme-aware presentation layer: palettes, the two
// precomputed style configs, the mode controls and the neutral loading
// state. It never resolves a scheme itself; it renders what the theme
// controller published.
package theme

import (
	"fmt"
	"strings"

	"github.com/bnema/themesync/internal/domain/validation"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

// Palette holds semantic color tokens for one scheme.
type Palette struct {
	Background     string // Page background
	Surface        string // Cards, menus, the auth paper
	SurfaceVariant string // Secondary surfaces
	Text           string // Primary text color
	Muted          string // Secondary links and hints
	Accent         string // Primary links and actions
	Border         string // Borders and dividers
	// Status colors are not user-editable.
	Success     string
	Warning     string
	Destructive string
}

// DefaultDarkPalette returns the default dark palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0f172a",
		Surface:        "#1e293b",
		SurfaceVariant: "#273449",
		Text:           "#f8fafc",
		Muted:          "#cbd5e1",
		Accent:         "#3b82f6",
		Border:         "#334155",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#ef4444",
	}
}

// DefaultLightPalette returns the default light palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#ffffff",
		Surface:        "#f8fafc",
		SurfaceVariant: "#f1f5f9",
		Text:           "#0f172a",
		Muted:          "#64748b",
		Accent:         "#2563eb",
		Border:         "#e2e8f0",
		Success:        "#16a34a",
		Warning:        "#d97706",
		Destructive:    "#dc2626",
	}
}

// PaletteFromConfig creates a Palette from config values, filling missing values with defaults.
func PaletteFromConfig(cfg *config.ColorPalette, isDark bool) Palette {
	defaults := DefaultLightPalette()
	if isDark {
		defaults = DefaultDarkPalette()
	}
	if cfg == nil {
		return defaults
	}

	return Palette{
		Background:     Coalesce(cfg.Background, defaults.Background),
		Surface:        Coalesce(cfg.Surface, defaults.Surface),
		SurfaceVariant: Coalesce(cfg.SurfaceVariant, defaults.SurfaceVariant),
		Text:           Coalesce(cfg.Text, defaults.Text),
		Muted:          Coalesce(cfg.Muted, defaults.Muted),
		Accent:         Coalesce(cfg.Accent, defaults.Accent),
		Border:         Coalesce(cfg.Border, defaults.Border),
		Success:        defaults.Success,
		Warning:        defaults.Warning,
		Destructive:    defaults.Destructive,
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate checks all editable palette colors are #RRGGBB values.
func (p Palette) Validate() error {
	errs := validation.ValidatePaletteHex("palette",
		validation.PaletteField{Name: "background", Value: p.Background},
		validation.PaletteField{Name: "surface", Value: p.Surface},
		validation.PaletteField{Name: "surface_variant", Value: p.SurfaceVariant},
		validation.PaletteField{Name: "text", Value: p.Text},
		validation.PaletteField{Name: "muted", Value: p.Muted},
		validation.PaletteField{Name: "accent", Value: p.Accent},
		validation.PaletteField{Name: "border", Value: p.Border},
	)
	if len(errs) > 0 {
		return fmt.Errorf("invalid palette: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ToCSSVars generates the custom property declarations of the palette,
// one per line, indented for a rule body.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	sb.WriteString("  --bg: " + p.Background + ";\n")
	sb.WriteString("  --surface: " + p.Surface + ";\n")
	sb.WriteString("  --surface-variant: " + p.SurfaceVariant + ";\n")
	sb.WriteString("  --text: " + p.Text + ";\n")
	sb.WriteString("  --muted: " + p.Muted + ";\n")
	sb.WriteString("  --accent: " + p.Accent + ";\n")
	sb.WriteString("  --border: " + p.Border + ";\n")
	sb.WriteString("  --success: " + p.Success + ";\n")
	sb.WriteString("  --warning: " + p.Warning + ";\n")
	sb.WriteString("  --destructive: " + p.Destructive + ";\n")
	return sb.String()
}
