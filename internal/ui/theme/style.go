package theme

import (
	"fmt"
	"strings"

	"github.com/bnema/themesync/internal/domain/entity"
)

// StyleConfig is the precomputed style of one effective scheme.
type StyleConfig struct {
	Scheme entity.EffectiveScheme
	// ClassName is the root class of the scheme.
	ClassName string
	// ColorScheme is the CSS color-scheme value for native widgets.
	ColorScheme string
	Palette     Palette
	// CSSVars is the custom property block of the palette.
	CSSVars string
}

func newStyleConfig(scheme entity.EffectiveScheme, palette Palette) StyleConfig {
	return StyleConfig{
		Scheme:      scheme,
		ClassName:   scheme.String(),
		ColorScheme: scheme.String(),
		Palette:     palette,
		CSSVars:     palette.ToCSSVars(),
	}
}

// Selector returns the CSS selector matching a root painted with this scheme.
func (s StyleConfig) Selector(attribute string) string {
	return fmt.Sprintf(`[%s="%s"]`, attribute, s.Scheme)
}

const baseRules = `body {
  margin: 0;
  background-color: var(--bg, Canvas);
  color: var(--text, CanvasText);
  font-family: system-ui, sans-serif;
}
a { color: var(--accent, LinkText); }
.auth-paper {
  max-width: 24rem;
  margin: 4rem auto;
  padding: 2rem;
  background-color: var(--auth-bg-color, var(--surface));
  border: 1px solid var(--auth-border-color, var(--border));
  border-radius: 8px;
}
.auth-divider {
  border: 0;
  border-top: 1px solid var(--auth-divider-color, var(--border));
  background-color: var(--auth-divider-bg, transparent);
}
.theme-toolbar { display: flex; justify-content: flex-end; padding: 0.5rem 1rem; }
.theme-button {
  background: none;
  border: 0;
  color: inherit;
  cursor: pointer;
  font-size: 1.25rem;
  border-radius: 50%;
  transition: transform 0.2s ease-in-out;
}
.theme-button:hover { transform: scale(1.1); }
.theme-menu { min-width: 160px; }
.theme-menu button { display: flex; align-items: center; gap: 0.5rem; width: 100%; }
.theme-menu [aria-checked="true"] { font-weight: 600; }
.theme-check { color: var(--accent); margin-left: auto; }
`

// buildStylesheet renders both schemes keyed by the root attribute.
// The document root selects one of them; no rule depends on a scheme
// being known in advance.
func buildStylesheet(attribute string, configs ...StyleConfig) string {
	var sb strings.Builder
	sb.WriteString(":root { color-scheme: light dark; }\n")
	for _, c := range configs {
		fmt.Fprintf(&sb, "%s {\n  color-scheme: %s;\n%s}\n", c.Selector(attribute), c.ColorScheme, c.CSSVars)
	}
	sb.WriteString(baseRules)
	return sb.String()
}
