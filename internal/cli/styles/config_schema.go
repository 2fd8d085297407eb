package styles

import (
	"encoding/json"
	"strings"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

// sectionOrder follows the layout of the generated config file.
var sectionOrder = []string{
	config.SectionAppearance,
	config.SectionServer,
	config.SectionDatabase,
	config.SectionLogging,
	config.SectionSystem,
}

// ConfigSchemaRenderer lists config keys grouped by section.
type ConfigSchemaRenderer struct {
	theme *Theme
}

func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	t := r.theme
	if len(keys) == 0 {
		return t.Subtle.Render("No configuration keys found")
	}

	bySection := make(map[string][]entity.ConfigKeyInfo)
	for _, k := range keys {
		bySection[k.Section] = append(bySection[k.Section], k)
	}

	out := []string{t.Highlight.Render(IconConfig) + " " + t.Title.Render("Configuration keys"), ""}
	for _, name := range sectionOrder {
		group, ok := bySection[name]
		if !ok {
			continue
		}
		entries := make([]string, len(group))
		for i, k := range group {
			entries[i] = r.key(k)
		}
		box := t.Box.PaddingTop(0).Render(t.Highlight.Render(name) + "\n" + strings.Join(entries, "\n"))
		out = append(out, box, "")
	}
	return strings.Join(out, "\n")
}

func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	return string(data), err
}

// key renders the name, type and default, then the description and the
// accepted values or range when known.
func (r *ConfigSchemaRenderer) key(k entity.ConfigKeyInfo) string {
	t := r.theme
	var b strings.Builder
	b.WriteString(t.Normal.Bold(true).Render(k.Key))
	b.WriteString("  " + t.Subtle.Render(k.Type))
	b.WriteString("  " + t.HelpKey.Render(k.Default))
	b.WriteString("\n  " + t.Subtle.Render(k.Description))
	switch {
	case len(k.Values) > 0:
		b.WriteString("\n  " + t.Normal.Render("Values: "+strings.Join(k.Values, ", ")))
	case k.Range != "":
		b.WriteString("\n  " + t.Normal.Render("Range: "+k.Range))
	}
	return b.String()
}
