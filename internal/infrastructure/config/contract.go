package config

import (
	"strings"

	"github.com/bnema/themesync/internal/domain/entity"
)

// DocumentContract returns the document contract with the configured
// storage key, default mode and palettes.
func (c *Config) DocumentContract() entity.DocumentContract {
	contract := entity.DefaultDocumentContract()
	if c.Appearance.StorageKey != "" {
		contract.StorageKey = c.Appearance.StorageKey
	}
	if mode, ok := entity.ParseThemeModeLoose(c.Appearance.DefaultMode); ok {
		contract.DefaultMode = mode
	}

	defaults := DefaultConfig().Appearance
	contract.Light = paletteStyle(contract.Light, defaults.LightPalette, c.Appearance.LightPalette)
	contract.Dark = paletteStyle(contract.Dark, defaults.DarkPalette, c.Appearance.DarkPalette)
	return contract
}

// paletteStyle recolors style, whose colors are drawn from def, with p.
// A custom background also becomes the browser chrome color.
func paletteStyle(style entity.SchemeStyle, def, p ColorPalette) entity.SchemeStyle {
	var pairs []string
	for _, c := range [][2]string{
		{def.Background, p.Background},
		{def.Surface, p.Surface},
		{def.SurfaceVariant, p.SurfaceVariant},
		{def.Text, p.Text},
		{def.Muted, p.Muted},
		{def.Accent, p.Accent},
		{def.Border, p.Border},
	} {
		from, to := c[0], strings.ToLower(strings.TrimSpace(c[1]))
		if to != "" && to != from {
			pairs = append(pairs, from, to)
		}
	}
	if len(pairs) == 0 {
		return style
	}

	r := strings.NewReplacer(pairs...)
	out := entity.SchemeStyle{
		Properties:    make([]entity.StyleProperty, len(style.Properties)),
		Background:    r.Replace(style.Background),
		Foreground:    r.Replace(style.Foreground),
		MetaColor:     r.Replace(style.MetaColor),
		CriticalRules: r.Replace(style.CriticalRules),
	}
	for i, prop := range style.Properties {
		out.Properties[i] = entity.StyleProperty{Name: prop.Name, Value: r.Replace(prop.Value)}
	}
	if bg := strings.ToLower(strings.TrimSpace(p.Background)); bg != "" && bg != def.Background {
		out.MetaColor = bg
	}
	return out
}
