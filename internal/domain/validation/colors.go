// Package validation holds field checks shared by config and HTTP input.
package validation

import (
	"regexp"
	"strings"
)

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// PaletteField is one named palette color.
type PaletteField struct {
	Name  string
	Value string
}

// ValidatePaletteHex checks every field is a #RRGGBB color.
func ValidatePaletteHex(prefix string, fields ...PaletteField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}

// storageKeyRE allows keys that are valid as cookie names and storage keys.
var storageKeyRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

// ValidateStorageKey checks a preference storage key.
func ValidateStorageKey(field, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{field + " cannot be empty"}
	}
	if !storageKeyRE.MatchString(value) {
		return []string{field + " must be 1-64 characters of letters, digits, '.', '_' or '-'"}
	}
	return nil
}

var identifierRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,63}$`)

// IsIdentifier reports whether value is safe as a bare attribute name,
// element id or meta name.
func IsIdentifier(value string) bool {
	return identifierRE.MatchString(value)
}
