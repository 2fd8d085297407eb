package port

import (
	"context"

	"github.com/bnema/themesync/internal/domain/entity"
)

// SchemeSink is the raw document surface (root classes, root attribute,
// root custom properties, theme-color meta, temporary critical styles).
//
// The head script writes it once before the interactive runtime attaches.
// Claim transfers ownership to the caller; writes made through a sink that
// lost ownership fail.
type SchemeSink interface {
	// Claim makes this sink the sole writer of the document.
	Claim(ctx context.Context) error

	// ApplyScheme writes the scheme class, the theme attribute, the root
	// custom properties, inline colors and the meta color. Repeated calls
	// with the same input leave the document unchanged.
	ApplyScheme(ctx context.Context, scheme entity.EffectiveScheme, style entity.SchemeStyle) error

	// RemoveCriticalStyle removes the temporary stylesheet with the given id.
	// Returns false when no such element exists.
	RemoveCriticalStyle(ctx context.Context, id string) (bool, error)
}
