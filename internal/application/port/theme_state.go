package port

import (
	"context"

	"github.com/bnema/themesync/internal/domain/entity"
)

// ThemeState is what the presentation layer sees of the theme controller:
// read-only state plus the two mutators.
type ThemeState interface {
	// State returns the published state.
	State() entity.ThemeState

	// Ready is closed once the first reconciliation completed.
	Ready() <-chan struct{}

	// SetMode changes the mode.
	SetMode(ctx context.Context, mode entity.ThemeMode) (entity.ThemeState, error)

	// ToggleTheme flips the effective scheme.
	ToggleTheme(ctx context.Context) (entity.ThemeState, error)

	// Subscribe registers fn for state changes and returns an unsubscribe func.
	Subscribe(fn func(entity.ThemeState)) func()
}
