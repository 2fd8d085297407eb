package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

var (
	// ErrInvalidMode is returned by SetMode for values outside light/dark/system.
	ErrInvalidMode = errors.New("invalid theme mode")
	// ErrNotInitialized is returned by mutators called before Initialize.
	ErrNotInitialized = errors.New("theme controller not initialized")
)

// ManageThemeUseCase is the theme state controller. It owns the preference
// record and, after Initialize, the document.
//
// Uninitialized -> Initialized happens once, in Initialize. Every other
// operation is a transition within Initialized.
type ManageThemeUseCase struct {
	store    port.PreferenceStore
	system   port.SystemPreferenceReader
	sink     port.SchemeSink
	contract entity.DocumentContract

	mu       sync.Mutex
	state    entity.ThemeState
	hydrated bool
	closed   bool
	ready    chan struct{}

	// notifyCtx carries the logger for system change callbacks.
	notifyCtx      context.Context
	unsubscribeSys func()

	subMu   sync.Mutex
	subs    map[uint64]func(entity.ThemeState)
	nextSub uint64
}

var _ port.ThemeState = (*ManageThemeUseCase)(nil)

// NewManageThemeUseCase creates a controller. Nothing is read or written
// until Initialize.
func NewManageThemeUseCase(
	store port.PreferenceStore,
	system port.SystemPreferenceReader,
	sink port.SchemeSink,
	contract entity.DocumentContract,
) *ManageThemeUseCase {
	if !contract.DefaultMode.Valid() {
		contract.DefaultMode = entity.DefaultThemeMode
	}
	return &ManageThemeUseCase{
		store:    store,
		system:   system,
		sink:     sink,
		contract: contract,
		state: entity.ThemeState{
			Mode:      contract.DefaultMode,
			Effective: entity.FallbackScheme,
		},
		ready: make(chan struct{}),
		subs:  make(map[uint64]func(entity.ThemeState)),
	}
}

func (uc *ManageThemeUseCase) logger(ctx context.Context) *zerolog.Logger {
	return logging.FromContext(logging.WithComponent(ctx, "theme-controller"))
}

// Initialize reconciles with the document primed by the head script and
// publishes the first state. Only the first call has effect; later calls,
// or calls after Close, return the current state.
func (uc *ManageThemeUseCase) Initialize(ctx context.Context) entity.ThemeState {
	log := uc.logger(ctx)

	uc.mu.Lock()
	if uc.hydrated || uc.closed {
		s := uc.state
		uc.mu.Unlock()
		return s
	}

	mode := uc.readMode(ctx)
	effective := entity.Resolve(mode, uc.systemScheme())

	if err := uc.sink.Claim(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to claim document")
	}
	removed, err := uc.sink.RemoveCriticalStyle(ctx, uc.contract.CriticalStyleID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to remove critical style")
	} else if removed {
		log.Debug().Str("id", uc.contract.CriticalStyleID).Msg("critical style removed")
	}
	uc.apply(ctx, effective)

	uc.state = entity.ThemeState{Mode: mode, Effective: effective}
	uc.hydrated = true
	uc.notifyCtx = context.WithoutCancel(ctx)
	uc.unsubscribeSys = uc.system.OnChange(uc.onSystemChange)
	close(uc.ready)
	s := uc.state
	uc.mu.Unlock()

	log.Debug().
		Str("mode", s.Mode.String()).
		Str("effective", s.Effective.String()).
		Msg("theme initialized")

	uc.publish(s)
	return s
}

// State returns the published state.
func (uc *ManageThemeUseCase) State() entity.ThemeState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Ready is closed when Initialize completes.
func (uc *ManageThemeUseCase) Ready() <-chan struct{} {
	return uc.ready
}

// SetMode persists mode and applies the resulting scheme. Persistence
// failures are logged; the state still changes.
func (uc *ManageThemeUseCase) SetMode(ctx context.Context, mode entity.ThemeMode) (entity.ThemeState, error) {
	if !mode.Valid() {
		return uc.State(), fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	uc.mu.Lock()
	if !uc.hydrated {
		s := uc.state
		uc.mu.Unlock()
		return s, ErrNotInitialized
	}
	s := uc.setModeLocked(ctx, mode)
	uc.mu.Unlock()

	uc.publish(s)
	return s, nil
}

// ToggleTheme always changes the effective scheme. From system it pins the
// opposite of a fresh system reading; otherwise it flips light and dark.
func (uc *ManageThemeUseCase) ToggleTheme(ctx context.Context) (entity.ThemeState, error) {
	uc.mu.Lock()
	if !uc.hydrated {
		s := uc.state
		uc.mu.Unlock()
		return s, ErrNotInitialized
	}

	var next entity.ThemeMode
	switch uc.state.Mode {
	case entity.ThemeModeSystem:
		next = uc.systemScheme().Opposite().Mode()
	case entity.ThemeModeLight:
		next = entity.ThemeModeDark
	default:
		next = entity.ThemeModeLight
	}
	s := uc.setModeLocked(ctx, next)
	uc.mu.Unlock()

	uc.publish(s)
	return s, nil
}

func (uc *ManageThemeUseCase) setModeLocked(ctx context.Context, mode entity.ThemeMode) entity.ThemeState {
	log := uc.logger(ctx)

	effective := entity.Resolve(mode, uc.systemScheme())
	if err := uc.store.Set(ctx, uc.contract.StorageKey, mode.String()); err != nil {
		log.Warn().Err(err).Str("mode", mode.String()).Msg("failed to persist theme mode")
	}

	uc.state = entity.ThemeState{Mode: mode, Effective: effective}
	uc.apply(ctx, effective)

	log.Debug().
		Str("mode", mode.String()).
		Str("effective", effective.String()).
		Msg("theme mode set")
	return uc.state
}

// onSystemChange follows the system only while hydrated, open and in
// system mode.
func (uc *ManageThemeUseCase) onSystemChange(pref port.ColorSchemePreference) {
	uc.mu.Lock()
	if !uc.hydrated || uc.closed || uc.state.Mode != entity.ThemeModeSystem {
		uc.mu.Unlock()
		return
	}
	effective := entity.SchemeFromDark(pref.PrefersDark)
	if effective == uc.state.Effective {
		uc.mu.Unlock()
		return
	}
	ctx := uc.notifyCtx
	uc.state.Effective = effective
	uc.apply(ctx, effective)
	s := uc.state
	uc.mu.Unlock()

	uc.logger(ctx).Debug().
		Str("effective", effective.String()).
		Str("source", pref.Source).
		Msg("system color scheme changed")
	uc.publish(s)
}

// Subscribe registers fn for state changes. fn runs outside the controller
// lock and may call State.
func (uc *ManageThemeUseCase) Subscribe(fn func(entity.ThemeState)) func() {
	uc.subMu.Lock()
	id := uc.nextSub
	uc.nextSub++
	uc.subs[id] = fn
	uc.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			uc.subMu.Lock()
			delete(uc.subs, id)
			uc.subMu.Unlock()
		})
	}
}

// Close releases the system preference subscription. Safe to call twice.
func (uc *ManageThemeUseCase) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.closed = true
	unsubscribe := uc.unsubscribeSys
	uc.unsubscribeSys = nil
	uc.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (uc *ManageThemeUseCase) publish(s entity.ThemeState) {
	uc.subMu.Lock()
	fns := make([]func(entity.ThemeState), 0, len(uc.subs))
	for _, fn := range uc.subs {
		fns = append(fns, fn)
	}
	uc.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// readMode reads the stored mode; storage errors and malformed values
// yield the default.
func (uc *ManageThemeUseCase) readMode(ctx context.Context) entity.ThemeMode {
	log := uc.logger(ctx)

	raw, ok, err := uc.store.Get(ctx, uc.contract.StorageKey)
	if err != nil {
		log.Warn().Err(err).Msg("theme preference unavailable, using default")
		return uc.contract.DefaultMode
	}
	if !ok {
		return uc.contract.DefaultMode
	}
	mode, valid := entity.ParseThemeMode(raw)
	if !valid {
		log.Debug().Str("value", raw).Msg("malformed theme preference, using default")
		return uc.contract.DefaultMode
	}
	return mode
}

func (uc *ManageThemeUseCase) systemScheme() entity.EffectiveScheme {
	return entity.SchemeFromDark(uc.system.Resolve().PrefersDark)
}

func (uc *ManageThemeUseCase) apply(ctx context.Context, scheme entity.EffectiveScheme) {
	if err := uc.sink.ApplyScheme(ctx, scheme, uc.contract.Style(scheme)); err != nil {
		uc.logger(ctx).Warn().Err(err).Str("scheme", scheme.String()).Msg("failed to apply scheme to document")
	}
}
