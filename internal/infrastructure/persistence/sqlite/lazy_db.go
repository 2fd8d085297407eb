package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/logging"
)

// LazyDB defers opening the preference database until something reads or
// writes a preference. Commands that never touch storage skip the WASM
// start-up and migrations. A failed open is remembered.
type LazyDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	tried   bool
}

func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the shared connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tried {
		l.tried = true
		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			logging.FromContext(ctx).Error().Err(l.openErr).Str("path", l.path).Msg("preference database unavailable")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("preference database: %w", l.openErr)
	}
	return l.db, nil
}

func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// IsInitialized reports whether a connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

func (l *LazyDB) Path() string { return l.path }

// NewLazyPreferenceStore returns a preference store over lazy. An
// unopenable database fails every Get and Set with a storage error.
func NewLazyPreferenceStore(lazy *LazyDB) port.PreferenceStore {
	return lazyStore{lazy}
}

type lazyStore struct{ lazy *LazyDB }

func (s lazyStore) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return "", false, err
	}
	return NewPreferenceStore(db).Get(ctx, key)
}

func (s lazyStore) Set(ctx context.Context, key, value string) error {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return err
	}
	return NewPreferenceStore(db).Set(ctx, key, value)
}
