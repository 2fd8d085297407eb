package port

import "context"

// PreferenceStore is a synchronous string-keyed preference storage.
//
// Get returns ok=false when the key has never been written. A non-nil error
// means the storage itself is unavailable; callers treat that as absent.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
