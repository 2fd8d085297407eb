package colorscheme

import (
	"slices"
	"sync"

	"github.com/bnema/themesync/internal/application/port"
)

// SourceFallback marks a preference no detector answered for.
const SourceFallback = "fallback"

type subscriber struct {
	id int
	fn func(port.ColorSchemePreference)
}

// Resolver is the system preference reader. Detectors are kept sorted by
// descending priority; the first available one that answers wins.
type Resolver struct {
	mu          sync.RWMutex
	detectors   []port.ColorSchemeDetector
	current     port.ColorSchemePreference
	subscribers []subscriber
	nextID      int
}

// NewResolver creates a resolver over detectors and resolves once.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{}
	for _, d := range detectors {
		r.insert(d)
	}
	r.current = r.resolveLocked()
	return r
}

func (r *Resolver) insert(d port.ColorSchemeDetector) {
	// Equal priorities keep registration order.
	i, _ := slices.BinarySearchFunc(r.detectors, d.Priority(), func(e port.ColorSchemeDetector, p int) int {
		if e.Priority() >= p {
			return -1
		}
		return 1
	})
	r.detectors = slices.Insert(r.detectors, i, d)
}

// Resolve implements port.SystemPreferenceReader. It queries the detectors
// on every call and leaves Current untouched.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked()
}

func (r *Resolver) resolveLocked() port.ColorSchemePreference {
	for _, d := range r.detectors {
		if !d.Available() {
			continue
		}
		if dark, ok := d.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: dark, Source: d.Name()}
		}
	}
	return port.ColorSchemePreference{Source: SourceFallback}
}

// Current is the preference from construction or the last Refresh. It does
// not query detectors.
func (r *Resolver) Current() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// RegisterDetector implements port.SystemPreferenceReader. The detector is
// consulted from the next Resolve or Refresh.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(detector)
}

// Refresh re-resolves and, when the dark/light answer flipped, notifies
// subscribers outside the lock so they may call back into the resolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	pref := r.resolveLocked()
	flipped := pref.PrefersDark != r.current.PrefersDark
	r.current = pref
	var notify []subscriber
	if flipped {
		notify = slices.Clone(r.subscribers)
	}
	r.mu.Unlock()

	for _, s := range notify {
		s.fn(pref)
	}
	return pref
}

// OnChange implements port.SystemPreferenceReader. The callback fires from
// Refresh when the answer flips; the returned func unsubscribes.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.subscribers = append(r.subscribers, subscriber{id: id, fn: callback})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.subscribers = slices.DeleteFunc(r.subscribers, func(s subscriber) bool { return s.id == id })
	}
}

// Detectors returns the registered detectors, highest priority first.
func (r *Resolver) Detectors() []port.ColorSchemeDetector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.detectors)
}
