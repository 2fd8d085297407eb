package port

// ColorSchemePreference is one reading of the system light/dark preference.
type ColorSchemePreference struct {
	PrefersDark bool
	// Source names the detector that answered, or "fallback".
	Source string
}

// ColorSchemeDetector is one way of asking the environment for its
// preference. Per-request sources rank 100 and up, desktop services around
// 50, environment variables around 10.
type ColorSchemeDetector interface {
	Name() string
	Priority() int
	Available() bool
	// Detect reports the preference; ok is false when this source has no
	// answer right now.
	Detect() (prefersDark bool, ok bool)
}

// SystemPreferenceReader merges detectors into a single preference and
// publishes changes to it.
type SystemPreferenceReader interface {
	// Resolve returns the highest-priority answer, light when none answers.
	Resolve() ColorSchemePreference

	RegisterDetector(detector ColorSchemeDetector)

	// Refresh re-reads the detectors and notifies subscribers if the
	// preference moved.
	Refresh() ColorSchemePreference

	// OnChange subscribes callback and returns its unsubscribe func.
	OnChange(callback func(ColorSchemePreference)) func()
}
