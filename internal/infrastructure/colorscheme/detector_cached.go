package colorscheme

const (
	detectorNameCached = "desktop"
	priorityCached     = 40
)

// CachedDetector reports the last refreshed preference of a resolver.
// The page shell uses it to fall back on this machine's desktop when a
// request carries no client hint; a Monitor keeps it current.
type CachedDetector struct {
	resolver *Resolver
}

// NewCachedDetector creates a detector over resolver.Current().
func NewCachedDetector(resolver *Resolver) *CachedDetector {
	return &CachedDetector{resolver: resolver}
}

// Name implements port.ColorSchemeDetector.
func (*CachedDetector) Name() string {
	return detectorNameCached
}

// Priority implements port.ColorSchemeDetector.
func (*CachedDetector) Priority() int {
	return priorityCached
}

// Available implements port.ColorSchemeDetector.
func (d *CachedDetector) Available() bool {
	return d.resolver.Current().Source != SourceFallback
}

// Detect implements port.ColorSchemeDetector.
func (d *CachedDetector) Detect() (prefersDark, ok bool) {
	cur := d.resolver.Current()
	if cur.Source == SourceFallback {
		return false, false
	}
	return cur.PrefersDark, true
}
