package colorscheme

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/stretchr/testify/assert"
)

func TestMonitor_ConsumeRefreshesResolver(t *testing.T) {
	resolver := NewResolver(&mockDetector{name: "base", priority: 10, available: true, prefersDark: false, detectOk: true})
	monitor := NewMonitor(resolver)

	var changes []port.ColorSchemePreference
	resolver.OnChange(func(p port.ColorSchemePreference) {
		changes = append(changes, p)
	})

	lines := strings.Join([]string{
		"color-scheme: 'prefer-dark'",
		"color-scheme: 'prefer-dark'",
		"color-scheme: 'default'",
		"color-scheme: 'prefer-light'",
	}, "\n")
	monitor.Consume(context.Background(), strings.NewReader(lines))

	// dark, then back to base (light); the repeat and the final light
	// line do not change the resolved value.
	if assert.Len(t, changes, 2) {
		assert.True(t, changes[0].PrefersDark)
		assert.Equal(t, detectorNameMonitor, changes[0].Source)
		assert.False(t, changes[1].PrefersDark)
		assert.Equal(t, "base", changes[1].Source)
	}
}

func TestMonitor_OverrideStillWins(t *testing.T) {
	override := NewStaticDetector(false)
	resolver := NewResolver(override)
	monitor := NewMonitor(resolver)

	monitor.Consume(context.Background(), strings.NewReader("'prefer-dark'\n"))

	pref := resolver.Resolve()
	assert.False(t, pref.PrefersDark)
	assert.Equal(t, detectorNameStatic, pref.Source)
}

func TestMonitor_StopsOnCancelledContext(t *testing.T) {
	resolver := NewResolver()
	monitor := NewMonitor(resolver)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	monitor.Consume(ctx, strings.NewReader("'prefer-dark'\n"))

	assert.False(t, resolver.Resolve().PrefersDark)
}
