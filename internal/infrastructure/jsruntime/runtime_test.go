package jsruntime

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/document"
	"github.com/bnema/themesync/internal/infrastructure/injector"
	"github.com/bnema/themesync/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInjector(t *testing.T, opts ...injector.Option) *injector.Injector {
	t.Helper()
	inj, err := injector.New(context.Background(), entity.DefaultDocumentContract(), opts...)
	require.NoError(t, err)
	return inj
}

func TestRun_EmptyStoreDarkSystem(t *testing.T) {
	ctx := context.Background()
	contract := entity.DefaultDocumentContract()
	doc := document.New()
	doc.AddMeta(contract.MetaName, "#ffffff")

	err := Run(ctx, newInjector(t).Script(), Environment{
		Document: doc,
		Storage:  memory.NewPreferenceStore(),
		System:   colorscheme.NewResolver(colorscheme.NewStaticDetector(true)),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"dark"}, doc.Classes())
	attr, _ := doc.Attribute("data-theme")
	assert.Equal(t, "dark", attr)
	assert.Equal(t, "#1e293b", doc.StyleProperty("--auth-bg-color"))
	assert.Equal(t, "#0f172a", doc.StyleProperty(document.StyleBackgroundColor))
	assert.Equal(t, "#f8fafc", doc.StyleProperty(document.StyleColor))

	critical, ok := doc.ElementByID(contract.CriticalStyleID)
	require.True(t, ok)
	assert.Equal(t, contract.Dark.CriticalRules, critical.Text)

	meta, _ := doc.Meta(contract.MetaName)
	assert.Equal(t, "#1f2937", meta)
}

func TestRun_StoredModeWinsOverSystem(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPreferenceStore()
	require.NoError(t, store.Set(ctx, "theme-mode", "light"))
	doc := document.New()

	err := Run(ctx, newInjector(t).Script(), Environment{
		Document: doc,
		Storage:  store,
		System:   colorscheme.NewResolver(colorscheme.NewStaticDetector(true)),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"light"}, doc.Classes())
	assert.Empty(t, doc.StyleProperty(document.StyleBackgroundColor))
	_, ok := doc.ElementByID("theme-critical-dark")
	assert.False(t, ok)
}

func TestRun_DeniedStorageFallsBackToDefault(t *testing.T) {
	doc := document.New()

	err := Run(context.Background(), newInjector(t).Script(), Environment{
		Document: doc,
		System:   colorscheme.NewResolver(colorscheme.NewStaticDetector(true)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dark"}, doc.Classes())
}

func TestRun_MissingMatchMediaMeansLight(t *testing.T) {
	doc := document.New()

	err := Run(context.Background(), newInjector(t).Script(), Environment{
		Document: doc,
		Storage:  memory.NewPreferenceStore(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"light"}, doc.Classes())
}

func TestRun_CookieBackend(t *testing.T) {
	doc := document.New()

	err := Run(context.Background(), newInjector(t, injector.WithBackend(injector.BackendCookie)).Script(), Environment{
		Document: doc,
		Cookies:  "a=1; theme-mode=dark; b=2",
		System:   colorscheme.NewResolver(colorscheme.NewStaticDetector(false)),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dark"}, doc.Classes())
}

func TestRun_WritesAfterHandoffAreSwallowed(t *testing.T) {
	ctx := context.Background()
	contract := entity.DefaultDocumentContract()
	doc := document.New()
	require.NoError(t, document.NewSink(doc, contract).Claim(ctx))

	err := Run(ctx, newInjector(t).Script(), Environment{
		Document: doc,
		Storage:  memory.NewPreferenceStore(),
		System:   colorscheme.NewResolver(colorscheme.NewStaticDetector(true)),
	})
	require.NoError(t, err)
	assert.Empty(t, doc.Classes())
	assert.Empty(t, doc.Snapshot().Attrs)
}

func TestRun_AttachRemovesCriticalStyle(t *testing.T) {
	ctx := context.Background()
	contract := entity.DefaultDocumentContract()
	doc := document.New()
	inj := newInjector(t)
	store := memory.NewPreferenceStore()
	require.NoError(t, store.Set(ctx, contract.StorageKey, "dark"))

	require.NoError(t, Run(ctx, inj.Script(), Environment{Document: doc, Storage: store}))
	_, ok := doc.ElementByID(contract.CriticalStyleID)
	require.True(t, ok)

	require.NoError(t, document.NewSink(doc, contract).Claim(ctx))
	err := Run(ctx, inj.AttachScript(), Environment{Document: doc, Phase: document.PhaseInteractive})
	require.NoError(t, err)

	_, ok = doc.ElementByID(contract.CriticalStyleID)
	assert.False(t, ok)
	assert.Equal(t, []string{"dark"}, doc.Classes())
}

func TestRun_AttachWithoutCriticalStyle(t *testing.T) {
	ctx := context.Background()
	doc := document.New()
	require.NoError(t, document.NewSink(doc, entity.DefaultDocumentContract()).Claim(ctx))

	err := Run(ctx, newInjector(t).AttachScript(), Environment{Document: doc, Phase: document.PhaseInteractive})
	require.NoError(t, err)
}

func TestRun_UncaughtExceptionIsReturned(t *testing.T) {
	err := Run(context.Background(), "throw new Error('boom')", Environment{Document: document.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := Run(ctx, "for (;;) {}", Environment{Document: document.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	assert.ErrorIs(t, Run(cancelled, "1", Environment{Document: document.New()}), context.Canceled)
}

func TestRun_RequiresDocument(t *testing.T) {
	assert.Error(t, Run(context.Background(), "1", Environment{}))
}

func TestCheckParity(t *testing.T) {
	backends := []injector.Backend{injector.BackendLocalStorage, injector.BackendCookie}
	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			inj := newInjector(t, injector.WithBackend(backend))
			results := CheckParity(context.Background(), inj)
			require.Len(t, results, len(StoredCases())*len(SystemCases()))

			for _, r := range results {
				assert.True(t, r.OK(inj.Contract()),
					"stored=%s system=%s want=%s got=%s err=%v", r.Stored.Label, r.System.Label, r.Want, r.Got, r.Err)
			}
		})
	}
}

func TestExpected(t *testing.T) {
	contract := entity.DefaultDocumentContract()

	assert.Equal(t, entity.SchemeDark, Expected(contract, StoredCase{}, SystemCase{Dark: true}))
	assert.Equal(t, entity.SchemeLight, Expected(contract, StoredCase{Value: "light", Present: true}, SystemCase{Dark: true}))
	assert.Equal(t, entity.SchemeLight, Expected(contract, StoredCase{Broken: true}, SystemCase{Unavailable: true}))
	assert.Equal(t, entity.SchemeDark, Expected(contract, StoredCase{Value: "sepia", Present: true}, SystemCase{Dark: true}))
}
