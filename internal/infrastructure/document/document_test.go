package document

import (
	"context"
	"testing"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ClassesAreASet(t *testing.T) {
	doc := New()
	w := doc.Writer(PhasePriming)

	require.NoError(t, w.AddClass("dark"))
	require.NoError(t, w.AddClass("dark"))
	require.NoError(t, w.AddClass("fonts-loaded"))

	assert.Equal(t, []string{"dark", "fonts-loaded"}, doc.Classes())

	require.NoError(t, w.RemoveClass("light", "dark"))
	assert.Equal(t, []string{"fonts-loaded"}, doc.Classes())
}

func TestWriter_StylePropertyEmptyRemoves(t *testing.T) {
	doc := New()
	w := doc.Writer(PhasePriming)

	require.NoError(t, w.SetStyleProperty("color", "#fff"))
	require.NoError(t, w.SetStyleProperty("--a", "1"))
	require.NoError(t, w.SetStyleProperty("color", ""))

	snap := doc.Snapshot()
	assert.Equal(t, []StyleEntry{{Name: "--a", Value: "1"}}, snap.Style)
	assert.Empty(t, doc.StyleProperty("color"))
}

func TestWriter_MetaIsNotCreated(t *testing.T) {
	doc := New()
	w := doc.Writer(PhasePriming)

	ok, err := w.SetMetaContent("theme-color", "#000")
	require.NoError(t, err)
	assert.False(t, ok)
	_, found := doc.Meta("theme-color")
	assert.False(t, found)

	doc.AddMeta("theme-color", "#ffffff")
	ok, err = w.SetMetaContent("theme-color", "#1f2937")
	require.NoError(t, err)
	assert.True(t, ok)

	content, _ := doc.Meta("theme-color")
	assert.Equal(t, "#1f2937", content)
}

func TestWriter_RemoveElement(t *testing.T) {
	doc := New()
	w := doc.Writer(PhasePriming)
	require.NoError(t, w.AppendStyleElement("critical", "body{}"))

	el, ok := doc.ElementByID("critical")
	require.True(t, ok)
	assert.Equal(t, "style", el.Tag)

	removed, err := w.RemoveElement("critical")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = w.RemoveElement("critical")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSink_ClaimRejectsPrimingWrites(t *testing.T) {
	ctx := context.Background()
	doc := New()
	priming := doc.Writer(PhasePriming)
	sink := NewSink(doc, entity.DefaultDocumentContract())

	// Interactive writes before the handoff are rejected too.
	err := sink.ApplyScheme(ctx, entity.SchemeDark, entity.DefaultDocumentContract().Dark)
	require.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, priming.AddClass("dark"))
	require.NoError(t, sink.Claim(ctx))
	assert.Equal(t, PhaseInteractive, doc.Owner())

	assert.ErrorIs(t, priming.AddClass("light"), ErrNotOwner)
	assert.ErrorIs(t, priming.SetAttribute("data-theme", "light"), ErrNotOwner)
	_, err = priming.RemoveElement("x")
	assert.ErrorIs(t, err, ErrNotOwner)

	// Claiming twice is harmless.
	require.NoError(t, sink.Claim(ctx))
}

func TestSink_ApplySchemeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	contract := entity.DefaultDocumentContract()
	doc := New()
	doc.AddMeta(contract.MetaName, "#ffffff")
	sink := NewSink(doc, contract)
	require.NoError(t, sink.Claim(ctx))

	require.NoError(t, sink.ApplyScheme(ctx, entity.SchemeDark, contract.Dark))
	first := doc.Snapshot()
	require.NoError(t, sink.ApplyScheme(ctx, entity.SchemeDark, contract.Dark))
	assert.Equal(t, first, doc.Snapshot())

	assert.Equal(t, []string{"dark"}, first.Classes)
	assert.Equal(t, "dark", first.Attrs[contract.ThemeAttribute])
	assert.Equal(t, "#0f172a", doc.StyleProperty(StyleBackgroundColor))
	meta, _ := doc.Meta(contract.MetaName)
	assert.Equal(t, "#1f2937", meta)
}

func TestSink_SwitchToLightClearsInlineColors(t *testing.T) {
	ctx := context.Background()
	contract := entity.DefaultDocumentContract()
	doc := New()
	sink := NewSink(doc, contract)
	require.NoError(t, sink.Claim(ctx))

	require.NoError(t, sink.ApplyScheme(ctx, entity.SchemeDark, contract.Dark))
	require.NoError(t, sink.ApplyScheme(ctx, entity.SchemeLight, contract.Light))

	assert.Equal(t, []string{"light"}, doc.Classes())
	assert.Empty(t, doc.StyleProperty(StyleBackgroundColor))
	assert.Empty(t, doc.StyleProperty(StyleColor))
	assert.Equal(t, "#ffffff", doc.StyleProperty("--auth-bg-color"))
}
