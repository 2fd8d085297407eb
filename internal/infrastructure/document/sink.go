package document

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// Sink is the interactive-phase scheme sink over a Document.
type Sink struct {
	w        *Writer
	contract entity.DocumentContract
}

var _ port.SchemeSink = (*Sink)(nil)

// NewSink creates the interactive writer for doc.
func NewSink(doc *Document, contract entity.DocumentContract) *Sink {
	return &Sink{w: doc.Writer(PhaseInteractive), contract: contract}
}

// Claim hands document ownership from the head script to the sink.
func (s *Sink) Claim(ctx context.Context) error {
	prev := s.w.doc.Owner()
	s.w.doc.handOff()
	logging.FromContext(ctx).Debug().
		Str("from", prev.String()).
		Str("to", PhaseInteractive.String()).
		Msg("document ownership claimed")
	return nil
}

// ApplyScheme implements port.SchemeSink. Values the style leaves empty are
// cleared so a switch from dark to light drops the dark inline colors.
func (s *Sink) ApplyScheme(_ context.Context, scheme entity.EffectiveScheme, style entity.SchemeStyle) error {
	w := s.w
	if err := w.RemoveClass(s.contract.SchemeClasses()...); err != nil {
		return err
	}
	if err := w.AddClass(scheme.String()); err != nil {
		return err
	}
	if err := w.SetAttribute(s.contract.ThemeAttribute, scheme.String()); err != nil {
		return err
	}
	for _, p := range style.Properties {
		if err := w.SetStyleProperty(p.Name, p.Value); err != nil {
			return err
		}
	}
	if err := w.SetStyleProperty(StyleBackgroundColor, style.Background); err != nil {
		return err
	}
	if err := w.SetStyleProperty(StyleColor, style.Foreground); err != nil {
		return err
	}
	if style.MetaColor != "" {
		if _, err := w.SetMetaContent(s.contract.MetaName, style.MetaColor); err != nil {
			return err
		}
	}
	return nil
}

// RemoveCriticalStyle implements port.SchemeSink.
func (s *Sink) RemoveCriticalStyle(_ context.Context, id string) (bool, error) {
	return s.w.RemoveElement(id)
}
