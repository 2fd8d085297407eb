package theme

import (
	"context"
	"html/template"
	"sync"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/logging"
)

//go:generate mockgen -source=../../application/port/theme_state.go -destination=mocks/mock_theme_state.go -package=mocks

// Presenter renders the theme chrome from the controller's published state.
// Before the controller is ready it only renders neutral markup.
type Presenter struct {
	state     port.ThemeState
	attribute string
	styles    *styleSet
}

// styleSet is shared by presenters derived with ForState.
type styleSet struct {
	mu         sync.RWMutex
	light      StyleConfig
	dark       StyleConfig
	stylesheet string
}

// NewPresenter builds both style configs from cfg (nil means defaults).
// state may be nil for a presenter that only serves stylesheets.
func NewPresenter(ctx context.Context, state port.ThemeState, cfg *config.Config) *Presenter {
	contract := entity.DefaultDocumentContract()
	if cfg != nil {
		contract = cfg.DocumentContract()
	}
	p := &Presenter{
		state:     state,
		attribute: contract.ThemeAttribute,
		styles:    &styleSet{},
	}
	p.UpdateFromConfig(ctx, cfg)
	return p
}

// ForState returns a presenter for another controller sharing these styles.
func (p *Presenter) ForState(state port.ThemeState) *Presenter {
	return &Presenter{
		state:     state,
		attribute: p.attribute,
		styles:    p.styles,
	}
}

// UpdateFromConfig rebuilds the style configs after a config reload.
// Presenters derived with ForState see the new styles.
func (p *Presenter) UpdateFromConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	lightPalette := DefaultLightPalette()
	darkPalette := DefaultDarkPalette()
	if cfg != nil {
		lightPalette = PaletteFromConfig(&cfg.Appearance.LightPalette, false)
		darkPalette = PaletteFromConfig(&cfg.Appearance.DarkPalette, true)
	}
	for name, palette := range map[string]Palette{"light": lightPalette, "dark": darkPalette} {
		if err := palette.Validate(); err != nil {
			log.Warn().Err(err).Str("palette", name).Msg("palette has invalid colors")
		}
	}

	light := newStyleConfig(entity.SchemeLight, lightPalette)
	dark := newStyleConfig(entity.SchemeDark, darkPalette)

	p.styles.mu.Lock()
	p.styles.light = light
	p.styles.dark = dark
	p.styles.stylesheet = buildStylesheet(p.attribute, light, dark)
	p.styles.mu.Unlock()

	log.Debug().
		Str("light_bg", lightPalette.Background).
		Str("dark_bg", darkPalette.Background).
		Msg("theme styles updated")
}

// Ready reports whether the controller finished its first reconciliation.
func (p *Presenter) Ready() bool {
	if p.state == nil {
		return false
	}
	select {
	case <-p.state.Ready():
		return true
	default:
		return false
	}
}

// Style returns the precomputed style of a scheme.
func (p *Presenter) Style(scheme entity.EffectiveScheme) StyleConfig {
	p.styles.mu.RLock()
	defer p.styles.mu.RUnlock()
	if scheme.IsDark() {
		return p.styles.dark
	}
	return p.styles.light
}

// Current returns the style of the published effective scheme.
// ok is false until the controller is ready.
func (p *Presenter) Current() (style StyleConfig, ok bool) {
	if !p.Ready() {
		return StyleConfig{}, false
	}
	return p.Style(p.state.State().Effective), true
}

// Stylesheet returns the CSS for both schemes keyed by the root attribute.
func (p *Presenter) Stylesheet() string {
	p.styles.mu.RLock()
	defer p.styles.mu.RUnlock()
	return p.styles.stylesheet
}

// ModeMenu returns the menu model. ok is false until the controller is ready.
func (p *Presenter) ModeMenu() (menu ModeMenu, ok bool) {
	if !p.Ready() {
		return ModeMenu{}, false
	}
	return NewModeMenu(p.state.State()), true
}

// Toggle returns the toggle model. ok is false until the controller is ready.
func (p *Presenter) Toggle() (toggle SimpleToggle, ok bool) {
	if !p.Ready() {
		return SimpleToggle{}, false
	}
	return NewSimpleToggle(p.state.State()), true
}

// RenderControls renders the requested control, or the placeholder
// while the controller is not ready.
func (p *Presenter) RenderControls(kind ControlKind) (template.HTML, error) {
	if !p.Ready() {
		return RenderPlaceholder(NewPlaceholder())
	}
	state := p.state.State()
	if kind == ControlSimpleToggle {
		return RenderSimpleToggle(NewSimpleToggle(state))
	}
	return RenderModeMenu(NewModeMenu(state))
}

// RenderContent returns content once the controller is ready and the
// neutral loading screen before that.
func (p *Presenter) RenderContent(content template.HTML) (template.HTML, error) {
	if !p.Ready() {
		return RenderLoading(LoadingMessage)
	}
	return content, nil
}
