package theme

import (
	"bytes"
	"fmt"
	"html/template"
)

// ControlKind selects which mode control to render.
type ControlKind int

// Control kinds.
const (
	ControlModeMenu ControlKind = iota
	ControlSimpleToggle
)

// LoadingMessage is shown while the controller has not reconciled yet.
const LoadingMessage = "Loading..."

var controlTemplates = template.Must(template.New("controls").Parse(`
{{- define "icon" -}}
<span class="material-symbols" data-icon="{{.}}" aria-hidden="true">{{.Glyph}}</span>
{{- end -}}

{{- define "mode-menu" -}}
<details class="theme-menu-anchor">
<summary class="theme-button" title="{{.Tooltip}}" aria-haspopup="true" aria-controls="theme-menu">{{template "icon" .Icon}}</summary>
<form id="theme-menu" class="theme-menu" role="menu" method="post" action="{{.Action}}">
{{- range .Options}}
<button type="submit" name="mode" value="{{.Mode}}" role="menuitemradio" aria-checked="{{.Selected}}">{{template "icon" .Icon}}<span>{{.Label}}</span>{{if .Selected}}<span class="theme-check">{{template "icon" $.Check}}</span>{{end}}</button>
{{- end}}
</form>
</details>
{{- end -}}

{{- define "simple-toggle" -}}
<form class="theme-toggle" method="post" action="{{.Action}}">
<button type="submit" class="theme-button" title="{{.Tooltip}}" aria-label="{{.Tooltip}}">{{template "icon" .Icon}}</button>
</form>
{{- end -}}

{{- define "placeholder" -}}
<button type="button" class="theme-button" aria-label="{{.AriaLabel}}" disabled>{{template "icon" .Icon}}</button>
{{- end -}}

{{- define "loading" -}}
<div class="theme-loading" role="status" aria-live="polite" style="position: fixed; inset: 0; display: flex; flex-direction: column; align-items: center; justify-content: center; background-color: Canvas; color: CanvasText; z-index: 9999">
<span class="theme-spinner" aria-hidden="true" style="width: 40px; height: 40px; border: 4px solid GrayText; border-top-color: CanvasText; border-radius: 50%; margin-bottom: 16px"></span>
<p>{{.}}</p>
</div>
{{- end -}}
`))

type modeMenuView struct {
	ModeMenu
	Action string
	Check  Icon
}

type simpleToggleView struct {
	SimpleToggle
	Action string
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := controlTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	// #nosec G203 -- output of html/template
	return template.HTML(buf.String()), nil
}

// RenderModeMenu renders the three-way menu as a form posting to ModeEndpoint.
func RenderModeMenu(menu ModeMenu) (template.HTML, error) {
	return execute("mode-menu", modeMenuView{ModeMenu: menu, Action: ModeEndpoint, Check: IconCheck})
}

// RenderSimpleToggle renders the toggle as a form posting to ToggleEndpoint.
func RenderSimpleToggle(toggle SimpleToggle) (template.HTML, error) {
	return execute("simple-toggle", simpleToggleView{SimpleToggle: toggle, Action: ToggleEndpoint})
}

// RenderPlaceholder renders the inert placeholder button.
func RenderPlaceholder(p Placeholder) (template.HTML, error) {
	return execute("placeholder", p)
}

// RenderLoading renders the neutral loading screen. It only uses CSS
// system colors so it looks right under either scheme.
func RenderLoading(message string) (template.HTML, error) {
	return execute("loading", message)
}
