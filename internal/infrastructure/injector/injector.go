// Package injector renders the blocking head script that primes the
// document with the stored or system color scheme before first paint, and
// the attach script that releases the critical style once the page
// stylesheet applies.
package injector

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/domain/validation"
	"github.com/bnema/themesync/internal/logging"
)

// Backend selects where the script reads the stored mode from.
type Backend string

const (
	// BackendLocalStorage reads window.localStorage.
	BackendLocalStorage Backend = "localStorage"
	// BackendCookie reads document.cookie, so a server can read the same record.
	BackendCookie Backend = "cookie"
)

// ParseBackend parses a configured backend name.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "localstorage", "local_storage", "":
		return BackendLocalStorage, true
	case "cookie":
		return BackendCookie, true
	default:
		return "", false
	}
}

var (
	tmpl = texttemplate.Must(
		texttemplate.Must(texttemplate.New("script").Parse(scriptTemplate)).Parse(styleTemplate),
	)
	attachTmpl = texttemplate.Must(texttemplate.New("attach").Parse(attachTemplate))
)

// styleBlock is one scheme branch of the script.
type styleBlock struct {
	entity.SchemeStyle
	CriticalStyleID string
}

type scriptData struct {
	Backend        Backend
	StorageKey     string
	DefaultMode    entity.ThemeMode
	Query          string
	ThemeAttribute string
	MetaName       string
	Light          styleBlock
	Dark           styleBlock
}

// Option configures an Injector.
type Option func(*Injector)

// WithBackend selects the storage backend. Defaults to BackendLocalStorage.
func WithBackend(b Backend) Option {
	return func(i *Injector) {
		i.backend = b
	}
}

// Injector holds a rendered head script.
type Injector struct {
	contract entity.DocumentContract
	backend  Backend
	script   string
	attach   string
}

// New renders the head script for contract.
func New(ctx context.Context, contract entity.DocumentContract, opts ...Option) (*Injector, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "injector"))

	inj := &Injector{contract: contract, backend: BackendLocalStorage}
	for _, opt := range opts {
		opt(inj)
	}

	if contract.StorageKey == "" {
		return nil, fmt.Errorf("injector: storage key is empty")
	}
	if !contract.DefaultMode.Valid() {
		return nil, fmt.Errorf("injector: invalid default mode %q", contract.DefaultMode)
	}
	if inj.backend != BackendLocalStorage && inj.backend != BackendCookie {
		return nil, fmt.Errorf("injector: unknown storage backend %q", inj.backend)
	}
	// These land unquoted in selectors and markup.
	for _, f := range []struct{ name, value string }{
		{"theme attribute", contract.ThemeAttribute},
		{"meta name", contract.MetaName},
		{"critical style id", contract.CriticalStyleID},
	} {
		if !validation.IsIdentifier(f.value) {
			return nil, fmt.Errorf("injector: invalid %s %q", f.name, f.value)
		}
	}

	data := scriptData{
		Backend:        inj.backend,
		StorageKey:     contract.StorageKey,
		DefaultMode:    contract.DefaultMode,
		Query:          DarkSchemeQuery,
		ThemeAttribute: contract.ThemeAttribute,
		MetaName:       contract.MetaName,
		Light:          styleBlock{SchemeStyle: contract.Light, CriticalStyleID: contract.CriticalStyleID},
		Dark:           styleBlock{SchemeStyle: contract.Dark, CriticalStyleID: contract.CriticalStyleID},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("injector: render script: %w", err)
	}
	inj.script = buf.String()

	buf.Reset()
	if err := attachTmpl.Execute(&buf, data.Dark); err != nil {
		return nil, fmt.Errorf("injector: render attach script: %w", err)
	}
	inj.attach = buf.String()

	log.Debug().
		Int("script_len", len(inj.script)).
		Int("attach_len", len(inj.attach)).
		Str("backend", string(inj.backend)).
		Str("storage_key", contract.StorageKey).
		Msg("head script rendered")

	return inj, nil
}

// Script returns the raw JavaScript.
func (i *Injector) Script() string {
	return i.script
}

// Backend returns the storage backend the script reads.
func (i *Injector) Backend() Backend {
	return i.backend
}

// Contract returns the contract the script was rendered from.
func (i *Injector) Contract() entity.DocumentContract {
	return i.contract
}

// HeadHTML returns the script element to write verbatim as the first
// script in <head>. The script must stay blocking: no async, defer or module.
func (i *Injector) HeadHTML() template.HTML {
	//nolint:gosec // script content is rendered from the js-escaped template
	return template.HTML("<script>" + i.script + "</script>")
}

// Digest returns the CSP source expression for the script,
// e.g. 'sha256-…' for a script-src directive.
func (i *Injector) Digest() string {
	return digest(i.script)
}

// AttachScript returns the raw JavaScript that removes the critical style
// element once the page stylesheet has loaded.
func (i *Injector) AttachScript() string {
	return i.attach
}

// AttachHTML returns the attach script element, written at the end of <body>.
func (i *Injector) AttachHTML() template.HTML {
	//nolint:gosec // script content is rendered from the js-escaped template
	return template.HTML("<script>" + i.attach + "</script>")
}

// Digests returns the CSP source expressions for both scripts, head first.
func (i *Injector) Digests() []string {
	return []string{digest(i.script), digest(i.attach)}
}

func digest(script string) string {
	sum := sha256.Sum256([]byte(script))
	return "'sha256-" + base64.StdEncoding.EncodeToString(sum[:]) + "'"
}
