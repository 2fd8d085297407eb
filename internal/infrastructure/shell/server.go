// Package shell serves the auth and dashboard host pages with the theme
// chrome: the head script, the stylesheet, the mode controls and the theme
// API. Each request runs its own theme controller over the preference
// cookie and the request's color-scheme client hint.
package shell

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/domain/validation"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/document"
	"github.com/bnema/themesync/internal/infrastructure/injector"
	"github.com/bnema/themesync/internal/logging"
	"github.com/bnema/themesync/internal/ui/theme"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server is the page shell.
type Server struct {
	detectors []port.ColorSchemeDetector
	presenter *theme.Presenter

	mu       sync.RWMutex
	cfg      *config.Config
	contract entity.DocumentContract
	inj      *injector.Injector
}

// Option configures a Server.
type Option func(*Server)

// WithDetectors adds system preference detectors consulted after the
// request's client hint, e.g. an explicit override.
func WithDetectors(detectors ...port.ColorSchemeDetector) Option {
	return func(s *Server) {
		s.detectors = append(s.detectors, detectors...)
	}
}

// New creates a shell for cfg. The head script always uses the cookie
// backend so the server and the browser read the same record.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		presenter: theme.NewPresenter(ctx, nil, cfg),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.UpdateConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateConfig swaps the configuration after a reload. The previous
// configuration stays active when the new one cannot build a head script.
func (s *Server) UpdateConfig(ctx context.Context, cfg *config.Config) error {
	// The key doubles as the cookie name.
	if errs := validation.ValidateStorageKey("appearance.storage_key", cfg.Appearance.StorageKey); len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	contract := cfg.DocumentContract()
	inj, err := injector.New(ctx, contract, injector.WithBackend(injector.BackendCookie))
	if err != nil {
		return fmt.Errorf("build head script: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.contract = contract
	s.inj = inj
	s.mu.Unlock()

	s.presenter.UpdateFromConfig(ctx, cfg)
	return nil
}

type snapshot struct {
	cfg      *config.Config
	contract entity.DocumentContract
	inj      *injector.Injector
}

func (s *Server) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{cfg: s.cfg, contract: s.contract, inj: s.inj}
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler(log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /login", s.handlePage)
	mux.HandleFunc("GET /register", s.handlePage)
	mux.HandleFunc("GET /dashboard", s.handlePage)
	mux.HandleFunc("GET /theme.css", s.handleStylesheet)
	mux.HandleFunc("GET /api/theme", s.handleGetTheme)
	mux.HandleFunc("POST /api/theme/mode", s.handleSetMode)
	mux.HandleFunc("POST /api/theme/toggle", s.handleToggle)

	var h http.Handler = mux
	h = withClientHints(h)
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	h = hlog.NewHandler(log.With().Str(logging.ComponentField, "shell").Logger())(h)
	return h
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	log := logging.FromContext(ctx)
	addr := s.snapshot().cfg.Server.Listen

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(*log),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("page shell listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("page shell: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown page shell: %w", err)
		}
		return nil
	}
}

// withClientHints asks browsers for the prefers-color-scheme hint and
// marks responses as varying on it.
func withClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Accept-CH", colorscheme.ClientHintHeader)
		h.Set("Critical-CH", colorscheme.ClientHintHeader)
		h.Add("Vary", colorscheme.ClientHintHeader)
		h.Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}

// session is the per-request theme runtime.
type session struct {
	controller *usecase.ManageThemeUseCase
	doc        *document.Document
	presenter  *theme.Presenter
	snap       snapshot
}

// newSession initializes a controller over the request cookie and client
// hint. The document starts with the host's default meta color like a
// freshly served page.
func (s *Server) newSession(w http.ResponseWriter, r *http.Request) *session {
	ctx := r.Context()
	snap := s.snapshot()

	maxAge := time.Duration(snap.cfg.Server.CookieMaxAgeDays) * 24 * time.Hour
	store := NewCookieStore(r, w, maxAge)

	detectors := append([]port.ColorSchemeDetector{colorscheme.NewClientHintDetector(r.Header)}, s.detectors...)
	resolver := colorscheme.NewResolver(detectors...)

	doc := document.New()
	doc.AddMeta(snap.contract.MetaName, snap.contract.Light.MetaColor)

	controller := usecase.NewManageThemeUseCase(store, resolver, document.NewSink(doc, snap.contract), snap.contract)
	controller.Initialize(ctx)

	return &session{
		controller: controller,
		doc:        doc,
		presenter:  s.presenter.ForState(controller),
		snap:       snap,
	}
}

func (ss *session) close() {
	ss.controller.Close()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	p, ok := pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}

	ss := s.newSession(w, r)
	defer ss.close()

	data, err := ss.pageData(p)
	if err != nil {
		log.Error().Err(err).Msg("render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", "script-src "+strings.Join(ss.snap.inj.Digests(), " "))
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("write page")
	}
}

func (ss *session) pageData(p page) (pageData, error) {
	var body strings.Builder
	if err := p.body.Execute(&body, ss.controller.State()); err != nil {
		return pageData{}, fmt.Errorf("render %s: %w", p.title, err)
	}
	// #nosec G203 -- output of html/template
	content, err := ss.presenter.RenderContent(template.HTML(body.String()))
	if err != nil {
		return pageData{}, err
	}

	kind := theme.ControlSimpleToggle
	if p.control == controlMenu {
		kind = theme.ControlModeMenu
	}
	controls, err := ss.presenter.RenderControls(kind)
	if err != nil {
		return pageData{}, err
	}

	snap := ss.doc.Snapshot()
	data := pageData{
		Title:        p.title,
		Class:        strings.Join(snap.Classes, " "),
		HeadScript:   ss.snap.inj.HeadHTML(),
		AttachScript: ss.snap.inj.AttachHTML(),
		Controls:     controls,
		Content:      content,
	}
	for _, name := range snap.AttrNames() {
		if !validation.IsIdentifier(name) {
			continue
		}
		// #nosec G203 -- name is a checked identifier, value is escaped
		data.Attrs = append(data.Attrs, template.HTMLAttr(name+`="`+template.HTMLEscapeString(snap.Attrs[name])+`"`))
	}
	data.RootStyle = rootStyle(snap.Style)
	for _, el := range snap.Head {
		if el.Tag == "meta" {
			data.Metas = append(data.Metas, metaTag{Name: el.Name, Content: el.Content})
		}
	}
	sort.SliceStable(data.Metas, func(i, j int) bool { return data.Metas[i].Name < data.Metas[j].Name })
	return data, nil
}

// rootStyle serializes inline declarations written by the controller.
// Values come from the document contract and config, never from requests.
func rootStyle(entries []document.StyleEntry) template.CSS {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Name+": "+e.Value)
	}
	// #nosec G203 -- contract values
	return template.CSS(strings.Join(parts, "; "))
}

func (s *Server) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(s.presenter.Stylesheet()))
}
