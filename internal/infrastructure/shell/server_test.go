package shell_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/injector"
	"github.com/bnema/themesync/internal/infrastructure/shell"
)

const cookieName = "theme-mode"

func newServer(t *testing.T, opts ...shell.Option) (*shell.Server, http.Handler) {
	t.Helper()
	srv, err := shell.New(context.Background(), config.DefaultConfig(), opts...)
	require.NoError(t, err)
	return srv, srv.Handler(zerolog.Nop())
}

func get(h http.Handler, path string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func withCookie(value string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: cookieName, Value: value})
	}
}

func withHint(value string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set(colorscheme.ClientHintHeader, value)
	}
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", cookieName)
	return nil
}

// rootTag returns the opening <html> tag.
func rootTag(body string) string {
	start := strings.Index(body, "<html")
	end := strings.Index(body[start:], ">")
	return body[start : start+end+1]
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) entity.ThemeState {
	t.Helper()
	var state entity.ThemeState
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&state))
	return state
}

func TestPage_HeadScriptComesFirst(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/login")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	inj, err := injector.New(context.Background(), config.DefaultConfig().DocumentContract(), injector.WithBackend(injector.BackendCookie))
	require.NoError(t, err)

	assert.Contains(t, body, string(inj.HeadHTML()))
	head := body[strings.Index(body, "<head>"):strings.Index(body, "</head>")]
	assert.Equal(t, 1, strings.Count(head, "<script"))
	assert.Less(t, strings.Index(head, "<script"), strings.Index(head, `<meta name="viewport"`))
	assert.Less(t, strings.Index(head, "<script"), strings.Index(head, `<link rel="stylesheet"`))
	assert.Equal(t, "script-src "+strings.Join(inj.Digests(), " "), rec.Header().Get("Content-Security-Policy"))
}

func TestPage_SchemeMetasPrecedeHeadScript(t *testing.T) {
	_, h := newServer(t)

	body := get(h, "/login").Body.String()
	head := body[strings.Index(body, "<head>"):strings.Index(body, "</head>")]

	script := strings.Index(head, "<script")
	require.Positive(t, script)
	themeColor := strings.Index(head, `<meta name="theme-color"`)
	require.Positive(t, themeColor)
	assert.Less(t, themeColor, script, "the head script updates theme-color, so the tag must already be parsed")
	assert.Less(t, strings.Index(head, `<meta name="color-scheme"`), script)
}

func TestPage_AttachScriptEndsBody(t *testing.T) {
	_, h := newServer(t)

	body := get(h, "/dashboard", withCookie("dark")).Body.String()

	inj, err := injector.New(context.Background(), config.DefaultConfig().DocumentContract(), injector.WithBackend(injector.BackendCookie))
	require.NoError(t, err)

	attach := strings.Index(body, string(inj.AttachHTML()))
	require.Positive(t, attach)
	assert.Greater(t, attach, strings.Index(body, "</head>"))
	assert.Greater(t, attach, strings.Index(body, `class="theme-toolbar"`))
	assert.Less(t, attach, strings.Index(body, "</body>"))
	assert.Contains(t, inj.AttachScript(), "theme-critical-dark")
}

func TestPage_QuotedCookieIsMalformed(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/dashboard", func(r *http.Request) {
		r.Header.Set("Cookie", cookieName+`="dark"`)
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="light" data-theme="light"`)
}

func TestPage_DefaultsToLightWithoutSignals(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `<html lang="en" class="light" data-theme="light"`)
	assert.NotContains(t, rootTag(body), "background-color")
	assert.Contains(t, body, `<meta name="color-scheme" content="light dark">`)
	assert.Contains(t, body, `<meta name="theme-color" content="#ffffff">`)
	assert.Contains(t, body, `title="Switch to dark theme"`)
	assert.Empty(t, rec.Result().Cookies(), "rendering never writes the preference")
}

func TestPage_ClientHeadersRequestColorSchemeHint(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/register")
	assert.Equal(t, colorscheme.ClientHintHeader, rec.Header().Get("Accept-CH"))
	assert.Equal(t, colorscheme.ClientHintHeader, rec.Header().Get("Critical-CH"))
	assert.Contains(t, rec.Header().Values("Vary"), colorscheme.ClientHintHeader)
	assert.Contains(t, rec.Header().Values("Vary"), "Cookie")
}

func TestPage_StoredDarkPaintsDark(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/dashboard", withCookie("dark"))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `class="dark" data-theme="dark"`)
	root := rootTag(body)
	assert.Contains(t, root, "--auth-bg-color: #1e293b")
	assert.Contains(t, root, "background-color: #0f172a")
	assert.Contains(t, root, "color: #f8fafc")
	assert.Contains(t, body, `<meta name="theme-color" content="#1f2937">`)
	assert.Contains(t, body, `title="Dark theme"`)
	assert.Contains(t, body, `value="dark" role="menuitemradio" aria-checked="true"`)
	assert.NotContains(t, body, "<style")
}

func TestPage_SystemFollowsClientHint(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/dashboard", withHint(`"dark"`))
	assert.Contains(t, rec.Body.String(), `data-theme="dark"`)
	assert.Contains(t, rec.Body.String(), `title="System (dark)"`)

	rec = get(h, "/dashboard", withHint("dark"), withCookie("light"))
	assert.Contains(t, rec.Body.String(), `data-theme="light"`)
}

func TestPage_OverrideDetectorWinsOverHint(t *testing.T) {
	_, h := newServer(t, shell.WithDetectors(colorscheme.NewStaticDetector(true)))

	rec := get(h, "/login", withHint("light"))
	assert.Contains(t, rec.Body.String(), `data-theme="dark"`)
}

func TestPage_UnknownPath(t *testing.T) {
	_, h := newServer(t)
	assert.Equal(t, http.StatusNotFound, get(h, "/nope").Code)
}

func TestAPI_GetTheme(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/api/theme", withCookie("blue"), withHint("dark"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeDark}, decodeState(t, rec))
}

func TestAPI_SetModeFormRedirectsBack(t *testing.T) {
	_, h := newServer(t)

	form := url.Values{"mode": {"dark"}}
	req := httptest.NewRequest(http.MethodPost, "/api/theme/mode", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "http://example.com/dashboard")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	c := responseCookie(t, rec)
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.False(t, c.HttpOnly, "the head script must be able to read the cookie")
	assert.Equal(t, 365*24*60*60, c.MaxAge)

	// The next page load sees the new record.
	page := get(h, "/dashboard", withCookie(c.Value))
	assert.Contains(t, page.Body.String(), `data-theme="dark"`)
}

func TestAPI_SetModeForeignRefererGoesHome(t *testing.T) {
	_, h := newServer(t)

	form := url.Values{"mode": {"light"}}
	req := httptest.NewRequest(http.MethodPost, "/api/theme/mode", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "https://evil.example/dashboard")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAPI_SetModeJSON(t *testing.T) {
	_, h := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/theme/mode", strings.NewReader(`{"mode":"system"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(colorscheme.ClientHintHeader, "dark")
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "light"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.ThemeState{Mode: entity.ThemeModeSystem, Effective: entity.SchemeDark}, decodeState(t, rec))
	assert.Equal(t, "system", responseCookie(t, rec).Value)
}

func TestAPI_SetModeRejectsInvalid(t *testing.T) {
	_, h := newServer(t)

	for _, body := range []string{`{"mode":"sepia"}`, `{"mode":""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/theme/mode", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		assert.Empty(t, rec.Result().Cookies(), body)
	}
}

func TestAPI_Toggle(t *testing.T) {
	_, h := newServer(t)

	tests := []struct {
		name   string
		cookie string
		hint   string
		want   entity.ThemeState
	}{
		{"light to dark", "light", "", entity.ThemeState{Mode: entity.ThemeModeDark, Effective: entity.SchemeDark}},
		{"dark to light", "dark", "", entity.ThemeState{Mode: entity.ThemeModeLight, Effective: entity.SchemeLight}},
		{"system dark pins light", "system", "dark", entity.ThemeState{Mode: entity.ThemeModeLight, Effective: entity.SchemeLight}},
		{"no record, light system pins dark", "", "", entity.ThemeState{Mode: entity.ThemeModeDark, Effective: entity.SchemeDark}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/theme/toggle", nil)
			req.Header.Set("Accept", "application/json")
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tt.cookie})
			}
			if tt.hint != "" {
				req.Header.Set(colorscheme.ClientHintHeader, tt.hint)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decodeState(t, rec))
			assert.Equal(t, string(tt.want.Mode), responseCookie(t, rec).Value)
		})
	}
}

func TestStylesheet(t *testing.T) {
	_, h := newServer(t)

	rec := get(h, "/theme.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `[data-theme="light"]`)
	assert.Contains(t, rec.Body.String(), `[data-theme="dark"]`)
}

func TestUpdateConfig(t *testing.T) {
	srv, h := newServer(t)

	cfg := config.DefaultConfig()
	cfg.Appearance.StorageKey = "scheme"
	cfg.Appearance.DarkPalette.Background = "#000000"
	require.NoError(t, srv.UpdateConfig(context.Background(), cfg))

	req := httptest.NewRequest(http.MethodPost, "/api/theme/mode", strings.NewReader(`{"mode":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "scheme", cookies[0].Name)

	assert.Contains(t, get(h, "/login").Body.String(), "'scheme'")
	assert.Contains(t, get(h, "/theme.css").Body.String(), "--bg: #000000;")

	bad := config.DefaultConfig()
	bad.Appearance.StorageKey = ""
	assert.Error(t, srv.UpdateConfig(context.Background(), bad))
}
