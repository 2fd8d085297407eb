package shell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieStore_GetMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	store := NewCookieStore(req, httptest.NewRecorder(), time.Hour)

	v, ok, err := store.Get(context.Background(), "theme-mode")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestCookieStore_GetDecodes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme-mode", Value: "dark%20"})
	store := NewCookieStore(req, httptest.NewRecorder(), time.Hour)

	v, ok, err := store.Get(context.Background(), "theme-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark ", v)
}

func TestCookieStore_GetUndecodableIsError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme-mode", Value: "%E0%A4%A"})
	store := NewCookieStore(req, httptest.NewRecorder(), time.Hour)

	_, ok, err := store.Get(context.Background(), "theme-mode")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCookieStore_GetKeepsQuotes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", `session=abc; theme-mode="dark"`)
	store := NewCookieStore(req, httptest.NewRecorder(), time.Hour)

	v, ok, err := store.Get(context.Background(), "theme-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"dark"`, v)
	_, valid := entity.ParseThemeMode(v)
	assert.False(t, valid, "a quoted value is malformed, as it is for the head script")
}

func TestCookieStore_GetFirstMatchWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Add("Cookie", "xtheme-mode=light;theme-mode=dark")
	req.Header.Add("Cookie", "theme-mode=light")
	store := NewCookieStore(req, httptest.NewRecorder(), time.Hour)

	v, ok, err := store.Get(context.Background(), "theme-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestCookieStore_GetPlusIsLiteral(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", "theme-mode=dark+mode")
	store := NewCookieStore(req, httptest.NewRecorder(), time.Hour)

	v, _, err := store.Get(context.Background(), "theme-mode")
	require.NoError(t, err)
	assert.Equal(t, "dark+mode", v)
}

func TestCookieStore_SetWritesResponseCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme-mode", Value: "light"})
	rec := httptest.NewRecorder()
	store := NewCookieStore(req, rec, 48*time.Hour)

	require.NoError(t, store.Set(context.Background(), "theme-mode", "dark"))

	v, ok, err := store.Get(context.Background(), "theme-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v, "a write is visible within the same exchange")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "theme-mode", cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
	assert.Equal(t, 48*60*60, cookies[0].MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.False(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
}

func TestCookieStore_SetRejectsInvalidName(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	store := NewCookieStore(req, rec, time.Hour)

	assert.Error(t, store.Set(context.Background(), "bad name", "dark"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestReturnPath(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://example.com/dashboard", "/dashboard"},
		{"http://example.com/register?x=1", "/register"},
		{"http://other.example/dashboard", "/"},
		{"http://example.com/unknown", "/"},
		{"//evil.example/login", "/"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/theme/toggle", nil)
		if tt.referer != "" {
			req.Header.Set("Referer", tt.referer)
		}
		assert.Equal(t, tt.want, returnPath(req), tt.referer)
	}
}
