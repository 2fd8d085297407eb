package shell

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/themesync/internal/application/port"
)

// CookieStore is the preference record of one HTTP exchange: it reads the
// request cookie and writes a response cookie under the same name. The
// cookie is readable from scripts so the head script sees the same record.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	maxAge time.Duration

	written map[string]string
}

var _ port.PreferenceStore = (*CookieStore)(nil)

// NewCookieStore creates a store bound to one request and its response.
func NewCookieStore(r *http.Request, w http.ResponseWriter, maxAge time.Duration) *CookieStore {
	return &CookieStore{r: r, w: w, maxAge: maxAge, written: make(map[string]string)}
}

// Get returns the value written during this exchange, else the request
// cookie. The header is read the way the head script reads document.cookie:
// first exact name match, value kept verbatim (quotes included) and then
// percent-decoded. An undecodable value is an error.
func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.written[key]; ok {
		return v, true, nil
	}
	raw, ok := requestCookie(s.r, key)
	if !ok {
		return "", false, nil
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", false, fmt.Errorf("decode cookie %s: %w", key, err)
	}
	if !utf8.ValidString(v) {
		return "", false, fmt.Errorf("decode cookie %s: invalid utf-8", key)
	}
	return v, true, nil
}

// requestCookie returns the raw value of the first cookie named key.
func requestCookie(r *http.Request, key string) (string, bool) {
	for _, header := range r.Header.Values("Cookie") {
		for _, part := range strings.Split(header, ";") {
			part = strings.TrimLeft(part, " \t")
			name, value, found := strings.Cut(part, "=")
			if found && name != "" && name == key {
				return value, true
			}
		}
	}
	return "", false
}

// Set writes the response cookie.
func (s *CookieStore) Set(_ context.Context, key, value string) error {
	cookie := &http.Cookie{
		Name:     key,
		Value:    url.PathEscape(value),
		Path:     "/",
		MaxAge:   int(s.maxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
		Secure:   s.r.TLS != nil,
	}
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("write cookie %s: %w", key, err)
	}
	http.SetCookie(s.w, cookie)
	s.written[key] = value
	return nil
}
