package shell

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/domain/entity"
)

const maxBodyBytes = 1 << 10

// modeRequest is the JSON body of POST /api/theme/mode.
type modeRequest struct {
	Mode string `json:"mode"`
}

// problem is an RFC 7807 error body.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	ss := s.newSession(w, r)
	defer ss.close()
	writeJSON(w, r, http.StatusOK, ss.controller.State())
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	raw, err := readMode(w, r)
	if err != nil {
		writeProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ss := s.newSession(w, r)
	defer ss.close()

	state, err := ss.controller.SetMode(r.Context(), entity.ThemeMode(raw))
	if errors.Is(err, usecase.ErrInvalidMode) {
		writeProblem(w, r, http.StatusBadRequest, "mode must be light, dark or system")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("set theme mode")
		writeProblem(w, r, http.StatusInternalServerError, "")
		return
	}
	respondState(w, r, state)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	ss := s.newSession(w, r)
	defer ss.close()

	state, err := ss.controller.ToggleTheme(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("toggle theme")
		writeProblem(w, r, http.StatusInternalServerError, "")
		return
	}
	respondState(w, r, state)
}

// readMode extracts the mode from a JSON body or a form field.
func readMode(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if isJSON(r.Header.Get("Content-Type")) {
		var req modeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", errors.New("invalid JSON body")
		}
		return req.Mode, nil
	}
	if err := r.ParseForm(); err != nil {
		return "", errors.New("invalid form body")
	}
	return r.PostFormValue("mode"), nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func wantsJSON(r *http.Request) bool {
	return isJSON(r.Header.Get("Content-Type")) || strings.Contains(r.Header.Get("Accept"), "application/json")
}

// respondState answers API clients with JSON and form posts from the
// rendered controls with a redirect back to the page they came from.
func respondState(w http.ResponseWriter, r *http.Request, state entity.ThemeState) {
	if wantsJSON(r) {
		writeJSON(w, r, http.StatusOK, state)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// returnPath is the same-origin path of the Referer, "/" otherwise.
func returnPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if _, ok := pages[ref.Path]; !ok {
		return "/"
	}
	return ref.Path
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("write response")
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Title: http.StatusText(status), Status: status, Detail: detail}); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("write problem")
	}
}
