// Package session keeps one-shot flash state in a signed cookie: the alert
// shown after a rejected form submission and the values the user had typed,
// carried across the post-redirect-get cycle.
package session

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/ianto3/projectboard/internal/platform/config"
)

// CookieName is the name of the flash session cookie.
const CookieName = "projectboard_session"

// inputPrefix namespaces kept form values inside the session.
const inputPrefix = "input."

// Flash is what one request leaves for the next.
type Flash struct {
	Message string
	Input   map[string]string
}

// Empty reports whether there is nothing to show.
func (f Flash) Empty() bool {
	return f.Message == "" && len(f.Input) == 0
}

// Store reads and writes flash state.
type Store struct {
	cookies *sessions.CookieStore
}

// New creates a cookie-backed Store. The secret is hashed with SHA-256 to
// derive the signing key, so any passphrase of the configured minimum length
// works.
func New(cfg config.SessionConfig) *Store {
	key := sha256.Sum256([]byte(cfg.Secret))

	cookies := sessions.NewCookieStore(key[:])
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies}
}

// SetFlash replaces any pending flash with f.
func (s *Store) SetFlash(w http.ResponseWriter, r *http.Request, f Flash) error {
	sess, err := s.get(r)
	if err != nil {
		return err
	}

	clear(sess.Values)
	if f.Message != "" {
		sess.AddFlash(f.Message)
	}
	for k, v := range f.Input {
		sess.Values[inputPrefix+k] = v
	}

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// PopFlash returns the pending flash and clears it. A request without a
// session cookie yields an empty Flash and writes nothing.
func (s *Store) PopFlash(w http.ResponseWriter, r *http.Request) (Flash, error) {
	sess, err := s.get(r)
	if err != nil {
		return Flash{}, err
	}
	if sess.IsNew || len(sess.Values) == 0 {
		return Flash{}, nil
	}

	var f Flash
	for _, msg := range sess.Flashes() {
		if text, ok := msg.(string); ok {
			f.Message = text
		}
	}
	for k, v := range sess.Values {
		key, ok := k.(string)
		if !ok || !strings.HasPrefix(key, inputPrefix) {
			continue
		}
		if f.Input == nil {
			f.Input = make(map[string]string)
		}
		if val, ok := v.(string); ok {
			f.Input[strings.TrimPrefix(key, inputPrefix)] = val
		}
	}

	clear(sess.Values)
	if err := sess.Save(r, w); err != nil {
		return Flash{}, fmt.Errorf("saving session: %w", err)
	}
	return f, nil
}

// get loads the session. A cookie that fails verification, for example after
// a secret rotation, is treated as absent.
func (s *Store) get(r *http.Request) (*sessions.Session, error) {
	sess, err := s.cookies.Get(r, CookieName)
	if err != nil && sess == nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return sess, nil
}
