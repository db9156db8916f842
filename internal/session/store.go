// Package session persists the authenticated identity in the browser:
// one cookie under a fixed name holding the Session object as a base64
// JSON blob. The backend re-validates the token on every API call, so the
// blob is a UX convenience, not a security control.
package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"room-booking-frontend/config"
	"room-booking-frontend/internal/entity"
)

const contextKey = "session"

const defaultCookieName = "user"

type Store struct {
	cookieName string
	maxAge     int
	secure     bool
}

func NewStore(cfg *config.SessionConfig) *Store {
	name := cfg.CookieName
	if name == "" {
		name = defaultCookieName
	}
	return &Store{
		cookieName: name,
		maxAge:     int(cfg.MaxAge.Seconds()),
		secure:     cfg.Secure,
	}
}

// Middleware restores the persisted session once per request and exposes it
// to every downstream handler and template. A missing or corrupt blob means
// "not signed in", never an error.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := s.read(c); sess != nil {
			c.Set(contextKey, sess)
		}
		c.Next()
	}
}

// Current returns the session hydrated for this request, or nil when absent.
func Current(c *gin.Context) *entity.Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*entity.Session)
	return sess
}

// Issue stores the session for the rest of this request and persists it to
// the cookie so a page reload restores it without re-authenticating.
func (s *Store) Issue(c *gin.Context, sess *entity.Session) error {
	if !sess.Complete() {
		return fmt.Errorf("refusing to persist a partial session")
	}
	encoded, err := Encode(sess)
	if err != nil {
		return err
	}
	c.SetCookie(s.cookieName, encoded, s.maxAge, "/", "", s.secure, true)
	c.Set(contextKey, sess)
	return nil
}

// Clear drops both the request-scoped session and the persisted cookie.
func (s *Store) Clear(c *gin.Context) {
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
	c.Set(contextKey, (*entity.Session)(nil))
}

func (s *Store) read(c *gin.Context) *entity.Session {
	raw, err := c.Cookie(s.cookieName)
	if err != nil || raw == "" {
		return nil
	}
	return Decode(raw)
}

func Encode(sess *entity.Session) (string, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode returns nil for anything that does not round-trip to a fully
// populated session: undecodable base64, invalid JSON, missing fields.
func Decode(raw string) *entity.Session {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if !sess.Complete() {
		return nil
	}
	return &sess
}
