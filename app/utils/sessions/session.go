package sessions

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "menu-session"

	menuFilterSessionKey = "menuFilter"
)

type SessionStore interface {
	GetMenuFilter(r *http.Request) string
	SetMenuFilter(w http.ResponseWriter, r *http.Request, filter string) error

	AddFlash(w http.ResponseWriter, r *http.Request, message string) error
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(secure bool, keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

// getSession never returns nil. A cookie that fails to decode, for instance
// after a key rotation, yields a fresh session.
func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		zap.L().Debug("Error getting session, starting a new one", zap.Error(err))
	}
	return session
}

func (c *CookieSessionStore) GetMenuFilter(r *http.Request) string {
	filter, ok := c.getSession(r).Values[menuFilterSessionKey].(string)
	if !ok {
		return ""
	}
	return filter
}

func (c *CookieSessionStore) SetMenuFilter(w http.ResponseWriter, r *http.Request, filter string) error {
	session := c.getSession(r)
	session.Values[menuFilterSessionKey] = filter
	return session.Save(r, w)
}

func (c *CookieSessionStore) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session := c.getSession(r)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes pops every pending flash message.
func (c *CookieSessionStore) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session := c.getSession(r)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		zap.L().Warn("Error saving session after reading flashes", zap.Error(err))
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
