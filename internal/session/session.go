// Package session models the client-held, server-signed session that gates
// every mutating operation. A session carries at most one field of interest:
// the id of the logged in user. Each request gets its own snapshot; there is
// no process-wide session registry.
package session

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "session"
	userIDKey  = "user_id"
	tokenKey   = "token"

	// maxAge is the cookie lifetime; Renew resets it.
	maxAge = 24 * 60 * 60
)

// Session is the per-request session snapshot.
type Session interface {
	// UserID returns the logged in user's id. A missing or malformed value
	// yields ok=false.
	UserID() (id int64, ok bool)
	// SetUserID establishes the session for a principal. Login is the only
	// caller.
	SetUserID(id int64)
	// Renew rotates the session's identity token and refreshes its expiry
	// without touching the user id.
	Renew()
	// Save writes the session back to the client.
	Save() error
}

// Accessor resolves the Session for a request. Handlers depend on this
// indirection so tests can substitute an in-memory session.
type Accessor func(echo.Context) (Session, error)

// Middleware returns the signed-cookie session middleware.
func Middleware(secret string) echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.MaxAge = maxAge
	store.Options.HttpOnly = true
	return echosession.Middleware(store)
}

// FromContext resolves the cookie-backed session for a request. Requires
// Middleware to be installed.
func FromContext(c echo.Context) (Session, error) {
	s, err := echosession.Get(cookieName, c)
	if err != nil {
		return nil, err
	}
	return &cookieSession{c: c, s: s}, nil
}

type cookieSession struct {
	c echo.Context
	s *sessions.Session
}

func (cs *cookieSession) UserID() (int64, bool) {
	v, ok := cs.s.Values[userIDKey]
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

func (cs *cookieSession) SetUserID(id int64) {
	cs.s.Values[userIDKey] = id
}

func (cs *cookieSession) Renew() {
	cs.s.Values[tokenKey] = uuid.NewString()
	cs.s.Options.MaxAge = maxAge
}

func (cs *cookieSession) Save() error {
	return cs.s.Save(cs.c.Request(), cs.c.Response())
}
