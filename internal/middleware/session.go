package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName     = "session"
	sessionKeySID   = "sid"
	sessionKeyAdmin = "admin"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionMiddleware issues and reads the opaque per-browser session ID the
// cart store is keyed by. The cookie carries only the ID; cart state never
// leaves the server.
type SessionMiddleware struct {
	store sessions.Store
	log   *slog.Logger
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(store sessions.Store, log *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store: store,
		log:   log,
	}
}

// EnsureSession guarantees every request carries a session ID, minting one on
// first contact, and puts it on the request context.
func (m *SessionMiddleware) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A decode error yields a fresh session; treat it as a new visitor.
		session, _ := m.store.Get(r, sessionName)

		sid, ok := session.Values[sessionKeySID].(string)
		if !ok || sid == "" {
			sid = uuid.NewString()
			session.Values[sessionKeySID] = sid
			if err := session.Save(r, w); err != nil {
				m.log.Warn("failed to save session cookie", "error", err)
			}
		}

		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sid)))
	})
}

// RequireAdmin gates owner routes on the admin flag a successful login sets.
// Unauthenticated requests are redirected to the login page.
func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := m.store.Get(r, sessionName)
		if admin, ok := session.Values[sessionKeyAdmin].(bool); !ok || !admin {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithSessionID stores a session ID on the context. Exposed for handler
// tests.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sid)
}

// SessionID returns the request's session ID, or "" outside EnsureSession.
func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey).(string)
	return sid
}

// SetAdmin marks the request's session as logged in for owner routes.
func SetAdmin(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, _ := store.Get(r, sessionName)
	session.Values[sessionKeyAdmin] = true
	return session.Save(r, w)
}

// IsAdmin reports whether the request's session carries the admin flag.
func IsAdmin(store sessions.Store, r *http.Request) bool {
	session, _ := store.Get(r, sessionName)
	admin, ok := session.Values[sessionKeyAdmin].(bool)
	return ok && admin
}
