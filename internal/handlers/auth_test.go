package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curiocart/internal/middleware"
	"curiocart/internal/services"
)

func newAuthHandler(t *testing.T, store sessions.Store) *AuthHandler {
	t.Helper()
	creds, err := services.NewConfigCredentialStore(map[string]string{
		"admin": "admin",
		"user":  "admin",
	})
	require.NoError(t, err)
	auth := services.NewAuthService(discardLogger(), creds)
	return NewAuthHandler(discardLogger(), auth, store)
}

func postLogin(h *AuthHandler, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Login(w, req)
	return w
}

func TestLoginSuccessRendersDashboard(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := newAuthHandler(t, store)

	w := postLogin(h, "admin", "admin")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Owner dashboard")

	// The session is now marked admin.
	req := httptest.NewRequest("GET", "/owner", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	assert.True(t, middleware.IsAdmin(store, req))
}

func TestLoginFailureRedirectsWithoutSessionMarker(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := newAuthHandler(t, store)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "unknown user", username: "nouser", password: "x"},
		{name: "empty form", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(h, tt.username, tt.password)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/login-fail", w.Header().Get("Location"))

			// No session-authenticated marker may be left behind.
			req := httptest.NewRequest("GET", "/owner", nil)
			for _, c := range w.Result().Cookies() {
				req.AddCookie(c)
			}
			assert.False(t, middleware.IsAdmin(store, req))
		})
	}
}
