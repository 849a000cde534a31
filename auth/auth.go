package auth

import (
	"encoding/gob"
	"net/http"

	"adminpanel/config"
	"adminpanel/models"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/argon2"
)

var Store *sessions.CookieStore

const SessionName = "adminpanel-session"

// Session keys recognized by the panel.
const (
	keyLoggedIn = "admin_logged_in"
	keyUsername = "admin_username"
)

func init() {
	// Flash values travel through the securecookie gob encoder.
	gob.Register(models.Flash{})
}

func InitStore() {
	// Derive two independent 32-byte keys from the configured session key:
	// one for signing (HMAC), one for content encryption (AES).
	authKey := DeriveKey(config.AppConfig.SessionKey, "auth")
	encKey := DeriveKey(config.AppConfig.SessionKey, "encryption")

	Store = sessions.NewCookieStore(authKey, encKey)

	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   config.AppConfig.ListenPort != 8080, // Default to true unless dev port
		SameSite: http.SameSiteLaxMode,
	}
}

// DeriveKey stretches the configured secret into a 32-byte key with argon2id.
// The salt keeps keys for different purposes independent.
func DeriveKey(secret, salt string) []byte {
	return argon2.IDKey([]byte(secret), []byte(salt), 1, 64*1024, 4, 32)
}

func IsLoggedIn(r *http.Request) bool {
	session, _ := Store.Get(r, SessionName)
	logged, ok := session.Values[keyLoggedIn].(bool)
	return ok && logged
}

func Username(r *http.Request) string {
	session, _ := Store.Get(r, SessionName)
	if name, ok := session.Values[keyUsername].(string); ok {
		return name
	}
	return ""
}

func SetSession(w http.ResponseWriter, r *http.Request, username string) {
	session, _ := Store.Get(r, SessionName)
	session.Values[keyLoggedIn] = true
	session.Values[keyUsername] = username
	session.Save(r, w)
}

// ClearSession removes all session state, flashes included.
func ClearSession(w http.ResponseWriter, r *http.Request) {
	session, _ := Store.Get(r, SessionName)
	for k := range session.Values {
		delete(session.Values, k)
	}
	session.Save(r, w)
}

// AddFlash queues a one-shot notice for the next rendered page.
func AddFlash(w http.ResponseWriter, r *http.Request, flashType, message string) {
	session, _ := Store.Get(r, SessionName)
	session.AddFlash(models.Flash{Type: flashType, Message: message})
	session.Save(r, w)
}

// Flashes drains and returns the queued notices.
func Flashes(w http.ResponseWriter, r *http.Request) []models.Flash {
	session, _ := Store.Get(r, SessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save(r, w)

	flashes := make([]models.Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(models.Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// RequireAdmin guards a handler behind the session gate: anonymous requests
// are redirected to the login form, never answered with the protected page.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !IsLoggedIn(r) {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
