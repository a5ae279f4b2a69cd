// Package theme owns the light/dark display preference: one cookie, one
// writer, and the presentation marker derived from it. Handlers never touch
// the cookie directly.
package theme

import (
	"net/http"
	"strconv"
	"time"
)

// DefaultCookie is the cookie name used when none is configured.
const DefaultCookie = "devlog_dark"

// maxAge is one year, matching the cookie's Expires.
const maxAge = 365 * 24 * 60 * 60

// Manager reads and persists the theme preference.
type Manager struct {
	cookie string
}

// NewManager creates a Manager for the given cookie name.
func NewManager(cookieName string) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookie
	}
	return &Manager{cookie: cookieName}
}

// Dark reports whether dark mode is active for the request. Only the exact
// value "true" enables it; a missing or malformed cookie means light mode,
// silently.
func (m *Manager) Dark(r *http.Request) bool {
	c, err := r.Cookie(m.cookie)
	if err != nil {
		return false
	}
	return c.Value == "true"
}

// Write persists the preference site-wide for a year. Writes are idempotent
// overwrites; the last one wins.
func (m *Manager) Write(w http.ResponseWriter, dark bool) {
	http.SetCookie(w, &http.Cookie{
		Name:    m.cookie,
		Value:   strconv.FormatBool(dark),
		Path:    "/",
		MaxAge:  maxAge,
		Expires: time.Now().AddDate(1, 0, 0),
	})
}

// Attribute is the value of the page's data-theme root marker.
func Attribute(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
