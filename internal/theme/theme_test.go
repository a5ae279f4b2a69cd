package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestWithCookie(name, value string) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	if name != "" {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

func TestDarkDefaultsToLight(t *testing.T) {
	m := NewManager("")
	if m.Dark(requestWithCookie("", "")) {
		t.Error("no cookie should mean light mode")
	}
}

func TestDarkReadsCookie(t *testing.T) {
	m := NewManager(DefaultCookie)
	if !m.Dark(requestWithCookie(DefaultCookie, "true")) {
		t.Error("cookie value true should mean dark mode")
	}
	if m.Dark(requestWithCookie(DefaultCookie, "false")) {
		t.Error("cookie value false should mean light mode")
	}
	if m.Dark(requestWithCookie(DefaultCookie, "garbage")) {
		t.Error("malformed cookie value should fall back to light mode")
	}
}

func TestWriteSetsYearLongCookie(t *testing.T) {
	m := NewManager(DefaultCookie)
	w := httptest.NewRecorder()
	m.Write(w, true)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != DefaultCookie || c.Value != "true" {
		t.Errorf("cookie = %s=%s, want %s=true", c.Name, c.Value, DefaultCookie)
	}
	if c.Path != "/" {
		t.Errorf("cookie path = %q, want site-wide /", c.Path)
	}
	if c.MaxAge != 365*24*60*60 {
		t.Errorf("cookie max-age = %d, want one year", c.MaxAge)
	}
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	m := NewManager(DefaultCookie)

	dark := false
	var last *http.Cookie
	for i := 0; i < 2; i++ {
		dark = !dark
		w := httptest.NewRecorder()
		m.Write(w, dark)
		last = w.Result().Cookies()[0]
	}

	if dark != false {
		t.Error("double toggle should restore the original preference")
	}
	if last.Value != "false" {
		t.Errorf("cookie reflects %q, want final value false", last.Value)
	}
}

func TestAttribute(t *testing.T) {
	if Attribute(true) != "dark" || Attribute(false) != "light" {
		t.Error("Attribute should map booleans to dark/light markers")
	}
}
