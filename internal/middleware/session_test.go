package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSessionCookieRoundTrip(t *testing.T) {
	var captured *SessionData
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		s.CartID = "gid://cart/abc"
		s.MarkDirty()
		captured = s
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if captured == nil || captured.ID == "" {
		t.Fatal("expected a session to be initialized")
	}

	cookies := rec.Result().Cookies()
	var sc *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			sc = c
		}
	}
	if sc == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !sc.Expires.IsZero() || sc.MaxAge != 0 {
		t.Fatalf("session cookie must be browser-session scoped, got expires=%v maxAge=%d", sc.Expires, sc.MaxAge)
	}

	// replay the cookie: same session, cart id intact
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sc)
	h2 := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if s.ID != captured.ID {
			t.Fatalf("expected session id %q, got %q", captured.ID, s.ID)
		}
		if s.CartID != "gid://cart/abc" {
			t.Fatalf("expected cart id to survive the round trip, got %q", s.CartID)
		}
	}))
	h2.ServeHTTP(httptest.NewRecorder(), req)
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	var first *SessionData
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = GetSession(r)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var sc *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			sc = c
		}
	}
	if sc == nil {
		t.Fatal("expected session cookie")
	}
	// flip the signature
	parts := strings.Split(sc.Value, ".")
	sc.Value = parts[0] + "." + strings.Repeat("A", len(parts[1]))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sc)
	h2 := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if s.ID == first.ID {
			t.Fatal("tampered cookie must not restore the session")
		}
	}))
	h2.ServeHTTP(httptest.NewRecorder(), req)
}

func TestCSRFBlocksUnsafeWithoutToken(t *testing.T) {
	h := Session(CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart/items", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shop", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("safe methods must pass, got %d", rec.Code)
	}
}
