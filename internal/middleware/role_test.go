package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func roleRequest(t *testing.T, role interface{}, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole("artist", "venue_admin")

	cases := []struct {
		name string
		role interface{}
		want int
	}{
		{"allowed artist", "artist", http.StatusOK},
		{"allowed venue_admin", "venue_admin", http.StatusOK},
		{"denied fan", "fan", http.StatusForbidden},
		{"denied admin on member route", "admin", http.StatusForbidden},
		{"missing role", nil, http.StatusForbidden},
		{"non-string role", 42, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := roleRequest(t, tc.role, mw); rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if got := currentUserID(c); got != "anon" {
		t.Errorf("unauthenticated = %q, want anon", got)
	}
	c.Set("user_id", float64(7)) // JWT claims decode numbers as float64
	if got := currentUserID(c); got != "7" {
		t.Errorf("float64 claim = %q, want 7", got)
	}
	c.Set("user_id", "12")
	if got := currentUserID(c); got != "12" {
		t.Errorf("string claim = %q, want 12", got)
	}
}
