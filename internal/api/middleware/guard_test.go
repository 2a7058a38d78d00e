package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

type stubStore struct {
	snapshot domain.Session
}

func (s *stubStore) Login(domain.User, string) {}
func (s *stubStore) Logout()                   {}
func (s *stubStore) SetLoading(bool)           {}
func (s *stubStore) SetError(string)           {}
func (s *stubStore) ClearError()               {}
func (s *stubStore) Snapshot() domain.Session  { return s.snapshot }
func (s *stubStore) Token() string             { return s.snapshot.Token }

func session(role domain.Role) domain.Session {
	return domain.Session{
		User:            &domain.User{ID: "1", Role: role},
		Token:           "tok",
		IsAuthenticated: true,
	}
}

func TestGuard_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := &stubStore{snapshot: session(domain.RoleServiceProvider)}

	called := false
	mw := Guard(store, zerolog.Nop(), domain.RoleServiceProvider, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		called = true
		snap, ok := c.Get(SessionKey).(domain.Session)
		if !ok || snap.User == nil || snap.User.Role != domain.RoleServiceProvider {
			t.Fatalf("expected session snapshot in context, got %v", c.Get(SessionKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestGuard_AdminRoleOpensAdminArea(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := &stubStore{snapshot: session(domain.RoleAdmin)}

	mw := Guard(store, zerolog.Nop(), domain.RoleServiceProvider, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_UnauthenticatedRedirectsToLogin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/customers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := &stubStore{}

	mw := Guard(store, zerolog.Nop(), domain.RoleServiceProvider, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?from=%2Fadmin%2Fcustomers" {
		t.Fatalf("expected preserved path, got %q", loc)
	}
}

func TestGuard_WrongRoleRedirectsToUnauthorized(t *testing.T) {
	cases := []struct {
		name    string
		role    domain.Role
		allowed []domain.Role
	}{
		{"customer into admin", domain.RoleCustomer, []domain.Role{domain.RoleServiceProvider, domain.RoleAdmin}},
		{"cleaner into admin", domain.RoleCleaner, []domain.Role{domain.RoleServiceProvider, domain.RoleAdmin}},
		{"admin into cleaner", domain.RoleAdmin, []domain.Role{domain.RoleCleaner}},
		{"customer into cleaner", domain.RoleCustomer, []domain.Role{domain.RoleCleaner}},
		{"cleaner into customer", domain.RoleCleaner, []domain.Role{domain.RoleCustomer}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			store := &stubStore{snapshot: session(tc.role)}

			mw := Guard(store, zerolog.Nop(), tc.allowed...)
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			if err := handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusFound {
				t.Fatalf("expected 302, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != "/unauthorized" {
				t.Fatalf("expected /unauthorized, got %q", loc)
			}
		})
	}
}
