package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, in ports.LoginInput) ports.LoginResult
	registerFn func(ctx context.Context, in ports.RegisterCustomerInput) ports.LoginResult
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) ports.LoginResult {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) ports.LoginResult {
	return s.registerFn(ctx, in)
}

type stubSessionStore struct {
	session   domain.Session
	loggedOut bool
	lastError string
}

func (s *stubSessionStore) Login(user domain.User, token string) {
	u := user
	s.session = domain.Session{User: &u, Token: token, IsAuthenticated: true}
}

func (s *stubSessionStore) Logout() {
	s.loggedOut = true
	s.session = domain.Session{}
}

func (s *stubSessionStore) SetLoading(loading bool)  { s.session.IsLoading = loading }
func (s *stubSessionStore) SetError(msg string)      { s.lastError = msg; s.session.Error = &msg }
func (s *stubSessionStore) ClearError()              { s.session.Error = nil }
func (s *stubSessionStore) Snapshot() domain.Session { return s.session }
func (s *stubSessionStore) Token() string            { return s.session.Token }

func newAuthContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func loginOK(role domain.Role) func(context.Context, ports.LoginInput) ports.LoginResult {
	return func(ctx context.Context, in ports.LoginInput) ports.LoginResult {
		return ports.LoginResult{
			Success: true,
			User:    &domain.User{ID: "1", Name: "Asha", Mobile: in.Mobile, Role: role},
			Token:   "tok123",
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) ports.LoginResult {
			if in.Mobile != "9876543210" || in.PIN != "1234" {
				t.Fatalf("unexpected credentials: %+v", in)
			}
			return loginOK(domain.RoleServiceProvider)(ctx, in)
		},
	}
	store := &stubSessionStore{}
	h := NewAuthHandler(stub, store)

	c, rec := newAuthContext(t, "/login", `{"mobile":"9876543210","pin":"1234"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !store.session.IsAuthenticated || store.session.Token != "tok123" {
		t.Fatalf("expected session opened, got %+v", store.session)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != "/admin/dashboard" {
		t.Fatalf("expected admin home redirect, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Login_RoleHomes(t *testing.T) {
	cases := []struct {
		role     domain.Role
		redirect string
	}{
		{domain.RoleAdmin, "/admin/dashboard"},
		{domain.RoleServiceProvider, "/admin/dashboard"},
		{domain.RoleCleaner, "/cleaner/dashboard"},
		{domain.RoleCustomer, "/customer/dashboard"},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{loginFn: loginOK(tc.role)}, &stubSessionStore{})

			c, rec := newAuthContext(t, "/login", `{"mobile":"9876543210","pin":"1234"}`)
			if err := h.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["redirect"] != tc.redirect {
				t.Fatalf("expected %s, got %v", tc.redirect, resp["redirect"])
			}
		})
	}
}

func TestAuthHandler_Login_HonoursFromParam(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginFn: loginOK(domain.RoleServiceProvider)}, &stubSessionStore{})

	c, rec := newAuthContext(t, "/login?from=%2Fadmin%2Fcustomers", `{"mobile":"9876543210","pin":"1234"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != "/admin/customers" {
		t.Fatalf("expected preserved path, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, in ports.LoginInput) ports.LoginResult {
			return ports.LoginResult{Error: "INVALID_CREDENTIALS"}
		},
	}
	store := &stubSessionStore{}
	h := NewAuthHandler(stub, store)

	c, rec := newAuthContext(t, "/login", `{"mobile":"9876543210","pin":"0000"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if store.session.IsAuthenticated {
		t.Fatalf("session must stay closed on failed login")
	}
	if store.lastError != "INVALID_CREDENTIALS" {
		t.Fatalf("expected inline error recorded, got %q", store.lastError)
	}
}

func TestAuthHandler_Login_ValidationRejectsBadMobile(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"short mobile", `{"mobile":"12345","pin":"1234"}`},
		{"alpha mobile", `{"mobile":"98765abcde","pin":"1234"}`},
		{"short pin", `{"mobile":"9876543210","pin":"12"}`},
		{"missing pin", `{"mobile":"9876543210"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAuthService{
				loginFn: func(ctx context.Context, in ports.LoginInput) ports.LoginResult {
					t.Fatalf("gateway must not be reached for malformed credentials")
					return ports.LoginResult{}
				},
			}
			h := NewAuthHandler(stub, &stubSessionStore{})

			c, rec := newAuthContext(t, "/login", tc.body)
			if err := h.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterCustomerInput) ports.LoginResult {
			if in.Name != "Asha" || in.Phone != "9876543210" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return ports.LoginResult{
				Success: true,
				User:    &domain.User{ID: "2", Name: in.Name, Mobile: in.Phone, Role: domain.RoleCustomer},
				Token:   "tok456",
			}
		},
	}
	store := &stubSessionStore{}
	h := NewAuthHandler(stub, store)

	c, rec := newAuthContext(t, "/register", `{"name":"Asha","phone":"9876543210","pin":"1234"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !store.session.IsAuthenticated {
		t.Fatalf("expected auto-login after registration")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != "/customer/dashboard" {
		t.Fatalf("expected customer home, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Register_Failure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterCustomerInput) ports.LoginResult {
			return ports.LoginResult{Error: "DUPLICATE_MOBILE"}
		},
	}
	h := NewAuthHandler(stub, &stubSessionStore{})

	c, rec := newAuthContext(t, "/register", `{"name":"Asha","phone":"9876543210","pin":"1234"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	store := &stubSessionStore{}
	store.Login(domain.User{ID: "1", Role: domain.RoleCustomer}, "tok")
	h := NewAuthHandler(&stubAuthService{}, store)

	c, rec := newAuthContext(t, "/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !store.loggedOut {
		t.Fatalf("expected store logout")
	}
}

func TestAuthHandler_Session(t *testing.T) {
	store := &stubSessionStore{}
	store.Login(domain.User{ID: "1", Name: "Asha", Role: domain.RoleCustomer}, "not-a-jwt")
	h := NewAuthHandler(&stubAuthService{}, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isAuthenticated"] != true {
		t.Fatalf("expected authenticated session view")
	}
	// An opaque token yields no expiry metadata.
	if _, ok := resp["tokenExpiresAt"]; ok {
		t.Fatalf("expected no expiry for undecodable token")
	}
}

func TestAuthHandler_Session_ExposesTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "9876543210",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	store := &stubSessionStore{}
	store.Login(domain.User{ID: "1", Role: domain.RoleCustomer}, token)
	h := NewAuthHandler(&stubAuthService{}, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["tokenExpiresAt"] != exp.UTC().Format(time.RFC3339) {
		t.Fatalf("unexpected expiry: %v (want %s)", resp["tokenExpiresAt"], exp.UTC().Format(time.RFC3339))
	}
}
