package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

type stubSession struct {
	token     string
	loggedOut bool
}

func (s *stubSession) Login(user domain.User, token string) { s.token = token }
func (s *stubSession) Logout()                              { s.loggedOut = true; s.token = "" }
func (s *stubSession) SetLoading(bool)                      {}
func (s *stubSession) SetError(string)                      {}
func (s *stubSession) ClearError()                          {}
func (s *stubSession) Snapshot() domain.Session             { return domain.Session{} }
func (s *stubSession) Token() string                        { return s.token }

func newTestClient(t *testing.T, baseURL string, session *stubSession) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL}, session, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"body":{}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, &stubSession{token: "tok123"})
	if _, err := client.Get(context.Background(), "/api/plans", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"success":true,"body":{}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, &stubSession{})
	if _, err := client.Post(context.Background(), "/api/auth/login", nil, map[string]string{"username": "9876543210"}); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if hasAuth {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_UnwrapsEnvelopeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"body":{"id":"42","name":"Gold"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, &stubSession{})
	raw, err := client.Get(context.Background(), "/api/plans/42", nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(raw) != `{"id":"42","name":"Gold"}` {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestClient_SoftFailureOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"messageCodes":["CUSTOMER_NOT_FOUND","EXTRA"]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, &stubSession{})
	_, err := client.Get(context.Background(), "/api/customers/9", nil)

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !apiErr.IsSoftFailure() {
		t.Fatalf("expected soft failure, status %d", apiErr.Status)
	}
	if apiErr.Error() != "CUSTOMER_NOT_FOUND" {
		t.Fatalf("expected first message code, got %q", apiErr.Error())
	}
}

func TestClient_SoftFailureWithoutCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, &stubSession{})
	_, err := client.Get(context.Background(), "/api/customers", nil)

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Error() != "operation failed" {
		t.Fatalf("expected generic fallback, got %q", apiErr.Error())
	}
}

func TestClient_Unauthorized_EndsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	session := &stubSession{token: "stale"}
	client := newTestClient(t, srv.URL, session)
	_, err := client.Get(context.Background(), "/api/admin/customers", nil)

	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if !session.loggedOut {
		t.Fatalf("expected forced logout on 401")
	}
}

func TestClient_Forbidden_EndsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	session := &stubSession{token: "tok"}
	client := newTestClient(t, srv.URL, session)
	_, err := client.Get(context.Background(), "/api/admin/team", nil)

	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !session.loggedOut {
		t.Fatalf("expected forced logout on 403")
	}
}

func TestClient_HTTPErrorCarriesStatusAndCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"messageCodes":["DUPLICATE_MOBILE"]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, &stubSession{})
	_, err := client.Post(context.Background(), "/api/customers", nil, map[string]string{"mobile": "9876543210"})

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", apiErr.Status)
	}
	if apiErr.Error() != "DUPLICATE_MOBILE" {
		t.Fatalf("unexpected code: %q", apiErr.Error())
	}
}

func TestClient_TransportError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	session := &stubSession{token: "tok"}
	client := newTestClient(t, srv.URL, session)
	_, err := client.Get(context.Background(), "/api/plans", nil)

	if !errors.Is(err, domain.ErrBackendUnreachable) {
		t.Fatalf("expected ErrBackendUnreachable, got %v", err)
	}
	if session.loggedOut {
		t.Fatalf("transport errors must not end the session")
	}
}

func TestClient_EmptyBodyOn2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, &stubSession{})
	if err := client.Delete(context.Background(), "/api/vehicles/7"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}, &stubSession{}, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for empty BaseURL")
	}
}
