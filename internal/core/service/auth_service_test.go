package service

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

type stubGateway struct {
	getFn    func(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	postFn   func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error)
	putFn    func(ctx context.Context, path string, body any) (json.RawMessage, error)
	deleteFn func(ctx context.Context, path string) error
}

func (g *stubGateway) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return g.getFn(ctx, path, query)
}

func (g *stubGateway) Post(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
	return g.postFn(ctx, path, query, body)
}

func (g *stubGateway) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return g.putFn(ctx, path, body)
}

func (g *stubGateway) Delete(ctx context.Context, path string) error {
	return g.deleteFn(ctx, path)
}

func TestAuthService_Login_MapsCredentialsOnTheWire(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			if path != "/api/auth/login" {
				t.Fatalf("unexpected path: %s", path)
			}
			payload, ok := body.(map[string]string)
			if !ok {
				t.Fatalf("unexpected body type: %T", body)
			}
			// The backend speaks username/password; mobile and pin are remapped.
			if payload["username"] != "9876543210" || payload["password"] != "1234" {
				t.Fatalf("unexpected payload: %v", payload)
			}
			return json.RawMessage(`{"token":"tok123","type":"Bearer","userId":7,"name":"Asha","role":"SERVICE_PROVIDER","serviceProviderId":1}`), nil
		},
	}
	svc := NewAuthService(gw, 1, zerolog.Nop())

	result := svc.Login(context.Background(), ports.LoginInput{Mobile: "9876543210", PIN: "1234"})
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Token != "tok123" {
		t.Fatalf("unexpected token: %q", result.Token)
	}
	if result.User.ID != "7" || result.User.Mobile != "9876543210" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
	if result.User.Role != domain.RoleServiceProvider {
		t.Fatalf("unexpected role: %s", result.User.Role)
	}
}

func TestAuthService_Login_BackendRejection(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			return nil, &domain.APIError{Status: 200, MessageCodes: []string{"INVALID_CREDENTIALS"}}
		},
	}
	svc := NewAuthService(gw, 1, zerolog.Nop())

	result := svc.Login(context.Background(), ports.LoginInput{Mobile: "9876543210", PIN: "0000"})
	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Error != "INVALID_CREDENTIALS" {
		t.Fatalf("expected first message code, got %q", result.Error)
	}
}

func TestAuthService_Login_BackendUnreachable(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			return nil, domain.ErrBackendUnreachable
		},
	}
	svc := NewAuthService(gw, 1, zerolog.Nop())

	result := svc.Login(context.Background(), ports.LoginInput{Mobile: "9876543210", PIN: "1234"})
	if result.Success {
		t.Fatalf("expected failure")
	}
	if result.Error != "Unable to connect to server." {
		t.Fatalf("unexpected message: %q", result.Error)
	}
}

func TestAuthService_RegisterCustomer_FixedRoleAndProvider(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			if path != "/api/auth/register/customer" {
				t.Fatalf("unexpected path: %s", path)
			}
			payload, ok := body.(map[string]any)
			if !ok {
				t.Fatalf("unexpected body type: %T", body)
			}
			if payload["role"] != domain.RoleCustomer {
				t.Fatalf("expected CUSTOMER role, got %v", payload["role"])
			}
			if payload["serviceProviderId"] != 1 {
				t.Fatalf("expected fixed provider id 1, got %v", payload["serviceProviderId"])
			}
			if payload["password"] != "1234" {
				t.Fatalf("expected pin mapped to password, got %v", payload["password"])
			}
			return json.RawMessage(`{"token":"tok456","userId":9,"name":"Asha","role":"CUSTOMER","customerId":3}`), nil
		},
	}
	svc := NewAuthService(gw, 1, zerolog.Nop())

	result := svc.RegisterCustomer(context.Background(), ports.RegisterCustomerInput{
		Name:  "Asha",
		Phone: "9876543210",
		PIN:   "1234",
	})
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.User.CustomerID != "3" {
		t.Fatalf("unexpected customer id: %q", result.User.CustomerID)
	}
}
