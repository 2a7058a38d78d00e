package ports

import (
	"context"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// LoginInput carries the credential pair entered on the login form. The
// backend speaks a generic username/password contract; the auth service maps
// mobile→username and pin→password on the wire.
type LoginInput struct {
	Mobile string
	PIN    string
}

// RegisterCustomerInput carries the self-registration form fields. Role and
// service provider id are fixed by the service, not by the caller.
type RegisterCustomerInput struct {
	Name    string
	Email   string
	PIN     string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
}

// LoginResult is a discriminated success/error result. Login and registration
// are the only calls that do not surface failures as returned errors: the
// login form renders Error inline instead of propagating.
type LoginResult struct {
	Success bool
	User    *domain.User
	Token   string
	Error   string
}

// AuthService signs users in and registers new customers.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) LoginResult
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) LoginResult
}
