package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// AuthService signs users in against the backend's generic username/password
// contract and registers new customers.
type AuthService struct {
	gateway           ports.Gateway
	serviceProviderID int
	log               zerolog.Logger
}

func NewAuthService(gateway ports.Gateway, serviceProviderID int, log zerolog.Logger) *AuthService {
	return &AuthService{gateway: gateway, serviceProviderID: serviceProviderID, log: log}
}

// authResponse is the wire shape of a successful login or registration.
type authResponse struct {
	Token             string `json:"token"`
	Type              string `json:"type"` // always "Bearer"
	UserID            int64  `json:"userId"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	ServiceProviderID int    `json:"serviceProviderId,omitempty"`
	CustomerID        int64  `json:"customerId,omitempty"`
	CleanerID         int64  `json:"cleanerId,omitempty"`
}

// Login authenticates a mobile/pin pair. The backend only understands
// username/password, so the credential pair is remapped on the wire. That is
// the one semantic translation this layer performs.
//
// Failures are returned as a discriminated result, never as an error: the
// login page shows the message inline.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) ports.LoginResult {
	payload := map[string]string{
		"username": in.Mobile,
		"password": in.PIN,
	}

	raw, err := s.gateway.Post(ctx, "/api/auth/login", nil, payload)
	if err != nil {
		s.log.Error().Err(err).Str("mobile", in.Mobile).Msg("login failed")
		return ports.LoginResult{Error: loginErrorMessage(err)}
	}

	body, err := decode[authResponse](raw)
	if err != nil {
		s.log.Error().Err(err).Msg("login response undecodable")
		return ports.LoginResult{Error: "Unexpected response"}
	}

	return ports.LoginResult{
		Success: true,
		User:    body.toUser(in.Mobile),
		Token:   body.Token,
	}
}

// RegisterCustomer creates a customer account. Role and service provider id
// are fixed: self-registration always produces a CUSTOMER under this
// deployment's provider.
func (s *AuthService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) ports.LoginResult {
	payload := map[string]any{
		"name":              in.Name,
		"email":             in.Email,
		"password":          in.PIN,
		"phone":             in.Phone,
		"address":           in.Address,
		"city":              in.City,
		"state":             in.State,
		"zipCode":           in.ZipCode,
		"role":              domain.RoleCustomer,
		"serviceProviderId": s.serviceProviderID,
	}

	raw, err := s.gateway.Post(ctx, "/api/auth/register/customer", nil, payload)
	if err != nil {
		s.log.Error().Err(err).Str("phone", in.Phone).Msg("registration failed")
		return ports.LoginResult{Error: loginErrorMessage(err)}
	}

	body, err := decode[authResponse](raw)
	if err != nil {
		s.log.Error().Err(err).Msg("registration response undecodable")
		return ports.LoginResult{Error: "Unexpected response"}
	}

	return ports.LoginResult{
		Success: true,
		User:    body.toUser(in.Phone),
		Token:   body.Token,
	}
}

func (a authResponse) toUser(mobile string) *domain.User {
	u := &domain.User{
		ID:                strconv.FormatInt(a.UserID, 10),
		Name:              a.Name,
		Mobile:            mobile,
		Role:              domain.Role(a.Role),
		ServiceProviderID: a.ServiceProviderID,
	}
	if a.CustomerID != 0 {
		u.CustomerID = strconv.FormatInt(a.CustomerID, 10)
	}
	return u
}

// loginErrorMessage prefers the backend's first message code, falling back to
// a generic connectivity message.
func loginErrorMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if errors.Is(err, domain.ErrBackendUnreachable) {
		return "Unable to connect to server."
	}
	return err.Error()
}

var _ ports.AuthService = (*AuthService)(nil)
