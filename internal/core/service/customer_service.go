package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// CustomerService reads and creates customers for the admin area.
type CustomerService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewCustomerService(gateway ports.Gateway, log zerolog.Logger) *CustomerService {
	return &CustomerService{gateway: gateway, log: log}
}

func (s *CustomerService) List(ctx context.Context, query string) ([]domain.Customer, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}

	raw, err := s.gateway.Get(ctx, "/api/customers", params)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("failed to fetch customers")
		return nil, err
	}
	return decode[[]domain.Customer](raw)
}

// Get returns a single customer including vehicles and their subscriptions.
func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	raw, err := s.gateway.Get(ctx, "/api/customers/"+id, nil)
	if err != nil {
		s.log.Error().Err(err).Str("customer_id", id).Msg("failed to fetch customer")
		return nil, err
	}
	c, err := decode[domain.Customer](raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CustomerService) Payments(ctx context.Context, id string) ([]domain.Payment, error) {
	raw, err := s.gateway.Get(ctx, "/api/customers/"+id+"/payments", nil)
	if err != nil {
		s.log.Error().Err(err).Str("customer_id", id).Msg("failed to fetch payments")
		return nil, err
	}
	return decode[[]domain.Payment](raw)
}

func (s *CustomerService) History(ctx context.Context, id string) ([]domain.WashHistoryEntry, error) {
	raw, err := s.gateway.Get(ctx, "/api/customers/"+id+"/history", nil)
	if err != nil {
		s.log.Error().Err(err).Str("customer_id", id).Msg("failed to fetch wash history")
		return nil, err
	}
	return decode[[]domain.WashHistoryEntry](raw)
}

// Create registers a customer through the admin endpoint. The backend answers
// with an auth payload rather than a customer document, so the created
// customer is assembled from the request plus the ids the backend assigned.
func (s *CustomerService) Create(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	payload := map[string]any{
		"name":     in.Name,
		"mobile":   in.Mobile,
		"phone":    in.Mobile,
		"email":    in.Email,
		"password": in.PIN,
		"address":  in.Address,
		"city":     in.City,
		"state":    in.State,
		"zipCode":  in.ZipCode,
		"role":     domain.RoleCustomer,
	}

	raw, err := s.gateway.Post(ctx, "/api/customers", nil, payload)
	if err != nil {
		s.log.Error().Err(err).Str("mobile", in.Mobile).Msg("failed to create customer")
		return nil, err
	}

	body, err := decode[authResponse](raw)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:                strconv.FormatInt(body.CustomerID, 10),
		Name:              in.Name,
		Mobile:            in.Mobile,
		Email:             in.Email,
		Address:           in.Address,
		City:              in.City,
		State:             in.State,
		ZipCode:           in.ZipCode,
		Role:              domain.RoleCustomer,
		ServiceProviderID: body.ServiceProviderID,
	}
	s.log.Info().Str("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

var _ ports.CustomerService = (*CustomerService)(nil)
