package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// CleanerService manages the cleaner roster.
type CleanerService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewCleanerService(gateway ports.Gateway, log zerolog.Logger) *CleanerService {
	return &CleanerService{gateway: gateway, log: log}
}

func (s *CleanerService) List(ctx context.Context, query string) ([]domain.Cleaner, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}

	raw, err := s.gateway.Get(ctx, "/api/cleaners", params)
	if err != nil {
		s.log.Error().Err(err).Str("query", query).Msg("failed to fetch cleaners")
		return nil, err
	}
	return decode[[]domain.Cleaner](raw)
}

func (s *CleanerService) Get(ctx context.Context, id int) (*domain.Cleaner, error) {
	raw, err := s.gateway.Get(ctx, "/api/cleaners/"+strconv.Itoa(id), nil)
	if err != nil {
		s.log.Error().Err(err).Int("cleaner_id", id).Msg("failed to fetch cleaner")
		return nil, err
	}
	c, err := decode[domain.Cleaner](raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CleanerService) Create(ctx context.Context, in ports.UpsertCleanerInput) (*domain.Cleaner, error) {
	raw, err := s.gateway.Post(ctx, "/api/cleaners", nil, cleanerPayload(in))
	if err != nil {
		s.log.Error().Err(err).Str("phone", in.Phone).Msg("failed to create cleaner")
		return nil, err
	}
	c, err := decode[domain.Cleaner](raw)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("cleaner_id", c.ID).Msg("cleaner created")
	return &c, nil
}

func (s *CleanerService) Update(ctx context.Context, id int, in ports.UpsertCleanerInput) (*domain.Cleaner, error) {
	raw, err := s.gateway.Put(ctx, "/api/cleaners/"+strconv.Itoa(id), cleanerPayload(in))
	if err != nil {
		s.log.Error().Err(err).Int("cleaner_id", id).Msg("failed to update cleaner")
		return nil, err
	}
	c, err := decode[domain.Cleaner](raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Deactivate soft-deletes a cleaner. The backend keeps the record and only
// flips the active flag.
func (s *CleanerService) Deactivate(ctx context.Context, id int) error {
	if err := s.gateway.Delete(ctx, "/api/cleaners/"+strconv.Itoa(id)); err != nil {
		s.log.Error().Err(err).Int("cleaner_id", id).Msg("failed to deactivate cleaner")
		return err
	}
	return nil
}

func cleanerPayload(in ports.UpsertCleanerInput) map[string]any {
	return map[string]any{
		"name":              in.Name,
		"email":             in.Email,
		"phone":             in.Phone,
		"password":          in.Password,
		"serviceProviderId": in.ServiceProviderID,
		"address":           in.Address,
		"city":              in.City,
		"state":             in.State,
		"zipCode":           in.ZipCode,
	}
}

var _ ports.CleanerService = (*CleanerService)(nil)
