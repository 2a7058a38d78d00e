package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// WashService covers the admin "today" list, the cleaner's assignments and
// attendance, and the customer's wash history.
type WashService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewWashService(gateway ports.Gateway, log zerolog.Logger) *WashService {
	return &WashService{gateway: gateway, log: log}
}

func (s *WashService) Today(ctx context.Context) ([]domain.WashRecord, error) {
	raw, err := s.gateway.Get(ctx, "/api/admin/washes/today", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch today's washes")
		return nil, err
	}
	return decode[[]domain.WashRecord](raw)
}

func (s *WashService) Assigned(ctx context.Context) ([]domain.WashAssignment, error) {
	raw, err := s.gateway.Get(ctx, "/api/cleaner/washes/assigned", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch assigned washes")
		return nil, err
	}
	return decode[[]domain.WashAssignment](raw)
}

func (s *WashService) CleanerHistory(ctx context.Context) ([]domain.WashAssignment, error) {
	raw, err := s.gateway.Get(ctx, "/api/cleaner/washes/history", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch cleaner wash history")
		return nil, err
	}
	return decode[[]domain.WashAssignment](raw)
}

func (s *WashService) UpdateStatus(ctx context.Context, washID int, in ports.UpdateWashStatusInput) (*domain.WashAssignment, error) {
	payload := map[string]any{
		"status": in.Status,
	}
	if in.Notes != "" {
		payload["notes"] = in.Notes
	}

	raw, err := s.gateway.Put(ctx, "/api/cleaner/washes/"+strconv.Itoa(washID)+"/status", payload)
	if err != nil {
		s.log.Error().Err(err).Int("wash_id", washID).Str("status", in.Status).Msg("failed to update wash status")
		return nil, err
	}

	w, err := decode[domain.WashAssignment](raw)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("wash_id", washID).Str("status", in.Status).Msg("wash status updated")
	return &w, nil
}

// MyWashes pages the logged-in customer's wash history. Page is 0-indexed.
func (s *WashService) MyWashes(ctx context.Context, in ports.MyWashesInput) (*domain.Page[domain.WashRecord], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(in.Page))
	size := in.Size
	if size <= 0 {
		size = 10
	}
	params.Set("size", strconv.Itoa(size))
	if in.FilterType != "" {
		params.Set("filterType", in.FilterType)
	}

	raw, err := s.gateway.Get(ctx, "/api/customer/washes/history", params)
	if err != nil {
		s.log.Error().Err(err).Str("filter", in.FilterType).Msg("failed to fetch wash history")
		return nil, err
	}

	page, err := decode[domain.Page[domain.WashRecord]](raw)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *WashService) ClockInStatus(ctx context.Context) (bool, error) {
	raw, err := s.gateway.Get(ctx, "/api/cleaner/attendance/status", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch clock-in status")
		return false, err
	}
	return decode[bool](raw)
}

func (s *WashService) ClockIn(ctx context.Context, latitude, longitude float64) error {
	payload := map[string]float64{"latitude": latitude, "longitude": longitude}
	if _, err := s.gateway.Post(ctx, "/api/cleaner/attendance/clock-in", nil, payload); err != nil {
		s.log.Error().Err(err).Msg("clock-in failed")
		return err
	}
	return nil
}

func (s *WashService) ClockOut(ctx context.Context, latitude, longitude float64) error {
	payload := map[string]float64{"latitude": latitude, "longitude": longitude}
	if _, err := s.gateway.Post(ctx, "/api/cleaner/attendance/clock-out", nil, payload); err != nil {
		s.log.Error().Err(err).Msg("clock-out failed")
		return err
	}
	return nil
}

var _ ports.WashService = (*WashService)(nil)
