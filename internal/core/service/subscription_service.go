package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// SubscriptionService manages plans and vehicle subscriptions.
type SubscriptionService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewSubscriptionService(gateway ports.Gateway, log zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{gateway: gateway, log: log}
}

func (s *SubscriptionService) Plans(ctx context.Context) ([]domain.Plan, error) {
	raw, err := s.gateway.Get(ctx, "/api/plans", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch plans")
		return nil, err
	}
	return decode[[]domain.Plan](raw)
}

func (s *SubscriptionService) CreatePlan(ctx context.Context, in ports.CreatePlanInput) (*domain.Plan, error) {
	payload := map[string]any{
		"name":          in.Name,
		"description":   in.Description,
		"price":         in.Price,
		"durationDays":  in.DurationDays,
		"washesPerWeek": in.WashesPerWeek,
		"active":        in.Active,
	}

	raw, err := s.gateway.Post(ctx, "/api/plans", nil, payload)
	if err != nil {
		s.log.Error().Err(err).Str("plan", in.Name).Msg("failed to create plan")
		return nil, err
	}

	p, err := decode[domain.Plan](raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SubscriptionService) List(ctx context.Context) ([]domain.Subscription, error) {
	raw, err := s.gateway.Get(ctx, "/api/subscriptions", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch subscriptions")
		return nil, err
	}
	return decode[[]domain.Subscription](raw)
}

// Add subscribes a vehicle to a plan. A single atomic backend call: there is
// no partial commit for the wizard to roll back.
func (s *SubscriptionService) Add(ctx context.Context, vehicleID string, in ports.AddSubscriptionInput) (*domain.Subscription, error) {
	payload := map[string]any{
		"vehicleId": vehicleID,
		"planId":    in.PlanID,
		"startDate": in.StartDate,
	}
	if len(in.ScheduledDays) > 0 {
		payload["scheduledDays"] = in.ScheduledDays
	}

	raw, err := s.gateway.Post(ctx, "/api/vehicles/"+vehicleID+"/subscriptions", nil, payload)
	if err != nil {
		s.log.Error().Err(err).Str("vehicle_id", vehicleID).Str("plan_id", in.PlanID).Msg("failed to add subscription")
		return nil, err
	}

	sub, err := decode[domain.Subscription](raw)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("subscription_id", sub.ID).Str("vehicle_id", vehicleID).Msg("subscription created")
	return &sub, nil
}

// AssignCleaner attaches a cleaner to a subscription. The backend takes the
// cleaner as a query parameter with an empty body.
func (s *SubscriptionService) AssignCleaner(ctx context.Context, subscriptionID, cleanerID int) error {
	params := url.Values{}
	params.Set("cleanerId", strconv.Itoa(cleanerID))

	path := "/api/subscriptions/" + strconv.Itoa(subscriptionID) + "/assign-cleaner"
	if _, err := s.gateway.Post(ctx, path, params, nil); err != nil {
		s.log.Error().Err(err).Int("subscription_id", subscriptionID).Int("cleaner_id", cleanerID).Msg("failed to assign cleaner")
		return err
	}
	return nil
}

var _ ports.SubscriptionService = (*SubscriptionService)(nil)
