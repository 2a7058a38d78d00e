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

func TestSubscriptionService_Add(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			if path != "/api/vehicles/v1/subscriptions" {
				t.Fatalf("unexpected path: %s", path)
			}
			payload := body.(map[string]any)
			if payload["planId"] != "p1" || payload["startDate"] != "2026-09-01" {
				t.Fatalf("unexpected payload: %v", payload)
			}
			days, ok := payload["scheduledDays"].([]string)
			if !ok || len(days) != 2 {
				t.Fatalf("unexpected days: %v", payload["scheduledDays"])
			}
			return json.RawMessage(`{"id":"s1","planName":"Gold","status":"ACTIVE"}`), nil
		},
	}
	svc := NewSubscriptionService(gw, zerolog.Nop())

	sub, err := svc.Add(context.Background(), "v1", ports.AddSubscriptionInput{
		PlanID:        "p1",
		StartDate:     "2026-09-01",
		ScheduledDays: []string{"MONDAY", "THURSDAY"},
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sub.ID != "s1" || sub.Status != domain.SubscriptionActive {
		t.Fatalf("unexpected subscription: %+v", sub)
	}
}

func TestSubscriptionService_Add_OmitsEmptySchedule(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			payload := body.(map[string]any)
			if _, ok := payload["scheduledDays"]; ok {
				t.Fatalf("empty schedule must not be sent")
			}
			return json.RawMessage(`{"id":"s1","status":"ACTIVE"}`), nil
		},
	}
	svc := NewSubscriptionService(gw, zerolog.Nop())

	if _, err := svc.Add(context.Background(), "v1", ports.AddSubscriptionInput{PlanID: "p1"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
}

func TestSubscriptionService_Add_PropagatesFailure(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			return nil, &domain.APIError{Status: 200, MessageCodes: []string{"SUBSCRIPTION_EXISTS"}}
		},
	}
	svc := NewSubscriptionService(gw, zerolog.Nop())

	_, err := svc.Add(context.Background(), "v1", ports.AddSubscriptionInput{PlanID: "p1"})
	if err == nil || err.Error() != "SUBSCRIPTION_EXISTS" {
		t.Fatalf("expected backend code, got %v", err)
	}
}

func TestSubscriptionService_AssignCleaner(t *testing.T) {
	gw := &stubGateway{
		postFn: func(ctx context.Context, path string, query url.Values, body any) (json.RawMessage, error) {
			if path != "/api/subscriptions/5/assign-cleaner" {
				t.Fatalf("unexpected path: %s", path)
			}
			// The cleaner travels as a query parameter with no body.
			if query.Get("cleanerId") != "9" {
				t.Fatalf("unexpected query: %v", query)
			}
			if body != nil {
				t.Fatalf("expected empty body, got %v", body)
			}
			return nil, nil
		},
	}
	svc := NewSubscriptionService(gw, zerolog.Nop())

	if err := svc.AssignCleaner(context.Background(), 5, 9); err != nil {
		t.Fatalf("AssignCleaner: %v", err)
	}
}

func TestSubscriptionService_Plans(t *testing.T) {
	gw := &stubGateway{
		getFn: func(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
			if path != "/api/plans" {
				t.Fatalf("unexpected path: %s", path)
			}
			return json.RawMessage(`[{"id":"p1","name":"Gold","price":999},{"id":"p2","name":"Silver","price":499}]`), nil
		},
	}
	svc := NewSubscriptionService(gw, zerolog.Nop())

	plans, err := svc.Plans(context.Background())
	if err != nil {
		t.Fatalf("Plans: %v", err)
	}
	if len(plans) != 2 || plans[0].Name != "Gold" {
		t.Fatalf("unexpected plans: %+v", plans)
	}
}
