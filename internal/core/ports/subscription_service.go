package ports

import (
	"context"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// AddSubscriptionInput subscribes a vehicle to a plan. ScheduledDays holds
// upper-case weekday names ("MONDAY", "WEDNESDAY"); empty means the backend
// picks the schedule.
type AddSubscriptionInput struct {
	PlanID        string
	StartDate     string
	ScheduledDays []string
}

// CreatePlanInput is the admin "create plan" form.
type CreatePlanInput struct {
	Name          string
	Description   string
	Price         float64
	DurationDays  int
	WashesPerWeek int
	Active        bool
}

// SubscriptionService manages plans and vehicle subscriptions.
type SubscriptionService interface {
	Plans(ctx context.Context) ([]domain.Plan, error)
	CreatePlan(ctx context.Context, in CreatePlanInput) (*domain.Plan, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Add(ctx context.Context, vehicleID string, in AddSubscriptionInput) (*domain.Subscription, error)
	AssignCleaner(ctx context.Context, subscriptionID, cleanerID int) error
}
