package ports

import (
	"context"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// Wash history filter values accepted by the customer history endpoint.
const (
	WashFilterToday    = "TODAY"
	WashFilterUpcoming = "UPCOMING"
	WashFilterPast     = "PAST"
)

// MyWashesInput pages through the logged-in customer's wash history.
// Page is 0-indexed, mirroring the backend's Spring paging.
type MyWashesInput struct {
	FilterType string
	Page       int
	Size       int
}

// UpdateWashStatusInput moves a wash through its lifecycle from the cleaner
// app. Status must be one of IN_PROGRESS, COMPLETED or VEHICLE_NOT_AVAILABLE.
type UpdateWashStatusInput struct {
	Status string
	Notes  string
}

// WashService covers all three role-specific wash surfaces: the admin "today"
// list, the cleaner's assignments and attendance, and the customer's history.
type WashService interface {
	// Today lists today's scheduled washes for the admin dashboard.
	Today(ctx context.Context) ([]domain.WashRecord, error)
	// Assigned lists washes assigned to the logged-in cleaner.
	Assigned(ctx context.Context) ([]domain.WashAssignment, error)
	// CleanerHistory lists past washes for the logged-in cleaner.
	CleanerHistory(ctx context.Context) ([]domain.WashAssignment, error)
	UpdateStatus(ctx context.Context, washID int, in UpdateWashStatusInput) (*domain.WashAssignment, error)
	// MyWashes pages the logged-in customer's wash history.
	MyWashes(ctx context.Context, in MyWashesInput) (*domain.Page[domain.WashRecord], error)

	// Attendance for the logged-in cleaner.
	ClockInStatus(ctx context.Context) (bool, error)
	ClockIn(ctx context.Context, latitude, longitude float64) error
	ClockOut(ctx context.Context, latitude, longitude float64) error
}
