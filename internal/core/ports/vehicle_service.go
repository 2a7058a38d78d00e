package ports

import (
	"context"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// AddVehicleInput is the "add vehicle" form. LicensePlate maps to the
// backend's registrationNumber field.
type AddVehicleInput struct {
	Make         string
	Model        string
	Year         int
	Color        string
	LicensePlate string
	Type         string
}

// VehicleService manages vehicles for both the admin area (per customer) and
// the customer's own garage.
type VehicleService interface {
	Add(ctx context.Context, customerID string, in AddVehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, vehicleID string) error
	// Mine lists the vehicles belonging to the logged-in customer.
	Mine(ctx context.Context) ([]domain.Vehicle, error)
}
