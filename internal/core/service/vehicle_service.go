package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// VehicleService manages vehicles for the admin area and the customer garage.
type VehicleService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewVehicleService(gateway ports.Gateway, log zerolog.Logger) *VehicleService {
	return &VehicleService{gateway: gateway, log: log}
}

// Add attaches a vehicle to a customer. The form speaks licensePlate; the
// backend wants registrationNumber and a non-empty parkingLocation.
func (s *VehicleService) Add(ctx context.Context, customerID string, in ports.AddVehicleInput) (*domain.Vehicle, error) {
	cid, err := strconv.Atoi(customerID)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"registrationNumber":  in.LicensePlate,
		"model":               in.Model,
		"make":                in.Make,
		"color":               in.Color,
		"year":                in.Year,
		"customerId":          cid,
		"parkingLocation":     "Default",
		"specialInstructions": "",
		"type":                in.Type,
	}

	raw, err := s.gateway.Post(ctx, "/api/vehicles", nil, payload)
	if err != nil {
		s.log.Error().Err(err).Str("customer_id", customerID).Msg("failed to add vehicle")
		return nil, err
	}

	v, err := decode[domain.Vehicle](raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VehicleService) Delete(ctx context.Context, vehicleID string) error {
	if err := s.gateway.Delete(ctx, "/api/vehicles/"+vehicleID); err != nil {
		s.log.Error().Err(err).Str("vehicle_id", vehicleID).Msg("failed to delete vehicle")
		return err
	}
	return nil
}

// Mine lists the logged-in customer's own vehicles.
func (s *VehicleService) Mine(ctx context.Context) ([]domain.Vehicle, error) {
	raw, err := s.gateway.Get(ctx, "/api/customer/vehicles", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch own vehicles")
		return nil, err
	}
	return decode[[]domain.Vehicle](raw)
}

var _ ports.VehicleService = (*VehicleService)(nil)
