package domain

// Wash lifecycle statuses. A cleaner may only move a wash to IN_PROGRESS,
// COMPLETED or VEHICLE_NOT_AVAILABLE; the rest are backend-driven.
const (
	WashScheduled           = "SCHEDULED"
	WashAssigned            = "ASSIGNED"
	WashInProgress          = "IN_PROGRESS"
	WashCompleted           = "COMPLETED"
	WashVehicleNotAvailable = "VEHICLE_NOT_AVAILABLE"
	WashSkipped             = "SKIPPED"
	WashMissed              = "MISSED"
	WashVerified            = "VERIFIED"
)

// WashRecord is the rich wash view used by the admin "today" list and the
// customer history page.
type WashRecord struct {
	ID                int               `json:"id"`
	Vehicle           WashVehicleRef    `json:"vehicle"`
	Customer          WashCustomerRef   `json:"customer"`
	Cleaner           *WashCleanerRef   `json:"cleaner,omitempty"`
	Subscription      *WashSubscription `json:"subscription,omitempty"`
	Status            string            `json:"status"`
	ScheduledDateTime string            `json:"scheduledDateTime"`
	StartedAt         string            `json:"startedAt,omitempty"`
	CompletedAt       string            `json:"completedAt,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Rating            int               `json:"rating,omitempty"`
	Review            string            `json:"review,omitempty"`
}

type WashVehicleRef struct {
	ID                 int    `json:"id"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registrationNumber"`
}

type WashCustomerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type WashCleanerRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type WashSubscription struct {
	ID       int    `json:"id"`
	PlanName string `json:"planName"`
}

// WashAssignment is the cleaner-facing wash view: the same record flattened
// with the customer, vehicle and plan details a cleaner needs in the field.
type WashAssignment struct {
	ID                int      `json:"id"`
	SubscriptionID    int      `json:"subscriptionId"`
	ScheduledDateTime string   `json:"scheduledDateTime"`
	Status            string   `json:"status"`
	StartedAt         string   `json:"startedAt,omitempty"`
	CompletedAt       string   `json:"completedAt,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	CustomerName      string   `json:"customerName,omitempty"`
	CustomerAddress   string   `json:"customerAddress,omitempty"`
	CustomerPhone     string   `json:"customerPhone,omitempty"`
	VehicleMake       string   `json:"vehicleMake,omitempty"`
	VehicleModel      string   `json:"vehicleModel,omitempty"`
	VehiclePlate      string   `json:"vehiclePlate,omitempty"`
	PlanName          string   `json:"planName,omitempty"`
	BeforePhotos      []string `json:"beforePhotos,omitempty"`
	AfterPhotos       []string `json:"afterPhotos,omitempty"`
}
