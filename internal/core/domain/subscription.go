package domain

// Subscription statuses as reported by the backend.
const (
	SubscriptionActive   = "ACTIVE"
	SubscriptionInactive = "INACTIVE"
)

// Subscription links a vehicle to a plan. The backend flattens customer,
// vehicle and cleaner details into the list view; the nested Customer and
// Vehicle pointers appear only in detail payloads.
type Subscription struct {
	ID            string    `json:"id"`
	PlanID        string    `json:"planId,omitempty"`
	PlanName      string    `json:"planName"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Status        string    `json:"status"`
	Price         float64   `json:"price"`
	Customer      *Customer `json:"customer,omitempty"`
	Vehicle       *Vehicle  `json:"vehicle,omitempty"`
	ScheduledDays []string  `json:"scheduledDays,omitempty"`
	CleanerID     int       `json:"cleanerId,omitempty"`
	CleanerName   string    `json:"cleanerName,omitempty"`
	CustomerName  string    `json:"customerName,omitempty"`
	VehicleMake   string    `json:"vehicleMake,omitempty"`
	VehicleModel  string    `json:"vehicleModel,omitempty"`
	VehiclePlate  string    `json:"vehiclePlate,omitempty"`
}

// Plan is a subscription plan offered by the service provider.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Description   string   `json:"description"`
	Features      []string `json:"features,omitempty"`
	WashesPerWeek int      `json:"washesPerWeek,omitempty"`
}
