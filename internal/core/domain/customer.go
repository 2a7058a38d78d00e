package domain

// Customer is the admin-facing view of a customer. Detail fetches include the
// customer's vehicles; list fetches usually carry only a vehicle count.
// Entities are value snapshots owned by the view that fetched them; nothing is
// cached beyond that view's lifetime.
type Customer struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Mobile            string    `json:"mobile"`
	Role              Role      `json:"role,omitempty"`
	Email             string    `json:"email,omitempty"`
	Address           string    `json:"address,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	ZipCode           string    `json:"zipCode,omitempty"`
	ServiceProviderID int       `json:"serviceProviderId,omitempty"`
	VehicleCount      int       `json:"vehicleCount,omitempty"`
	Vehicles          []Vehicle `json:"vehicles,omitempty"`
}

// Payment is a single customer payment record.
type Payment struct {
	ID            string  `json:"id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	PaymentDate   string  `json:"paymentDate"`
	TransactionID string  `json:"transactionId"`
	Notes         string  `json:"notes,omitempty"`
}

// WashHistoryEntry is a flattened wash record as shown on the customer
// history tab of the admin customer detail page.
type WashHistoryEntry struct {
	ID            string `json:"id"`
	VehicleInfo   string `json:"vehicleInfo"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduledDate"`
	CompletedDate string `json:"completedDate,omitempty"`
	CleanerName   string `json:"cleanerName"`
	Rating        int    `json:"rating,omitempty"`
}
