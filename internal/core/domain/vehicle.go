package domain

// Vehicle is a customer-owned car. Subscriptions are populated only on
// customer detail fetches.
type Vehicle struct {
	ID            string         `json:"id"`
	Make          string         `json:"make"`
	Model         string         `json:"model"`
	Year          int            `json:"year"`
	Color         string         `json:"color"`
	LicensePlate  string         `json:"licensePlate"`
	CustomerID    string         `json:"customerId"`
	Subscriptions []Subscription `json:"subscriptions,omitempty"`
}
