package domain

// Cleaner is a field worker who performs washes. The backend keys cleaners by
// numeric id, unlike customers and vehicles.
type Cleaner struct {
	ID                         int    `json:"id"`
	Name                       string `json:"name"`
	Phone                      string `json:"phone"`
	Email                      string `json:"email,omitempty"`
	Address                    string `json:"address,omitempty"`
	City                       string `json:"city,omitempty"`
	State                      string `json:"state,omitempty"`
	ZipCode                    string `json:"zipCode,omitempty"`
	DateOfJoining              string `json:"dateOfJoining,omitempty"`
	EmergencyContactName       string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone      string `json:"emergencyContactPhone,omitempty"`
	Active                     bool   `json:"active"`
	AssignedSubscriptionsCount int    `json:"assignedSubscriptionsCount"`
}

// TeamMember is an office-side user managed under the admin team page.
type TeamMember struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}
