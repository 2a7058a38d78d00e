package ports

import (
	"context"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// CreateCustomerInput is the admin "create customer" form. The PIN doubles as
// the customer's login password.
type CreateCustomerInput struct {
	Name    string
	Mobile  string
	Email   string
	PIN     string
	Address string
	City    string
	State   string
	ZipCode string
}

// CustomerService reads and creates customers on behalf of the admin area.
type CustomerService interface {
	// List returns customers, optionally filtered by a free-text query
	// matching name or mobile. An empty query returns everyone.
	List(ctx context.Context, query string) ([]domain.Customer, error)
	// Get returns a single customer including vehicles and subscriptions.
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Payments(ctx context.Context, id string) ([]domain.Payment, error)
	History(ctx context.Context, id string) ([]domain.WashHistoryEntry, error)
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
}
