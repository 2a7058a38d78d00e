package ports

import (
	"context"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// UpsertCleanerInput covers both cleaner creation and update.
type UpsertCleanerInput struct {
	Name              string
	Email             string
	Phone             string
	Password          string
	ServiceProviderID int
	Address           string
	City              string
	State             string
	ZipCode           string
}

// CleanerService manages the cleaner roster.
type CleanerService interface {
	List(ctx context.Context, query string) ([]domain.Cleaner, error)
	Get(ctx context.Context, id int) (*domain.Cleaner, error)
	Create(ctx context.Context, in UpsertCleanerInput) (*domain.Cleaner, error)
	Update(ctx context.Context, id int, in UpsertCleanerInput) (*domain.Cleaner, error)
	// Deactivate soft-deletes a cleaner; the backend keeps the record.
	Deactivate(ctx context.Context, id int) error
}

// CreateTeamMemberInput is the "add team member" form.
type CreateTeamMemberInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// TeamService manages office-side team members.
type TeamService interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Add(ctx context.Context, in CreateTeamMemberInput) (*domain.TeamMember, error)
	Remove(ctx context.Context, userID int) error
}
