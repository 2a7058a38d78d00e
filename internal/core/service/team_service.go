package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// TeamService manages office-side team members under the admin area.
type TeamService struct {
	gateway ports.Gateway
	log     zerolog.Logger
}

func NewTeamService(gateway ports.Gateway, log zerolog.Logger) *TeamService {
	return &TeamService{gateway: gateway, log: log}
}

func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	raw, err := s.gateway.Get(ctx, "/api/admin/team", nil)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch team members")
		return nil, err
	}
	return decode[[]domain.TeamMember](raw)
}

func (s *TeamService) Add(ctx context.Context, in ports.CreateTeamMemberInput) (*domain.TeamMember, error) {
	payload := map[string]any{
		"name":     in.Name,
		"email":    in.Email,
		"phone":    in.Phone,
		"password": in.Password,
	}

	raw, err := s.gateway.Post(ctx, "/api/admin/team", nil, payload)
	if err != nil {
		s.log.Error().Err(err).Str("phone", in.Phone).Msg("failed to add team member")
		return nil, err
	}

	m, err := decode[domain.TeamMember](raw)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("user_id", m.ID).Msg("team member added")
	return &m, nil
}

// Remove deactivates a team member.
func (s *TeamService) Remove(ctx context.Context, userID int) error {
	if err := s.gateway.Delete(ctx, "/api/admin/team/"+strconv.Itoa(userID)); err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("failed to remove team member")
		return err
	}
	return nil
}

var _ ports.TeamService = (*TeamService)(nil)
