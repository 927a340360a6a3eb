package service

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

type TeamService struct {
	teamRepo TeamRepository
	userRepo UserRepository
}

func NewTeamService(teamRepo TeamRepository, userRepo UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, name, description string) (*domain.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}

	team := &domain.Team{
		Name:        name,
		Description: description,
	}

	if err := s.teamRepo.CreateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID, name, description string) (*domain.Team, error) {
	if _, err := s.findTeam(ctx, teamID); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.UpdateTeam(ctx, teamID, name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return team, nil
}

func (s *TeamService) GetAllTeams(ctx context.Context) ([]domain.TeamWithMembers, error) {
	teams, err := s.teamRepo.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeamMembers(ctx context.Context, teamID string) ([]domain.UserRef, error) {
	if _, err := s.findTeam(ctx, teamID); err != nil {
		return nil, err
	}

	members, err := s.teamRepo.GetTeamMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return members, nil
}

// AddMembers adds the given users to the team. Pairs that already exist
// are skipped.
func (s *TeamService) AddMembers(ctx context.Context, teamID string, userIDs []string) error {
	if _, err := s.findTeam(ctx, teamID); err != nil {
		return err
	}

	if err := s.teamRepo.AddMembers(ctx, teamID, userIDs); err != nil {
		return fmt.Errorf("failed to add members: %w", err)
	}
	return nil
}

// RemoveMembers validates that every requested user exists before any
// deletion happens. One missing id fails the whole operation.
func (s *TeamService) RemoveMembers(ctx context.Context, teamID string, userIDs []string) error {
	if _, err := s.findTeam(ctx, teamID); err != nil {
		return err
	}

	found, err := s.userRepo.FindUserIDs(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("failed to look up users: %w", err)
	}

	foundSet := make(map[string]bool, len(found))
	for _, id := range found {
		foundSet[id] = true
	}

	var missing []string
	for _, id := range userIDs {
		if !foundSet[id] {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return &my_errors.MissingUsersError{UserIDs: missing}
	}

	if err := s.teamRepo.RemoveMembers(ctx, teamID, userIDs); err != nil {
		return fmt.Errorf("failed to remove members: %w", err)
	}
	return nil
}

func (s *TeamService) findTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return team, nil
}
