package repository

import (
	"context"
	"errors"
	"fmt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team *domain.Team) error {
	team.ID = uuid.NewString()

	query := `
        INSERT INTO teams (id, name, description)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, query, team.ID, team.Name, team.Description).
		Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, teamID, name, description string) (*domain.Team, error) {
	query := `
        UPDATE teams
        SET name = $1, description = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING id, name, description, created_at, updated_at
    `
	var team domain.Team
	err := r.pool.QueryRow(ctx, query, name, description, teamID).Scan(
		&team.ID, &team.Name, &team.Description, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM teams WHERE id = $1`
	var team domain.Team
	err := r.pool.QueryRow(ctx, query, teamID).Scan(
		&team.ID, &team.Name, &team.Description, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) GetAllTeams(ctx context.Context) ([]domain.TeamWithMembers, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM teams ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.TeamWithMembers
	for rows.Next() {
		var team domain.TeamWithMembers
		if err := rows.Scan(&team.ID, &team.Name, &team.Description, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	rows.Close()

	for i := range teams {
		members, err := r.GetTeamMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}

	return teams, nil
}

func (r *TeamRepository) GetTeamMembers(ctx context.Context, teamID string) ([]domain.UserRef, error) {
	query := `
        SELECT u.id, u.name, u.role
        FROM team_members tm
        JOIN users u ON u.id = tm.user_id
        WHERE tm.team_id = $1
        ORDER BY u.name
    `
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	members := []domain.UserRef{}
	for rows.Next() {
		var member domain.UserRef
		if err := rows.Scan(&member.ID, &member.Name, &member.Role); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`
	var isMember bool
	err := r.pool.QueryRow(ctx, query, teamID, userID).Scan(&isMember)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return isMember, nil
}

// AddMembers inserts all pairs in a single transaction. Existing pairs are
// skipped, keeping the operation idempotent.
func (r *TeamRepository) AddMembers(ctx context.Context, teamID string, userIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO team_members (team_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (team_id, user_id) DO NOTHING
    `
	for _, userID := range userIDs {
		if _, err := tx.Exec(ctx, query, teamID, userID); err != nil {
			return fmt.Errorf("failed to add member %s: %w", userID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit members: %w", err)
	}
	return nil
}

// RemoveMembers deletes all pairs in a single transaction.
func (r *TeamRepository) RemoveMembers(ctx context.Context, teamID string, userIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `DELETE FROM team_members WHERE team_id = $1 AND user_id = ANY($2)`
	if _, err := tx.Exec(ctx, query, teamID, userIDs); err != nil {
		return fmt.Errorf("failed to remove members: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit removal: %w", err)
	}
	return nil
}
