package service

import (
	"context"

	"task-manager-service/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserIDs(ctx context.Context, userIDs []string) ([]string, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}

type TeamRepository interface {
	CreateTeam(ctx context.Context, team *domain.Team) error
	UpdateTeam(ctx context.Context, teamID, name, description string) (*domain.Team, error)
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
	GetAllTeams(ctx context.Context) ([]domain.TeamWithMembers, error)
	GetTeamMembers(ctx context.Context, teamID string) ([]domain.UserRef, error)
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
	AddMembers(ctx context.Context, teamID string, userIDs []string) error
	RemoveMembers(ctx context.Context, teamID string, userIDs []string) error
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *domain.Task) error
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, update domain.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	GetAllTasks(ctx context.Context) ([]domain.TaskWithRefs, error)
	GetTasksByTeam(ctx context.Context, teamID string) ([]domain.TaskWithRefs, error)
}

// MembershipRepository is the slice of TeamRepository the access policy
// needs for membership decisions.
type MembershipRepository interface {
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
}
