package service

import (
	"context"
	"fmt"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindUserIDs(_ context.Context, userIDs []string) ([]string, error) {
	var found []string
	for _, id := range userIDs {
		if _, ok := r.users[id]; ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (r *fakeUserRepo) UserExists(_ context.Context, userID string) (bool, error) {
	_, ok := r.users[userID]
	return ok, nil
}

type fakeTeamRepo struct {
	teams         map[string]*domain.Team
	members       map[string]map[string]bool
	removeCalls   int
	removedInLast []string
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:   map[string]*domain.Team{},
		members: map[string]map[string]bool{},
	}
}

func (r *fakeTeamRepo) CreateTeam(_ context.Context, team *domain.Team) error {
	team.ID = uuid.NewString()
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt
	copied := *team
	r.teams[team.ID] = &copied
	r.members[team.ID] = map[string]bool{}
	return nil
}

func (r *fakeTeamRepo) UpdateTeam(_ context.Context, teamID, name, description string) (*domain.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}
	team.Name = name
	team.Description = description
	team.UpdatedAt = time.Now()
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) GetTeamByID(_ context.Context, teamID string) (*domain.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) GetAllTeams(_ context.Context) ([]domain.TeamWithMembers, error) {
	var teams []domain.TeamWithMembers
	for _, team := range r.teams {
		teams = append(teams, domain.TeamWithMembers{Team: *team})
	}
	return teams, nil
}

func (r *fakeTeamRepo) GetTeamMembers(_ context.Context, teamID string) ([]domain.UserRef, error) {
	refs := []domain.UserRef{}
	for userID := range r.members[teamID] {
		refs = append(refs, domain.UserRef{ID: userID})
	}
	return refs, nil
}

func (r *fakeTeamRepo) IsMember(_ context.Context, teamID, userID string) (bool, error) {
	return r.members[teamID][userID], nil
}

func (r *fakeTeamRepo) AddMembers(_ context.Context, teamID string, userIDs []string) error {
	for _, id := range userIDs {
		r.members[teamID][id] = true
	}
	return nil
}

func (r *fakeTeamRepo) RemoveMembers(_ context.Context, teamID string, userIDs []string) error {
	r.removeCalls++
	r.removedInLast = userIDs
	for _, id := range userIDs {
		delete(r.members[teamID], id)
	}
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*domain.Task{}}
}

func (r *fakeTaskRepo) CreateTask(_ context.Context, task *domain.Task) error {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetTaskByID(_ context.Context, taskID string) (*domain.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("%w", my_errors.ErrTaskNotFound)
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) UpdateTask(_ context.Context, taskID string, update domain.TaskUpdate) (*domain.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("%w", my_errors.ErrTaskNotFound)
	}
	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	task.UpdatedAt = time.Now()
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) DeleteTask(_ context.Context, taskID string) error {
	if _, ok := r.tasks[taskID]; !ok {
		return fmt.Errorf("%w", my_errors.ErrTaskNotFound)
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *fakeTaskRepo) GetAllTasks(_ context.Context) ([]domain.TaskWithRefs, error) {
	return r.refs(func(*domain.Task) bool { return true }), nil
}

func (r *fakeTaskRepo) GetTasksByTeam(_ context.Context, teamID string) ([]domain.TaskWithRefs, error) {
	return r.refs(func(task *domain.Task) bool { return task.TeamID == teamID }), nil
}

func (r *fakeTaskRepo) refs(keep func(*domain.Task) bool) []domain.TaskWithRefs {
	tasks := []domain.TaskWithRefs{}
	for _, task := range r.tasks {
		if !keep(task) {
			continue
		}
		tasks = append(tasks, domain.TaskWithRefs{
			ID:          task.ID,
			Title:       task.Title,
			Description: task.Description,
			Status:      task.Status,
			Priority:    task.Priority,
			Team:        domain.TeamRef{ID: task.TeamID},
			AssignedTo:  domain.UserRef{ID: task.AssignedTo},
			CreatedAt:   task.CreatedAt,
			UpdatedAt:   task.UpdatedAt,
		})
	}
	return tasks
}
