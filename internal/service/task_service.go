package service

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

type TaskService struct {
	taskRepo TaskRepository
	teamRepo TeamRepository
	userRepo UserRepository
	policy   *AccessPolicy
}

func NewTaskService(taskRepo TaskRepository, teamRepo TeamRepository, userRepo UserRepository, policy *AccessPolicy) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		policy:   policy,
	}
}

// GetAllTasks returns every task with team and assignee summaries. Admin
// access is enforced at the route level.
func (s *TaskService) GetAllTasks(ctx context.Context) ([]domain.TaskWithRefs, error) {
	tasks, err := s.taskRepo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all tasks: %w", err)
	}
	return tasks, nil
}

// GetTeamTasks checks team existence, then scopes visibility: admins see
// every task of the team, members only if they belong to it.
func (s *TaskService) GetTeamTasks(ctx context.Context, teamID string, identity domain.Identity) ([]domain.TaskWithRefs, error) {
	if _, err := s.teamRepo.GetTeamByID(ctx, teamID); err != nil {
		return nil, err
	}

	if err := s.policy.CanReadTeamTasks(ctx, teamID, identity); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.GetTasksByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask persists a task after verifying team and assignee exist.
func (s *TaskService) CreateTask(ctx context.Context, teamID, assignedTo string, task *domain.Task) (*domain.Task, error) {
	if _, err := s.teamRepo.GetTeamByID(ctx, teamID); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.UserExists(ctx, assignedTo)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignee: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("assignee: %w", my_errors.ErrUserNotFound)
	}

	task.TeamID = teamID
	task.AssignedTo = assignedTo
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}

	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask checks existence before ownership: a member may only update
// a task assigned to them, an admin may update any task. No status
// transition order is enforced.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, update domain.TaskUpdate, identity domain.Identity) (*domain.Task, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CanMutateTask(task, identity); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.UpdateTask(ctx, taskID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// RemoveTask deletes a task. Existence is checked first so a missing task
// reports not-found rather than forbidden.
func (s *TaskService) RemoveTask(ctx context.Context, taskID string, identity domain.Identity) error {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.policy.CanMutateTask(task, identity); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
