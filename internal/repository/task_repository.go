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

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	task.ID = uuid.NewString()

	query := `
        INSERT INTO tasks (id, title, description, status, priority, assigned_to, team_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.Priority, task.AssignedTo, task.TeamID,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `
        SELECT id, title, COALESCE(description, ''), status, priority, assigned_to, team_id, created_at, updated_at
        FROM tasks
        WHERE id = $1
    `
	var task domain.Task
	err := r.pool.QueryRow(ctx, query, taskID).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.AssignedTo,
		&task.TeamID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies only the non-nil fields of the update.
func (r *TaskRepository) UpdateTask(ctx context.Context, taskID string, update domain.TaskUpdate) (*domain.Task, error) {
	query := `
        UPDATE tasks
        SET title       = COALESCE($1, title),
            description = COALESCE($2, description),
            status      = COALESCE($3, status),
            priority    = COALESCE($4, priority),
            updated_at  = NOW()
        WHERE id = $5
        RETURNING id, title, COALESCE(description, ''), status, priority, assigned_to, team_id, created_at, updated_at
    `
	var task domain.Task
	err := r.pool.QueryRow(ctx, query,
		update.Title, update.Description, update.Status, update.Priority, taskID,
	).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.AssignedTo,
		&task.TeamID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w", my_errors.ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w", my_errors.ErrTaskNotFound)
	}
	return nil
}

const taskWithRefsColumns = `
        t.id, t.title, COALESCE(t.description, ''), t.status, t.priority, t.created_at, t.updated_at,
        tm.id, tm.name,
        u.id, u.name, u.role
`

func (r *TaskRepository) GetAllTasks(ctx context.Context) ([]domain.TaskWithRefs, error) {
	query := `
        SELECT ` + taskWithRefsColumns + `
        FROM tasks t
        JOIN teams tm ON tm.id = t.team_id
        JOIN users u ON u.id = t.assigned_to
        ORDER BY t.created_at DESC
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all tasks: %w", err)
	}
	defer rows.Close()

	return scanTasksWithRefs(rows)
}

func (r *TaskRepository) GetTasksByTeam(ctx context.Context, teamID string) ([]domain.TaskWithRefs, error) {
	query := `
        SELECT ` + taskWithRefsColumns + `
        FROM tasks t
        JOIN teams tm ON tm.id = t.team_id
        JOIN users u ON u.id = t.assigned_to
        WHERE t.team_id = $1
        ORDER BY t.created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team tasks: %w", err)
	}
	defer rows.Close()

	return scanTasksWithRefs(rows)
}

func scanTasksWithRefs(rows pgx.Rows) ([]domain.TaskWithRefs, error) {
	tasks := []domain.TaskWithRefs{}
	for rows.Next() {
		var task domain.TaskWithRefs
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.Team.ID,
			&task.Team.Name,
			&task.AssignedTo.ID,
			&task.AssignedTo.Name,
			&task.AssignedTo.Role,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
