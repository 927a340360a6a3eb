package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/middleware"
	"task-manager-service/internal/request"
	"task-manager-service/internal/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type TaskService interface {
	GetAllTasks(ctx context.Context) ([]domain.TaskWithRefs, error)
	GetTeamTasks(ctx context.Context, teamID string, identity domain.Identity) ([]domain.TaskWithRefs, error)
	CreateTask(ctx context.Context, teamID, assignedTo string, task *domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, update domain.TaskUpdate, identity domain.Identity) (*domain.Task, error)
	RemoveTask(ctx context.Context, taskID string, identity domain.Identity) error
}

type TaskHandler struct {
	service   TaskService
	validator *validator.Validate
}

func NewTaskHandler(service TaskService, validator *validator.Validate) *TaskHandler {
	return &TaskHandler{
		service:   service,
		validator: validator,
	}
}

// ListTasks godoc
// @Summary List all tasks (Admin only)
// @Description Get every task with team and assignee summaries
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.AllTasksResponse "Tasks retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin access required"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.GetAllTasks(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.AllTasksResponse{
		Tasks: mapper.MapTasksWithRefsToDTO(tasks),
		Count: len(tasks),
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListTeamTasks godoc
// @Summary List a team's tasks
// @Description Admins see every task of the team; members must belong to the team
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team id"
// @Success 200 {object} response.AllTasksResponse "Tasks retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Not a member of this team"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{teamId}/tasks [get]
func (h *TaskHandler) ListTeamTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthenticated, "user is not authenticated")
		return
	}

	teamID := chi.URLParam(r, "teamId")

	tasks, err := h.service.GetTeamTasks(r.Context(), teamID, identity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.AllTasksResponse{
		Tasks: mapper.MapTasksWithRefsToDTO(tasks),
		Count: len(tasks),
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateTask godoc
// @Summary Create a task (Admin only)
// @Description Create a task for a team assigned to a user
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team id"
// @Param assignedTo path string true "Assignee user id"
// @Param request body request.CreateTaskRequest true "Task creation request"
// @Success 201 {object} response.TaskResponse "Task created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Team or assignee not found"
// @Router /tasks/{teamId}/{assignedTo} [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")
	assignedTo := chi.URLParam(r, "assignedTo")

	var req request.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	task, err := h.service.CreateTask(r.Context(), teamID, assignedTo, mapper.MapCreateTaskRequestToDomain(&req))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.TaskResponse{
		Task: mapper.MapDomainTaskToDTO(task),
	}

	respondJSON(w, http.StatusCreated, resp)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Partially update a task. Members may only update tasks assigned to them; admins may update any task. Status transitions are not restricted.
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task id"
// @Param request body request.UpdateTaskRequest true "Task update request"
// @Success 200 {object} response.TaskResponse "Task updated successfully"
// @Failure 403 {object} dto.ErrorResponse "No permission to modify this task"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthenticated, "user is not authenticated")
		return
	}

	taskID := chi.URLParam(r, "taskId")

	var req request.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	task, err := h.service.UpdateTask(r.Context(), taskID, mapper.MapUpdateTaskRequestToDomain(&req), identity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.TaskResponse{
		Task: mapper.MapDomainTaskToDTO(task),
	}

	respondJSON(w, http.StatusOK, resp)
}

// DeleteTask godoc
// @Summary Delete a task (Admin only)
// @Description Delete a task by id
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task id"
// @Success 204 "Task deleted"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthenticated, "user is not authenticated")
		return
	}

	taskID := chi.URLParam(r, "taskId")

	if err := h.service.RemoveTask(r.Context(), taskID, identity); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
