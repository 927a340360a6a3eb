package mapper

import (
	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/request"
)

// User mappers
func MapDomainUserToDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func MapDomainUserRefToDTO(ref domain.UserRef) dto.UserRefDTO {
	return dto.UserRefDTO{
		ID:   ref.ID,
		Name: ref.Name,
		Role: string(ref.Role),
	}
}

// Team mappers
func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	return dto.TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

func MapDomainTeamWithMembersToDTO(team *domain.TeamWithMembers) dto.TeamDTO {
	teamDTO := MapDomainTeamToDTO(&team.Team)
	members := make([]dto.UserRefDTO, len(team.Members))
	for i, m := range team.Members {
		members[i] = MapDomainUserRefToDTO(m)
	}
	teamDTO.Members = members
	return teamDTO
}

// Task mappers
func MapDomainTaskToDTO(task *domain.Task) dto.TaskDTO {
	return dto.TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AssignedTo:  task.AssignedTo,
		TeamID:      task.TeamID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func MapTaskWithRefsToDTO(task *domain.TaskWithRefs) dto.TaskListItemDTO {
	return dto.TaskListItemDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Team: dto.TeamRefDTO{
			ID:   task.Team.ID,
			Name: task.Team.Name,
		},
		User:      MapDomainUserRefToDTO(task.AssignedTo),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

func MapTasksWithRefsToDTO(tasks []domain.TaskWithRefs) []dto.TaskListItemDTO {
	items := make([]dto.TaskListItemDTO, len(tasks))
	for i := range tasks {
		items[i] = MapTaskWithRefsToDTO(&tasks[i])
	}
	return items
}

func MapCreateTaskRequestToDomain(req *request.CreateTaskRequest) *domain.Task {
	return &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
	}
}

func MapUpdateTaskRequestToDomain(req *request.UpdateTaskRequest) domain.TaskUpdate {
	update := domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		update.Priority = &priority
	}
	return update
}
