package response

import "task-manager-service/internal/dto"

type TaskResponse struct {
	Task dto.TaskDTO `json:"task"`
}

type AllTasksResponse struct {
	Tasks []dto.TaskListItemDTO `json:"tasks"`
	Count int                   `json:"count"`
}
