package response

import "task-manager-service/internal/dto"

type TeamResponse struct {
	Team dto.TeamDTO `json:"team"`
}

type AllTeamsResponse struct {
	Teams []dto.TeamDTO `json:"teams"`
	Count int           `json:"count"`
}

type TeamMembersResponse struct {
	Members []dto.UserRefDTO `json:"members"`
	Count   int              `json:"count"`
}
