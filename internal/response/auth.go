package response

import "task-manager-service/internal/dto"

type RegisterResponse struct {
	User  dto.UserDTO `json:"user"`
	Token string      `json:"token"`
}

type LoginResponse struct {
	User  dto.UserDTO `json:"user"`
	Token string      `json:"token"`
}
