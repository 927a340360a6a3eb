package dto

import "time"

type TeamDTO struct {
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Members     []UserRefDTO `json:"members,omitempty"`
}

type TeamRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
