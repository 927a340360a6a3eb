package dto

import "time"

type TaskDTO struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssignedTo  string    `json:"assigned_to"`
	TeamID      string    `json:"team_id"`
}

// TaskListItemDTO embeds team and assignee summaries instead of raw
// foreign keys.
type TaskListItemDTO struct {
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Team        TeamRefDTO `json:"team"`
	User        UserRefDTO `json:"user"`
}
