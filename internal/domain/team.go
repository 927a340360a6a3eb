package domain

import "time"

type Team struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// TeamMember is the (team, user) membership pair. A pair is unique; there
// is no lifecycle beyond add/remove.
type TeamMember struct {
	CreatedAt time.Time `json:"created_at"`
	TeamID    string    `json:"team_id"`
	UserID    string    `json:"user_id"`
}

// TeamWithMembers is a team joined with summaries of its member users.
type TeamWithMembers struct {
	Team
	Members []UserRef `json:"members"`
}

// UserRef is a user summary embedded in team and task reads.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
