package request

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

type TeamMembersRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,dive,required,min=1,max=255"`
}
