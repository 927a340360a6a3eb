package request

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=100"`
	Status      string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Priority    string `json:"priority" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
}

// UpdateTaskRequest fields are pointers so omitted fields are left
// untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=100"`
	Status      *string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
}
