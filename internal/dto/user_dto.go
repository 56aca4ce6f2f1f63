package dto

type CreateUserInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Role      string `json:"role" binding:"required,oneof=PM EMPLOYEE"`

	// PreVerified skips token issuance and the verification mail entirely.
	PreVerified bool  `json:"pre_verified"`
	IsActive    *bool `json:"is_active"`
}

type UpdateUserInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	IsActive  *bool   `json:"is_active"`
}

type UserFilter struct {
	Role string `form:"role" binding:"omitempty,oneof=ADMIN PM EMPLOYEE"`
}

type AdminStatsResponse struct {
	TotalUsers        int64   `json:"total_users"`
	TotalPMs          int64   `json:"total_pms"`
	TotalEmployees    int64   `json:"total_employees"`
	TotalProjects     int64   `json:"total_projects"`
	TotalWorkingHours float64 `json:"total_working_hours"`
}

type EmployeeDashboardResponse struct {
	TotalHours     float64 `json:"total_hours"`
	PendingTodos   int64   `json:"pending_todos"`
	CompletedTodos int64   `json:"completed_todos"`
}
