package dto

import (
	"time"

	"staffhub/internal/model"
)

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type CreateDailyUpdateRequest struct {
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	UpdateText   string  `json:"update_text" binding:"required"`
	WorkingHours float64 `json:"working_hours" binding:"gte=0"`
}

type UpdateDailyUpdateRequest struct {
	UpdateText   *string  `json:"update_text"`
	WorkingHours *float64 `json:"working_hours" binding:"omitempty,gte=0"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=SICK CASUAL EARNED EMERGENCY"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	Status  string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	Remarks string `json:"remarks"`
}

type TeamHoursRow struct {
	EmployeeID    uint      `json:"employee_id"`
	EmployeeEmail string    `json:"employee_email"`
	PMID          uint      `json:"pm_id"`
	TotalHours    float64   `json:"total_hours"`
	LastUpdated   time.Time `json:"last_updated"`
}

// NewLeaveResponse flattens a leave for the API, formatting dates the way
// they were submitted.
func NewLeaveResponse(leave *model.Leave) LeaveResponse {
	return LeaveResponse{
		ID:           leave.ID,
		EmployeeID:   leave.EmployeeID,
		LeaveType:    leave.LeaveType,
		StartDate:    leave.StartDate.Format("2006-01-02"),
		EndDate:      leave.EndDate.Format("2006-01-02"),
		Reason:       leave.Reason,
		Status:       leave.Status,
		ApprovedByID: leave.ApprovedByID,
		Remarks:      leave.Remarks,
		TotalDays:    leave.TotalDays(),
	}
}

type LeaveResponse struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employee_id"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	ApprovedByID *uint  `json:"approved_by_id"`
	Remarks      string `json:"remarks"`
	TotalDays    int    `json:"total_days"`
}
