package model

import (
	"time"
)

const (
	TodoPending    = "PENDING"
	TodoInProgress = "IN_PROGRESS"
	TodoCompleted  = "COMPLETED"
)

const (
	LeaveSick      = "SICK"
	LeaveCasual    = "CASUAL"
	LeaveEarned    = "EARNED"
	LeaveEmergency = "EMERGENCY"
)

const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

// Todo is owned by exactly one employee and cascade-deletes with them.
type Todo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"index;not null" json:"employee_id"`
	Employee    User      `gorm:"foreignKey:EmployeeID" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:15;not null;default:PENDING" json:"status"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Todo) TableName() string {
	return "todos"
}

// DailyUpdate holds at most one entry per employee per calendar day.
type DailyUpdate struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   uint      `gorm:"not null;uniqueIndex:idx_employee_date" json:"employee_id"`
	Employee     User      `gorm:"foreignKey:EmployeeID" json:"-"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:idx_employee_date" json:"date"`
	UpdateText   string    `gorm:"type:text;not null" json:"update_text"`
	WorkingHours float64   `gorm:"not null" json:"working_hours"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyUpdate) TableName() string {
	return "daily_updates"
}

// WorkingHoursSummary is derived state: one row per (employee, PM) holding the
// sum of the employee's daily update hours. It is never authored directly;
// the hours service recomputes it after every daily update write.
type WorkingHoursSummary struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"not null;uniqueIndex:idx_employee_pm" json:"employee_id"`
	Employee    User      `gorm:"foreignKey:EmployeeID" json:"-"`
	PMID        uint      `gorm:"column:pm_id;not null;uniqueIndex:idx_employee_pm" json:"pm_id"`
	PM          User      `gorm:"foreignKey:PMID" json:"-"`
	TotalHours  float64   `gorm:"not null;default:0" json:"total_hours"`
	LastUpdated time.Time `json:"last_updated"`
}

func (WorkingHoursSummary) TableName() string {
	return "working_hours_summary"
}

// Leave is employee-owned; ApprovedByID nulls out rather than cascading when
// the approver is deleted.
type Leave struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employee_id"`
	Employee   User      `gorm:"foreignKey:EmployeeID" json:"-"`
	LeaveType  string    `gorm:"size:20;not null" json:"leave_type"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason     string    `gorm:"type:text;not null" json:"reason"`
	Status     string    `gorm:"size:10;not null;default:PENDING" json:"status"`

	ApprovedByID *uint `gorm:"index" json:"approved_by_id"`
	ApprovedBy   *User `gorm:"foreignKey:ApprovedByID" json:"-"`

	Remarks   string    `gorm:"type:text" json:"remarks"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Leave) TableName() string {
	return "leaves"
}

func (l *Leave) TotalDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
