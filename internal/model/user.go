package model

import (
	"time"
)

const (
	RoleEmployee = "EMPLOYEE"
	RolePM       = "PM"
	RoleAdmin    = "ADMIN"
)

// User is a member of the creation hierarchy: an admin creates PMs (and may
// create employees directly), a PM creates employees. CreatedByID records the
// creator; for an employee it identifies the owning PM for hours aggregation.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:50" json:"first_name"`
	LastName     string `gorm:"size:50" json:"last_name"`
	Role         string `gorm:"size:10;not null;default:EMPLOYEE" json:"role"`

	IsActive    bool `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser bool `gorm:"not null;default:false" json:"is_superuser"`

	IsVerified        bool   `gorm:"not null;default:false" json:"is_verified"`
	VerificationToken string `gorm:"size:100;index" json:"-"`

	CreatedByID *uint `gorm:"index" json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Project is owned by exactly one PM and cascade-deletes with them.
type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedByID uint `gorm:"index;not null" json:"created_by_id"`
	CreatedBy   User `gorm:"foreignKey:CreatedByID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
