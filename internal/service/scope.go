package service

import (
	"staffhub/internal/model"
	"staffhub/pkg/apperror"

	"gorm.io/gorm"
)

// Scope is the role-scoped visibility and mutation policy. One implementation
// exists per role; ScopeFor picks it, and every query and write-time check in
// the services goes through it instead of scattered role equality checks.
//
// Discipline for out-of-scope targets: single-entity lookups and mutations on
// rows the requester cannot see resolve to ErrNotFound, so existence never
// leaks. Operations a role can never perform at all resolve to
// ErrPermissionDenied. Collection reads filter to empty rather than erroring.
type Scope interface {
	// Query predicates, usable directly with gorm's Scopes().
	Users(q *gorm.DB) *gorm.DB
	Todos(q *gorm.DB) *gorm.DB
	Updates(q *gorm.DB) *gorm.DB
	Projects(q *gorm.DB) *gorm.DB
	Leaves(q *gorm.DB) *gorm.DB

	// Write-time checks, enforced on already-resolved entities.
	CanCreateUser(role string) error
	CanViewUser(target *model.User) error
	CanManageUser(target *model.User) error
	CanCreateProject() error
	CanManageProject(project *model.Project) error
	CanOwnWorkItems() error
	CanManageWorkItem(ownerID uint) error
	CanDecideLeave(leave *model.Leave) error
	CanViewTeamHours() error
	CanViewAdminStats() error
	CanViewDashboard() error
}

func ScopeFor(requester *model.User) Scope {
	switch requester.Role {
	case model.RoleAdmin:
		return adminScope{requester: requester}
	case model.RolePM:
		return pmScope{requester: requester}
	default:
		return employeeScope{requester: requester}
	}
}

// ownedEmployees is the subquery predicate shared by the PM scope: work items
// are visible iff their owning employee was created by this PM.
const ownedEmployees = "employee_id IN (SELECT id FROM users WHERE created_by_id = ?)"

type adminScope struct {
	requester *model.User
}

func (adminScope) Users(q *gorm.DB) *gorm.DB    { return q }
func (adminScope) Todos(q *gorm.DB) *gorm.DB    { return q }
func (adminScope) Updates(q *gorm.DB) *gorm.DB  { return q }
func (adminScope) Projects(q *gorm.DB) *gorm.DB { return q }
func (adminScope) Leaves(q *gorm.DB) *gorm.DB   { return q }

func (adminScope) CanCreateUser(role string) error {
	if role != model.RolePM && role != model.RoleEmployee {
		return apperror.ErrPermissionDenied
	}
	return nil
}

func (adminScope) CanViewUser(*model.User) error { return nil }

func (adminScope) CanManageUser(target *model.User) error {
	// Superuser accounts are untouchable, even for admins.
	if target.IsSuperuser {
		return apperror.ErrPermissionDenied
	}
	return nil
}

func (adminScope) CanCreateProject() error {
	// Projects belong to PMs; admins oversee but never own them.
	return apperror.ErrPermissionDenied
}

func (adminScope) CanManageProject(*model.Project) error { return nil }

func (adminScope) CanOwnWorkItems() error {
	return apperror.ErrPermissionDenied
}

func (adminScope) CanManageWorkItem(uint) error { return nil }

func (adminScope) CanDecideLeave(*model.Leave) error { return nil }

func (adminScope) CanViewTeamHours() error { return nil }

func (adminScope) CanViewAdminStats() error { return nil }

func (adminScope) CanViewDashboard() error {
	return apperror.ErrPermissionDenied
}

type pmScope struct {
	requester *model.User
}

func (s pmScope) Users(q *gorm.DB) *gorm.DB {
	return q.Where("created_by_id = ? AND role = ?", s.requester.ID, model.RoleEmployee)
}

func (s pmScope) Todos(q *gorm.DB) *gorm.DB {
	return q.Where(ownedEmployees, s.requester.ID)
}

func (s pmScope) Updates(q *gorm.DB) *gorm.DB {
	return q.Where(ownedEmployees, s.requester.ID)
}

func (s pmScope) Projects(q *gorm.DB) *gorm.DB {
	return q.Where("created_by_id = ?", s.requester.ID)
}

func (s pmScope) Leaves(q *gorm.DB) *gorm.DB {
	return q.Where(ownedEmployees, s.requester.ID)
}

func (s pmScope) CanCreateUser(role string) error {
	if role != model.RoleEmployee {
		return apperror.ErrPermissionDenied
	}
	return nil
}

func (s pmScope) CanViewUser(target *model.User) error {
	if target.ID == s.requester.ID {
		return nil
	}
	if target.Role == model.RoleEmployee && target.CreatedByID != nil && *target.CreatedByID == s.requester.ID {
		return nil
	}
	return apperror.ErrNotFound
}

func (s pmScope) CanManageUser(target *model.User) error {
	if target.Role != model.RoleEmployee || target.CreatedByID == nil || *target.CreatedByID != s.requester.ID {
		return apperror.ErrNotFound
	}
	return nil
}

func (s pmScope) CanCreateProject() error { return nil }

func (s pmScope) CanManageProject(project *model.Project) error {
	if project.CreatedByID != s.requester.ID {
		return apperror.ErrNotFound
	}
	return nil
}

func (s pmScope) CanOwnWorkItems() error {
	return apperror.ErrPermissionDenied
}

func (s pmScope) CanManageWorkItem(uint) error {
	return apperror.ErrPermissionDenied
}

func (s pmScope) CanDecideLeave(leave *model.Leave) error {
	if leave.Employee.CreatedByID == nil || *leave.Employee.CreatedByID != s.requester.ID {
		return apperror.ErrNotFound
	}
	return nil
}

func (s pmScope) CanViewTeamHours() error { return nil }

func (pmScope) CanViewAdminStats() error {
	return apperror.ErrPermissionDenied
}

func (pmScope) CanViewDashboard() error {
	return apperror.ErrPermissionDenied
}

type employeeScope struct {
	requester *model.User
}

func (s employeeScope) Users(q *gorm.DB) *gorm.DB {
	// Self only, via profile.
	return q.Where("id = ?", s.requester.ID)
}

func (s employeeScope) Todos(q *gorm.DB) *gorm.DB {
	return q.Where("employee_id = ?", s.requester.ID)
}

func (s employeeScope) Updates(q *gorm.DB) *gorm.DB {
	return q.Where("employee_id = ?", s.requester.ID)
}

func (s employeeScope) Projects(q *gorm.DB) *gorm.DB {
	return q.Where("1 = 0")
}

func (s employeeScope) Leaves(q *gorm.DB) *gorm.DB {
	return q.Where("employee_id = ?", s.requester.ID)
}

func (employeeScope) CanCreateUser(string) error {
	return apperror.ErrPermissionDenied
}

func (s employeeScope) CanViewUser(target *model.User) error {
	if target.ID != s.requester.ID {
		return apperror.ErrNotFound
	}
	return nil
}

func (employeeScope) CanManageUser(*model.User) error {
	return apperror.ErrPermissionDenied
}

func (employeeScope) CanCreateProject() error {
	return apperror.ErrPermissionDenied
}

func (employeeScope) CanManageProject(*model.Project) error {
	return apperror.ErrPermissionDenied
}

func (employeeScope) CanOwnWorkItems() error { return nil }

func (s employeeScope) CanManageWorkItem(ownerID uint) error {
	if ownerID != s.requester.ID {
		return apperror.ErrNotFound
	}
	return nil
}

func (employeeScope) CanDecideLeave(*model.Leave) error {
	return apperror.ErrPermissionDenied
}

func (employeeScope) CanViewTeamHours() error {
	return apperror.ErrPermissionDenied
}

func (employeeScope) CanViewAdminStats() error {
	return apperror.ErrPermissionDenied
}

func (employeeScope) CanViewDashboard() error { return nil }
