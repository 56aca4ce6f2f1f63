package service

import (
	"context"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"
)

type StatsService interface {
	AdminStats(ctx context.Context, requester *model.User) (*dto.AdminStatsResponse, error)
	EmployeeDashboard(ctx context.Context, requester *model.User) (*dto.EmployeeDashboardResponse, error)
}

type statsService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	todoRepo    repository.TodoRepository
	updateRepo  repository.DailyUpdateRepository
}

func NewStatsService(userRepo repository.UserRepository, projectRepo repository.ProjectRepository, todoRepo repository.TodoRepository, updateRepo repository.DailyUpdateRepository) StatsService {
	return &statsService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		todoRepo:    todoRepo,
		updateRepo:  updateRepo,
	}
}

func (s *statsService) AdminStats(ctx context.Context, requester *model.User) (*dto.AdminStatsResponse, error) {
	if err := ScopeFor(requester).CanViewAdminStats(); err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPMs, err := s.userRepo.CountByRole(ctx, model.RolePM)
	if err != nil {
		return nil, err
	}
	totalEmployees, err := s.userRepo.CountByRole(ctx, model.RoleEmployee)
	if err != nil {
		return nil, err
	}
	totalProjects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalHours, err := s.updateRepo.SumAllHours(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:        totalUsers,
		TotalPMs:          totalPMs,
		TotalEmployees:    totalEmployees,
		TotalProjects:     totalProjects,
		TotalWorkingHours: totalHours,
	}, nil
}

func (s *statsService) EmployeeDashboard(ctx context.Context, requester *model.User) (*dto.EmployeeDashboardResponse, error) {
	if err := ScopeFor(requester).CanViewDashboard(); err != nil {
		return nil, err
	}

	totalHours, err := s.updateRepo.SumHours(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	pending, err := s.todoRepo.CountByEmployeeAndStatus(ctx, requester.ID, model.TodoPending)
	if err != nil {
		return nil, err
	}
	completed, err := s.todoRepo.CountByEmployeeAndStatus(ctx, requester.ID, model.TodoCompleted)
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeDashboardResponse{
		TotalHours:     totalHours,
		PendingTodos:   pending,
		CompletedTodos: completed,
	}, nil
}
