package service

import (
	"context"
	"errors"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"gorm.io/gorm"
)

type TodoService interface {
	Create(ctx context.Context, requester *model.User, req dto.CreateTodoRequest) (*model.Todo, error)
	Get(ctx context.Context, requester *model.User, id uint) (*model.Todo, error)
	List(ctx context.Context, requester *model.User) ([]*model.Todo, error)
	Update(ctx context.Context, requester *model.User, id uint, req dto.UpdateTodoRequest) (*model.Todo, error)
	Delete(ctx context.Context, requester *model.User, id uint) error
}

type todoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) Create(ctx context.Context, requester *model.User, req dto.CreateTodoRequest) (*model.Todo, error) {
	if err := ScopeFor(requester).CanOwnWorkItems(); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.TodoPending
	}

	todo := &model.Todo{
		EmployeeID:  requester.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Date:        date,
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *todoService) Get(ctx context.Context, requester *model.User, id uint) (*model.Todo, error) {
	return s.findVisible(ctx, requester, id)
}

func (s *todoService) List(ctx context.Context, requester *model.User) ([]*model.Todo, error) {
	return s.repo.FindAll(ctx, ScopeFor(requester).Todos)
}

func (s *todoService) Update(ctx context.Context, requester *model.User, id uint, req dto.UpdateTodoRequest) (*model.Todo, error) {
	todo, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	// Visibility is not mutability: a PM sees team todos but only the owning
	// employee may change them.
	if err := ScopeFor(requester).CanManageWorkItem(todo.EmployeeID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.Status != nil {
		todo.Status = *req.Status
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		todo.Date = date
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, requester *model.User, id uint) error {
	todo, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return err
	}

	if err := ScopeFor(requester).CanManageWorkItem(todo.EmployeeID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *todoService) findVisible(ctx context.Context, requester *model.User, id uint) (*model.Todo, error) {
	todo, err := s.repo.FindByID(ctx, ScopeFor(requester).Todos, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return todo, nil
}
