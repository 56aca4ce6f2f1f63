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

type ProjectService interface {
	Create(ctx context.Context, requester *model.User, req dto.CreateProjectRequest) (*model.Project, error)
	Get(ctx context.Context, requester *model.User, id uint) (*model.Project, error)
	List(ctx context.Context, requester *model.User) ([]*model.Project, error)
	Update(ctx context.Context, requester *model.User, id uint, req dto.UpdateProjectRequest) (*model.Project, error)
	Delete(ctx context.Context, requester *model.User, id uint) error
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, requester *model.User, req dto.CreateProjectRequest) (*model.Project, error) {
	if err := ScopeFor(requester).CanCreateProject(); err != nil {
		return nil, err
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: requester.ID,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Get(ctx context.Context, requester *model.User, id uint) (*model.Project, error) {
	return s.findVisible(ctx, requester, id)
}

func (s *projectService) List(ctx context.Context, requester *model.User) ([]*model.Project, error) {
	return s.repo.FindAll(ctx, ScopeFor(requester).Projects)
}

func (s *projectService) Update(ctx context.Context, requester *model.User, id uint, req dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if err := ScopeFor(requester).CanManageProject(project); err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, requester *model.User, id uint) error {
	project, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return err
	}

	if err := ScopeFor(requester).CanManageProject(project); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *projectService) findVisible(ctx context.Context, requester *model.User, id uint) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, ScopeFor(requester).Projects, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return project, nil
}
