package repository

import (
	"context"

	"staffhub/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.Project, error)
	FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *projectRepository) FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.Project, error) {
	var projects []*model.Project
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
