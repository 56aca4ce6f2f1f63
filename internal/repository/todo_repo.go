package repository

import (
	"context"

	"staffhub/internal/model"

	"gorm.io/gorm"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.Todo, error)
	FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, id uint) error
	CountByEmployeeAndStatus(ctx context.Context, employeeID uint, status string) (int64, error)
}

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		First(&todo, id).Error; err != nil {
		return nil, err
	}

	return &todo, nil
}

func (r *todoRepository) FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.Todo, error) {
	var todos []*model.Todo
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("date desc, created_at desc").
		Find(&todos).Error; err != nil {
		return nil, err
	}

	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *todoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Todo{}, id).Error
}

func (r *todoRepository) CountByEmployeeAndStatus(ctx context.Context, employeeID uint, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
