package repository

import (
	"context"

	"staffhub/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(ctx context.Context, leave *model.Leave) error
	FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.Leave, error)
	FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.Leave, error)
	Update(ctx context.Context, leave *model.Leave) error
	Delete(ctx context.Context, id uint) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepository) FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.Leave, error) {
	var leave model.Leave
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(scope).
		First(&leave, id).Error; err != nil {
		return nil, err
	}

	return &leave, nil
}

func (r *leaveRepository) FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.Leave, error) {
	var leaves []*model.Leave
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at desc").
		Find(&leaves).Error; err != nil {
		return nil, err
	}

	return leaves, nil
}

func (r *leaveRepository) Update(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Save(leave).Error
}

func (r *leaveRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Leave{}, id).Error
}
