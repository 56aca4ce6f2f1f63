package repository

import (
	"context"
	"time"

	"staffhub/internal/model"

	"gorm.io/gorm"
)

type DailyUpdateRepository interface {
	Create(ctx context.Context, update *model.DailyUpdate) error
	FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.DailyUpdate, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*model.DailyUpdate, error)
	FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.DailyUpdate, error)
	Update(ctx context.Context, update *model.DailyUpdate) error
	Delete(ctx context.Context, id uint) error
	SumHours(ctx context.Context, employeeID uint) (float64, error)
	SumAllHours(ctx context.Context) (float64, error)
}

type dailyUpdateRepository struct {
	db *gorm.DB
}

func NewDailyUpdateRepository(db *gorm.DB) DailyUpdateRepository {
	return &dailyUpdateRepository{db: db}
}

func (r *dailyUpdateRepository) Create(ctx context.Context, update *model.DailyUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *dailyUpdateRepository) FindByID(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id uint) (*model.DailyUpdate, error) {
	var update model.DailyUpdate
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		First(&update, id).Error; err != nil {
		return nil, err
	}

	return &update, nil
}

func (r *dailyUpdateRepository) FindByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*model.DailyUpdate, error) {
	var update model.DailyUpdate
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&update).Error; err != nil {
		return nil, err
	}

	return &update, nil
}

func (r *dailyUpdateRepository) FindAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*model.DailyUpdate, error) {
	var updates []*model.DailyUpdate
	if err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("date desc, created_at desc").
		Find(&updates).Error; err != nil {
		return nil, err
	}

	return updates, nil
}

func (r *dailyUpdateRepository) Update(ctx context.Context, update *model.DailyUpdate) error {
	return r.db.WithContext(ctx).Save(update).Error
}

func (r *dailyUpdateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.DailyUpdate{}, id).Error
}

// SumHours is the full recomputation read: the current sum of every persisted
// daily update for the employee.
func (r *dailyUpdateRepository) SumHours(ctx context.Context, employeeID uint) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).Model(&model.DailyUpdate{}).
		Where("employee_id = ?", employeeID).
		Select("COALESCE(SUM(working_hours), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *dailyUpdateRepository) SumAllHours(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).Model(&model.DailyUpdate{}).
		Select("COALESCE(SUM(working_hours), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
