package repository

import (
	"context"
	"time"

	"staffhub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository interface {
	Upsert(ctx context.Context, employeeID, pmID uint, totalHours float64) error
	FindByEmployeeAndPM(ctx context.Context, employeeID, pmID uint) (*model.WorkingHoursSummary, error)
	FindByPM(ctx context.Context, pmID uint) ([]*model.WorkingHoursSummary, error)
	FindAll(ctx context.Context) ([]*model.WorkingHoursSummary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

// Upsert creates the (employee, pm) row on first write and overwrites
// total_hours afterwards. Racing recomputes both write a value that was
// correct as of their own read, so last-writer-wins resolves to a sum the
// next mutation will heal if it is already stale.
func (r *summaryRepository) Upsert(ctx context.Context, employeeID, pmID uint, totalHours float64) error {
	summary := model.WorkingHoursSummary{
		EmployeeID:  employeeID,
		PMID:        pmID,
		TotalHours:  totalHours,
		LastUpdated: time.Now(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "pm_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_hours", "last_updated"}),
	}).Create(&summary).Error
}

func (r *summaryRepository) FindByEmployeeAndPM(ctx context.Context, employeeID, pmID uint) (*model.WorkingHoursSummary, error) {
	var summary model.WorkingHoursSummary
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND pm_id = ?", employeeID, pmID).
		First(&summary).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

func (r *summaryRepository) FindByPM(ctx context.Context, pmID uint) ([]*model.WorkingHoursSummary, error) {
	var summaries []*model.WorkingHoursSummary
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("pm_id = ?", pmID).
		Find(&summaries).Error; err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *summaryRepository) FindAll(ctx context.Context) ([]*model.WorkingHoursSummary, error) {
	var summaries []*model.WorkingHoursSummary
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		Find(&summaries).Error; err != nil {
		return nil, err
	}

	return summaries, nil
}
