package service

import (
	"context"
	"errors"
	"testing"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newHoursFixture(t *testing.T) (*gorm.DB, HoursService, DailyUpdateService) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	updateRepo := repository.NewDailyUpdateRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	hours := NewHoursService(userRepo, updateRepo, summaryRepo, nil)
	updates := NewDailyUpdateService(updateRepo, hours)

	return db, hours, updates
}

func TestSummaryFollowsDailyUpdateLifecycle(t *testing.T) {
	db, _, updates := newHoursFixture(t)
	ctx := context.Background()

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	summaryRepo := repository.NewSummaryRepository(db)

	// First update creates the summary row.
	first, err := updates.Create(ctx, emp, dto.CreateDailyUpdateRequest{
		Date:         "2026-03-02",
		UpdateText:   "implemented login flow",
		WorkingHours: 8.0,
	})
	require.NoError(t, err)

	summary, err := summaryRepo.FindByEmployeeAndPM(ctx, emp.ID, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, summary.TotalHours)

	// Second update on another day accumulates.
	_, err = updates.Create(ctx, emp, dto.CreateDailyUpdateRequest{
		Date:         "2026-03-03",
		UpdateText:   "code review",
		WorkingHours: 4.5,
	})
	require.NoError(t, err)

	summary, err = summaryRepo.FindByEmployeeAndPM(ctx, emp.ID, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, summary.TotalHours)

	// Editing hours recomputes from scratch, not by delta.
	newHours := 2.0
	_, err = updates.Update(ctx, emp, first.ID, dto.UpdateDailyUpdateRequest{WorkingHours: &newHours})
	require.NoError(t, err)

	summary, err = summaryRepo.FindByEmployeeAndPM(ctx, emp.ID, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.5, summary.TotalHours)

	// Deleting drops its hours from the total.
	require.NoError(t, updates.Delete(ctx, emp, first.ID))

	summary, err = summaryRepo.FindByEmployeeAndPM(ctx, emp.ID, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, summary.TotalHours)
}

func TestRecomputeSkipsEmployeeWithoutPM(t *testing.T) {
	db, hours, _ := newHoursFixture(t)
	ctx := context.Background()

	orphan := seedUser(t, db, "orphan@example.com", model.RoleEmployee, nil)

	hours.Recompute(ctx, orphan.ID)

	var count int64
	require.NoError(t, db.Model(&model.WorkingHoursSummary{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	db, hours, updates := newHoursFixture(t)
	ctx := context.Background()

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	_, err := updates.Create(ctx, emp, dto.CreateDailyUpdateRequest{
		Date:         "2026-03-02",
		UpdateText:   "standup notes",
		WorkingHours: 7.25,
	})
	require.NoError(t, err)

	hours.Recompute(ctx, emp.ID)
	hours.Recompute(ctx, emp.ID)

	var count int64
	require.NoError(t, db.Model(&model.WorkingHoursSummary{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	summary, err := repository.NewSummaryRepository(db).FindByEmployeeAndPM(ctx, emp.ID, pm.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.25, summary.TotalHours)
}

func TestRecomputeFailureDoesNotFailWrite(t *testing.T) {
	db, _, updates := newHoursFixture(t)
	ctx := context.Background()

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	// Break the summary store so the recompute after the write fails.
	require.NoError(t, db.Migrator().DropTable(&model.WorkingHoursSummary{}))

	update, err := updates.Create(ctx, emp, dto.CreateDailyUpdateRequest{
		Date:         "2026-03-02",
		UpdateText:   "wrote migration scripts",
		WorkingHours: 8.0,
	})
	require.NoError(t, err)

	// The daily update committed even though its summary could not.
	var persisted model.DailyUpdate
	require.NoError(t, db.First(&persisted, update.ID).Error)
	assert.Equal(t, 8.0, persisted.WorkingHours)
}

func TestTeamHoursVisibility(t *testing.T) {
	db, hours, updates := newHoursFixture(t)
	ctx := context.Background()

	admin := seedAdmin(t, db, "admin@example.com")
	pm1 := seedPM(t, db, "pm1@example.com", admin)
	pm2 := seedPM(t, db, "pm2@example.com", admin)
	emp1 := seedEmployee(t, db, "emp1@example.com", pm1)
	emp2 := seedEmployee(t, db, "emp2@example.com", pm2)

	_, err := updates.Create(ctx, emp1, dto.CreateDailyUpdateRequest{
		Date: "2026-03-02", UpdateText: "work", WorkingHours: 8,
	})
	require.NoError(t, err)
	_, err = updates.Create(ctx, emp2, dto.CreateDailyUpdateRequest{
		Date: "2026-03-02", UpdateText: "work", WorkingHours: 6,
	})
	require.NoError(t, err)

	// A PM only sees their own team.
	rows, err := hours.TeamHours(ctx, pm1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, emp1.ID, rows[0].EmployeeID)
	assert.Equal(t, 8.0, rows[0].TotalHours)

	// Admins see every team.
	rows, err = hours.TeamHours(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Employees are shut out entirely.
	_, err = hours.TeamHours(ctx, emp1)
	assert.True(t, errors.Is(err, apperror.ErrPermissionDenied))
}
