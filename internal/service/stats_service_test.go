package service

import (
	"context"
	"testing"

	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	svc := NewStatsService(
		repository.NewUserRepository(db),
		repository.NewProjectRepository(db),
		repository.NewTodoRepository(db),
		repository.NewDailyUpdateRepository(db),
	)

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	require.NoError(t, db.Create(&model.Project{Name: "apollo", CreatedByID: pm.ID}).Error)
	require.NoError(t, db.Create(&model.DailyUpdate{
		EmployeeID: emp.ID, Date: mustDate(t, "2026-03-02"), UpdateText: "work", WorkingHours: 7.5,
	}).Error)

	stats, err := svc.AdminStats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalPMs)
	assert.Equal(t, int64(1), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.TotalProjects)
	assert.Equal(t, 7.5, stats.TotalWorkingHours)

	_, err = svc.AdminStats(ctx, pm)
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)
}

func TestEmployeeDashboard(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	svc := NewStatsService(
		repository.NewUserRepository(db),
		repository.NewProjectRepository(db),
		repository.NewTodoRepository(db),
		repository.NewDailyUpdateRepository(db),
	)

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	require.NoError(t, db.Create(&model.Todo{
		EmployeeID: emp.ID, Title: "a", Status: model.TodoPending, Date: mustDate(t, "2026-03-02"),
	}).Error)
	require.NoError(t, db.Create(&model.Todo{
		EmployeeID: emp.ID, Title: "b", Status: model.TodoCompleted, Date: mustDate(t, "2026-03-02"),
	}).Error)
	require.NoError(t, db.Create(&model.DailyUpdate{
		EmployeeID: emp.ID, Date: mustDate(t, "2026-03-02"), UpdateText: "work", WorkingHours: 6,
	}).Error)

	dashboard, err := svc.EmployeeDashboard(ctx, emp)
	require.NoError(t, err)
	assert.Equal(t, 6.0, dashboard.TotalHours)
	assert.Equal(t, int64(1), dashboard.PendingTodos)
	assert.Equal(t, int64(1), dashboard.CompletedTodos)

	_, err = svc.EmployeeDashboard(ctx, pm)
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)
}
