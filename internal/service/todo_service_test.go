package service

import (
	"context"
	"testing"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewTodoService(repository.NewTodoRepository(db))

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	todo, err := svc.Create(ctx, emp, dto.CreateTodoRequest{
		Title: "review PR",
		Date:  "2026-03-02",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TodoPending, todo.Status)
	assert.Equal(t, emp.ID, todo.EmployeeID)

	status := model.TodoCompleted
	updated, err := svc.Update(ctx, emp, todo.ID, dto.UpdateTodoRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.TodoCompleted, updated.Status)

	require.NoError(t, svc.Delete(ctx, emp, todo.ID))

	_, err = svc.Get(ctx, emp, todo.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTodoOwnershipBoundaries(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewTodoService(repository.NewTodoRepository(db))

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	_, err := svc.Create(ctx, pm, dto.CreateTodoRequest{Title: "plan", Date: "2026-03-02"})
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)

	todo, err := svc.Create(ctx, emp, dto.CreateTodoRequest{Title: "task", Date: "2026-03-02"})
	require.NoError(t, err)

	// PM sees it, cannot change it.
	_, err = svc.Get(ctx, pm, todo.ID)
	require.NoError(t, err)

	title := "changed"
	_, err = svc.Update(ctx, pm, todo.ID, dto.UpdateTodoRequest{Title: &title})
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)
}
