package service

import (
	"context"
	"testing"

	"staffhub/internal/dto"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectOwnership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewProjectService(repository.NewProjectRepository(db))

	admin := seedAdmin(t, db, "admin@example.com")
	pm1 := seedPM(t, db, "pm1@example.com", admin)
	pm2 := seedPM(t, db, "pm2@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm1)

	// Only PMs create projects.
	_, err := svc.Create(ctx, admin, dto.CreateProjectRequest{Name: "apollo"})
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)
	_, err = svc.Create(ctx, emp, dto.CreateProjectRequest{Name: "apollo"})
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)

	project, err := svc.Create(ctx, pm1, dto.CreateProjectRequest{Name: "apollo"})
	require.NoError(t, err)
	assert.Equal(t, pm1.ID, project.CreatedByID)

	// Another PM's project reads as missing.
	_, err = svc.Get(ctx, pm2, project.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	name := "artemis"
	_, err = svc.Update(ctx, pm2, project.ID, dto.UpdateProjectRequest{Name: &name})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Admin oversees every project.
	updated, err := svc.Update(ctx, admin, project.ID, dto.UpdateProjectRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "artemis", updated.Name)

	// Employees see no projects at all.
	projects, err := svc.List(ctx, emp)
	require.NoError(t, err)
	assert.Empty(t, projects)

	require.NoError(t, svc.Delete(ctx, pm1, project.ID))
}
