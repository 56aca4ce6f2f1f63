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
	"gorm.io/gorm"
)

func newLeaveFixture(t *testing.T) (*gorm.DB, LeaveService) {
	t.Helper()

	db := newTestDB(t)
	return db, NewLeaveService(repository.NewLeaveRepository(db))
}

func TestLeaveLifecycle(t *testing.T) {
	db, svc := newLeaveFixture(t)
	ctx := context.Background()

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	leave, err := svc.Create(ctx, emp, dto.CreateLeaveRequest{
		LeaveType: model.LeaveSick,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LeavePending, leave.Status)
	assert.Equal(t, 3, leave.TotalDays())

	decided, err := svc.Decide(ctx, pm, leave.ID, dto.DecideLeaveRequest{
		Status:  model.LeaveApproved,
		Remarks: "get well soon",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LeaveApproved, decided.Status)
	require.NotNil(t, decided.ApprovedByID)
	assert.Equal(t, pm.ID, *decided.ApprovedByID)

	// A decision is final.
	_, err = svc.Decide(ctx, pm, leave.ID, dto.DecideLeaveRequest{Status: model.LeaveRejected})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestLeaveValidation(t *testing.T) {
	db, svc := newLeaveFixture(t)
	ctx := context.Background()

	admin := seedAdmin(t, db, "admin@example.com")
	pm := seedPM(t, db, "pm@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm)

	_, err := svc.Create(ctx, emp, dto.CreateLeaveRequest{
		LeaveType: model.LeaveCasual,
		StartDate: "2026-03-04",
		EndDate:   "2026-03-02",
		Reason:    "trip",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	// PMs do not take leave through this system.
	_, err = svc.Create(ctx, pm, dto.CreateLeaveRequest{
		LeaveType: model.LeaveCasual,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Reason:    "trip",
	})
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)
}

func TestLeaveDecisionScoping(t *testing.T) {
	db, svc := newLeaveFixture(t)
	ctx := context.Background()

	admin := seedAdmin(t, db, "admin@example.com")
	pm1 := seedPM(t, db, "pm1@example.com", admin)
	pm2 := seedPM(t, db, "pm2@example.com", admin)
	emp := seedEmployee(t, db, "emp@example.com", pm1)

	leave, err := svc.Create(ctx, emp, dto.CreateLeaveRequest{
		LeaveType: model.LeaveEarned,
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
		Reason:    "errand",
	})
	require.NoError(t, err)

	// A different team's PM cannot even see the request.
	_, err = svc.Decide(ctx, pm2, leave.ID, dto.DecideLeaveRequest{Status: model.LeaveApproved})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// The employee cannot approve their own leave.
	_, err = svc.Decide(ctx, emp, leave.ID, dto.DecideLeaveRequest{Status: model.LeaveApproved})
	assert.ErrorIs(t, err, apperror.ErrPermissionDenied)

	// Admins can decide anywhere.
	decided, err := svc.Decide(ctx, admin, leave.ID, dto.DecideLeaveRequest{Status: model.LeaveRejected})
	require.NoError(t, err)
	assert.Equal(t, model.LeaveRejected, decided.Status)
}
