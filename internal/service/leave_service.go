package service

import (
	"context"
	"errors"
	"fmt"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"gorm.io/gorm"
)

type LeaveService interface {
	Create(ctx context.Context, requester *model.User, req dto.CreateLeaveRequest) (*model.Leave, error)
	Get(ctx context.Context, requester *model.User, id uint) (*model.Leave, error)
	List(ctx context.Context, requester *model.User) ([]*model.Leave, error)
	Decide(ctx context.Context, requester *model.User, id uint, req dto.DecideLeaveRequest) (*model.Leave, error)
	Delete(ctx context.Context, requester *model.User, id uint) error
}

type leaveService struct {
	repo repository.LeaveRepository
}

func NewLeaveService(repo repository.LeaveRepository) LeaveService {
	return &leaveService{repo: repo}
}

func (s *leaveService) Create(ctx context.Context, requester *model.User, req dto.CreateLeaveRequest) (*model.Leave, error) {
	if err := ScopeFor(requester).CanOwnWorkItems(); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperror.ErrValidation)
	}

	leave := &model.Leave{
		EmployeeID: requester.ID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     model.LeavePending,
	}

	if err := s.repo.Create(ctx, leave); err != nil {
		return nil, err
	}

	return leave, nil
}

func (s *leaveService) Get(ctx context.Context, requester *model.User, id uint) (*model.Leave, error) {
	return s.findVisible(ctx, requester, id)
}

func (s *leaveService) List(ctx context.Context, requester *model.User) ([]*model.Leave, error) {
	return s.repo.FindAll(ctx, ScopeFor(requester).Leaves)
}

// Decide approves or rejects a pending leave. Only the employee's PM or an
// admin may decide; the decision records the approver.
func (s *leaveService) Decide(ctx context.Context, requester *model.User, id uint, req dto.DecideLeaveRequest) (*model.Leave, error) {
	leave, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if err := ScopeFor(requester).CanDecideLeave(leave); err != nil {
		return nil, err
	}

	if leave.Status != model.LeavePending {
		return nil, fmt.Errorf("%w: leave already decided", apperror.ErrValidation)
	}

	requesterID := requester.ID
	leave.Status = req.Status
	leave.Remarks = req.Remarks
	leave.ApprovedByID = &requesterID

	if err := s.repo.Update(ctx, leave); err != nil {
		return nil, err
	}

	return leave, nil
}

func (s *leaveService) Delete(ctx context.Context, requester *model.User, id uint) error {
	leave, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return err
	}

	if err := ScopeFor(requester).CanManageWorkItem(leave.EmployeeID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *leaveService) findVisible(ctx context.Context, requester *model.User, id uint) (*model.Leave, error) {
	leave, err := s.repo.FindByID(ctx, ScopeFor(requester).Leaves, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return leave, nil
}
