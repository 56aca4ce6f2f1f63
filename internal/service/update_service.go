package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"gorm.io/gorm"
)

type DailyUpdateService interface {
	Create(ctx context.Context, requester *model.User, req dto.CreateDailyUpdateRequest) (*model.DailyUpdate, error)
	Get(ctx context.Context, requester *model.User, id uint) (*model.DailyUpdate, error)
	List(ctx context.Context, requester *model.User) ([]*model.DailyUpdate, error)
	Update(ctx context.Context, requester *model.User, id uint, req dto.UpdateDailyUpdateRequest) (*model.DailyUpdate, error)
	Delete(ctx context.Context, requester *model.User, id uint) error
}

// dailyUpdateService owns the write path for daily updates. Every mutation
// that commits invokes the hours service recompute for the affected employee;
// the recompute is best-effort and never fails the write it follows.
type dailyUpdateService struct {
	repo  repository.DailyUpdateRepository
	hours HoursService
}

func NewDailyUpdateService(repo repository.DailyUpdateRepository, hours HoursService) DailyUpdateService {
	return &dailyUpdateService{
		repo:  repo,
		hours: hours,
	}
}

func (s *dailyUpdateService) Create(ctx context.Context, requester *model.User, req dto.CreateDailyUpdateRequest) (*model.DailyUpdate, error) {
	if err := ScopeFor(requester).CanOwnWorkItems(); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	hours, err := normalizeHours(req.WorkingHours)
	if err != nil {
		return nil, err
	}

	// At most one update per employee per calendar day.
	if _, err := s.repo.FindByEmployeeAndDate(ctx, requester.ID, date); err == nil {
		return nil, fmt.Errorf("%w: a daily update for %s already exists", apperror.ErrDuplicate, req.Date)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	update := &model.DailyUpdate{
		EmployeeID:   requester.ID,
		Date:         date,
		UpdateText:   req.UpdateText,
		WorkingHours: hours,
	}

	if err := s.repo.Create(ctx, update); err != nil {
		// Two concurrent creates for the same day can both pass the pre-check;
		// the unique index catches the loser.
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a daily update for %s already exists", apperror.ErrDuplicate, req.Date)
		}
		return nil, err
	}

	s.hours.Recompute(ctx, requester.ID)

	return update, nil
}

func (s *dailyUpdateService) Get(ctx context.Context, requester *model.User, id uint) (*model.DailyUpdate, error) {
	return s.findVisible(ctx, requester, id)
}

func (s *dailyUpdateService) List(ctx context.Context, requester *model.User) ([]*model.DailyUpdate, error) {
	return s.repo.FindAll(ctx, ScopeFor(requester).Updates)
}

func (s *dailyUpdateService) Update(ctx context.Context, requester *model.User, id uint, req dto.UpdateDailyUpdateRequest) (*model.DailyUpdate, error) {
	update, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if err := ScopeFor(requester).CanManageWorkItem(update.EmployeeID); err != nil {
		return nil, err
	}

	if req.UpdateText != nil {
		update.UpdateText = *req.UpdateText
	}
	if req.WorkingHours != nil {
		hours, err := normalizeHours(*req.WorkingHours)
		if err != nil {
			return nil, err
		}
		update.WorkingHours = hours
	}

	if err := s.repo.Update(ctx, update); err != nil {
		return nil, err
	}

	s.hours.Recompute(ctx, update.EmployeeID)

	return update, nil
}

func (s *dailyUpdateService) Delete(ctx context.Context, requester *model.User, id uint) error {
	update, err := s.findVisible(ctx, requester, id)
	if err != nil {
		return err
	}

	if err := ScopeFor(requester).CanManageWorkItem(update.EmployeeID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hours.Recompute(ctx, update.EmployeeID)

	return nil
}

func (s *dailyUpdateService) findVisible(ctx context.Context, requester *model.User, id uint) (*model.DailyUpdate, error) {
	update, err := s.repo.FindByID(ctx, ScopeFor(requester).Updates, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return update, nil
}

// isUniqueViolation recognizes a unique constraint error from the driver.
// gorm translates the postgres error; the message check covers drivers that
// surface the violation untranslated.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}

// normalizeHours rejects negative values and rounds to two decimal places.
func normalizeHours(hours float64) (float64, error) {
	if hours < 0 {
		return 0, fmt.Errorf("%w: working hours must not be negative", apperror.ErrValidation)
	}
	return math.Round(hours*100) / 100, nil
}
