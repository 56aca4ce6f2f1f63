package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const teamHoursCacheTTL = 60 * time.Second

// HoursService maintains the derived working-hours summary. Recompute is
// invoked explicitly by the daily update write path after the write commits,
// so the trigger is part of that path's contract rather than a hidden hook.
type HoursService interface {
	Recompute(ctx context.Context, employeeID uint)
	TeamHours(ctx context.Context, requester *model.User) ([]dto.TeamHoursRow, error)
}

type hoursService struct {
	userRepo    repository.UserRepository
	updateRepo  repository.DailyUpdateRepository
	summaryRepo repository.SummaryRepository
	redisClient *redis.Client
}

func NewHoursService(userRepo repository.UserRepository, updateRepo repository.DailyUpdateRepository, summaryRepo repository.SummaryRepository, redisClient *redis.Client) HoursService {
	return &hoursService{
		userRepo:    userRepo,
		updateRepo:  updateRepo,
		summaryRepo: summaryRepo,
		redisClient: redisClient,
	}
}

// Recompute refreshes the (employee, PM) summary row from the full set of the
// employee's persisted daily updates. A full recomputation rather than a
// delta: each run reads current state, so a failed or raced run is healed by
// the next mutation for the same employee. Failures are logged and swallowed;
// the daily update write that triggered this has already committed and must
// not be rolled back or failed by summary maintenance.
func (s *hoursService) Recompute(ctx context.Context, employeeID uint) {
	if err := s.recompute(ctx, employeeID); err != nil {
		logrus.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"error":       err.Error(),
		}).Error("working hours recompute failed")
	}
}

func (s *hoursService) recompute(ctx context.Context, employeeID uint) error {
	employee, err := s.userRepo.FindByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("resolve employee: %w", err)
	}

	if employee.CreatedByID == nil {
		// No PM assigned: no summary row is ever created for this employee.
		logrus.WithField("employee_id", employeeID).Debug("no PM assigned, skipping summary")
		return nil
	}
	pmID := *employee.CreatedByID

	total, err := s.updateRepo.SumHours(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("sum working hours: %w", err)
	}

	if err := s.summaryRepo.Upsert(ctx, employeeID, pmID, total); err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"pm_id":       pmID,
		"total_hours": total,
	}).Info("working hours summary updated")

	s.invalidateAndPublish(ctx, employee, pmID, total)

	return nil
}

func (s *hoursService) invalidateAndPublish(ctx context.Context, employee *model.User, pmID uint, total float64) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.Del(ctx, teamHoursCacheKey(pmID)).Err(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate team hours cache")
	}

	row := dto.TeamHoursRow{
		EmployeeID:    employee.ID,
		EmployeeEmail: employee.Email,
		PMID:          pmID,
		TotalHours:    total,
		LastUpdated:   time.Now(),
	}
	if payload, err := json.Marshal(row); err == nil {
		s.redisClient.Publish(ctx, TeamHoursChannel(pmID), payload)
	}
}

func (s *hoursService) TeamHours(ctx context.Context, requester *model.User) ([]dto.TeamHoursRow, error) {
	if err := ScopeFor(requester).CanViewTeamHours(); err != nil {
		return nil, err
	}

	if requester.Role == model.RoleAdmin {
		summaries, err := s.summaryRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return toTeamHoursRows(summaries), nil
	}

	cacheKey := teamHoursCacheKey(requester.ID)
	if s.redisClient != nil {
		if val, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var rows []dto.TeamHoursRow
			if json.Unmarshal([]byte(val), &rows) == nil {
				return rows, nil
			}
		}
	}

	summaries, err := s.summaryRepo.FindByPM(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	rows := toTeamHoursRows(summaries)

	if s.redisClient != nil {
		if payload, err := json.Marshal(rows); err == nil {
			_ = s.redisClient.Set(ctx, cacheKey, payload, teamHoursCacheTTL).Err()
		}
	}

	return rows, nil
}

func toTeamHoursRows(summaries []*model.WorkingHoursSummary) []dto.TeamHoursRow {
	rows := make([]dto.TeamHoursRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, dto.TeamHoursRow{
			EmployeeID:    summary.EmployeeID,
			EmployeeEmail: summary.Employee.Email,
			PMID:          summary.PMID,
			TotalHours:    summary.TotalHours,
			LastUpdated:   summary.LastUpdated,
		})
	}
	return rows
}

func teamHoursCacheKey(pmID uint) string {
	return fmt.Sprintf("teamhours:pm:%d", pmID)
}

// TeamHoursChannel is the redis pub/sub channel carrying recomputed summary
// rows for a PM's team.
func TeamHoursChannel(pmID uint) string {
	return fmt.Sprintf("team_hours:%d", pmID)
}

// TeamHoursPattern matches every PM's channel; admins subscribe to all teams.
func TeamHoursPattern() string {
	return "team_hours:*"
}
