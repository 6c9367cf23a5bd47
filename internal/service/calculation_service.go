package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barisbulutdemir/raporermak/internal/calc"
	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/repository"
)

// CalculationService previews the day classification and fee breakdown
// for an arbitrary range before a report is saved.
type CalculationService interface {
	Preview(ctx context.Context, callerID string, req *dto.PreviewRequest) (*dto.PreviewResponse, error)
}

type calculationService struct {
	repo     *repository.Repository
	holidays HolidayService
	logger   *zap.Logger
}

// NewCalculationService builds the CalculationService.
func NewCalculationService(repo *repository.Repository, holidays HolidayService, logger *zap.Logger) CalculationService {
	return &calculationService{repo: repo, holidays: holidays, logger: logger}
}

func (s *calculationService) Preview(ctx context.Context, callerID string, req *dto.PreviewRequest) (*dto.PreviewResponse, error) {
	start, err := calc.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := calc.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	excluded := make([]calc.Date, 0, len(req.ExcludedDates))
	for _, raw := range req.ExcludedDates {
		d, err := calc.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, d)
	}

	holidays, err := s.holidays.CalendarForRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := calc.CalculateServiceReport(start, end, excluded, holidays)
	resp := &dto.PreviewResponse{Calculation: result}

	salary := req.MonthlySalary
	if salary == nil {
		user, err := s.repo.User.GetByID(ctx, callerID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			salary = user.MonthlySalary
		}
	}
	if salary != nil && *salary > 0 {
		fees := calc.CalculateServiceFees(
			*salary,
			float64(result.NormalDays),
			result.SaturdayHours,
			result.SundayHours,
			result.HolidayHours,
		)
		resp.Fees = &fees
	}

	return resp, nil
}
