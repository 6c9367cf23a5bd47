package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barisbulutdemir/raporermak/internal/calc"
	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/model"
	"github.com/barisbulutdemir/raporermak/internal/repository"
)

var (
	ErrHolidayNotFound = errors.New("tatil kaydı bulunamadı")
	ErrHolidayExists   = errors.New("bu tarih için zaten bir tatil kaydı var")
)

// HolidayService manages the official holiday calendar and feeds it to
// the calculation core. Seeding is an explicit, idempotent operation run
// at startup (and on demand by admins), never a hidden side effect of a
// query.
type HolidayService interface {
	List(ctx context.Context, year int) ([]dto.HolidayResponse, error)
	Create(ctx context.Context, req *dto.SaveHolidayRequest, callerID string) (*dto.HolidayResponse, error)
	Update(ctx context.Context, id string, req *dto.SaveHolidayRequest, callerID string) (*dto.HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	// Seed upserts the built-in fixed and religious holiday tables.
	// Returns the number of records written.
	Seed(ctx context.Context) (int, error)
	// CalendarForRange returns the holidays overlapping [start, end] in
	// the core's representation.
	CalendarForRange(ctx context.Context, start, end calc.Date) ([]calc.Holiday, error)
}

type holidayService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHolidayService builds the HolidayService.
func NewHolidayService(repo *repository.Repository, logger *zap.Logger) HolidayService {
	return &holidayService{repo: repo, logger: logger}
}

func (s *holidayService) List(ctx context.Context, year int) ([]dto.HolidayResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	holidays, err := s.repo.Holiday.ListYear(ctx, year)
	if err != nil {
		return nil, err
	}

	list := make([]dto.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		list = append(list, toHolidayResponse(&holidays[i]))
	}
	return list, nil
}

func (s *holidayService) Create(ctx context.Context, req *dto.SaveHolidayRequest, callerID string) (*dto.HolidayResponse, error) {
	date, err := calc.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Holiday.ListRange(ctx, date.Time(), date.Time())
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrHolidayExists
	}

	holiday := &model.OfficialHoliday{
		Date:        date.Time(),
		Description: req.Description,
		IsHalfDay:   req.IsHalfDay,
	}
	holiday.CreatedBy = &callerID

	if err := s.repo.Holiday.Create(ctx, holiday); err != nil {
		s.logger.Error("failed to create holiday", zap.Error(err))
		return nil, err
	}

	resp := toHolidayResponse(holiday)
	return &resp, nil
}

func (s *holidayService) Update(ctx context.Context, id string, req *dto.SaveHolidayRequest, callerID string) (*dto.HolidayResponse, error) {
	holiday, err := s.repo.Holiday.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		return nil, err
	}

	date, err := calc.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	holiday.Date = date.Time()
	holiday.Description = req.Description
	holiday.IsHalfDay = req.IsHalfDay
	holiday.UpdatedBy = &callerID

	if err := s.repo.Holiday.Update(ctx, holiday); err != nil {
		s.logger.Error("failed to update holiday", zap.Error(err))
		return nil, err
	}

	resp := toHolidayResponse(holiday)
	return &resp, nil
}

func (s *holidayService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Holiday.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHolidayNotFound
		}
		return err
	}
	return s.repo.Holiday.Delete(ctx, id)
}

func (s *holidayService) Seed(ctx context.Context) (int, error) {
	count := 0

	for year := seedFromYear; year <= seedToYear; year++ {
		for _, h := range fixedHolidays {
			record := &model.OfficialHoliday{
				Date:        time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC),
				Description: h.Desc,
				IsHalfDay:   h.IsHalfDay,
			}
			if err := s.repo.Holiday.Upsert(ctx, record); err != nil {
				return count, err
			}
			count++
		}
	}

	for _, h := range religiousHolidays {
		date, err := calc.ParseDate(h.Date)
		if err != nil {
			return count, err
		}
		record := &model.OfficialHoliday{
			Date:        date.Time(),
			Description: h.Desc,
			IsHalfDay:   h.IsHalfDay,
		}
		if err := s.repo.Holiday.Upsert(ctx, record); err != nil {
			return count, err
		}
		count++
	}

	s.logger.Info("holiday calendar seeded", zap.Int("records", count))
	return count, nil
}

func (s *holidayService) CalendarForRange(ctx context.Context, start, end calc.Date) ([]calc.Holiday, error) {
	records, err := s.repo.Holiday.ListRange(ctx, start.Time(), end.Time())
	if err != nil {
		return nil, err
	}

	holidays := make([]calc.Holiday, 0, len(records))
	seen := make(map[calc.Date]bool, len(records))
	for i := range records {
		date := calc.DateOf(records[i].Date)
		if seen[date] {
			// data-quality issue in the calendar; the classifier keeps
			// the first record either way
			s.logger.Warn("duplicate holiday record",
				zap.String("date", date.String()),
				zap.String("description", records[i].Description),
			)
		}
		seen[date] = true
		holidays = append(holidays, calc.Holiday{
			Date:        date,
			Description: records[i].Description,
			IsHalfDay:   records[i].IsHalfDay,
		})
	}
	return holidays, nil
}

func toHolidayResponse(h *model.OfficialHoliday) dto.HolidayResponse {
	return dto.HolidayResponse{
		ID:          h.HolidayID,
		Date:        calc.DateOf(h.Date).String(),
		Description: h.Description,
		IsHalfDay:   h.IsHalfDay,
	}
}
