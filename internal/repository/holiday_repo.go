package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barisbulutdemir/raporermak/internal/model"
)

// HolidayRepository provides access to the official holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, holiday *model.OfficialHoliday) error
	GetByID(ctx context.Context, id string) (*model.OfficialHoliday, error)
	// ListRange returns holidays with start <= date <= end, ordered by date.
	ListRange(ctx context.Context, start, end time.Time) ([]model.OfficialHoliday, error)
	ListYear(ctx context.Context, year int) ([]model.OfficialHoliday, error)
	Update(ctx context.Context, holiday *model.OfficialHoliday) error
	Delete(ctx context.Context, id string) error
	// Upsert inserts the record or, when the date already exists,
	// refreshes its description and half-day flag.
	Upsert(ctx context.Context, holiday *model.OfficialHoliday) error
}

type holidayRepo struct {
	db *gorm.DB
}

// NewHolidayRepo builds the GORM-backed HolidayRepository.
func NewHolidayRepo(db *gorm.DB) HolidayRepository {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Create(ctx context.Context, holiday *model.OfficialHoliday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

func (r *holidayRepo) GetByID(ctx context.Context, id string) (*model.OfficialHoliday, error) {
	var holiday model.OfficialHoliday
	err := r.db.WithContext(ctx).
		Where("holiday_id = ?", id).
		First(&holiday).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *holidayRepo) ListRange(ctx context.Context, start, end time.Time) ([]model.OfficialHoliday, error) {
	var holidays []model.OfficialHoliday
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepo) ListYear(ctx context.Context, year int) ([]model.OfficialHoliday, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return r.ListRange(ctx, start, end)
}

func (r *holidayRepo) Update(ctx context.Context, holiday *model.OfficialHoliday) error {
	return r.db.WithContext(ctx).
		Model(holiday).
		Where("holiday_id = ?", holiday.HolidayID).
		Updates(map[string]interface{}{
			"date":        holiday.Date,
			"description": holiday.Description,
			"is_half_day": holiday.IsHalfDay,
			"updated_by":  holiday.UpdatedBy,
		}).Error
}

func (r *holidayRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("holiday_id = ?", id).
		Delete(&model.OfficialHoliday{}).Error
}

func (r *holidayRepo) Upsert(ctx context.Context, holiday *model.OfficialHoliday) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "is_half_day", "updated_at"}),
		}).
		Create(holiday).Error
}
