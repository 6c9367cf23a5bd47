package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/barisbulutdemir/raporermak/internal/model"
	pkgerrors "github.com/barisbulutdemir/raporermak/pkg/errors"
)

// ReportRepository provides access to service reports and their nested
// advance/expense lines.
type ReportRepository interface {
	Create(ctx context.Context, report *model.ServiceReport) error
	GetByID(ctx context.Context, id string) (*model.ServiceReport, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.ServiceReport, int64, error)
	// Update rewrites the report row (optimistic lock on Version) and
	// replaces its advances and expenses wholesale, in one transaction.
	Update(ctx context.Context, report *model.ServiceReport) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo builds the GORM-backed ReportRepository.
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *model.ServiceReport) error {
	// Nested advances/expenses are created through the association.
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.ServiceReport, error) {
	var report model.ServiceReport
	err := r.db.WithContext(ctx).
		Preload("Advances").
		Preload("Expenses").
		Where("report_id = ?", id).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.ServiceReport, int64, error) {
	var reports []model.ServiceReport
	var total int64

	q := r.db.WithContext(ctx).Model(&model.ServiceReport{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&reports).Error
	return reports, total, err
}

func (r *reportRepo) Update(ctx context.Context, report *model.ServiceReport) error {
	oldVersion := report.Version
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ServiceReport{}).
			Where("report_id = ? AND version = ?", report.ReportID, oldVersion).
			Updates(map[string]interface{}{
				"site_name":          report.SiteName,
				"site_color":         report.SiteColor,
				"start_date":         report.StartDate,
				"end_date":           report.EndDate,
				"excluded_dates":     report.ExcludedDates,
				"summary_notes":      report.SummaryNotes,
				"worker_signature":   report.WorkerSignature,
				"total_working_days": report.TotalWorkingDays,
				"extra_time_50":      report.ExtraTime50,
				"extra_time_100":     report.ExtraTime100,
				"holiday_time_100":   report.HolidayTime100,
				"updated_by":         report.UpdatedBy,
				"version":            oldVersion + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return pkgerrors.ErrOptimisticLock
		}

		// Full replace of nested lines, matching the form's semantics.
		if err := tx.Where("report_id = ?", report.ReportID).Delete(&model.Advance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", report.ReportID).Delete(&model.Expense{}).Error; err != nil {
			return err
		}
		for i := range report.Advances {
			report.Advances[i].AdvanceID = ""
			report.Advances[i].ReportID = report.ReportID
		}
		for i := range report.Expenses {
			report.Expenses[i].ExpenseID = ""
			report.Expenses[i].ReportID = report.ReportID
		}
		if len(report.Advances) > 0 {
			if err := tx.Create(&report.Advances).Error; err != nil {
				return err
			}
		}
		if len(report.Expenses) > 0 {
			if err := tx.Create(&report.Expenses).Error; err != nil {
				return err
			}
		}

		report.Version = oldVersion + 1
		return nil
	})
}

func (r *reportRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ServiceReport{}).
			Where("report_id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Where("report_id = ?", id).Delete(&model.ServiceReport{}).Error
	})
}
