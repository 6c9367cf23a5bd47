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
	ErrReportNotFound   = errors.New("rapor bulunamadı")
	ErrReportForbidden  = errors.New("bu rapora erişim yetkiniz yok")
	ErrInvalidDateRange = errors.New("başlangıç tarihi bitiş tarihinden sonra olamaz")
)

// ReportService handles service report CRUD. The overtime aggregates are
// always recomputed here from the date range, the excluded dates and the
// holiday calendar; clients never submit them.
type ReportService interface {
	Create(ctx context.Context, callerID string, req *dto.SaveReportRequest) (*dto.ReportResponse, error)
	Get(ctx context.Context, id, callerID, callerRole string) (*dto.ReportResponse, error)
	List(ctx context.Context, callerID string, page, pageSize int) ([]dto.ReportSummaryResponse, int64, error)
	Update(ctx context.Context, id, callerID, callerRole string, req *dto.SaveReportRequest) (*dto.ReportResponse, error)
	Delete(ctx context.Context, id, callerID, callerRole string) error
}

type reportService struct {
	repo     *repository.Repository
	holidays HolidayService
	logger   *zap.Logger
}

// NewReportService builds the ReportService.
func NewReportService(repo *repository.Repository, holidays HolidayService, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, holidays: holidays, logger: logger}
}

func (s *reportService) Create(ctx context.Context, callerID string, req *dto.SaveReportRequest) (*dto.ReportResponse, error) {
	report := &model.ServiceReport{UserID: callerID}
	report.CreatedBy = &callerID

	result, err := s.applyRequest(ctx, report, req)
	if err != nil {
		return nil, err
	}

	if req.Signature == nil {
		// fall back to the worker's stored default signature
		if user, err := s.repo.User.GetByID(ctx, callerID); err == nil {
			report.WorkerSignature = user.Signature
		}
	}

	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.logger.Error("failed to create report", zap.Error(err))
		return nil, err
	}

	return s.toReportResponse(ctx, report, result)
}

func (s *reportService) Get(ctx context.Context, id, callerID, callerRole string) (*dto.ReportResponse, error) {
	report, err := s.getOwned(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	result, err := s.classify(ctx, report)
	if err != nil {
		return nil, err
	}
	return s.toReportResponse(ctx, report, result)
}

func (s *reportService) List(ctx context.Context, callerID string, page, pageSize int) ([]dto.ReportSummaryResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reports, total, err := s.repo.Report.ListByUser(ctx, callerID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.ReportSummaryResponse, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		list = append(list, dto.ReportSummaryResponse{
			ID:               r.ReportID,
			SiteName:         r.SiteName,
			SiteColor:        r.SiteColor,
			StartDate:        calc.DateOf(r.StartDate).String(),
			EndDate:          calc.DateOf(r.EndDate).String(),
			TotalWorkingDays: r.TotalWorkingDays,
			ExtraTime50:      r.ExtraTime50,
			ExtraTime100:     r.ExtraTime100,
			HolidayTime100:   r.HolidayTime100,
			CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		})
	}
	return list, total, nil
}

func (s *reportService) Update(ctx context.Context, id, callerID, callerRole string, req *dto.SaveReportRequest) (*dto.ReportResponse, error) {
	report, err := s.getOwned(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	result, err := s.applyRequest(ctx, report, req)
	if err != nil {
		return nil, err
	}
	report.UpdatedBy = &callerID

	if err := s.repo.Report.Update(ctx, report); err != nil {
		s.logger.Error("failed to update report", zap.Error(err))
		return nil, err
	}

	return s.toReportResponse(ctx, report, result)
}

func (s *reportService) Delete(ctx context.Context, id, callerID, callerRole string) error {
	if _, err := s.getOwned(ctx, id, callerID, callerRole); err != nil {
		return err
	}
	return s.repo.Report.Delete(ctx, id, callerID)
}

// getOwned loads a report and enforces that the caller owns it (admins
// may access any report).
func (s *reportService) getOwned(ctx context.Context, id, callerID, callerRole string) (*model.ServiceReport, error) {
	report, err := s.repo.Report.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	if report.UserID != callerID && callerRole != model.RoleAdmin {
		return nil, ErrReportForbidden
	}
	return report, nil
}

// applyRequest validates the form payload, writes it onto the model and
// recomputes the stored aggregates.
func (s *reportService) applyRequest(ctx context.Context, report *model.ServiceReport, req *dto.SaveReportRequest) (*calc.CalculationResult, error) {
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
	stored := make(model.DateList, 0, len(req.ExcludedDates))
	for _, raw := range req.ExcludedDates {
		d, err := calc.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, d)
		stored = append(stored, d.String())
	}

	holidays, err := s.holidays.CalendarForRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := calc.CalculateServiceReport(start, end, excluded, holidays)

	report.SiteName = req.SiteName
	report.SiteColor = req.SiteColor
	report.StartDate = start.Time()
	report.EndDate = end.Time()
	report.ExcludedDates = stored
	report.SummaryNotes = req.SummaryNotes
	if req.Signature != nil {
		report.WorkerSignature = req.Signature
	}
	report.TotalWorkingDays = result.NormalDays
	report.ExtraTime50 = result.SaturdayHours
	report.ExtraTime100 = result.SundayHours
	report.HolidayTime100 = result.HolidayHours

	report.Advances = make([]model.Advance, 0, len(req.Advances))
	for _, a := range req.Advances {
		report.Advances = append(report.Advances, model.Advance{
			Amount:   a.Amount,
			Currency: a.Currency,
			Note:     a.Note,
		})
	}
	report.Expenses = make([]model.Expense, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		report.Expenses = append(report.Expenses, model.Expense{
			Amount:      e.Amount,
			Currency:    e.Currency,
			Description: e.Description,
		})
	}

	return &result, nil
}

// classify re-runs the calculation for a stored report.
func (s *reportService) classify(ctx context.Context, report *model.ServiceReport) (*calc.CalculationResult, error) {
	start := calc.DateOf(report.StartDate)
	end := calc.DateOf(report.EndDate)

	excluded := make([]calc.Date, 0, len(report.ExcludedDates))
	for _, raw := range report.ExcludedDates {
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
	return &result, nil
}

func (s *reportService) toReportResponse(ctx context.Context, report *model.ServiceReport, result *calc.CalculationResult) (*dto.ReportResponse, error) {
	resp := &dto.ReportResponse{
		ID:               report.ReportID,
		UserID:           report.UserID,
		SiteName:         report.SiteName,
		SiteColor:        report.SiteColor,
		StartDate:        calc.DateOf(report.StartDate).String(),
		EndDate:          calc.DateOf(report.EndDate).String(),
		ExcludedDates:    report.ExcludedDates,
		SummaryNotes:     report.SummaryNotes,
		TotalWorkingDays: report.TotalWorkingDays,
		ExtraTime50:      report.ExtraTime50,
		ExtraTime100:     report.ExtraTime100,
		HolidayTime100:   report.HolidayTime100,
		Calculation:      *result,
		Version:          report.Version,
		CreatedAt:        report.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        report.UpdatedAt.Format(time.RFC3339),
	}

	resp.Advances = make([]dto.AdvanceResponse, 0, len(report.Advances))
	for _, a := range report.Advances {
		resp.Advances = append(resp.Advances, dto.AdvanceResponse{
			ID:       a.AdvanceID,
			Amount:   a.Amount,
			Currency: a.Currency,
			Note:     a.Note,
		})
	}
	resp.Expenses = make([]dto.ExpenseResponse, 0, len(report.Expenses))
	for _, e := range report.Expenses {
		resp.Expenses = append(resp.Expenses, dto.ExpenseResponse{
			ID:          e.ExpenseID,
			Amount:      e.Amount,
			Currency:    e.Currency,
			Description: e.Description,
		})
	}

	// price the report when the worker has a salary configured
	if user, err := s.repo.User.GetByID(ctx, report.UserID); err == nil &&
		user.MonthlySalary != nil && *user.MonthlySalary > 0 {
		fees := calc.CalculateServiceFees(
			*user.MonthlySalary,
			float64(result.NormalDays),
			result.SaturdayHours,
			result.SundayHours,
			result.HolidayHours,
		)
		resp.Fees = &fees
	}

	return resp, nil
}
