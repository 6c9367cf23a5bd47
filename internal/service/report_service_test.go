package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/model"
	"github.com/barisbulutdemir/raporermak/internal/repository"
)

func setupReportService() (ReportService, *mockUserRepo, *mockHolidayRepo) {
	userRepo := newMockUserRepo()
	holidayRepo := newMockHolidayRepo()
	repo := &repository.Repository{
		User:    userRepo,
		Report:  newMockReportRepo(),
		Holiday: holidayRepo,
	}
	logger := zap.NewNop()
	holidaySvc := NewHolidayService(repo, logger)
	return NewReportService(repo, holidaySvc, logger), userRepo, holidayRepo
}

func kurbanWeekRequest() *dto.SaveReportRequest {
	return &dto.SaveReportRequest{
		SiteName:  "Ankara Şantiyesi",
		StartDate: "2026-05-25",
		EndDate:   "2026-05-31",
	}
}

func seedKurbanWeek(t *testing.T, holidayRepo *mockHolidayRepo) {
	t.Helper()
	svc := NewHolidayService(&repository.Repository{Holiday: holidayRepo}, zap.NewNop())
	if _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
}

func TestReportCreate_RecomputesAggregates(t *testing.T) {
	svc, userRepo, holidayRepo := setupReportService()
	user := createTestUser(userRepo, "mehmet", "password123", true)
	seedKurbanWeek(t, holidayRepo)

	report, err := svc.Create(context.Background(), user.UserID, kurbanWeekRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mon 25th is the only normal day; arife 26th counts 4 holiday
	// hours, the 27th-30th count 8 each, Sunday 31st counts 8.
	if report.TotalWorkingDays != 1 {
		t.Errorf("TotalWorkingDays = %d, want 1", report.TotalWorkingDays)
	}
	if report.HolidayTime100 != 36 {
		t.Errorf("HolidayTime100 = %v, want 36", report.HolidayTime100)
	}
	if report.ExtraTime100 != 8 {
		t.Errorf("ExtraTime100 = %v, want 8", report.ExtraTime100)
	}
	if report.ExtraTime50 != 0 {
		t.Errorf("ExtraTime50 = %v, want 0", report.ExtraTime50)
	}
	if len(report.Calculation.Details) != 7 {
		t.Errorf("len(Details) = %d, want 7", len(report.Calculation.Details))
	}
}

func TestReportCreate_InvertedRange(t *testing.T) {
	svc, userRepo, _ := setupReportService()
	user := createTestUser(userRepo, "mehmet", "password123", true)

	req := kurbanWeekRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate
	if _, err := svc.Create(context.Background(), user.UserID, req); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("err = %v, want ErrInvalidDateRange", err)
	}
}

func TestReportCreate_FeesWhenSalaryConfigured(t *testing.T) {
	svc, userRepo, holidayRepo := setupReportService()
	user := createTestUser(userRepo, "mehmet", "password123", true)
	salary := 22500.0
	user.MonthlySalary = &salary
	seedKurbanWeek(t, holidayRepo)

	report, err := svc.Create(context.Background(), user.UserID, kurbanWeekRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if report.Fees == nil {
		t.Fatal("Fees should be present when the worker has a salary")
	}
	// hourly = 22500/225 = 100; holiday 36h at 2.0 = 7200
	if report.Fees.HolidayFee != 7200 {
		t.Errorf("HolidayFee = %v, want 7200", report.Fees.HolidayFee)
	}
}

func TestReportCreate_NoFeesWithoutSalary(t *testing.T) {
	svc, userRepo, _ := setupReportService()
	user := createTestUser(userRepo, "mehmet", "password123", true)

	report, err := svc.Create(context.Background(), user.UserID, kurbanWeekRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if report.Fees != nil {
		t.Error("Fees should be absent without a configured salary")
	}
}

func TestReportGet_OwnershipEnforced(t *testing.T) {
	svc, userRepo, _ := setupReportService()
	owner := createTestUser(userRepo, "mehmet", "password123", true)
	createTestUser(userRepo, "ali", "password123", true)

	report, err := svc.Create(context.Background(), owner.UserID, kurbanWeekRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), report.ID, "user-ali", model.RoleWorker); !errors.Is(err, ErrReportForbidden) {
		t.Errorf("err = %v, want ErrReportForbidden", err)
	}
	if _, err := svc.Get(context.Background(), report.ID, "user-ali", model.RoleAdmin); err != nil {
		t.Errorf("an admin should read any report, got: %v", err)
	}
}

func TestReportGet_NotFound(t *testing.T) {
	svc, _, _ := setupReportService()

	if _, err := svc.Get(context.Background(), "missing", "user-1", model.RoleWorker); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("err = %v, want ErrReportNotFound", err)
	}
}

func TestReportUpdate_ReplacesLines(t *testing.T) {
	svc, userRepo, _ := setupReportService()
	user := createTestUser(userRepo, "mehmet", "password123", true)

	req := kurbanWeekRequest()
	req.Advances = []dto.AdvanceInput{{Amount: 1000, Currency: "TL"}}
	created, err := svc.Create(context.Background(), user.UserID, req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(created.Advances) != 1 {
		t.Fatalf("len(Advances) = %d, want 1", len(created.Advances))
	}

	req.Advances = []dto.AdvanceInput{
		{Amount: 500, Currency: "USD"},
		{Amount: 200, Currency: "EUR"},
	}
	req.Expenses = []dto.ExpenseInput{{Amount: 350, Currency: "TL", Description: "Yakıt"}}

	updated, err := svc.Update(context.Background(), created.ID, user.UserID, model.RoleWorker, req)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(updated.Advances) != 2 {
		t.Errorf("len(Advances) = %d, want 2", len(updated.Advances))
	}
	if len(updated.Expenses) != 1 {
		t.Errorf("len(Expenses) = %d, want 1", len(updated.Expenses))
	}
	if updated.Version != created.Version+1 {
		t.Errorf("Version = %d, want %d", updated.Version, created.Version+1)
	}
}

func TestReportUpdate_ExcludedDatesWin(t *testing.T) {
	svc, userRepo, holidayRepo := setupReportService()
	user := createTestUser(userRepo, "mehmet", "password123", true)
	seedKurbanWeek(t, holidayRepo)

	created, err := svc.Create(context.Background(), user.UserID, kurbanWeekRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	req := kurbanWeekRequest()
	req.ExcludedDates = []string{"2026-05-27"} // a full holiday, now not worked
	updated, err := svc.Update(context.Background(), created.ID, user.UserID, model.RoleWorker, req)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.HolidayTime100 != created.HolidayTime100-8 {
		t.Errorf("HolidayTime100 = %v, want %v", updated.HolidayTime100, created.HolidayTime100-8)
	}
}

func TestReportDelete_OwnerOnly(t *testing.T) {
	svc, userRepo, _ := setupReportService()
	owner := createTestUser(userRepo, "mehmet", "password123", true)
	createTestUser(userRepo, "ali", "password123", true)

	report, err := svc.Create(context.Background(), owner.UserID, kurbanWeekRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), report.ID, "user-ali", model.RoleWorker); !errors.Is(err, ErrReportForbidden) {
		t.Errorf("err = %v, want ErrReportForbidden", err)
	}
	if err := svc.Delete(context.Background(), report.ID, owner.UserID, model.RoleWorker); err != nil {
		t.Errorf("owner Delete failed: %v", err)
	}
}

func TestReportList_OnlyCallersReports(t *testing.T) {
	svc, userRepo, _ := setupReportService()
	mehmet := createTestUser(userRepo, "mehmet", "password123", true)
	ali := createTestUser(userRepo, "ali", "password123", true)

	if _, err := svc.Create(context.Background(), mehmet.UserID, kurbanWeekRequest()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ali.UserID, kurbanWeekRequest()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, total, err := svc.List(context.Background(), mehmet.UserID, 1, 20)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Errorf("total = %d, len = %d, want 1 and 1", total, len(list))
	}
}
