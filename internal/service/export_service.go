package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barisbulutdemir/raporermak/internal/calc"
	"github.com/barisbulutdemir/raporermak/internal/model"
	"github.com/barisbulutdemir/raporermak/internal/repository"
)

var ErrExportGenerateFail = errors.New("dışa aktarma dosyası oluşturulamadı")

// ExportService renders reports as .xlsx workbooks and the holiday
// calendar as an iCalendar feed.
type ExportService interface {
	ExportReport(ctx context.Context, id, callerID, callerRole string) (*bytes.Buffer, string, error)
	ExportHolidaysICS(ctx context.Context, year int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo     *repository.Repository
	holidays HolidayService
	logger   *zap.Logger
}

// NewExportService builds the ExportService.
func NewExportService(repo *repository.Repository, holidays HolidayService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, holidays: holidays, logger: logger}
}

func (s *exportService) ExportReport(ctx context.Context, id, callerID, callerRole string) (*bytes.Buffer, string, error) {
	report, err := s.repo.Report.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrReportNotFound
		}
		return nil, "", err
	}
	if report.UserID != callerID && callerRole != model.RoleAdmin {
		return nil, "", ErrReportForbidden
	}

	start := calc.DateOf(report.StartDate)
	end := calc.DateOf(report.EndDate)

	excluded := make([]calc.Date, 0, len(report.ExcludedDates))
	for _, raw := range report.ExcludedDates {
		d, err := calc.ParseDate(raw)
		if err != nil {
			return nil, "", err
		}
		excluded = append(excluded, d)
	}
	holidays, err := s.holidays.CalendarForRange(ctx, start, end)
	if err != nil {
		return nil, "", err
	}
	result := calc.CalculateServiceReport(start, end, excluded, holidays)

	var workerName string
	var fees *calc.FeeBreakdown
	if user, err := s.repo.User.GetByID(ctx, report.UserID); err == nil {
		workerName = user.Name
		if user.MonthlySalary != nil && *user.MonthlySalary > 0 {
			b := calc.CalculateServiceFees(
				*user.MonthlySalary,
				float64(result.NormalDays),
				result.SaturdayHours,
				result.SundayHours,
				result.HolidayHours,
			)
			fees = &b
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Servis Raporu"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s Servis Raporu", report.SiteName))
	f.MergeCell(sheetName, "A1", "D1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	row := 2
	f.SetCellValue(sheetName, cell("A", row), "Personel")
	f.SetCellValue(sheetName, cell("B", row), workerName)
	row++
	f.SetCellValue(sheetName, cell("A", row), "Tarih Aralığı")
	f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s - %s", start.Label(), end.Label()))
	row += 2

	f.SetCellValue(sheetName, cell("A", row), "Tarih")
	f.SetCellValue(sheetName, cell("B", row), "Gün")
	f.SetCellValue(sheetName, cell("C", row), "Durum")
	f.SetCellValue(sheetName, cell("D", row), "Saat")
	f.SetCellStyle(sheetName, cell("A", row), cell("D", row), headerStyle)
	row++

	for _, d := range result.Details {
		f.SetCellValue(sheetName, cell("A", row), d.DateLabel)
		f.SetCellValue(sheetName, cell("B", row), d.DayName)
		f.SetCellValue(sheetName, cell("C", row), d.Description)
		f.SetCellValue(sheetName, cell("D", row), d.Hours)
		row++
	}
	row++

	f.SetCellValue(sheetName, cell("A", row), "Toplam Çalışma Günü")
	f.SetCellValue(sheetName, cell("B", row), result.NormalDays)
	f.SetCellStyle(sheetName, cell("A", row), cell("A", row), boldStyle)
	row++
	f.SetCellValue(sheetName, cell("A", row), "Cumartesi Mesaisi (saat)")
	f.SetCellValue(sheetName, cell("B", row), result.SaturdayHours)
	row++
	f.SetCellValue(sheetName, cell("A", row), "Pazar Mesaisi (saat)")
	f.SetCellValue(sheetName, cell("B", row), result.SundayHours)
	row++
	f.SetCellValue(sheetName, cell("A", row), "Resmi Tatil Mesaisi (saat)")
	f.SetCellValue(sheetName, cell("B", row), result.HolidayHours)
	row++

	if fees != nil {
		row++
		f.SetCellValue(sheetName, cell("A", row), "Hesaplanan Ücretler")
		f.SetCellStyle(sheetName, cell("A", row), cell("A", row), boldStyle)
		row++
		feeRows := []struct {
			label string
			value float64
		}{
			{"Günlük Servis Ücreti", fees.DailyServiceFee},
			{"Standart Servis Ücreti", fees.StandardFee},
			{"Cumartesi Mesai Ücreti", fees.SaturdayFee},
			{"Pazar Mesai Ücreti", fees.SundayFee},
			{"Resmi Tatil Mesai Ücreti", fees.HolidayFee},
			{"Genel Toplam", fees.TotalFee},
		}
		for _, fr := range feeRows {
			f.SetCellValue(sheetName, cell("A", row), fr.label)
			f.SetCellValue(sheetName, cell("B", row), calc.FormatCurrency(fr.value))
			row++
		}
	}

	if len(report.Advances) > 0 {
		row++
		f.SetCellValue(sheetName, cell("A", row), "Avanslar")
		f.SetCellStyle(sheetName, cell("A", row), cell("A", row), boldStyle)
		row++
		for _, a := range report.Advances {
			f.SetCellValue(sheetName, cell("A", row), fmt.Sprintf("%.2f %s", a.Amount, a.Currency))
			if a.Note != nil {
				f.SetCellValue(sheetName, cell("B", row), *a.Note)
			}
			row++
		}
	}
	if len(report.Expenses) > 0 {
		row++
		f.SetCellValue(sheetName, cell("A", row), "Masraflar")
		f.SetCellStyle(sheetName, cell("A", row), cell("A", row), boldStyle)
		row++
		for _, e := range report.Expenses {
			f.SetCellValue(sheetName, cell("A", row), fmt.Sprintf("%.2f %s", e.Amount, e.Currency))
			f.SetCellValue(sheetName, cell("B", row), e.Description)
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write report workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("servis_raporu_%s_%s.xlsx", report.SiteName, start.String())
	return buf, filename, nil
}

func (s *exportService) ExportHolidaysICS(ctx context.Context, year int) (*bytes.Buffer, string, error) {
	if year == 0 {
		year = Today().Year
	}
	records, err := s.repo.Holiday.ListYear(ctx, year)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//raporermak//Resmi Tatil Takvimi//TR")

	for i := range records {
		h := &records[i]
		event := cal.AddEvent(fmt.Sprintf("%s@raporermak", h.HolidayID))
		event.SetCreatedTime(h.CreatedAt)
		event.SetDtStampTime(h.UpdatedAt)
		event.SetAllDayStartAt(h.Date)
		event.SetAllDayEndAt(h.Date.AddDate(0, 0, 1))
		summary := h.Description
		if h.IsHalfDay {
			summary += " (Yarım Gün)"
		}
		event.SetSummary(summary)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("resmi_tatiller_%d.ics", year)
	return buf, filename, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
