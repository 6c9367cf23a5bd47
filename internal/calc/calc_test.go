package calc

import (
	"reflect"
	"testing"
	"time"
)

// Kurban Bayramı week 2026: Mon 25th normal, Tue 26th arife (half),
// Wed-Sat 27th-30th full holiday, Sun 31st.
func kurbanWeekHolidays() []Holiday {
	holidays := []Holiday{
		{Date: NewDate(2026, time.May, 26), Description: "Kurban Bayramı Arifesi", IsHalfDay: true},
	}
	for day := 27; day <= 30; day++ {
		holidays = append(holidays, Holiday{
			Date:        NewDate(2026, time.May, day),
			Description: "Kurban Bayramı",
		})
	}
	return holidays
}

func TestCalculateServiceReport_KurbanWeek(t *testing.T) {
	start := NewDate(2026, time.May, 25)
	end := NewDate(2026, time.May, 31)

	result := CalculateServiceReport(start, end, nil, kurbanWeekHolidays())

	if len(result.Details) != 7 {
		t.Fatalf("expected 7 details, got %d", len(result.Details))
	}

	wantTypes := []DayType{DayNormal, DayHolidayHalf, DayHoliday, DayHoliday, DayHoliday, DayHoliday, DaySunday}
	for i, want := range wantTypes {
		if got := result.Details[i].Type; got != want {
			t.Errorf("day %d (%s): expected %s, got %s", i, result.Details[i].Date, want, got)
		}
	}

	if result.NormalDays != 1 {
		t.Errorf("expected NormalDays=1, got %d", result.NormalDays)
	}
	if result.HolidayHours != 36 {
		t.Errorf("expected HolidayHours=36, got %v", result.HolidayHours)
	}
	if result.SundayHours != 8 {
		t.Errorf("expected SundayHours=8, got %v", result.SundayHours)
	}
	if result.SaturdayHours != 0 {
		t.Errorf("expected SaturdayHours=0, got %v", result.SaturdayHours)
	}

	arife := result.Details[1]
	if arife.Hours != 4 {
		t.Errorf("arife day should contribute 4 hours, got %v", arife.Hours)
	}
	if arife.Description != "Kurban Bayramı Arifesi" {
		t.Errorf("arife description should be the holiday label, got %q", arife.Description)
	}
}

func TestCalculateServiceReport_SingleSaturday(t *testing.T) {
	day := NewDate(2026, time.June, 6) // a Saturday

	result := CalculateServiceReport(day, day, nil, nil)

	if len(result.Details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(result.Details))
	}
	if result.Details[0].Type != DaySaturday {
		t.Errorf("expected Saturday, got %s", result.Details[0].Type)
	}
	if result.SaturdayHours != 8 {
		t.Errorf("expected SaturdayHours=8, got %v", result.SaturdayHours)
	}
	if result.NormalDays != 0 {
		t.Errorf("expected NormalDays=0, got %d", result.NormalDays)
	}
	if result.Details[0].DayName != "Cumartesi" {
		t.Errorf("expected day name Cumartesi, got %s", result.Details[0].DayName)
	}
}

func TestCalculateServiceReport_HolidayOnSunday(t *testing.T) {
	sunday := NewDate(2026, time.May, 31)
	holidays := []Holiday{{Date: sunday, Description: "Resmi Tatil"}}

	result := CalculateServiceReport(sunday, sunday, nil, holidays)

	// A full holiday beats the weekend check.
	if result.Details[0].Type != DayHoliday {
		t.Fatalf("expected Holiday, got %s", result.Details[0].Type)
	}
	if result.HolidayHours != 8 {
		t.Errorf("expected HolidayHours=8, got %v", result.HolidayHours)
	}
	if result.SundayHours != 0 {
		t.Errorf("expected SundayHours=0, got %v", result.SundayHours)
	}
}

func TestCalculateServiceReport_ExcludedBeatsHoliday(t *testing.T) {
	day := NewDate(2026, time.May, 27)
	holidays := []Holiday{{Date: day, Description: "Kurban Bayramı"}}

	result := CalculateServiceReport(day, day, []Date{day}, holidays)

	if result.Details[0].Type != DayExcluded {
		t.Fatalf("excluded day must never count as holiday, got %s", result.Details[0].Type)
	}
	if result.Details[0].Hours != 0 {
		t.Errorf("excluded day should contribute 0 hours, got %v", result.Details[0].Hours)
	}
	if result.Details[0].Description != "Çalışılmadı" {
		t.Errorf("unexpected description %q", result.Details[0].Description)
	}
	if result.HolidayHours != 0 {
		t.Errorf("expected HolidayHours=0, got %v", result.HolidayHours)
	}
}

func TestCalculateServiceReport_InvertedRange(t *testing.T) {
	start := NewDate(2026, time.May, 25)
	end := start.AddDays(-1)

	result := CalculateServiceReport(start, end, nil, nil)

	if len(result.Details) != 0 {
		t.Errorf("expected empty details, got %d", len(result.Details))
	}
	if result.NormalDays != 0 || result.SaturdayHours != 0 || result.SundayHours != 0 || result.HolidayHours != 0 {
		t.Errorf("expected all aggregates zero, got %+v", result)
	}
}

func TestCalculateServiceReport_CoversEveryDayOnce(t *testing.T) {
	start := NewDate(2026, time.January, 1)
	end := NewDate(2026, time.March, 31) // 90 days, crosses a month of length 28

	result := CalculateServiceReport(start, end, nil, nil)

	if len(result.Details) != 90 {
		t.Fatalf("expected 90 details, got %d", len(result.Details))
	}

	// chronological, no gaps, no repeats
	for i, d := range result.Details {
		if want := start.AddDays(i); d.Date != want {
			t.Fatalf("detail %d: expected %s, got %s", i, want, d.Date)
		}
	}
}

func TestCalculateServiceReport_AggregatesMatchDetails(t *testing.T) {
	start := NewDate(2026, time.May, 1)
	end := NewDate(2026, time.June, 15)
	excluded := []Date{
		NewDate(2026, time.May, 4),
		NewDate(2026, time.May, 27), // also a holiday
	}

	result := CalculateServiceReport(start, end, excluded, kurbanWeekHolidays())

	var saturday, sunday, holiday float64
	normal := 0
	for _, d := range result.Details {
		switch d.Type {
		case DaySaturday:
			saturday += d.Hours
		case DaySunday:
			sunday += d.Hours
		case DayHoliday, DayHolidayHalf:
			holiday += d.Hours
		case DayNormal:
			normal++
		case DayExcluded:
			// contributes nothing
		default:
			t.Fatalf("unknown day type %q", d.Type)
		}
	}

	if saturday != result.SaturdayHours {
		t.Errorf("SaturdayHours=%v but details sum to %v", result.SaturdayHours, saturday)
	}
	if sunday != result.SundayHours {
		t.Errorf("SundayHours=%v but details sum to %v", result.SundayHours, sunday)
	}
	if holiday != result.HolidayHours {
		t.Errorf("HolidayHours=%v but details sum to %v", result.HolidayHours, holiday)
	}
	if normal != result.NormalDays {
		t.Errorf("NormalDays=%d but details count %d", result.NormalDays, normal)
	}
}

func TestCalculateServiceReport_DuplicateHolidayFirstWins(t *testing.T) {
	day := NewDate(2026, time.October, 28)
	holidays := []Holiday{
		{Date: day, Description: "29 Ekim Arifesi", IsHalfDay: true},
		{Date: day, Description: "Mükerrer Kayıt", IsHalfDay: false},
	}

	result := CalculateServiceReport(day, day, nil, holidays)

	if result.Details[0].Type != DayHolidayHalf {
		t.Errorf("first record should win, got %s", result.Details[0].Type)
	}
	if result.Details[0].Description != "29 Ekim Arifesi" {
		t.Errorf("first record should win, got %q", result.Details[0].Description)
	}
}

func TestCalculateServiceReport_Deterministic(t *testing.T) {
	start := NewDate(2026, time.May, 25)
	end := NewDate(2026, time.May, 31)
	excluded := []Date{NewDate(2026, time.May, 25)}

	a := CalculateServiceReport(start, end, excluded, kurbanWeekHolidays())
	b := CalculateServiceReport(start, end, excluded, kurbanWeekHolidays())

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs must produce identical results")
	}
}
