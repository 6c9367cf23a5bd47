// Package calc implements the day-classification and service-fee engine.
// Both entry points are pure functions: they take calendar data in and
// return fresh result structures, so concurrent callers need no
// coordination and results may be memoized freely.
package calc

import "time"

// DayType classifies a single calendar day of a service report.
type DayType string

const (
	DayNormal      DayType = "Normal"
	DaySaturday    DayType = "Saturday"
	DaySunday      DayType = "Sunday"
	DayHoliday     DayType = "Holiday"
	DayHolidayHalf DayType = "HolidayHalf"
	DayExcluded    DayType = "Excluded"
)

// Holiday is one official non-working date as supplied by the holiday
// calendar. IsHalfDay marks "Arife" eves where only the afternoon is off.
type Holiday struct {
	Date        Date   `json:"date"`
	Description string `json:"description"`
	IsHalfDay   bool   `json:"is_half_day"`
}

// DayDetail is the classification of one day in the requested range.
type DayDetail struct {
	Date        Date    `json:"date"`
	DateLabel   string  `json:"date_label"` // "02.01.2006"
	DayName     string  `json:"day_name"`   // Turkish weekday name
	Type        DayType `json:"type"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

// CalculationResult aggregates a classification run.
type CalculationResult struct {
	NormalDays    int         `json:"normal_days"`
	SaturdayHours float64     `json:"saturday_hours"`
	SundayHours   float64     `json:"sunday_hours"`
	HolidayHours  float64     `json:"holiday_hours"`
	Details       []DayDetail `json:"details"`
}

// Hour contributions per category. Arife days count 4 holiday hours and
// no partial normal day; this mirrors the shipped payroll behavior and
// must not be changed without product sign-off.
const (
	fullDayHours = 8
	halfDayHours = 4
)

// CalculateServiceReport walks every day from start to end inclusive and
// classifies it. Precedence: excluded > holiday > Sunday > Saturday >
// normal weekday. An inverted range yields an empty result rather than an
// error; range validation belongs to the caller.
func CalculateServiceReport(start, end Date, excludedDates []Date, holidays []Holiday) CalculationResult {
	result := CalculationResult{Details: []DayDetail{}}
	if end.Before(start) {
		return result
	}

	excluded := make(map[Date]struct{}, len(excludedDates))
	for _, d := range excludedDates {
		excluded[d] = struct{}{}
	}

	// Index holidays up front instead of scanning the list per day.
	// First record wins on duplicate dates.
	holidayByDate := make(map[Date]Holiday, len(holidays))
	for _, h := range holidays {
		if _, seen := holidayByDate[h.Date]; !seen {
			holidayByDate[h.Date] = h
		}
	}

	for day := start; !day.After(end); day = day.AddDays(1) {
		detail := DayDetail{
			Date:      day,
			DateLabel: day.Label(),
			DayName:   day.DayName(),
		}

		holiday, isHoliday := holidayByDate[day]

		switch {
		case containsDate(excluded, day):
			detail.Type = DayExcluded
			detail.Hours = 0
			detail.Description = "Çalışılmadı"

		case isHoliday && holiday.IsHalfDay:
			detail.Type = DayHolidayHalf
			detail.Hours = halfDayHours
			detail.Description = holiday.Description
			result.HolidayHours += halfDayHours

		case isHoliday:
			detail.Type = DayHoliday
			detail.Hours = fullDayHours
			detail.Description = holiday.Description
			result.HolidayHours += fullDayHours

		case day.Weekday() == time.Sunday:
			detail.Type = DaySunday
			detail.Hours = fullDayHours
			detail.Description = "Pazar Mesaisi"
			result.SundayHours += fullDayHours

		case day.Weekday() == time.Saturday:
			detail.Type = DaySaturday
			detail.Hours = fullDayHours
			detail.Description = "Cumartesi Mesaisi"
			result.SaturdayHours += fullDayHours

		default:
			detail.Type = DayNormal
			detail.Hours = 1 // counts as one service day, not overtime hours
			detail.Description = "Normal Çalışma"
			result.NormalDays++
		}

		result.Details = append(result.Details, detail)
	}

	return result
}

func containsDate(set map[Date]struct{}, d Date) bool {
	_, ok := set[d]
	return ok
}
