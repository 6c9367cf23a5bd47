package calc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed domain parameters. A month is taken as 30 calendar days and 225
// working hours (30 × 7.5). Saturday overtime pays 1.5×, Sunday and
// official holiday overtime pay 2.0×.
const (
	monthlyDays         = 30
	monthlyWorkingHours = 225
	saturdayMultiplier  = 1.5
	sundayMultiplier    = 2.0
)

// FeeBreakdown holds the monetary figures derived from one report.
// Amounts are unrounded; formatting is the rendering layer's job.
type FeeBreakdown struct {
	HourlyRate      float64 `json:"hourly_rate"`
	DailyRate       float64 `json:"daily_rate"`
	DailyServiceFee float64 `json:"daily_service_fee"`
	StandardFee     float64 `json:"standard_fee"`
	SaturdayFee     float64 `json:"saturday_fee"`
	SundayFee       float64 `json:"sunday_fee"`
	HolidayFee      float64 `json:"holiday_fee"`
	TotalFee        float64 `json:"total_fee"`
	Currency        string  `json:"currency"`
}

// CalculateServiceFees converts classification aggregates and a monthly
// salary into a fee breakdown. A missing, zero or negative salary is a
// normal state (salary not configured yet) and yields an all-zero
// breakdown, never an error.
func CalculateServiceFees(monthlySalary, workedDays, saturdayHours, sundayHours, holidayHours float64) FeeBreakdown {
	if monthlySalary <= 0 {
		return FeeBreakdown{Currency: "TL"}
	}

	hourlyRate := monthlySalary / monthlyWorkingHours
	dailyRate := monthlySalary / monthlyDays

	// The service-day fee is defined as half the nominal daily rate.
	dailyServiceFee := dailyRate / 2

	standardFee := dailyServiceFee * workedDays
	saturdayFee := hourlyRate * saturdayMultiplier * saturdayHours
	sundayFee := hourlyRate * sundayMultiplier * sundayHours
	holidayFee := hourlyRate * sundayMultiplier * holidayHours

	return FeeBreakdown{
		HourlyRate:      hourlyRate,
		DailyRate:       dailyRate,
		DailyServiceFee: dailyServiceFee,
		StandardFee:     standardFee,
		SaturdayFee:     saturdayFee,
		SundayFee:       sundayFee,
		HolidayFee:      holidayFee,
		TotalFee:        standardFee + saturdayFee + sundayFee + holidayFee,
		Currency:        "TL",
	}
}

var trPrinter = message.NewPrinter(language.Turkish)

// FormatCurrency renders an amount the Turkish way, e.g. "6.133,33 TL".
func FormatCurrency(amount float64) string {
	return trPrinter.Sprintf("%.2f TL", amount)
}
