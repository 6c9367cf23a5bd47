package dto

import "github.com/barisbulutdemir/raporermak/internal/calc"

// ── service report DTOs ──

// AdvanceInput is one cash advance line on a report form.
type AdvanceInput struct {
	Amount   float64 `json:"amount"   binding:"gte=0"`
	Currency string  `json:"currency" binding:"required,oneof=TL USD EUR"`
	Note     *string `json:"note"     binding:"omitempty,max=500"`
}

// ExpenseInput is one expense line on a report form.
type ExpenseInput struct {
	Amount      float64 `json:"amount"      binding:"gte=0"`
	Currency    string  `json:"currency"    binding:"required,oneof=TL USD EUR"`
	Description string  `json:"description" binding:"required,max=500"`
}

// SaveReportRequest creates or fully replaces a service report. Dates use
// the "2006-01-02" form. The overtime aggregates are derived server-side;
// clients never submit them.
type SaveReportRequest struct {
	SiteName      string         `json:"site_name"      binding:"required,min=1,max=200"`
	SiteColor     *string        `json:"site_color"     binding:"omitempty,max=20"`
	StartDate     string         `json:"start_date"     binding:"required,datetime=2006-01-02"`
	EndDate       string         `json:"end_date"       binding:"required,datetime=2006-01-02"`
	ExcludedDates []string       `json:"excluded_dates" binding:"omitempty,dive,datetime=2006-01-02"`
	Advances      []AdvanceInput `json:"advances"       binding:"omitempty,dive"`
	Expenses      []ExpenseInput `json:"expenses"       binding:"omitempty,dive"`
	SummaryNotes  *string        `json:"summary_notes"`
	Signature     *string        `json:"signature"` // base64 PNG; nil uses the profile default
}

// AdvanceResponse is one stored advance line.
type AdvanceResponse struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Note     *string `json:"note,omitempty"`
}

// ExpenseResponse is one stored expense line.
type ExpenseResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

// ReportSummaryResponse is the list view of a report.
type ReportSummaryResponse struct {
	ID               string  `json:"id"`
	SiteName         string  `json:"site_name"`
	SiteColor        *string `json:"site_color,omitempty"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	TotalWorkingDays int     `json:"total_working_days"`
	ExtraTime50      float64 `json:"extra_time_50"`
	ExtraTime100     float64 `json:"extra_time_100"`
	HolidayTime100   float64 `json:"holiday_time_100"`
	CreatedAt        string  `json:"created_at"`
}

// ReportResponse is the full report view, including the recomputed
// day-by-day classification.
type ReportResponse struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	SiteName         string                 `json:"site_name"`
	SiteColor        *string                `json:"site_color,omitempty"`
	StartDate        string                 `json:"start_date"`
	EndDate          string                 `json:"end_date"`
	ExcludedDates    []string               `json:"excluded_dates,omitempty"`
	SummaryNotes     *string                `json:"summary_notes,omitempty"`
	TotalWorkingDays int                    `json:"total_working_days"`
	ExtraTime50      float64                `json:"extra_time_50"`
	ExtraTime100     float64                `json:"extra_time_100"`
	HolidayTime100   float64                `json:"holiday_time_100"`
	Advances         []AdvanceResponse      `json:"advances"`
	Expenses         []ExpenseResponse      `json:"expenses"`
	Calculation      calc.CalculationResult `json:"calculation"`
	Fees             *calc.FeeBreakdown     `json:"fees,omitempty"` // absent when no salary is configured
	Version          int                    `json:"version"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}
