package dto

import "github.com/barisbulutdemir/raporermak/internal/calc"

// ── calculation preview DTOs ──

// PreviewRequest classifies a date range against the holiday calendar
// without persisting anything. MonthlySalary overrides the caller's
// configured salary when present.
type PreviewRequest struct {
	StartDate     string   `json:"start_date"     binding:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date"       binding:"required,datetime=2006-01-02"`
	ExcludedDates []string `json:"excluded_dates" binding:"omitempty,dive,datetime=2006-01-02"`
	MonthlySalary *float64 `json:"monthly_salary" binding:"omitempty,gte=0"`
}

// PreviewResponse carries the classification and, when a salary is known,
// the priced breakdown.
type PreviewResponse struct {
	Calculation calc.CalculationResult `json:"calculation"`
	Fees        *calc.FeeBreakdown     `json:"fees,omitempty"`
}
