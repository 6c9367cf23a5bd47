package dto

// ── official holiday DTOs ──

// SaveHolidayRequest creates or updates an official holiday.
type SaveHolidayRequest struct {
	Date        string `json:"date"        binding:"required,datetime=2006-01-02"`
	Description string `json:"description" binding:"required,min=1,max=200"`
	IsHalfDay   bool   `json:"is_half_day"`
}

// HolidayResponse is one official holiday.
type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	IsHalfDay   bool   `json:"is_half_day"`
}

// SeedResponse reports the outcome of a calendar seed run.
type SeedResponse struct {
	Seeded int `json:"seeded"`
}
