package model

import "time"

// OfficialHoliday is one official non-working calendar date. IsHalfDay
// marks "Arife" eves where only the afternoon is off. The date column
// carries a unique index; a calendar must never hold two records for the
// same day.
type OfficialHoliday struct {
	HolidayID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"holiday_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex"                 json:"date"`
	Description string    `gorm:"type:varchar(200);not null"                     json:"description"`
	IsHalfDay   bool      `gorm:"not null;default:false"                         json:"is_half_day"`
	BaseModel
}

// TableName maps to the official_holidays table.
func (OfficialHoliday) TableName() string { return "official_holidays" }
