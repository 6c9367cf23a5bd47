package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User    UserRepository
	Report  ReportRepository
	Holiday HolidayRepository
}

// NewRepository wires the GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:    NewUserRepo(db),
		Report:  NewReportRepo(db),
		Holiday: NewHolidayRepo(db),
	}
}
