package model

import "time"

// ServiceReport is one worker's record of a site assignment over an
// inclusive date range. The stored aggregates (working days, overtime
// hours) are recomputed server-side from the range, the excluded dates
// and the holiday calendar whenever the report is written.
type ServiceReport struct {
	ReportID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`
	UserID           string    `gorm:"type:uuid;not null"                             json:"user_id"`
	SiteName         string    `gorm:"type:varchar(200);not null"                     json:"site_name"`
	SiteColor        *string   `gorm:"type:varchar(20)"                               json:"site_color,omitempty"`
	StartDate        time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate          time.Time `gorm:"type:date;not null"                             json:"end_date"`
	ExcludedDates    DateList  `gorm:"type:jsonb"                                     json:"excluded_dates,omitempty"`
	SummaryNotes     *string   `gorm:"type:text"                                      json:"summary_notes,omitempty"`
	WorkerSignature  *string   `gorm:"type:text"                                      json:"-"`
	TotalWorkingDays int       `gorm:"not null;default:0"                             json:"total_working_days"`
	ExtraTime50      float64   `gorm:"not null;default:0"                             json:"extra_time_50"`  // Saturday hours, 1.5x
	ExtraTime100     float64   `gorm:"not null;default:0"                             json:"extra_time_100"` // Sunday hours, 2.0x
	HolidayTime100   float64   `gorm:"not null;default:0"                             json:"holiday_time_100"`
	VersionedModel

	User     *User     `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
	Advances []Advance `gorm:"foreignKey:ReportID"                 json:"advances,omitempty"`
	Expenses []Expense `gorm:"foreignKey:ReportID"                 json:"expenses,omitempty"`
}

// TableName maps to the service_reports table.
func (ServiceReport) TableName() string { return "service_reports" }

// Advance is a cash advance handed to the worker during the assignment.
type Advance struct {
	AdvanceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"advance_id"`
	ReportID  string    `gorm:"type:uuid;not null"                             json:"report_id"`
	Amount    float64   `gorm:"not null;default:0"                             json:"amount"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'TL'"          json:"currency"` // TL | USD | EUR
	Note      *string   `gorm:"type:varchar(500)"                              json:"note,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName maps to the advances table.
func (Advance) TableName() string { return "advances" }

// Expense is a reimbursable cost incurred during the assignment.
type Expense struct {
	ExpenseID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"expense_id"`
	ReportID    string    `gorm:"type:uuid;not null"                             json:"report_id"`
	Amount      float64   `gorm:"not null;default:0"                             json:"amount"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'TL'"          json:"currency"`
	Description string    `gorm:"type:varchar(500);not null"                     json:"description"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName maps to the expenses table.
func (Expense) TableName() string { return "expenses" }
