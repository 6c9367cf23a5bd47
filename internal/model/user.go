package model

import "time"

// User roles.
const (
	RoleWorker = "worker"
	RoleAdmin  = "admin"
)

// User is a field-service worker account. New accounts stay unapproved
// until an admin confirms them.
type User struct {
	UserID        string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username      string     `gorm:"type:varchar(50);not null"                      json:"username"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"                     json:"-"`
	Name          string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Role          string     `gorm:"type:varchar(20);not null;default:'worker'"     json:"role"`
	Approved      bool       `gorm:"not null;default:false"                         json:"approved"`
	ApprovedBy    *string    `gorm:"type:varchar(100)"                              json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	MonthlySalary *float64   `json:"monthly_salary,omitempty"`
	Signature     *string    `gorm:"type:text" json:"-"` // base64 PNG, used on report PDFs
	VersionedModel
}

// TableName maps to the users table.
func (User) TableName() string { return "users" }
