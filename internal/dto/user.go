package dto

// ── user module DTOs ──

// UserResponse is the public user view.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Approved bool   `json:"approved"`
}

// ProfileResponse is the caller's own profile, including settings the
// public view hides.
type ProfileResponse struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Approved      bool     `json:"approved"`
	MonthlySalary *float64 `json:"monthly_salary,omitempty"`
	HasSignature  bool     `json:"has_signature"`
	CreatedAt     string   `json:"created_at"`
}

// UpdateProfileRequest updates the caller's own settings. All fields are
// optional; only present fields are written.
type UpdateProfileRequest struct {
	Name          *string  `json:"name"           binding:"omitempty,min=2,max=100"`
	MonthlySalary *float64 `json:"monthly_salary" binding:"omitempty,gte=0"`
	Signature     *string  `json:"signature"` // base64 PNG; empty string clears it
}
