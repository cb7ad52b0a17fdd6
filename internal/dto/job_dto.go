package dto

import "time"

type JobRequest struct {
	Title        string     `json:"title" validate:"required,max=200"`
	Company      string     `json:"company" validate:"max=200"`
	Description  string     `json:"description" validate:"max=20000"`
	Type         string     `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	SalaryRange  string     `json:"salary_range" validate:"max=100"`
	City         string     `json:"city" validate:"max=100"`
	State        string     `json:"state" validate:"max=100"`
	PreferredMOS []string   `json:"preferred_mos" validate:"max=50,dive,max=20"`
	Clearance    string     `json:"security_clearance" validate:"max=50"`
	Skills       []string   `json:"skills" validate:"max=100,dive,max=100"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type JobQuery struct {
	Query     string `query:"q"`
	City      string `query:"city"`
	State     string `query:"state"`
	Type      string `query:"type"`
	Clearance string `query:"clearance"`
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
}
