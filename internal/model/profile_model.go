package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VeteranProfile struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Headline  string         `gorm:"type:varchar(200)" json:"headline"`
	Summary   string         `gorm:"type:text" json:"summary"`
	MOS       string         `gorm:"column:mos_code;type:varchar(20)" json:"mos_code"`
	Clearance string         `gorm:"type:varchar(50);default:'None'" json:"security_clearance"`
	Skills    pq.StringArray `gorm:"type:text[]" json:"skills"`
	City      string         `gorm:"type:varchar(100)" json:"city"`
	State     string         `gorm:"type:varchar(100)" json:"state"`

	Branch             string `gorm:"type:varchar(50)" json:"branch"`
	Rank               string `gorm:"type:varchar(100)" json:"rank"`
	YearsOfService     int    `json:"years_of_service"`
	LeadershipRole     string `gorm:"type:varchar(100)" json:"leadership_role"`
	Awards             string `gorm:"type:text" json:"awards"`
	ServiceDescription string `gorm:"type:text" json:"service_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *VeteranProfile) Location() string {
	return joinLocation(p.City, p.State)
}

type EmployerProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string    `gorm:"type:varchar(200);not null" json:"company_name"`
	Website     string    `gorm:"type:varchar(255)" json:"website"`
	Industry    string    `gorm:"type:varchar(100)" json:"industry"`
	City        string    `gorm:"type:varchar(100)" json:"city"`
	State       string    `gorm:"type:varchar(100)" json:"state"`
	About       string    `gorm:"type:text" json:"about"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
