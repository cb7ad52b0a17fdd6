package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/hiring"
	"gorm.io/datatypes"
)

// StatusChange is one entry of an application's history log.
type StatusChange struct {
	From hiring.Status `json:"from"`
	To   hiring.Status `json:"to"`
	At   time.Time     `json:"at"`
	By   uuid.UUID     `json:"by"`
}

type Application struct {
	ID          uuid.UUID                         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobID       uuid.UUID                         `gorm:"type:uuid;uniqueIndex:idx_application_job_veteran;not null" json:"job_id"`
	VeteranID   uuid.UUID                         `gorm:"type:uuid;uniqueIndex:idx_application_job_veteran;index;not null" json:"veteran_id"`
	Status      hiring.Status                     `gorm:"type:varchar(20);index;not null" json:"status"`
	CoverLetter string                            `gorm:"type:text" json:"cover_letter"`
	MatchScore  int                               `json:"match_score"`
	History     datatypes.JSONSlice[StatusChange] `gorm:"type:jsonb" json:"history"`
	CreatedAt   time.Time                         `json:"created_at"`
	UpdatedAt   time.Time                         `json:"updated_at"`
}
