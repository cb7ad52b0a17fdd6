package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

const EmbeddingDimensions = 3072

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

type JobPosting struct {
	ID           uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployerID   uuid.UUID        `gorm:"type:uuid;index;not null" json:"employer_id"`
	Title        string           `gorm:"type:varchar(200);not null" json:"title"`
	Company      string           `gorm:"type:varchar(200)" json:"company"`
	Description  string           `gorm:"type:text" json:"description"`
	Type         JobType          `gorm:"type:varchar(20)" json:"type"`
	SalaryRange  string           `gorm:"type:varchar(100)" json:"salary_range"`
	City         string           `gorm:"type:varchar(100)" json:"city"`
	State        string           `gorm:"type:varchar(100)" json:"state"`
	PreferredMOS pq.StringArray   `gorm:"column:preferred_mos;type:text[]" json:"preferred_mos"`
	Clearance    string           `gorm:"type:varchar(50);default:'None'" json:"security_clearance"`
	Skills       pq.StringArray   `gorm:"type:text[]" json:"skills"`
	Active       bool             `gorm:"index;default:true" json:"active"`
	ExpiresAt    *time.Time       `json:"expires_at"`
	Embedding    *pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (j *JobPosting) TableName() string {
	return "jobs"
}

func (j *JobPosting) Location() string {
	return joinLocation(j.City, j.State)
}

// joinLocation formats "City, State", skipping blanks.
func joinLocation(city, state string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{city, state} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// EmbeddingText is the text fed to the embedding model for semantic search.
func (j *JobPosting) EmbeddingText() string {
	return strings.Join([]string{
		j.Title,
		j.Company,
		strings.Join(j.Skills, ", "),
		j.Description,
	}, "\n")
}
