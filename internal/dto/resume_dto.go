package dto

import (
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/resume"
)

type ParseResumeResponse struct {
	Record  resume.MilitaryRecord `json:"record"`
	Applied bool                  `json:"applied"`
	Profile *model.VeteranProfile `json:"profile,omitempty"`
}
