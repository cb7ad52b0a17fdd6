package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/matching"
)

// JobMatch is one entry of a veteran's ranked job list.
type JobMatch struct {
	JobID        uuid.UUID        `json:"jobId"`
	Title        string           `json:"title"`
	Company      string           `json:"company"`
	Location     string           `json:"location"`
	Type         string           `json:"type"`
	SalaryRange  string           `json:"salaryRange"`
	PostedAt     time.Time        `json:"postedAt"`
	Score        int              `json:"score"`
	MatchDetails matching.Details `json:"matchDetails"`
}

// CandidateMatch is one entry of a posting's ranked candidate list.
type CandidateMatch struct {
	UserID       uuid.UUID        `json:"userId"`
	Headline     string           `json:"headline"`
	MOS          string           `json:"mosCode"`
	Clearance    string           `json:"securityClearance"`
	Location     string           `json:"location"`
	Score        int              `json:"score"`
	MatchDetails matching.Details `json:"matchDetails"`
}
