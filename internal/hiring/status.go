// Package hiring defines the status machine for job applications.
//
// Valid status graph:
//
//	applied ──► reviewing ──► interview ──► offer ──► hired
//	   │            │             │           │
//	   ├────────────┴─────────────┴───────────┴──► rejected   (employer)
//	   └────────────┴─────────────┴───────────┴──► withdrawn  (veteran)
//
// hired, rejected and withdrawn are terminal.
package hiring

import "fmt"

type Status string

const (
	StatusApplied   Status = "applied"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// Actor is the side of the marketplace requesting a transition.
type Actor string

const (
	ActorEmployer Actor = "employer"
	ActorVeteran  Actor = "veteran"
)

var forward = map[Status]Status{
	StatusApplied:   StatusReviewing,
	StatusReviewing: StatusInterview,
	StatusInterview: StatusOffer,
	StatusOffer:     StatusHired,
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusApplied, StatusReviewing, StatusInterview, StatusOffer,
		StatusHired, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTerminal reports whether no transition can leave s.
func IsTerminal(s Status) bool {
	return s == StatusHired || s == StatusRejected || s == StatusWithdrawn
}

// CanTransition reports whether actor may move an application from → to.
// Employers advance one step at a time or reject; veterans may only withdraw.
func CanTransition(actor Actor, from, to Status) bool {
	if IsTerminal(from) {
		return false
	}
	switch actor {
	case ActorEmployer:
		return to == StatusRejected || forward[from] == to
	case ActorVeteran:
		return to == StatusWithdrawn
	}
	return false
}
