package hiring_test

import (
	"testing"

	"github.com/vetlink/vetlink-api/internal/hiring"
)

var allStatuses = []hiring.Status{
	hiring.StatusApplied,
	hiring.StatusReviewing,
	hiring.StatusInterview,
	hiring.StatusOffer,
	hiring.StatusHired,
	hiring.StatusRejected,
	hiring.StatusWithdrawn,
}

// ── ParseStatus ────────────────────────────────────────────────────────────

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := hiring.ParseStatus(string(s))
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseStatus(%q) = %q", s, got)
		}
	}
	for _, bad := range []string{"", "APPLIED", "pending"} {
		if _, err := hiring.ParseStatus(bad); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", bad)
		}
	}
}

// ── Employer transitions ──────────────────────────────────────────────────

func TestCanTransition_EmployerForward(t *testing.T) {
	cases := []struct{ from, to hiring.Status }{
		{hiring.StatusApplied, hiring.StatusReviewing},
		{hiring.StatusReviewing, hiring.StatusInterview},
		{hiring.StatusInterview, hiring.StatusOffer},
		{hiring.StatusOffer, hiring.StatusHired},
	}
	for _, c := range cases {
		if !hiring.CanTransition(hiring.ActorEmployer, c.from, c.to) {
			t.Errorf("employer %s → %s should be allowed", c.from, c.to)
		}
	}
}

func TestCanTransition_EmployerRejectFromAnyOpenState(t *testing.T) {
	for _, from := range allStatuses {
		got := hiring.CanTransition(hiring.ActorEmployer, from, hiring.StatusRejected)
		if got == hiring.IsTerminal(from) {
			t.Errorf("employer %s → rejected = %v", from, got)
		}
	}
}

func TestCanTransition_EmployerSkipAndBackward(t *testing.T) {
	cases := []struct{ from, to hiring.Status }{
		{hiring.StatusApplied, hiring.StatusInterview},
		{hiring.StatusApplied, hiring.StatusHired},
		{hiring.StatusReviewing, hiring.StatusOffer},
		{hiring.StatusOffer, hiring.StatusInterview},
		{hiring.StatusInterview, hiring.StatusApplied},
		{hiring.StatusApplied, hiring.StatusWithdrawn},
	}
	for _, c := range cases {
		if hiring.CanTransition(hiring.ActorEmployer, c.from, c.to) {
			t.Errorf("employer %s → %s should be forbidden", c.from, c.to)
		}
	}
}

// ── Veteran transitions ───────────────────────────────────────────────────

func TestCanTransition_VeteranOnlyWithdraws(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := to == hiring.StatusWithdrawn && !hiring.IsTerminal(from)
			if got := hiring.CanTransition(hiring.ActorVeteran, from, to); got != want {
				t.Errorf("veteran %s → %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_UnknownActor(t *testing.T) {
	if hiring.CanTransition(hiring.Actor("admin"), hiring.StatusApplied, hiring.StatusReviewing) {
		t.Error("unknown actor should not move applications")
	}
}
