package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository/repotest"
)

func TestMatchesForVeteran(t *testing.T) {
	jobs := &repotest.Jobs{}
	profiles := repotest.NewProfiles()
	veteran := uuid.New()
	profiles.Veterans[veteran] = &model.VeteranProfile{
		UserID:    veteran,
		MOS:       "11B",
		Clearance: "Secret",
		Skills:    []string{"Security"},
		City:      "San Diego",
		State:     "CA",
	}

	posted := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	add := func(p model.JobPosting) *model.JobPosting {
		p.ID = uuid.New()
		p.Active = true
		p.CreatedAt = posted
		jobs.Items = append(jobs.Items, &p)
		return &p
	}
	weak := add(model.JobPosting{Title: "Guard", State: "CA", Clearance: "Top Secret"})
	add(model.JobPosting{Title: "Pilot", Clearance: "Top Secret/SCI"})
	strong := add(model.JobPosting{
		Title:        "Security Lead",
		Company:      "Acme",
		Type:         model.JobTypeFullTime,
		SalaryRange:  "$80k",
		PreferredMOS: []string{"11B"},
		Clearance:    "Secret",
		Skills:       []string{"security"},
		City:         "san diego",
		State:        "CA",
	})
	closed := add(model.JobPosting{Title: "Closed", PreferredMOS: []string{"11B"}})
	closed.Active = false

	uc := NewMatchUsecase(jobs, profiles)
	got, err := uc.MatchesForVeteran(context.Background(), veteran)
	if err != nil {
		t.Fatalf("MatchesForVeteran: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(got), got)
	}
	first := got[0]
	if first.JobID != strong.ID || first.Score != 100 || !first.MatchDetails.MOSMatch {
		t.Errorf("first match = %+v", first)
	}
	if first.Location != "san diego, CA" || first.Company != "Acme" || first.Type != "full-time" || !first.PostedAt.Equal(posted) {
		t.Errorf("job fields not copied: %+v", first)
	}
	if got[1].JobID != weak.ID || got[1].Score != 5 {
		t.Errorf("second match = %+v", got[1])
	}
}

func TestMatchesForVeteran_NoProfile(t *testing.T) {
	jobs := &repotest.Jobs{}
	jobs.Items = append(jobs.Items,
		&model.JobPosting{ID: uuid.New(), Active: true, Clearance: "None"},
		&model.JobPosting{ID: uuid.New(), Active: true, Clearance: "Secret"},
	)

	got, err := NewMatchUsecase(jobs, repotest.NewProfiles()).MatchesForVeteran(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("MatchesForVeteran: %v", err)
	}
	if len(got) != 1 || got[0].Score != 20 {
		t.Fatalf("got %+v, want only the no-clearance posting", got)
	}
}

func TestCandidatesForJob(t *testing.T) {
	jobs := &repotest.Jobs{}
	profiles := repotest.NewProfiles()
	employer := uuid.New()
	job := &model.JobPosting{ID: uuid.New(), EmployerID: employer, PreferredMOS: []string{"25B"}, Clearance: "Secret", State: "TX"}
	jobs.Items = append(jobs.Items, job)

	ctx := context.Background()
	save := func(p model.VeteranProfile) uuid.UUID {
		p.UserID = uuid.New()
		_ = profiles.SaveVeteranProfile(ctx, &p)
		return p.UserID
	}
	partial := save(model.VeteranProfile{MOS: "25", State: "TX"})
	save(model.VeteranProfile{MOS: "68W", Clearance: "Confidential"})
	best := save(model.VeteranProfile{MOS: "25B", Clearance: "Secret", State: "tx"})

	uc := NewMatchUsecase(jobs, profiles)
	if _, err := uc.CandidatesForJob(ctx, uuid.New(), job.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger = %v, want ErrForbidden", err)
	}

	got, err := uc.CandidatesForJob(ctx, employer, job.ID)
	if err != nil {
		t.Fatalf("CandidatesForJob: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].UserID != best || got[0].Score != 55 {
		t.Errorf("best = %+v", got[0])
	}
	if got[1].UserID != partial || got[1].Score != 20 {
		t.Errorf("partial = %+v", got[1])
	}
}
