package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/matching"
	"github.com/vetlink/vetlink-api/internal/model"
)

type MatchUsecase struct {
	jobs     JobRepository
	profiles ProfileRepository
}

func NewMatchUsecase(jobs JobRepository, profiles ProfileRepository) *MatchUsecase {
	return &MatchUsecase{jobs: jobs, profiles: profiles}
}

// MatchesForVeteran ranks every active posting for the veteran. A veteran
// without a profile is scored as an empty candidate.
func (uc *MatchUsecase) MatchesForVeteran(ctx context.Context, userID uuid.UUID) ([]dto.JobMatch, error) {
	candidate := matching.Candidate{Clearance: defaultClearance}
	profile, err := uc.profiles.FindVeteranProfile(ctx, userID)
	switch {
	case err == nil:
		candidate = candidateFromProfile(profile)
	case !errors.Is(fromRepository(err), ErrNotFound):
		return nil, err
	}

	postings, err := uc.jobs.ListActiveJobs(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.JobPosting, len(postings))
	jobs := make([]matching.Job, 0, len(postings))
	for i := range postings {
		j := jobFromPosting(&postings[i])
		byID[j.ID] = &postings[i]
		jobs = append(jobs, j)
	}

	ranked := matching.Rank(candidate, jobs)
	out := make([]dto.JobMatch, 0, len(ranked))
	for _, r := range ranked {
		p := byID[r.Job.ID]
		out = append(out, dto.JobMatch{
			JobID:        p.ID,
			Title:        p.Title,
			Company:      p.Company,
			Location:     p.Location(),
			Type:         string(p.Type),
			SalaryRange:  p.SalaryRange,
			PostedAt:     p.CreatedAt,
			Score:        r.Result.Score,
			MatchDetails: r.Result.Details,
		})
	}
	return out, nil
}

// CandidatesForJob ranks veteran profiles for one of the employer's postings.
func (uc *MatchUsecase) CandidatesForJob(ctx context.Context, employerID, jobID uuid.UUID) ([]dto.CandidateMatch, error) {
	posting, err := uc.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if posting.EmployerID != employerID {
		return nil, ErrForbidden
	}

	profiles, err := uc.profiles.ListVeteranProfiles(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.Candidate, len(profiles))
	for i := range profiles {
		candidates[i] = candidateFromProfile(&profiles[i])
	}

	ranked := matching.RankCandidates(jobFromPosting(posting), candidates)
	out := make([]dto.CandidateMatch, 0, len(ranked))
	for _, r := range ranked {
		p := &profiles[r.Index]
		out = append(out, dto.CandidateMatch{
			UserID:       p.UserID,
			Headline:     p.Headline,
			MOS:          p.MOS,
			Clearance:    p.Clearance,
			Location:     p.Location(),
			Score:        r.Result.Score,
			MatchDetails: r.Result.Details,
		})
	}
	return out, nil
}

func candidateFromProfile(p *model.VeteranProfile) matching.Candidate {
	return matching.Candidate{
		MOS:       p.MOS,
		Clearance: p.Clearance,
		Skills:    p.Skills,
		City:      p.City,
		State:     p.State,
	}
}

func jobFromPosting(p *model.JobPosting) matching.Job {
	return matching.Job{
		ID:           p.ID.String(),
		PreferredMOS: p.PreferredMOS,
		Clearance:    p.Clearance,
		Skills:       p.Skills,
		City:         p.City,
		State:        p.State,
	}
}
