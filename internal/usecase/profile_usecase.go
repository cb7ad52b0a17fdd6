package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/matching"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/resume"
	"github.com/vetlink/vetlink-api/internal/util"
)

const defaultClearance = "None"

type ProfileUsecase struct {
	profiles ProfileRepository
}

func NewProfileUsecase(profiles ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles}
}

func (uc *ProfileUsecase) GetVeteranProfile(ctx context.Context, userID uuid.UUID) (*model.VeteranProfile, error) {
	p, err := uc.profiles.FindVeteranProfile(ctx, userID)
	return p, fromRepository(err)
}

// SaveVeteranProfile creates or replaces the caller's profile.
func (uc *ProfileUsecase) SaveVeteranProfile(ctx context.Context, userID uuid.UUID, req dto.VeteranProfileRequest) (*model.VeteranProfile, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	clearance, err := normalizeClearance(req.Clearance)
	if err != nil {
		return nil, err
	}

	p, err := uc.loadOrNewVeteran(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.Headline = strings.TrimSpace(req.Headline)
	p.Summary = strings.TrimSpace(req.Summary)
	p.MOS = strings.ToUpper(strings.TrimSpace(req.MOS))
	p.Clearance = clearance
	p.Skills = cleanList(req.Skills)
	p.City = strings.TrimSpace(req.City)
	p.State = strings.TrimSpace(req.State)
	p.Branch = req.Branch
	p.Rank = req.Rank
	p.YearsOfService = req.YearsOfService
	p.LeadershipRole = req.LeadershipRole
	p.Awards = req.Awards
	p.ServiceDescription = req.ServiceDescription

	if err := uc.profiles.SaveVeteranProfile(ctx, p); err != nil {
		return nil, fromRepository(err)
	}
	return p, nil
}

// ApplyMilitaryRecord merges an extracted service record into the veteran's
// profile, creating the profile when needed. Detected fields overwrite the
// stored ones; MOS and clearance only fill empty scoring fields.
func (uc *ProfileUsecase) ApplyMilitaryRecord(ctx context.Context, userID uuid.UUID, rec resume.MilitaryRecord) (*model.VeteranProfile, error) {
	p, err := uc.loadOrNewVeteran(ctx, userID)
	if err != nil {
		return nil, err
	}
	mergeMilitaryRecord(p, rec)
	if err := uc.profiles.SaveVeteranProfile(ctx, p); err != nil {
		return nil, fromRepository(err)
	}
	return p, nil
}

func mergeMilitaryRecord(p *model.VeteranProfile, rec resume.MilitaryRecord) {
	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setIf(&p.Branch, rec.Branch)
	setIf(&p.Rank, rec.Rank)
	setIf(&p.LeadershipRole, rec.LeadershipRole)
	setIf(&p.Awards, rec.Awards)
	setIf(&p.ServiceDescription, rec.Description)
	if rec.YearsOfService > 0 {
		p.YearsOfService = rec.YearsOfService
	}

	// Stored codes are upper-case, the same as on SaveVeteranProfile.
	if p.MOS == "" {
		p.MOS = strings.ToUpper(rec.MOS)
	}
	if (p.Clearance == "" || strings.EqualFold(p.Clearance, defaultClearance)) && rec.Clearance != "" {
		p.Clearance = rec.Clearance
	}
}

func (uc *ProfileUsecase) loadOrNewVeteran(ctx context.Context, userID uuid.UUID) (*model.VeteranProfile, error) {
	p, err := uc.profiles.FindVeteranProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if errors.Is(fromRepository(err), ErrNotFound) {
		return &model.VeteranProfile{UserID: userID, Clearance: defaultClearance}, nil
	}
	return nil, err
}

func (uc *ProfileUsecase) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (*model.EmployerProfile, error) {
	p, err := uc.profiles.FindEmployerProfile(ctx, userID)
	return p, fromRepository(err)
}

func (uc *ProfileUsecase) SaveEmployerProfile(ctx context.Context, userID uuid.UUID, req dto.EmployerProfileRequest) (*model.EmployerProfile, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}

	p, err := uc.profiles.FindEmployerProfile(ctx, userID)
	if err != nil {
		if !errors.Is(fromRepository(err), ErrNotFound) {
			return nil, err
		}
		p = &model.EmployerProfile{UserID: userID}
	}

	p.CompanyName = strings.TrimSpace(req.CompanyName)
	p.Website = strings.TrimSpace(req.Website)
	p.Industry = strings.TrimSpace(req.Industry)
	p.City = strings.TrimSpace(req.City)
	p.State = strings.TrimSpace(req.State)
	p.About = strings.TrimSpace(req.About)

	if err := uc.profiles.SaveEmployerProfile(ctx, p); err != nil {
		return nil, fromRepository(err)
	}
	return p, nil
}

// normalizeClearance defaults an empty level to "None" and rejects names the
// scorer does not know.
func normalizeClearance(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultClearance, nil
	}
	if matching.ClearanceLevel(name) == matching.LevelNotFound {
		return "", invalid("security_clearance", "must be one of: "+strings.Join(matching.ClearanceNames(), ", "))
	}
	return name, nil
}

// cleanList trims entries and drops blanks and case-insensitive duplicates.
func cleanList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		key := strings.ToLower(it)
		if it == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
