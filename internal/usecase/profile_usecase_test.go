package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository/repotest"
	"github.com/vetlink/vetlink-api/internal/resume"
	"github.com/vetlink/vetlink-api/internal/util"
)

func TestSaveVeteranProfile(t *testing.T) {
	profiles := repotest.NewProfiles()
	uc := NewProfileUsecase(profiles)
	userID := uuid.New()

	p, err := uc.SaveVeteranProfile(context.Background(), userID, dto.VeteranProfileRequest{
		MOS:    " 11b ",
		Skills: []string{"Logistics", " logistics ", "", "Leadership"},
		City:   "Austin",
	})
	if err != nil {
		t.Fatalf("SaveVeteranProfile: %v", err)
	}
	if p.MOS != "11B" {
		t.Errorf("MOS = %q, want 11B", p.MOS)
	}
	if p.Clearance != "None" {
		t.Errorf("Clearance = %q, want None", p.Clearance)
	}
	if len(p.Skills) != 2 {
		t.Errorf("Skills = %v, want deduplicated pair", p.Skills)
	}
	if p.UserID != userID {
		t.Errorf("UserID not set")
	}
}

func TestSaveVeteranProfile_UnknownClearance(t *testing.T) {
	uc := NewProfileUsecase(repotest.NewProfiles())

	_, err := uc.SaveVeteranProfile(context.Background(), uuid.New(), dto.VeteranProfileRequest{Clearance: "Cosmic"})
	var formErr *util.FormError
	if !errors.As(err, &formErr) || formErr.Errors["security_clearance"] == "" {
		t.Fatalf("expected security_clearance validation error, got %v", err)
	}
}

func TestApplyMilitaryRecord(t *testing.T) {
	profiles := repotest.NewProfiles()
	uc := NewProfileUsecase(profiles)
	userID := uuid.New()
	profiles.Veterans[userID] = &model.VeteranProfile{
		UserID:    userID,
		MOS:       "25B",
		Clearance: "None",
		Rank:      "Specialist",
		Awards:    "Purple Heart",
	}
	profiles.Order = append(profiles.Order, userID)

	p, err := uc.ApplyMilitaryRecord(context.Background(), userID, resume.MilitaryRecord{
		Branch:         "Army",
		Rank:           "Sergeant",
		MOS:            "11B",
		YearsOfService: 6,
		Clearance:      "Secret",
		Description:    "Served.",
	})
	if err != nil {
		t.Fatalf("ApplyMilitaryRecord: %v", err)
	}

	if p.MOS != "25B" {
		t.Errorf("existing MOS overwritten: %q", p.MOS)
	}
	if p.Clearance != "Secret" {
		t.Errorf("default clearance should be replaced, got %q", p.Clearance)
	}
	if p.Rank != "Sergeant" || p.Branch != "Army" || p.YearsOfService != 6 {
		t.Errorf("detected fields not merged: %+v", p)
	}
	if p.Awards != "Purple Heart" {
		t.Errorf("empty awards should not clear stored value, got %q", p.Awards)
	}
	if p.ServiceDescription != "Served." {
		t.Errorf("description not merged: %q", p.ServiceDescription)
	}
}

func TestApplyMilitaryRecord_CreatesProfile(t *testing.T) {
	profiles := repotest.NewProfiles()
	uc := NewProfileUsecase(profiles)
	userID := uuid.New()

	p, err := uc.ApplyMilitaryRecord(context.Background(), userID, resume.MilitaryRecord{MOS: "0311", Clearance: "None"})
	if err != nil {
		t.Fatalf("ApplyMilitaryRecord: %v", err)
	}
	if p.MOS != "0311" || p.Clearance != "None" {
		t.Fatalf("unexpected profile %+v", p)
	}
	if _, ok := profiles.Veterans[userID]; !ok {
		t.Fatal("profile was not saved")
	}
}

func TestApplyMilitaryRecord_UppercasesExtractedMOS(t *testing.T) {
	uc := NewProfileUsecase(repotest.NewProfiles())

	p, err := uc.ApplyMilitaryRecord(context.Background(), uuid.New(), resume.Extract("AFSC 3d0x2 cyber systems"))
	if err != nil {
		t.Fatalf("ApplyMilitaryRecord: %v", err)
	}
	if p.MOS != "3D0X2" {
		t.Fatalf("MOS = %q, want 3D0X2", p.MOS)
	}
}

func TestSaveEmployerProfile(t *testing.T) {
	uc := NewProfileUsecase(repotest.NewProfiles())
	ctx := context.Background()
	userID := uuid.New()

	if _, err := uc.SaveEmployerProfile(ctx, userID, dto.EmployerProfileRequest{}); err == nil {
		t.Fatal("expected company_name to be required")
	}

	p, err := uc.SaveEmployerProfile(ctx, userID, dto.EmployerProfileRequest{CompanyName: " Acme Defense ", Website: "https://acme.example"})
	if err != nil {
		t.Fatalf("SaveEmployerProfile: %v", err)
	}
	if p.CompanyName != "Acme Defense" {
		t.Fatalf("CompanyName = %q", p.CompanyName)
	}

	got, err := uc.GetEmployerProfile(ctx, userID)
	if err != nil || got.ID != p.ID {
		t.Fatalf("GetEmployerProfile = %+v, %v", got, err)
	}
	if _, err := uc.GetEmployerProfile(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
