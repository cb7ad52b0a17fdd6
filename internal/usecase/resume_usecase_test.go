package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository/repotest"
	"github.com/vetlink/vetlink-api/internal/resume"
	"github.com/vetlink/vetlink-api/internal/service"
	"github.com/vetlink/vetlink-api/internal/util"
	"go.uber.org/zap"
)

type stubWriter struct {
	got service.ResumeInput
}

func (s *stubWriter) Write(_ context.Context, in service.ResumeInput) (*service.GeneratedResume, error) {
	s.got = in
	return &service.GeneratedResume{TranslatedTitle: "Operations Manager"}, nil
}

const dd214 = `CERTIFICATE OF RELEASE OR DISCHARGE FROM ACTIVE DUTY
Branch: United States Army
Grade: SSG
Primary specialty: 11B Infantryman
Entered 2008, separated 2016
Clearance: SECRET
Served as squad leader. Awarded the Bronze Star.`

func newResumeUsecase(writer ResumeWriter) (*ResumeUsecase, *repotest.Profiles, uuid.UUID) {
	profiles := repotest.NewProfiles()
	userID := uuid.New()
	users := repotest.NewUsers(&model.User{ID: userID, FirstName: "Jane", LastName: "Doe", Role: model.RoleVeteran})
	reader := resume.NewDocumentReader(zap.NewNop(), false)
	uc := NewResumeUsecase(reader, NewProfileUsecase(profiles), users, writer, zap.NewNop())
	return uc, profiles, userID
}

func TestResumeParse(t *testing.T) {
	uc, profiles, userID := newResumeUsecase(nil)

	out, err := uc.Parse(context.Background(), userID, "dd214.txt", []byte(dd214), false)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec := out.Record
	if rec.Branch != resume.BranchArmy || rec.Rank != "Staff Sergeant" || rec.MOS != "11B" {
		t.Errorf("unexpected record %+v", rec)
	}
	if rec.YearsOfService != 8 || rec.Clearance != "Secret" || rec.LeadershipRole != "Squad Leader" || rec.Awards != "Bronze Star" {
		t.Errorf("unexpected record %+v", rec)
	}
	if out.Applied || len(profiles.Veterans) != 0 {
		t.Error("profile touched without apply")
	}
}

func TestResumeParse_Apply(t *testing.T) {
	uc, profiles, userID := newResumeUsecase(nil)

	out, err := uc.Parse(context.Background(), userID, "dd214.txt", []byte(dd214), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !out.Applied || out.Profile == nil {
		t.Fatalf("record not applied: %+v", out)
	}
	p := profiles.Veterans[userID]
	if p == nil || p.MOS != "11B" || p.Clearance != "Secret" || p.YearsOfService != 8 {
		t.Fatalf("stored profile = %+v", p)
	}
}

func TestResumeParse_BadFile(t *testing.T) {
	uc, _, userID := newResumeUsecase(nil)

	for name, data := range map[string][]byte{"scan.png": []byte("x"), "empty.txt": []byte("  ")} {
		_, err := uc.Parse(context.Background(), userID, name, data, false)
		var formErr *util.FormError
		if !errors.As(err, &formErr) || formErr.Errors["file"] == "" {
			t.Errorf("%s: expected file validation error, got %v", name, err)
		}
	}
}

func TestResumeGenerate(t *testing.T) {
	uc, _, userID := newResumeUsecase(nil)
	if _, err := uc.Generate(context.Background(), userID); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	writer := &stubWriter{}
	uc, profiles, userID := newResumeUsecase(writer)
	if _, err := uc.Generate(context.Background(), userID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing profile = %v, want ErrNotFound", err)
	}

	profiles.Veterans[userID] = &model.VeteranProfile{UserID: userID, MOS: "92Y", Skills: []string{"Supply"}}
	got, err := uc.Generate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.TranslatedTitle != "Operations Manager" {
		t.Fatalf("unexpected resume %+v", got)
	}
	if writer.got.FullName != "Jane Doe" || writer.got.MOS != "92Y" {
		t.Fatalf("writer input = %+v", writer.got)
	}
}
