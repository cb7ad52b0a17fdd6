package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/resume"
	"github.com/vetlink/vetlink-api/internal/service"
	"go.uber.org/zap"
)

// TextReader pulls plain text out of an uploaded document.
type TextReader interface {
	ReadText(filename string, data []byte) (string, error)
}

// ResumeWriter drafts a civilian resume from profile data.
type ResumeWriter interface {
	Write(ctx context.Context, in service.ResumeInput) (*service.GeneratedResume, error)
}

type ResumeUsecase struct {
	reader   TextReader
	profiles *ProfileUsecase
	users    UserRepository
	// writer is nil when no language model provider is configured.
	writer ResumeWriter
	logger *zap.Logger
}

func NewResumeUsecase(reader TextReader, profiles *ProfileUsecase, users UserRepository, writer ResumeWriter, logger *zap.Logger) *ResumeUsecase {
	return &ResumeUsecase{reader: reader, profiles: profiles, users: users, writer: writer, logger: logger}
}

// Parse extracts a service record from an uploaded document. With apply set
// the record is merged into the veteran's profile.
func (uc *ResumeUsecase) Parse(ctx context.Context, userID uuid.UUID, filename string, data []byte, apply bool) (*dto.ParseResumeResponse, error) {
	text, err := uc.reader.ReadText(filename, data)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrUnsupportedFileType):
			return nil, invalid("file", "must be one of: .txt, .pdf, .docx")
		case errors.Is(err, resume.ErrEmptyDocument):
			return nil, invalid("file", "contains no readable text")
		}
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	record := resume.Extract(text)
	uc.logger.Debug("service record extracted",
		zap.String("user_id", userID.String()),
		zap.String("branch", record.Branch),
		zap.String("mos", record.MOS),
	)

	out := &dto.ParseResumeResponse{Record: record}
	if !apply {
		return out, nil
	}

	profile, err := uc.profiles.ApplyMilitaryRecord(ctx, userID, record)
	if err != nil {
		return nil, err
	}
	out.Applied = true
	out.Profile = profile
	return out, nil
}

// Generate drafts a civilian resume from the veteran's profile.
func (uc *ResumeUsecase) Generate(ctx context.Context, userID uuid.UUID) (*service.GeneratedResume, error) {
	if uc.writer == nil {
		return nil, ErrProviderUnavailable
	}

	user, err := uc.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fromRepository(err)
	}
	profile, err := uc.profiles.GetVeteranProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.writer.Write(ctx, service.ResumeInput{
		FullName:       user.FullName(),
		Headline:       profile.Headline,
		Summary:        profile.Summary,
		Branch:         profile.Branch,
		Rank:           profile.Rank,
		MOS:            profile.MOS,
		YearsOfService: profile.YearsOfService,
		Clearance:      profile.Clearance,
		LeadershipRole: profile.LeadershipRole,
		Awards:         profile.Awards,
		Skills:         profile.Skills,
		City:           profile.City,
		State:          profile.State,
		ServiceNotes:   profile.ServiceDescription,
	})
}
