package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/events"
	"github.com/vetlink/vetlink-api/internal/hiring"
	"github.com/vetlink/vetlink-api/internal/matching"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/util"
	"go.uber.org/zap"
)

type ApplicationUsecase struct {
	apps      ApplicationRepository
	jobs      JobRepository
	profiles  ProfileRepository
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewApplicationUsecase(apps ApplicationRepository, jobs JobRepository, profiles ProfileRepository, publisher Publisher, logger *zap.Logger) *ApplicationUsecase {
	return &ApplicationUsecase{
		apps:      apps,
		jobs:      jobs,
		profiles:  profiles,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Apply submits the veteran's application to an open posting and snapshots
// the match score at submission time.
func (uc *ApplicationUsecase) Apply(ctx context.Context, veteranID, jobID uuid.UUID, req dto.ApplyRequest) (*model.Application, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}

	job, err := uc.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fromRepository(err)
	}
	now := uc.now()
	if !job.Active || (job.ExpiresAt != nil && job.ExpiresAt.Before(now)) {
		return nil, ErrJobClosed
	}

	candidate := matching.Candidate{Clearance: defaultClearance}
	profile, err := uc.profiles.FindVeteranProfile(ctx, veteranID)
	switch {
	case err == nil:
		candidate = candidateFromProfile(profile)
	case !errors.Is(fromRepository(err), ErrNotFound):
		return nil, err
	}

	app := &model.Application{
		JobID:       job.ID,
		VeteranID:   veteranID,
		Status:      hiring.StatusApplied,
		CoverLetter: strings.TrimSpace(req.CoverLetter),
		MatchScore:  matching.Score(jobFromPosting(job), candidate).Score,
		History: []model.StatusChange{
			{To: hiring.StatusApplied, At: now, By: veteranID},
		},
	}
	if err := uc.apps.CreateApplication(ctx, app); err != nil {
		return nil, fromRepository(err)
	}

	uc.publish(ctx, events.ChannelApplicationSubmitted, app, "", veteranID, now)
	return app, nil
}

func (uc *ApplicationUsecase) ListMine(ctx context.Context, veteranID uuid.UUID) ([]model.Application, error) {
	return uc.apps.ListApplicationsByVeteran(ctx, veteranID)
}

// ListForJob returns a posting's applications to its owner, best match first.
func (uc *ApplicationUsecase) ListForJob(ctx context.Context, employerID, jobID uuid.UUID) ([]model.Application, error) {
	job, err := uc.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if job.EmployerID != employerID {
		return nil, ErrForbidden
	}
	return uc.apps.ListApplicationsByJob(ctx, jobID)
}

func (uc *ApplicationUsecase) Withdraw(ctx context.Context, veteranID, appID uuid.UUID) (*model.Application, error) {
	app, err := uc.apps.FindApplicationByID(ctx, appID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if app.VeteranID != veteranID {
		return nil, ErrForbidden
	}
	return uc.transition(ctx, app, hiring.ActorVeteran, veteranID, hiring.StatusWithdrawn)
}

// UpdateStatus moves an application on one of the employer's postings.
func (uc *ApplicationUsecase) UpdateStatus(ctx context.Context, employerID, appID uuid.UUID, req dto.StatusRequest) (*model.Application, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	to, err := hiring.ParseStatus(req.Status)
	if err != nil {
		return nil, invalid("status", err.Error())
	}

	app, err := uc.apps.FindApplicationByID(ctx, appID)
	if err != nil {
		return nil, fromRepository(err)
	}
	job, err := uc.jobs.FindJobByID(ctx, app.JobID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if job.EmployerID != employerID {
		return nil, ErrForbidden
	}
	return uc.transition(ctx, app, hiring.ActorEmployer, employerID, to)
}

func (uc *ApplicationUsecase) transition(ctx context.Context, app *model.Application, actor hiring.Actor, by uuid.UUID, to hiring.Status) (*model.Application, error) {
	from := app.Status
	if !hiring.CanTransition(actor, from, to) {
		return nil, ErrInvalidTransition
	}

	now := uc.now()
	app.Status = to
	app.History = append(app.History, model.StatusChange{From: from, To: to, At: now, By: by})
	if err := uc.apps.UpdateApplication(ctx, app); err != nil {
		return nil, fromRepository(err)
	}

	uc.publish(ctx, events.ChannelApplicationStatus, app, from, by, now)
	return app, nil
}

// publish is best effort; a lost notification never fails the request.
func (uc *ApplicationUsecase) publish(ctx context.Context, channel string, app *model.Application, from hiring.Status, by uuid.UUID, at time.Time) {
	err := uc.publisher.Publish(ctx, channel, events.ApplicationEvent{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		VeteranID:     app.VeteranID,
		From:          from,
		To:            app.Status,
		By:            by,
		At:            at,
	})
	if err != nil {
		uc.logger.Warn("publish application event failed", zap.String("channel", channel), zap.Error(err))
	}
}
