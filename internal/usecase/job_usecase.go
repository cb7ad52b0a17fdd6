package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository"
	"github.com/vetlink/vetlink-api/internal/response"
	"github.com/vetlink/vetlink-api/internal/util"
	"go.uber.org/zap"
)

const defaultSearchLimit = 10

type JobUsecase struct {
	jobs     JobRepository
	profiles ProfileRepository
	// embedder is nil when no embedding provider is configured.
	embedder Embedder
	logger   *zap.Logger
	now      func() time.Time
}

func NewJobUsecase(jobs JobRepository, profiles ProfileRepository, embedder Embedder, logger *zap.Logger) *JobUsecase {
	return &JobUsecase{jobs: jobs, profiles: profiles, embedder: embedder, logger: logger, now: time.Now}
}

func (uc *JobUsecase) Create(ctx context.Context, employerID uuid.UUID, req dto.JobRequest) (*model.JobPosting, error) {
	job := &model.JobPosting{EmployerID: employerID, Active: true}
	if err := uc.apply(job, req); err != nil {
		return nil, err
	}
	if job.Company == "" {
		if p, err := uc.profiles.FindEmployerProfile(ctx, employerID); err == nil {
			job.Company = p.CompanyName
		}
	}

	uc.embed(ctx, job)
	if err := uc.jobs.CreateJob(ctx, job); err != nil {
		return nil, fromRepository(err)
	}

	uc.logger.Info("job posted", zap.String("job_id", job.ID.String()), zap.String("employer_id", employerID.String()))
	return job, nil
}

func (uc *JobUsecase) Update(ctx context.Context, employerID, jobID uuid.UUID, req dto.JobRequest) (*model.JobPosting, error) {
	job, err := uc.owned(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(job, req); err != nil {
		return nil, err
	}

	uc.embed(ctx, job)
	if err := uc.jobs.UpdateJob(ctx, job); err != nil {
		return nil, fromRepository(err)
	}
	return job, nil
}

// Close stops a posting from accepting applications without deleting it.
func (uc *JobUsecase) Close(ctx context.Context, employerID, jobID uuid.UUID) (*model.JobPosting, error) {
	job, err := uc.owned(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}
	job.Active = false
	if err := uc.jobs.UpdateJob(ctx, job); err != nil {
		return nil, fromRepository(err)
	}
	return job, nil
}

func (uc *JobUsecase) Delete(ctx context.Context, employerID, jobID uuid.UUID) error {
	if _, err := uc.owned(ctx, employerID, jobID); err != nil {
		return err
	}
	return fromRepository(uc.jobs.DeleteJob(ctx, jobID))
}

func (uc *JobUsecase) Get(ctx context.Context, jobID uuid.UUID) (*model.JobPosting, error) {
	job, err := uc.jobs.FindJobByID(ctx, jobID)
	return job, fromRepository(err)
}

func (uc *JobUsecase) List(ctx context.Context, q dto.JobQuery) ([]model.JobPosting, *response.Pagination, error) {
	page := response.NewPageRequest(q.Page, q.PageSize)
	filter := repository.JobFilter{
		Query:     q.Query,
		City:      strings.TrimSpace(q.City),
		State:     strings.TrimSpace(q.State),
		Type:      strings.TrimSpace(q.Type),
		Clearance: strings.TrimSpace(q.Clearance),
	}

	jobs, total, err := uc.jobs.ListJobs(ctx, filter, page)
	if err != nil {
		return nil, nil, err
	}
	return jobs, response.NewPagination(page, total, len(jobs)), nil
}

func (uc *JobUsecase) ListMine(ctx context.Context, employerID uuid.UUID) ([]model.JobPosting, error) {
	return uc.jobs.ListJobsByEmployer(ctx, employerID)
}

// Search ranks active postings by embedding distance to query.
func (uc *JobUsecase) Search(ctx context.Context, query string, limit int) ([]model.JobPosting, error) {
	if uc.embedder == nil {
		return nil, ErrProviderUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("q", "is required")
	}
	if limit <= 0 || limit > response.MaxPageSize {
		limit = defaultSearchLimit
	}

	values, err := uc.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed search query: %w", err)
	}
	return uc.jobs.SearchJobs(ctx, pgvector.NewVector(values), limit)
}

// ExpireJobs closes every posting whose expiry date has passed.
func (uc *JobUsecase) ExpireJobs(ctx context.Context) (int64, error) {
	n, err := uc.jobs.DeactivateExpired(ctx, uc.now())
	if err != nil {
		return 0, fmt.Errorf("deactivate expired jobs: %w", err)
	}
	if n > 0 {
		uc.logger.Info("expired job postings closed", zap.Int64("count", n))
	}
	return n, nil
}

func (uc *JobUsecase) owned(ctx context.Context, employerID, jobID uuid.UUID) (*model.JobPosting, error) {
	job, err := uc.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fromRepository(err)
	}
	if job.EmployerID != employerID {
		return nil, ErrForbidden
	}
	return job, nil
}

func (uc *JobUsecase) apply(job *model.JobPosting, req dto.JobRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return err
	}
	clearance, err := normalizeClearance(req.Clearance)
	if err != nil {
		return err
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(uc.now()) {
		return invalid("expires_at", "must be in the future")
	}

	mos := cleanList(req.PreferredMOS)
	for i := range mos {
		mos[i] = strings.ToUpper(mos[i])
	}

	job.Title = strings.TrimSpace(req.Title)
	job.Company = strings.TrimSpace(req.Company)
	job.Description = strings.TrimSpace(req.Description)
	job.Type = model.JobType(req.Type)
	if job.Type == "" {
		job.Type = model.JobTypeFullTime
	}
	job.SalaryRange = strings.TrimSpace(req.SalaryRange)
	job.City = strings.TrimSpace(req.City)
	job.State = strings.TrimSpace(req.State)
	job.PreferredMOS = mos
	job.Clearance = clearance
	job.Skills = cleanList(req.Skills)
	job.ExpiresAt = req.ExpiresAt
	return nil
}

// embed refreshes the posting's search vector. Failures are logged and leave
// the previous vector in place.
func (uc *JobUsecase) embed(ctx context.Context, job *model.JobPosting) {
	if uc.embedder == nil {
		return
	}
	values, err := uc.embedder.GenerateEmbedding(ctx, job.EmbeddingText())
	if err != nil {
		uc.logger.Warn("job embedding failed", zap.String("title", job.Title), zap.Error(err))
		return
	}
	if len(values) != model.EmbeddingDimensions {
		uc.logger.Warn("job embedding has unexpected size",
			zap.Int("got", len(values)), zap.Int("want", model.EmbeddingDimensions))
		return
	}
	vec := pgvector.NewVector(values)
	job.Embedding = &vec
}
