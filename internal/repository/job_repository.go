package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/response"
	"gorm.io/gorm"
)

// JobFilter narrows the public job listing. Empty fields are ignored.
type JobFilter struct {
	Query     string
	City      string
	State     string
	Type      string
	Clearance string
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// SearchJobs returns the topK active postings nearest to embedding.
func (r *JobRepository) SearchJobs(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.JobPosting, error) {
	var jobs []model.JobPosting

	err := r.db.WithContext(ctx).Raw(`
        SELECT *
        FROM jobs
        WHERE active AND embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, topK).Scan(&jobs).Error

	return jobs, err
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.JobPosting) error {
	return translate(r.db.WithContext(ctx).Create(job).Error)
}

func (r *JobRepository) UpdateJob(ctx context.Context, job *model.JobPosting) error {
	return translate(r.db.WithContext(ctx).Save(job).Error)
}

func (r *JobRepository) DeleteJob(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.JobPosting{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *JobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*model.JobPosting, error) {
	var j model.JobPosting
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

// ListJobs pages through active postings matching filter, newest first.
func (r *JobRepository) ListJobs(ctx context.Context, filter JobFilter, page response.PageRequest) ([]model.JobPosting, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.JobPosting{}).Where("active")

	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("title ILIKE ? OR company ILIKE ?", like, like)
	}
	if filter.City != "" {
		q = q.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.State != "" {
		q = q.Where("LOWER(state) = LOWER(?)", filter.State)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Clearance != "" {
		q = q.Where("LOWER(clearance) = LOWER(?)", filter.Clearance)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.JobPosting
	err := q.Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&jobs).Error
	return jobs, total, err
}

// ListActiveJobs returns every open posting, newest first.
func (r *JobRepository) ListActiveJobs(ctx context.Context) ([]model.JobPosting, error) {
	var jobs []model.JobPosting
	err := r.db.WithContext(ctx).Where("active").Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) ListJobsByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.JobPosting, error) {
	var jobs []model.JobPosting
	err := r.db.WithContext(ctx).Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// DeactivateExpired closes every active posting whose expiry is before now.
func (r *JobRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.JobPosting{}).
		Where("active AND expires_at IS NOT NULL AND expires_at < ?", now).
		Updates(map[string]any{"active": false, "updated_at": now})
	return res.RowsAffected, res.Error
}
