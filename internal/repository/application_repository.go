package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *model.Application) error {
	return translate(r.db.WithContext(ctx).Create(app).Error)
}

func (r *ApplicationRepository) UpdateApplication(ctx context.Context, app *model.Application) error {
	return translate(r.db.WithContext(ctx).Save(app).Error)
}

func (r *ApplicationRepository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListApplicationsByVeteran(ctx context.Context, veteranID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).Where("veteran_id = ?", veteranID).Order("updated_at DESC").Find(&apps).Error
	return apps, err
}

// ListApplicationsByJob returns a posting's applications, best match first.
func (r *ApplicationRepository) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("match_score DESC, created_at ASC").Find(&apps).Error
	return apps, err
}
