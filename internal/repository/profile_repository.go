package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db}
}

func (r *ProfileRepository) FindVeteranProfile(ctx context.Context, userID uuid.UUID) (*model.VeteranProfile, error) {
	var p model.VeteranProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// SaveVeteranProfile inserts a new profile or updates every column of an
// existing one.
func (r *ProfileRepository) SaveVeteranProfile(ctx context.Context, profile *model.VeteranProfile) error {
	return translate(r.db.WithContext(ctx).Save(profile).Error)
}

func (r *ProfileRepository) ListVeteranProfiles(ctx context.Context) ([]model.VeteranProfile, error) {
	var profiles []model.VeteranProfile
	err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepository) FindEmployerProfile(ctx context.Context, userID uuid.UUID) (*model.EmployerProfile, error) {
	var p model.EmployerProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProfileRepository) SaveEmployerProfile(ctx context.Context, profile *model.EmployerProfile) error {
	return translate(r.db.WithContext(ctx).Save(profile).Error)
}
