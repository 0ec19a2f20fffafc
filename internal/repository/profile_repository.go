package repository

import (
	"context"
	stderrors "errors"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	// First returns the oldest profile row, or errors.ErrNotFound when there is none.
	First(ctx context.Context) (*models.Profile, error)
	// FirstOrCreate returns the profile, inserting defaults as row ProfileID when
	// there is none. Concurrent first calls all end up with the same row.
	FirstOrCreate(ctx context.Context, defaults *models.Profile) (*models.Profile, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) First(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Order("id ASC").First(&profile).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Database(err, "failed to get profile")
	}
	return &profile, nil
}

func (r *profileRepository) FirstOrCreate(ctx context.Context, defaults *models.Profile) (*models.Profile, error) {
	profile, err := r.First(ctx)
	if err == nil || !errors.Is(err, errors.ErrNotFound) {
		return profile, err
	}

	defaults.ID = models.ProfileID
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(defaults).Error
	if err != nil {
		return nil, errors.Database(err, "failed to create profile")
	}
	return r.First(ctx)
}

func (r *profileRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Profile, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Profile{ID: id}).Updates(updates)
		if result.Error != nil {
			return nil, errors.Database(result.Error, "failed to update profile")
		}
	}
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("Profile", id)
		}
		return nil, errors.Database(err, "failed to get profile")
	}
	return &profile, nil
}
