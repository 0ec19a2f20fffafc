package repository

import (
	"context"
	stderrors "errors"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"

	"gorm.io/gorm"
)

type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	ListByType(ctx context.Context, expType models.ExperienceType) ([]models.Experience, error)
	GetByID(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, experience *models.Experience) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Experience, error)
	Delete(ctx context.Context, id uint) (*models.Experience, error)
	Count(ctx context.Context) (int64, error)
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&experiences).Error; err != nil {
		return nil, errors.Database(err, "failed to list experiences")
	}
	return experiences, nil
}

// ListByType orders newest first, unlike List which follows the manual order.
func (r *experienceRepository) ListByType(ctx context.Context, expType models.ExperienceType) ([]models.Experience, error) {
	var experiences []models.Experience
	err := r.db.WithContext(ctx).
		Where("type = ?", expType).
		Order("start_date DESC, id ASC").
		Find(&experiences).Error
	if err != nil {
		return nil, errors.Database(err, "failed to list experiences by type")
	}
	return experiences, nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.WithContext(ctx).First(&experience, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("Experience", id)
		}
		return nil, errors.Database(err, "failed to get experience")
	}
	return &experience, nil
}

func (r *experienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(experience).Error; err != nil {
		return errors.Database(err, "failed to create experience")
	}
	return nil
}

func (r *experienceRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Experience, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&models.Experience{ID: id}).Updates(updates).Error; err != nil {
			return nil, errors.Database(err, "failed to update experience")
		}
	}
	return r.GetByID(ctx, id)
}

func (r *experienceRepository) Delete(ctx context.Context, id uint) (*models.Experience, error) {
	experience, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Experience{}, "id = ?", id).Error; err != nil {
		return nil, errors.Database(err, "failed to delete experience")
	}
	return experience, nil
}

func (r *experienceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Experience{}).Count(&count).Error; err != nil {
		return 0, errors.Database(err, "failed to count experiences")
	}
	return count, nil
}
