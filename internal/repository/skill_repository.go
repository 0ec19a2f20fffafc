package repository

import (
	"context"
	stderrors "errors"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"

	"gorm.io/gorm"
)

type SkillRepository interface {
	List(ctx context.Context) ([]models.SkillCategory, error)
	GetByID(ctx context.Context, id uint) (*models.SkillCategory, error)
	Create(ctx context.Context, category *models.SkillCategory) error
	// Update applies updates to the category. A non-nil skills slice replaces every
	// skill of the category in the same transaction.
	Update(ctx context.Context, id uint, updates map[string]interface{}, skills []string) (*models.SkillCategory, error)
	Delete(ctx context.Context, id uint) (*models.SkillCategory, error)
	Count(ctx context.Context) (int64, error)
}

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) List(ctx context.Context) ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	err := r.db.WithContext(ctx).
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("sort_order ASC, id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, errors.Database(err, "failed to list skill categories")
	}
	return categories, nil
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.SkillCategory, error) {
	return getCategory(r.db.WithContext(ctx), id)
}

func getCategory(db *gorm.DB, id uint) (*models.SkillCategory, error) {
	var category models.SkillCategory
	err := db.
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&category, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("Skill category", id)
		}
		return nil, errors.Database(err, "failed to get skill category")
	}
	return &category, nil
}

func (r *skillRepository) Create(ctx context.Context, category *models.SkillCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return errors.Database(err, "failed to create skill category")
	}
	return nil
}

func (r *skillRepository) Update(ctx context.Context, id uint, updates map[string]interface{}, skills []string) (*models.SkillCategory, error) {
	var updated *models.SkillCategory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getCategory(tx, id); err != nil {
			return err
		}

		if skills != nil {
			if err := tx.Where("category_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
				return errors.Database(err, "failed to replace skills")
			}
			if len(skills) > 0 {
				rows := models.SkillsFromNames(skills)
				for i := range rows {
					rows[i].CategoryID = id
				}
				if err := tx.Create(&rows).Error; err != nil {
					return errors.Database(err, "failed to replace skills")
				}
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.SkillCategory{ID: id}).Updates(updates).Error; err != nil {
				return errors.Database(err, "failed to update skill category")
			}
		}

		var err error
		updated, err = getCategory(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *skillRepository) Delete(ctx context.Context, id uint) (*models.SkillCategory, error) {
	var deleted *models.SkillCategory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if deleted, err = getCategory(tx, id); err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return errors.Database(err, "failed to delete skills")
		}
		if err := tx.Delete(&models.SkillCategory{}, "id = ?", id).Error; err != nil {
			return errors.Database(err, "failed to delete skill category")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *skillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SkillCategory{}).Count(&count).Error; err != nil {
		return 0, errors.Database(err, "failed to count skill categories")
	}
	return count, nil
}
