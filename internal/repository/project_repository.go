package repository

import (
	"context"
	stderrors "errors"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	ListFeatured(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Project, error)
	Delete(ctx context.Context, id uint) (*models.Project, error)
	Count(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&projects).Error; err != nil {
		return nil, errors.Database(err, "failed to list projects")
	}
	return projects, nil
}

func (r *projectRepository) ListFeatured(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, errors.Database(err, "failed to list featured projects")
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("Project", id)
		}
		return nil, errors.Database(err, "failed to get project")
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return errors.Database(err, "failed to create project")
	}
	return nil
}

func (r *projectRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Project, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&models.Project{ID: id}).Updates(updates).Error; err != nil {
			return nil, errors.Database(err, "failed to update project")
		}
	}
	return r.GetByID(ctx, id)
}

func (r *projectRepository) Delete(ctx context.Context, id uint) (*models.Project, error) {
	project, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return nil, errors.Database(err, "failed to delete project")
	}
	return project, nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, errors.Database(err, "failed to count projects")
	}
	return count, nil
}
