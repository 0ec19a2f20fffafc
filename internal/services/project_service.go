package services

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"gorm.io/datatypes"
)

const projectsCacheNamespace = "projects:"

type CreateProjectInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tech        []string `json:"tech" validate:"required,dive,required"`
	Github      *string  `json:"github" validate:"omitnil,url"`
	LiveURL     *string  `json:"liveUrl" validate:"omitnil,url"`
	Image       *string  `json:"image"`
	Featured    *bool    `json:"featured"`
	Order       *int     `json:"order"`
}

type UpdateProjectInput struct {
	Title       *string   `json:"title" validate:"omitnil,min=1"`
	Description *string   `json:"description" validate:"omitnil,min=1"`
	Tech        *[]string `json:"tech" validate:"omitnil,dive,required"`
	Github      *string   `json:"github" validate:"omitnil,url"`
	LiveURL     *string   `json:"liveUrl" validate:"omitnil,url"`
	Image       *string   `json:"image"`
	Featured    *bool     `json:"featured"`
	Order       *int      `json:"order"`
}

type ProjectService interface {
	FindAll(ctx context.Context) ([]models.Project, error)
	FindFeatured(ctx context.Context) ([]models.Project, error)
	FindOne(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*models.Project, error)
	Update(ctx context.Context, id uint, input UpdateProjectInput) (*models.Project, error)
	Remove(ctx context.Context, id uint) (*models.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	audit       AuditLogService
	cache       CacheService
	cacheTTL    time.Duration
}

func NewProjectService(projectRepo repository.ProjectRepository, audit AuditLogService, cache CacheService, cacheTTL time.Duration) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		audit:       audit,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

func (s *projectService) FindAll(ctx context.Context) ([]models.Project, error) {
	return readThrough(ctx, s.cache, projectsCacheNamespace+"all", s.cacheTTL, func() ([]models.Project, error) {
		return s.projectRepo.List(ctx)
	})
}

func (s *projectService) FindFeatured(ctx context.Context) ([]models.Project, error) {
	return readThrough(ctx, s.cache, projectsCacheNamespace+"featured", s.cacheTTL, func() ([]models.Project, error) {
		return s.projectRepo.ListFeatured(ctx)
	})
}

func (s *projectService) FindOne(ctx context.Context, id uint) (*models.Project, error) {
	return readThrough(ctx, s.cache, fmt.Sprintf("%s%d", projectsCacheNamespace, id), s.cacheTTL, func() (*models.Project, error) {
		return s.projectRepo.GetByID(ctx, id)
	})
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		Tech:        datatypes.JSONSlice[string](input.Tech),
		Github:      input.Github,
		LiveURL:     input.LiveURL,
		Image:       input.Image,
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.Order != nil {
		project.Order = *input.Order
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, projectsCacheNamespace)
	s.audit.Record(ctx, models.AuditCreate, "project", project.ID, project.Title)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uint, input UpdateProjectInput) (*models.Project, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Tech != nil {
		updates["tech"] = datatypes.JSONSlice[string](*input.Tech)
	}
	if input.Github != nil {
		updates["github"] = *input.Github
	}
	if input.LiveURL != nil {
		updates["live_url"] = *input.LiveURL
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.Order != nil {
		updates["sort_order"] = *input.Order
	}

	project, err := s.projectRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, projectsCacheNamespace)
	s.audit.Record(ctx, models.AuditUpdate, "project", id, project.Title)
	return project, nil
}

func (s *projectService) Remove(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, projectsCacheNamespace)
	s.audit.Record(ctx, models.AuditDelete, "project", id, project.Title)
	return project, nil
}
