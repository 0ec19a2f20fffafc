package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"
	"portfolio-api/internal/repository"
)

const experiencesCacheNamespace = "experiences:"

type CreateExperienceInput struct {
	Title       string  `json:"title" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	Location    *string `json:"location"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Order       *int    `json:"order"`
}

// UpdateExperienceInput is a partial update. An explicit null or empty endDate
// clears the end date.
type UpdateExperienceInput struct {
	Title       *string          `json:"title" validate:"omitnil,min=1"`
	Company     *string          `json:"company" validate:"omitnil,min=1"`
	Location    *string          `json:"location"`
	StartDate   *string          `json:"startDate" validate:"omitnil,min=1"`
	EndDate     Nullable[string] `json:"endDate"`
	Description *string          `json:"description"`
	Type        *string          `json:"type"`
	Order       *int             `json:"order"`
}

type ExperienceService interface {
	FindAll(ctx context.Context) ([]models.Experience, error)
	// FindByType matches type in any letter case and orders by start date, newest first.
	FindByType(ctx context.Context, expType string) ([]models.Experience, error)
	FindOne(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, input CreateExperienceInput) (*models.Experience, error)
	Update(ctx context.Context, id uint, input UpdateExperienceInput) (*models.Experience, error)
	Remove(ctx context.Context, id uint) (*models.Experience, error)
}

type experienceService struct {
	experienceRepo repository.ExperienceRepository
	audit          AuditLogService
	cache          CacheService
	cacheTTL       time.Duration
}

func NewExperienceService(experienceRepo repository.ExperienceRepository, audit AuditLogService, cache CacheService, cacheTTL time.Duration) ExperienceService {
	return &experienceService{
		experienceRepo: experienceRepo,
		audit:          audit,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

func parseExperienceType(value string) (models.ExperienceType, error) {
	t, ok := models.ParseExperienceType(value)
	if !ok {
		names := make([]string, 0, len(models.ExperienceTypes))
		for _, known := range models.ExperienceTypes {
			names = append(names, string(known))
		}
		return "", errors.Invalid(fmt.Sprintf("type must be one of the following values: %s", strings.Join(names, ", ")))
	}
	return t, nil
}

func (s *experienceService) FindAll(ctx context.Context) ([]models.Experience, error) {
	return readThrough(ctx, s.cache, experiencesCacheNamespace+"all", s.cacheTTL, func() ([]models.Experience, error) {
		return s.experienceRepo.List(ctx)
	})
}

func (s *experienceService) FindByType(ctx context.Context, expType string) ([]models.Experience, error) {
	t, err := parseExperienceType(expType)
	if err != nil {
		return nil, err
	}
	return readThrough(ctx, s.cache, experiencesCacheNamespace+"type:"+string(t), s.cacheTTL, func() ([]models.Experience, error) {
		return s.experienceRepo.ListByType(ctx, t)
	})
}

func (s *experienceService) FindOne(ctx context.Context, id uint) (*models.Experience, error) {
	return readThrough(ctx, s.cache, fmt.Sprintf("%s%d", experiencesCacheNamespace, id), s.cacheTTL, func() (*models.Experience, error) {
		return s.experienceRepo.GetByID(ctx, id)
	})
}

func (s *experienceService) Create(ctx context.Context, input CreateExperienceInput) (*models.Experience, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	startDate, err := ParseDate("startDate", input.StartDate)
	if err != nil {
		return nil, err
	}

	experience := &models.Experience{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		StartDate:   startDate,
		Description: input.Description,
		Type:        models.ExperienceWork,
	}
	if input.EndDate != nil && *input.EndDate != "" {
		endDate, err := ParseDate("endDate", *input.EndDate)
		if err != nil {
			return nil, err
		}
		experience.EndDate = &endDate
	}
	if input.Type != nil {
		if experience.Type, err = parseExperienceType(*input.Type); err != nil {
			return nil, err
		}
	}
	if input.Order != nil {
		experience.Order = *input.Order
	}

	if err := s.experienceRepo.Create(ctx, experience); err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, experiencesCacheNamespace)
	s.audit.Record(ctx, models.AuditCreate, "experience", experience.ID, experience.Title)
	return experience, nil
}

func (s *experienceService) Update(ctx context.Context, id uint, input UpdateExperienceInput) (*models.Experience, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Company != nil {
		updates["company"] = *input.Company
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.StartDate != nil {
		startDate, err := ParseDate("startDate", *input.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = startDate
	}
	if input.EndDate.Set {
		if input.EndDate.Null || input.EndDate.Value == "" {
			updates["end_date"] = nil
		} else {
			endDate, err := ParseDate("endDate", input.EndDate.Value)
			if err != nil {
				return nil, err
			}
			updates["end_date"] = endDate
		}
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Type != nil {
		t, err := parseExperienceType(*input.Type)
		if err != nil {
			return nil, err
		}
		updates["type"] = t
	}
	if input.Order != nil {
		updates["sort_order"] = *input.Order
	}

	experience, err := s.experienceRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, experiencesCacheNamespace)
	s.audit.Record(ctx, models.AuditUpdate, "experience", id, experience.Title)
	return experience, nil
}

func (s *experienceService) Remove(ctx context.Context, id uint) (*models.Experience, error) {
	experience, err := s.experienceRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, experiencesCacheNamespace)
	s.audit.Record(ctx, models.AuditDelete, "experience", id, experience.Title)
	return experience, nil
}
