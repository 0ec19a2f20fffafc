package services

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

const skillsCacheNamespace = "skills:"

type CreateSkillCategoryInput struct {
	Name   string   `json:"name" validate:"required"`
	Icon   string   `json:"icon" validate:"required"`
	Color  string   `json:"color" validate:"required"`
	Order  *int     `json:"order"`
	Skills []string `json:"skills" validate:"omitempty,dive,required"`
}

// UpdateSkillCategoryInput is a partial update. Skills, when present, replaces
// the whole skill list of the category.
type UpdateSkillCategoryInput struct {
	Name   *string   `json:"name" validate:"omitnil,min=1"`
	Icon   *string   `json:"icon" validate:"omitnil,min=1"`
	Color  *string   `json:"color" validate:"omitnil,min=1"`
	Order  *int      `json:"order"`
	Skills *[]string `json:"skills" validate:"omitnil,dive,required"`
}

type SkillService interface {
	FindAll(ctx context.Context) ([]models.SkillCategory, error)
	FindOne(ctx context.Context, id uint) (*models.SkillCategory, error)
	Create(ctx context.Context, input CreateSkillCategoryInput) (*models.SkillCategory, error)
	Update(ctx context.Context, id uint, input UpdateSkillCategoryInput) (*models.SkillCategory, error)
	Remove(ctx context.Context, id uint) (*models.SkillCategory, error)
}

type skillService struct {
	skillRepo repository.SkillRepository
	audit     AuditLogService
	cache     CacheService
	cacheTTL  time.Duration
}

func NewSkillService(skillRepo repository.SkillRepository, audit AuditLogService, cache CacheService, cacheTTL time.Duration) SkillService {
	return &skillService{
		skillRepo: skillRepo,
		audit:     audit,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *skillService) FindAll(ctx context.Context) ([]models.SkillCategory, error) {
	return readThrough(ctx, s.cache, skillsCacheNamespace+"all", s.cacheTTL, func() ([]models.SkillCategory, error) {
		return s.skillRepo.List(ctx)
	})
}

func (s *skillService) FindOne(ctx context.Context, id uint) (*models.SkillCategory, error) {
	return readThrough(ctx, s.cache, fmt.Sprintf("%s%d", skillsCacheNamespace, id), s.cacheTTL, func() (*models.SkillCategory, error) {
		return s.skillRepo.GetByID(ctx, id)
	})
}

func (s *skillService) Create(ctx context.Context, input CreateSkillCategoryInput) (*models.SkillCategory, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	category := &models.SkillCategory{
		Name:   input.Name,
		Icon:   input.Icon,
		Color:  input.Color,
		Skills: models.SkillsFromNames(input.Skills),
	}
	if input.Order != nil {
		category.Order = *input.Order
	}

	if err := s.skillRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, skillsCacheNamespace)
	s.audit.Record(ctx, models.AuditCreate, "skill_category", category.ID, category.Name)
	return category, nil
}

func (s *skillService) Update(ctx context.Context, id uint, input UpdateSkillCategoryInput) (*models.SkillCategory, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Icon != nil {
		updates["icon"] = *input.Icon
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}
	if input.Order != nil {
		updates["sort_order"] = *input.Order
	}

	var skills []string
	if input.Skills != nil {
		skills = append([]string{}, *input.Skills...)
	}

	category, err := s.skillRepo.Update(ctx, id, updates, skills)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, skillsCacheNamespace)
	s.audit.Record(ctx, models.AuditUpdate, "skill_category", id, category.Name)
	return category, nil
}

func (s *skillService) Remove(ctx context.Context, id uint) (*models.SkillCategory, error) {
	category, err := s.skillRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, skillsCacheNamespace)
	s.audit.Record(ctx, models.AuditDelete, "skill_category", id, category.Name)
	return category, nil
}
