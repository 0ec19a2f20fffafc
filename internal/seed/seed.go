// Package seed fills a fresh database with the administrator account and the
// initial portfolio content.
package seed

import (
	"context"
	"fmt"
	"strings"

	"portfolio-api/internal/logger"
	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Options struct {
	AdminEmail    string
	AdminPassword string
	// BcryptCost defaults to bcrypt.DefaultCost when zero.
	BcryptCost int
}

// Result reports what a run inserted.
type Result struct {
	AdminCreated    bool
	SkillCategories int
	Projects        int
	Experiences     int
}

// Run upserts the administrator (an existing account is left untouched) and seeds
// each content table only while it is empty. Running it twice is harmless.
func Run(ctx context.Context, db *gorm.DB, opts Options) (*Result, error) {
	email := strings.TrimSpace(opts.AdminEmail)
	if email == "" || opts.AdminPassword == "" {
		return nil, fmt.Errorf("admin email and password are required")
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	result := &Result{}
	result.AdminCreated, err = repository.NewAdminRepository(db).CreateIfMissing(ctx, &models.Admin{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
	})
	if err != nil {
		return nil, err
	}
	logger.LogEvent(logrus.InfoLevel, "Admin seeded", logrus.Fields{"email": email, "created": result.AdminCreated})

	if result.SkillCategories, err = seedSkillCategories(ctx, repository.NewSkillRepository(db)); err != nil {
		return nil, err
	}
	if result.Projects, err = seedProjects(ctx, repository.NewProjectRepository(db)); err != nil {
		return nil, err
	}
	if result.Experiences, err = seedExperiences(ctx, repository.NewExperienceRepository(db)); err != nil {
		return nil, err
	}

	return result, nil
}

func seedSkillCategories(ctx context.Context, repo repository.SkillRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.LogEvent(logrus.InfoLevel, "Skill categories already exist, skipping", nil)
		return 0, nil
	}

	categories := skillCategories()
	for i := range categories {
		if err := repo.Create(ctx, &categories[i]); err != nil {
			return 0, err
		}
	}
	logger.LogEvent(logrus.InfoLevel, "Skill categories seeded", logrus.Fields{"count": len(categories)})
	return len(categories), nil
}

func seedProjects(ctx context.Context, repo repository.ProjectRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.LogEvent(logrus.InfoLevel, "Projects already exist, skipping", nil)
		return 0, nil
	}

	list := projects()
	for i := range list {
		if err := repo.Create(ctx, &list[i]); err != nil {
			return 0, err
		}
	}
	logger.LogEvent(logrus.InfoLevel, "Projects seeded", logrus.Fields{"count": len(list)})
	return len(list), nil
}

func seedExperiences(ctx context.Context, repo repository.ExperienceRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.LogEvent(logrus.InfoLevel, "Experiences already exist, skipping", nil)
		return 0, nil
	}

	list := experiences()
	for i := range list {
		if err := repo.Create(ctx, &list[i]); err != nil {
			return 0, err
		}
	}
	logger.LogEvent(logrus.InfoLevel, "Experiences seeded", logrus.Fields{"count": len(list)})
	return len(list), nil
}
