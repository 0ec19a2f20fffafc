package services

import (
	"context"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"

	"gorm.io/datatypes"
)

const profileCacheKey = "profile"

type UpdateProfileInput struct {
	NameFirst          *string             `json:"nameFirst"`
	NameSecond         *string             `json:"nameSecond"`
	Roles              *[]string           `json:"roles"`
	Tagline            *string             `json:"tagline"`
	Bio                *string             `json:"bio"`
	Location           *string             `json:"location"`
	Email              *string             `json:"email"`
	Degree             *string             `json:"degree"`
	FreelanceAvailable *bool               `json:"freelanceAvailable"`
	OpenToWork         *bool               `json:"openToWork"`
	ResumeURL          *string             `json:"resumeUrl"`
	GithubURL          *string             `json:"githubUrl"`
	LinkedinURL        *string             `json:"linkedinUrl"`
	TwitterURL         *string             `json:"twitterUrl"`
	InstagramURL       *string             `json:"instagramUrl"`
	SiteTitle          *string             `json:"siteTitle"`
	SiteDescription    *string             `json:"siteDescription"`
	AboutCards         *[]models.AboutCard `json:"aboutCards" validate:"omitnil,dive"`
	SkillsTagline      *string             `json:"skillsTagline"`
	ResumeTagline      *string             `json:"resumeTagline"`
	ProjectsTagline    *string             `json:"projectsTagline"`
	ContactIntro       *string             `json:"contactIntro"`
}

type ProfileService interface {
	// Get returns the site profile, creating it from defaults on first use.
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, input UpdateProfileInput) (*models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	audit       AuditLogService
	cache       CacheService
	cacheTTL    time.Duration
}

func NewProfileService(profileRepo repository.ProfileRepository, audit AuditLogService, cache CacheService, cacheTTL time.Duration) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		audit:       audit,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	return readThrough(ctx, s.cache, profileCacheKey, s.cacheTTL, func() (*models.Profile, error) {
		return s.firstOrCreate(ctx)
	})
}

func (s *profileService) firstOrCreate(ctx context.Context) (*models.Profile, error) {
	return s.profileRepo.FirstOrCreate(ctx, DefaultProfile())
}

func (s *profileService) Update(ctx context.Context, input UpdateProfileInput) (*models.Profile, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	current, err := s.firstOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}
	setBool := func(column string, v *bool) {
		if v != nil {
			updates[column] = *v
		}
	}

	setString("name_first", input.NameFirst)
	setString("name_second", input.NameSecond)
	if input.Roles != nil {
		updates["roles"] = datatypes.JSONSlice[string](*input.Roles)
	}
	setString("tagline", input.Tagline)
	setString("bio", input.Bio)
	setString("location", input.Location)
	setString("email", input.Email)
	setString("degree", input.Degree)
	setBool("freelance_available", input.FreelanceAvailable)
	setBool("open_to_work", input.OpenToWork)
	setString("resume_url", input.ResumeURL)
	setString("github_url", input.GithubURL)
	setString("linkedin_url", input.LinkedinURL)
	setString("twitter_url", input.TwitterURL)
	setString("instagram_url", input.InstagramURL)
	setString("site_title", input.SiteTitle)
	setString("site_description", input.SiteDescription)
	if input.AboutCards != nil {
		updates["about_cards"] = datatypes.JSONSlice[models.AboutCard](*input.AboutCards)
	}
	setString("skills_tagline", input.SkillsTagline)
	setString("resume_tagline", input.ResumeTagline)
	setString("projects_tagline", input.ProjectsTagline)
	setString("contact_intro", input.ContactIntro)

	profile, err := s.profileRepo.Update(ctx, current.ID, updates)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, profileCacheKey)
	s.audit.Record(ctx, models.AuditUpdate, "profile", profile.ID, "")
	return profile, nil
}

func strPtr(s string) *string {
	return &s
}

// DefaultProfile is the content used the first time the profile is read.
func DefaultProfile() *models.Profile {
	return &models.Profile{
		NameFirst:  "Syah Rizan",
		NameSecond: "Nazri Muhammad",
		Roles:      datatypes.JSONSlice[string]{"Backend Developer", "Fullstack Engineer", "API Designer"},
		Tagline: "Software Engineer specializing in scalable backend systems, API architecture, and fullstack engineering for impactful products.\n" +
			"Based in Tangerang City, Indonesia.",
		Bio: "I am a Software Engineer with a strong passion for building scalable backend systems, clean APIs, and reliable fullstack applications. " +
			"With hands-on experience across backend development, mobile, and data-driven projects, I focus on creating efficient, maintainable solutions that solve real-world problems.\n" +
			"I enjoy designing clean architectures, optimizing system performance, and translating complex requirements into practical and impactful digital products. " +
			"Adaptable and collaborative by nature, I continuously explore new technologies and best practices to grow as an engineer and contribute to meaningful technology-driven environments.",
		Location:           "Tangerang City, Indonesia",
		Email:              "snazrimuh@gmail.com",
		Degree:             "S1 Informatics",
		FreelanceAvailable: true,
		OpenToWork:         true,
		GithubURL:          strPtr("https://github.com/snazrimuh"),
		LinkedinURL:        strPtr("https://linkedin.com/in/syahrizannazri/"),
		SiteTitle:          "Portfolio - Syah Rizan Nazri Muhammad",
		SiteDescription:    "Software Engineer with experience in backend development, API design, database management, and fullstack engineering for impactful products.",
		AboutCards: datatypes.JSONSlice[models.AboutCard]{
			{
				Title: "Backend Developer & Software Engineer",
				Description: "Experienced in backend system development, API design, database management, and IoT-based solutions. " +
					"Accustomed to working in project-based environments and collaborating effectively to solve problems in a structured and maintainable manner.",
			},
			{
				Title: "ML & AI Engineer",
				Description: "Experienced in building machine learning pipelines, training deep learning models, and integrating AI capabilities into real-world applications. " +
					"Passionate about data-driven solutions and applying modern AI techniques to solve practical problems.",
			},
		},
		SkillsTagline:   "Technologies and tools I use to build products from scratch.",
		ResumeTagline:   "My professional journey, from formal education to hands-on industry experience.",
		ProjectsTagline: "A selection of projects I have built, from backend systems to fullstack applications.",
		ContactIntro:    "I'm always open to discussing new projects, creative ideas, or opportunities. Feel free to reach out!",
	}
}
