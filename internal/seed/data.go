package seed

import (
	"time"

	"portfolio-api/internal/models"

	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func category(name, icon, color string, order int, skills ...string) models.SkillCategory {
	return models.SkillCategory{
		Name:   name,
		Icon:   icon,
		Color:  color,
		Order:  order,
		Skills: models.SkillsFromNames(skills),
	}
}

func skillCategories() []models.SkillCategory {
	return []models.SkillCategory{
		category("Frontend", "Monitor", "rgba(59, 130, 246, 0.1)", 1,
			"Vue.js", "Nuxt.js", "Next.js", "React.js", "TypeScript", "Tailwind CSS", "Bootstrap", "HTML/CSS", "Jetpack Compose"),
		category("Backend", "Server", "rgba(16, 185, 129, 0.1)", 2,
			"NestJS", "Node.js", "Express.js", "Laravel", "PHP", "REST API", "Python"),
		category("Database", "Database", "rgba(245, 158, 11, 0.1)", 3,
			"PostgreSQL", "MySQL", "MariaDB", "MongoDB", "Firebase", "Prisma"),
		category("Mobile & IoT", "Cpu", "rgba(239, 68, 68, 0.1)", 4,
			"Kotlin", "Retrofit", "ESP8266", "Arduino", "MQTT", "Sensor Integration", "Orange Pi"),
		category("AI & Machine Learning", "Brain", "rgba(168, 85, 247, 0.1)", 5,
			"TensorFlow", "Python", "Computer Vision", "Pandas", "NumPy", "Scikit-learn"),
		category("DevOps & Tools", "Wrench", "rgba(139, 92, 246, 0.1)", 6,
			"Git", "Docker", "CI/CD", "AWS", "GCP", "Firebase", "Postman", "Figma", "Linux", "Vercel"),
	}
}

func projects() []models.Project {
	const profileURL = "https://github.com/snazrimuh"

	return []models.Project{
		{
			Title:       "Correspondence System (New Arsipku)",
			Description: "A modern correspondence system for AirNav Indonesia built with NestJS, improving performance, scalability, and maintainability for daily internal and external official communications.",
			Tech:        datatypes.JSONSlice[string]{"TypeScript", "NestJS", "MySQL", "REST API"},
			Github:      strPtr("https://github.com/snazrimuh/airnav-korespondensi-be"),
			Image:       strPtr("/new-arsipku.png"),
			Order:       1,
		},
		{
			Title:       "Event Management (NavEvent)",
			Description: "Digital platform for AirNav Indonesia enabling paperless workflows, certificate distribution, and real-time admin dashboards for comprehensive event tracking.",
			Tech:        datatypes.JSONSlice[string]{"PHP", "Laravel", "MySQL", "CI/CD"},
			Github:      strPtr("https://github.com/snazrimuh/airnav-navevent-be"),
			Image:       strPtr("/nav-event.png"),
			Order:       2,
		},
		{
			Title:       "Online Service System",
			Description: "Fullstack web application for Kab. Sukohajo providing online services to citizens with improved accessibility and service delivery capabilities.",
			Tech:        datatypes.JSONSlice[string]{"JavaScript", "Node.js", "Express", "MongoDB", "ReactJS"},
			Github:      strPtr(profileURL),
			Image:       strPtr("/online-service.png"),
			Order:       3,
		},
		{
			Title:       "Election System UNS",
			Description: "Digital election platform for Universitas Sebelas Maret enabling secure voting with real-time result management and authentication systems.",
			Tech:        datatypes.JSONSlice[string]{"Laravel", "MySQL", "PHP", "HTML/CSS"},
			Github:      strPtr(profileURL),
			Image:       strPtr("/election-system.png"),
			Order:       4,
		},
		{
			Title:       "Stunting Monitoring System",
			Description: "Web-based monitoring platform for tracking stunting cases with data visualization and reporting capabilities for healthcare professionals.",
			Tech:        datatypes.JSONSlice[string]{"Node.js", "Express", "MongoDB", "ReactJS"},
			Github:      strPtr(profileURL),
			Image:       strPtr("/stunting-monitoring.png"),
			Order:       5,
		},
		{
			Title:       "BCA Revamp Mobile App",
			Description: "Mobile application with accessibility focus achieving 100% WCAG 2.1 compliance. Improved performance 30% using Kotlin Coroutines with Clean Architecture.",
			Tech:        datatypes.JSONSlice[string]{"Kotlin", "Jetpack Compose", "Retrofit", "MVVM"},
			Github:      strPtr(profileURL),
			Image:       strPtr("/bca-revamp.png"),
			Order:       6,
		},
		{
			Title:       "TransJogja Route Optimization",
			Description: "Machine learning project optimizing public transportation routes using YOLOv5 for object detection and predictive models for route efficiency.",
			Tech:        datatypes.JSONSlice[string]{"Python", "YOLOv5", "TensorFlow", "Machine Learning"},
			Github:      strPtr(profileURL),
			Image:       strPtr("/transjogja.png"),
			Order:       7,
		},
		{
			Title:       "Career Recommendation System",
			Description: "AI-powered platform using machine learning to suggest suitable career paths based on user skills and preferences with multiple learning options.",
			Tech:        datatypes.JSONSlice[string]{"Python", "Machine Learning", "TensorFlow", "Pandas"},
			Github:      strPtr(profileURL),
			Image:       strPtr("/career-recommendation.png"),
			Order:       8,
		},
	}
}

func experiences() []models.Experience {
	return []models.Experience{
		{
			Title:       "Backend Developer",
			Company:     "Lembaga Penyelenggara Pelayanan Navigasi Penerbangan Indonesia (AirNav Indonesia)",
			Location:    strPtr("Tangerang, Indonesia"),
			StartDate:   date("2025-10-01"),
			Description: strPtr("Built RESTful APIs for navigation systems. Optimized DB queries by 40%. Implemented CI/CD pipelines."),
			Type:        models.ExperienceWork,
			Order:       1,
		},
		{
			Title:       "AI Specialist",
			Company:     "Outlier AI",
			Location:    strPtr("California, United States (Remote)"),
			StartDate:   date("2024-10-01"),
			EndDate:     datePtr("2025-03-31"),
			Description: strPtr("Enhanced LLM accuracy by 15% through scenario evaluation. Debugged AI code for training datasets."),
			Type:        models.ExperienceWork,
			Order:       2,
		},
		{
			Title:       "Backend Trainee",
			Company:     "AWS Back-End Academy",
			Location:    strPtr("Jakarta, Indonesia"),
			StartDate:   date("2025-01-01"),
			EndDate:     datePtr("2025-02-28"),
			Description: strPtr("Deployed AWS apps with 25% cost improvement. Implemented Docker and CI/CD reducing inconsistencies by 40%."),
			Type:        models.ExperienceWork,
			Order:       3,
		},
		{
			Title:       "Mobile Developer Bootcamp",
			Company:     "SYNRGY Academy presented by PT. Bank Central Asia",
			Location:    strPtr("Jakarta, Indonesia"),
			StartDate:   date("2024-02-01"),
			EndDate:     datePtr("2024-09-30"),
			Description: strPtr("Built BCA Mobile app with 100% WCAG 2.1 compliance. Improved 30% using Kotlin with 30+ APIs."),
			Type:        models.ExperienceEducation,
			Order:       4,
		},
		{
			Title:       "Machine Learning Cohort",
			Company:     "Bangkit Academy led by Google, Tokopedia, Gojek & Traveloka",
			Location:    strPtr("Jakarta, Indonesia"),
			StartDate:   date("2023-08-01"),
			EndDate:     datePtr("2024-01-31"),
			Description: strPtr("Completed 500+ hours of ML courses. Led team developing Recommendation App scoring 92/100."),
			Type:        models.ExperienceEducation,
			Order:       5,
		},
		{
			Title:       "Head of Networking and Collaboration Division",
			Company:     "Himpunan Mahasiswa Informatika UNS",
			Location:    strPtr("Surakarta, Indonesia"),
			StartDate:   date("2022-02-01"),
			EndDate:     datePtr("2023-01-31"),
			Description: strPtr("Partnered with 30+ tech companies. Coordinated 10 events with 300+ participants."),
			Type:        models.ExperienceWork,
			Order:       6,
		},
		{
			Title:       "S1 Informatics",
			Company:     "Universitas Sebelas Maret",
			Location:    strPtr("Surakarta, Indonesia"),
			StartDate:   date("2021-08-01"),
			EndDate:     datePtr("2025-07-31"),
			Description: strPtr("Degree in Computer Science. Thesis: YOLOv5 Traffic Detection. GPA: 3.75/4.00 (cum laude)"),
			Type:        models.ExperienceEducation,
			Order:       7,
		},
	}
}
