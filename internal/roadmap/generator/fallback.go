package generator

import (
	"fmt"

	"github.com/Aditya290605/learnAi/internal/roadmap/domain"
)

// FallbackDraft construit le brouillon statique servi quand la génération
// échoue : un squelette fixe de 8 étapes, paramétré uniquement par la
// compétence et le niveau de départ. Ce chemin garantit que la création
// d'une roadmap n'échoue jamais.
func FallbackDraft(skill, currentLevel string) *Draft {
	return &Draft{
		Title:          fmt.Sprintf("Complete %s Learning Roadmap", skill),
		Skill:          skill,
		Description:    fmt.Sprintf("A comprehensive learning path for %s designed for %s level learners", skill, currentLevel),
		Difficulty:     domain.DifficultyBeginner,
		EstimatedHours: 60,
		Steps: []domain.Step{
			{
				ID:            "step_1",
				Title:         "Introduction to " + skill,
				Description:   "Start with the fundamentals and basic concepts",
				Duration:      "1-2 weeks",
				Prerequisites: []string{},
				Resources: []domain.Resource{
					{
						ID:        "resource_1_1",
						Title:     "Complete Beginner's Guide to " + skill,
						Thumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
						Duration:  "1:15:00",
						Views:     "250K views",
						Channel:   "Tech Tutorials",
					},
					{
						ID:        "resource_1_2",
						Title:     skill + " Fundamentals Explained",
						Thumbnail: "https://img.youtube.com/vi/9bZkp7q19f0/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=9bZkp7q19f0",
						Duration:  "45:30",
						Views:     "180K views",
						Channel:   "Learning Hub",
					},
				},
			},
			{
				ID:            "step_2",
				Title:         "Core Concepts and Principles",
				Description:   "Learn the essential concepts and foundational principles",
				Duration:      "2-3 weeks",
				Prerequisites: []string{"step_1"},
				Resources: []domain.Resource{
					{
						ID:        "resource_2_1",
						Title:     "Core " + skill + " Concepts You Need to Know",
						Thumbnail: "https://img.youtube.com/vi/jNQXAC9IVRw/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=jNQXAC9IVRw",
						Duration:  "2:10:00",
						Views:     "320K views",
						Channel:   "Code Academy",
					},
				},
			},
			{
				ID:            "step_3",
				Title:         "Practical Applications",
				Description:   "Apply your knowledge through hands-on projects",
				Duration:      "2-3 weeks",
				Prerequisites: []string{"step_1", "step_2"},
				Resources: []domain.Resource{
					{
						ID:        "resource_3_1",
						Title:     "Build Your First " + skill + " Project",
						Thumbnail: "https://img.youtube.com/vi/kJQP7kiw5Fk/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=kJQP7kiw5Fk",
						Duration:  "1:45:00",
						Views:     "150K views",
						Channel:   "Project Builder",
					},
				},
			},
			{
				ID:            "step_4",
				Title:         "Advanced Techniques",
				Description:   "Master advanced techniques and optimization",
				Duration:      "3-4 weeks",
				Prerequisites: []string{"step_1", "step_2", "step_3"},
				Resources: []domain.Resource{
					{
						ID:        "resource_4_1",
						Title:     "Advanced " + skill + " Techniques",
						Thumbnail: "https://img.youtube.com/vi/ZZ5LpwO-An4/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=ZZ5LpwO-An4",
						Duration:  "2:30:00",
						Views:     "95K views",
						Channel:   "Advanced Tutorials",
					},
				},
			},
			{
				ID:            "step_5",
				Title:         "Real-World Projects",
				Description:   "Build comprehensive real-world applications",
				Duration:      "4-5 weeks",
				Prerequisites: []string{"step_1", "step_2", "step_3", "step_4"},
				Resources: []domain.Resource{
					{
						ID:        "resource_5_1",
						Title:     "Complete " + skill + " Project from Scratch",
						Thumbnail: "https://img.youtube.com/vi/OPf0YbXqDm0/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=OPf0YbXqDm0",
						Duration:  "3:15:00",
						Views:     "200K views",
						Channel:   "Real Projects",
					},
				},
			},
			{
				ID:            "step_6",
				Title:         "Best Practices and Optimization",
				Description:   "Learn industry best practices and performance optimization",
				Duration:      "2-3 weeks",
				Prerequisites: []string{"step_1", "step_2", "step_3", "step_4", "step_5"},
				Resources: []domain.Resource{
					{
						ID:        "resource_6_1",
						Title:     skill + " Best Practices Guide",
						Thumbnail: "https://img.youtube.com/vi/1u2qu-EmIRc/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=1u2qu-EmIRc",
						Duration:  "1:20:00",
						Views:     "120K views",
						Channel:   "Best Practices",
					},
				},
			},
			{
				ID:            "step_7",
				Title:         "Testing and Debugging",
				Description:   "Master testing strategies and debugging techniques",
				Duration:      "2-3 weeks",
				Prerequisites: []string{"step_1", "step_2", "step_3", "step_4", "step_5", "step_6"},
				Resources: []domain.Resource{
					{
						ID:        "resource_7_1",
						Title:     "Testing and Debugging " + skill + " Applications",
						Thumbnail: "https://img.youtube.com/vi/3YxaaGgTQYM/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=3YxaaGgTQYM",
						Duration:  "1:50:00",
						Views:     "85K views",
						Channel:   "Testing Pro",
					},
				},
			},
			{
				ID:            "step_8",
				Title:         "Deployment and Production",
				Description:   "Learn to deploy and maintain production applications",
				Duration:      "2-3 weeks",
				Prerequisites: []string{"step_1", "step_2", "step_3", "step_4", "step_5", "step_6", "step_7"},
				Resources: []domain.Resource{
					{
						ID:        "resource_8_1",
						Title:     "Deploy " + skill + " to Production",
						Thumbnail: "https://img.youtube.com/vi/9cKsq14Kfsw/maxresdefault.jpg",
						URL:       "https://www.youtube.com/watch?v=9cKsq14Kfsw",
						Duration:  "1:30:00",
						Views:     "110K views",
						Channel:   "Deployment Guide",
					},
				},
			},
		},
	}
}
