package generator

import (
	"context"

	"github.com/Aditya290605/learnAi/internal/roadmap/domain"
)

// Intent décrit la demande structurée de l'utilisateur.
type Intent struct {
	Skill         string `json:"skill"`
	CurrentLevel  string `json:"currentLevel"`
	TargetOutcome string `json:"targetOutcome"`
	HoursPerWeek  int    `json:"hoursPerWeek"`
}

// Draft est la forme non persistée d'une roadmap renvoyée par le générateur,
// avant sa sauvegarde en base.
type Draft struct {
	Title          string        `json:"title"`
	Skill          string        `json:"skill"`
	Description    string        `json:"description"`
	Difficulty     string        `json:"difficulty"`
	EstimatedHours int           `json:"estimatedHours"`
	Steps          []domain.Step `json:"steps"`
}

// Generator produit des brouillons de roadmap et des ressources
// supplémentaires. Les implémentations ne retournent jamais d'erreur :
// Generate retombe sur le brouillon statique, GenerateStepResources sur une
// liste vide. La création d'une roadmap ne peut donc pas échouer à cause de
// la génération.
type Generator interface {
	Generate(ctx context.Context, intent Intent) *Draft
	GenerateStepResources(ctx context.Context, skill, stepTitle string) []domain.Resource
}
