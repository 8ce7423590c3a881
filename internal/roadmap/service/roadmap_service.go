package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Aditya290605/learnAi/internal/roadmap/domain"
	"github.com/Aditya290605/learnAi/internal/roadmap/generator"
	"github.com/Aditya290605/learnAi/pkg/cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roadmap absente ou appartenant à un autre utilisateur : les deux cas sont
// volontairement indistinguables pour l'appelant.
var ErrNotFound = errors.New("roadmap non trouvée")

// ValidationError liste les champs invalides d'une demande de création.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "champs invalides : " + strings.Join(e.Fields, ", ")
}

// RoadmapRepository est le contrat de persistance attendu par le service.
type RoadmapRepository interface {
	Insert(ctx context.Context, roadmap *domain.Roadmap) error
	FindActiveByID(ctx context.Context, userID, roadmapID primitive.ObjectID) (*domain.Roadmap, error)
	FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Roadmap, error)
	Update(ctx context.Context, roadmap *domain.Roadmap) error
}

// Stats agrégées pour le tableau de bord d'un utilisateur.
type Stats struct {
	TotalRoadmaps   int `json:"totalRoadmaps"`
	TotalSteps      int `json:"totalSteps"`
	CompletedSteps  int `json:"completedSteps"`
	AverageProgress int `json:"averageProgress"`
	TotalHours      int `json:"totalHours"`
}

// RoadmapService orchestre les cas d'usage liés aux roadmaps. Toutes les
// opérations sont scopées sur l'utilisateur propriétaire.
type RoadmapService struct {
	repo      RoadmapRepository
	generator generator.Generator
	cache     *cache.Cache
}

// NewRoadmapService instancie le service avec ses collaborateurs injectés.
// Le cache peut être nul (statistiques recalculées à chaque appel).
func NewRoadmapService(repo RoadmapRepository, gen generator.Generator, statsCache *cache.Cache) *RoadmapService {
	return &RoadmapService{
		repo:      repo,
		generator: gen,
		cache:     statsCache,
	}
}

// Créer une roadmap à partir de l'intention de l'utilisateur. La génération
// ne peut pas faire échouer la création : l'adaptateur retombe sur son
// brouillon statique en cas de problème amont.
func (s *RoadmapService) Create(ctx context.Context, userID primitive.ObjectID, intent generator.Intent) (*domain.Roadmap, error) {
	intent.Skill = strings.TrimSpace(intent.Skill)
	intent.CurrentLevel = strings.TrimSpace(intent.CurrentLevel)
	intent.TargetOutcome = strings.TrimSpace(intent.TargetOutcome)

	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	draft := s.generator.Generate(ctx, intent)

	now := time.Now()
	roadmap := &domain.Roadmap{
		User:           userID,
		Title:          draft.Title,
		Skill:          draft.Skill,
		Description:    draft.Description,
		Difficulty:     draft.Difficulty,
		EstimatedHours: draft.EstimatedHours,
		Steps:          draft.Steps,
		IsActive:       true,
		AIGenerated:    true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	roadmap.RecomputeAggregates()

	if err := s.repo.Insert(ctx, roadmap); err != nil {
		return nil, err
	}

	s.cache.InvalidateStats(ctx, userID.Hex())
	return roadmap, nil
}

func validateIntent(intent generator.Intent) error {
	var invalid []string
	if l := len(intent.Skill); l < 2 || l > 50 {
		invalid = append(invalid, "skill")
	}
	if l := len(intent.CurrentLevel); l < 2 || l > 100 {
		invalid = append(invalid, "currentLevel")
	}
	if l := len(intent.TargetOutcome); l < 10 || l > 500 {
		invalid = append(invalid, "targetOutcome")
	}
	if intent.HoursPerWeek < 1 || intent.HoursPerWeek > 168 {
		invalid = append(invalid, "hoursPerWeek")
	}
	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

// ListForUser retourne les roadmaps actives, les plus récentes d'abord.
func (s *RoadmapService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Roadmap, error) {
	roadmaps, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if roadmaps == nil {
		roadmaps = []domain.Roadmap{}
	}
	return roadmaps, nil
}

// GetByID retourne la roadmap si elle existe, est active et appartient à
// l'utilisateur ; ErrNotFound sinon.
func (s *RoadmapService) GetByID(ctx context.Context, userID, roadmapID primitive.ObjectID) (*domain.Roadmap, error) {
	roadmap, err := s.repo.FindActiveByID(ctx, userID, roadmapID)
	if err != nil {
		return nil, ErrNotFound
	}
	return roadmap, nil
}

// SetStepCompletion positionne la complétion d'une étape et persiste
// l'agrégat recalculé.
func (s *RoadmapService) SetStepCompletion(ctx context.Context, userID, roadmapID primitive.ObjectID, stepID string, completed bool) (*domain.Roadmap, error) {
	roadmap, err := s.GetByID(ctx, userID, roadmapID)
	if err != nil {
		return nil, err
	}

	if err := roadmap.SetStepCompletion(stepID, completed); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, roadmap); err != nil {
		return nil, err
	}

	s.cache.InvalidateStats(ctx, userID.Hex())
	return roadmap, nil
}

// AugmentStepResources génère des ressources supplémentaires pour une étape,
// les ajoute à l'agrégat persisté et retourne uniquement les nouvelles.
func (s *RoadmapService) AugmentStepResources(ctx context.Context, userID, roadmapID primitive.ObjectID, stepID string) ([]domain.Resource, error) {
	roadmap, err := s.GetByID(ctx, userID, roadmapID)
	if err != nil {
		return nil, err
	}

	step := roadmap.FindStep(stepID)
	if step == nil {
		return nil, domain.ErrStepNotFound
	}

	resources := s.generator.GenerateStepResources(ctx, roadmap.Skill, step.Title)
	if len(resources) > 0 {
		if err := roadmap.AppendResources(stepID, resources); err != nil {
			return nil, err
		}
		if err := s.repo.Update(ctx, roadmap); err != nil {
			return nil, err
		}
		s.cache.InvalidateStats(ctx, userID.Hex())
	}

	return resources, nil
}

// SoftDelete désactive la roadmap : elle disparaît des listes et des
// statistiques mais reste en base. Suppression logique définitive.
func (s *RoadmapService) SoftDelete(ctx context.Context, userID, roadmapID primitive.ObjectID) error {
	roadmap, err := s.GetByID(ctx, userID, roadmapID)
	if err != nil {
		return err
	}

	roadmap.IsActive = false
	roadmap.RecomputeAggregates()
	roadmap.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, roadmap); err != nil {
		return err
	}

	s.cache.InvalidateStats(ctx, userID.Hex())
	return nil
}

// StatsForUser agrège les roadmaps actives de l'utilisateur. Le résultat est
// servi depuis Redis quand l'entrée est encore chaude.
func (s *RoadmapService) StatsForUser(ctx context.Context, userID primitive.ObjectID) (*Stats, error) {
	var cached Stats
	if s.cache.GetStats(ctx, userID.Hex(), &cached) {
		return &cached, nil
	}

	roadmaps, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalRoadmaps: len(roadmaps)}
	progressSum := 0
	for _, roadmap := range roadmaps {
		stats.TotalSteps += roadmap.TotalSteps
		stats.CompletedSteps += roadmap.CompletedSteps
		stats.TotalHours += roadmap.EstimatedHours
		progressSum += roadmap.Progress
	}
	if len(roadmaps) > 0 {
		stats.AverageProgress = int(math.Round(float64(progressSum) / float64(len(roadmaps))))
	}

	s.cache.SetStats(ctx, userID.Hex(), stats)
	return stats, nil
}
