package domain

import (
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Étape introuvable dans la roadmap
var ErrStepNotFound = errors.New("étape non trouvée")

// Niveaux de difficulté acceptés
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Ressource d'apprentissage rattachée à une étape (vidéo externe)
type Resource struct {
	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Thumbnail string `bson:"thumbnail" json:"thumbnail"`
	URL       string `bson:"url" json:"url"`
	Duration  string `bson:"duration" json:"duration"`
	Views     string `bson:"views" json:"views"`
	Channel   string `bson:"channel" json:"channel"`
}

// Étape d'une roadmap. L'identifiant n'est unique qu'au sein de sa roadmap.
// Les prérequis sont indicatifs : ils ne bloquent jamais la complétion côté
// serveur.
type Step struct {
	ID            string     `bson:"id" json:"id"`
	Title         string     `bson:"title" json:"title"`
	Description   string     `bson:"description" json:"description"`
	Duration      string     `bson:"duration" json:"duration"`
	Prerequisites []string   `bson:"prerequisites" json:"prerequisites"`
	Completed     bool       `bson:"completed" json:"completed"`
	Resources     []Resource `bson:"resources" json:"resources"`
}

// Roadmap d'apprentissage appartenant à un utilisateur.
// Les champs Progress, CompletedSteps et TotalSteps sont dérivés de Steps :
// ils ne sont jamais fournis par l'appelant, RecomputeAggregates les
// recalcule avant chaque persistance.
type Roadmap struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Title          string             `bson:"title" json:"title"`
	Skill          string             `bson:"skill" json:"skill"`
	Description    string             `bson:"description" json:"description"`
	Difficulty     string             `bson:"difficulty" json:"difficulty"`
	EstimatedHours int                `bson:"estimatedHours" json:"estimatedHours"`
	Steps          []Step             `bson:"steps" json:"steps"`
	Progress       int                `bson:"progress" json:"progress"`
	CompletedSteps int                `bson:"completedSteps" json:"completedSteps"`
	TotalSteps     int                `bson:"totalSteps" json:"totalSteps"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	AIGenerated    bool               `bson:"aiGenerated" json:"aiGenerated"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecomputeAggregates recalcule les champs dérivés à partir des étapes.
// Progress vaut 0 quand la roadmap n'a aucune étape.
func (r *Roadmap) RecomputeAggregates() {
	total := len(r.Steps)
	completed := 0
	for _, step := range r.Steps {
		if step.Completed {
			completed++
		}
	}

	r.TotalSteps = total
	r.CompletedSteps = completed
	if total == 0 {
		r.Progress = 0
	} else {
		r.Progress = int(math.Round(float64(completed) * 100 / float64(total)))
	}
}

// FindStep retourne l'étape correspondante, ou nil si elle n'existe pas.
func (r *Roadmap) FindStep(stepID string) *Step {
	for i := range r.Steps {
		if r.Steps[i].ID == stepID {
			return &r.Steps[i]
		}
	}
	return nil
}

// SetStepCompletion positionne le drapeau de complétion d'une étape puis
// recalcule les agrégats.
func (r *Roadmap) SetStepCompletion(stepID string, completed bool) error {
	step := r.FindStep(stepID)
	if step == nil {
		return ErrStepNotFound
	}

	step.Completed = completed
	r.RecomputeAggregates()
	r.UpdatedAt = time.Now()
	return nil
}

// AppendResources ajoute des ressources à la fin de la liste d'une étape.
// Les identifiants fournis sont conservés tels quels, sans déduplication.
func (r *Roadmap) AppendResources(stepID string, resources []Resource) error {
	step := r.FindStep(stepID)
	if step == nil {
		return ErrStepNotFound
	}

	step.Resources = append(step.Resources, resources...)
	r.RecomputeAggregates()
	r.UpdatedAt = time.Now()
	return nil
}
