package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Aditya290605/learnAi/internal/roadmap/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiGenerator appelle l'API Gemini pour produire les brouillons.
// Instance explicitement construite et injectée dans le service : pas de
// client global au niveau du package.
type GeminiGenerator struct {
	APIKey  string
	Model   string
	BaseURL string
	client  *http.Client
}

// NewGeminiGenerator construit l'adaptateur avec un délai d'attente borné :
// au-delà, l'appel est traité comme un échec de génération.
func NewGeminiGenerator(apiKey, model string, timeout time.Duration) *GeminiGenerator {
	return &GeminiGenerator{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Formes JSON de l'API generateContent
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate produit un brouillon de roadmap. Toute défaillance amont (réseau,
// réponse mal formée, moins de 8 étapes) retombe silencieusement sur le
// brouillon statique : l'appelant reçoit toujours un brouillon utilisable.
func (g *GeminiGenerator) Generate(ctx context.Context, intent Intent) *Draft {
	draft, err := g.generate(ctx, intent)
	if err != nil {
		log.Printf("Génération Gemini échouée (%v), utilisation du brouillon statique", err)
		return FallbackDraft(intent.Skill, intent.CurrentLevel)
	}
	return draft
}

func (g *GeminiGenerator) generate(ctx context.Context, intent Intent) (*Draft, error) {
	text, err := g.generateContent(ctx, roadmapPrompt(intent))
	if err != nil {
		return nil, err
	}

	// La réponse est du texte libre : on en extrait le premier objet JSON
	raw, ok := extractJSON(text, '{', '}')
	if !ok {
		return nil, fmt.Errorf("aucun objet JSON dans la réponse")
	}

	var draft Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("réponse JSON invalide : %w", err)
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("brouillon sans titre")
	}
	if len(draft.Steps) < 8 {
		return nil, fmt.Errorf("brouillon incomplet : %d étapes (minimum 8)", len(draft.Steps))
	}

	normalizeDraft(&draft, intent)
	return &draft, nil
}

// GenerateStepResources produit des ressources supplémentaires pour une
// étape. Tout échec retourne une liste vide, jamais le brouillon statique.
func (g *GeminiGenerator) GenerateStepResources(ctx context.Context, skill, stepTitle string) []domain.Resource {
	text, err := g.generateContent(ctx, resourcesPrompt(skill, stepTitle))
	if err != nil {
		log.Printf("Génération de ressources échouée : %v", err)
		return []domain.Resource{}
	}

	raw, ok := extractJSON(text, '[', ']')
	if !ok {
		return []domain.Resource{}
	}

	var resources []domain.Resource
	if err := json.Unmarshal([]byte(raw), &resources); err != nil {
		return []domain.Resource{}
	}
	return resources
}

// Appel HTTP brut vers l'API, retourne le texte du premier candidat
func (g *GeminiGenerator) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("statut %d : %s", resp.StatusCode, payload)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("réponse sans candidat")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSON isole le bloc entre la première occurrence de open et la
// dernière de close (le modèle entoure souvent le JSON de texte libre).
func extractJSON(text string, opening, closing byte) (string, bool) {
	start := strings.IndexByte(text, opening)
	end := strings.LastIndexByte(text, closing)
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// normalizeDraft garantit des identifiants stables et les valeurs par défaut
// attendues avant que le brouillon ne quitte l'adaptateur.
func normalizeDraft(draft *Draft, intent Intent) {
	if draft.Skill == "" {
		draft.Skill = intent.Skill
	}
	for i := range draft.Steps {
		step := &draft.Steps[i]
		if step.ID == "" {
			step.ID = fmt.Sprintf("step_%d", i+1)
		}
		step.Completed = false
		if step.Prerequisites == nil {
			step.Prerequisites = []string{}
		}
		for j := range step.Resources {
			resource := &step.Resources[j]
			if resource.ID == "" {
				resource.ID = fmt.Sprintf("resource_%d_%d", i, j)
			}
			if resource.Channel == "" {
				resource.Channel = "Unknown Channel"
			}
		}
	}
}

func roadmapPrompt(intent Intent) string {
	return fmt.Sprintf(`Tu es un expert en création de parcours d'apprentissage. Construis une roadmap complète pour apprendre %s.

Profil de l'utilisateur :
- Niveau actuel : %s
- Objectif visé : %s
- Heures disponibles par semaine : %d

Contraintes :
1. Au moins 8 étapes détaillées, progressives, chacune s'appuyant sur les précédentes
2. Une durée réaliste par étape compte tenu du temps disponible
3. Les prérequis de chaque étape listés par identifiant d'étape
4. 2 à 3 ressources YouTube réelles par étape (titres et chaînes existants)

Réponds avec un objet JSON de cette forme exacte :
{
  "title": "Titre de la roadmap",
  "skill": "%s",
  "description": "Description du parcours",
  "difficulty": "Beginner|Intermediate|Advanced",
  "estimatedHours": 60,
  "steps": [
    {
      "id": "step_1",
      "title": "Titre de l'étape",
      "description": "Ce qu'il faut apprendre et pourquoi",
      "duration": "2-3 weeks",
      "prerequisites": [],
      "resources": [
        {
          "id": "resource_1",
          "title": "Titre de la vidéo",
          "thumbnail": "https://img.youtube.com/vi/VIDEO_ID/maxresdefault.jpg",
          "url": "https://www.youtube.com/watch?v=VIDEO_ID",
          "duration": "1:30:00",
          "views": "500K views",
          "channel": "Nom de la chaîne"
        }
      ]
    }
  ]
}

Le JSON doit être valide et correctement formaté.`,
		intent.Skill, intent.CurrentLevel, intent.TargetOutcome, intent.HoursPerWeek, intent.Skill)
}

func resourcesPrompt(skill, stepTitle string) string {
	return fmt.Sprintf(`Propose 3 à 5 ressources YouTube réelles et de qualité pour apprendre "%s" dans le cadre de "%s".

Réponds avec un tableau JSON de cette forme exacte :
[
  {
    "id": "resource_1",
    "title": "Titre de la vidéo",
    "thumbnail": "https://img.youtube.com/vi/VIDEO_ID/maxresdefault.jpg",
    "url": "https://www.youtube.com/watch?v=VIDEO_ID",
    "duration": "1:30:00",
    "views": "250K views",
    "channel": "Nom de la chaîne"
  }
]`, stepTitle, skill)
}
