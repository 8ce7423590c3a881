package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aditya290605/learnAi/internal/roadmap/domain"
)

var testIntent = Intent{
	Skill:         "Go",
	CurrentLevel:  "Beginner",
	TargetOutcome: "Build a CLI tool",
	HoursPerWeek:  10,
}

// Serveur factice renvoyant le texte donné comme unique candidat
func newGeminiServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("méthode = %s, attendu POST", r.Method)
		}
		body := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
}

func newTestGenerator(baseURL string) *GeminiGenerator {
	g := NewGeminiGenerator("test-key", "gemini-2.0-flash", 5*time.Second)
	g.BaseURL = baseURL
	return g
}

// Brouillon valide à n étapes, identifiants et chaînes volontairement absents
func draftJSON(steps int) string {
	draft := map[string]any{
		"title":          "Roadmap Go complète",
		"skill":          "Go",
		"description":    "Parcours structuré",
		"difficulty":     "Beginner",
		"estimatedHours": 80,
	}
	var list []map[string]any
	for i := 1; i <= steps; i++ {
		list = append(list, map[string]any{
			"title":       fmt.Sprintf("Étape %d", i),
			"description": "…",
			"duration":    "1-2 weeks",
			"resources": []map[string]any{
				{"title": "Une vidéo", "url": "https://www.youtube.com/watch?v=abc"},
			},
		})
	}
	draft["steps"] = list
	raw, _ := json.Marshal(draft)
	return string(raw)
}

func TestFallbackDraft(t *testing.T) {
	draft := FallbackDraft("Go", "Beginner")

	if len(draft.Steps) != 8 {
		t.Fatalf("len(Steps) = %d, attendu 8", len(draft.Steps))
	}
	if draft.EstimatedHours != 60 {
		t.Errorf("EstimatedHours = %d, attendu 60", draft.EstimatedHours)
	}
	if draft.Difficulty != domain.DifficultyBeginner {
		t.Errorf("Difficulty = %q, attendu Beginner", draft.Difficulty)
	}
	if !strings.Contains(draft.Title, "Go") {
		t.Errorf("le titre %q devrait contenir la compétence", draft.Title)
	}
	if !strings.Contains(draft.Description, "Beginner") {
		t.Errorf("la description %q devrait mentionner le niveau", draft.Description)
	}
	for i, step := range draft.Steps {
		if step.ID != fmt.Sprintf("step_%d", i+1) {
			t.Errorf("Steps[%d].ID = %q", i, step.ID)
		}
		if step.Completed {
			t.Errorf("Steps[%d] ne doit pas être complétée", i)
		}
		if len(step.Resources) == 0 {
			t.Errorf("Steps[%d] sans ressource", i)
		}
	}
}

func TestGenerateNormalizesDraft(t *testing.T) {
	// le modèle entoure le JSON de texte libre
	server := newGeminiServer(t, "Voici votre roadmap :\n"+draftJSON(10)+"\nBon apprentissage !")
	defer server.Close()

	draft := newTestGenerator(server.URL).Generate(context.Background(), testIntent)

	if len(draft.Steps) != 10 {
		t.Fatalf("len(Steps) = %d, attendu 10", len(draft.Steps))
	}
	if draft.Title != "Roadmap Go complète" {
		t.Errorf("Title = %q, le brouillon amont devrait être conservé", draft.Title)
	}
	for i, step := range draft.Steps {
		if step.ID != fmt.Sprintf("step_%d", i+1) {
			t.Errorf("Steps[%d].ID = %q, identifiant non normalisé", i, step.ID)
		}
		if step.Prerequisites == nil {
			t.Errorf("Steps[%d].Prerequisites ne doit pas être nil", i)
		}
		for j, resource := range step.Resources {
			if resource.ID != fmt.Sprintf("resource_%d_%d", i, j) {
				t.Errorf("Steps[%d].Resources[%d].ID = %q", i, j, resource.ID)
			}
			if resource.Channel != "Unknown Channel" {
				t.Errorf("chaîne absente non remplacée : %q", resource.Channel)
			}
		}
	}
}

func TestGenerateFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"erreur amont",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			"réponse sans JSON",
			func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"candidates": []map[string]any{
						{"content": map[string]any{"parts": []map[string]any{{"text": "désolé, pas de roadmap"}}}},
					},
				})
			},
		},
		{
			"moins de 8 étapes",
			func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"candidates": []map[string]any{
						{"content": map[string]any{"parts": []map[string]any{{"text": draftJSON(3)}}}},
					},
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			draft := newTestGenerator(server.URL).Generate(context.Background(), testIntent)

			// jamais d'erreur : le brouillon statique prend le relais
			if len(draft.Steps) != 8 {
				t.Fatalf("len(Steps) = %d, attendu le brouillon statique à 8 étapes", len(draft.Steps))
			}
			if !strings.Contains(draft.Title, "Go") {
				t.Errorf("Title = %q", draft.Title)
			}
			if draft.EstimatedHours != 60 {
				t.Errorf("EstimatedHours = %d, attendu 60", draft.EstimatedHours)
			}
		})
	}
}

func TestGenerateStepResources(t *testing.T) {
	payload := `[{"id":"resource_1","title":"Concurrency Patterns","url":"https://www.youtube.com/watch?v=xyz","channel":"GopherCon"},
{"id":"resource_2","title":"Channels Deep Dive","url":"https://www.youtube.com/watch?v=uvw","channel":"JustForFunc"}]`
	server := newGeminiServer(t, "Voici des ressources :\n"+payload)
	defer server.Close()

	resources := newTestGenerator(server.URL).GenerateStepResources(context.Background(), "Go", "Concurrency")
	if len(resources) != 2 {
		t.Fatalf("len(resources) = %d, attendu 2", len(resources))
	}
	if resources[0].ID != "resource_1" || resources[1].Channel != "JustForFunc" {
		t.Errorf("ressources mal décodées : %+v", resources)
	}
}

func TestGenerateStepResourcesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resources := newTestGenerator(server.URL).GenerateStepResources(context.Background(), "Go", "Concurrency")
	if len(resources) != 0 {
		t.Errorf("len(resources) = %d, attendu une liste vide", len(resources))
	}
}
