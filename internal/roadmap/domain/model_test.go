package domain

import (
	"errors"
	"fmt"
	"testing"
)

func buildRoadmap(totalSteps int, completed ...int) *Roadmap {
	roadmap := &Roadmap{
		Title:    "Test",
		Skill:    "Go",
		IsActive: true,
	}
	done := make(map[int]bool)
	for _, index := range completed {
		done[index] = true
	}
	for i := 1; i <= totalSteps; i++ {
		roadmap.Steps = append(roadmap.Steps, Step{
			ID:        fmt.Sprintf("step_%d", i),
			Title:     fmt.Sprintf("Étape %d", i),
			Completed: done[i],
		})
	}
	roadmap.RecomputeAggregates()
	return roadmap
}

func checkAggregates(t *testing.T, roadmap *Roadmap) {
	t.Helper()

	if roadmap.TotalSteps != len(roadmap.Steps) {
		t.Errorf("TotalSteps = %d, attendu %d", roadmap.TotalSteps, len(roadmap.Steps))
	}
	completed := 0
	for _, step := range roadmap.Steps {
		if step.Completed {
			completed++
		}
	}
	if roadmap.CompletedSteps != completed {
		t.Errorf("CompletedSteps = %d, attendu %d", roadmap.CompletedSteps, completed)
	}
	if roadmap.Progress < 0 || roadmap.Progress > 100 {
		t.Errorf("Progress = %d, hors de [0, 100]", roadmap.Progress)
	}
}

func TestRecomputeAggregates(t *testing.T) {
	tests := []struct {
		name         string
		totalSteps   int
		completed    []int
		wantProgress int
	}{
		{"aucune étape", 0, nil, 0},
		{"rien de complété", 10, nil, 0},
		{"trois étapes sur dix", 10, []int{1, 2, 3}, 30},
		{"tout complété", 8, []int{1, 2, 3, 4, 5, 6, 7, 8}, 100},
		{"arrondi au plus proche", 3, []int{1}, 33},
		{"arrondi vers le haut", 3, []int{1, 2}, 67},
		{"trois sur sept", 7, []int{1, 2, 3}, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roadmap := buildRoadmap(tt.totalSteps, tt.completed...)
			checkAggregates(t, roadmap)
			if roadmap.Progress != tt.wantProgress {
				t.Errorf("Progress = %d, attendu %d", roadmap.Progress, tt.wantProgress)
			}
		})
	}
}

func TestSetStepCompletion(t *testing.T) {
	roadmap := buildRoadmap(10)

	if err := roadmap.SetStepCompletion("step_3", true); err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}
	if !roadmap.FindStep("step_3").Completed {
		t.Error("step_3 devrait être complétée")
	}
	if roadmap.Progress != 10 {
		t.Errorf("Progress = %d, attendu 10", roadmap.Progress)
	}
	checkAggregates(t, roadmap)

	// décompléter
	if err := roadmap.SetStepCompletion("step_3", false); err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}
	if roadmap.Progress != 0 || roadmap.CompletedSteps != 0 {
		t.Errorf("après décomplétion : Progress = %d, CompletedSteps = %d", roadmap.Progress, roadmap.CompletedSteps)
	}
}

func TestSetStepCompletionIdempotent(t *testing.T) {
	roadmap := buildRoadmap(10)

	if err := roadmap.SetStepCompletion("step_5", true); err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}
	first := *roadmap
	if err := roadmap.SetStepCompletion("step_5", true); err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}

	if roadmap.Progress != first.Progress || roadmap.CompletedSteps != first.CompletedSteps {
		t.Errorf("double complétion non idempotente : Progress %d vs %d, CompletedSteps %d vs %d",
			roadmap.Progress, first.Progress, roadmap.CompletedSteps, first.CompletedSteps)
	}
}

func TestSetStepCompletionUnknownStep(t *testing.T) {
	roadmap := buildRoadmap(3)

	err := roadmap.SetStepCompletion("step_42", true)
	if !errors.Is(err, ErrStepNotFound) {
		t.Errorf("erreur = %v, attendu ErrStepNotFound", err)
	}
	if roadmap.CompletedSteps != 0 {
		t.Errorf("l'agrégat ne doit pas changer sur une étape inconnue")
	}
}

func TestAppendResources(t *testing.T) {
	roadmap := buildRoadmap(3)
	roadmap.Steps[0].Resources = []Resource{
		{ID: "resource_0_0", Title: "Première vidéo"},
		{ID: "resource_0_1", Title: "Deuxième vidéo"},
	}

	added := []Resource{
		{ID: "resource_a", Title: "Nouvelle 1"},
		{ID: "resource_b", Title: "Nouvelle 2"},
		{ID: "resource_c", Title: "Nouvelle 3"},
	}
	if err := roadmap.AppendResources("step_1", added); err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}

	resources := roadmap.FindStep("step_1").Resources
	if len(resources) != 5 {
		t.Fatalf("len(Resources) = %d, attendu 5", len(resources))
	}
	// les nouvelles arrivent en fin de liste, ordre conservé
	if resources[2].ID != "resource_a" || resources[4].ID != "resource_c" {
		t.Errorf("ordre d'ajout non conservé : %v", resources)
	}

	if err := roadmap.AppendResources("step_inconnu", added); !errors.Is(err, ErrStepNotFound) {
		t.Errorf("erreur = %v, attendu ErrStepNotFound", err)
	}
}

func TestFindStep(t *testing.T) {
	roadmap := buildRoadmap(3)

	if step := roadmap.FindStep("step_2"); step == nil || step.ID != "step_2" {
		t.Errorf("FindStep(step_2) = %v", step)
	}
	if step := roadmap.FindStep("absent"); step != nil {
		t.Errorf("FindStep(absent) devrait retourner nil, obtenu %v", step)
	}
}
