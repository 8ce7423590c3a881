package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Aditya290605/learnAi/internal/roadmap/domain"
	"github.com/Aditya290605/learnAi/internal/roadmap/generator"
	"github.com/Aditya290605/learnAi/internal/roadmap/service"
	"github.com/Aditya290605/learnAi/pkg/auth"
	"github.com/Aditya290605/learnAi/pkg/response"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoadmapHandler expose le service roadmap en HTTP.
type RoadmapHandler struct {
	service *service.RoadmapService
}

func NewRoadmapHandler(s *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{service: s}
}

// Identifiant utilisateur déposé par le middleware d'authentification
func currentUserID(r *http.Request) (primitive.ObjectID, bool) {
	raw, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return userID, true
}

// Traduction des erreurs du service vers l'enveloppe HTTP. Les cas "absent"
// et "pas propriétaire" produisent le même 404.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Roadmap non trouvée")
	case errors.Is(err, domain.ErrStepNotFound):
		response.Error(w, http.StatusNotFound, "Étape non trouvée")
	default:
		response.Error(w, http.StatusInternalServerError, "Erreur interne")
	}
}

// Créer une roadmap
func (h *RoadmapHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	var intent generator.Intent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		response.Error(w, http.StatusBadRequest, "Format de données invalide")
		return
	}

	// La génération peut prendre plusieurs secondes
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	roadmap, err := h.service.Create(ctx, userID, intent)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Roadmap créée avec succès", map[string]any{"roadmap": roadmap})
}

// Récupérer les roadmaps de l'utilisateur connecté
func (h *RoadmapHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	roadmaps, err := h.service.ListForUser(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Roadmaps récupérées avec succès", map[string]any{"roadmaps": roadmaps})
}

// Récupérer une roadmap
func (h *RoadmapHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	roadmapID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "Roadmap non trouvée")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	roadmap, err := h.service.GetByID(ctx, userID, roadmapID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Roadmap récupérée avec succès", map[string]any{"roadmap": roadmap})
}

// Modifier la complétion d'une étape
func (h *RoadmapHandler) UpdateStep(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	roadmapID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "Roadmap non trouvée")
		return
	}
	stepID := chi.URLParam(r, "stepId")

	var body struct {
		Completed *bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Completed == nil {
		response.Error(w, http.StatusBadRequest, "champs invalides : completed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	roadmap, err := h.service.SetStepCompletion(ctx, userID, roadmapID, stepID, *body.Completed)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Étape mise à jour avec succès", map[string]any{"roadmap": roadmap})
}

// Générer des ressources supplémentaires pour une étape
func (h *RoadmapHandler) AugmentResources(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	roadmapID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "Roadmap non trouvée")
		return
	}
	stepID := chi.URLParam(r, "stepId")

	// La génération peut prendre plusieurs secondes
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	resources, err := h.service.AugmentStepResources(ctx, userID, roadmapID, stepID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Ressources générées avec succès", map[string]any{"resources": resources})
}

// Supprimer (logiquement) une roadmap
func (h *RoadmapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	roadmapID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "Roadmap non trouvée")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.SoftDelete(ctx, userID, roadmapID); err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Roadmap supprimée avec succès", nil)
}

// Statistiques du tableau de bord
func (h *RoadmapHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.service.StatsForUser(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Statistiques récupérées avec succès", map[string]any{"stats": stats})
}
