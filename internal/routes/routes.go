package routes

import (
	"net/http"

	roadmapinterfaces "github.com/Aditya290605/learnAi/internal/roadmap/interfaces"
	userinterfaces "github.com/Aditya290605/learnAi/internal/user/interfaces"
	"github.com/Aditya290605/learnAi/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

/* ==================== ROUTEUR ==================== */

func Router(userHandler *userinterfaces.UserHandler, roadmapHandler *roadmapinterfaces.RoadmapHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, http.StatusOK, "SkillPath API", nil)
	})

	r.Route("/api", func(r chi.Router) {
		userinterfaces.AuthRoutes(r, userHandler)
		roadmapinterfaces.RoadmapRoutes(r, roadmapHandler)
	})

	return r
}
