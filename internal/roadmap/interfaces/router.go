package interfaces

import (
	"github.com/Aditya290605/learnAi/pkg/auth"
	"github.com/go-chi/chi/v5"
)

// Routeur roadmaps : toutes les routes exigent un token valide.
// /stats est déclaré avant /{id} pour ne pas être capturé par le paramètre.
func RoadmapRoutes(r chi.Router, handler *RoadmapHandler) {
	r.Route("/roadmaps", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/", handler.Create)
		r.Get("/", handler.List)
		r.Get("/stats", handler.Stats)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}/steps/{stepId}", handler.UpdateStep)
		r.Post("/{id}/steps/{stepId}/resources", handler.AugmentResources)
		r.Delete("/{id}", handler.Delete)
	})
}
