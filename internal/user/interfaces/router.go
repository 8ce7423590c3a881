package interfaces

import (
	"github.com/Aditya290605/learnAi/pkg/auth"
	"github.com/go-chi/chi/v5"
)

// Routeur d'authentification
func AuthRoutes(r chi.Router, handler *UserHandler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", handler.Signup)
		r.Post("/signin", handler.Signin)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/me", handler.Me)
			r.Put("/profile", handler.UpdateProfile)
			r.Put("/change-password", handler.ChangePassword)
			r.Post("/logout", handler.Logout)
		})
	})
}
