package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Aditya290605/learnAi/internal/user/service"
	"github.com/Aditya290605/learnAi/pkg/auth"
	"github.com/Aditya290605/learnAi/pkg/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler expose le service utilisateurs en HTTP.
type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

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

// Inscription
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Données invalides")
		return
	}

	user, token, err := h.service.Register(ctx, body.Name, body.Email, body.Password)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Success(w, http.StatusCreated, "Utilisateur créé avec succès", map[string]any{
		"token": token,
		"user":  user.Profile(),
	})
}

// Connexion
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Données invalides")
		return
	}

	user, token, err := h.service.Login(ctx, body.Email, body.Password)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Connexion réussie", map[string]any{
		"token": token,
		"user":  user.Profile(),
	})
}

// Récupérer les informations du profil
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := h.service.GetProfile(ctx, userID)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Utilisateur non trouvé")
		return
	}

	response.Success(w, http.StatusOK, "Profil récupéré avec succès", map[string]any{"user": user.Profile()})
}

// Modifier le profil (multipart : champ "name" et fichier "avatar")
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.Error(w, http.StatusBadRequest, "Erreur parsing multipart")
		return
	}

	newName := r.FormValue("name")
	file, header, _ := r.FormFile("avatar")
	if file != nil {
		defer file.Close()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	user, err := h.service.UpdateProfile(ctx, userID, newName, file, header)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Profil modifié avec succès", map[string]any{"user": user.Profile()})
}

// Changer le mot de passe
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}

	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Données invalides")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.ChangePassword(ctx, userID, body.CurrentPassword, body.NewPassword); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Mot de passe modifié avec succès", nil)
}

// Déconnexion : les tokens sont sans état, rien à révoquer côté serveur
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUserID(r); !ok {
		response.Error(w, http.StatusUnauthorized, "Accès refusé : Token invalide")
		return
	}
	response.Success(w, http.StatusOK, "Déconnexion réussie", nil)
}
