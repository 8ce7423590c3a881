package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateAndExtractToken(t *testing.T) {
	Init("clé-de-test")

	token, err := CreateToken("64f1b2c3d4e5f6a7b8c9d0e1")
	if err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}

	userID, err := ExtractUserIDFromToken(token)
	if err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}
	if userID != "64f1b2c3d4e5f6a7b8c9d0e1" {
		t.Errorf("userID = %q", userID)
	}
}

func TestExtractTokenInvalid(t *testing.T) {
	Init("clé-de-test")

	if _, err := ExtractUserIDFromToken("pas.un.token"); err == nil {
		t.Error("un token malformé doit être rejeté")
	}

	// token signé avec une autre clé
	Init("autre-clé")
	token, _ := CreateToken("64f1b2c3d4e5f6a7b8c9d0e1")
	Init("clé-de-test")
	if _, err := ExtractUserIDFromToken(token); err == nil {
		t.Error("un token signé avec une autre clé doit être rejeté")
	}
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("motdepasse")
	if err != nil {
		t.Fatalf("erreur inattendue : %v", err)
	}
	if hash == "motdepasse" {
		t.Error("le mot de passe ne doit pas être stocké en clair")
	}
	if !CheckPasswordHash("motdepasse", hash) {
		t.Error("le bon mot de passe doit être accepté")
	}
	if CheckPasswordHash("autre", hash) {
		t.Error("un mauvais mot de passe doit être refusé")
	}
}

func TestAuthMiddleware(t *testing.T) {
	Init("clé-de-test")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok || userID == "" {
			t.Error("identifiant absent du contexte")
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(next)

	token, _ := CreateToken("64f1b2c3d4e5f6a7b8c9d0e1")
	request := httptest.NewRequest(http.MethodGet, "/api/roadmaps", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Errorf("code = %d, attendu 200", recorder.Code)
	}

	// sans en-tête Authorization
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/roadmaps", nil))
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, attendu 401", recorder.Code)
	}
}
