package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var secretKey []byte

// Init enregistre la clé secrète utilisée pour signer les tokens.
// À appeler une seule fois au démarrage, avant toute création de token.
func Init(secret string) {
	secretKey = []byte(secret)
}

// Créer le token de connexion (sujet = identifiant de l'utilisateur)
func CreateToken(userID string) (string, error) {
	if len(secretKey) == 0 {
		return "", fmt.Errorf("clé secrète manquante")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub": userID,
			"jti": uuid.NewString(),
			"iat": time.Now().Unix(),
			"exp": time.Now().Add(time.Hour * 24).Unix(),
		})

	return token.SignedString(secretKey)
}

// Vérifier le token et extraire l'identifiant de l'utilisateur
func ExtractUserIDFromToken(tokenString string) (string, error) {
	if len(secretKey) == 0 {
		return "", fmt.Errorf("clé secrète manquante")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue : %v", token.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sub, exists := claims["sub"].(string); exists && sub != "" {
			return sub, nil
		}
	}

	return "", fmt.Errorf("token invalide ou sujet manquant")
}
