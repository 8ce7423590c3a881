package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Utilisateur
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      *string            `bson:"name,omitempty" json:"name"`
	Email     *string            `bson:"email,omitempty" json:"email"`
	Password  *string            `bson:"password,omitempty" json:"-"`
	Avatar    *string            `bson:"avatar,omitempty" json:"avatar,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
	LastLogin time.Time          `bson:"lastLogin,omitempty" json:"lastLogin"`
}

// Profile retourne les champs exposables du compte (jamais le mot de passe).
func (u *User) Profile() map[string]any {
	profile := map[string]any{
		"id":        u.ID.Hex(),
		"name":      u.Name,
		"email":     u.Email,
		"createdAt": u.CreatedAt,
		"lastLogin": u.LastLogin,
	}
	if u.Avatar != nil {
		profile["avatar"] = *u.Avatar
	}
	return profile
}
