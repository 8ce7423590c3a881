package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"time"

	"github.com/Aditya290605/learnAi/database"
	"github.com/Aditya290605/learnAi/internal/user/domain"
	"github.com/Aditya290605/learnAi/pkg/auth"
	"github.com/Aditya290605/learnAi/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService orchestre les cas d'usage liés aux comptes utilisateurs.
type UserService struct {
	dbName     string
	bucketName string
	region     string
}

// NewUserService instancie le service avec la config base + S3.
func NewUserService(cfg *config.Config) *UserService {
	return &UserService{
		dbName:     cfg.DBName,
		bucketName: cfg.AWSS3BucketName,
		region:     cfg.AWSS3Region,
	}
}

func (s *UserService) collection() *mongo.Collection {
	return database.Client.Database(s.dbName).Collection("user")
}

// Inscription
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	// 1. validations
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("tous les champs sont obligatoires")
	}
	if len(name) < 2 || len(name) > 50 {
		return nil, "", fmt.Errorf("le nom doit contenir entre 2 et 50 caractères")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", fmt.Errorf("adresse email invalide")
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("le mot de passe doit contenir au moins 6 caractères")
	}

	// 2. unicité de l'email
	coll := s.collection()
	if count, err := coll.CountDocuments(ctx, bson.M{"email": email}); err != nil {
		return nil, "", err
	} else if count > 0 {
		return nil, "", fmt.Errorf("un compte existe déjà avec cette adresse email")
	}

	// 3. hash du mot de passe et création de l'entité
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	user := domain.User{
		ID:        primitive.NewObjectID(),
		Name:      &name,
		Email:     &email,
		Password:  &hashed,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		LastLogin: now,
	}

	if _, err := coll.InsertOne(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := auth.CreateToken(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Connexion
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email et mot de passe sont requis")
	}

	coll := s.collection()
	var stored domain.User
	if err := coll.FindOne(ctx, bson.M{"email": email}).Decode(&stored); err != nil {
		return nil, "", fmt.Errorf("email ou mot de passe incorrect")
	}
	if stored.Password == nil || !auth.CheckPasswordHash(password, *stored.Password) {
		return nil, "", fmt.Errorf("email ou mot de passe incorrect")
	}
	if !stored.IsActive {
		return nil, "", fmt.Errorf("ce compte a été désactivé")
	}

	token, err := auth.CreateToken(stored.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	// mise à jour lastLogin (silent)
	coll.UpdateOne(ctx, bson.M{"_id": stored.ID}, bson.M{"$set": bson.M{"lastLogin": time.Now()}})
	return &stored, token, nil
}

// Récupérer les informations de l'utilisateur connecté
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	if err := s.collection().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return nil, fmt.Errorf("utilisateur non trouvé")
	}
	return &user, nil
}

// Met à jour le profil (nom et/ou avatar envoyé sur S3)
func (s *UserService) UpdateProfile(
	ctx context.Context,
	userID primitive.ObjectID,
	newName string,
	file multipart.File, header *multipart.FileHeader,
) (*domain.User, error) {
	coll := s.collection()
	var user domain.User
	if err := coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return nil, fmt.Errorf("utilisateur non trouvé")
	}

	update := bson.M{"updatedAt": time.Now()}

	// nom
	if newName != "" {
		if len(newName) < 2 || len(newName) > 50 {
			return nil, fmt.Errorf("le nom doit contenir entre 2 et 50 caractères")
		}
		update["name"] = newName
	}

	// avatar
	if file != nil && header != nil {
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("lecture image impossible")
		}
		ext := filepath.Ext(header.Filename)
		key := fmt.Sprintf("user/%s%s", userID.Hex(), ext)
		uploader := database.BucketBasics{S3Client: database.S3Client}
		if err := uploader.UploadLargeObject(ctx, s.bucketName, key, data); err != nil {
			return nil, fmt.Errorf("upload S3 échoué : %w", err)
		}
		url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
		update["avatar"] = url
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": update})
	if err != nil {
		return nil, fmt.Errorf("erreur update en base")
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("aucun utilisateur modifié")
	}

	if err := coll.FindOne(ctx, bson.M{"_id": user.ID}).Decode(&user); err != nil {
		return nil, fmt.Errorf("lecture post-update échouée")
	}
	return &user, nil
}

// Changer le mot de passe (l'actuel doit être vérifié)
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return fmt.Errorf("le mot de passe actuel est requis")
	}
	if len(newPassword) < 6 {
		return fmt.Errorf("le nouveau mot de passe doit contenir au moins 6 caractères")
	}

	coll := s.collection()
	var user domain.User
	if err := coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return fmt.Errorf("utilisateur non trouvé")
	}
	if user.Password == nil || !auth.CheckPasswordHash(currentPassword, *user.Password) {
		return fmt.Errorf("mot de passe actuel incorrect")
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = coll.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"password":  hashed,
		"updatedAt": time.Now(),
	}})
	return err
}
