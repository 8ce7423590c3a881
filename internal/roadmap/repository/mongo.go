package repository

import (
	"context"

	"github.com/Aditya290605/learnAi/internal/roadmap/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoadmapRepository persiste les roadmaps dans la collection "roadmap".
// Une roadmap = un document, étapes et ressources incluses.
type MongoRoadmapRepository struct {
	collection *mongo.Collection
}

func NewMongoRoadmapRepository(client *mongo.Client, dbName string) *MongoRoadmapRepository {
	return &MongoRoadmapRepository{
		collection: client.Database(dbName).Collection("roadmap"),
	}
}

// Insert insère la roadmap et renseigne son identifiant.
func (r *MongoRoadmapRepository) Insert(ctx context.Context, roadmap *domain.Roadmap) error {
	if roadmap.ID.IsZero() {
		roadmap.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, roadmap)
	return err
}

// FindActiveByID retourne la roadmap si elle existe, appartient à
// l'utilisateur et n'est pas supprimée. Les documents isActive=false restent
// en base mais sont invisibles ici.
func (r *MongoRoadmapRepository) FindActiveByID(ctx context.Context, userID, roadmapID primitive.ObjectID) (*domain.Roadmap, error) {
	var roadmap domain.Roadmap
	err := r.collection.FindOne(ctx, bson.M{
		"_id":      roadmapID,
		"user":     userID,
		"isActive": true,
	}).Decode(&roadmap)
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// FindActiveByUser liste les roadmaps actives de l'utilisateur, les plus
// récentes d'abord.
func (r *MongoRoadmapRepository) FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Roadmap, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID, "isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var roadmaps []domain.Roadmap
	if err := cursor.All(ctx, &roadmaps); err != nil {
		return nil, err
	}
	return roadmaps, nil
}

// Update remplace le document entier (l'agrégat est la frontière
// transactionnelle, dernier écrivain gagnant).
func (r *MongoRoadmapRepository) Update(ctx context.Context, roadmap *domain.Roadmap) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": roadmap.ID}, roadmap)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
