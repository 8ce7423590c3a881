package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var Client *mongo.Client

// Initialiser la base de données
func InitDatabase(ctx context.Context, databaseURL string) error {
	clientOption := options.Client().ApplyURI(databaseURL)
	client, err := mongo.Connect(ctx, clientOption)
	if err != nil {
		return err
	}

	// Vérifier la connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	Client = client
	log.Println("Connexion à la base de données réussie !")
	return nil
}
