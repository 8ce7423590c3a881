package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Aditya290605/learnAi/database"
	"github.com/Aditya290605/learnAi/internal/roadmap/generator"
	roadmapinterfaces "github.com/Aditya290605/learnAi/internal/roadmap/interfaces"
	"github.com/Aditya290605/learnAi/internal/roadmap/repository"
	roadmapservice "github.com/Aditya290605/learnAi/internal/roadmap/service"
	"github.com/Aditya290605/learnAi/internal/routes"
	userinterfaces "github.com/Aditya290605/learnAi/internal/user/interfaces"
	userservice "github.com/Aditya290605/learnAi/internal/user/service"
	"github.com/Aditya290605/learnAi/pkg/auth"
	"github.com/Aditya290605/learnAi/pkg/cache"
	"github.com/Aditya290605/learnAi/pkg/config"
	"github.com/joho/godotenv"
)

func main() {
	// Variables d'environnement
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Fichier .env absent, utilisation de l'environnement courant")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Erreur de config : %v", err)
	}
	if cfg.SecretKey == "" {
		log.Fatalf("SECRET_KEY n'est pas défini")
	}
	if cfg.DBUrl == "" {
		log.Fatalf("DATABASE_URL n'est pas défini")
	}
	auth.Init(cfg.SecretKey)

	// Lancement de la base de données
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.InitDatabase(ctx, cfg.DBUrl); err != nil {
		log.Fatalf("Erreur de connexion à MongoDB: %s", err)
	}

	// S3 (avatars) : facultatif, l'upload est simplement indisponible sans
	if cfg.AWSS3Region != "" {
		if err := database.InitS3(ctx, cfg.AWSS3Region); err != nil {
			log.Printf("Initialisation S3 échouée : %v", err)
		}
	}

	// Redis (cache des statistiques) : facultatif
	var statsCache *cache.Cache
	if cfg.RedisURL != "" {
		statsCache, err = cache.NewCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Connexion Redis échouée (%v), cache désactivé", err)
			statsCache = nil
		}
	}

	// Assemblage des services
	gen := generator.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel, time.Duration(cfg.GeminiTimeout)*time.Second)
	repo := repository.NewMongoRoadmapRepository(database.Client, cfg.DBName)
	roadmapSvc := roadmapservice.NewRoadmapService(repo, gen, statsCache)
	userSvc := userservice.NewUserService(cfg)

	router := routes.Router(
		userinterfaces.NewUserHandler(userSvc),
		roadmapinterfaces.NewRoadmapHandler(roadmapSvc),
	)

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // la génération peut prendre plusieurs secondes
	}

	log.Println("Application lancée : http://localhost" + cfg.Port)

	// Lancement de l'application
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Erreur serveur : %s", err)
	}
}
