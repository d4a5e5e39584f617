package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bizmatch/config"
	"bizmatch/internal/cache"
	"bizmatch/internal/catalog"
	"bizmatch/internal/repository"
	"bizmatch/internal/scoring"
	"bizmatch/internal/service"
	"bizmatch/internal/transport/rest"
)

// @title Entrepreneur Quiz API
// @version 1.0
// @description Questionnaire-driven business-type recommendation service
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Load catalogs: the seeded Mongo collections when present, otherwise the
	// embedded data. Both paths run the referential-integrity validation and
	// a violation is fatal here, never at request time.
	catalogRepo := repository.NewCatalogRepo(db)
	cat, err := catalogRepo.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	if cat == nil {
		log.Println("Warning: catalog collections not seeded, using embedded data")
		cat, err = catalog.Default()
		if err != nil {
			log.Fatal("Invalid embedded catalog:", err)
		}
	}
	log.Printf("Catalog loaded: %d questions, %d archetypes", cat.QuestionCount(), len(cat.Archetypes()))

	// Initialize services
	sessionCache := cache.NewSessionCache(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)
	engine := scoring.NewEngine(cat)
	authSvc := service.NewAuthService(cfg.JWTSecret)
	quizSvc := service.NewQuizService(cat, sessionCache, authSvc)
	resultSvc := service.NewResultService(engine, sessionCache)

	router := rest.NewRouter(&rest.Container{
		AuthService:   authSvc,
		QuizService:   quizSvc,
		ResultService: resultSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/quiz")
		log.Println("  GET  /v1/questions")
		log.Println("  POST /v1/quiz/answers")
		log.Println("  GET  /v1/quiz/progress")
		log.Println("  GET  /v1/quiz/results")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
