package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exercise_tracker/internal/api"
	"exercise_tracker/internal/app/service"
	"exercise_tracker/internal/domain/repository"
	"exercise_tracker/internal/platform/config"
	"exercise_tracker/internal/platform/database"

	"github.com/redis/go-redis/v9"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize Database
	client, err := database.Connect(config.AppConfig.MongoURI)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer database.Disconnect(client)
	fmt.Println("Database connected.")

	users := database.Users(client, config.AppConfig.MongoDB)
	exercises := database.Exercises(client, config.AppConfig.MongoDB)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = database.EnsureIndexes(indexCtx, users)
	indexCancel()
	if err != nil {
		log.Fatalf("Could not create indexes: %v", err)
	}

	// 3. Initialize Redis (optional, backs rate limiting only)
	var rdb *redis.Client
	if config.AppConfig.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		fmt.Println("Redis connected.")
	}

	// 4. Initialize Repositories
	userRepo := repository.NewMongoUserRepository(users)
	exerciseRepo := repository.NewMongoExerciseRepository(exercises)

	// 5. Initialize Services
	userService := service.NewUserService(userRepo)
	exerciseService := service.NewExerciseService(userRepo, exerciseRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(
		userService,
		exerciseService,
		rdb,
		config.AppConfig.RateLimitMaxRequests,
		time.Duration(config.AppConfig.RateLimitWindowSeconds)*time.Second,
	)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
