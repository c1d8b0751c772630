package api

import (
	"net/http"
	"time"

	"exercise_tracker/internal/api/handler"
	"exercise_tracker/internal/api/middleware"
	"exercise_tracker/internal/app/service"
	"exercise_tracker/internal/common"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

func NewRouter(
	userService *service.UserService,
	exerciseService *service.ExerciseService,
	rdb *redis.Client,
	rateLimit int,
	rateWindow time.Duration,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(middleware.RateLimit(rdb, rateLimit, rateWindow))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/exercise", func(ex chi.Router) {
		userHandler := handler.NewUserHandler(userService)
		userHandler.RegisterRoutes(ex)

		exerciseHandler := handler.NewExerciseHandler(exerciseService)
		exerciseHandler.RegisterRoutes(ex)
	})

	// Unmatched routes get the same plain-text error shape as everything else.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithError(w, http.StatusNotFound, "not found")
	})

	return r
}
