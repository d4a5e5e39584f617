package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"bizmatch/internal/service"
	"bizmatch/internal/transport/rest/handler"
	"bizmatch/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	QuizService   *service.QuizService
	ResultService *service.ResultService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	quizHandler := handler.NewQuizHandler(c.QuizService, c.ResultService)
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/quiz", quizHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", quizHandler.Questions).Methods("GET", "OPTIONS")

	// Session routes (require a session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/quiz/answers", quizHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/quiz/progress", quizHandler.Progress).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/quiz/results", quizHandler.Results).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
