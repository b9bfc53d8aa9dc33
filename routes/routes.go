package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bhashabridge/bhasha-bridge/backend/app"
	"github.com/bhashabridge/bhasha-bridge/backend/utils"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(deps.LoggingMiddleware.LogRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health and introspection endpoints
	r.Get("/healthz", deps.HealthHandler.HandleHealth)
	r.Get("/readyz", deps.HealthHandler.HandleReadiness)
	r.Get("/status", deps.HealthHandler.HandleStatus)
	r.Get("/languages", deps.LanguageHandler.HandleListLanguages)

	// Translation endpoints
	r.Post("/translate-text", deps.TranslateHandler.HandleTranslateText)
	r.Post("/ocr-translate", deps.OCRHandler.HandleOCRTranslate)
	r.Post("/speech-to-text", deps.SpeechHandler.HandleSpeechToText)
	r.Post("/speech-translate", deps.SpeechHandler.HandleSpeechTranslate)

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, "endpoint not found")
	})

	return r
}
