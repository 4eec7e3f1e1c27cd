package handlers

import (
	"net/http"

	"github.com/Varun5711/inotebook/internal/logger"
	"github.com/Varun5711/inotebook/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	Auth           *AuthHandler
	Notes          *NotesHandler
	Health         *HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	AllowedOrigins []string
	Log            *logger.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.TokenHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", cfg.Health.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/createuser", cfg.Auth.CreateUser)
		r.Post("/login", cfg.Auth.Login)

		r.With(cfg.AuthMiddleware.RequireAuth).Get("/getuser", cfg.Auth.GetUser)
	})

	r.Route("/api/notes", func(r chi.Router) {
		r.Use(cfg.AuthMiddleware.RequireAuth)

		r.Get("/fetchallnotes", cfg.Notes.FetchAll)
		r.Post("/addnote", cfg.Notes.Add)
		r.Put("/updatenote/{id}", cfg.Notes.Update)
		r.Delete("/deletenote/{id}", cfg.Notes.Delete)
	})

	return r
}
