package handler

import (
	"time"

	"github.com/maccaabdi1/LocalLore/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter builds the route table and middleware chain. The browser
// frontend lives on a different origin, so CORS must allow it.
func NewRouter(cfg *config.Config, userH *UserHandler, gemH *GemHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "User-Id"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(100, time.Minute))

	r.Get("/health", Health)

	r.Route("/gems", func(r chi.Router) {
		r.Get("/", gemH.ListGems)
		r.Post("/", gemH.CreateGem)
		r.Get("/{id}", gemH.GetGem)
		r.Put("/{id}", gemH.UpdateGem)
		r.Patch("/{id}/upvote", gemH.Upvote)
		r.Patch("/{id}/downvote", gemH.Downvote)
		r.Delete("/{id}", gemH.DeleteGem)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userH.ListUsers)
		r.Post("/", userH.CreateUser)
		r.Post("/register", userH.Register)
		r.Post("/login", userH.Login)
		r.Get("/{id}", userH.GetUser)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
