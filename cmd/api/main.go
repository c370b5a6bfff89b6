package main

import (
	"net/http"

	_ "github.com/maccaabdi1/LocalLore/docs" // swagger docs

	"github.com/maccaabdi1/LocalLore/internal/config"
	"github.com/maccaabdi1/LocalLore/internal/db"
	"github.com/maccaabdi1/LocalLore/internal/handler"
	"github.com/maccaabdi1/LocalLore/internal/repository"
	"github.com/maccaabdi1/LocalLore/internal/service"

	"github.com/rs/zerolog/log"
)

// @title LocalLore API
// @version 1.0
// @description Location-discovery API: gems, votes, users (Mongo)
// @host localhost:5266
// @BasePath /
func main() {
	cfg := config.Load()

	db.InitMongo(cfg)

	// repos
	userRepo := repository.NewUserRepository(cfg.UsersCollection)
	gemRepo := repository.NewGemRepository(cfg.GemsCollection)

	// services
	userSvc := service.NewUserService(userRepo)
	gemSvc := service.NewGemService(gemRepo, userRepo)

	// handlers
	userH := handler.NewUserHandler(userSvc)
	gemH := handler.NewGemHandler(gemSvc)

	r := handler.NewRouter(cfg, userH, gemH)

	log.Info().Msgf("HTTP listening on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
