package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	httpapi "yonkadingo/internal/api/http"
	"yonkadingo/internal/api/ws"
	"yonkadingo/internal/config"
	"yonkadingo/internal/room"
	"yonkadingo/internal/store"

	// swagger packages
	_ "yonkadingo/docs"
)

// @title Yonkadingo API
// @version 1.0
// @description Rooms, crew classes and turns for a co-op naval board game (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg, err := config.Load()
	config.SetupLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg.Rules, cfg.Seed)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	r := httpapi.NewRouter(rm, hub)

	log.Info().Str("addr", cfg.HTTPAddr).Int("rows", cfg.Rules.Rows).Int("columns", cfg.Rules.Columns).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
