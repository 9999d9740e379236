// Package main is the entry point for the kol-client control service.
//
// @title           KoL Client Control API
// @version         1.0.0
// @description     Local control API for autosell, mall listings and green messages.
//
//	Sales run synchronously against the game server; messages are sent in the background.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/kol-client
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8787
// @BasePath  /
//
// @tag.name        Sell
// @tag.description Autosell and mall store listings
//
// @tag.name        Character
// @tag.description Locally known character state
//
// @tag.name        Messages
// @tag.description Green message composition and sending
//
// @tag.name        Status
// @tag.description Last status line
//
// @tag.name        Store
// @tag.description Store listing snapshots
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/kol-client/docs" // swagger docs

	"github.com/guttosm/kol-client/config"
	"github.com/guttosm/kol-client/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
