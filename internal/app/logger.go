// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/kol-client/config"
	"github.com/guttosm/kol-client/internal/logger"
)

// InitializeLogger initializes the global logger from the log section of the configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
