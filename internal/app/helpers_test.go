package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/kol-client/config"
)

func testConfig(baseURL string) config.Config {
	cfg := config.Default()
	cfg.Game.BaseURL = baseURL
	cfg.Game.PasswordHash = "hash"
	cfg.Game.RequestTimeout = 5 * time.Second
	cfg.Dispatcher.Workers = 1
	cfg.Dispatcher.QueueSize = 2
	return cfg
}

func closeDispatcher(t *testing.T, svc *ServiceComponents) {
	t.Helper()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = svc.Dispatcher.Close(ctx)
	})
}
