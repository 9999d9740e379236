// Package store keeps the mall store listing cache in sync with the pages the
// game returns after listing items.
package store

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var rowPattern = regexp.MustCompile(`(?is)<tr\b[^>]*>(.*?)</tr>`)

// Manager records store management pages as snapshots.
type Manager struct {
	repo repository.SnapshotRepository
	now  func() time.Time
}

// NewManager creates a Manager persisting to repo.
func NewManager(repo repository.SnapshotRepository) *Manager {
	return &Manager{repo: repo, now: time.Now}
}

// Update stores body as the newest snapshot of the store.
func (m *Manager) Update(ctx context.Context, body string) error {
	snap := &model.StoreSnapshot{
		Body:       body,
		Listings:   CountListings(body),
		CapturedAt: m.now().UTC(),
	}
	if err := m.repo.Save(ctx, snap); err != nil {
		return errors.Wrap(err, "save store snapshot")
	}

	log.Debug().
		Str("snapshot_id", snap.ID).
		Int("listings", snap.Listings).
		Msg("Store listings updated")
	return nil
}

// Latest returns the newest snapshot, or nil when none was stored.
func (m *Manager) Latest(ctx context.Context) (*model.StoreSnapshot, error) {
	return m.repo.Latest(ctx)
}

// History returns up to limit snapshots, newest first.
func (m *Manager) History(ctx context.Context, limit int) ([]model.StoreSnapshot, error) {
	return m.repo.List(ctx, limit)
}

// CountListings counts table rows that link to an item in the store.
func CountListings(body string) int {
	n := 0
	for _, row := range rowPattern.FindAllStringSubmatch(body, -1) {
		if strings.Contains(strings.ToLower(row[1]), "whichitem=") {
			n++
		}
	}
	return n
}
