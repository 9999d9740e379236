// Package status keeps the last display notification for the control API.
package status

import (
	"sync"
	"time"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/rs/zerolog/log"
)

// Tracker records display updates and logs them.
type Tracker struct {
	mu      sync.RWMutex
	current model.Status
	now     func() time.Time
}

// NewTracker starts in the normal state with an empty message.
func NewTracker() *Tracker {
	t := &Tracker{now: time.Now}
	t.current = model.Status{State: model.NormalState, UpdatedAt: t.now()}
	return t
}

// Update records a new state and message.
func (t *Tracker) Update(state model.DisplayState, message string) {
	t.mu.Lock()
	t.current = model.Status{State: state, Message: message, UpdatedAt: t.now()}
	t.mu.Unlock()

	log.Info().Str("display_state", string(state)).Msg(message)
}

// Current returns the last recorded status.
func (t *Tracker) Current() model.Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}
