package request

import (
	"context"

	"github.com/guttosm/kol-client/internal/domain/model"
)

// Messenger sends green messages with a fixed set of collaborators.
type Messenger struct {
	deps Deps
}

// NewMessenger creates a Messenger.
func NewMessenger(deps Deps) *Messenger {
	return &Messenger{deps: deps}
}

// Send builds and runs a GreenMessageRequest for msg.
func (m *Messenger) Send(ctx context.Context, msg model.GreenMessage) error {
	req, err := NewGreenMessageRequest(m.deps, msg)
	if err != nil {
		return err
	}
	return req.Run(ctx)
}
