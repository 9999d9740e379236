package http

import (
	"context"
	"sync"

	"github.com/guttosm/kol-client/internal/character"
	"github.com/guttosm/kol-client/internal/dispatch"
	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/request"
)

// Character is the locally tracked character state.
type Character interface {
	Snapshot() character.Snapshot
	Meat() int
	SetInventory(items []model.ItemStack)
	SetMeat(amount int)
	SetAutosellMode(mode model.AutosellMode)
}

// Composer is the message being edited.
type Composer interface {
	Message() model.GreenMessage
	Enabled() bool
	SetText(recipient, body string) error
	Attach(item model.ItemStack) error
	ClearAttachments() error
	AttachmentsLabel() string
}

// Dispatcher queues message sends.
type Dispatcher interface {
	Trigger() (string, error)
	Task(id string) (dispatch.TaskResult, error)
}

// StatusReader exposes the last display notification.
type StatusReader interface {
	Current() model.Status
}

// StoreReader reads stored store-listing snapshots.
type StoreReader interface {
	Latest(ctx context.Context) (*model.StoreSnapshot, error)
	History(ctx context.Context, limit int) ([]model.StoreSnapshot, error)
}

// Services groups what the API handlers operate on.
type Services struct {
	// Sell is handed to every sell request.
	Sell       request.Deps
	Character  Character
	Composer   Composer
	Dispatcher Dispatcher
	Status     StatusReader
	Store      StoreReader
}

// Handler serves the control API.
type Handler struct {
	svc Services

	// sellMu serializes sell commands; each one reads and debits inventory.
	sellMu sync.Mutex
}

// NewHandler creates a new Handler.
func NewHandler(svc Services) *Handler {
	return &Handler{svc: svc}
}
