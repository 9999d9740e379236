// Package request builds and submits the game's state-changing form requests:
// autosell, mall listings and green messages.
package request

import (
	"context"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/guttosm/kol-client/internal/game"
)

// PasswordHasher supplies the pwd field.
type PasswordHasher interface {
	PasswordHash() string
}

// Inventory is the authoritative item count lookup. RemoveItems is called
// after the server accepts a batch.
type Inventory interface {
	Count(item model.ItemStack) int
	RemoveItems(items []model.ItemStack)
}

// AutosellModeReader exposes the character's autosell page option.
type AutosellModeReader interface {
	AutosellMode() model.AutosellMode
}

// MeatSink is credited with the meat an autosell earned.
type MeatSink interface {
	AddMeat(amount int)
}

// ListingUpdater re-synchronises the store listing cache from a raw page.
type ListingUpdater interface {
	Update(ctx context.Context, body string) error
}

// Display receives input enable/disable notifications with a status line.
type Display interface {
	Update(state model.DisplayState, message string)
}

// ErrorReporter records a swallowed error together with its stack.
type ErrorReporter interface {
	Report(err error, msg string)
}

// Deps groups the collaborators a request needs. Inventory, Session and
// Transport are required; the rest are skipped when nil.
type Deps struct {
	Transport    game.Transport
	Session      PasswordHasher
	Inventory    Inventory
	AutosellMode AutosellModeReader
	Meat         MeatSink
	Listings     ListingUpdater
	Display      Display
	Errors       ErrorReporter
}

func (d Deps) validate() error {
	if d.Transport == nil || d.Session == nil || d.Inventory == nil {
		return ErrMissingDeps
	}
	return nil
}

func (d Deps) display(state model.DisplayState, message string) {
	if d.Display != nil {
		d.Display.Update(state, message)
	}
}

func (d Deps) report(err error, msg string) {
	if d.Errors != nil {
		d.Errors.Report(err, msg)
	}
}

func (d Deps) autosellMode() model.AutosellMode {
	if d.AutosellMode == nil {
		return model.AutosellCompact
	}
	return d.AutosellMode.AutosellMode()
}
