package model

import "time"

// DisplayState says whether user input is currently accepted.
type DisplayState string

const (
	// DisableState blocks input while a request is in flight.
	DisableState DisplayState = "disabled"
	// NormalState accepts input again.
	NormalState DisplayState = "normal"
)

// Status is the last status line shown to the user.
type Status struct {
	State     DisplayState `json:"state"`
	Message   string       `json:"message"`
	UpdatedAt time.Time    `json:"updated_at"`
}
