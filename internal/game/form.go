// Package game talks to the game's web pages with form-encoded requests.
package game

import (
	"context"
	"net/url"
)

// FormRequest accumulates form fields for one page and submits them once.
type FormRequest interface {
	// AddField sets a form field, replacing any earlier value under the same name.
	AddField(name, value string)
	// Submit posts the fields and records the response.
	Submit(ctx context.Context) error
	// ResponseStatus is the HTTP status of the last submission, 0 before that.
	ResponseStatus() int
	// ResponseBody is the response text of the last submission.
	ResponseBody() string
}

// Transport creates form requests for game pages.
type Transport interface {
	NewRequest(page string) FormRequest
}

// Fielder is implemented by requests that expose their accumulated fields.
type Fielder interface {
	Fields() url.Values
	Page() string
}

// Session supplies the per-login password hash the game requires on state-changing forms.
type Session struct {
	hash string
}

// NewSession wraps a password hash obtained from an external login.
func NewSession(passwordHash string) *Session {
	return &Session{hash: passwordHash}
}

// PasswordHash returns the hash sent as the pwd field.
func (s *Session) PasswordHash() string {
	return s.hash
}
