// Package compose holds the green message being edited by the user.
package compose

import (
	"errors"
	"strings"
	"sync"

	"github.com/guttosm/kol-client/internal/domain/model"
)

var (
	// ErrDisabled is returned for edits while a send is in progress.
	ErrDisabled = errors.New("compose surface is disabled")
	// ErrInvalidAttachment is returned for an attachment with a non-positive count.
	ErrInvalidAttachment = errors.New("attachment count must be positive")
)

// Composer is the editable message surface. Edits are rejected while it is disabled.
type Composer struct {
	mu          sync.RWMutex
	recipient   string
	body        string
	attachments []model.ItemStack
	enabled     bool
}

// NewComposer creates an enabled, empty message addressed to recipient.
func NewComposer(recipient string) *Composer {
	return &Composer{recipient: recipient, enabled: true}
}

// SetEnabled toggles whether edits are accepted.
func (c *Composer) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Enabled reports whether edits are accepted.
func (c *Composer) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// Message returns a snapshot of the current message.
func (c *Composer) Message() model.GreenMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.GreenMessage{
		Recipient:   c.recipient,
		Body:        c.body,
		Attachments: append([]model.ItemStack(nil), c.attachments...),
	}
}

// SetText replaces the recipient and body.
func (c *Composer) SetText(recipient, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return ErrDisabled
	}
	c.recipient = strings.TrimSpace(recipient)
	c.body = body
	return nil
}

// Attach adds item to the attachments. Attaching an item twice adds up the counts.
func (c *Composer) Attach(item model.ItemStack) error {
	if item.Count <= 0 {
		return ErrInvalidAttachment
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return ErrDisabled
	}

	if i := model.IndexOf(c.attachments, item); i >= 0 {
		c.attachments[i].Count += item.Count
		return nil
	}
	c.attachments = append(c.attachments, item)
	return nil
}

// ClearAttachments removes every attachment.
func (c *Composer) ClearAttachments() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return ErrDisabled
	}
	c.attachments = nil
	return nil
}

// AttachmentsLabel renders the attachments for display, "(none)" when empty.
func (c *Composer) AttachmentsLabel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.attachments) == 0 {
		return "(none)"
	}
	parts := make([]string, len(c.attachments))
	for i, it := range c.attachments {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}
