package request

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	pageSendMessage = "sendmessage.php"

	// messageCapacity is the number of attachment slots on the message form.
	messageCapacity = 11

	messageSentMarker = "Message sent."
)

var (
	// ErrNoRecipient is returned when a message has no recipient.
	ErrNoRecipient = errors.New("message recipient is required")
	// ErrMessageNotSent is returned when the server did not confirm delivery.
	ErrMessageNotSent = errors.New("message was not sent")
)

// GreenMessageRequest sends a player-to-player message. Attachments beyond the
// form's slots go out in follow-up messages with the same text.
type GreenMessageRequest struct {
	deps    Deps
	message model.GreenMessage
}

// NewGreenMessageRequest copies msg so later edits to the caller's value do
// not leak into the send.
func NewGreenMessageRequest(deps Deps, msg model.GreenMessage) (*GreenMessageRequest, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(msg.Recipient) == "" {
		return nil, ErrNoRecipient
	}
	return &GreenMessageRequest{deps: deps, message: msg.Clone()}, nil
}

// Message returns the message being sent.
func (r *GreenMessageRequest) Message() model.GreenMessage {
	return r.message.Clone()
}

// Run sends the message, one form submission per batch of attachments.
func (r *GreenMessageRequest) Run(ctx context.Context) error {
	attachments := r.message.Attachments
	for {
		n := len(attachments)
		if n > messageCapacity {
			n = messageCapacity
		}
		if err := r.send(ctx, attachments[:n]); err != nil {
			return err
		}
		attachments = attachments[n:]
		if len(attachments) == 0 {
			return nil
		}
	}
}

func (r *GreenMessageRequest) send(ctx context.Context, batch []model.ItemStack) error {
	form := r.deps.Transport.NewRequest(pageSendMessage)
	form.AddField("action", "send")
	form.AddField("pwd", r.deps.Session.PasswordHash())
	form.AddField("towho", r.message.Recipient)
	form.AddField("message", r.message.Body)

	for i, it := range batch {
		idx := strconv.Itoa(i + 1)
		form.AddField("whichitem"+idx, it.IDString())
		form.AddField("howmany"+idx, strconv.Itoa(it.Count))
	}

	logger := log.With().
		Str("recipient", r.message.Recipient).
		Int("attachments", len(batch)).
		Logger()

	if err := form.Submit(ctx); err != nil {
		logger.Error().Err(err).Msg("Message request failed")
		return err
	}
	if form.ResponseStatus() != http.StatusOK {
		logger.Warn().Int("status_code", form.ResponseStatus()).Msg("Message request rejected")
		return fmt.Errorf("%w: status %d", ErrRejected, form.ResponseStatus())
	}
	if !strings.Contains(form.ResponseBody(), messageSentMarker) {
		logger.Warn().Msg("Message not confirmed by server")
		return ErrMessageNotSent
	}

	if len(batch) > 0 {
		r.deps.Inventory.RemoveItems(batch)
	}
	logger.Info().Msg("Message sent")
	return nil
}
