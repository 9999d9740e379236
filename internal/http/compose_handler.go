package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/dispatch"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/i18n"
)

func (h *Handler) composeView() dto.ComposeResponse {
	msg := h.svc.Composer.Message()
	return dto.ComposeResponse{
		Recipient:        msg.Recipient,
		Body:             msg.Body,
		Attachments:      msg.Attachments,
		AttachmentsLabel: h.svc.Composer.AttachmentsLabel(),
		Enabled:          h.svc.Composer.Enabled(),
	}
}

// GetCompose handles GET /api/compose.
//
// @Summary      Message being composed
// @Description  Returns the recipient, body and attachments, and whether edits are accepted. Edits are locked while a send is in flight.
// @Tags         Messages
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ComposeResponse}
// @Router       /api/compose [get]
func (h *Handler) GetCompose(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.composeView())
}

// UpdateCompose handles PUT /api/compose.
//
// @Summary      Edit message text
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body dto.ComposeRequest true "Recipient and body"
// @Success      200 {object} dto.SuccessResponse{data=dto.ComposeResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      409 {object} dto.ErrorResponse "A send is in progress"
// @Router       /api/compose [put]
func (h *Handler) UpdateCompose(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ComposeRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}
	if err := h.svc.Composer.SetText(req.Recipient, req.Body); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(h.composeView())
}

// AttachItem handles POST /api/compose/attachments.
//
// @Summary      Attach an item
// @Description  Adds an item to the message. Attaching the same item again adds to its count.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body dto.AttachRequest true "Item"
// @Success      200 {object} dto.SuccessResponse{data=dto.ComposeResponse}
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      409 {object} dto.ErrorResponse "A send is in progress"
// @Router       /api/compose/attachments [post]
func (h *Handler) AttachItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AttachRequest](c)
	if err != nil {
		builder.BadRequest(err)
		return
	}
	if err := h.svc.Composer.Attach(req.Stack()); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(h.composeView())
}

// ClearAttachments handles DELETE /api/compose/attachments.
//
// @Summary      Remove all attachments
// @Tags         Messages
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ComposeResponse}
// @Failure      409 {object} dto.ErrorResponse "A send is in progress"
// @Router       /api/compose/attachments [delete]
func (h *Handler) ClearAttachments(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.svc.Composer.ClearAttachments(); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(h.composeView())
}

// SendMessage handles POST /api/compose/send.
//
// @Summary      Send the composed message
// @Description  Locks the compose surface and queues the message for a background send. The surface unlocks when the send finishes, whatever its outcome. Poll the task for the result.
// @Tags         Messages
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      202 {object} dto.SuccessResponse{data=dto.DispatchResponse} "Send queued"
// @Failure      400 {object} dto.ErrorResponse "No recipient"
// @Failure      409 {object} dto.ErrorResponse "A send is already in progress"
// @Failure      429 {object} dto.ErrorResponse "Send queue is full"
// @Failure      503 {object} dto.ErrorResponse "Shutting down"
// @Router       /api/compose/send [post]
func (h *Handler) SendMessage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if !h.svc.Composer.Enabled() {
		builder.Error(http.StatusConflict, i18n.ErrKeyComposeDisabled, nil)
		return
	}
	if strings.TrimSpace(h.svc.Composer.Message().Recipient) == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyRecipientRequired, nil)
		return
	}

	id, err := h.svc.Dispatcher.Trigger()
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessAccepted(dto.DispatchResponse{TaskID: id, State: string(dispatch.TaskQueued)})
}

// GetTask handles GET /api/compose/tasks/:id.
//
// @Summary      Message send result
// @Tags         Messages
// @Produce      json
// @Param        id path string true "Task id"
// @Success      200 {object} dto.SuccessResponse{data=dispatch.TaskResult}
// @Failure      404 {object} dto.ErrorResponse "Unknown task"
// @Router       /api/compose/tasks/{id} [get]
func (h *Handler) GetTask(c *gin.Context) {
	builder := NewResponseBuilder(c)

	result, err := h.svc.Dispatcher.Task(c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(result)
}
