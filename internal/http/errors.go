package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/kol-client/internal/circuitbreaker"
	"github.com/guttosm/kol-client/internal/compose"
	"github.com/guttosm/kol-client/internal/dispatch"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/i18n"
	"github.com/guttosm/kol-client/internal/request"
)

// classifyError maps domain and transport errors to an HTTP status and a
// message key. Anything unrecognised that reached the game is a bad gateway.
func classifyError(err error) (int, string) {
	var validationErr *dto.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationKey(validationErr)
	case errors.Is(err, request.ErrNoItems):
		return http.StatusBadRequest, i18n.ErrKeyNoItems
	case errors.Is(err, request.ErrTermsMismatch):
		return http.StatusBadRequest, i18n.ErrKeyListingTerms
	case errors.Is(err, request.ErrNoRecipient):
		return http.StatusBadRequest, i18n.ErrKeyRecipientRequired
	case errors.Is(err, compose.ErrInvalidAttachment):
		return http.StatusBadRequest, i18n.ErrKeyNoItems
	case errors.Is(err, compose.ErrDisabled):
		return http.StatusConflict, i18n.ErrKeyComposeDisabled
	case errors.Is(err, dispatch.ErrTaskNotFound):
		return http.StatusNotFound, i18n.ErrKeyNotFound
	case errors.Is(err, dispatch.ErrQueueFull):
		return http.StatusTooManyRequests, i18n.ErrKeyQueueFull
	case errors.Is(err, dispatch.ErrClosed):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyGameUnavailable
	case errors.Is(err, request.ErrRejected), errors.Is(err, request.ErrMessageNotSent):
		return http.StatusBadGateway, i18n.ErrKeyGameRejected
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	case errors.Is(err, request.ErrMissingDeps), errors.Is(err, request.ErrUnknownSaleMode):
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	default:
		return http.StatusBadGateway, i18n.ErrKeyGameUnavailable
	}
}

// bindErrorKey picks the message for a body that failed to bind or validate.
func bindErrorKey(err error) string {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		return validationKey(validationErr)
	}
	return i18n.ErrKeyInvalidRequestBody
}

func validationKey(err *dto.ValidationError) string {
	switch err {
	case dto.ErrInvalidItems:
		return i18n.ErrKeyNoItems
	case dto.ErrInvalidTerms:
		return i18n.ErrKeyListingTerms
	case dto.ErrInvalidAutosellMode:
		return i18n.ErrKeyAutosellMode
	default:
		return i18n.ErrKeyInvalidRequest
	}
}
