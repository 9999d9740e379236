package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyNoItems indicates a sell request without items.
	ErrKeyNoItems = "error.validation.items"
	// ErrKeyListingTerms indicates prices/limits that do not line up with items.
	ErrKeyListingTerms = "error.validation.listing_terms"
	// ErrKeyAutosellMode indicates an unknown autosell mode.
	ErrKeyAutosellMode = "error.validation.autosell_mode"
	// ErrKeyRecipientRequired indicates a message without recipient.
	ErrKeyRecipientRequired = "error.validation.recipient"
	// ErrKeyComposeDisabled indicates an edit while a message is being sent.
	ErrKeyComposeDisabled = "error.compose_disabled"
	// ErrKeyQueueFull indicates the send queue has no free slot.
	ErrKeyQueueFull = "error.queue_full"
	// ErrKeyGameUnavailable indicates the game server could not be reached.
	ErrKeyGameUnavailable = "error.game_unavailable"
	// ErrKeyGameRejected indicates the game server refused the request.
	ErrKeyGameRejected = "error.game_rejected"
	// ErrKeyRequestInProgress indicates a retry of a request that is still running.
	ErrKeyRequestInProgress = "error.request_in_progress"
	// ErrKeyServiceUnavailable indicates the client is shutting down.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)
