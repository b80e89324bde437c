// Package i18n translates the messages and labels of the food details screen.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyInvalidFoodID is returned for a missing or non-positive food id.
	ErrKeyInvalidFoodID = "error.validation.food_id"
	// ErrKeyInvalidExtraID is returned for a malformed extra id path segment.
	ErrKeyInvalidExtraID = "error.validation.extra_id"
	// ErrKeyScreenNotFound means the session is unknown, closed or expired.
	ErrKeyScreenNotFound = "error.screen_not_found"
	// ErrKeyScreenNotReady means the action needs the food to be displayed first.
	ErrKeyScreenNotReady = "error.screen_not_ready"
	// ErrKeyFoodNotFound means the food API has no such food.
	ErrKeyFoodNotFound = "error.food_not_found"
	// ErrKeyGatewayUnavailable means the food API could not be reached.
	ErrKeyGatewayUnavailable = "error.gateway_unavailable"
	// ErrKeyGatewayError means the food API answered with an error or garbage.
	ErrKeyGatewayError = "error.gateway_error"
)

// Screen label keys.
const (
	LabelKeyExtrasTitle   = "label.extras_title"
	LabelKeyTotalTitle    = "label.total_title"
	LabelKeyConfirmButton = "label.confirm_button"
	LabelKeyOrderPlaced   = "label.order_placed"
)
