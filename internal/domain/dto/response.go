package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeBadGateway indicates the food API failed or answered garbage.
	ErrCodeBadGateway = "bad_gateway"
	// ErrCodeUnavailable indicates the food API is unreachable.
	ErrCodeUnavailable = "service_unavailable"
)

// Favorite icon names rendered by the client.
const (
	FavoriteIconOn  = "favorite"
	FavoriteIconOff = "favorite-border"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (ScreenView or NavigationResponse)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"Screen not found or expired"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeBadGateway
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// ScreenView is the rendered state of a food details screen.
// @Description Food details screen view model
type ScreenView struct {
	SessionID      string          `json:"session_id" example:"3f0c1f0e-4d7b-4a4e-9a53-5c3f1c2d9e10"`
	Status         string          `json:"status" example:"ready" enums:"idle,loading,ready,failed"`
	Food           *FoodView       `json:"food,omitempty"`
	Extras         []ExtraView     `json:"extras"`
	Quantity       int             `json:"quantity" example:"1" minimum:"1"`
	Total          decimal.Decimal `json:"total" swaggertype:"number" example:"32"`
	FormattedTotal string          `json:"formatted_total" example:"R$ 32,00"`
	Favorite       bool            `json:"favorite" example:"false"`
	FavoriteIcon   string          `json:"favorite_icon" example:"favorite-border" enums:"favorite,favorite-border"`
	Labels         ScreenLabels    `json:"labels"`
	Error          *ScreenError    `json:"error,omitempty"`
	Version        uint64          `json:"version" example:"3"`
} // @name ScreenView

// FoodView is the food header of the screen.
type FoodView struct {
	ID             int64           `json:"id" example:"5"`
	Name           string          `json:"name" example:"Ao molho"`
	Description    string          `json:"description" example:"Macarrão ao molho branco"`
	ImageURL       string          `json:"image_url" example:"https://cdn.example.com/food.png"`
	Category       int64           `json:"category" example:"1"`
	Price          decimal.Decimal `json:"price" swaggertype:"number" example:"19.9"`
	FormattedPrice string          `json:"formatted_price" example:"R$ 19,90"`
} // @name FoodView

// ExtraView is one row of the extras list.
type ExtraView struct {
	ID             int64           `json:"id" example:"1"`
	Name           string          `json:"name" example:"Bacon"`
	Value          decimal.Decimal `json:"value" swaggertype:"number" example:"1.5"`
	FormattedValue string          `json:"formatted_value" example:"R$ 1,50"`
	Quantity       int             `json:"quantity" example:"0" minimum:"0"`
} // @name ExtraView

// ScreenLabels are the localized static texts of the screen.
type ScreenLabels struct {
	ExtrasTitle   string `json:"extras_title" example:"Adicionais"`
	TotalTitle    string `json:"total_title" example:"Total do pedido"`
	ConfirmButton string `json:"confirm_button" example:"Confirmar pedido"`
} // @name ScreenLabels

// ScreenError is the dismissible error shown by a failed screen.
type ScreenError struct {
	Code    string `json:"code" example:"not_found"`
	Message string `json:"message" example:"Prato não encontrado"`
} // @name ScreenError

// NavigationResponse tells the client which screen to show next.
type NavigationResponse struct {
	Route  string            `json:"route" example:"Dashboard"`
	Params map[string]string `json:"params,omitempty"`
	// Message is a localized confirmation for the client to display.
	Message string `json:"message,omitempty" example:"Pedido realizado"`
} // @name NavigationResponse

// FavoriteIcon returns the icon name for a favorite flag.
func FavoriteIcon(favorite bool) string {
	if favorite {
		return FavoriteIconOn
	}
	return FavoriteIconOff
}
