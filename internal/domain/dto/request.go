// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the screen state,
// providing validation and serialization for API communication.
package dto

// OpenScreenRequest represents the JSON body that mounts a food details screen.
//
// @Description Request to mount a food details screen
// @Example {"food_id": 5}
type OpenScreenRequest struct {
	// FoodID identifies the food to display. Must be greater than 0.
	FoodID int64 `json:"food_id" binding:"required,gt=0" example:"5" minimum:"1"`
} // @name OpenScreenRequest

// NavigateRequest points a mounted screen at another food.
//
// @Description Request to show another food on a mounted screen
type NavigateRequest struct {
	FoodID int64 `json:"food_id" binding:"required,gt=0" example:"7" minimum:"1"`
} // @name NavigateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidFoodID is returned when food_id is invalid.
	ErrInvalidFoodID = &ValidationError{
		Field:   "food_id",
		Message: "must be a positive integer",
	}
)

// Validate performs custom validation on the request.
func (r *OpenScreenRequest) Validate() error {
	if r.FoodID <= 0 {
		return ErrInvalidFoodID
	}
	return nil
}

// Validate performs custom validation on the request.
func (r *NavigateRequest) Validate() error {
	if r.FoodID <= 0 {
		return ErrInvalidFoodID
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
