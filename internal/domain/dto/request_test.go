package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenScreenRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       OpenScreenRequest
		expectedError bool
	}{
		{name: "valid request", request: OpenScreenRequest{FoodID: 5}},
		{name: "zero id", request: OpenScreenRequest{FoodID: 0}, expectedError: true},
		{name: "negative id", request: OpenScreenRequest{FoodID: -10}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.Equal(t, ErrInvalidFoodID, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNavigateRequest_Validate(t *testing.T) {
	assert.NoError(t, (&NavigateRequest{FoodID: 1}).Validate())
	assert.Equal(t, ErrInvalidFoodID, (&NavigateRequest{}).Validate())
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "food_id: must be a positive integer", ErrInvalidFoodID.Error())
}
