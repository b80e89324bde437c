package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/food-details-service/internal/circuitbreaker"
	"github.com/guttosm/food-details-service/internal/domain/dto"
	"github.com/guttosm/food-details-service/internal/gateway"
	"github.com/guttosm/food-details-service/internal/i18n"
	"github.com/guttosm/food-details-service/internal/service"
)

// errorStatus maps a service or gateway error to an HTTP status and message key.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, i18n.ErrKeyScreenNotFound
	case errors.Is(err, service.ErrNotReady):
		return http.StatusConflict, i18n.ErrKeyScreenNotReady
	case errors.Is(err, service.ErrInvalidFoodID):
		return http.StatusBadRequest, i18n.ErrKeyInvalidFoodID
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyGatewayUnavailable
	}

	switch gateway.KindOf(err) {
	case gateway.KindNotFound:
		return http.StatusNotFound, i18n.ErrKeyFoodNotFound
	case gateway.KindNetwork:
		return http.StatusBadGateway, i18n.ErrKeyGatewayUnavailable
	case gateway.KindServer, gateway.KindDecode:
		return http.StatusBadGateway, i18n.ErrKeyGatewayError
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

// bindErrorKey picks the message key of a request body that failed to bind.
func bindErrorKey(err error) string {
	var validationErrs validator.ValidationErrors
	var fieldErr *dto.ValidationError
	if errors.As(err, &validationErrs) || errors.As(err, &fieldErr) {
		return i18n.ErrKeyInvalidFoodID
	}
	return i18n.ErrKeyInvalidRequestBody
}
