package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/food-details-service/internal/domain/dto"
	"github.com/guttosm/food-details-service/internal/i18n"
	"github.com/guttosm/food-details-service/internal/screen"
	"github.com/guttosm/food-details-service/internal/service"
	"github.com/guttosm/food-details-service/internal/ws"
)

// ScreenHandler provides HTTP handlers for food details screen sessions.
type ScreenHandler struct {
	screens   service.FoodDetails
	presenter *Presenter
	hub       *ws.Hub
}

// NewScreenHandler creates a new ScreenHandler. A nil hub disables streaming.
func NewScreenHandler(screens service.FoodDetails, presenter *Presenter, hub *ws.Hub) *ScreenHandler {
	return &ScreenHandler{
		screens:   screens,
		presenter: presenter,
		hub:       hub,
	}
}

// OpenScreen handles POST /api/screens.
//
// @Summary      Mount a food details screen
// @Description  Creates a screen session for a food and runs its load sequence: the food and the favorites list are read concurrently, extras quantities start at zero and the favorite flag reflects favorites membership. When a read fails the session stays mounted in the failed state and the view is returned with the mapped status so the client can reload it.
// @Tags         Screens
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Locale of labels and messages (pt, en, nl)"
// @Param        request body dto.OpenScreenRequest true "Food to display"
// @Success      201 {object} dto.SuccessResponse{data=dto.ScreenView} "Screen mounted and loaded"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid food id"
// @Failure      404 {object} dto.SuccessResponse{data=dto.ScreenView} "Food not found - screen mounted in failed state"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      502 {object} dto.SuccessResponse{data=dto.ScreenView} "Bad gateway - screen mounted in failed state"
// @Failure      503 {object} dto.SuccessResponse{data=dto.ScreenView} "Food API unavailable - screen mounted in failed state"
// @Router       /api/screens [post]
func (h *ScreenHandler) OpenScreen(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.OpenScreenRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, bindErrorKey(err), err)
		return
	}

	snap, err := h.screens.Open(c.Request.Context(), req.FoodID)
	h.respondLoad(c, builder, http.StatusCreated, snap, err)
}

// GetScreen handles GET /api/screens/:sid.
//
// @Summary      Get a screen view
// @Description  Returns the current view model of a mounted screen, including the derived order total.
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Param        Accept-Language header string false "Locale of labels and messages (pt, en, nl)"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Current view"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Router       /api/screens/{sid} [get]
func (h *ScreenHandler) GetScreen(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.screens.Get(c.Param("sid"))
	if err != nil {
		builder.Fail(err)
		return
	}
	h.respondView(c, builder, http.StatusOK, snap)
}

// ReloadScreen handles POST /api/screens/:sid/reload.
//
// @Summary      Reload a screen
// @Description  Retries the load sequence of an idle or failed screen. A ready screen is returned unchanged.
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Param        Accept-Language header string false "Locale of labels and messages (pt, en, nl)"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Screen loaded"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Failure      502 {object} dto.SuccessResponse{data=dto.ScreenView} "Bad gateway - screen stays failed"
// @Failure      503 {object} dto.SuccessResponse{data=dto.ScreenView} "Food API unavailable - screen stays failed"
// @Router       /api/screens/{sid}/reload [post]
func (h *ScreenHandler) ReloadScreen(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.screens.Reload(c.Request.Context(), c.Param("sid"))
	h.respondLoad(c, builder, http.StatusOK, snap, err)
}

// NavigateScreen handles POST /api/screens/:sid/navigate.
//
// @Summary      Show another food
// @Description  Points a mounted screen at another food and loads it. The order quantity is kept; extras and the favorite flag come from the new food. Navigating to the food already shown does nothing.
// @Tags         Screens
// @Accept       json
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Param        request body dto.NavigateRequest true "Food to display"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Screen loaded"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid food id"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Failure      502 {object} dto.SuccessResponse{data=dto.ScreenView} "Bad gateway - screen failed"
// @Router       /api/screens/{sid}/navigate [post]
func (h *ScreenHandler) NavigateScreen(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.NavigateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, bindErrorKey(err), err)
		return
	}

	snap, err := h.screens.Navigate(c.Request.Context(), c.Param("sid"), req.FoodID)
	h.respondLoad(c, builder, http.StatusOK, snap, err)
}

// IncrementExtra handles POST /api/screens/:sid/extras/:extraId/increment.
//
// @Summary      Add one unit of an extra
// @Description  Unknown extras are ignored.
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Param        extraId path int true "Extra ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Updated view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid extra id"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Router       /api/screens/{sid}/extras/{extraId}/increment [post]
func (h *ScreenHandler) IncrementExtra(c *gin.Context) {
	h.changeExtra(c, h.screens.IncrementExtra)
}

// DecrementExtra handles POST /api/screens/:sid/extras/:extraId/decrement.
//
// @Summary      Remove one unit of an extra
// @Description  The quantity never goes below zero; unknown extras are ignored.
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Param        extraId path int true "Extra ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Updated view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid extra id"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Router       /api/screens/{sid}/extras/{extraId}/decrement [post]
func (h *ScreenHandler) DecrementExtra(c *gin.Context) {
	h.changeExtra(c, h.screens.DecrementExtra)
}

// IncrementQuantity handles POST /api/screens/:sid/quantity/increment.
//
// @Summary      Add one unit of the food
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Updated view"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Router       /api/screens/{sid}/quantity/increment [post]
func (h *ScreenHandler) IncrementQuantity(c *gin.Context) {
	h.change(c, h.screens.IncrementQuantity)
}

// DecrementQuantity handles POST /api/screens/:sid/quantity/decrement.
//
// @Summary      Remove one unit of the food
// @Description  The quantity never goes below one.
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Updated view"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Router       /api/screens/{sid}/quantity/decrement [post]
func (h *ScreenHandler) DecrementQuantity(c *gin.Context) {
	h.change(c, h.screens.DecrementQuantity)
}

// ToggleFavorite handles POST /api/screens/:sid/favorite.
//
// @Summary      Toggle the favorite flag
// @Description  Adds the food to the favorites list when it is not a favorite and removes it otherwise. On failure the flag is left as it was before the request.
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ScreenView} "Updated view"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Failure      409 {object} dto.ErrorResponse "Food not loaded yet"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway"
// @Failure      503 {object} dto.ErrorResponse "Food API unavailable"
// @Router       /api/screens/{sid}/favorite [post]
func (h *ScreenHandler) ToggleFavorite(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.screens.ToggleFavorite(c.Request.Context(), c.Param("sid"))
	if err != nil {
		builder.Fail(err)
		return
	}
	h.respondView(c, builder, http.StatusOK, snap)
}

// SubmitOrder handles POST /api/screens/:sid/order.
//
// @Summary      Submit the order
// @Description  Sends the food with every extra and the unformatted total to the food API, closes the screen and tells the client where to go next. Supports idempotency via Idempotency-Key header.
// @Tags         Screens
// @Produce      json
// @Param        sid path string true "Screen session ID"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Accept-Language header string false "Locale of labels and messages (pt, en, nl)"
// @Success      200 {object} dto.SuccessResponse{data=dto.NavigationResponse} "Order placed"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Failure      409 {object} dto.ErrorResponse "Food not loaded yet"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway"
// @Failure      503 {object} dto.ErrorResponse "Food API unavailable"
// @Router       /api/screens/{sid}/order [post]
func (h *ScreenHandler) SubmitOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	nav, err := h.screens.SubmitOrder(c.Request.Context(), c.Param("sid"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(h.presenter.Navigation(nav.Route, nav.Params, i18n.GetLocale(c)))
}

// CloseScreen handles DELETE /api/screens/:sid.
//
// @Summary      Unmount a screen
// @Description  Discards the screen state and ends its streams.
// @Tags         Screens
// @Param        sid path string true "Screen session ID"
// @Success      204 "Screen closed"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Router       /api/screens/{sid} [delete]
func (h *ScreenHandler) CloseScreen(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.screens.Close(c.Param("sid")); err != nil {
		builder.Fail(err)
		return
	}
	builder.NoContent()
}

// StreamScreen handles GET /api/screens/:sid/ws.
//
// @Summary      Stream screen views
// @Description  Upgrades to a websocket that receives the view as a JSON text message after every change, starting with the current one. The stream closes when the screen is closed.
// @Tags         Screens
// @Param        sid path string true "Screen session ID"
// @Param        Accept-Language header string false "Locale of labels and messages (pt, en, nl)"
// @Success      101 "Switching protocols"
// @Failure      404 {object} dto.ErrorResponse "Screen not found or expired"
// @Failure      503 {object} dto.ErrorResponse "Streaming disabled"
// @Router       /api/screens/{sid}/ws [get]
func (h *ScreenHandler) StreamScreen(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.hub == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, nil)
		return
	}

	locale := i18n.GetLocale(c)
	render := func(snap screen.Snapshot) interface{} {
		return h.presenter.Render(snap, locale)
	}

	err := ws.Serve(h.hub, h.screens, render, c.Param("sid"), c.Writer, c.Request)
	switch {
	case err == nil:
	case errors.Is(err, ws.ErrUpgrade), errors.Is(err, ws.ErrHubClosed):
		// the connection already carries the answer
		_ = c.Error(err)
	default:
		builder.Fail(err)
	}
}

func (h *ScreenHandler) change(c *gin.Context, fn func(sessionID string) (screen.Snapshot, error)) {
	builder := NewResponseBuilder(c)

	snap, err := fn(c.Param("sid"))
	if err != nil {
		builder.Fail(err)
		return
	}
	h.respondView(c, builder, http.StatusOK, snap)
}

func (h *ScreenHandler) changeExtra(c *gin.Context, fn func(sessionID string, extraID int64) (screen.Snapshot, error)) {
	builder := NewResponseBuilder(c)

	extraID, err := strconv.ParseInt(c.Param("extraId"), 10, 64)
	if err != nil || extraID <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidExtraID, err)
		return
	}

	snap, err := fn(c.Param("sid"), extraID)
	if err != nil {
		builder.Fail(err)
		return
	}
	h.respondView(c, builder, http.StatusOK, snap)
}

// respondLoad answers a load sequence. A failed load on a mounted screen still
// returns the view, under the status of the failure.
func (h *ScreenHandler) respondLoad(c *gin.Context, builder *ResponseBuilder, okStatus int, snap screen.Snapshot, err error) {
	if err != nil && snap.SessionID == "" {
		builder.Fail(err)
		return
	}
	status := okStatus
	if err != nil {
		status, _ = errorStatus(err)
		_ = c.Error(err)
	}
	h.respondView(c, builder, status, snap)
}

func (h *ScreenHandler) respondView(c *gin.Context, builder *ResponseBuilder, status int, snap screen.Snapshot) {
	builder.Success(status, h.presenter.Render(snap, i18n.GetLocale(c)))
}
