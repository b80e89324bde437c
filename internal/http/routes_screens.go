package http

import (
	"github.com/gin-gonic/gin"
)

// ScreenRoutes registers the food details screen routes.
type ScreenRoutes struct {
	handler *ScreenHandler
}

var _ RouteGroup = (*ScreenRoutes)(nil)

// NewScreenRoutes creates a new ScreenRoutes instance.
func NewScreenRoutes(handler *ScreenHandler) *ScreenRoutes {
	return &ScreenRoutes{handler: handler}
}

// RegisterRoutes registers the screen routes under /screens.
func (r *ScreenRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	screens := rg.Group("/screens")
	screens.POST("", r.handler.OpenScreen)

	session := screens.Group("/:sid")
	session.GET("", r.handler.GetScreen)
	session.DELETE("", r.handler.CloseScreen)
	session.GET("/ws", r.handler.StreamScreen)
	session.POST("/reload", r.handler.ReloadScreen)
	session.POST("/navigate", r.handler.NavigateScreen)
	session.POST("/extras/:extraId/increment", r.handler.IncrementExtra)
	session.POST("/extras/:extraId/decrement", r.handler.DecrementExtra)
	session.POST("/quantity/increment", r.handler.IncrementQuantity)
	session.POST("/quantity/decrement", r.handler.DecrementQuantity)
	session.POST("/favorite", r.handler.ToggleFavorite)
	session.POST("/order", r.handler.SubmitOrder)
}
