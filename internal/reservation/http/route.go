package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations")

	// === Public Routes ===
	// The weekly timetable and availability probe are readable without login.
	group.GET("", h.List)
	group.GET("/availability", h.Availability)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	group.POST("", authMiddleware, h.Create)
	group.DELETE("/:id", authMiddleware, h.Delete)
}
