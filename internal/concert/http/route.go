package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/concerts")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.GET("/:id/poster", h.GetPoster)

	// === Authenticated Routes ===
	group.POST("", authMiddleware, h.Create)
	group.DELETE("/:id", authMiddleware, h.Delete)
	group.POST("/:id/poster", authMiddleware, h.UploadPoster)
}
