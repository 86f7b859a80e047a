package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/ensembles")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id/response", h.SubmitResponse)
		group.GET("/:id/result", h.Result)
		group.POST("/:id/confirm", h.Confirm)
	}
}
