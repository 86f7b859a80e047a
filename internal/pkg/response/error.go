package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandroomhq/bandroom-backend/internal/pkg/apperror"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response. AppErrors reply with their own status
// code and message; anything else is logged and reported as a plain 500 so
// internal details never leak to the client.
func Error(c *gin.Context, err error) {
	if appErr, ok := apperror.From(err); ok {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
