package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandroomhq/bandroom-backend/internal/auth"
	"github.com/bandroomhq/bandroom-backend/internal/member"
)

// RequireAdmin ensures the authenticated member is a band admin.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(memberService member.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID := auth.GetMemberID(c)
		if memberID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		m, err := memberService.GetByID(c.Request.Context(), memberID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "member not found"})
			return
		}

		if !m.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
