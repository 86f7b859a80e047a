package auth

import "github.com/gin-gonic/gin"

// GetMemberID returns the authenticated member's ID or empty string.
func GetMemberID(c *gin.Context) string {
	if v, ok := c.Get("memberID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetMemberName returns the authenticated member's display name or empty string.
func GetMemberName(c *gin.Context) string {
	if v, ok := c.Get("memberName"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
