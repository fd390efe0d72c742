package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired rejects requests without a valid admin session. Every
// mutating route sits behind this gate; the stores themselves perform no
// credential checks.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)

		if session == nil || !session.IsAdmin {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
