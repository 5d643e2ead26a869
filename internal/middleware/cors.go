package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS returns a Gin middleware that sets Access-Control headers for the
// allowed origins and short-circuits OPTIONS preflight requests.
// allowedOrigins is a comma-separated list; "*" allows any origin.
func CORS(allowedOrigins string) gin.HandlerFunc {
	allowAll := false
	var normalized []string
	for _, origin := range strings.Split(allowedOrigins, ",") {
		trimmed := strings.ToLower(strings.TrimSpace(origin))
		if trimmed == "*" {
			allowAll = true
			break
		}
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Header("Access-Control-Allow-Origin", "*")
		} else if origin != "" && containsOrigin(normalized, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func containsOrigin(allowed []string, origin string) bool {
	origin = strings.ToLower(origin)
	for _, candidate := range allowed {
		if candidate == origin {
			return true
		}
	}
	return false
}
