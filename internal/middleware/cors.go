package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// X-Session-ID scopes the POS cart, X-Idempotency-Key dedupes checkout.
var corsAllowedHeaders = strings.Join([]string{
	"Content-Type",
	"Authorization",
	"X-Session-ID",
	"X-Idempotency-Key",
}, ", ")

const corsAllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
			h.Set("Access-Control-Expose-Headers", "X-Session-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
