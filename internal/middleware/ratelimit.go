package middleware

import (
	"net/http"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/gin-gonic/gin"
)

// Limiter is the per-key quota check applied to AI-calling routes.
type Limiter interface {
	Allow(key string) bool
}

// RateLimit rejects requests over the caller's AI quota with 429. A nil
// limiter disables limiting entirely.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow(UserID(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "AI request quota exceeded, try again later"})
			return
		}
		c.Next()
	}
}
