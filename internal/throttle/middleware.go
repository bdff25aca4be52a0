package throttle

import (
	"context"
	"net/http"
	"time"

	"candidate-platform/internal/auth"
	"candidate-platform/internal/rbac"

	"github.com/gin-gonic/gin"
)

// Limiter is the minimal rate-limit interface needed by middleware.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RequireEditSlot counts one edit against the caller's rate window and blocks
// the request once the window is exhausted.
//
// Admin override:
// - super_admin bypasses
// - hidden importer_bot bypasses (bulk imports are throttled elsewhere)
func RequireEditSlot(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := auth.Role(c.Request.Context())
		if rbac.IsSuperAdmin(role) || role == rbac.RoleImporterBot {
			c.Next()
			return
		}

		userID, err := auth.UserID(c.Request.Context())
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id required"})
			return
		}

		ok, err := l.Allow(c.Request.Context(), "edits:"+userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "throttle check failed"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "edit rate limit exceeded"})
			return
		}

		c.Next()
	}
}

// Window pairs a limit with its duration for limiter construction.
type Window struct {
	Limit  int
	Period time.Duration
}
