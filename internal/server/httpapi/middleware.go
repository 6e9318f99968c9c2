package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/Camilo-Usuga/xxi-storage/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// bearer resolves the Authorization header into the caller's user ID.
// When required is false an absent header means an anonymous caller, but a
// header that fails verification is still rejected.
func (s *HTTPServer) bearer(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				abort(c, http.StatusUnauthorized, "missing token")
				return
			}
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			abort(c, http.StatusUnauthorized, "malformed authorization header")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, "token expired")
				return
			}
			abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// requester returns the authenticated caller or "" for anonymous requests.
func requester(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
