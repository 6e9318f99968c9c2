package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/Camilo-Usuga/xxi-storage/internal/common"
	"github.com/gin-gonic/gin"
)

// statusClientClosedRequest is reported when the caller went away.
const statusClientClosedRequest = 499

// httpStatus maps service errors onto an HTTP status and a client-safe message.
func httpStatus(err error) (int, string) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, "file too large"
	case errors.Is(err, common.ErrorNotOwner):
		return http.StatusForbidden, "only the owner can do that"
	case common.IsPartialDelete(err):
		return http.StatusInternalServerError, "file bytes removed but record kept; retry the delete"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrTransient):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrorInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, "request canceled"
	}
	return http.StatusInternalServerError, "internal error"
}

func abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

// fail logs err and writes the mapped error response.
func (s *HTTPServer) fail(c *gin.Context, op string, err error) {
	code, msg := httpStatus(err)
	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		s.logger.Error(c.Request.Context(), op+" failed", "error", err)
	} else {
		s.logger.Debug(c.Request.Context(), op+" rejected", "error", err)
	}
	abort(c, code, msg)
}
