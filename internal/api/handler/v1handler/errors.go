package v1handler

import (
	"context"
	"errors"
	"net/http"

	"backoffice/pkg/logger"
	"backoffice/pkg/serrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Details []serrors.FieldViolation `json:"details,omitempty"`
}

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrInvalidState: {http.StatusBadRequest, "invalid state"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a status code and response body. Client errors carry
// the semantic error's text; server errors only a generic message.
func NewError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return http.StatusInternalServerError, ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		}
	}

	res := ErrorResponse{Code: kind.Error(), Message: mapping.message}
	if mapping.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))

		return mapping.status, res
	}

	var semantic *serrors.Error
	if errors.As(err, &semantic) && (semantic.Message() != "" || semantic.Cause() != nil) {
		res.Message = semantic.Error()
	}
	// validator output is unreadable, the details say what failed
	if res.Details = serrors.ViolationsOf(err); len(res.Details) > 0 && semantic != nil && semantic.Message() != "" {
		res.Message = semantic.Message()
	}
	logger.Debug(ctx, "request rejected", zap.Error(err))

	return mapping.status, res
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, res := NewError(c.Request.Context(), err)
	if serrors.Retryable(err) {
		c.Header("Retry-After", "1")
	}
	c.AbortWithStatusJSON(status, res)
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
