package v1handler

import (
	"backoffice/internal/events"
	"backoffice/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StreamAdminEvents handles GET /events/admin, streaming admin channel
// events as server-sent events until the client disconnects.
func (h *Handler) StreamAdminEvents(c *gin.Context) {
	if err := h.deps.Events.Stream(c.Writer, c.Request, events.AdminChannel); err != nil {
		logger.Warn(c.Request.Context(), "event stream ended with error", zap.Error(err))
	}
}
