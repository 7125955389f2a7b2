package v1handler

import (
	"net/http"

	"backoffice/internal/orders"
	"backoffice/pkg/domain"

	"github.com/gin-gonic/gin"
)

// CreateOrder handles POST /orders. The new_order event is sent once the
// order is committed.
func (h *Handler) CreateOrder(c *gin.Context) {
	var input orders.CreateInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err)

		return
	}

	order, err := h.deps.Orders.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /orders.
func (h *Handler) ListOrders(c *gin.Context) {
	list, err := h.deps.Orders.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, list)
}

// GetOrder handles GET /orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	order, err := h.deps.Orders.Get(c.Request.Context(), domain.OrderID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /orders/:id.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Orders.Delete(c.Request.Context(), domain.OrderID(id)); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
