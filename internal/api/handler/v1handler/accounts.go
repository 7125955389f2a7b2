package v1handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/accounts"
	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid id %q", raw)
	}

	return id, nil
}

// CreateAccount handles POST /accounts.
func (h *Handler) CreateAccount(c *gin.Context) {
	var input accounts.CreateInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err)

		return
	}

	account, err := h.deps.Accounts.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, account)
}

// ListAccounts handles GET /accounts.
func (h *Handler) ListAccounts(c *gin.Context) {
	list, err := h.deps.Accounts.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, list)
}

// GetAccount handles GET /accounts/:id.
func (h *Handler) GetAccount(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	account, err := h.deps.Accounts.Get(c.Request.Context(), domain.AccountID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount handles PATCH /accounts/:id.
func (h *Handler) UpdateAccount(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	var update accounts.Update
	if err := bindJSON(c, &update); err != nil {
		h.fail(c, err)

		return
	}

	account, err := h.deps.Accounts.Update(c.Request.Context(), domain.AccountID(id), update)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount handles DELETE /accounts/:id.
func (h *Handler) DeleteAccount(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Accounts.Delete(c.Request.Context(), domain.AccountID(id)); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
