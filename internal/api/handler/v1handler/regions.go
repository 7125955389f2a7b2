package v1handler

import (
	"net/http"
	"strconv"

	"backoffice/internal/catalog"
	"backoffice/pkg/serrors"

	"github.com/gin-gonic/gin"
)

// AddMembershipRequest is the body of POST /regions/:code/locales.
type AddMembershipRequest struct {
	LocaleCode string `json:"localeCode"`
	SortRank   *int   `json:"sortRank"`
}

// UpdateMembershipRequest is the body of PATCH /regions/:code/locales/:locale.
type UpdateMembershipRequest struct {
	SortRank *int `json:"sortRank"`
}

// ResolveLocaleResponse is the body returned by GET /regions/:code/resolve-locale.
type ResolveLocaleResponse struct {
	Locale string `json:"locale"`
}

// CreateRegion handles POST /regions.
func (h *Handler) CreateRegion(c *gin.Context) {
	var input catalog.CreateRegionInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err)

		return
	}

	view, err := h.deps.Catalog.CreateRegion(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, view)
}

// ListRegions handles GET /regions with an optional isActive filter.
func (h *Handler) ListRegions(c *gin.Context) {
	var active *bool
	if raw, ok := c.GetQuery("isActive"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.fail(c, serrors.With(serrors.ErrBadRequest, "invalid isActive %q", raw))

			return
		}
		active = &v
	}

	views, err := h.deps.Catalog.ListRegions(c.Request.Context(), active)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, views)
}

// GetRegion handles GET /regions/:code.
func (h *Handler) GetRegion(c *gin.Context) {
	view, err := h.deps.Catalog.GetRegion(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateRegion handles PATCH /regions/:code. Omitted fields are kept and a
// null sortRank clears the rank.
func (h *Handler) UpdateRegion(c *gin.Context) {
	var update catalog.RegionUpdate
	if err := bindJSON(c, &update); err != nil {
		h.fail(c, err)

		return
	}

	view, err := h.deps.Catalog.UpdateRegion(c.Request.Context(), c.Param("code"), update)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteRegion handles DELETE /regions/:code.
func (h *Handler) DeleteRegion(c *gin.Context) {
	if err := h.deps.Catalog.DeleteRegion(c.Request.Context(), c.Param("code")); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// ListMemberships handles GET /regions/:code/locales.
func (h *Handler) ListMemberships(c *gin.Context) {
	memberships, err := h.deps.Catalog.ListMemberships(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, memberships)
}

// AddMembership handles POST /regions/:code/locales.
func (h *Handler) AddMembership(c *gin.Context) {
	var req AddMembershipRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	membership, err := h.deps.Catalog.AddMembership(c.Request.Context(), c.Param("code"), req.LocaleCode, req.SortRank)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, membership)
}

// UpdateMembership handles PATCH /regions/:code/locales/:locale.
func (h *Handler) UpdateMembership(c *gin.Context) {
	var req UpdateMembershipRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	membership, err := h.deps.Catalog.UpdateMembership(c.Request.Context(),
		c.Param("code"), c.Param("locale"), req.SortRank)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, membership)
}

// RemoveMembership handles DELETE /regions/:code/locales/:locale.
func (h *Handler) RemoveMembership(c *gin.Context) {
	if err := h.deps.Catalog.RemoveMembership(c.Request.Context(), c.Param("code"), c.Param("locale")); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// ResolveLocale handles GET /regions/:code/resolve-locale. The lang query
// parameter takes precedence over the Accept-Language header.
func (h *Handler) ResolveLocale(c *gin.Context) {
	acceptLanguage := c.Query("lang")
	if acceptLanguage == "" {
		acceptLanguage = c.GetHeader("Accept-Language")
	}

	locale, err := h.deps.Catalog.ResolveLocale(c.Request.Context(), c.Param("code"), acceptLanguage)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, ResolveLocaleResponse{Locale: locale})
}
