// Package v1handler implements the /v1 HTTP API on gin.
package v1handler

import (
	"net/http"

	"backoffice/internal/accounts"
	"backoffice/internal/catalog"
	"backoffice/internal/events"
	"backoffice/internal/orders"
	"backoffice/pkg/serrors"

	"github.com/gin-gonic/gin"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Catalog  catalog.Catalog
	Accounts accounts.Accounts
	Orders   orders.Orders
	Events   *events.Hub
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every v1 route on r.
func (h *Handler) Register(r gin.IRouter) {
	regions := r.Group("/regions")
	regions.POST("", h.CreateRegion)
	regions.GET("", h.ListRegions)
	regions.GET("/:code", h.GetRegion)
	regions.PATCH("/:code", h.UpdateRegion)
	regions.DELETE("/:code", h.DeleteRegion)
	regions.GET("/:code/locales", h.ListMemberships)
	regions.POST("/:code/locales", h.AddMembership)
	regions.PATCH("/:code/locales/:locale", h.UpdateMembership)
	regions.DELETE("/:code/locales/:locale", h.RemoveMembership)
	regions.GET("/:code/resolve-locale", h.ResolveLocale)

	accounts := r.Group("/accounts")
	accounts.POST("", h.CreateAccount)
	accounts.GET("", h.ListAccounts)
	accounts.GET("/:id", h.GetAccount)
	accounts.PATCH("/:id", h.UpdateAccount)
	accounts.DELETE("/:id", h.DeleteAccount)

	orders := r.Group("/orders")
	orders.POST("", h.CreateOrder)
	orders.GET("", h.ListOrders)
	orders.GET("/:id", h.GetOrder)
	orders.DELETE("/:id", h.DeleteOrder)

	r.GET("/events/admin", h.StreamAdminEvents)
}

// NoRoute answers unknown paths with the regular error body.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Code: serrors.ErrNotFound.Error(), Message: "route not found"})
}
