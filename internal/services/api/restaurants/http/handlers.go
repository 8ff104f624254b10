// Package http provides http transport for restaurants
package http

import (
	stdhttp "net/http"

	"foodreview/internal/modkit/httpkit"
	svc "foodreview/internal/services/api/restaurants/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/trending", h.trending)
	httpkit.Get(r, "/{id}", h.detail)
}

type handlers struct{ svc svc.Service }

// @Summary Trending restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} domain.TrendingRow "ok"
// @Router /restaurants/trending [get]
func (h *handlers) trending(r *stdhttp.Request) (any, error) {
	return h.svc.Trending(r.Context())
}

// @Summary Restaurant detail with reviews
// @Tags restaurants
// @Produce json
// @Param id path string true "restaurant id"
// @Success 200 {object} domain.Detail "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /restaurants/{id} [get]
func (h *handlers) detail(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Detail(r.Context(), id)
}
