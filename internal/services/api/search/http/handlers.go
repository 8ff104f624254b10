// Package http provides http transport for restaurant search
package http

import (
	stdhttp "net/http"
	"strconv"

	"foodreview/internal/modkit/httpkit"
	perrs "foodreview/internal/platform/errors"
	svc "foodreview/internal/services/api/search/service"
)

// Register mounts the search route under the restaurants prefix
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Search restaurants near a point
// @Tags restaurants
// @Produce json
// @Param query query string true "free text query"
// @Param lat query number true "latitude"
// @Param lng query number true "longitude"
// @Success 200 {array} google.Place "ok"
// @Router /restaurants/search [get]
func (h *handlers) search(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return nil, perrs.InvalidArgf("lat must be a number")
	}
	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil {
		return nil, perrs.InvalidArgf("lng must be a number")
	}
	return h.svc.Search(r.Context(), q.Get("query"), lat, lng)
}
