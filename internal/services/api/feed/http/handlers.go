// Package http provides http transport for the personal feed
package http

import (
	stdhttp "net/http"

	"foodreview/internal/modkit/httpkit"
	svc "foodreview/internal/services/api/feed/service"
)

// RegisterProtected mounts the feed route, the viewer comes from auth context
func RegisterProtected(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/feed", h.feed)
}

type handlers struct{ svc svc.Service }

// @Summary Personal feed
// @Tags feed
// @Produce json
// @Success 200 {array} domain.Entry "ok"
// @Failure 404 {object} httpkit.Envelope "unknown viewer"
// @Router /reviews/feed [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.PersonalFeed(r.Context(), uid)
}
