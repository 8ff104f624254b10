// Package http provides http transport for profiles
package http

import (
	stdhttp "net/http"

	"foodreview/internal/modkit/httpkit"
	"foodreview/internal/services/api/profiles/domain"
	svc "foodreview/internal/services/api/profiles/service"
)

// RegisterProtected mounts /me, both routes require an authenticated caller
func RegisterProtected(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/me", h.me)
	httpkit.PatchJSON[domain.UpdateInput](r, "/me", h.updateMe)
}

type handlers struct{ svc svc.Service }

// @Summary Current profile
// @Tags profiles
// @Produce json
// @Success 200 {object} domain.Response "ok"
// @Router /me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), uid)
}

// @Summary Patch current profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Response "ok"
// @Router /me [patch]
func (h *handlers) updateMe(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.UpdateMe(r.Context(), uid, in)
}
