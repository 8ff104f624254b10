// Package http provides http transport for reviews
package http

import (
	stdhttp "net/http"

	"foodreview/internal/modkit/httpkit"
	"foodreview/internal/services/api/reviews/domain"
	svc "foodreview/internal/services/api/reviews/service"
)

// Register mounts the public review routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/user/{userId}", h.userReviews)
	httpkit.Get(r, "/{reviewId}", h.get)
}

// RegisterProtected mounts the routes that require an authenticated caller
func RegisterProtected(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PatchJSON[domain.UpdateInput](r, "/{reviewId}", h.update)
	httpkit.Get(r, "/my-reviews", h.myReviews)
}

type handlers struct{ svc svc.Service }

// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Review"
// @Success 200 {object} domain.Response "ok"
// @Failure 422 {object} httpkit.Envelope "invalid place reference"
// @Router /reviews [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Create(r.Context(), uid, in)
}

// @Summary Patch review
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewId path string true "review id"
// @Param payload body domain.UpdateInput true "Patch"
// @Success 200 {object} domain.Response "ok"
// @Failure 403 {object} httpkit.Envelope "not owner"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /reviews/{reviewId} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	id, err := httpkit.ParamUUID(r, "reviewId")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), uid, id, in)
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param reviewId path string true "review id"
// @Success 200 {object} domain.Response "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /reviews/{reviewId} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.ParamUUID(r, "reviewId")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), id)
}

// @Summary Reviews by user
// @Tags reviews
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {array} domain.Response "ok"
// @Router /reviews/user/{userId} [get]
func (h *handlers) userReviews(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.ParamUUID(r, "userId")
	if err != nil {
		return nil, err
	}
	return h.svc.ListByAuthor(r.Context(), uid)
}

// @Summary My reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} domain.Response "ok"
// @Router /reviews/my-reviews [get]
func (h *handlers) myReviews(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.ListByAuthor(r.Context(), uid)
}
