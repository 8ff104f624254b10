package httpkit

import (
	"net/http"

	"github.com/google/uuid"

	perr "foodreview/internal/platform/errors"
)

// ParamUUID returns a named route parameter that must be a valid uuid.
// Malformed ids are rejected before they ever reach the database
func ParamUUID(r *http.Request, name string) (string, error) {
	raw := Param(r, name)
	if raw == "" {
		return "", perr.InvalidArgf("%s required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", perr.InvalidArgf("%s must be a uuid", name)
	}
	return id.String(), nil
}
