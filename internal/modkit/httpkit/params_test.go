package httpkit

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "foodreview/internal/platform/errors"
)

func paramRequest(name, value string) *chi.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return rctx
}

func TestParamUUID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		value    string
		wantErr  bool
		wantCode perr.ErrorCode
	}{
		{name: "valid", value: "3b241101-e2bb-4255-8caf-4136c566a962"},
		{name: "empty", value: "", wantErr: true, wantCode: perr.ErrorCodeInvalidArgument},
		{name: "garbage", value: "not-a-uuid", wantErr: true, wantCode: perr.ErrorCodeInvalidArgument},
		{name: "truncated", value: "3b241101-e2bb-4255", wantErr: true, wantCode: perr.ErrorCodeInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/x", nil)
			rctx := paramRequest("id", tc.value)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			got, err := ParamUUID(r, "id")
			if tc.wantErr {
				if !perr.IsCode(err, tc.wantCode) {
					t.Fatalf("want code %d, got %v", tc.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParamUUID: %v", err)
			}
			if got != tc.value {
				t.Fatalf("got %q, want %q", got, tc.value)
			}
		})
	}
}
