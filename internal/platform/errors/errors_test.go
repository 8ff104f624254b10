package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestWrap_PreservesRootAndCode(t *testing.T) {
	t.Parallel()

	root := stderrs.New("boom")
	err := Wrap(root, ErrorCodeDB, "query failed")

	if !stderrs.Is(err, root) {
		t.Fatalf("wrapped error should unwrap to root")
	}
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("CodeOf = %v, want ErrorCodeDB", CodeOf(err))
	}
	if Root(err) != root {
		t.Fatalf("Root should return the original error")
	}
}

func TestCodeOf_UnwrapsNesting(t *testing.T) {
	t.Parallel()

	inner := NotFoundf("review missing")
	outer := Wrap(inner, ErrorCodeDB, "load failed")

	// outermost coded error wins
	if CodeOf(outer) != ErrorCodeDB {
		t.Fatalf("CodeOf(outer) = %v, want ErrorCodeDB", CodeOf(outer))
	}
	if !IsCode(inner, ErrorCodeNotFound) {
		t.Fatalf("IsCode(inner, NotFound) = false")
	}
}

func TestWithField_AttachesField(t *testing.T) {
	t.Parallel()

	err := WithField(Validationf("must be set"), "rating")
	e, ok := As(err)
	if !ok {
		t.Fatalf("As failed for platform error")
	}
	if e.Field() != "rating" {
		t.Fatalf("Field = %q, want rating", e.Field())
	}
}

func TestWireFrom_PlainError(t *testing.T) {
	t.Parallel()

	w := WireFrom(stderrs.New("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("WireFrom plain = %+v", w)
	}
}

func TestHTTP_ReturnsStatusAndWire(t *testing.T) {
	t.Parallel()

	status, wire := HTTP(Forbiddenf("not the owner"))
	if status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", status)
	}
	if wire.Code != ErrorCodeForbidden {
		t.Fatalf("wire code = %v, want Forbidden", wire.Code)
	}
}
