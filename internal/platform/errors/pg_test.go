package errors

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "pg says no"}
}

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	if !IsDuplicateKey(pgErr("23505")) {
		t.Fatalf("23505 should be a duplicate key")
	}
	if IsDuplicateKey(pgErr("23503")) {
		t.Fatalf("23503 is not a duplicate key")
	}
	if IsDuplicateKey(nil) {
		t.Fatalf("nil is not a duplicate key")
	}
}

func TestIsDuplicateKey_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("insert: %w", pgErr("23505"))
	if !IsDuplicateKey(err) {
		t.Fatalf("wrapped 23505 should still match")
	}
}

func TestDBErrorCode_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"40001", ErrorCodeDB},
		{"57P03", ErrorCodeUnavailable},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.sqlstate))
		if !ok {
			t.Fatalf("DBErrorCode(%s) not recognized", c.sqlstate)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.sqlstate, got, c.want)
		}
	}
}

func TestIsNoRows(t *testing.T) {
	t.Parallel()

	if !IsNoRows(pgx.ErrNoRows) {
		t.Fatalf("pgx.ErrNoRows should match")
	}
	wrapped := Wrap(pgx.ErrNoRows, ErrorCodeDB, "scan failed")
	if !IsNoRows(wrapped) {
		t.Fatalf("wrapped ErrNoRows should match via Root")
	}
	if IsNoRows(pgErr("23505")) {
		t.Fatalf("a pg error is not ErrNoRows")
	}
}

func TestFromPostgres(t *testing.T) {
	t.Parallel()

	if FromPostgres(nil, "noop") != nil {
		t.Fatalf("nil in, nil out")
	}

	err := FromPostgres(pgx.ErrNoRows, "review lookup")
	if !IsCode(err, ErrorCodeNotFound) {
		t.Fatalf("no rows should map to NotFound, got %v", CodeOf(err))
	}

	err = FromPostgres(pgErr("23505"), "restaurant insert")
	if !IsCode(err, ErrorCodeDuplicateKey) {
		t.Fatalf("23505 should map to DuplicateKey, got %v", CodeOf(err))
	}

	err = FromPostgres(pgErr("23514"), "rating check")
	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("23514 should map to Validation, got %v", CodeOf(err))
	}
}
