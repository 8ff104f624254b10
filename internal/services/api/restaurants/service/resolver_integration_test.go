//go:build integration_pg
// +build integration_pg

package service

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"foodreview/internal/platform/store"
	"foodreview/internal/services/api/restaurants/domain"
	"foodreview/internal/services/api/restaurants/repo"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

const restaurantsDDL = `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;
	CREATE TABLE IF NOT EXISTS restaurants (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		provider    TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		name        TEXT NOT NULL,
		address     TEXT,
		lat         DOUBLE PRECISION,
		lng         DOUBLE PRECISION,
		photo_url   TEXT,
		categories  JSONB,
		price_tier  INTEGER,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ,
		CONSTRAINT restaurants_provider_unique UNIQUE (provider, provider_id)
	)
`

func TestResolve_Integration_ConcurrentCallersConvergeOnOneRow(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 8},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	if _, err := st.PG.Exec(ctx, restaurantsDDL); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	svc := New(st.PG, repo.NewPG(), Options{})
	ref := domain.Ref{Provider: "google", ProviderID: "ChIJ-race", Name: "Joe's Pizza"}

	// every caller must come back with the same identity row
	const callers = 16
	got := make([]domain.Restaurant, callers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			r, err := svc.Resolve(gctx, ref)
			if err != nil {
				return err
			}
			got[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent resolve: %v", err)
	}

	first := got[0]
	if first.ID == "" {
		t.Fatalf("empty identity id")
	}
	for i, r := range got {
		if r.ID != first.ID {
			t.Fatalf("caller %d got id %q, want %q", i, r.ID, first.ID)
		}
	}

	var rows int
	if err := st.PG.QueryRow(ctx,
		`SELECT COUNT(*) FROM restaurants WHERE provider=$1 AND provider_id=$2`,
		ref.Provider, ref.ProviderID,
	).Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("row count = %d, want exactly one identity per place", rows)
	}

	// a later call is a plain hit on the same row
	again, err := svc.Resolve(ctx, domain.Ref{Provider: " google ", ProviderID: " ChIJ-race "})
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("second resolve got %q, want %q", again.ID, first.ID)
	}
}
