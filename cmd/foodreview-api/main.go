// @title         Foodreview API
// @version       0.1.0
// @description   Restaurant identity, reviews, and social feed endpoints

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"foodreview/internal/platform/config"
	"foodreview/internal/platform/logger"
	"foodreview/internal/platform/metrics"
	phttp "foodreview/internal/platform/net/http"
	pmw "foodreview/internal/platform/net/middleware"
	"foodreview/internal/platform/store"

	"foodreview/internal/adapters/places/google"
	"foodreview/internal/services/api"
)

func main() {
	config.LoadDotenv()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	authCfg := root.Prefix("AUTH_")
	placesCfg := root.Prefix("PLACES_")

	// bring up logging early
	l := logger.Get()

	pgURL := pgCfg.MustString("DBURL")

	if pgCfg.MayBool("MIGRATE", false) {
		if err := store.Migrate(pgURL, pgCfg.MayString("MIGRATIONS_DIR", "migrations")); err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
	}

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "foodreview-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	places := google.NewClient(google.Options{
		APIKey:  placesCfg.MustString("API_KEY"),
		Timeout: placesCfg.MayDuration("TIMEOUT", 10*time.Second),
	})

	verifier := pmw.HS256Verifier{Secret: []byte(authCfg.MustString("JWT_SECRET"))}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Metrics:       metrics.New(),
			Places:        places,
			Auth:          verifier,
			ServiceName:   "foodreview-api",
			StartedAt:     time.Now().UTC(),
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info().Str("addr", srv.Addr()).Msg("http server starting")
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
