// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"
	"time"

	"foodreview/internal/platform/config"
	perr "foodreview/internal/platform/errors"
	"foodreview/internal/platform/logger"
	"foodreview/internal/platform/metrics"
	phttp "foodreview/internal/platform/net/http"
	pmw "foodreview/internal/platform/net/middleware"
	"foodreview/internal/platform/store"

	"foodreview/internal/adapters/places/google"
	"foodreview/internal/modkit"
	"foodreview/internal/modkit/swaggerkit"

	feedhttp "foodreview/internal/services/api/feed/http"
	feedrepo "foodreview/internal/services/api/feed/repo"
	feedsvc "foodreview/internal/services/api/feed/service"
	followsrepo "foodreview/internal/services/api/follows/repo"
	followssvc "foodreview/internal/services/api/follows/service"
	metahttp "foodreview/internal/services/api/meta/http"
	profhttp "foodreview/internal/services/api/profiles/http"
	profrepo "foodreview/internal/services/api/profiles/repo"
	profsvc "foodreview/internal/services/api/profiles/service"
	resthttp "foodreview/internal/services/api/restaurants/http"
	restrepo "foodreview/internal/services/api/restaurants/repo"
	restsvc "foodreview/internal/services/api/restaurants/service"
	revhttp "foodreview/internal/services/api/reviews/http"
	revrepo "foodreview/internal/services/api/reviews/repo"
	revsvc "foodreview/internal/services/api/reviews/service"
	searchhttp "foodreview/internal/services/api/search/http"
	searchsvc "foodreview/internal/services/api/search/service"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Metrics       *metrics.Metrics
	Places        *google.Client
	Auth          pmw.Verifier
	ServiceName   string
	StartedAt     time.Time
	EnableSwagger bool
}

// Mount wires every module and mounts the full route tree onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log: *logger.Named("api"),
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	follows := followssvc.New(deps.PG, followsrepo.NewPG())
	restaurants := restsvc.New(deps.PG, restrepo.NewPG(), restsvc.Options{Metrics: opt.Metrics})
	reviews := revsvc.New(deps.PG, revrepo.NewPG(), revsvc.Options{
		Resolver: restaurants,
		Metrics:  opt.Metrics,
	})
	feed := feedsvc.New(deps.PG, feedrepo.NewPG(), feedsvc.Options{
		Follows: follows,
		Metrics: opt.Metrics,
	})
	profiles := profsvc.New(deps.PG, profrepo.NewPG(), profsvc.Options{Follows: follows})
	search := searchsvc.New(opt.Places)

	// common middleware stack, applied before any route registration
	r.Use(
		pmw.RequestID(),
		pmw.RealIP(),
		pmw.StripSlashes(),
		pmw.CORS(pmw.CORSOptions{
			AllowedOrigins:   opt.Config.MayStringSlice("CORS_ORIGINS", []string{"*"}),
			AllowCredentials: opt.Config.MayBool("CORS_CREDENTIALS", false),
			MaxAge:           300,
		}),
		pmw.AccessLog(pmw.AccessLogOptions{Slow: 500 * time.Millisecond}),
		pmw.RecoverJSON,
		pmw.Timeout(60*time.Second),
		pmw.Heartbeat("/health"),
	)

	requireAuth := pmw.RequireAuth(opt.Auth, writeAuthError)

	swaggerkit.Mount(r, opt.EnableSwagger)
	metrics.Mount(r)

	r.Route("/meta", func(rr phttp.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: opt.ServiceName,
			StartedAt:   opt.StartedAt,
			PG:          deps.PG,
		})
	})

	r.Route("/restaurants", func(rr phttp.Router) {
		searchhttp.Register(rr, search)
		resthttp.Register(rr, restaurants)
	})

	r.Route("/reviews", func(rr phttp.Router) {
		rr.Group(func(g phttp.Router) {
			g.Use(requireAuth)
			revhttp.RegisterProtected(g, reviews)
			feedhttp.RegisterProtected(g, feed)
		})
		revhttp.Register(rr, reviews)
	})

	r.Group(func(g phttp.Router) {
		g.Use(requireAuth)
		profhttp.RegisterProtected(g, profiles)
	})
}

// writeAuthError renders auth failures in the standard envelope
func writeAuthError(w stdhttp.ResponseWriter, status int, body any) {
	env := phttp.Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
	}
	if wire, ok := body.(perr.Wire); ok {
		env.Code = wire.Code
		env.Error = wire.Message
	}
	phttp.JSON(w, status, env)
}
