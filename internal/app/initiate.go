package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/google/gops/agent"
	"github.com/rs/cors"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uid = newIDGenerator(a.config.GetString("server.correlation_id"))
}

func newIDGenerator(kind string) pkguid.StringID {
	if kind == "snowflake" {
		sf, err := pkguid.NewSnowflakeString()
		if err == nil {
			return sf
		}
		slog.Warn("failed to init snowflake generator, using uuid", "error", err)
	}

	return pkguid.NewUUID()
}

func (a *App) initDiagnostics() {
	if !a.config.GetBool("debug.gops") {
		return
	}

	if err := agent.Listen(agent.Options{}); err != nil {
		slog.Warn("could not start gops agent", "error", err)
		return
	}

	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn["Gops Agent"] = func(context.Context) error {
		agent.Close()
		return nil
	}
}

func (a *App) initHTTPServer() {
	a.middlewares = []pkgrouter.Middleware{
		pkgrouter.RateLimit(pkgrouter.RateLimitConfig{
			RPS:        a.config.GetFloat("server.rate_limit.rps"),
			Burst:      int(a.config.GetInt("server.rate_limit.burst")),
			TrustProxy: a.config.GetBool("server.rate_limit.trust_proxy"),
		}),
	}

	a.corsOrigins = a.config.GetArray("server.cors.allowed_origins")
	if len(a.corsOrigins) == 0 {
		a.corsOrigins = []string{"*"}
	}
}

// newService creates the router and HTTP server of one named service.
// Routes must be registered on the returned router before Start.
func (a *App) newService(name, addr string) *service {
	router := pkgrouter.NewRouter(name, a.uid)
	router.Use(a.middlewares...)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.corsOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		// credentials are only sent to origins that are listed explicitly
		AllowCredentials: !slices.Contains(a.corsOrigins, "*"),
	})

	svc := &service{
		name:   name,
		router: router,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           corsHandler.Handler(router),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	a.services = append(a.services, svc)

	return svc
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
