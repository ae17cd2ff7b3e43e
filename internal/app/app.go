package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goblog/internal/pkg/pkglog"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goblog/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uid       pkguid.StringID
	goroutine *pkgroutine.Manager

	// server
	middlewares []pkgrouter.Middleware
	corsOrigins []string
	services    []*service

	//
	closerFn map[string]func(context.Context) error
}

// service is one named HTTP listener with its own router.
type service struct {
	name       string
	router     *pkgrouter.Router
	httpServer *http.Server
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initDiagnostics()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
