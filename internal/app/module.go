package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/goblog/internal/blog"
	"github.com/shandysiswandi/goblog/internal/home"
)

const (
	defaultBlogAddress = ":8000"
	defaultHomeAddress = ":8001"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.blog.enabled") {
		svc := a.newService("blog", a.addressOf("modules.blog.address", defaultBlogAddress))
		closer, err := blog.New(blog.Dependency{
			Router: svc.router,
		})
		a.registerModule("Blog", closer, err)
	}

	if a.config.GetBool("modules.home.enabled") {
		svc := a.newService("home", a.addressOf("modules.home.address", defaultHomeAddress))
		closer, err := home.New(home.Dependency{
			Config: a.config,
			Router: svc.router,
		})
		a.registerModule("Home", closer, err)
	}

	if len(a.services) == 0 {
		slog.Warn("no module enabled, nothing will be served")
	}
}

func (a *App) addressOf(key, def string) string {
	if addr := a.config.GetString(key); addr != "" {
		return addr
	}
	return def
}

func (a *App) registerModule(name string, closer func(context.Context) error, err error) {
	if err != nil {
		slog.Error("failed to init module", "module", name, "error", err)
		os.Exit(1)
	}
	if closer != nil {
		if a.closerFn == nil {
			a.closerFn = map[string]func(context.Context) error{}
		}
		a.closerFn[name] = closer
	}
}
