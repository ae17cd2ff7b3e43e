package home

import (
	"context"
	"strings"

	"github.com/shandysiswandi/goblog/internal/home/inbound"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

const defaultSiteName = "goblog"

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) (func(context.Context) error, error) {
	name := defaultSiteName
	if dep.Config != nil {
		if v := strings.TrimSpace(dep.Config.GetString("modules.home.name")); v != "" {
			name = v
		}
	}

	inbound.RegisterHTTPEndpoint(dep.Router, name)

	return nil, nil
}
