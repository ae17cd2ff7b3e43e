package blog

import (
	"context"

	"github.com/shandysiswandi/goblog/internal/blog/inbound"
	"github.com/shandysiswandi/goblog/internal/blog/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

type Dependency struct {
	Router *pkgrouter.Router
}

// New registers the blog routes. The module holds no resources, so the
// returned closer is nil.
func New(dep Dependency) (func(context.Context) error, error) {
	inbound.RegisterHTTPEndpoint(dep.Router, usecase.New())

	return nil, nil
}
