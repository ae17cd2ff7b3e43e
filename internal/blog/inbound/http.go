package inbound

import (
	"context"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/blog/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

type uc interface {
	Home(ctx context.Context) string
	List(ctx context.Context, filter entity.ListFilter) string
	Unpublished(ctx context.Context) string
	Show(ctx context.Context, id int64) int64
	Comments(ctx context.Context, id int64) []string
	Create(ctx context.Context, in usecase.CreateInput) usecase.CreateResult
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/", end.Home)

	r.GET("/blog", end.List) // ?limit=&published=&sort=
	r.POST("/blog", end.Create)

	// also serves /blog/unpublished, see Show
	r.GET("/blog/:id", end.Show)
	r.GET("/blog/:id/comments", end.Comments)
}
