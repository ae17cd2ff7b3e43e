package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goblog/internal/blog/entity"
	"github.com/shandysiswandi/goblog/internal/blog/usecase"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

// segmentUnpublished is the static sibling of /blog/:id.
const segmentUnpublished = "unpublished"

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Home(ctx context.Context, r *http.Request) (any, error) {
	return h.uc.Home(ctx), nil
}

func (h *HTTPEndpoint) List(ctx context.Context, r *http.Request) (any, error) {
	limit, err := pkgrouter.QueryInt(r, "limit", entity.DefaultListLimit)
	if err != nil {
		return nil, err
	}

	published, err := pkgrouter.QueryBool(r, "published", entity.DefaultListPublished)
	if err != nil {
		return nil, err
	}

	return h.uc.List(ctx, entity.ListFilter{
		Limit:     limit,
		Published: published,
		Sort:      pkgrouter.QueryString(r, "sort"),
	}), nil
}

func (h *HTTPEndpoint) Unpublished(ctx context.Context, r *http.Request) (any, error) {
	return h.uc.Unpublished(ctx), nil
}

// Show answers /blog/:id. httprouter cannot register /blog/unpublished beside
// the wildcard, so that literal segment is dispatched here before parsing.
func (h *HTTPEndpoint) Show(ctx context.Context, r *http.Request) (any, error) {
	if pkgrouter.GetParam(ctx, "id") == segmentUnpublished {
		return h.Unpublished(ctx, r)
	}

	id, err := pkgrouter.ParamInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	return h.uc.Show(ctx, id), nil
}

func (h *HTTPEndpoint) Comments(ctx context.Context, r *http.Request) (any, error) {
	id, err := pkgrouter.ParamInt(ctx, "id")
	if err != nil {
		return nil, err
	}

	return h.uc.Comments(ctx, id), nil
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var req CreateBlogRequest
	if err := pkgrouter.Bind(r, &req); err != nil {
		return nil, err
	}

	result := h.uc.Create(ctx, usecase.CreateInput{
		Post: entity.BlogPost{
			Title:     req.Title,
			Body:      req.Body,
			Published: req.Published,
		},
	})

	return result.Confirmation(), nil
}
