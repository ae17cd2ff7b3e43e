package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgrouter"
)

type IndexResponse struct {
	Name string `json:"name"`
}

type HTTPEndpoint struct {
	name string
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, name string) {
	end := &HTTPEndpoint{name: name}

	r.GET("/", end.Index)
	r.GET("/about", end.About)
}

func (h *HTTPEndpoint) Index(ctx context.Context, r *http.Request) (any, error) {
	return IndexResponse{Name: h.name}, nil
}

func (h *HTTPEndpoint) About(ctx context.Context, r *http.Request) (any, error) {
	return []string{"about page"}, nil
}
