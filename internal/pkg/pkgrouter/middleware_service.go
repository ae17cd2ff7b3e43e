package pkgrouter

import (
	"net/http"

	"github.com/shandysiswandi/goblog/internal/pkg/pkglog"
)

func middlewareService(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if name != "" {
				r = r.WithContext(pkglog.SetService(r.Context(), name))
			}
			next.ServeHTTP(w, r)
		})
	}
}
