package metrics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware registra cada requisição atendida no ring de amostras.
func Middleware(ring *Ring) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			ring.Record(Sample{
				Method:   r.Method,
				Path:     r.URL.Path,
				Status:   ww.Status(),
				Duration: time.Since(start),
				At:       start,
			})
		})
	}
}
