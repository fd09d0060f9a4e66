package blob

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListBlobs)
	r.Post("/", h.UploadBlob)
	r.Get("/{id}", h.ViewBlob)
	r.Delete("/{id}", h.DeleteBlob)
	return r
}
