package quizsession

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.InitializeSession)
	r.Get("/{id}", h.GetSession)
	r.Post("/{id}/answers", h.SaveAnswer)
	r.Post("/{id}/flags", h.ToggleFlag)
	r.Post("/{id}/complete", h.CompleteSession)
	return r
}
