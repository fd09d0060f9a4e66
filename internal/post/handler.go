package post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

type Handler struct {
	service PostService
}

func NewHandler(s PostService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar post")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if dto.Title == "" || dto.Content == "" {
		http.Error(w, "title and content required", http.StatusBadRequest)
		return
	}

	post, err := h.service.CreatePost(r.Context(), &dto)
	if err != nil {
		log.WithError(err).Error("Erro ao criar post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, post)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	postID := chi.URLParam(r, "id")
	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, post)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	q := ListPostsQuery{
		Page:    intQueryParam(r, "page", 1),
		PerPage: intQueryParam(r, "per_page", defaultPerPage),
		Search:  r.URL.Query().Get("q"),
		DelayMs: intQueryParam(r, "delay_ms", 0),
	}

	resp, err := h.service.ListPosts(r.Context(), q)
	if err != nil {
		log.WithError(err).Error("Erro ao listar posts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	postID := chi.URLParam(r, "id")

	var dto UpdatePostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para atualizar post")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.service.UpdatePost(r.Context(), postID, &dto)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao atualizar post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, post)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	postID := chi.URLParam(r, "id")
	if err := h.service.DeletePost(r.Context(), postID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao deletar post")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "post deleted successfully",
	})
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
