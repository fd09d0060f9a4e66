package quiz

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetQuizQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizName := chi.URLParam(r, "quizName")
	if quizName == "" {
		log.Warn("Nome do quiz não fornecido")
		http.Error(w, "quiz name required", http.StatusBadRequest)
		return
	}

	questions, skipped, err := h.service.GetQuizQuestions(r.Context(), quizName)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao carregar perguntas do quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"quiz_name":     quizName,
		"questions":     questions,
		"total":         len(questions),
		"skipped_cards": skipped,
	})
}
