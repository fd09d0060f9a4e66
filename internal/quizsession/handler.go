package quizsession

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
	"github.com/saulo-duarte/flashdeck-lambda/internal/quiz"
)

type Handler struct {
	service QuizSessionService
}

func NewHandler(s QuizSessionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) InitializeSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		QuizName string `json:"quiz_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para iniciar sessão")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if payload.QuizName == "" {
		log.Warn("Tentativa de iniciar sessão sem nome de quiz")
		http.Error(w, "quiz_name required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.InitializeQuizSession(r.Context(), payload.QuizName)
	if err != nil {
		if errors.Is(err, quiz.ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao inicializar sessão de quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		http.Error(w, "session id required", http.StatusBadRequest)
		return
	}

	session := h.service.GetQuizSession(r.Context(), sessionID)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
		"status":  session.Status(),
	})
}

func (h *Handler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		http.Error(w, "session id required", http.StatusBadRequest)
		return
	}

	var payload SaveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para salvar resposta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if payload.QuestionIndex < 0 {
		http.Error(w, "question_index must be >= 0", http.StatusBadRequest)
		return
	}
	if payload.SelectedOption == "" {
		http.Error(w, "selected_option required", http.StatusBadRequest)
		return
	}

	answer := h.service.SaveAnswer(r.Context(), sessionID, payload.QuestionIndex, payload.SelectedOption, payload.IsCorrect)
	config.JSON(w, http.StatusOK, answer)
}

func (h *Handler) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		http.Error(w, "session id required", http.StatusBadRequest)
		return
	}

	var payload ToggleFlagRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para marcar pergunta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if payload.QuestionIndex < 0 {
		http.Error(w, "question_index must be >= 0", http.StatusBadRequest)
		return
	}

	flag := h.service.ToggleFlag(r.Context(), sessionID, payload.QuestionIndex, payload.IsFlagged)
	config.JSON(w, http.StatusOK, flag)
}

func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		http.Error(w, "session id required", http.StatusBadRequest)
		return
	}

	summary, err := h.service.CompleteQuizSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao finalizar sessão de quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
