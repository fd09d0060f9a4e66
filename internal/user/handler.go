package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/saulo-duarte/flashdeck-lambda/internal/auth"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para login")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if payload.Code == "" {
		http.Error(w, "code required", http.StatusBadRequest)
		return
	}

	u, err := h.service.GoogleLogin(r.Context(), payload.Code)
	if err != nil {
		log.WithError(err).Warn("Falha na autenticação com o Google")
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateJWT(u.ID.String(), u.Role, accessTokenTTL)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar token de acesso")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	refreshToken, err := auth.GenerateJWT(u.ID.String(), u.Role, refreshTokenTTL)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar refresh token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, "jwt", accessToken, accessTokenTTL)
	setAuthCookie(w, "refresh_token", refreshToken, refreshTokenTTL)

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		http.Error(w, "refresh token required", http.StatusUnauthorized)
		return
	}

	claims, err := auth.ValidateJWT(cookie.Value)
	if err != nil {
		log.WithError(err).Warn("Refresh token inválido")
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateJWT(claims.UserID, claims.Role, accessTokenTTL)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar token de acesso")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setAuthCookie(w, "jwt", accessToken, accessTokenTTL)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed",
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Usuário autenticado não encontrado")
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) SyncGoogleProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.SyncGoogleProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrNoGoogleToken) {
			http.Error(w, "no google account linked", http.StatusConflict)
			return
		}
		log.WithError(err).Warn("Falha ao sincronizar perfil com o Google")
		http.Error(w, "failed to sync google profile", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func setAuthCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
