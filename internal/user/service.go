package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var ErrNoGoogleToken = errors.New("no google refresh token stored for user")

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	SyncGoogleProfile(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo  UserRepository
	oauth *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// GoogleLogin troca o authorization code, busca o perfil no Google e
// cria ou atualiza o usuário local. O refresh token do Google é
// armazenado cifrado.
func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, error) {
	log := config.WithContext(ctx)
	log.Info("Autenticando usuário via Google...")

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Erro ao trocar o authorization code")
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar perfil no Google")
		return nil, err
	}

	existing, err := s.repo.GetByGoogleID(info.ID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário")
		return nil, err
	}

	encryptedRefresh := ""
	if token.RefreshToken != "" {
		encryptedRefresh, err = config.Encrypt(token.RefreshToken)
		if err != nil {
			log.WithError(err).Error("Erro ao cifrar refresh token")
			return nil, err
		}
	}

	if existing == nil {
		newUser := &User{
			ID:           uuid.New(),
			GoogleID:     info.ID,
			Email:        info.Email,
			Name:         info.Name,
			AvatarURL:    info.Picture,
			Role:         "user",
			RefreshToken: encryptedRefresh,
		}
		if err := s.repo.Create(newUser); err != nil {
			log.WithError(err).Error("Erro ao criar usuário")
			return nil, err
		}
		log.Info("Usuário criado com sucesso", "user_id", newUser.ID.String())
		return newUser, nil
	}

	existing.Email = info.Email
	existing.Name = info.Name
	existing.AvatarURL = info.Picture
	if encryptedRefresh != "" {
		existing.RefreshToken = encryptedRefresh
	}
	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Erro ao atualizar usuário")
		return nil, err
	}

	log.Info("Usuário autenticado com sucesso", "user_id", existing.ID.String())
	return existing, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário")
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q not found", id)
	}
	return u, nil
}

// SyncGoogleProfile reobtém o perfil no Google usando o refresh token
// armazenado, sem exigir um novo login. Se o Google rotacionar o
// refresh token, a versão nova é cifrada e persistida no lugar.
func (s *userService) SyncGoogleProfile(ctx context.Context, id string) (*User, error) {
	log := config.WithContext(ctx)
	log.Info("Sincronizando perfil com o Google...", "user_id", id)

	u, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar usuário")
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q not found", id)
	}
	if u.RefreshToken == "" {
		return nil, ErrNoGoogleToken
	}

	refresh, err := config.Decrypt(u.RefreshToken)
	if err != nil {
		log.WithError(err).Error("Erro ao decifrar refresh token")
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}

	token, err := s.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
	if err != nil {
		log.WithError(err).Warn("Erro ao renovar token junto ao Google")
		return nil, fmt.Errorf("failed to refresh google token: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar perfil no Google")
		return nil, err
	}

	u.Email = info.Email
	u.Name = info.Name
	u.AvatarURL = info.Picture
	if token.RefreshToken != "" && token.RefreshToken != refresh {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			log.WithError(err).Error("Erro ao cifrar refresh token rotacionado")
			return nil, err
		}
		u.RefreshToken = encrypted
	}

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Erro ao atualizar usuário")
		return nil, err
	}

	log.Info("Perfil sincronizado com sucesso", "user_id", u.ID.String())
	return u, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauth.Client(ctx, token)

	resp, err := client.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("user info request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}
