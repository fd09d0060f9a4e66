package user

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

type fakeUserRepo struct {
	users map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*User{}}
}

func (r *fakeUserRepo) Create(u *User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByGoogleID(googleID string) (*User, error) {
	for _, u := range r.users {
		if u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *User) error {
	r.users[u.ID.String()] = u
	return nil
}

func TestSyncGoogleProfile(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "01234567890123456789012345678901")
	config.InitCrypto()

	t.Run("UsuarioInexistente", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.SyncGoogleProfile(context.Background(), uuid.New().String())
		if err == nil {
			t.Fatal("SyncGoogleProfile deveria falhar para usuário inexistente.")
		}
	})

	t.Run("SemRefreshTokenArmazenado", func(t *testing.T) {
		repo := newFakeUserRepo()
		u := &User{ID: uuid.New(), GoogleID: "g-1", Email: "a@b.com", Role: "user"}
		if err := repo.Create(u); err != nil {
			t.Fatalf("Erro ao criar usuário de teste: %v", err)
		}

		svc := NewService(repo)

		_, err := svc.SyncGoogleProfile(context.Background(), u.ID.String())
		if !errors.Is(err, ErrNoGoogleToken) {
			t.Errorf("Esperava ErrNoGoogleToken, obteve: %v", err)
		}
	})

	t.Run("RefreshTokenCorrompido", func(t *testing.T) {
		repo := newFakeUserRepo()
		u := &User{
			ID:           uuid.New(),
			GoogleID:     "g-2",
			Email:        "a@b.com",
			Role:         "user",
			RefreshToken: "não é base64 válido!!!",
		}
		if err := repo.Create(u); err != nil {
			t.Fatalf("Erro ao criar usuário de teste: %v", err)
		}

		svc := NewService(repo)

		_, err := svc.SyncGoogleProfile(context.Background(), u.ID.String())
		if err == nil {
			t.Fatal("SyncGoogleProfile deveria falhar com refresh token corrompido.")
		}
	})
}
