package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50
	maxDelay       = 5 * time.Second
)

var ErrPostNotFound = errors.New("post not found")

type PostService interface {
	CreatePost(ctx context.Context, dto *CreatePostDTO) (*Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	ListPosts(ctx context.Context, q ListPostsQuery) (*ListPostsResponse, error)
	UpdatePost(ctx context.Context, id string, dto *UpdatePostDTO) (*Post, error)
	DeletePost(ctx context.Context, id string) error
}

type postService struct {
	repo PostRepository
}

func NewService(repo PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) CreatePost(ctx context.Context, dto *CreatePostDTO) (*Post, error) {
	log := config.WithContext(ctx)
	log.Info("Criando novo post...")

	post := &Post{
		ID:          uuid.New(),
		Title:       dto.Title,
		Content:     dto.Content,
		Tags:        dto.Tags,
		PublishedAt: dto.PublishedAt,
	}

	if err := s.repo.Create(post); err != nil {
		log.WithError(err).Error("Erro ao criar post")
		return nil, err
	}

	log.Info("Post criado com sucesso", "post_id", post.ID.String())
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	log := config.WithContext(ctx)

	post, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar post")
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// ListPosts aceita um atraso artificial (delay_ms) para demonstrar
// estados de loading no front. O atraso respeita o cancelamento do
// contexto e tem teto de 5s.
func (s *postService) ListPosts(ctx context.Context, q ListPostsQuery) (*ListPostsResponse, error) {
	log := config.WithContext(ctx)

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}

	if q.DelayMs > 0 {
		delay := time.Duration(q.DelayMs) * time.Millisecond
		if delay > maxDelay {
			delay = maxDelay
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	posts, total, err := s.repo.List(q.Page, q.PerPage, q.Search)
	if err != nil {
		log.WithError(err).Error("Erro ao listar posts")
		return nil, err
	}

	totalPages := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	return &ListPostsResponse{
		Posts:      posts,
		Page:       q.Page,
		PerPage:    q.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *postService) UpdatePost(ctx context.Context, id string, dto *UpdatePostDTO) (*Post, error) {
	log := config.WithContext(ctx)

	post, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar post para atualização")
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if dto.Title != nil {
		post.Title = *dto.Title
	}
	if dto.Content != nil {
		post.Content = *dto.Content
	}
	if dto.Tags != nil {
		post.Tags = dto.Tags
	}
	if dto.PublishedAt != nil {
		post.PublishedAt = dto.PublishedAt
	}

	if err := s.repo.Update(post); err != nil {
		log.WithError(err).Error("Erro ao atualizar post")
		return nil, err
	}

	log.Info("Post atualizado com sucesso", "post_id", post.ID.String())
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	log.Info("Deletando post...", "post_id", id)

	post, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar post para exclusão")
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Erro ao deletar post")
		return err
	}

	log.Info("Post deletado com sucesso", "post_id", id)
	return nil
}
