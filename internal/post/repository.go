package post

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(p *Post) error
	GetByID(id string) (*Post, error)
	List(page, perPage int, search string) ([]*Post, int64, error)
	Update(p *Post) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(p *Post) error {
	return r.db.Create(p).Error
}

func (r *postRepository) GetByID(id string) (*Post, error) {
	var post Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(page, perPage int, search string) ([]*Post, int64, error) {
	query := r.db.Model(&Post{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*Post
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepository) Update(p *Post) error {
	return r.db.Save(p).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&Post{}, "id = ?", id).Error
}
