package post

import (
	util "github.com/saulo-duarte/flashdeck-lambda/internal/utils"
	"gorm.io/datatypes"
)

type CreatePostDTO struct {
	Title       string              `json:"title"`
	Content     string              `json:"content"`
	Tags        datatypes.JSON      `json:"tags,omitempty"`
	PublishedAt *util.LocalDateTime `json:"published_at,omitempty"`
}

type UpdatePostDTO struct {
	Title       *string             `json:"title"`
	Content     *string             `json:"content"`
	Tags        datatypes.JSON      `json:"tags,omitempty"`
	PublishedAt *util.LocalDateTime `json:"published_at,omitempty"`
}

type ListPostsQuery struct {
	Page    int
	PerPage int
	Search  string
	DelayMs int
}

type ListPostsResponse struct {
	Posts      []*Post `json:"posts"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int64   `json:"total"`
	TotalPages int     `json:"total_pages"`
}
