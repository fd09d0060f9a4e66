package post

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/flashdeck-lambda/internal/utils"
	"gorm.io/datatypes"
)

type Post struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string              `gorm:"type:text;not null" json:"title"`
	Content     string              `gorm:"type:text;not null" json:"content"`
	Tags        datatypes.JSON      `gorm:"type:jsonb" json:"tags,omitempty"`
	PublishedAt *util.LocalDateTime `json:"published_at,omitempty"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}
