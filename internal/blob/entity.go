package blob

import (
	"time"

	"github.com/google/uuid"
)

type Blob struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename    string    `gorm:"type:text;not null" json:"filename"`
	ContentType string    `gorm:"type:text;not null" json:"content_type"`
	Size        int64     `gorm:"not null" json:"size"`
	Data        []byte    `gorm:"type:bytea;not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
