package blob

import (
	"errors"

	"gorm.io/gorm"
)

type BlobRepository interface {
	Create(b *Blob) error
	GetByID(id string) (*Blob, error)
	ListMetadata() ([]*Blob, error)
	Delete(id string) error
}

type blobRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) BlobRepository {
	return &blobRepository{db: db}
}

func (r *blobRepository) Create(b *Blob) error {
	return r.db.Create(b).Error
}

func (r *blobRepository) GetByID(id string) (*Blob, error) {
	var blob Blob
	if err := r.db.First(&blob, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blob, nil
}

// ListMetadata omite a coluna de dados para não carregar os payloads.
func (r *blobRepository) ListMetadata() ([]*Blob, error) {
	var blobs []*Blob
	err := r.db.
		Select("id", "filename", "content_type", "size", "created_at").
		Order("created_at DESC").
		Find(&blobs).Error
	if err != nil {
		return nil, err
	}
	return blobs, nil
}

func (r *blobRepository) Delete(id string) error {
	return r.db.Delete(&Blob{}, "id = ?", id).Error
}
