package blob

import "gorm.io/gorm"

type BlobContainer struct {
	Handler *Handler
	Service BlobService
}

func NewBlobContainer(db *gorm.DB) *BlobContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &BlobContainer{
		Handler: handler,
		Service: service,
	}
}
