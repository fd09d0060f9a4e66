package post

import "gorm.io/gorm"

type PostContainer struct {
	Handler *Handler
	Service PostService
}

func NewPostContainer(db *gorm.DB) *PostContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &PostContainer{
		Handler: handler,
		Service: service,
	}
}
