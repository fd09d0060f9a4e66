package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

const MaxBlobSize = 5 << 20 // 5 MiB

var (
	ErrBlobNotFound = errors.New("blob not found")
	ErrBlobTooLarge = fmt.Errorf("blob exceeds %d bytes", MaxBlobSize)
)

type BlobService interface {
	UploadBlob(ctx context.Context, filename, contentType string, data []byte) (*Blob, error)
	GetBlob(ctx context.Context, id string) (*Blob, error)
	ListBlobs(ctx context.Context) ([]*Blob, error)
	DeleteBlob(ctx context.Context, id string) error
}

type blobService struct {
	repo BlobRepository
}

func NewService(repo BlobRepository) BlobService {
	return &blobService{repo: repo}
}

func (s *blobService) UploadBlob(ctx context.Context, filename, contentType string, data []byte) (*Blob, error) {
	log := config.WithContext(ctx)
	log.Info("Recebendo upload de blob...", "filename", filename)

	if len(data) == 0 {
		return nil, errors.New("empty upload")
	}
	if len(data) > MaxBlobSize {
		return nil, ErrBlobTooLarge
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	blob := &Blob{
		ID:          uuid.New(),
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}

	if err := s.repo.Create(blob); err != nil {
		log.WithError(err).Error("Erro ao gravar blob")
		return nil, err
	}

	log.Info("Blob gravado com sucesso", "blob_id", blob.ID.String())
	return blob, nil
}

func (s *blobService) GetBlob(ctx context.Context, id string) (*Blob, error) {
	log := config.WithContext(ctx)

	blob, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar blob")
		return nil, err
	}
	if blob == nil {
		return nil, ErrBlobNotFound
	}
	return blob, nil
}

func (s *blobService) ListBlobs(ctx context.Context) ([]*Blob, error) {
	log := config.WithContext(ctx)

	blobs, err := s.repo.ListMetadata()
	if err != nil {
		log.WithError(err).Error("Erro ao listar blobs")
		return nil, err
	}
	return blobs, nil
}

func (s *blobService) DeleteBlob(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	log.Info("Deletando blob...", "blob_id", id)

	blob, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar blob para exclusão")
		return err
	}
	if blob == nil {
		return ErrBlobNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Erro ao deletar blob")
		return err
	}
	return nil
}
