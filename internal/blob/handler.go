package blob

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/flashdeck-lambda/internal/config"
)

type Handler struct {
	service BlobService
}

func NewHandler(s BlobService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) UploadBlob(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseMultipartForm(MaxBlobSize); err != nil {
		log.WithError(err).Warn("Formulário multipart inválido")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxBlobSize+1))
	if err != nil {
		log.WithError(err).Error("Erro ao ler arquivo enviado")
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	blob, err := h.service.UploadBlob(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, ErrBlobTooLarge) {
			http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.WithError(err).Error("Erro ao gravar blob")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, blob)
}

func (h *Handler) ListBlobs(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	blobs, err := h.service.ListBlobs(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao listar blobs")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, blobs)
}

// ViewBlob devolve os bytes crus com o content type original, para o
// navegador renderizar direto (imagem, pdf etc).
func (h *Handler) ViewBlob(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	blobID := chi.URLParam(r, "id")
	blob, err := h.service.GetBlob(r.Context(), blobID)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			http.Error(w, "blob not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar blob")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(blob.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(blob.Data); err != nil {
		log.WithError(err).Warn("Erro ao enviar blob para o cliente")
	}
}

func (h *Handler) DeleteBlob(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	blobID := chi.URLParam(r, "id")
	if err := h.service.DeleteBlob(r.Context(), blobID); err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			http.Error(w, "blob not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao deletar blob")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "blob deleted successfully",
	})
}
