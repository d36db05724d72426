package handlers

import (
	"bytes"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/storage"
	"interview-transcription-backend/internal/store"
	"interview-transcription-backend/internal/supabase"
	"interview-transcription-backend/internal/upload"
)

type UploadHandler struct {
	store      *store.Store
	localStore *storage.LocalStore
	blobClient *supabase.StorageClient
}

func NewUploadHandler(st *store.Store, localStore *storage.LocalStore, blobClient *supabase.StorageClient) *UploadHandler {
	return &UploadHandler{
		store:      st,
		localStore: localStore,
		blobClient: blobClient,
	}
}

// Upload accepts a multipart media file, validates its type and size,
// stores it locally (and remotely when the blob store is configured)
// and creates the interview record in the uploaded state. Validation
// happens before anything is persisted.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := h.formFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no file uploaded",
			Message: err.Error(),
		})
		return
	}

	originalName := file.Filename
	if originalName == "" {
		originalName = "unknown_file"
	}
	contentType := file.Header.Get("Content-Type")

	ext, err := upload.InferExtension(originalName, contentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unsupported format",
			Message: err.Error(),
		})
		return
	}

	if err := upload.ValidateSize(file.Size); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file too large",
			Message: err.Error(),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}
	if err := upload.ValidateSize(int64(len(data))); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file too large",
			Message: err.Error(),
		})
		return
	}

	id := uuid.New().String()
	storedName := id + ext

	localPath, err := h.localStore.Save(storedName, bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store file",
			Message: err.Error(),
		})
		return
	}

	// Remote upload is best-effort: a blob store failure never fails
	// the request, the record just stays local-only.
	var remoteURL, remoteObjectID string
	if h.blobClient != nil {
		objectPath, publicURL, err := h.blobClient.Upload(id, ext, contentType, data)
		if err != nil {
			log.Printf("Warning: remote upload failed for %s: %v", id, err)
		} else {
			remoteObjectID = objectPath
			remoteURL = publicURL
		}
	}

	iv := &models.Interview{
		ID:             id,
		StoredFilename: storedName,
		OriginalName:   originalName,
		FileSize:       int64(len(data)),
		LocalPath:      localPath,
		RemoteURL:      remoteURL,
		RemoteObjectID: remoteObjectID,
		UploadDate:     time.Now().UTC(),
		Status:         models.StatusUploaded,
	}
	h.store.Create(iv)

	created, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create interview",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// formFile finds the uploaded file under any of the common multipart
// field names.
func (h *UploadHandler) formFile(c *gin.Context) (*multipart.FileHeader, error) {
	fieldNames := []string{"file", "files", "media", "video", "audio"}
	var lastErr error
	for _, name := range fieldNames {
		file, err := c.FormFile(name)
		if err == nil {
			return file, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
