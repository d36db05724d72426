package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/store"
	"interview-transcription-backend/internal/supabase"
)

type HealthHandler struct {
	store      *store.Store
	blobClient *supabase.StorageClient
}

func NewHealthHandler(st *store.Store, blobClient *supabase.StorageClient) *HealthHandler {
	return &HealthHandler{
		store:      st,
		blobClient: blobClient,
	}
}

// Health reports liveness plus the blob store connectivity probe. A
// failing probe degrades the payload, never the status code.
func (h *HealthHandler) Health(c *gin.Context) {
	remoteStatus := "disabled"
	if h.blobClient != nil {
		if err := h.blobClient.Ping(); err != nil {
			remoteStatus = "error: " + err.Error()
		} else {
			remoteStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:               "healthy",
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
		TotalInterviews:      h.store.Len(),
		RemoteStorageEnabled: h.blobClient != nil,
		RemoteStorageStatus:  remoteStatus,
	})
}
