package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/storage"
	"interview-transcription-backend/internal/store"
	"interview-transcription-backend/internal/supabase"
)

type InterviewsHandler struct {
	store      *store.Store
	localStore *storage.LocalStore
	blobClient *supabase.StorageClient
}

func NewInterviewsHandler(st *store.Store, localStore *storage.LocalStore, blobClient *supabase.StorageClient) *InterviewsHandler {
	return &InterviewsHandler{
		store:      st,
		localStore: localStore,
		blobClient: blobClient,
	}
}

func (h *InterviewsHandler) List(c *gin.Context) {
	opts := store.ListOptions{
		Status: models.Status(c.Query("status")),
		Search: c.Query("search"),
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		opts.Limit = limit
	}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid offset"})
			return
		}
		opts.Offset = offset
	}

	interviews := h.store.List(opts)
	c.JSON(http.StatusOK, models.InterviewListResponse{
		Interviews: interviews,
		Total:      len(interviews),
	})
}

func (h *InterviewsHandler) Get(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}
	c.JSON(http.StatusOK, iv)
}

// Delete removes the record and best-effort cleans its backing storage.
// Neither a blob store failure nor a missing local file aborts the
// logical delete.
func (h *InterviewsHandler) Delete(c *gin.Context) {
	id := c.Param("interview_id")
	iv, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	if h.blobClient != nil && iv.RemoteObjectID != "" {
		if err := h.blobClient.Delete(iv.RemoteObjectID); err != nil {
			log.Printf("Warning: remote deletion failed for %s: %v", id, err)
		}
	}

	if err := h.localStore.Remove(iv.LocalPath); err != nil {
		log.Printf("Warning: local file deletion failed for %s: %v", id, err)
	}

	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{
		OK:      true,
		Message: "Interview deleted successfully",
	})
}

// GetFile returns the remote URL when one exists, otherwise streams the
// local file.
func (h *InterviewsHandler) GetFile(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	if iv.RemoteURL != "" {
		c.JSON(http.StatusOK, models.FileURLResponse{
			URL:  iv.RemoteURL,
			Type: "remote",
		})
		return
	}

	if !h.localStore.Exists(iv.LocalPath) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "file not found"})
		return
	}
	c.FileAttachment(iv.LocalPath, iv.OriginalName)
}

// GetRemoteURL reports where the media lives without streaming it.
func (h *InterviewsHandler) GetRemoteURL(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	if iv.RemoteURL != "" {
		c.JSON(http.StatusOK, models.FileURLResponse{
			URL:      iv.RemoteURL,
			ObjectID: iv.RemoteObjectID,
			Type:     "remote",
		})
		return
	}

	c.JSON(http.StatusOK, models.FileURLResponse{
		Type:    "local",
		Message: "File not uploaded to remote storage",
	})
}
