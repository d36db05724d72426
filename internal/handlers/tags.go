package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/store"
)

type TagsHandler struct {
	store *store.Store
}

func NewTagsHandler(st *store.Store) *TagsHandler {
	return &TagsHandler{store: st}
}

func (h *TagsHandler) AddTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid tag",
			Message: err.Error(),
		})
		return
	}

	color := req.Color
	if color == "" {
		color = models.DefaultTagColor
	}
	tag := models.Tag{
		ID:        uuid.New().String(),
		Text:      req.Text,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.AddTag(c.Param("interview_id"), tag); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag by id. Deleting an absent tag still succeeds.
func (h *TagsHandler) DeleteTag(c *gin.Context) {
	err := h.store.RemoveTag(c.Param("interview_id"), c.Param("tag_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{OK: true})
}
