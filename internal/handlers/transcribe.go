package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/store"
	"interview-transcription-backend/internal/transcriber"
)

type TranscribeHandler struct {
	store     *store.Store
	simulator *transcriber.Simulator
}

func NewTranscribeHandler(st *store.Store, simulator *transcriber.Simulator) *TranscribeHandler {
	return &TranscribeHandler{
		store:     st,
		simulator: simulator,
	}
}

// Transcribe begins the simulated transcription run, or no-ops if one
// already ran. The response carries the record's status as of this
// call; the run itself finishes asynchronously.
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	status, _, err := h.simulator.Start(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	c.JSON(http.StatusOK, models.TranscribeResponse{
		OK:     true,
		Status: status,
	})
}

func (h *TranscribeHandler) GetStatus(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: iv.Status})
}
