package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/store"
)

type StatsHandler struct {
	store *store.Store
}

func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	st := h.store.Stats()

	totalMinutes := roundTwo(st.TotalDurationSeconds / 60)
	averageMinutes := 0.0
	if st.Completed > 0 {
		averageMinutes = roundTwo(st.TotalDurationSeconds / 60 / float64(st.Completed))
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		TotalInterviews:        st.Total,
		CompletedInterviews:    st.Completed,
		ProcessingInterviews:   st.Processing,
		FailedInterviews:       st.Failed,
		TotalDurationMinutes:   totalMinutes,
		AverageDurationMinutes: averageMinutes,
	})
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
