package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/store"
)

// QueryHandler serves the read-only projections over a record:
// transcript search, export and the analysis sub-field getters.
type QueryHandler struct {
	store *store.Store
}

func NewQueryHandler(st *store.Store) *QueryHandler {
	return &QueryHandler{store: st}
}

// Search runs the query as a regular expression over every transcript
// segment in order. A pattern that does not compile is retried as a
// plain literal.
func (h *QueryHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "query parameter is required"})
		return
	}

	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}
	if iv.Transcript == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "transcript not available"})
		return
	}

	caseSensitive, _ := strconv.ParseBool(c.Query("case_sensitive"))
	re := compileSearchPattern(query, caseSensitive)

	results := make([]models.SearchResult, 0)
	for i, seg := range iv.Transcript {
		if re.MatchString(seg.Text) {
			results = append(results, models.SearchResult{
				Text:       seg.Text,
				StartTime:  seg.Start,
				EndTime:    seg.End,
				LineNumber: i,
			})
		}
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Results: results,
		Total:   len(results),
	})
}

func compileSearchPattern(query string, caseSensitive bool) *regexp.Regexp {
	pattern := query
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		quoted := regexp.QuoteMeta(query)
		if !caseSensitive {
			quoted = "(?i)" + quoted
		}
		re = regexp.MustCompile(quoted)
	}
	return re
}

// Export renders the record as JSON or as a deterministic text layout.
func (h *QueryHandler) Export(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "json"))
	switch format {
	case "json":
		c.JSON(http.StatusOK, models.JSONExportResponse{
			Interview:  *iv,
			ExportedAt: time.Now().UTC().Format(time.RFC3339),
		})
	case "txt":
		c.JSON(http.StatusOK, models.TextExportResponse{
			Content:  renderTextExport(iv),
			Filename: fmt.Sprintf("%s_export.txt", iv.ID),
		})
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unsupported format"})
	}
}

func renderTextExport(iv *models.Interview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interview: %s\n", iv.OriginalName)
	fmt.Fprintf(&b, "Upload Date: %s\n", iv.UploadDate.Format(time.RFC3339))
	fmt.Fprintf(&b, "Status: %s\n\n", iv.Status)

	if iv.Analysis != nil && iv.Analysis.Summary != "" {
		fmt.Fprintf(&b, "SUMMARY:\n%s\n\n", iv.Analysis.Summary)
	}

	if len(iv.Transcript) > 0 {
		b.WriteString("TRANSCRIPT:\n")
		for _, seg := range iv.Transcript {
			fmt.Fprintf(&b, "[%.1fs - %.1fs] %s\n", seg.Start, seg.End, seg.Text)
		}
	}

	if len(iv.Tags) > 0 {
		b.WriteString("\nTAGS:\n")
		for _, tag := range iv.Tags {
			fmt.Fprintf(&b, "[%.1fs - %.1fs] %s\n", tag.StartTime, tag.EndTime, tag.Text)
		}
	}

	return b.String()
}

// The analysis getters return the sub-field or its empty default; a
// missing analysis is never an error, only a missing interview is.

func (h *QueryHandler) GetKeywords(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	keywords := []string{}
	if iv.Analysis != nil && iv.Analysis.Keywords != nil {
		keywords = iv.Analysis.Keywords
	}
	c.JSON(http.StatusOK, models.KeywordsResponse{Keywords: keywords})
}

func (h *QueryHandler) GetQuestions(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	questions := []models.Question{}
	if iv.Analysis != nil && iv.Analysis.Questions != nil {
		questions = iv.Analysis.Questions
	}
	c.JSON(http.StatusOK, models.QuestionsResponse{Questions: questions})
}

func (h *QueryHandler) GetTopics(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	topics := []models.Topic{}
	if iv.Analysis != nil && iv.Analysis.Topics != nil {
		topics = iv.Analysis.Topics
	}
	c.JSON(http.StatusOK, models.TopicsResponse{Topics: topics})
}

func (h *QueryHandler) GetSpeakerAnalysis(c *gin.Context) {
	iv, err := h.store.Get(c.Param("interview_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
		return
	}

	speakers := map[string]interface{}{}
	if iv.Analysis != nil && iv.Analysis.SpeakerAnalysis != nil {
		speakers = iv.Analysis.SpeakerAnalysis
	}
	c.JSON(http.StatusOK, models.SpeakerAnalysisResponse{SpeakerAnalysis: speakers})
}
