package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-transcription-backend/internal/models"
)

func completedInterview(t *testing.T, env *testEnv) models.Interview {
	t.Helper()
	iv := env.uploadOK(t, "interview.mp4", "video/mp4")
	env.completeDirectly(t, iv.ID,
		[]models.TranscriptSegment{
			{Start: 0.0, End: 2.5, Text: "Hello, thank you for joining us."},
			{Start: 2.5, End: 5.0, Text: "I mostly work with React and Node.js."},
			{Start: 5.0, End: 8.0, Text: "We also used react hooks heavily."},
			{Start: 10.0, End: 12.0, Text: "Yes."},
		},
		&models.Analysis{
			Summary:  "A short interview.",
			Keywords: []string{"React", "Node.js"},
			Questions: []models.Question{
				{Question: "Background?", Answer: "React work.", Category: "background"},
			},
			Topics:          []models.Topic{{Name: "React", Confidence: 0.9, Mentions: 2}},
			SpeakerAnalysis: map[string]interface{}{"total_speakers": 2},
		})
	return iv
}

func TestSearchCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	iv := completedInterview(t, env)

	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/search?query=react", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Results[0].LineNumber)
	assert.Equal(t, 2.5, resp.Results[0].StartTime)
	assert.Equal(t, 2, resp.Results[1].LineNumber)
}

func TestSearchCaseSensitive(t *testing.T) {
	env := newTestEnv(t)
	iv := completedInterview(t, env)

	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/search?query=react&case_sensitive=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, 2, resp.Results[0].LineNumber)
}

func TestSearchInvalidRegexFallsBackToLiteral(t *testing.T) {
	env := newTestEnv(t)
	iv := env.uploadOK(t, "interview.mp4", "video/mp4")
	env.completeDirectly(t, iv.ID,
		[]models.TranscriptSegment{{Start: 0, End: 1, Text: "cost is $5 (roughly"}},
		&models.Analysis{})

	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/search?query="+url.QueryEscape("(roughly"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestSearchRequiresQueryAndTranscript(t *testing.T) {
	env := newTestEnv(t)
	iv := env.uploadOK(t, "interview.mp4", "video/mp4")

	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No transcript yet
	w = env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/search?query=react", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/interviews/nope/search?query=react", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportJSON(t *testing.T) {
	env := newTestEnv(t)
	iv := completedInterview(t, env)

	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/export?format=json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.JSONExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, iv.ID, resp.Interview.ID)
	assert.NotEmpty(t, resp.ExportedAt)
}

func TestExportText(t *testing.T) {
	env := newTestEnv(t)
	iv := completedInterview(t, env)

	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/export?format=txt", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TextExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, iv.ID+"_export.txt", resp.Filename)
	assert.Contains(t, resp.Content, "Interview: interview.mp4")
	assert.Contains(t, resp.Content, "Status: completed")
	assert.Contains(t, resp.Content, "SUMMARY:\nA short interview.")
	assert.Contains(t, resp.Content, "[10.0s - 12.0s] Yes.")
}

func TestExportUnknownFormat(t *testing.T) {
	env := newTestEnv(t)
	iv := completedInterview(t, env)

	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/export?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalysisGetters(t *testing.T) {
	env := newTestEnv(t)
	iv := completedInterview(t, env)

	var kw models.KeywordsResponse
	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/keywords", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kw))
	assert.Equal(t, []string{"React", "Node.js"}, kw.Keywords)

	var qs models.QuestionsResponse
	w = env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &qs))
	require.Len(t, qs.Questions, 1)
	assert.Equal(t, "background", qs.Questions[0].Category)

	var tp models.TopicsResponse
	w = env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/topics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tp))
	require.Len(t, tp.Topics, 1)
	assert.Equal(t, "React", tp.Topics[0].Name)

	var sp models.SpeakerAnalysisResponse
	w = env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/speaker-analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sp))
	assert.EqualValues(t, 2, sp.SpeakerAnalysis["total_speakers"])
}

func TestAnalysisGettersEmptyBeforeCompletion(t *testing.T) {
	env := newTestEnv(t)
	iv := env.uploadOK(t, "interview.mp4", "video/mp4")

	var kw models.KeywordsResponse
	w := env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/keywords", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kw))
	assert.Empty(t, kw.Keywords)

	var sp models.SpeakerAnalysisResponse
	w = env.do(t, http.MethodGet, "/api/interviews/"+iv.ID+"/speaker-analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sp))
	assert.Empty(t, sp.SpeakerAnalysis)

	w = env.do(t, http.MethodGet, "/api/interviews/nope/keywords", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
