package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"interview-transcription-backend/internal/handlers"
	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/storage"
	"interview-transcription-backend/internal/store"
	"interview-transcription-backend/internal/transcriber"
)

type testEnv struct {
	store  *store.Store
	local  *storage.LocalStore
	router *gin.Engine
}

// newTestEnv wires the full API the way cmd/server does, with a
// temporary upload directory, no remote blob store and a short
// simulated delay.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	st := store.New()
	sample := transcriber.SampleData{
		Transcript: []models.TranscriptSegment{
			{Start: 0.0, End: 2.5, Text: "Hello, thank you for joining us."},
			{Start: 2.5, End: 5.0, Text: "I mostly work with React and Node.js."},
			{Start: 10.0, End: 12.0, Text: "Yes."},
		},
		Analysis: models.Analysis{
			Summary:  "A short interview.",
			Keywords: []string{"React", "Node.js"},
		},
	}
	sim := transcriber.NewSimulator(st, 10*time.Millisecond, sample)

	uploadHandler := handlers.NewUploadHandler(st, local, nil)
	interviewsHandler := handlers.NewInterviewsHandler(st, local, nil)
	transcribeHandler := handlers.NewTranscribeHandler(st, sim)
	tagsHandler := handlers.NewTagsHandler(st)
	queryHandler := handlers.NewQueryHandler(st)
	statsHandler := handlers.NewStatsHandler(st)
	healthHandler := handlers.NewHealthHandler(st, nil)

	router := gin.New()
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	api.POST("/interviews/upload", uploadHandler.Upload)
	api.GET("/interviews", interviewsHandler.List)
	api.GET("/interviews/:interview_id", interviewsHandler.Get)
	api.DELETE("/interviews/:interview_id", interviewsHandler.Delete)
	api.POST("/interviews/:interview_id/transcribe", transcribeHandler.Transcribe)
	api.GET("/interviews/:interview_id/status", transcribeHandler.GetStatus)
	api.GET("/interviews/:interview_id/file", interviewsHandler.GetFile)
	api.GET("/interviews/:interview_id/remote-url", interviewsHandler.GetRemoteURL)
	api.GET("/interviews/:interview_id/search", queryHandler.Search)
	api.GET("/interviews/:interview_id/export", queryHandler.Export)
	api.GET("/interviews/:interview_id/keywords", queryHandler.GetKeywords)
	api.GET("/interviews/:interview_id/questions", queryHandler.GetQuestions)
	api.GET("/interviews/:interview_id/topics", queryHandler.GetTopics)
	api.GET("/interviews/:interview_id/speaker-analysis", queryHandler.GetSpeakerAnalysis)
	api.POST("/interviews/:interview_id/tags", tagsHandler.AddTag)
	api.DELETE("/interviews/:interview_id/tags/:tag_id", tagsHandler.DeleteTag)
	api.GET("/stats", statsHandler.GetStats)

	return &testEnv{store: st, local: local, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// uploadFile posts a multipart body under the "file" field and returns
// the recorder.
func (e *testEnv) uploadFile(t *testing.T, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/interviews/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) uploadOK(t *testing.T, filename, contentType string) models.Interview {
	t.Helper()
	w := e.uploadFile(t, filename, contentType, []byte("media-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var iv models.Interview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &iv))
	return iv
}

// completeDirectly drives a record to completed without going through
// the async simulator.
func (e *testEnv) completeDirectly(t *testing.T, id string, transcript []models.TranscriptSegment, analysis *models.Analysis) {
	t.Helper()
	_, _, err := e.store.BeginProcessing(id)
	require.NoError(t, err)
	require.NoError(t, e.store.Complete(id, transcript, analysis))
}
