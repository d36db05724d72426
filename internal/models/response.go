package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type InterviewListResponse struct {
	Interviews []Interview `json:"interviews"`
	Total      int         `json:"total"`
}

type TranscribeResponse struct {
	OK     bool   `json:"ok"`
	Status Status `json:"status"`
}

type StatusResponse struct {
	Status Status `json:"status"`
}

type SearchResult struct {
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	LineNumber int     `json:"line_number"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

type JSONExportResponse struct {
	Interview  Interview `json:"interview"`
	ExportedAt string    `json:"exported_at"`
}

type TextExportResponse struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type TopicsResponse struct {
	Topics []Topic `json:"topics"`
}

type SpeakerAnalysisResponse struct {
	SpeakerAnalysis map[string]interface{} `json:"speaker_analysis"`
}

type FileURLResponse struct {
	URL      string `json:"url"`
	Type     string `json:"type"`
	ObjectID string `json:"object_id,omitempty"`
	Message  string `json:"message,omitempty"`
}

type DeleteResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type StatsResponse struct {
	TotalInterviews        int     `json:"total_interviews"`
	CompletedInterviews    int     `json:"completed_interviews"`
	ProcessingInterviews   int     `json:"processing_interviews"`
	FailedInterviews       int     `json:"failed_interviews"`
	TotalDurationMinutes   float64 `json:"total_duration_minutes"`
	AverageDurationMinutes float64 `json:"average_duration_minutes"`
}

type HealthResponse struct {
	Status               string `json:"status"`
	Timestamp            string `json:"timestamp"`
	TotalInterviews      int    `json:"total_interviews"`
	RemoteStorageEnabled bool   `json:"remote_storage_enabled"`
	RemoteStorageStatus  string `json:"remote_storage_status"`
}
