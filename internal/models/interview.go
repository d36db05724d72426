package models

import "time"

type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// TranscriptSegment is one timed line of a transcript.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type Topic struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Mentions   int     `json:"mentions"`
}

// Analysis holds the structured results attached once transcription
// completes. All fields come from canned sample data.
type Analysis struct {
	Summary         string                 `json:"summary,omitempty"`
	Sentiment       string                 `json:"sentiment,omitempty"`
	SentimentScore  float64                `json:"sentiment_score,omitempty"`
	Keywords        []string               `json:"keywords,omitempty"`
	Questions       []Question             `json:"questions,omitempty"`
	Topics          []Topic                `json:"topics,omitempty"`
	SpeakerAnalysis map[string]interface{} `json:"speaker_analysis,omitempty"`
}

const DefaultTagColor = "#3B82F6"

type Tag struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	StartTime float64   `json:"start_time"`
	EndTime   float64   `json:"end_time"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Interview represents one uploaded media file and its simulated
// processing pipeline. Transcript and Analysis are both nil until the
// record reaches the completed status, then both non-nil.
type Interview struct {
	ID             string              `json:"id"`
	StoredFilename string              `json:"filename"`
	OriginalName   string              `json:"original_name"`
	FileSize       int64               `json:"file_size"`
	LocalPath      string              `json:"file_path"`
	RemoteURL      string              `json:"remote_url,omitempty"`
	RemoteObjectID string              `json:"remote_object_id,omitempty"`
	UploadDate     time.Time           `json:"upload_date"`
	Status         Status              `json:"status"`
	Transcript     []TranscriptSegment `json:"transcript"`
	Analysis       *Analysis           `json:"analysis"`
	Tags           []Tag               `json:"tags"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// Clone returns a deep copy so callers never alias store-owned slices.
func (i *Interview) Clone() *Interview {
	out := *i
	if i.Transcript != nil {
		out.Transcript = make([]TranscriptSegment, len(i.Transcript))
		copy(out.Transcript, i.Transcript)
	}
	if i.Tags != nil {
		out.Tags = make([]Tag, len(i.Tags))
		copy(out.Tags, i.Tags)
	}
	if i.Analysis != nil {
		out.Analysis = i.Analysis.Clone()
	}
	return &out
}

func (a *Analysis) Clone() *Analysis {
	out := *a
	if a.Keywords != nil {
		out.Keywords = make([]string, len(a.Keywords))
		copy(out.Keywords, a.Keywords)
	}
	if a.Questions != nil {
		out.Questions = make([]Question, len(a.Questions))
		copy(out.Questions, a.Questions)
	}
	if a.Topics != nil {
		out.Topics = make([]Topic, len(a.Topics))
		copy(out.Topics, a.Topics)
	}
	if a.SpeakerAnalysis != nil {
		out.SpeakerAnalysis = make(map[string]interface{}, len(a.SpeakerAnalysis))
		for k, v := range a.SpeakerAnalysis {
			out.SpeakerAnalysis[k] = v
		}
	}
	return &out
}
