package transcriber

import (
	"encoding/json"
	"log"
	"os"

	"interview-transcription-backend/internal/models"
)

// SampleData is the canned transcript and analysis attached to every
// completed interview in place of real transcription output.
type SampleData struct {
	Transcript []models.TranscriptSegment
	Analysis   models.Analysis
}

type transcriptFile struct {
	Transcript []models.TranscriptSegment `json:"transcript"`
}

// LoadSampleData reads optional JSON sample files, falling back to the
// built-in defaults when a file is missing or malformed.
func LoadSampleData(transcriptPath, analysisPath string) SampleData {
	sample := SampleData{
		Transcript: defaultTranscript(),
		Analysis:   defaultAnalysis(),
	}

	if data, err := os.ReadFile(transcriptPath); err != nil {
		log.Printf("Warning: %s not found, using default sample transcript", transcriptPath)
	} else {
		var tf transcriptFile
		if err := json.Unmarshal(data, &tf); err != nil || len(tf.Transcript) == 0 {
			log.Printf("Warning: failed to parse %s, using default sample transcript", transcriptPath)
		} else {
			sample.Transcript = tf.Transcript
		}
	}

	if data, err := os.ReadFile(analysisPath); err != nil {
		log.Printf("Warning: %s not found, using default sample analysis", analysisPath)
	} else {
		var a models.Analysis
		if err := json.Unmarshal(data, &a); err != nil {
			log.Printf("Warning: failed to parse %s, using default sample analysis", analysisPath)
		} else {
			sample.Analysis = a
		}
	}

	return sample
}

func defaultTranscript() []models.TranscriptSegment {
	return []models.TranscriptSegment{
		{Start: 0.0, End: 2.5, Text: "Hello, thank you for joining us today for this interview."},
		{Start: 2.5, End: 5.0, Text: "Could you please tell us a bit about your background and experience?"},
		{Start: 5.0, End: 8.0, Text: "I have over 5 years of experience in software development, primarily working with React and Node.js."},
		{Start: 8.0, End: 12.0, Text: "That's great! Can you walk us through a challenging project you've worked on recently?"},
		{Start: 12.0, End: 18.0, Text: "Recently, I led a team of 4 developers to build a real-time collaboration platform using WebSockets and React."},
	}
}

func defaultAnalysis() models.Analysis {
	return models.Analysis{
		Summary:        "A comprehensive interview covering the candidate's background, technical experience, and project management skills.",
		Sentiment:      "positive",
		SentimentScore: 0.78,
		Keywords:       []string{"React", "Node.js", "WebSockets", "team leadership", "collaboration"},
		Questions: []models.Question{
			{
				Question: "Could you please tell us a bit about your background and experience?",
				Answer:   "I have over 5 years of experience in software development, primarily working with React and Node.js.",
				Category: "background",
			},
			{
				Question: "Can you walk us through a challenging project you've worked on recently?",
				Answer:   "Recently, I led a team of 4 developers to build a real-time collaboration platform using WebSockets and React.",
				Category: "technical",
			},
		},
		Topics: []models.Topic{
			{Name: "Software Development", Confidence: 0.95, Mentions: 3},
			{Name: "Team Leadership", Confidence: 0.88, Mentions: 2},
			{Name: "React", Confidence: 0.92, Mentions: 2},
		},
		SpeakerAnalysis: map[string]interface{}{
			"total_speakers": 2,
			"speaker_1":      map[string]interface{}{"duration": 8.5, "words": 45},
			"speaker_2":      map[string]interface{}{"duration": 9.5, "words": 52},
		},
	}
}
