package transcriber

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"interview-transcription-backend/internal/models"
	"interview-transcription-backend/internal/store"
)

var (
	transcriptionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "transcriber_simulated_run_duration_seconds",
		Help:    "Duration of simulated transcription runs in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	transcriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcriber_simulated_runs_total",
		Help: "Total number of simulated transcription runs",
	}, []string{"status"})
)

// Simulator flips an interview through uploaded -> processing ->
// completed, attaching canned sample data after a fixed delay. There is
// no real transcription behind it.
type Simulator struct {
	store  *store.Store
	delay  time.Duration
	sample SampleData
}

func NewSimulator(st *store.Store, delay time.Duration, sample SampleData) *Simulator {
	return &Simulator{
		store:  st,
		delay:  delay,
		sample: sample,
	}
}

// Start triggers a simulated run for the interview. The run happens on
// its own goroutine; Start returns immediately with the record's
// status. Triggering a record that is already processing, completed or
// failed is a no-op reporting the current status.
func (s *Simulator) Start(id string) (models.Status, bool, error) {
	status, started, err := s.store.BeginProcessing(id)
	if err != nil {
		return "", false, err
	}
	if started {
		go s.run(id)
	}
	return status, started, nil
}

// run sleeps for the configured delay and attaches the sample data.
// Failures never propagate to the caller: the record ends up failed and
// the error is logged.
func (s *Simulator) run(id string) {
	start := time.Now()
	runStatus := "success"

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Transcription run for %s panicked: %v", id, r)
			if err := s.store.Fail(id); err != nil {
				log.Printf("Error marking %s failed: %v", id, err)
			}
			runStatus = "error"
		}
		duration := time.Since(start).Seconds()
		transcriptionDuration.WithLabelValues(runStatus).Observe(duration)
		transcriptionsTotal.WithLabelValues(runStatus).Inc()
	}()

	time.Sleep(s.delay)

	transcript := make([]models.TranscriptSegment, len(s.sample.Transcript))
	copy(transcript, s.sample.Transcript)
	analysis := s.sample.Analysis.Clone()

	if err := s.store.Complete(id, transcript, analysis); err != nil {
		log.Printf("Error completing transcription for %s: %v", id, err)
		if err := s.store.Fail(id); err != nil {
			log.Printf("Error marking %s failed: %v", id, err)
		}
		runStatus = "error"
	}
}
