package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"interview-transcription-backend/internal/models"
)

var (
	ErrNotFound = errors.New("interview not found")
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// ListOptions narrows and pages a listing. Limit is clamped to
// 1..MaxListLimit, a zero value means DefaultListLimit.
type ListOptions struct {
	Status models.Status
	Search string
	Limit  int
	Offset int
}

type Stats struct {
	Total                int
	Completed            int
	Processing           int
	Failed               int
	TotalDurationSeconds float64
}

// Store is the single in-memory mapping from interview id to record.
// It owns all mutations and enforces the status state machine; every
// read hands out a deep copy so callers never observe a half-applied
// multi-field update.
type Store struct {
	mu         sync.RWMutex
	interviews map[string]*models.Interview
}

func New() *Store {
	return &Store{
		interviews: make(map[string]*models.Interview),
	}
}

func (s *Store) Create(iv *models.Interview) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	if iv.UploadDate.IsZero() {
		iv.UploadDate = now
	}
	if iv.Tags == nil {
		iv.Tags = []models.Tag{}
	}
	s.interviews[iv.ID] = iv.Clone()
}

func (s *Store) Get(id string) (*models.Interview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	iv, ok := s.interviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return iv.Clone(), nil
}

func (s *Store) List(opts ListOptions) []models.Interview {
	// Matched records are cloned while the lock is held; writers mutate
	// records in place, so a bare pointer must never escape the lock.
	s.mu.RLock()
	matched := make([]*models.Interview, 0, len(s.interviews))
	search := strings.ToLower(opts.Search)
	for _, iv := range s.interviews {
		if opts.Status != "" && iv.Status != opts.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(iv.OriginalName), search) &&
			!strings.Contains(strings.ToLower(iv.StoredFilename), search) {
			continue
		}
		matched = append(matched, iv.Clone())
	}
	s.mu.RUnlock()

	// Newest first
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].UploadDate.After(matched[j].UploadDate)
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]models.Interview, 0, end-offset)
	for _, iv := range matched[offset:end] {
		page = append(page, *iv)
	}
	return page
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.interviews[id]; !ok {
		return ErrNotFound
	}
	delete(s.interviews, id)
	return nil
}

// BeginProcessing moves an uploaded record to processing. Any other
// current status is reported back unchanged with started=false, which
// makes the transcribe trigger idempotent.
func (s *Store) BeginProcessing(id string) (models.Status, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return "", false, ErrNotFound
	}
	if iv.Status != models.StatusUploaded {
		return iv.Status, false, nil
	}
	iv.Status = models.StatusProcessing
	iv.UpdatedAt = time.Now().UTC()
	return iv.Status, true, nil
}

// Complete attaches transcript and analysis and marks the record
// completed in one step, so readers see either the old record or the
// fully transcribed one.
func (s *Store) Complete(id string, transcript []models.TranscriptSegment, analysis *models.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return ErrNotFound
	}
	iv.Transcript = transcript
	iv.Analysis = analysis
	iv.Status = models.StatusCompleted
	iv.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) Fail(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return ErrNotFound
	}
	iv.Status = models.StatusFailed
	iv.Transcript = nil
	iv.Analysis = nil
	iv.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) AddTag(id string, tag models.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return ErrNotFound
	}
	iv.Tags = append(iv.Tags, tag)
	iv.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveTag deletes a tag by id. Removing an absent tag id succeeds and
// leaves the tag set unchanged.
func (s *Store) RemoveTag(id, tagID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return ErrNotFound
	}
	kept := iv.Tags[:0]
	for _, t := range iv.Tags {
		if t.ID != tagID {
			kept = append(kept, t)
		}
	}
	iv.Tags = kept
	iv.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.interviews)
}

// Stats aggregates per-status counts and total transcript duration.
// Duration is taken from the last segment's end time of each transcript.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.interviews)}
	for _, iv := range s.interviews {
		switch iv.Status {
		case models.StatusCompleted:
			st.Completed++
		case models.StatusProcessing:
			st.Processing++
		case models.StatusFailed:
			st.Failed++
		}
		if len(iv.Transcript) > 0 {
			st.TotalDurationSeconds += iv.Transcript[len(iv.Transcript)-1].End
		}
	}
	return st
}
