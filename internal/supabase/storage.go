package supabase

import (
	"bytes"
	"fmt"

	storage "github.com/supabase-community/storage-go"
)

// StorageClient wraps Supabase Storage as the optional remote blob
// store for interview media. A nil *StorageClient means local-only
// mode; callers must treat every operation as best-effort.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Upload stores interview media under interviews/interview_<id><ext>
// and returns the object path and its public URL.
func (s *StorageClient) Upload(interviewID, ext, contentType string, data []byte) (string, string, error) {
	objectPath := fmt.Sprintf("interviews/interview_%s%s", interviewID, ext)

	upsert := true
	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, objectPath)

	return objectPath, publicURL, nil
}

func (s *StorageClient) Delete(objectPath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{objectPath})
	return err
}

// Ping probes blob store connectivity for the health check.
func (s *StorageClient) Ping() error {
	if _, err := s.client.ListBuckets(); err != nil {
		return fmt.Errorf("failed to reach storage: %w", err)
	}
	return nil
}
