package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes uploaded media to a directory on the local
// filesystem. It is always active and acts as the fallback when no
// remote blob store is configured.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(filename string, data io.Reader) (string, error) {
	path := filepath.Join(s.dir, filename)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, data); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

func (s *LocalStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Remove deletes a stored file, tolerating files that are already gone.
func (s *LocalStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
