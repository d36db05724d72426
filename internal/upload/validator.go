package upload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize is the hard upload cap (100 MiB).
const MaxFileSize = 100 << 20

// contentTypeExtensions maps declared content types to a best-guess
// extension when the filename carries none.
var contentTypeExtensions = map[string]string{
	"audio/mpeg":      ".mp3",
	"audio/wav":       ".wav",
	"audio/mp3":       ".mp3",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/x-msvideo": ".avi",
}

var allowedExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".mp4": true,
	".mov": true,
}

// InferExtension decides the stored file extension for an upload from
// the claimed filename and declared content type. Real-world upload
// clients frequently omit or mis-set both, so the cascade prefers a
// best-effort guess over hard rejection; the final allow-list gate is
// non-negotiable.
func InferExtension(filename, contentType string) (string, error) {
	ext := filepath.Ext(strings.ToLower(filename))

	if ext == "" {
		if contentType != "" {
			mapped, ok := contentTypeExtensions[strings.ToLower(contentType)]
			if !ok {
				mapped = ".mp4"
			}
			ext = mapped
		} else {
			ext = ".mp4"
		}
	}

	if !allowedExtensions[ext] {
		ct := strings.ToLower(contentType)
		switch {
		case strings.Contains(ct, "video"):
			ext = ".mp4"
		case strings.Contains(ct, "audio"):
			ext = ".mp3"
		default:
			return "", fmt.Errorf("unsupported format '%s'. Allowed formats: MP3, WAV, MP4, MOV. Content-Type: %s. Filename: %s",
				ext, contentType, filename)
		}
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext, nil
}

// ValidateSize rejects payloads over MaxFileSize before anything is
// persisted.
func ValidateSize(size int64) error {
	if size > MaxFileSize {
		return fmt.Errorf("file too large (>100MB)")
	}
	return nil
}
