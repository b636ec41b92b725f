package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveTempAudio writes fetched audio bytes to a temp file and returns its
// path together with a cleanup func. Callers defer the cleanup so the file
// is removed on every path, including failures.
func SaveTempAudio(data []byte, mediaID string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "zpbot-audio-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	localPath := filepath.Join(dir, mediaID+".ogg")
	if err := os.WriteFile(localPath, data, 0644); err != nil {
		cleanup()
		return "", nil, err
	}
	return localPath, cleanup, nil
}

// SaveImage persists image bytes under the media dir with a unique name and
// returns the stored file name.
func SaveImage(mediaDir string, data []byte) (string, error) {
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s.png", uuid.NewString())
	if err := os.WriteFile(filepath.Join(mediaDir, fileName), data, 0644); err != nil {
		return "", err
	}
	return fileName, nil
}
