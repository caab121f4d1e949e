package helper

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"

	"coursehub_backend/internals/configs"
)

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	// Keep letters, digits, dot, dash, underscore
	return reUnsafeFilename.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}

// SaveUploadedFile stores a multipart file under MEDIA_ROOT/<folder>/ and
// returns the public URL (MEDIA_BASE_URL/<relative path>). Uploads for
// avatars, course images and videos all go through here.
func SaveUploadedFile(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	relName := GenerateUniqueFilename(folder, fileHeader.Filename)
	fullPath := filepath.Join(configs.MediaRoot, filepath.FromSlash(relName))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return path.Join(configs.MediaBaseURL, relName), nil
}

// SaveBytes stores an already-processed blob (e.g. webp output) and returns
// its public URL.
func SaveBytes(folder, filename string, data []byte) (string, error) {
	relName := GenerateUniqueFilename(folder, filename)
	fullPath := filepath.Join(configs.MediaRoot, filepath.FromSlash(relName))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return path.Join(configs.MediaBaseURL, relName), nil
}
