package util

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ValidateMimeType sniffs the first 512 bytes and checks the detected MIME
// type against the allowed prefixes (e.g. "image/", "video/").
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// UniqueFilename builds a collision-free object name from a timestamp and a
// random suffix, keeping the original extension. Uploads are write-once, so
// uniqueness here is the only coordination needed.
func UniqueFilename(prefix, original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().UnixNano(), uuid.NewString()[:8], ext)
}
