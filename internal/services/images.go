package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
)

// MaxImageUploadBytes caps admin image uploads at 5MB.
const MaxImageUploadBytes = 5 << 20

// ValidateImageUpload rejects non-image files and files over the size cap
// before any bytes are read.
func ValidateImageUpload(header *multipart.FileHeader) error {
	if header.Size > MaxImageUploadBytes {
		return fmt.Errorf("%s is larger than 5MB", header.Filename)
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%s is not an image", header.Filename)
	}
	return nil
}

// EncodeImageFile reads an uploaded image into a displayable, storable data
// URL.
func EncodeImageFile(header *multipart.FileHeader) (string, error) {
	if err := ValidateImageUpload(header); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", header.Filename, err)
	}
	if len(data) > MaxImageUploadBytes {
		return "", fmt.Errorf("%s is larger than 5MB", header.Filename)
	}

	contentType := header.Header.Get("Content-Type")
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ResolveImageOrder turns the edit form's ordered image references into final
// sources. Each reference is either "existing:<source>" for an already
// persisted image or "new:<i>" for the i-th uploaded file. Any unresolvable
// reference aborts the whole save before a network call is made.
func ResolveImageOrder(refs []string, uploads []*multipart.FileHeader) ([]string, error) {
	sources := make([]string, 0, len(refs))
	for _, ref := range refs {
		switch {
		case strings.HasPrefix(ref, "existing:"):
			source := strings.TrimPrefix(ref, "existing:")
			if strings.TrimSpace(source) == "" {
				return nil, fmt.Errorf("empty image source in order list")
			}
			sources = append(sources, source)
		case strings.HasPrefix(ref, "new:"):
			index, err := strconv.Atoi(strings.TrimPrefix(ref, "new:"))
			if err != nil || index < 0 || index >= len(uploads) {
				return nil, fmt.Errorf("invalid upload reference %q", ref)
			}
			source, err := EncodeImageFile(uploads[index])
			if err != nil {
				return nil, err
			}
			sources = append(sources, source)
		default:
			return nil, fmt.Errorf("invalid image reference %q", ref)
		}
	}
	return sources, nil
}
