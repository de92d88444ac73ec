package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// ImageConstraints accepts jpeg, png and webp avatars up to 5MB.
var ImageConstraints = FileConstraints{
	AllowedMimeTypes: map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	},
	AllowedExtensions: map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
	},
	MaxSize: 5 << 20,
}

// WithMaxSize returns a copy of c with a different size cap.
func (c FileConstraints) WithMaxSize(n int64) FileConstraints {
	if n > 0 {
		c.MaxSize = n
	}
	return c
}

// ValidateFile checks size, then content by magic bytes, then extension.
// It returns the detected mime type.
func ValidateFile(header *multipart.FileHeader, constraints FileConstraints) (string, error) {
	if header == nil {
		return "", fmt.Errorf("no file provided")
	}
	if header.Size > constraints.MaxSize {
		return "", fmt.Errorf("file too large: maximum size is %d MB", constraints.MaxSize/(1<<20))
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	buffer := make([]byte, 512)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	detected := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detected] {
		return "", fmt.Errorf("invalid file type (detected: %s)", detected)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return "", fmt.Errorf("invalid file extension: %s", ext)
	}
	return detected, nil
}
