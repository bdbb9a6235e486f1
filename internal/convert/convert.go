// Package convert turns raw attachment bytes into extracted plain text via
// docconv, using a temporary file that is removed on every exit path.
package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

var (
	// ErrUnsupportedFormat is returned when no converter exists for the file type.
	ErrUnsupportedFormat = errors.New("unsupported attachment format")
	// ErrNoText is returned when conversion succeeds but yields no text.
	ErrNoText = errors.New("no text could be extracted from the attachment")
)

type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

// Convert writes the attachment bytes to a temporary file and extracts its
// text content. The filename hint supplies the extension used to pick the
// converter.
func (c *Converter) Convert(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("attachment %s: empty content", filename)
	}

	suffix := filepath.Ext(filename)
	tmp, err := os.CreateTemp("", "attachment-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temporary file: %w", err)
	}

	mimeType := docconv.MimeTypeByExtension(tmpPath)
	if mimeType == "application/octet-stream" && !textualExtension(suffix) {
		return "", fmt.Errorf("attachment %s: %w", filename, ErrUnsupportedFormat)
	}

	res, err := docconv.ConvertPath(tmpPath)
	if err != nil {
		return "", fmt.Errorf("converting attachment %s: %w", filename, err)
	}

	text := strings.TrimSpace(res.Body)
	if text == "" {
		return "", fmt.Errorf("attachment %s: %w", filename, ErrNoText)
	}
	return text, nil
}

// textualExtension reports whether the extension is plain text that docconv
// handles under the generic mime type.
func textualExtension(suffix string) bool {
	switch strings.ToLower(suffix) {
	case ".txt", ".text", ".md", ".csv", ".log":
		return true
	}
	return false
}
