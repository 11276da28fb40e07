// internal/upload/upload.go
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/sirecovip/backend/internal/domain"
)

// MaxFileSize is the per-attachment limit.
const MaxFileSize = 5 << 20 // 5 MiB

// allowedTypes lists the accepted attachment content types: images and PDF.
var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// File is an in-memory attachment read from a multipart request.
type File struct {
	Name        string
	Ext         string
	ContentType string
	Data        []byte
}

// FromRequest extracts the named file part from a multipart request.
// Returns (nil, nil) when the request is not multipart or the part is absent.
// Type and size violations are rejected before any business logic runs.
func FromRequest(r *http.Request, field string) (*File, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(MaxFileSize); err != nil {
			if errors.Is(err, http.ErrNotMultipart) {
				return nil, nil
			}
			return nil, fmt.Errorf("parsing multipart form: %w", err)
		}
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading form file %q: %w", field, err)
	}
	defer file.Close()

	if header.Size > MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return nil, domain.ErrUnsupportedFileType
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file contents: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, domain.ErrFileTooLarge
	}

	return &File{
		Name:        header.Filename,
		Ext:         filepath.Ext(header.Filename),
		ContentType: contentType,
		Data:        data,
	}, nil
}
