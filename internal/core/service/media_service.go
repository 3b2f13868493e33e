package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thaalam/admin-system/internal/core/domain"
)

// MediaKind selects the MIME-prefix allowlist an upload is checked against.
type MediaKind string

const (
	KindImage    MediaKind = "image"
	KindDocument MediaKind = "document"
	KindAudio    MediaKind = "audio"
	KindVideo    MediaKind = "video"
)

var mediaPrefixes = map[MediaKind][]string{
	KindImage:    {"image/"},
	KindDocument: {"application/pdf"},
	KindAudio:    {"audio/"},
	KindVideo:    {"video/"},
}

// MediaService validates and stores uploaded files. Size and content type are
// checked before a single byte touches the upload directory, so rejected
// files leave nothing behind.
type MediaService struct {
	dir      string
	maxBytes int64
	log      zerolog.Logger
}

func NewMediaService(dir string, maxBytes int64, log zerolog.Logger) *MediaService {
	return &MediaService{dir: dir, maxBytes: maxBytes, log: log}
}

// Store writes the uploaded file to disk and returns its reference. The
// upload must match one of the given kinds.
func (m *MediaService) Store(file *multipart.FileHeader, kinds ...MediaKind) (*domain.FileRef, error) {
	if file.Size > m.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !kindAllowed(contentType, kinds) {
		return nil, domain.ErrUnsupportedMedia
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return nil, err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(m.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	m.log.Info().Str("file", file.Filename).Str("path", path).Int64("bytes", written).Msg("file stored")

	return &domain.FileRef{
		FileName:    file.Filename,
		ContentType: contentType,
		SizeBytes:   written,
		Path:        path,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func kindAllowed(contentType string, kinds []MediaKind) bool {
	for _, kind := range kinds {
		for _, prefix := range mediaPrefixes[kind] {
			if strings.HasPrefix(contentType, prefix) {
				return true
			}
		}
	}
	return false
}
