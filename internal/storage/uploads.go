package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/itsquarehub/helpdesk-service/internal/config"
	apperrors "github.com/itsquarehub/helpdesk-service/pkg/util"
)

// UploadStore persists ticket attachments on local disk and hands back the
// public URL they will be served under.
type UploadStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewUploadStore ensures the upload directory exists.
func NewUploadStore(cfg config.UploadConfig, publicBaseURL string) (*UploadStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{
		dir:      cfg.Dir,
		baseURL:  strings.TrimRight(publicBaseURL, "/"),
		maxBytes: cfg.MaxBytes,
	}, nil
}

// Dir returns the directory uploads are written to.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file under an upload-timestamp filename keeping
// the original extension, and returns the public URL for the stored file.
func (s *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return "", apperrors.NewValidationError("attachment too large", map[string]any{
			"max_bytes": s.maxBytes,
		})
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + "/uploads/" + name, nil
}
