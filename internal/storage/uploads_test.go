package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsquarehub/helpdesk-service/internal/config"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestUploadStore(t *testing.T) {
	t.Run("saves with timestamp filename keeping extension", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewUploadStore(config.UploadConfig{Dir: dir, MaxBytes: 1 << 20}, "http://localhost:5000/")
		require.NoError(t, err)

		url, err := store.Save(uploadHeader(t, "screenshot.png", []byte("img-bytes")))
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^http://localhost:5000/uploads/\d+\.png$`), url)

		name := url[strings.LastIndex(url, "/")+1:]
		stored, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, []byte("img-bytes"), stored)
	})

	t.Run("rejects oversize attachments", func(t *testing.T) {
		store, err := NewUploadStore(config.UploadConfig{Dir: t.TempDir(), MaxBytes: 4}, "http://localhost:5000")
		require.NoError(t, err)

		_, err = store.Save(uploadHeader(t, "big.jpg", []byte("way too large")))
		assert.Error(t, err)
	})

	t.Run("creates missing upload directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		_, err := NewUploadStore(config.UploadConfig{Dir: dir}, "http://localhost:5000")
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
