package utils

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("image")
	require.NoError(t, err)
	return fh
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	fh := fileHeader(t, "dish.jpg", "image/jpeg", 128)

	path, err := SaveImage(fh, dir, 1<<20)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.Equal(t, ".jpg", filepath.Ext(path))

	// The random name lands on disk.
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Len(t, data, 128)
}

func TestSaveImageSizeCap(t *testing.T) {
	fh := fileHeader(t, "huge.png", "image/png", 2048)
	_, err := SaveImage(fh, t.TempDir(), 1024)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveImageRejectsExtension(t *testing.T) {
	fh := fileHeader(t, "anim.gif", "image/gif", 64)
	_, err := SaveImage(fh, t.TempDir(), 1<<20)
	assert.ErrorIs(t, err, ErrBadImageType)
}

func TestSaveImageRejectsMime(t *testing.T) {
	fh := fileHeader(t, "fake.jpg", "text/plain", 64)
	_, err := SaveImage(fh, t.TempDir(), 1<<20)
	assert.ErrorIs(t, err, ErrBadImageType)
}

func TestRemoveImageMissingFile(t *testing.T) {
	// Best effort: nothing to remove is not an error.
	RemoveImage(t.TempDir(), "/uploads/gone.webp")
	RemoveImage(t.TempDir(), "")
}
