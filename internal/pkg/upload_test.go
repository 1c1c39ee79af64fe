package pkg

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uploadHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", name)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	mw.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

var pngSig = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

func TestSaveImageAcceptsPNG(t *testing.T) {
	dir := t.TempDir()
	fh := uploadHeader(t, "photo.png", pngSig)

	name, err := SaveImage(fh, dir)
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"), name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, pngSig, data)
}

func TestSaveImageRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	fh := uploadHeader(t, "notes.txt", []byte("hello"))

	_, err := SaveImage(fh, dir)
	assert.ErrorIs(t, err, ErrBadFileType)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestSaveImageRejectsSpoofedContent(t *testing.T) {
	fh := uploadHeader(t, "fake.gif", []byte("just text, no image"))
	_, err := SaveImage(fh, t.TempDir())
	assert.ErrorIs(t, err, ErrBadFileType)
}

func TestSaveImageNamesAreUnique(t *testing.T) {
	dir := t.TempDir()
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		fh := uploadHeader(t, "photo.png", pngSig)
		name, err := SaveImage(fh, dir)
		assert.NoError(t, err)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}
