package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/config"
)

func newTestStorage(t *testing.T) *Local {
	t.Helper()

	s, err := NewLocal(&config.StorageConfig{
		UploadDir:   t.TempDir(),
		PublicPath:  "/images",
		PublicURL:   "http://localhost:3000/",
		MaxFileSize: 1 << 20,
	})
	require.NoError(t, err)

	return s
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

// fileHeader builds a real multipart.FileHeader the way gin receives one.
func fileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(10<<20))

	return req.MultipartForm.File[field][0]
}

func stored(s *Local, rel string) bool {
	_, err := os.Stat(s.abs(rel))
	return err == nil
}

func TestSaveImage(t *testing.T) {
	s := newTestStorage(t)

	file, err := s.SaveImage("attraction", fileHeader(t, "images", "photo.png", pngBytes(t)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Path, "attraction/"))
	assert.True(t, strings.HasSuffix(file.Filename, ".png"))
	assert.Equal(t, "http://localhost:3000/images/attraction/"+file.Filename, file.URL)
	assert.Equal(t, "image/png", file.MIME)
	assert.True(t, stored(s, file.Path))
}

func TestSaveImage_NamesFileBySniffedType(t *testing.T) {
	s := newTestStorage(t)

	file, err := s.SaveImage("attraction", fileHeader(t, "images", "pagina.html", pngBytes(t)))
	require.NoError(t, err)

	assert.Equal(t, ".png", filepath.Ext(file.Path))
	assert.Equal(t, "png", file.Ext)
	assert.True(t, stored(s, file.Path))
}

func TestSaveImage_RejectsNonImages(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.SaveImage("attraction", fileHeader(t, "images", "fake.png", []byte("just some text")))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveImage_TooLarge(t *testing.T) {
	s := newTestStorage(t)
	s.maxSize = 10

	_, err := s.SaveImage("attraction", fileHeader(t, "images", "photo.png", pngBytes(t)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSaveDocument(t *testing.T) {
	s := newTestStorage(t)

	file, err := s.SaveDocument("tour_event", fileHeader(t, "documents", "Agenda.PDF", []byte("%PDF-1.4\n%%EOF")))
	require.NoError(t, err)

	assert.Equal(t, "pdf", file.Ext)
	assert.True(t, strings.HasPrefix(file.Path, DocumentsDir+"/tour_event/"))
	assert.True(t, stored(s, file.Path))

	_, err = s.SaveDocument("tour_event", fileHeader(t, "documents", "script.sh", []byte("echo")))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaveMedia(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.SaveMedia("multimedia", fileHeader(t, "file", "photo.png", pngBytes(t)))
	require.NoError(t, err)

	_, err = s.SaveMedia("multimedia", fileHeader(t, "file", "notes.txt", []byte("plain text")))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	_, err = s.SaveMedia("multimedia", fileHeader(t, "file", "logo.png", svg))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)
	for _, e := range entries {
		files, err := os.ReadDir(filepath.Join(s.Root(), e.Name()))
		require.NoError(t, err)
		assert.Len(t, files, 1)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStorage(t)

	file, err := s.SaveImage("transport", fileHeader(t, "images", "photo.png", pngBytes(t)))
	require.NoError(t, err)

	s.Remove(file.Path, "transport/missing.png", "")
	assert.False(t, stored(s, file.Path))
}

func TestAbsStaysInsideRoot(t *testing.T) {
	s := newTestStorage(t)

	assert.Equal(t, filepath.Join(s.Root(), "etc", "passwd"), s.abs("../../etc/passwd"))
}
