package storage

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	_ "golang.org/x/image/tiff" // Register TIFF decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.

	"github.com/sit-project/sit-api/internal/config"
)

const DocumentsDir = "documentos"

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrNotAnImage      = errors.New("file is not a valid image")
)

var (
	imageTypes = []string{
		"image/jpeg", "image/png", "image/gif", "image/webp", "image/bmp", "image/tiff",
	}
	documentExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx"}
	mediaPrefixes      = []string{"image/", "video/", "audio/", "application/pdf"}
	// Media types that can carry script.
	mediaBlocked = []string{"image/svg+xml"}
)

// File describes a stored upload. Path is relative to the upload root and is
// what gets persisted; URL is what clients fetch.
type File struct {
	Filename string
	Path     string
	URL      string
	Ext      string
	MIME     string
	Size     int64
}

// Local keeps uploads on the local disk under one root directory which the
// HTTP server exposes as static files.
type Local struct {
	root       string
	publicURL  string
	publicPath string
	maxSize    int64
}

func NewLocal(conf *config.StorageConfig) (*Local, error) {
	if err := os.MkdirAll(conf.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &Local{
		root:       conf.UploadDir,
		publicURL:  strings.TrimRight(conf.PublicURL, "/"),
		publicPath: "/" + strings.Trim(conf.PublicPath, "/"),
		maxSize:    conf.MaxFileSize,
	}, nil
}

func (s *Local) Root() string { return s.root }

// SaveImage stores an uploaded image under dir. The content is sniffed and
// decoded, the client supplied name and type are ignored.
func (s *Local) SaveImage(dir string, fh *multipart.FileHeader) (File, error) {
	return s.save(dir, fh, "", func(f multipart.File, mime *mimetype.MIME) error {
		if !mimetype.EqualsAny(mime.String(), imageTypes...) {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, mime.String())
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if _, _, err := image.DecodeConfig(f); err != nil {
			return ErrNotAnImage
		}
		return nil
	})
}

// SaveDocument stores an office or PDF document under DocumentsDir/dir.
func (s *Local) SaveDocument(dir string, fh *multipart.FileHeader) (File, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !contains(documentExtensions, ext) {
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	return s.save(path.Join(DocumentsDir, dir), fh, ext, nil)
}

// SaveMedia stores an image, video, audio or PDF file under dir.
func (s *Local) SaveMedia(dir string, fh *multipart.FileHeader) (File, error) {
	return s.save(dir, fh, "", func(_ multipart.File, mime *mimetype.MIME) error {
		if mimetype.EqualsAny(mime.String(), mediaBlocked...) {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, mime.String())
		}
		for _, prefix := range mediaPrefixes {
			if strings.HasPrefix(mime.String(), prefix) {
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedType, mime.String())
	})
}

// save writes fh under dir with a random name. The extension is ext when
// given, otherwise the sniffed type's. The static handler derives
// Content-Type from it, so the client's filename never decides it.
func (s *Local) save(dir string, fh *multipart.FileHeader, ext string, check func(multipart.File, *mimetype.MIME) error) (File, error) {
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return File{}, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("fh.Open -> %w", err)
	}
	defer src.Close()

	mime, err := mimetype.DetectReader(src)
	if err != nil {
		return File{}, fmt.Errorf("mimetype.DetectReader -> %w", err)
	}
	if check != nil {
		if err := check(src, mime); err != nil {
			return File{}, err
		}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return File{}, fmt.Errorf("src.Seek -> %w", err)
	}

	if ext == "" {
		ext = mime.Extension()
	}
	filename := uuid.NewString() + ext
	rel := path.Join(dir, filename)

	if err := os.MkdirAll(filepath.Join(s.root, filepath.FromSlash(dir)), 0o755); err != nil {
		return File{}, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	dst, err := os.Create(s.abs(rel))
	if err != nil {
		return File{}, fmt.Errorf("os.Create -> %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(s.abs(rel))
		return File{}, fmt.Errorf("io.Copy -> %w", err)
	}

	return File{
		Filename: filename,
		Path:     rel,
		URL:      s.URL(rel),
		Ext:      strings.TrimPrefix(ext, "."),
		MIME:     mime.String(),
		Size:     size,
	}, nil
}

func (s *Local) URL(rel string) string {
	return s.publicURL + path.Join(s.publicPath, rel)
}

// Remove deletes stored files. Failures are logged, callers have already
// committed the database change that orphaned the files.
func (s *Local) Remove(paths ...string) {
	for _, rel := range paths {
		if rel == "" {
			continue
		}
		if err := os.Remove(s.abs(rel)); err != nil && !errors.Is(err, os.ErrNotExist) {
			zap.L().Warn("failed to remove stored file", zap.String("path", rel), zap.Error(err))
		}
	}
}

func (s *Local) abs(rel string) string {
	clean := path.Clean("/" + rel)
	return filepath.Join(s.root, filepath.FromSlash(clean))
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
