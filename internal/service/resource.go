package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/metrics"
	"github.com/sit-project/sit-api/internal/pkg/storage"
	"github.com/sit-project/sit-api/internal/repository"
)

var (
	ErrNotFound         = repository.ErrNotFound
	ErrDuplicate        = repository.ErrDuplicate
	ErrForeignKey       = repository.ErrForeignKey
	ErrOwnerNotFound    = repository.ErrOwnerNotFound
	ErrUnsupportedOwner = repository.ErrUnsupportedOwner

	ErrUnsupportedFile = storage.ErrUnsupportedType
	ErrFileTooLarge    = storage.ErrTooLarge
	ErrNotAnImage      = storage.ErrNotAnImage
	ErrNoFiles         = errors.New("no files were uploaded")
	ErrTooManyFiles    = errors.New("too many files in one request")
)

type ResourceRepository[D any] interface {
	Create(ctx context.Context, d D) (D, error)
	FindAll(ctx context.Context) ([]D, error)
	FindByID(ctx context.Context, id uint) (D, error)
	Update(ctx context.Context, id uint, d D) (D, []string, error)
	Delete(ctx context.Context, id uint) ([]string, error)
}

type FileStore interface {
	SaveImage(dir string, fh *multipart.FileHeader) (storage.File, error)
	SaveDocument(dir string, fh *multipart.FileHeader) (storage.File, error)
	SaveMedia(dir string, fh *multipart.FileHeader) (storage.File, error)
	Remove(paths ...string)
}

// ResourceService holds the CRUD rules every catalogue resource shares.
// Resources that own images also accept uploads on create and update.
type ResourceService[D any] struct {
	repo      ResourceRepository[D]
	files     FileStore
	owner     domain.OwnerType
	setImages func(*D, []domain.Image)
	maxFiles  int
	check     func(ctx context.Context, d D) error
}

func NewResourceService[D any](repo ResourceRepository[D]) *ResourceService[D] {
	return &ResourceService[D]{
		repo: repo,
	}
}

// WithFiles sets the store that Delete and update clean up. Every resource
// that can own images or documents needs it, uploads or not.
func (s *ResourceService[D]) WithFiles(files FileStore) *ResourceService[D] {
	s.files = files
	return s
}

// WithImages lets create and update store uploaded images for owner.
func (s *ResourceService[D]) WithImages(owner domain.OwnerType, files FileStore, maxFiles int, set func(*D, []domain.Image)) *ResourceService[D] {
	s.owner = owner
	s.WithFiles(files)
	s.maxFiles = maxFiles
	s.setImages = set
	return s
}

// WithCheck registers a rule run before every create and update.
func (s *ResourceService[D]) WithCheck(check func(ctx context.Context, d D) error) *ResourceService[D] {
	s.check = check
	return s
}

func (s *ResourceService[D]) AcceptsImages() bool {
	return s.setImages != nil
}

func (s *ResourceService[D]) Create(ctx context.Context, d D) (D, error) {
	return s.CreateWithImages(ctx, d, nil)
}

// CreateWithImages stores the uploads first and inserts the row with its
// image rows in one transaction. Stored files are removed if the insert fails.
func (s *ResourceService[D]) CreateWithImages(ctx context.Context, d D, uploads []*multipart.FileHeader) (D, error) {
	var zero D
	if s.check != nil {
		if err := s.check(ctx, d); err != nil {
			return zero, err
		}
	}

	saved, err := s.saveImages(uploads)
	if err != nil {
		return zero, err
	}
	if len(saved) > 0 {
		s.setImages(&d, saved)
	}

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		s.removeImages(saved)
		return zero, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ResourceService[D]) List(ctx context.Context) ([]D, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return list, nil
}

func (s *ResourceService[D]) Get(ctx context.Context, id uint) (D, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var zero D
		return zero, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return found, nil
}

func (s *ResourceService[D]) Update(ctx context.Context, id uint, d D) (D, error) {
	return s.UpdateWithImages(ctx, id, d, nil)
}

// UpdateWithImages replaces the current images when uploads are given. Old
// files are removed only after the new rows are committed.
func (s *ResourceService[D]) UpdateWithImages(ctx context.Context, id uint, d D, uploads []*multipart.FileHeader) (D, error) {
	var zero D
	if s.check != nil {
		if err := s.check(ctx, d); err != nil {
			return zero, err
		}
	}

	if len(uploads) > 0 {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return zero, fmt.Errorf("s.repo.FindByID -> %w", err)
		}
	}

	saved, err := s.saveImages(uploads)
	if err != nil {
		return zero, err
	}
	if len(saved) > 0 {
		s.setImages(&d, saved)
	}

	updated, removed, err := s.repo.Update(ctx, id, d)
	if err != nil {
		s.removeImages(saved)
		return zero, fmt.Errorf("s.repo.Update -> %w", err)
	}
	if s.files != nil {
		s.files.Remove(removed...)
	}

	return updated, nil
}

// Delete removes the row with its attachments, then the attached files.
func (s *ResourceService[D]) Delete(ctx context.Context, id uint) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}
	if s.files != nil {
		s.files.Remove(removed...)
	}

	return nil
}

func (s *ResourceService[D]) saveImages(uploads []*multipart.FileHeader) ([]domain.Image, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	if s.setImages == nil {
		return nil, ErrUnsupportedOwner
	}

	return saveImages(s.files, s.owner, uploads, s.maxFiles)
}

func (s *ResourceService[D]) removeImages(images []domain.Image) {
	if s.files == nil {
		return
	}
	for _, img := range images {
		s.files.Remove(img.Path)
	}
}

func saveImages(files FileStore, owner domain.OwnerType, uploads []*multipart.FileHeader, maxFiles int) ([]domain.Image, error) {
	if maxFiles > 0 && len(uploads) > maxFiles {
		return nil, ErrTooManyFiles
	}

	images := make([]domain.Image, 0, len(uploads))
	for _, fh := range uploads {
		file, err := files.SaveImage(string(owner), fh)
		if err != nil {
			for _, img := range images {
				files.Remove(img.Path)
			}
			return nil, fmt.Errorf("files.SaveImage(%s) -> %w", fh.Filename, err)
		}
		metrics.UploadedFiles.WithLabelValues("image").Inc()
		images = append(images, domain.Image{
			EntityType: owner,
			Filename:   file.Filename,
			Path:       file.Path,
			URL:        file.URL,
		})
	}

	return images, nil
}
