package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/metrics"
)

const multimediaDir = "multimedia"

type MultimediaService struct {
	repo  ResourceRepository[domain.Multimedia]
	files FileStore
}

func NewMultimediaService(repo ResourceRepository[domain.Multimedia], files FileStore) *MultimediaService {
	return &MultimediaService{
		repo:  repo,
		files: files,
	}
}

// Create stores the upload and the row describing it.
func (s *MultimediaService) Create(ctx context.Context, m domain.Multimedia, upload *multipart.FileHeader) (domain.Multimedia, error) {
	if upload == nil {
		return domain.Multimedia{}, ErrNoFiles
	}

	file, err := s.files.SaveMedia(multimediaDir, upload)
	if err != nil {
		return domain.Multimedia{}, fmt.Errorf("s.files.SaveMedia -> %w", err)
	}
	metrics.UploadedFiles.WithLabelValues("multimedia").Inc()

	m.File = file.Path
	m.URL = file.URL
	if m.Name == "" {
		m.Name = upload.Filename
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		s.files.Remove(file.Path)
		return domain.Multimedia{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MultimediaService) List(ctx context.Context) ([]domain.Multimedia, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return list, nil
}

func (s *MultimediaService) Get(ctx context.Context, id uint) (domain.Multimedia, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Multimedia{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return m, nil
}

// Update changes the descriptive fields and keeps the stored file.
func (s *MultimediaService) Update(ctx context.Context, id uint, m domain.Multimedia) (domain.Multimedia, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Multimedia{}, err
	}
	m.File = current.File
	m.URL = current.URL

	updated, _, err := s.repo.Update(ctx, id, m)
	if err != nil {
		return domain.Multimedia{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *MultimediaService) Delete(ctx context.Context, id uint) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}
	s.files.Remove(current.File)

	return nil
}
