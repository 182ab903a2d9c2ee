package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/metrics"
)

type AttachmentRepository interface {
	OwnerExists(ctx context.Context, owner domain.OwnerType, id uint) (bool, error)
	AddImages(ctx context.Context, owner domain.OwnerType, id uint, images []domain.Image) ([]domain.Image, error)
	FindImages(ctx context.Context, owner domain.OwnerType, id uint) ([]domain.Image, error)
	RemoveImages(ctx context.Context, owner domain.OwnerType, id uint, imageIDs []uint) ([]domain.Image, error)
	AddDocuments(ctx context.Context, owner domain.OwnerType, id uint, docs []domain.Document) ([]domain.Document, error)
	AddContacts(ctx context.Context, owner domain.OwnerType, id uint, contacts []domain.Contact) ([]domain.Contact, error)
}

// AttachmentService manages images, documents and contacts linked to an
// owner by entity type and id.
type AttachmentService struct {
	repo     AttachmentRepository
	files    FileStore
	maxFiles int
}

func NewAttachmentService(repo AttachmentRepository, files FileStore, maxFiles int) *AttachmentService {
	return &AttachmentService{
		repo:     repo,
		files:    files,
		maxFiles: maxFiles,
	}
}

// OwnerExists reports whether owner id is a stored row.
func (s *AttachmentService) OwnerExists(ctx context.Context, owner domain.OwnerType, id uint) error {
	ok, err := s.repo.OwnerExists(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("s.repo.OwnerExists -> %w", err)
	}
	if !ok {
		return ErrOwnerNotFound
	}

	return nil
}

// AddImages checks the owner before any file is written.
func (s *AttachmentService) AddImages(ctx context.Context, owner domain.OwnerType, id uint, uploads []*multipart.FileHeader) ([]domain.Image, error) {
	if !owner.OwnsImages() {
		return nil, ErrUnsupportedOwner
	}
	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}
	if err := s.OwnerExists(ctx, owner, id); err != nil {
		return nil, err
	}

	saved, err := saveImages(s.files, owner, uploads, s.maxFiles)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.AddImages(ctx, owner, id, saved)
	if err != nil {
		for _, img := range saved {
			s.files.Remove(img.Path)
		}
		return nil, fmt.Errorf("s.repo.AddImages -> %w", err)
	}

	return created, nil
}

func (s *AttachmentService) ListImages(ctx context.Context, owner domain.OwnerType, id uint) ([]domain.Image, error) {
	if !owner.OwnsImages() {
		return nil, ErrUnsupportedOwner
	}

	images, err := s.repo.FindImages(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindImages -> %w", err)
	}

	return images, nil
}

// RemoveImages deletes the listed images of the owner and their files.
func (s *AttachmentService) RemoveImages(ctx context.Context, owner domain.OwnerType, id uint, imageIDs []uint) ([]domain.Image, error) {
	if !owner.OwnsImages() {
		return nil, ErrUnsupportedOwner
	}

	removed, err := s.repo.RemoveImages(ctx, owner, id, imageIDs)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RemoveImages -> %w", err)
	}
	for _, img := range removed {
		s.files.Remove(img.Path)
	}

	return removed, nil
}

func (s *AttachmentService) AddDocuments(ctx context.Context, owner domain.OwnerType, id uint, uploads []*multipart.FileHeader) ([]domain.Document, error) {
	if !owner.OwnsDocuments() {
		return nil, ErrUnsupportedOwner
	}
	if len(uploads) == 0 {
		return nil, ErrNoFiles
	}
	if s.maxFiles > 0 && len(uploads) > s.maxFiles {
		return nil, ErrTooManyFiles
	}
	if err := s.OwnerExists(ctx, owner, id); err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(uploads))
	cleanup := func() {
		for _, d := range docs {
			s.files.Remove(d.FilePath)
		}
	}
	for _, fh := range uploads {
		file, err := s.files.SaveDocument(string(owner), fh)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("s.files.SaveDocument(%s) -> %w", fh.Filename, err)
		}
		metrics.UploadedFiles.WithLabelValues("document").Inc()
		docs = append(docs, domain.Document{
			EntityType: owner,
			EntityID:   id,
			Filename:   fh.Filename,
			FilePath:   file.Path,
			FileType:   strings.TrimPrefix(file.Ext, "."),
			FileSize:   file.Size,
			URL:        file.URL,
		})
	}

	created, err := s.repo.AddDocuments(ctx, owner, id, docs)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("s.repo.AddDocuments -> %w", err)
	}

	return created, nil
}

func (s *AttachmentService) AddContacts(ctx context.Context, owner domain.OwnerType, id uint, contacts []domain.Contact) ([]domain.Contact, error) {
	if !owner.OwnsContacts() {
		return nil, ErrUnsupportedOwner
	}

	created, err := s.repo.AddContacts(ctx, owner, id, contacts)
	if err != nil {
		return nil, fmt.Errorf("s.repo.AddContacts -> %w", err)
	}

	return created, nil
}

// CheckContactOwner rejects a contact whose owner cannot hold contacts or
// does not exist.
func (s *AttachmentService) CheckContactOwner(ctx context.Context, c domain.Contact) error {
	if !c.EntityType.OwnsContacts() {
		return ErrUnsupportedOwner
	}

	return s.OwnerExists(ctx, c.EntityType, c.EntityID)
}

type DocumentRepository interface {
	FindAll(ctx context.Context) ([]domain.Document, error)
	FindWhere(ctx context.Context, conds map[string]any) ([]domain.Document, error)
	FindByID(ctx context.Context, id uint) (domain.Document, error)
	Update(ctx context.Context, id uint, d domain.Document) (domain.Document, []string, error)
	Delete(ctx context.Context, id uint) ([]string, error)
}

type DocumentService struct {
	repo  DocumentRepository
	files FileStore
}

func NewDocumentService(repo DocumentRepository, files FileStore) *DocumentService {
	return &DocumentService{
		repo:  repo,
		files: files,
	}
}

// List filters by owner when owner is set, and by owner id when id is not 0.
func (s *DocumentService) List(ctx context.Context, owner domain.OwnerType, id uint) ([]domain.Document, error) {
	if owner == "" && id == 0 {
		docs, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
		}
		return docs, nil
	}

	conds := map[string]any{}
	if owner != "" {
		conds["entity_type"] = string(owner)
	}
	if id != 0 {
		conds["entity_id"] = id
	}

	docs, err := s.repo.FindWhere(ctx, conds)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindWhere -> %w", err)
	}

	return docs, nil
}

func (s *DocumentService) Get(ctx context.Context, id uint) (domain.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Document{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return doc, nil
}

// Rename changes the display name. The stored file is left alone.
func (s *DocumentService) Rename(ctx context.Context, id uint, filename string) (domain.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}
	doc.Filename = filename

	updated, _, err := s.repo.Update(ctx, id, doc)
	if err != nil {
		return domain.Document{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}
	s.files.Remove(doc.FilePath)

	return nil
}
