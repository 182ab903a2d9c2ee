package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

type AttachmentDAO interface {
	OwnerExists(ctx context.Context, entityType string, entityID uint) (bool, error)
	InsertImages(ctx context.Context, entityType string, entityID uint, images []dao.Image) ([]dao.Image, error)
	FindImages(ctx context.Context, entityType string, entityID uint) ([]dao.Image, error)
	DeleteImages(ctx context.Context, entityType string, entityID uint, ids []uint) ([]dao.Image, error)
	InsertDocuments(ctx context.Context, entityType string, entityID uint, docs []dao.DocumentFile) ([]dao.DocumentFile, error)
	InsertContacts(ctx context.Context, entityType string, entityID uint, contacts []dao.Contact) ([]dao.Contact, error)
}

type AttachmentRepository struct {
	dao AttachmentDAO
}

func NewAttachmentRepository(dao AttachmentDAO) *AttachmentRepository {
	return &AttachmentRepository{
		dao: dao,
	}
}

func (r *AttachmentRepository) OwnerExists(ctx context.Context, owner domain.OwnerType, id uint) (bool, error) {
	ok, err := r.dao.OwnerExists(ctx, string(owner), id)
	if err != nil {
		return false, fmt.Errorf("r.dao.OwnerExists -> %w", err)
	}

	return ok, nil
}

func (r *AttachmentRepository) AddImages(ctx context.Context, owner domain.OwnerType, id uint, images []domain.Image) ([]domain.Image, error) {
	created, err := r.dao.InsertImages(ctx, string(owner), id, imagesToDAO(images))
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertImages -> %w", err)
	}

	return imagesToDomain(created), nil
}

func (r *AttachmentRepository) FindImages(ctx context.Context, owner domain.OwnerType, id uint) ([]domain.Image, error) {
	found, err := r.dao.FindImages(ctx, string(owner), id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindImages -> %w", err)
	}

	return imagesToDomain(found), nil
}

func (r *AttachmentRepository) RemoveImages(ctx context.Context, owner domain.OwnerType, id uint, imageIDs []uint) ([]domain.Image, error) {
	removed, err := r.dao.DeleteImages(ctx, string(owner), id, imageIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DeleteImages -> %w", err)
	}

	return imagesToDomain(removed), nil
}

func (r *AttachmentRepository) AddDocuments(ctx context.Context, owner domain.OwnerType, id uint, docs []domain.Document) ([]domain.Document, error) {
	created, err := r.dao.InsertDocuments(ctx, string(owner), id, documentsToDAO(docs))
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertDocuments -> %w", err)
	}

	return documentsToDomain(created), nil
}

func (r *AttachmentRepository) AddContacts(ctx context.Context, owner domain.OwnerType, id uint, contacts []domain.Contact) ([]domain.Contact, error) {
	created, err := r.dao.InsertContacts(ctx, string(owner), id, contactsToDAO(contacts))
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertContacts -> %w", err)
	}

	return contactsToDomain(created), nil
}

func NewDocumentRepository(db *gorm.DB) *Resource[domain.Document, dao.DocumentFile] {
	return newResource(dao.NewStore[dao.DocumentFile](db), mapper[domain.Document, dao.DocumentFile]{
		toDAO:    documentToDAO,
		toDomain: documentToDomain,
	})
}

func NewContactRepository(db *gorm.DB) *Resource[domain.Contact, dao.Contact] {
	return newResource(dao.NewStore[dao.Contact](db), mapper[domain.Contact, dao.Contact]{
		toDAO:    contactToDAO,
		toDomain: contactToDomain,
	})
}

func imageToDAO(i domain.Image) dao.Image {
	return dao.Image{
		Base:       dao.Base{ID: i.ID},
		EntityType: string(i.EntityType),
		EntityID:   i.EntityID,
		Filename:   i.Filename,
		Path:       i.Path,
		URL:        i.URL,
	}
}

func imageToDomain(i dao.Image) domain.Image {
	return domain.Image{
		ID:         i.ID,
		EntityType: domain.OwnerType(i.EntityType),
		EntityID:   i.EntityID,
		Filename:   i.Filename,
		Path:       i.Path,
		URL:        i.URL,
		CreatedAt:  i.CreatedAt,
	}
}

func imagesToDAO(images []domain.Image) []dao.Image {
	if images == nil {
		return nil
	}
	out := make([]dao.Image, 0, len(images))
	for _, i := range images {
		out = append(out, imageToDAO(i))
	}
	return out
}

func imagesToDomain(images []dao.Image) []domain.Image {
	out := make([]domain.Image, 0, len(images))
	for _, i := range images {
		out = append(out, imageToDomain(i))
	}
	return out
}

func documentToDAO(d domain.Document) dao.DocumentFile {
	return dao.DocumentFile{
		EntityType: string(d.EntityType),
		EntityID:   d.EntityID,
		Filename:   d.Filename,
		FilePath:   d.FilePath,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		URL:        d.URL,
	}
}

func documentToDomain(d dao.DocumentFile) domain.Document {
	return domain.Document{
		ID:         d.ID,
		EntityType: domain.OwnerType(d.EntityType),
		EntityID:   d.EntityID,
		Filename:   d.Filename,
		FilePath:   d.FilePath,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		URL:        d.URL,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func documentsToDAO(docs []domain.Document) []dao.DocumentFile {
	out := make([]dao.DocumentFile, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentToDAO(d))
	}
	return out
}

func documentsToDomain(docs []dao.DocumentFile) []domain.Document {
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentToDomain(d))
	}
	return out
}

func contactToDAO(c domain.Contact) dao.Contact {
	return dao.Contact{
		EntityType:   string(c.EntityType),
		EntityID:     c.EntityID,
		ContactType:  c.ContactType,
		ContactValue: c.ContactValue,
	}
}

func contactToDomain(c dao.Contact) domain.Contact {
	return domain.Contact{
		ID:           c.ID,
		EntityType:   domain.OwnerType(c.EntityType),
		EntityID:     c.EntityID,
		ContactType:  c.ContactType,
		ContactValue: c.ContactValue,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func contactsToDAO(contacts []domain.Contact) []dao.Contact {
	if contacts == nil {
		return nil
	}
	out := make([]dao.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactToDAO(c))
	}
	return out
}

func contactsToDomain(contacts []dao.Contact) []domain.Contact {
	out := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, contactToDomain(c))
	}
	return out
}

// replaceImagesAndContacts swaps images when the update carries new uploads
// and contacts when the request listed them.
func replaceImagesAndContacts(images []domain.Image, contacts []domain.Contact) dao.Replace {
	return dao.Replace{
		Images:   imagesToDAO(images),
		Contacts: contactsToDAO(contacts),
	}
}
