package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Base struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (b Base) Key() uint { return b.ID }

// Image, DocumentFile and Contact rows point at their owner through
// (entity_type, entity_id). The database cannot enforce that pair, so
// writers check the owner with AttachmentDAO.OwnerExists first.
type Image struct {
	Base
	EntityType string `gorm:"size:50;not null;index:idx_images_entity"`
	EntityID   uint   `gorm:"not null;index:idx_images_entity"`
	Filename   string `gorm:"size:255;not null"`
	Path       string `gorm:"size:500;not null"`
	URL        string `gorm:"size:500;not null"`
}

type DocumentFile struct {
	Base
	EntityType string `gorm:"size:50;not null;index:idx_documents_entity"`
	EntityID   uint   `gorm:"not null;index:idx_documents_entity"`
	Filename   string `gorm:"size:255;not null"`
	FilePath   string `gorm:"size:500;not null"`
	FileType   string `gorm:"size:10;not null"`
	FileSize   int64  `gorm:"not null"`
	URL        string `gorm:"size:500;not null"`
}

type Contact struct {
	Base
	EntityType   string `gorm:"size:50;not null;index:idx_contacts_entity"`
	EntityID     uint   `gorm:"not null;index:idx_contacts_entity"`
	ContactType  string `gorm:"size:10;not null"`
	ContactValue string `gorm:"size:255;not null"`
}

// polymorphicOwner is implemented by every model that owns attachments.
type polymorphicOwner interface {
	OwnerType() string
}

// ownerModels resolves an entity type to the table holding its owners.
var ownerModels = map[string]func() any{
	"attraction":             func() any { return &Attraction{} },
	"transport":              func() any { return &Transport{} },
	"establishment":          func() any { return &Establishment{} },
	"tour_event":             func() any { return &TourEvent{} },
	"security_service":       func() any { return &SecurityService{} },
	"basic_service":          func() any { return &BasicService{} },
	"archaeological_site":    func() any { return &ArchaeologicalSite{} },
	"educational_resource":   func() any { return &EducationalResource{} },
	"info_legal_regulatoria": func() any { return &LegalInfo{} },
}

type AttachmentDAO struct {
	db *gorm.DB
}

func NewAttachmentDAO(db *gorm.DB) *AttachmentDAO {
	return &AttachmentDAO{
		db: db,
	}
}

func (d *AttachmentDAO) OwnerExists(ctx context.Context, entityType string, entityID uint) (bool, error) {
	newModel, ok := ownerModels[entityType]
	if !ok {
		return false, ErrUnsupportedOwner
	}

	var count int64
	result := d.db.WithContext(ctx).Model(newModel()).Where("id = ?", entityID).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// InsertImages stores rows for files already written to disk. The owner is
// re-checked inside the transaction.
func (d *AttachmentDAO) InsertImages(ctx context.Context, entityType string, entityID uint, images []Image) ([]Image, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownerExistsTx(tx, entityType, entityID); err != nil {
			return err
		}
		for i := range images {
			images[i].EntityType = entityType
			images[i].EntityID = entityID
		}
		return classify(tx.Create(&images).Error)
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}

func (d *AttachmentDAO) FindImages(ctx context.Context, entityType string, entityID uint) ([]Image, error) {
	var images []Image
	result := d.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("id").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}

	return images, nil
}

// DeleteImages removes the given images of one owner and returns them so
// the caller can remove the files.
func (d *AttachmentDAO) DeleteImages(ctx context.Context, entityType string, entityID uint, ids []uint) ([]Image, error) {
	var images []Image
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scope := tx.Where("entity_type = ? AND entity_id = ? AND id IN ?", entityType, entityID, ids)
		if err := scope.Find(&images).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return ErrNotFound
		}
		return tx.Delete(&images).Error
	})
	if err != nil {
		return nil, err
	}

	return images, nil
}

func (d *AttachmentDAO) InsertDocuments(ctx context.Context, entityType string, entityID uint, docs []DocumentFile) ([]DocumentFile, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownerExistsTx(tx, entityType, entityID); err != nil {
			return err
		}
		for i := range docs {
			docs[i].EntityType = entityType
			docs[i].EntityID = entityID
		}
		return classify(tx.Create(&docs).Error)
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (d *AttachmentDAO) InsertContacts(ctx context.Context, entityType string, entityID uint, contacts []Contact) ([]Contact, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownerExistsTx(tx, entityType, entityID); err != nil {
			return err
		}
		for i := range contacts {
			contacts[i].EntityType = entityType
			contacts[i].EntityID = entityID
		}
		return classify(tx.Create(&contacts).Error)
	})
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

func ownerExistsTx(tx *gorm.DB, entityType string, entityID uint) error {
	newModel, ok := ownerModels[entityType]
	if !ok {
		return ErrUnsupportedOwner
	}

	var count int64
	if err := tx.Model(newModel()).Where("id = ?", entityID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrOwnerNotFound
	}

	return nil
}

// detachAll deletes every attachment row of an owner and returns the storage
// paths of the removed files.
func detachAll(tx *gorm.DB, entityType string, entityID uint) ([]string, error) {
	var images []Image
	if err := tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).Find(&images).Error; err != nil {
		return nil, err
	}
	var docs []DocumentFile
	if err := tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).Find(&docs).Error; err != nil {
		return nil, err
	}

	for _, model := range []any{&Image{}, &DocumentFile{}, &Contact{}} {
		if err := tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).Delete(model).Error; err != nil {
			return nil, err
		}
	}

	paths := make([]string, 0, len(images)+len(docs))
	for _, img := range images {
		paths = append(paths, img.Path)
	}
	for _, doc := range docs {
		paths = append(paths, doc.FilePath)
	}

	return paths, nil
}
