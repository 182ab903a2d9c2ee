package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Model is satisfied by every table struct embedding Base.
type Model interface {
	Key() uint
}

// Replace carries attachment sets that an update swaps out. A nil slice
// leaves the current rows untouched.
type Replace struct {
	Images   []Image
	Contacts []Contact
}

// Store implements the CRUD operations shared by every resource table.
type Store[M Model] struct {
	db       *gorm.DB
	preloads []string
	order    string
}

func NewStore[M Model](db *gorm.DB, preloads ...string) *Store[M] {
	return &Store[M]{
		db:       db,
		preloads: preloads,
		order:    "id",
	}
}

// OrderBy changes the listing order, e.g. "datetime desc".
func (s *Store[M]) OrderBy(order string) *Store[M] {
	s.order = order
	return s
}

func (s *Store[M]) query(ctx context.Context, tx *gorm.DB) *gorm.DB {
	q := tx.WithContext(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

// Insert creates m together with any has-many rows it carries, such as
// images or contacts, in one transaction.
func (s *Store[M]) Insert(ctx context.Context, m M) (M, error) {
	var created M
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return s.query(ctx, tx).First(&created, m.Key()).Error
	})
	if err != nil {
		var zero M
		return zero, classify(err)
	}

	return created, nil
}

func (s *Store[M]) FindAll(ctx context.Context) ([]M, error) {
	var all []M
	result := s.query(ctx, s.db).Order(s.order).Find(&all)
	if result.Error != nil {
		return nil, result.Error
	}

	return all, nil
}

// FindWhere lists rows matching the given column values.
func (s *Store[M]) FindWhere(ctx context.Context, conds map[string]any) ([]M, error) {
	var all []M
	result := s.query(ctx, s.db).Where(conds).Order(s.order).Find(&all)
	if result.Error != nil {
		return nil, result.Error
	}

	return all, nil
}

func (s *Store[M]) FindByID(ctx context.Context, id uint) (M, error) {
	var m M
	result := s.query(ctx, s.db).First(&m, id)
	if result.Error != nil {
		return m, classify(result.Error)
	}

	return m, nil
}

func (s *Store[M]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Update overwrites every column of row id with m, then swaps the
// attachment sets in replace. It returns the stored file paths of the
// images that were swapped out.
func (s *Store[M]) Update(ctx context.Context, id uint, m M, replace Replace) (M, []string, error) {
	var (
		updated M
		removed []string
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current M
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}

		result := tx.Model(&current).
			Select("*").
			Omit("ID", "CreatedAt", clause.Associations).
			Updates(&m)
		if result.Error != nil {
			return result.Error
		}

		if replace.Images != nil || replace.Contacts != nil {
			owner, ok := any(current).(polymorphicOwner)
			if !ok {
				return ErrUnsupportedOwner
			}
			paths, err := replaceAttachments(tx, owner.OwnerType(), id, replace)
			if err != nil {
				return err
			}
			removed = paths
		}

		return s.query(ctx, tx).First(&updated, id).Error
	})
	if err != nil {
		var zero M
		return zero, nil, classify(err)
	}

	return updated, removed, nil
}

func replaceAttachments(tx *gorm.DB, entityType string, entityID uint, replace Replace) ([]string, error) {
	var removed []string
	scope := func() *gorm.DB {
		return tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID)
	}

	if replace.Images != nil {
		var old []Image
		if err := scope().Find(&old).Error; err != nil {
			return nil, err
		}
		if err := scope().Delete(&Image{}).Error; err != nil {
			return nil, err
		}
		for _, img := range old {
			removed = append(removed, img.Path)
		}
		if len(replace.Images) > 0 {
			for i := range replace.Images {
				replace.Images[i].EntityType = entityType
				replace.Images[i].EntityID = entityID
			}
			if err := tx.Create(&replace.Images).Error; err != nil {
				return nil, err
			}
		}
	}

	if replace.Contacts != nil {
		if err := scope().Delete(&Contact{}).Error; err != nil {
			return nil, err
		}
		if len(replace.Contacts) > 0 {
			for i := range replace.Contacts {
				replace.Contacts[i].EntityType = entityType
				replace.Contacts[i].EntityID = entityID
			}
			if err := tx.Create(&replace.Contacts).Error; err != nil {
				return nil, err
			}
		}
	}

	return removed, nil
}

// Delete removes row id and, for attachment owners, its images, documents
// and contacts. The returned paths belong to files the caller should remove
// once the transaction has committed.
func (s *Store[M]) Delete(ctx context.Context, id uint) ([]string, error) {
	var removed []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current M
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}

		if owner, ok := any(current).(polymorphicOwner); ok {
			paths, err := detachAll(tx, owner.OwnerType(), id)
			if err != nil {
				return err
			}
			removed = paths
		}

		result := tx.Delete(&current)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return removed, nil
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
