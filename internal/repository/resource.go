package repository

import (
	"context"
	"fmt"

	"github.com/sit-project/sit-api/internal/repository/dao"
)

var (
	ErrNotFound         = dao.ErrNotFound
	ErrDuplicate        = dao.ErrDuplicate
	ErrForeignKey       = dao.ErrForeignKey
	ErrOwnerNotFound    = dao.ErrOwnerNotFound
	ErrUnsupportedOwner = dao.ErrUnsupportedOwner
)

type mapper[D any, M dao.Model] struct {
	toDAO    func(D) M
	toDomain func(M) D
	// replace picks the attachment sets an update should swap out.
	replace func(D) dao.Replace
}

// Resource maps one domain type onto its gorm model and back.
type Resource[D any, M dao.Model] struct {
	store *dao.Store[M]
	m     mapper[D, M]
}

func newResource[D any, M dao.Model](store *dao.Store[M], m mapper[D, M]) *Resource[D, M] {
	if m.replace == nil {
		m.replace = func(D) dao.Replace { return dao.Replace{} }
	}

	return &Resource[D, M]{
		store: store,
		m:     m,
	}
}

func (r *Resource[D, M]) Create(ctx context.Context, d D) (D, error) {
	created, err := r.store.Insert(ctx, r.m.toDAO(d))
	if err != nil {
		var zero D
		return zero, fmt.Errorf("r.store.Insert -> %w", err)
	}

	return r.m.toDomain(created), nil
}

func (r *Resource[D, M]) FindAll(ctx context.Context) ([]D, error) {
	found, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.store.FindAll -> %w", err)
	}

	return r.toDomainList(found), nil
}

func (r *Resource[D, M]) FindWhere(ctx context.Context, conds map[string]any) ([]D, error) {
	found, err := r.store.FindWhere(ctx, conds)
	if err != nil {
		return nil, fmt.Errorf("r.store.FindWhere -> %w", err)
	}

	return r.toDomainList(found), nil
}

func (r *Resource[D, M]) FindByID(ctx context.Context, id uint) (D, error) {
	found, err := r.store.FindByID(ctx, id)
	if err != nil {
		var zero D
		return zero, fmt.Errorf("r.store.FindByID -> %w", err)
	}

	return r.m.toDomain(found), nil
}

// Update returns the storage paths of images replaced by the update.
func (r *Resource[D, M]) Update(ctx context.Context, id uint, d D) (D, []string, error) {
	updated, removed, err := r.store.Update(ctx, id, r.m.toDAO(d), r.m.replace(d))
	if err != nil {
		var zero D
		return zero, nil, fmt.Errorf("r.store.Update -> %w", err)
	}

	return r.m.toDomain(updated), removed, nil
}

// Delete returns the storage paths of the files attached to the deleted row.
func (r *Resource[D, M]) Delete(ctx context.Context, id uint) ([]string, error) {
	removed, err := r.store.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.store.Delete -> %w", err)
	}

	return removed, nil
}

func (r *Resource[D, M]) toDomainList(models []M) []D {
	list := make([]D, 0, len(models))
	for _, m := range models {
		list = append(list, r.m.toDomain(m))
	}
	return list
}
