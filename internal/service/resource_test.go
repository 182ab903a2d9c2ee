package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sit-project/sit-api/internal/db/dbtest"
	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/storage"
	"github.com/sit-project/sit-api/internal/repository"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

// fakeFiles records what would have been written to disk.
type fakeFiles struct {
	saved   []string
	removed []string
	failOn  string
}

func (f *fakeFiles) save(dir string, fh *multipart.FileHeader) (storage.File, error) {
	if fh.Filename == f.failOn {
		return storage.File{}, storage.ErrUnsupportedType
	}
	rel := path.Join(dir, fmt.Sprintf("%d-%s", len(f.saved), fh.Filename))
	f.saved = append(f.saved, rel)

	return storage.File{
		Filename: path.Base(rel),
		Path:     rel,
		URL:      "http://localhost:3000/images/" + rel,
		Ext:      path.Ext(fh.Filename),
		Size:     fh.Size,
	}, nil
}

func (f *fakeFiles) SaveImage(dir string, fh *multipart.FileHeader) (storage.File, error) {
	return f.save(dir, fh)
}

func (f *fakeFiles) SaveDocument(dir string, fh *multipart.FileHeader) (storage.File, error) {
	return f.save(path.Join("documentos", dir), fh)
}

func (f *fakeFiles) SaveMedia(dir string, fh *multipart.FileHeader) (storage.File, error) {
	return f.save(dir, fh)
}

func (f *fakeFiles) Remove(paths ...string) {
	for _, p := range paths {
		if p != "" {
			f.removed = append(f.removed, p)
		}
	}
}

func uploads(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, 0, len(names))
	for _, n := range names {
		out = append(out, &multipart.FileHeader{Filename: n, Size: 128})
	}
	return out
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := dbtest.NewSQLite(t)
	require.NoError(t, dao.InitTables(gdb))

	return gdb
}

func newEstablishmentService(gdb *gorm.DB, files *fakeFiles) *ResourceService[domain.Establishment] {
	return NewResourceService[domain.Establishment](repository.NewEstablishmentRepository(gdb)).
		WithImages(domain.OwnerEstablishment, files, 3, func(e *domain.Establishment, images []domain.Image) {
			e.Images = images
		})
}

func seedOwnerAndCategory(t *testing.T, gdb *gorm.DB) (uint, uint) {
	t.Helper()
	ctx := context.Background()

	owner, err := repository.NewOwnerRepository(gdb).Create(ctx, domain.Owner{
		Name: "Carlos Ruiz", PhoneNumber: "+506 8888-1234", Email: "carlos@example.com",
	})
	require.NoError(t, err)
	category, err := repository.NewCategoryRepository(gdb).Create(ctx, domain.Category{Name: "Hotel"})
	require.NoError(t, err)

	return owner.ID, category.ID
}

func TestResourceService_CreateWithImages(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{}
	s := newEstablishmentService(gdb, files)
	ownerID, categoryID := seedOwnerAndCategory(t, gdb)
	ctx := context.Background()

	created, err := s.CreateWithImages(ctx, domain.Establishment{
		Name:       "Hotel La Cruz",
		Address:    "La Cruz, Guanacaste",
		OwnerID:    ownerID,
		CategoryID: categoryID,
	}, uploads("fachada.png", "piscina.jpg"))
	require.NoError(t, err)

	require.Len(t, created.Images, 2)
	for _, img := range created.Images {
		assert.Equal(t, domain.OwnerEstablishment, img.EntityType)
		assert.Equal(t, created.ID, img.EntityID)
	}
	require.NotNil(t, created.Owner)
	assert.Equal(t, "Carlos Ruiz", created.Owner.Name)
	assert.Empty(t, files.removed)
}

func TestResourceService_CreateRollsBackFiles(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{}
	s := newEstablishmentService(gdb, files)
	ctx := context.Background()

	_, err := s.CreateWithImages(ctx, domain.Establishment{
		Name:       "Sin dueño",
		OwnerID:    999,
		CategoryID: 999,
	}, uploads("a.png", "b.png"))
	assert.ErrorIs(t, err, ErrForeignKey)
	assert.ElementsMatch(t, files.saved, files.removed)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestResourceService_CreateRejectsBadUpload(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{failOn: "virus.exe"}
	s := newEstablishmentService(gdb, files)
	ownerID, categoryID := seedOwnerAndCategory(t, gdb)

	_, err := s.CreateWithImages(context.Background(), domain.Establishment{
		Name: "Hotel", OwnerID: ownerID, CategoryID: categoryID,
	}, uploads("ok.png", "virus.exe"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Equal(t, files.saved, files.removed)

	_, err = s.CreateWithImages(context.Background(), domain.Establishment{
		Name: "Hotel", OwnerID: ownerID, CategoryID: categoryID,
	}, uploads("1.png", "2.png", "3.png", "4.png"))
	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestResourceService_UpdateReplacesImages(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{}
	s := newEstablishmentService(gdb, files)
	ownerID, categoryID := seedOwnerAndCategory(t, gdb)
	ctx := context.Background()

	created, err := s.CreateWithImages(ctx, domain.Establishment{
		Name: "Hotel", OwnerID: ownerID, CategoryID: categoryID,
	}, uploads("vieja.png"))
	require.NoError(t, err)
	oldPath := files.saved[0]

	// Without uploads the images stay.
	updated, err := s.Update(ctx, created.ID, domain.Establishment{
		Name: "Hotel Renovado", OwnerID: ownerID, CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hotel Renovado", updated.Name)
	assert.Len(t, updated.Images, 1)
	assert.Empty(t, files.removed)

	updated, err = s.UpdateWithImages(ctx, created.ID, domain.Establishment{
		Name: "Hotel Renovado", OwnerID: ownerID, CategoryID: categoryID,
	}, uploads("nueva1.png", "nueva2.png"))
	require.NoError(t, err)
	assert.Len(t, updated.Images, 2)
	assert.Equal(t, []string{oldPath}, files.removed)

	_, err = s.UpdateWithImages(ctx, 999, domain.Establishment{
		Name: "X", OwnerID: ownerID, CategoryID: categoryID,
	}, uploads("x.png"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceService_DeleteRemovesAttachments(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{}
	attachments := NewAttachmentService(
		repository.NewAttachmentRepository(dao.NewAttachmentDAO(gdb)), files, 10,
	)
	attractions := NewResourceService[domain.Attraction](repository.NewAttractionRepository(gdb)).
		WithFiles(files)
	ctx := context.Background()

	created, err := attractions.Create(ctx, domain.Attraction{
		Name: "Volcán Orosí",
		Contacts: []domain.Contact{
			{ContactType: domain.ContactPhone, ContactValue: "+506 2222-3333"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Contacts, 1)

	_, err = attachments.AddImages(ctx, domain.OwnerAttraction, created.ID, uploads("volcan.png"))
	require.NoError(t, err)
	_, err = attachments.AddDocuments(ctx, domain.OwnerAttraction, created.ID, uploads("guia.pdf"))
	require.NoError(t, err)
	require.Len(t, files.saved, 2)

	require.NoError(t, attractions.Delete(ctx, created.ID))
	assert.ElementsMatch(t, files.saved, files.removed)

	_, err = attractions.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var contacts int64
	require.NoError(t, gdb.Model(&dao.Contact{}).Count(&contacts).Error)
	assert.Zero(t, contacts)

	assert.ErrorIs(t, attractions.Delete(ctx, created.ID), ErrNotFound)
}

func TestResourceService_Check(t *testing.T) {
	gdb := newTestDB(t)
	attachments := NewAttachmentService(
		repository.NewAttachmentRepository(dao.NewAttachmentDAO(gdb)), &fakeFiles{}, 10,
	)
	contacts := NewResourceService[domain.Contact](repository.NewContactRepository(gdb)).
		WithCheck(attachments.CheckContactOwner)
	ctx := context.Background()

	_, err := contacts.Create(ctx, domain.Contact{
		EntityType: domain.OwnerAttraction, EntityID: 42,
		ContactType: domain.ContactEmail, ContactValue: "info@example.com",
	})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	_, err = contacts.Create(ctx, domain.Contact{
		EntityType: domain.OwnerLegalInfo, EntityID: 1,
		ContactType: domain.ContactEmail, ContactValue: "info@example.com",
	})
	assert.ErrorIs(t, err, ErrUnsupportedOwner)
}
