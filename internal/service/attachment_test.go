package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/repository"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

func TestAttachmentService_AddImages(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{}
	s := NewAttachmentService(repository.NewAttachmentRepository(dao.NewAttachmentDAO(gdb)), files, 10)
	ctx := context.Background()

	site, err := repository.NewArchaeologicalSiteRepository(gdb).Create(ctx, domain.ArchaeologicalSite{
		Name: "Sitio Las Pilas", Latitude: 11.05, Longitude: -85.6,
	})
	require.NoError(t, err)

	t.Run("missing owner writes nothing", func(t *testing.T) {
		_, err := s.AddImages(ctx, domain.OwnerArchaeologicalSite, site.ID+100, uploads("a.png"))
		assert.ErrorIs(t, err, ErrOwnerNotFound)
		assert.Empty(t, files.saved)
	})

	t.Run("owner without images", func(t *testing.T) {
		_, err := s.AddImages(ctx, domain.OwnerLegalInfo, 1, uploads("a.png"))
		assert.ErrorIs(t, err, ErrUnsupportedOwner)
	})

	t.Run("no files", func(t *testing.T) {
		_, err := s.AddImages(ctx, domain.OwnerArchaeologicalSite, site.ID, nil)
		assert.ErrorIs(t, err, ErrNoFiles)
	})

	t.Run("stores images", func(t *testing.T) {
		created, err := s.AddImages(ctx, domain.OwnerArchaeologicalSite, site.ID, uploads("a.png", "b.png"))
		require.NoError(t, err)
		require.Len(t, created, 2)

		images, err := s.ListImages(ctx, domain.OwnerArchaeologicalSite, site.ID)
		require.NoError(t, err)
		assert.Len(t, images, 2)

		removed, err := s.RemoveImages(ctx, domain.OwnerArchaeologicalSite, site.ID, []uint{created[0].ID})
		require.NoError(t, err)
		require.Len(t, removed, 1)
		assert.Equal(t, []string{created[0].Path}, files.removed)

		_, err = s.RemoveImages(ctx, domain.OwnerArchaeologicalSite, site.ID, []uint{created[0].ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAttachmentService_Documents(t *testing.T) {
	gdb := newTestDB(t)
	files := &fakeFiles{}
	s := NewAttachmentService(repository.NewAttachmentRepository(dao.NewAttachmentDAO(gdb)), files, 10)
	docs := NewDocumentService(repository.NewDocumentRepository(gdb), files)
	ctx := context.Background()

	info, err := repository.NewLegalInfoRepository(gdb).Create(ctx, domain.LegalInfo{
		Title: "Ley de Turismo", Description: "Regulación vigente",
	})
	require.NoError(t, err)

	_, err = s.AddDocuments(ctx, domain.OwnerLegalInfo, info.ID+1, uploads("ley.pdf"))
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	_, err = s.AddDocuments(ctx, domain.OwnerTransport, 1, uploads("ley.pdf"))
	assert.ErrorIs(t, err, ErrUnsupportedOwner)

	created, err := s.AddDocuments(ctx, domain.OwnerLegalInfo, info.ID, uploads("ley.pdf", "reglamento.docx"))
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "ley.pdf", created[0].Filename)
	assert.Equal(t, "pdf", created[0].FileType)

	list, err := docs.List(ctx, domain.OwnerLegalInfo, info.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = docs.List(ctx, domain.OwnerAttraction, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	renamed, err := docs.Rename(ctx, created[0].ID, "ley-2024.pdf")
	require.NoError(t, err)
	assert.Equal(t, "ley-2024.pdf", renamed.Filename)
	assert.Equal(t, created[0].FilePath, renamed.FilePath)

	require.NoError(t, docs.Delete(ctx, created[1].ID))
	assert.Equal(t, []string{created[1].FilePath}, files.removed)

	_, err = docs.Get(ctx, created[1].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttachmentService_AddContacts(t *testing.T) {
	gdb := newTestDB(t)
	s := NewAttachmentService(repository.NewAttachmentRepository(dao.NewAttachmentDAO(gdb)), &fakeFiles{}, 10)
	ctx := context.Background()

	event, err := repository.NewTourEventRepository(gdb).Create(ctx, domain.TourEvent{
		Name: "Festival del Maíz", StartDate: "2024-07-20", EndDate: "2024-07-21",
	})
	require.NoError(t, err)

	contacts := []domain.Contact{
		{ContactType: domain.ContactPhone, ContactValue: "+506 2679-9000"},
		{ContactType: domain.ContactEmail, ContactValue: "festival@example.com"},
	}

	_, err = s.AddContacts(ctx, domain.OwnerTourEvent, event.ID+1, contacts)
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	created, err := s.AddContacts(ctx, domain.OwnerTourEvent, event.ID, contacts)
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, c := range created {
		assert.Equal(t, domain.OwnerTourEvent, c.EntityType)
		assert.Equal(t, event.ID, c.EntityID)
	}
}
