package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sit-project/sit-api/internal/db/dbtest"
)

func TestStoreSQLite(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	require.NoError(t, InitTables(gdb))

	runStoreSuite(t, gdb)
}

// runStoreSuite is shared with the postgres integration test.
func runStoreSuite(t *testing.T, gdb *gorm.DB) {
	ctx := context.Background()
	attractions := NewStore[Attraction](gdb, "Contacts", "Images", "Documents")
	attachments := NewAttachmentDAO(gdb)

	t.Run("insert with contacts", func(t *testing.T) {
		created, err := attractions.Insert(ctx, Attraction{
			Name:        "Volcán Rincón de la Vieja",
			Description: "Parque nacional con fumarolas",
			Type:        "Volcán",
			Location:    "Liberia",
			Contacts: []Contact{
				{ContactType: "phone", ContactValue: "2666-5051"},
			},
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		require.Len(t, created.Contacts, 1)
		assert.Equal(t, "attraction", created.Contacts[0].EntityType)
		assert.Equal(t, created.ID, created.Contacts[0].EntityID)
	})

	t.Run("update swaps attachments", func(t *testing.T) {
		created, err := attractions.Insert(ctx, Attraction{
			Name: "Playa Hermosa", Description: "Playa de arena gris", Type: "Playa", Location: "Carrillo",
		})
		require.NoError(t, err)

		_, err = attachments.InsertImages(ctx, "attraction", created.ID, []Image{
			{Filename: "a.png", Path: "attraction/a.png", URL: "/images/attraction/a.png"},
		})
		require.NoError(t, err)

		next := created
		next.Status = "Abierto"
		updated, removed, err := attractions.Update(ctx, created.ID, next, Replace{
			Images:   []Image{{Filename: "b.png", Path: "attraction/b.png", URL: "/images/attraction/b.png"}},
			Contacts: []Contact{{ContactType: "email", ContactValue: "hermosa@example.com"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Abierto", updated.Status)
		assert.Equal(t, []string{"attraction/a.png"}, removed)
		require.Len(t, updated.Images, 1)
		assert.Equal(t, "b.png", updated.Images[0].Filename)
		require.Len(t, updated.Contacts, 1)

		kept, removed, err := attractions.Update(ctx, created.ID, updated, Replace{})
		require.NoError(t, err)
		assert.Empty(t, removed)
		assert.Len(t, kept.Images, 1)
	})

	t.Run("delete removes attachments", func(t *testing.T) {
		created, err := attractions.Insert(ctx, Attraction{
			Name: "Cañón del Río Colorado", Description: "Cañón", Type: "Cañón", Location: "Liberia",
			Contacts: []Contact{{ContactType: "phone", ContactValue: "8888-0000"}},
		})
		require.NoError(t, err)
		_, err = attachments.InsertImages(ctx, "attraction", created.ID, []Image{
			{Filename: "c.png", Path: "attraction/c.png", URL: "/images/attraction/c.png"},
		})
		require.NoError(t, err)

		removed, err := attractions.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"attraction/c.png"}, removed)

		_, err = attractions.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		var orphans int64
		require.NoError(t, gdb.Model(&Contact{}).
			Where("entity_type = ? AND entity_id = ?", "attraction", created.ID).
			Count(&orphans).Error)
		assert.Zero(t, orphans)

		_, err = attractions.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("constraint errors are classified", func(t *testing.T) {
		categories := NewStore[Category](gdb)
		_, err := categories.Insert(ctx, Category{Name: "Restaurante"})
		require.NoError(t, err)
		_, err = categories.Insert(ctx, Category{Name: "Restaurante"})
		assert.ErrorIs(t, err, ErrDuplicate)

		establishments := NewStore[Establishment](gdb, "Owner", "Category")
		_, err = establishments.Insert(ctx, Establishment{
			Name: "Soda Tipica", Address: "Liberia", PhoneNumber: "2666-0101", OwnerID: 999, CategoryID: 999,
		})
		assert.ErrorIs(t, err, ErrForeignKey)

		owners := NewStore[Owner](gdb)
		owner, err := owners.Insert(ctx, Owner{Name: "Marta Solís", PhoneNumber: "8888-2222", Email: "marta@example.com"})
		require.NoError(t, err)
		category, err := categories.Insert(ctx, Category{Name: "Soda"})
		require.NoError(t, err)

		est, err := establishments.Insert(ctx, Establishment{
			Name: "Soda Tipica", Address: "Liberia", PhoneNumber: "2666-0101", OwnerID: owner.ID, CategoryID: category.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, est.Owner)
		assert.Equal(t, "Marta Solís", est.Owner.Name)

		_, err = owners.Delete(ctx, owner.ID)
		assert.ErrorIs(t, err, ErrForeignKey)
	})

	t.Run("attachments need an existing owner", func(t *testing.T) {
		_, err := attachments.InsertImages(ctx, "transport", 12345, []Image{
			{Filename: "x.png", Path: "transport/x.png", URL: "/images/transport/x.png"},
		})
		assert.ErrorIs(t, err, ErrOwnerNotFound)

		_, err = attachments.DeleteImages(ctx, "transport", 12345, []uint{1})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
