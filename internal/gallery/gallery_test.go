package gallery

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medinathreads/medina-backend/pkg/db/models"
	pkgerrors "github.com/medinathreads/medina-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGalleryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS gallery (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  title_ar TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  display_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`
	require.NoError(t, conn.Exec(ddl).Error)
	return conn
}

func newGalleryService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	conn := setupGalleryTestDB(t)
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc, conn
}

func seedGalleryItem(t *testing.T, conn *gorm.DB, title string, order int, created time.Time) *models.GalleryItem {
	t.Helper()

	item := &models.GalleryItem{
		ID:           uuid.New(),
		Title:        title,
		TitleAr:      title + "-ar",
		ImageURL:     "/gallery/" + title + ".jpg",
		IsActive:     true,
		DisplayOrder: order,
		CreatedAt:    created,
	}
	require.NoError(t, conn.Create(item).Error)
	return item
}

func TestServiceListOrderedWithTies(t *testing.T) {
	svc, conn := newGalleryService(t)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	seedGalleryItem(t, conn, "second", 2, base)
	seedGalleryItem(t, conn, "first", 1, base)
	// two items share display_order 3; created_at keeps the order stable
	seedGalleryItem(t, conn, "tie-late", 3, base.Add(time.Hour))
	seedGalleryItem(t, conn, "tie-early", 3, base)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "tie-early", items[2].Title)
	assert.Equal(t, "tie-late", items[3].Title)
}

func TestServiceCreateValidatesRequiredFields(t *testing.T) {
	svc, _ := newGalleryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateItemInput{ImageURL: "/x.jpg"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Create(ctx, CreateItemInput{Title: "Summer"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	dto, err := svc.Create(ctx, CreateItemInput{
		Title:        "Summer",
		TitleAr:      "الصيف",
		ImageURL:     "/gallery/summer.jpg",
		IsActive:     true,
		DisplayOrder: 5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.Equal(t, 5, dto.DisplayOrder)
}

func TestServiceUpdateIsPartial(t *testing.T) {
	svc, conn := newGalleryService(t)
	ctx := context.Background()

	item := seedGalleryItem(t, conn, "original", 1, time.Now().UTC())

	inactive := false
	newOrder := 9
	require.NoError(t, svc.Update(ctx, item.ID, UpdateItemInput{
		IsActive:     &inactive,
		DisplayOrder: &newOrder,
	}))

	var stored models.GalleryItem
	require.NoError(t, conn.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, "original", stored.Title) // untouched
	assert.False(t, stored.IsActive)
	assert.Equal(t, 9, stored.DisplayOrder)

	// empty patch is a no-op, not an error, for an existing row
	require.NoError(t, svc.Update(ctx, item.ID, UpdateItemInput{}))

	err := svc.Update(ctx, uuid.New(), UpdateItemInput{DisplayOrder: &newOrder})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestServiceDelete(t *testing.T) {
	svc, conn := newGalleryService(t)
	ctx := context.Background()

	item := seedGalleryItem(t, conn, "doomed", 1, time.Now().UTC())
	require.NoError(t, svc.Delete(ctx, item.ID))

	var count int64
	require.NoError(t, conn.Model(&models.GalleryItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
