package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sams-backend/internal/domain"
	"sams-backend/internal/repository"
)

func seedGallery(t *testing.T, gallery repository.GalleryRepository, n int, featuredEvery int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		item := &domain.GalleryItem{
			Title:      fmt.Sprintf("item %d", i),
			IsFeatured: featuredEvery > 0 && i%featuredEvery == 0,
		}
		_, err := gallery.Create(context.Background(), item)
		require.NoError(t, err)
	}
}

func TestGalleryRepositoryCRUD(t *testing.T) {
	gallery := NewGalleryRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, gallery.Init(ctx))

	item := &domain.GalleryItem{
		Title:       "opening day",
		Description: "photos from the opening",
		AltText:     "crowd at the entrance",
		IsFeatured:  true,
		CreatedBy:   "alice",
	}
	_, err := gallery.Create(ctx, item)
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	got, err := gallery.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "opening day", got.Title)
	assert.True(t, got.IsFeatured)

	got.Title = "opening day 2024"
	got.IsFeatured = false
	require.NoError(t, gallery.Update(ctx, got))

	got, err = gallery.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "opening day 2024", got.Title)
	assert.False(t, got.IsFeatured)

	require.NoError(t, gallery.Delete(ctx, item.ID))
	_, err = gallery.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, gallery.Delete(ctx, item.ID), repository.ErrNotFound)
}

func TestGalleryRepositoryListPagination(t *testing.T) {
	gallery := NewGalleryRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, gallery.Init(ctx))

	seedGallery(t, gallery, 5, 0)

	page, err := gallery.List(ctx, repository.GalleryFilter{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page, 2)
	// newest first
	assert.Equal(t, "item 5", page[0].Title)
	assert.Equal(t, "item 4", page[1].Title)

	page, err = gallery.List(ctx, repository.GalleryFilter{Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "item 1", page[0].Title)
}

func TestGalleryRepositoryListFeaturedOnly(t *testing.T) {
	gallery := NewGalleryRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, gallery.Init(ctx))

	seedGallery(t, gallery, 6, 2)

	items, err := gallery.List(ctx, repository.GalleryFilter{FeaturedOnly: true, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.True(t, item.IsFeatured)
	}
}

func TestAnnouncementRepositoryPublishedFilter(t *testing.T) {
	announcements := NewAnnouncementRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, announcements.Init(ctx))

	for i := 1; i <= 4; i++ {
		a := &domain.Announcement{
			Title:     fmt.Sprintf("notice %d", i),
			Body:      "body",
			Published: i%2 == 0,
		}
		_, err := announcements.Create(ctx, a)
		require.NoError(t, err)
	}

	all, err := announcements.List(ctx, repository.AnnouncementFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	published, err := announcements.List(ctx, repository.AnnouncementFilter{PublishedOnly: true, Limit: 10})
	require.NoError(t, err)
	require.Len(t, published, 2)
	for _, a := range published {
		assert.True(t, a.Published)
	}
}
