package repository

import (
	"context"

	"sams-backend/internal/domain"
)

// GalleryFilter narrows gallery listings.
type GalleryFilter struct {
	FeaturedOnly bool
	Limit        int
	Offset       int
}

// GalleryRepository defines persistence operations for gallery items.
type GalleryRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, item *domain.GalleryItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error)
	List(ctx context.Context, filter GalleryFilter) ([]domain.GalleryItem, error)
	Update(ctx context.Context, item *domain.GalleryItem) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
