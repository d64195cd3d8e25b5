package service

import (
	"context"
	"errors"
	"strings"

	"sams-backend/internal/domain"
	"sams-backend/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GalleryUpdate carries a partial update; nil fields are left unchanged.
type GalleryUpdate struct {
	Title       *string
	Description *string
	AltText     *string
	IsFeatured  *bool
}

// GalleryService describes gallery item operations.
type GalleryService interface {
	List(ctx context.Context, featuredOnly bool, limit, offset int) ([]domain.GalleryItem, error)
	Get(ctx context.Context, id int64) (*domain.GalleryItem, error)
	Create(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error)
	Update(ctx context.Context, id int64, update GalleryUpdate) (*domain.GalleryItem, error)
	SetMediaURL(ctx context.Context, id int64, url string) (*domain.GalleryItem, error)
	Delete(ctx context.Context, id int64) error
}

type galleryService struct {
	gallery repository.GalleryRepository
}

func NewGalleryService(gallery repository.GalleryRepository) GalleryService {
	return &galleryService{gallery: gallery}
}

func (s *galleryService) List(ctx context.Context, featuredOnly bool, limit, offset int) ([]domain.GalleryItem, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.gallery.List(ctx, repository.GalleryFilter{
		FeaturedOnly: featuredOnly,
		Limit:        limit,
		Offset:       offset,
	})
}

func (s *galleryService) Get(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	item, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *galleryService) Create(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return nil, errors.New("title is required")
	}

	if _, err := s.gallery.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *galleryService) Update(ctx context.Context, id int64, update GalleryUpdate) (*domain.GalleryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, errors.New("title must not be empty")
		}
		item.Title = title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.AltText != nil {
		item.AltText = *update.AltText
	}
	if update.IsFeatured != nil {
		item.IsFeatured = *update.IsFeatured
	}

	if err := s.gallery.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *galleryService) SetMediaURL(ctx context.Context, id int64, url string) (*domain.GalleryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item.MediaURL = url
	if err := s.gallery.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *galleryService) Delete(ctx context.Context, id int64) error {
	if err := s.gallery.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
