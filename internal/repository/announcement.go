package repository

import (
	"context"

	"sams-backend/internal/domain"
)

// AnnouncementFilter narrows announcement listings.
type AnnouncementFilter struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

// AnnouncementRepository defines persistence operations for announcements.
type AnnouncementRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, a *domain.Announcement) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Announcement, error)
	List(ctx context.Context, filter AnnouncementFilter) ([]domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
