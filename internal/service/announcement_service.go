package service

import (
	"context"
	"errors"
	"strings"

	"sams-backend/internal/domain"
	"sams-backend/internal/repository"
)

// AnnouncementUpdate carries a partial update; nil fields are left unchanged.
type AnnouncementUpdate struct {
	Title     *string
	Body      *string
	Published *bool
}

// AnnouncementService describes announcement operations.
type AnnouncementService interface {
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Announcement, error)
	Get(ctx context.Context, id int64) (*domain.Announcement, error)
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Update(ctx context.Context, id int64, update AnnouncementUpdate) (*domain.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type announcementService struct {
	announcements repository.AnnouncementRepository
}

func NewAnnouncementService(announcements repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcements: announcements}
}

func (s *announcementService) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.Announcement, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.announcements.List(ctx, repository.AnnouncementFilter{
		PublishedOnly: publishedOnly,
		Limit:         limit,
		Offset:        offset,
	})
}

func (s *announcementService) Get(ctx context.Context, id int64) (*domain.Announcement, error) {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *announcementService) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.Body = strings.TrimSpace(a.Body)
	if a.Title == "" {
		return nil, errors.New("title is required")
	}
	if a.Body == "" {
		return nil, errors.New("body is required")
	}

	if _, err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *announcementService) Update(ctx context.Context, id int64, update AnnouncementUpdate) (*domain.Announcement, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, errors.New("title must not be empty")
		}
		a.Title = title
	}
	if update.Body != nil {
		body := strings.TrimSpace(*update.Body)
		if body == "" {
			return nil, errors.New("body must not be empty")
		}
		a.Body = body
	}
	if update.Published != nil {
		a.Published = *update.Published
	}

	if err := s.announcements.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *announcementService) Delete(ctx context.Context, id int64) error {
	if err := s.announcements.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
