package service

import (
	"context"

	"sams-backend/internal/repository"
)

// DashboardStats summarizes record counts for the admin dashboard.
type DashboardStats struct {
	Users         int64
	Staff         int64
	GalleryItems  int64
	Announcements int64
}

// DashboardService aggregates counts across the stores.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	users         repository.UserRepository
	staff         repository.StaffRepository
	gallery       repository.GalleryRepository
	announcements repository.AnnouncementRepository
}

func NewDashboardService(
	users repository.UserRepository,
	staff repository.StaffRepository,
	gallery repository.GalleryRepository,
	announcements repository.AnnouncementRepository,
) DashboardService {
	return &dashboardService{
		users:         users,
		staff:         staff,
		gallery:       gallery,
		announcements: announcements,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var (
		stats DashboardStats
		err   error
	)
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Staff, err = s.staff.Count(ctx); err != nil {
		return nil, err
	}
	if stats.GalleryItems, err = s.gallery.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Announcements, err = s.announcements.Count(ctx); err != nil {
		return nil, err
	}
	return &stats, nil
}
