package repository

import (
	"context"

	"sams-backend/internal/domain"
)

// StaffRepository defines persistence operations for staff directory entries.
type StaffRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, member *domain.StaffMember) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	List(ctx context.Context) ([]domain.StaffMember, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
