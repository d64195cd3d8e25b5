package service

import (
	"context"
	"errors"
	"strings"

	"sams-backend/internal/domain"
	"sams-backend/internal/repository"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// StaffService describes staff directory operations.
type StaffService interface {
	List(ctx context.Context) ([]domain.StaffMember, error)
	Get(ctx context.Context, id int64) (*domain.StaffMember, error)
	Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error)
	Delete(ctx context.Context, id int64) error
}

type staffService struct {
	staff repository.StaffRepository
}

func NewStaffService(staff repository.StaffRepository) StaffService {
	return &staffService{staff: staff}
}

func (s *staffService) List(ctx context.Context) ([]domain.StaffMember, error) {
	return s.staff.List(ctx)
}

func (s *staffService) Get(ctx context.Context, id int64) (*domain.StaffMember, error) {
	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *staffService) Create(ctx context.Context, member *domain.StaffMember) (*domain.StaffMember, error) {
	member.Name = strings.TrimSpace(member.Name)
	member.Position = strings.TrimSpace(member.Position)
	member.Email = strings.TrimSpace(member.Email)

	if member.Name == "" {
		return nil, errors.New("name is required")
	}
	if member.Position == "" {
		return nil, errors.New("position is required")
	}
	if member.Email == "" {
		return nil, errors.New("email is required")
	}

	if _, err := s.staff.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *staffService) Delete(ctx context.Context, id int64) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
