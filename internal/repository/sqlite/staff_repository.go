package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sams-backend/internal/domain"
	"sams-backend/internal/repository"
)

const createStaffTable = `
CREATE TABLE IF NOT EXISTS staff_members (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	position TEXT NOT NULL,
	email TEXT NOT NULL,
	photo_url TEXT NOT NULL DEFAULT ''
);
`

type StaffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createStaffTable); err != nil {
		return fmt.Errorf("create staff table: %w", err)
	}
	return nil
}

func (r *StaffRepository) Create(ctx context.Context, member *domain.StaffMember) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO staff_members (name, position, email, photo_url)
VALUES (?, ?, ?, ?)`,
		member.Name,
		member.Position,
		member.Email,
		member.PhotoURL,
	)
	if err != nil {
		return 0, fmt.Errorf("insert staff member: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("staff last insert id: %w", err)
	}
	member.ID = id
	return id, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, position, email, photo_url
FROM staff_members
WHERE id = ?`,
		id,
	)

	var member domain.StaffMember
	if err := row.Scan(&member.ID, &member.Name, &member.Position, &member.Email, &member.PhotoURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan staff member: %w", err)
	}
	return &member, nil
}

func (r *StaffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, position, email, photo_url
FROM staff_members
ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list staff members: %w", err)
	}
	defer rows.Close()

	var members []domain.StaffMember
	for rows.Next() {
		var member domain.StaffMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Position, &member.Email, &member.PhotoURL); err != nil {
			return nil, fmt.Errorf("scan staff member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff members: %w", err)
	}
	return members, nil
}

func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("staff rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff_members`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count staff members: %w", err)
	}
	return n, nil
}
