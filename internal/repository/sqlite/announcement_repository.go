package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sams-backend/internal/domain"
	"sams-backend/internal/repository"
)

const createAnnouncementsTable = `
CREATE TABLE IF NOT EXISTS announcements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	published INTEGER NOT NULL DEFAULT 1,
	created_by TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type AnnouncementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) repository.AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAnnouncementsTable); err != nil {
		return fmt.Errorf("create announcements table: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (int64, error) {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO announcements (title, body, published, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		a.Title,
		a.Body,
		a.Published,
		a.CreatedBy,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert announcement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("announcement last insert id: %w", err)
	}
	a.ID = id
	return id, nil
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	row := r.db.QueryRowContext(ctx, selectAnnouncement+`WHERE id = ?`, id)
	return scanAnnouncement(row)
}

func (r *AnnouncementRepository) List(ctx context.Context, filter repository.AnnouncementFilter) ([]domain.Announcement, error) {
	query := selectAnnouncement
	if filter.PublishedOnly {
		query += `WHERE published = 1
`
	}
	query += `ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var items []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate announcements: %w", err)
	}
	return items, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	a.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE announcements
SET title = ?, body = ?, published = ?, updated_at = ?
WHERE id = ?`,
		a.Title,
		a.Body,
		a.Published,
		a.UpdatedAt,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("announcement rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("announcement rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AnnouncementRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count announcements: %w", err)
	}
	return n, nil
}

const selectAnnouncement = `
SELECT id, title, body, published, created_by, created_at, updated_at
FROM announcements
`

func scanAnnouncement(row interface {
	Scan(dest ...any) error
}) (*domain.Announcement, error) {
	var a domain.Announcement
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Body,
		&a.Published,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan announcement: %w", err)
	}
	return &a, nil
}
