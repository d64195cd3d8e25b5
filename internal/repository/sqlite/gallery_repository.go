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

const createGalleryTable = `
CREATE TABLE IF NOT EXISTS gallery_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	alt_text TEXT NOT NULL DEFAULT '',
	media_url TEXT NOT NULL DEFAULT '',
	is_featured INTEGER NOT NULL DEFAULT 0,
	created_by TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type GalleryRepository struct {
	db *sql.DB
}

func NewGalleryRepository(db *sql.DB) repository.GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createGalleryTable); err != nil {
		return fmt.Errorf("create gallery table: %w", err)
	}
	return nil
}

func (r *GalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) (int64, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO gallery_items (title, description, alt_text, media_url, is_featured, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Title,
		item.Description,
		item.AltText,
		item.MediaURL,
		item.IsFeatured,
		item.CreatedBy,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert gallery item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("gallery last insert id: %w", err)
	}
	item.ID = id
	return id, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	row := r.db.QueryRowContext(ctx, selectGallery+`WHERE id = ?`, id)
	return scanGalleryItem(row)
}

func (r *GalleryRepository) List(ctx context.Context, filter repository.GalleryFilter) ([]domain.GalleryItem, error) {
	query := selectGallery
	var args []any
	if filter.FeaturedOnly {
		query += `WHERE is_featured = 1
`
	}
	query += `ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gallery items: %w", err)
	}
	defer rows.Close()

	var items []domain.GalleryItem
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gallery items: %w", err)
	}
	return items, nil
}

func (r *GalleryRepository) Update(ctx context.Context, item *domain.GalleryItem) error {
	item.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE gallery_items
SET title = ?, description = ?, alt_text = ?, media_url = ?, is_featured = ?, updated_at = ?
WHERE id = ?`,
		item.Title,
		item.Description,
		item.AltText,
		item.MediaURL,
		item.IsFeatured,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("update gallery item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("gallery rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("gallery rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *GalleryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count gallery items: %w", err)
	}
	return n, nil
}

const selectGallery = `
SELECT id, title, description, alt_text, media_url, is_featured, created_by, created_at, updated_at
FROM gallery_items
`

func scanGalleryItem(row interface {
	Scan(dest ...any) error
}) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.AltText,
		&item.MediaURL,
		&item.IsFeatured,
		&item.CreatedBy,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan gallery item: %w", err)
	}
	return &item, nil
}
