package domain

import "time"

// GalleryItem is a single media entry in the public gallery.
type GalleryItem struct {
	ID          int64
	Title       string
	Description string
	AltText     string
	MediaURL    string
	IsFeatured  bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
