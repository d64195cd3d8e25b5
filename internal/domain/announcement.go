package domain

import "time"

// Announcement is a site-wide notice shown to visitors.
type Announcement struct {
	ID        int64
	Title     string
	Body      string
	Published bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
