package storage

import (
	"context"
	"io"
)

// Store persists uploaded media objects and resolves their public URLs.
type Store interface {
	// Put writes the object under key and returns the URL it is reachable at.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
