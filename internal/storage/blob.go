package storage

import (
	"context"
	"errors"
)

var ErrNoBlob = errors.New("storage: no blob for key")

// BlobStore is the persistence capability the task store builds on: whole
// collections are read and written as single opaque values under a fixed
// key. Each call is atomic; a concurrent reader never observes a partial
// write.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
