package repository

import (
	"context"
	"io"
)

// Backing is the whole-document resource a garden is read from and written
// to. Open on a document that does not exist yet returns an error wrapping
// fs.ErrNotExist. Handles are scoped to one call and must be closed by the
// caller; nothing here locks, so concurrent writers race and the last
// Close wins.
type Backing interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
	Create(ctx context.Context) (io.WriteCloser, error)
}

// Pinger is implemented by backings that can check for the document without
// fetching its body. Ping follows the same fs.ErrNotExist rule as Open.
type Pinger interface {
	Ping(ctx context.Context) error
}
