package repositoryImp

import (
	"context"
	"fmt"
	"io"
	"os"

	"garden/pkg/garden/repository"
)

type fileBacking struct{ path string }

// NewFile returns a backing over a plain text file. Create truncates.
func NewFile(path string) repository.Backing { return &fileBacking{path: path} }

func (b *fileBacking) Name() string { return "file:" + b.path }

func (b *fileBacking) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", b.path, err)
	}
	return f, nil
}

func (b *fileBacking) Create(_ context.Context) (io.WriteCloser, error) {
	f, err := os.Create(b.path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", b.path, err)
	}
	return f, nil
}
