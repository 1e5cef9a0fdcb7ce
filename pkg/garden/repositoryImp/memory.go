package repositoryImp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"garden/pkg/garden/repository"
)

// Memory keeps the document in process. Used by tests and the memory driver.
type Memory struct {
	mu     sync.Mutex
	data   []byte
	exists bool
}

var _ repository.Backing = (*Memory)(nil)

func NewMemory() *Memory { return &Memory{} }

// NewMemoryWith seeds the document with body.
func NewMemoryWith(body string) *Memory {
	return &Memory{data: []byte(body), exists: true}
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Open(_ context.Context) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.exists {
		return nil, fmt.Errorf("open memory: %w", fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(m.data))), nil
}

func (m *Memory) Create(_ context.Context) (io.WriteCloser, error) {
	return &bufferedWriter{commit: func(b []byte) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.data = b
		m.exists = true
		return nil
	}}, nil
}

// String returns the current document.
func (m *Memory) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data)
}

// bufferedWriter collects a whole document and hands it to commit on Close.
type bufferedWriter struct {
	buf    bytes.Buffer
	commit func([]byte) error
	closed bool
}

func (w *bufferedWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *bufferedWriter) Close() error {
	if w.closed {
		return fs.ErrClosed
	}
	w.closed = true
	return w.commit(w.buf.Bytes())
}
