package repositoryImp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"garden/entities"
	"garden/pkg/garden/repository"
)

// sqliteBacking stores the encoded garden as a single row keyed by name.
type sqliteBacking struct {
	db   *gorm.DB
	name string
}

func NewSQLite(db *gorm.DB, name string) repository.Backing {
	return &sqliteBacking{db: db, name: name}
}

func (b *sqliteBacking) Name() string { return "sqlite:" + b.name }

func (b *sqliteBacking) Open(ctx context.Context) (io.ReadCloser, error) {
	var doc entities.GardenDocument
	err := b.db.WithContext(ctx).Where("name = ?", b.name).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("open document %q: %w", b.name, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("open document %q: %w", b.name, err)
	}
	return io.NopCloser(strings.NewReader(doc.Body)), nil
}

// Ping counts the document row instead of loading its body.
func (b *sqliteBacking) Ping(ctx context.Context) error {
	var n int64
	err := b.db.WithContext(ctx).Model(&entities.GardenDocument{}).Where("name = ?", b.name).Count(&n).Error
	if err != nil {
		return fmt.Errorf("ping document %q: %w", b.name, err)
	}
	if n == 0 {
		return fmt.Errorf("ping document %q: %w", b.name, fs.ErrNotExist)
	}
	return nil
}

func (b *sqliteBacking) Create(ctx context.Context) (io.WriteCloser, error) {
	return &bufferedWriter{commit: func(body []byte) error {
		doc := entities.GardenDocument{Name: b.name, Body: string(body), UpdatedAt: time.Now().UTC()}
		err := b.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&doc).Error
		if err != nil {
			return fmt.Errorf("save document %q: %w", b.name, err)
		}
		return nil
	}}, nil
}
