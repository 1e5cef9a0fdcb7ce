package repositoryImp

import (
	"context"
	"fmt"
	"log"

	"garden/config"
	"garden/database"
	"garden/pkg/garden/repository"
)

// Open selects the backing named by cfg.StoreDriver.
//
//	file   GARDEN_FILE (default garden.txt)
//	memory process local, lost on exit
//	sqlite DB_PATH, row GARDEN_DOC_NAME
//	s3     GARDEN_S3_BUCKET, object GARDEN_DOC_NAME
func Open(ctx context.Context, cfg config.AppConfig) (repository.Backing, error) {
	var (
		b   repository.Backing
		err error
	)
	switch cfg.StoreDriver {
	case "", "file":
		b = NewFile(cfg.GardenFile)
	case "memory":
		b = NewMemory()
	case "sqlite":
		db, derr := database.OpenSQLite(cfg.DBPath)
		if derr != nil {
			return nil, derr
		}
		b = NewSQLite(db, cfg.DocName)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("GARDEN_S3_BUCKET required for s3 driver")
		}
		client, cerr := NewS3Client(ctx, S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if cerr != nil {
			return nil, cerr
		}
		b = NewS3(client, cfg.S3Bucket, cfg.DocName)
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[store] backing %s", b.Name())
	return b, nil
}
