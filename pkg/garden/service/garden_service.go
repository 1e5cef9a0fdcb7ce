package service

import (
	"context"

	"garden/entities"
	"garden/pkg/garden/repository"
)

// GardenService is the in-memory plant collection for one request.
type GardenService interface {
	Add(p entities.Plant) int
	Find(id int) (*entities.Plant, bool)
	Log(id int, e entities.CareEvent) bool
	Plants() []entities.Plant
	NextID() int
	Load(ctx context.Context, src repository.Backing) error
	Save(ctx context.Context, dst repository.Backing) error
}
