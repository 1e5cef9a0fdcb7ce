package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"

	"garden/entities"
	"garden/pkg/codec"
	"garden/pkg/garden/repository"
	"garden/pkg/garden/service"
	"garden/pkg/metrics"
)

type gardenSvc struct {
	plants []entities.Plant
	nextID int
}

func NewGardenService() service.GardenService { return &gardenSvc{nextID: 1} }

// Add stores a copy of p under the next id and returns that id.
func (s *gardenSvc) Add(p entities.Plant) int {
	p.ID = s.nextID
	p.History = slices.Clone(p.History)
	s.nextID++
	s.plants = append(s.plants, p)
	metrics.PlantsAdded.Inc()
	return p.ID
}

// Find returns a pointer into the collection; it is invalidated by Add and Load.
func (s *gardenSvc) Find(id int) (*entities.Plant, bool) {
	for i := range s.plants {
		if s.plants[i].ID == id {
			return &s.plants[i], true
		}
	}
	return nil, false
}

// Log appends e to the plant's history. An unknown id is a no-op.
func (s *gardenSvc) Log(id int, e entities.CareEvent) bool {
	p, ok := s.Find(id)
	if !ok {
		metrics.CareLogged.WithLabelValues(e.Type, "unknown_plant").Inc()
		return false
	}
	p.History = append(p.History, e)
	metrics.CareLogged.WithLabelValues(e.Type, "ok").Inc()
	return true
}

func (s *gardenSvc) Plants() []entities.Plant { return s.plants }

func (s *gardenSvc) NextID() int { return s.nextID }

// Load replaces the collection with the document in src. A document that
// does not exist yet loads as an empty garden.
func (s *gardenSvc) Load(ctx context.Context, src repository.Backing) (err error) {
	defer func() { metrics.StoreOps.WithLabelValues("load", metrics.Result(err)).Inc() }()

	r, err := src.Open(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		s.replace(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer r.Close()

	plants, err := codec.Read(r)
	if err != nil {
		return fmt.Errorf("load %s: %w", src.Name(), err)
	}
	s.replace(plants)
	log.Printf("[store] loaded %d plants from %s", len(plants), src.Name())
	return nil
}

// Save rewrites the whole document in dst.
func (s *gardenSvc) Save(ctx context.Context, dst repository.Backing) (err error) {
	defer func() { metrics.StoreOps.WithLabelValues("save", metrics.Result(err)).Inc() }()

	w, err := dst.Create(ctx)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := codec.Write(w, s.plants); err != nil {
		_ = w.Close()
		return fmt.Errorf("save %s: %w", dst.Name(), err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("save %s: close: %w", dst.Name(), err)
	}
	return nil
}

func (s *gardenSvc) replace(plants []entities.Plant) {
	s.plants = plants
	s.nextID = 1
	for _, p := range plants {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	metrics.Plants.Set(float64(len(plants)))
}

// LoadGarden loads a fresh garden from b for one request. A load failure is
// logged and the request continues with an empty garden.
func LoadGarden(ctx context.Context, b repository.Backing) service.GardenService {
	g := NewGardenService()
	if err := g.Load(ctx, b); err != nil {
		log.Printf("[store] %v (continuing with empty garden)", err)
	}
	return g
}

// SaveGarden saves g to b. A failed write is logged and dropped.
func SaveGarden(ctx context.Context, g service.GardenService, b repository.Backing) bool {
	if err := g.Save(ctx, b); err != nil {
		log.Printf("[store] %v (write dropped)", err)
		return false
	}
	return true
}
