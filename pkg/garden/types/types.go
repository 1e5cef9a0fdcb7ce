package types

import (
	"garden/entities"
	"garden/pkg/schedule"
)

type EventView struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

// PlantView is a plant as returned to clients, with its next due dates.
type PlantView struct {
	ID                 int         `json:"id"`
	Name               string      `json:"name"`
	Species            string      `json:"species"`
	Planted            string      `json:"planted"`
	PotSizeCM          int         `json:"pot_size_cm"`
	Sunlight           string      `json:"sunlight"`
	WateringInterval   int         `json:"watering_interval"`
	FertilizerInterval int         `json:"fertilizer_interval"`
	NextWater          string      `json:"next_water"`
	NextFertilize      string      `json:"next_fertilize"`
	History            []EventView `json:"history"`
}

type ListResponse struct {
	OK     bool        `json:"ok"`
	Plants []PlantView `json:"plants"`
}

// ScheduleView is the due status of one plant on a given day.
type ScheduleView struct {
	ID            int    `json:"id"`
	Today         string `json:"today"`
	NextWater     string `json:"next_water"`
	NextFertilize string `json:"next_fertilize"`
	WaterDue      bool   `json:"water_due"`
	FertilizeDue  bool   `json:"fertilize_due"`
}

func NewPlantView(p entities.Plant) PlantView {
	history := make([]EventView, 0, len(p.History))
	for _, e := range p.History {
		history = append(history, EventView{Type: e.Type, Date: e.Date, Notes: e.Notes})
	}
	return PlantView{
		ID:                 p.ID,
		Name:               p.Name,
		Species:            p.Species,
		Planted:            p.Planted,
		PotSizeCM:          p.PotSizeCM,
		Sunlight:           p.Sunlight,
		WateringInterval:   p.Watering.IntervalDays,
		FertilizerInterval: p.Fertilizer.IntervalDays,
		NextWater:          schedule.NextWater(p),
		NextFertilize:      schedule.NextFertilize(p),
		History:            history,
	}
}

func NewListResponse(plants []entities.Plant) ListResponse {
	out := ListResponse{OK: true, Plants: make([]PlantView, 0, len(plants))}
	for _, p := range plants {
		out.Plants = append(out.Plants, NewPlantView(p))
	}
	return out
}

func NewScheduleView(p entities.Plant, today string) ScheduleView {
	nw, nf := schedule.NextWater(p), schedule.NextFertilize(p)
	return ScheduleView{
		ID:            p.ID,
		Today:         today,
		NextWater:     nw,
		NextFertilize: nf,
		WaterDue:      schedule.IsDue(nw, today),
		FertilizeDue:  schedule.IsDue(nf, today),
	}
}
