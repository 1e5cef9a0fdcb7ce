package controllerImp

import (
	"encoding/json"
	"math"

	"garden/entities"
	"garden/pkg/codec"
)

// looseInt accepts any form or JSON value; anything that is not an integer
// becomes 0 instead of failing the bind.
type looseInt int

func (n *looseInt) UnmarshalParam(s string) error {
	*n = looseInt(codec.ParseIntOr(s, 0))
	return nil
}

func (n *looseInt) UnmarshalJSON(b []byte) error {
	var v any
	_ = json.Unmarshal(b, &v)
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) {
			*n = looseInt(x)
			return nil
		}
	case string:
		*n = looseInt(codec.ParseIntOr(x, 0))
		return nil
	}
	*n = 0
	return nil
}

// gardenForm carries every key the add and log actions read.
type gardenForm struct {
	Action             string   `form:"action" json:"action"`
	ID                 looseInt `form:"id" json:"id"`
	Name               string   `form:"name" json:"name"`
	Species            string   `form:"species" json:"species"`
	Planted            string   `form:"planted" json:"planted"`
	PotSizeCM          looseInt `form:"pot_size_cm" json:"pot_size_cm"`
	Sunlight           string   `form:"sunlight" json:"sunlight"`
	WateringInterval   looseInt `form:"watering_interval" json:"watering_interval"`
	FertilizerInterval looseInt `form:"fertilizer_interval" json:"fertilizer_interval"`
	Type               string   `form:"type" json:"type"`
	Date               string   `form:"date" json:"date"`
	Notes              string   `form:"notes" json:"notes"`
}

func (f gardenForm) plant() entities.Plant {
	return entities.Plant{
		Name:       f.Name,
		Species:    f.Species,
		Planted:    f.Planted,
		PotSizeCM:  int(f.PotSizeCM),
		Sunlight:   f.Sunlight,
		Watering:   entities.Schedule{IntervalDays: int(f.WateringInterval)},
		Fertilizer: entities.Schedule{IntervalDays: int(f.FertilizerInterval)},
	}
}

func (f gardenForm) event() entities.CareEvent {
	return entities.CareEvent{Type: f.Type, Date: f.Date, Notes: f.Notes}
}
