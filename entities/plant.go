package entities

import "time"

const (
	CareWater     = "water"
	CareFertilize = "fertilize"
)

// CareEvent is one logged care action. Events are only ever appended.
type CareEvent struct {
	Type  string `json:"type"` // water|fertilize|...
	Date  string `json:"date"` // YYYY-MM-DD
	Notes string `json:"notes"`
}

// Schedule is a recurrence policy. IntervalDays <= 0 means manual care.
type Schedule struct {
	IntervalDays int `json:"interval_days"`
}

type Plant struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Species    string      `json:"species"`
	Planted    string      `json:"planted"`
	PotSizeCM  int         `json:"pot_size_cm"`
	Sunlight   string      `json:"sunlight"`
	Watering   Schedule    `json:"watering"`
	Fertilizer Schedule    `json:"fertilizer"`
	History    []CareEvent `json:"history"`
}

// GardenDocument holds a whole encoded garden file when the sqlite backing is used.
type GardenDocument struct {
	Name      string `gorm:"primaryKey"`
	Body      string
	UpdatedAt time.Time
}
