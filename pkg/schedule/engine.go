package schedule

import (
	"garden/entities"
	"garden/pkg/datemath"
)

const (
	Manual = "manual"
	DueNow = "due now"
)

// ComputeNext returns the next due date for careType, Manual when the
// interval is not positive, or DueNow when the plant was never cared for that
// way. The most recent event is the last appended one, not the latest date.
func ComputeNext(history []entities.CareEvent, intervalDays int, careType string) string {
	if intervalDays <= 0 {
		return Manual
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Type == careType {
			return datemath.AddDays(history[i].Date, intervalDays)
		}
	}
	return DueNow
}

// IsDue reports whether a ComputeNext result is due on or before today.
func IsDue(next, today string) bool {
	switch next {
	case DueNow:
		return true
	case Manual, datemath.Invalid:
		return false
	}
	n, ok := datemath.Parse(next)
	if !ok {
		return false
	}
	t, ok := datemath.Parse(today)
	if !ok {
		return false
	}
	return !n.After(t)
}

// NextWater and NextFertilize apply the plant's own schedules.
func NextWater(p entities.Plant) string {
	return ComputeNext(p.History, p.Watering.IntervalDays, entities.CareWater)
}

func NextFertilize(p entities.Plant) string {
	return ComputeNext(p.History, p.Fertilizer.IntervalDays, entities.CareFertilize)
}
