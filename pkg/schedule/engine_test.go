package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garden/entities"
	"garden/pkg/datemath"
)

func ev(kind, date string) entities.CareEvent {
	return entities.CareEvent{Type: kind, Date: date}
}

func TestComputeNext_NoHistoryIsDueNow(t *testing.T) {
	assert.Equal(t, DueNow, ComputeNext(nil, 7, entities.CareWater))
	assert.Equal(t, DueNow, ComputeNext([]entities.CareEvent{}, 7, entities.CareWater))
}

func TestComputeNext_Manual(t *testing.T) {
	history := []entities.CareEvent{ev(entities.CareWater, "2024-01-01")}
	assert.Equal(t, Manual, ComputeNext(history, 0, entities.CareWater))
	assert.Equal(t, Manual, ComputeNext(history, -3, entities.CareWater))
	assert.Equal(t, Manual, ComputeNext(nil, 0, entities.CareWater))
}

func TestComputeNext_UsesMostRecentMatch(t *testing.T) {
	history := []entities.CareEvent{
		ev(entities.CareWater, "2024-01-01"),
		ev(entities.CareWater, "2024-01-10"),
	}
	assert.Equal(t, "2024-01-15", ComputeNext(history, 5, entities.CareWater))
}

func TestComputeNext_TypeIsolation(t *testing.T) {
	history := []entities.CareEvent{
		ev(entities.CareWater, "2024-01-01"),
		ev(entities.CareFertilize, "2024-01-20"),
	}
	assert.Equal(t, "2024-01-08", ComputeNext(history, 7, entities.CareWater))
	assert.Equal(t, DueNow, ComputeNext(history[1:], 7, entities.CareWater))
}

func TestComputeNext_LastAppendedWinsOverLaterDate(t *testing.T) {
	history := []entities.CareEvent{
		ev(entities.CareWater, "2024-03-01"),
		ev(entities.CareWater, "2024-02-01"),
	}
	assert.Equal(t, "2024-02-03", ComputeNext(history, 2, entities.CareWater))
}

func TestComputeNext_InvalidDatePropagates(t *testing.T) {
	history := []entities.CareEvent{ev(entities.CareWater, "last tuesday")}
	assert.Equal(t, datemath.Invalid, ComputeNext(history, 2, entities.CareWater))
}

func TestIsDue(t *testing.T) {
	assert.True(t, IsDue(DueNow, "2024-01-01"))
	assert.False(t, IsDue(Manual, "2024-01-01"))
	assert.False(t, IsDue(datemath.Invalid, "2024-01-01"))
	assert.True(t, IsDue("2024-01-01", "2024-01-01"))
	assert.True(t, IsDue("2023-12-31", "2024-01-01"))
	assert.False(t, IsDue("2024-01-02", "2024-01-01"))
	assert.False(t, IsDue("2024-01-01", "not a date"))
}

func TestNextHelpers(t *testing.T) {
	p := entities.Plant{
		Watering:   entities.Schedule{IntervalDays: 3},
		Fertilizer: entities.Schedule{IntervalDays: 0},
		History:    []entities.CareEvent{ev(entities.CareWater, "2024-05-30")},
	}
	assert.Equal(t, "2024-06-02", NextWater(p))
	assert.Equal(t, Manual, NextFertilize(p))
}
