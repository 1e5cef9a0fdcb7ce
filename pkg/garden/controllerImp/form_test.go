package controllerImp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseInt_JSON(t *testing.T) {
	cases := map[string]int{
		`{"pot_size_cm": 12}`:     12,
		`{"pot_size_cm": "12"}`:   12,
		`{"pot_size_cm": "big"}`:  0,
		`{"pot_size_cm": 1.5}`:    0,
		`{"pot_size_cm": null}`:   0,
		`{"pot_size_cm": true}`:   0,
		`{"pot_size_cm": [1]}`:    0,
		`{"pot_size_cm": -3}`:     -3,
		`{"name": "no pot size"}`: 0,
	}
	for in, want := range cases {
		var f gardenForm
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, int(f.PotSizeCM), in)
	}
}

func TestLooseInt_Param(t *testing.T) {
	var n looseInt
	require.NoError(t, n.UnmarshalParam("7"))
	assert.Equal(t, looseInt(7), n)
	require.NoError(t, n.UnmarshalParam("seven"))
	assert.Equal(t, looseInt(0), n)
}

func TestGardenForm_Plant(t *testing.T) {
	f := gardenForm{Name: "Aloe", PotSizeCM: 9, WateringInterval: 10, FertilizerInterval: -1, Type: "water"}
	p := f.plant()
	assert.Equal(t, "Aloe", p.Name)
	assert.Equal(t, 9, p.PotSizeCM)
	assert.Equal(t, 10, p.Watering.IntervalDays)
	assert.Equal(t, -1, p.Fertilizer.IntervalDays)
	assert.Zero(t, p.ID)
	assert.Empty(t, p.History)
}
