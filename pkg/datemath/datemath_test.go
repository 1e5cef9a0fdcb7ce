package datemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddDays(t *testing.T) {
	cases := []struct {
		name string
		in   string
		days int
		want string
	}{
		{"same month", "2024-01-10", 5, "2024-01-15"},
		{"zero", "2024-06-30", 0, "2024-06-30"},
		{"month boundary", "2024-01-30", 3, "2024-02-02"},
		{"leap day", "2024-02-28", 1, "2024-02-29"},
		{"non leap year", "2023-02-28", 1, "2023-03-01"},
		{"year boundary", "2023-12-30", 5, "2024-01-04"},
		{"negative", "2024-03-01", -1, "2024-02-29"},
		{"us dst start", "2024-03-09", 1, "2024-03-10"},
		{"eu dst end", "2024-10-26", 2, "2024-10-28"},
		{"long interval", "2024-01-01", 366, "2025-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddDays(tc.in, tc.days))
		})
	}
}

func TestAddDays_InvalidInput(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2024/01/01", "2024-13-01", "2024-02-30"} {
		assert.Equal(t, Invalid, AddDays(in, 3), "input %q", in)
	}
}

func TestAddDays_IgnoresLocalZone(t *testing.T) {
	t.Setenv("TZ", "America/New_York")
	assert.Equal(t, "2024-11-04", AddDays("2024-11-02", 2))
}
