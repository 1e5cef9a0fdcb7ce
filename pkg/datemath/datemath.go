package datemath

import "time"

const (
	Layout = "2006-01-02"

	// Invalid is returned in place of a date that could not be parsed.
	Invalid = "invalid-date"
)

// Parse reads a YYYY-MM-DD date at midnight UTC.
func Parse(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays shifts a YYYY-MM-DD date by a signed number of calendar days.
// Arithmetic happens in UTC so DST transitions cannot move the result.
func AddDays(date string, days int) string {
	t, ok := Parse(date)
	if !ok {
		return Invalid
	}
	return t.AddDate(0, 0, days).Format(Layout)
}
