package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOf_Normalizes(t *testing.T) {
	ts := time.Date(2024, time.July, 19, 15, 42, 13, 999, time.UTC)
	m := MonthOf(ts)

	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), m.Time())
	assert.Equal(t, "2024-07", m.String())
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, NewMonth(2024, time.February), m)

	_, err = ParseMonth("2024-13")
	assert.ErrorIs(t, err, ErrInvalidMonthFormat)

	_, err = ParseMonth("February 2024")
	assert.ErrorIs(t, err, ErrInvalidMonthFormat)
}

func TestMonth_PreviousNext(t *testing.T) {
	jan := NewMonth(2024, time.January)
	assert.Equal(t, NewMonth(2023, time.December), jan.Previous())
	assert.Equal(t, NewMonth(2024, time.February), jan.Next())

	dec := NewMonth(2024, time.December)
	assert.Equal(t, NewMonth(2025, time.January), dec.Next())
}

func TestMonth_Days(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  int
	}{
		{name: "31-day month", month: NewMonth(2024, time.July), want: 31},
		{name: "30-day month", month: NewMonth(2024, time.April), want: 30},
		{name: "leap February", month: NewMonth(2024, time.February), want: 29},
		{name: "non-leap February", month: NewMonth(2023, time.February), want: 28},
		{name: "century non-leap", month: NewMonth(1900, time.February), want: 28},
		{name: "quadricentennial leap", month: NewMonth(2000, time.February), want: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.month.Days())
		})
	}
}

// Month filtering must be exact at the boundaries: June 30 and August 1 are
// out, July 1 and July 15 are in.
func TestMonth_Contains(t *testing.T) {
	july := NewMonth(2024, time.July)

	dates := []struct {
		date time.Time
		in   bool
	}{
		{time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC), false},
		{time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC), true},
		{time.Date(2024, time.July, 31, 23, 59, 59, 0, time.UTC), true},
		{time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), false},
	}

	matched := 0
	for _, d := range dates {
		got := july.Contains(d.date)
		assert.Equal(t, d.in, got, "date %s", d.date)
		if got {
			matched++
		}
	}
	assert.Equal(t, 3, matched)
}

func TestMonth_Ordering(t *testing.T) {
	jun := NewMonth(2024, time.June)
	jul := NewMonth(2024, time.July)

	assert.True(t, jun.Before(jul))
	assert.True(t, jul.After(jun))
	assert.False(t, jun.Equal(jul))
	assert.True(t, jun.Equal(MonthOf(time.Date(2024, time.June, 28, 3, 0, 0, 0, time.UTC))))
}

func TestMonth_JSONRoundTrip(t *testing.T) {
	m := NewMonth(2024, time.November)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"2024-11"`, string(data))

	var decoded Month
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equal(decoded))
}

func TestMonth_ScanTime(t *testing.T) {
	var m Month
	require.NoError(t, m.Scan(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03", m.String())

	// mid-month timestamps normalize on the way in
	require.NoError(t, m.Scan(time.Date(2024, time.March, 17, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03", m.String())
}
