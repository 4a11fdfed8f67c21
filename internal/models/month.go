package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonthFormat is returned when a month key cannot be parsed.
var ErrInvalidMonthFormat = errors.New("invalid month format, expected YYYY-MM")

// Month is the sole time key for budget data: a calendar month, normalized to
// the first day of the month at midnight UTC. Day-of-month precision is
// deliberately absent.
type Month struct {
	t time.Time
}

// NewMonth creates the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	return Month{t: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

// MonthOf normalizes an arbitrary timestamp to its containing Month.
func MonthOf(t time.Time) Month {
	u := t.UTC()
	return NewMonth(u.Year(), u.Month())
}

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonthFormat, s)
	}
	return MonthOf(t), nil
}

// Time returns the first day of the month at midnight UTC.
func (m Month) Time() time.Time {
	return m.t
}

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool {
	return m.t.IsZero()
}

// Previous returns the preceding calendar month.
func (m Month) Previous() Month {
	return MonthOf(m.t.AddDate(0, -1, 0))
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return MonthOf(m.t.AddDate(0, 1, 0))
}

// Equal reports whether both values denote the same calendar month.
func (m Month) Equal(other Month) bool {
	return m.t.Equal(other.t)
}

// Before reports whether m is strictly before other.
func (m Month) Before(other Month) bool {
	return m.t.Before(other.t)
}

// After reports whether m is strictly after other.
func (m Month) After(other Month) bool {
	return m.t.After(other.t)
}

// Start returns the inclusive lower bound of the month.
func (m Month) Start() time.Time {
	return m.t
}

// End returns the inclusive upper bound of the month: the last nanosecond of
// its final day. Month lengths (28-31 days, leap February) fall out of the
// calendar arithmetic.
func (m Month) End() time.Time {
	return m.t.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.End().Day()
}

// Contains reports whether the timestamp falls within the month, bounds
// inclusive.
func (m Month) Contains(t time.Time) bool {
	u := t.UTC()
	return !u.Before(m.Start()) && !u.After(m.End())
}

// String returns the canonical "YYYY-MM" key.
func (m Month) String() string {
	return m.t.Format("2006-01")
}

// MarshalJSON renders the month as its "YYYY-MM" key.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts a "YYYY-MM" key.
func (m *Month) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Value implements driver.Valuer; months are stored as their first-of-month
// timestamp so range queries and uniqueness work on any SQL backend.
func (m Month) Value() (driver.Value, error) {
	return m.t, nil
}

// Scan implements sql.Scanner.
func (m *Month) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*m = MonthOf(v)
		return nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			// sqlite stores timestamps in its own layout
			t, err = time.Parse("2006-01-02 15:04:05-07:00", v)
			if err != nil {
				t, err = time.Parse("2006-01-02 15:04:05", v)
			}
		}
		if err != nil {
			return fmt.Errorf("cannot scan %q into Month: %w", v, err)
		}
		*m = MonthOf(t)
		return nil
	case nil:
		*m = Month{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Month", value)
	}
}

// GormDataType tells gorm to store Month in a timestamp column.
func (Month) GormDataType() string {
	return "timestamptz"
}
