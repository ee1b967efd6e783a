// Package datetime is the civil date-time used for check-in and check-out values.
// Values have second precision and live in the application timezone.
package datetime

import (
	"database/sql/driver"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"time"
)

type DateTime struct {
	t time.Time
}

// Parse accepts exactly "YYYY-MM-DD HH:MM:SS". The parsed value must format
// back to the input, so single-digit fields and fractional seconds are rejected.
func Parse(value string) (DateTime, error) {
	t, err := timezone.Parse(constant.DateTimeLayout, value)
	if err != nil {
		return DateTime{}, failure.InvalidDateTime
	}

	t = t.Truncate(time.Second)
	if t.Format(constant.DateTimeLayout) != value {
		return DateTime{}, failure.InvalidDateTime
	}

	return DateTime{t: t}, nil
}

// MustParse is Parse for literals known to be well formed.
func MustParse(value string) DateTime {
	dt, err := Parse(value)
	if err != nil {
		panic(fmt.Sprintf("datetime: %q: %v", value, err))
	}

	return dt
}

func (d DateTime) Time() time.Time {
	return d.t
}

func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

func (d DateTime) String() string {
	return d.t.Format(constant.DateTimeLayout)
}

func (d DateTime) DateString() string {
	return d.t.Format(constant.DateLayout)
}

func (d DateTime) TimeString() string {
	return d.t.Format(constant.TimeLayout)
}

// AddDays moves the instant by n spans of 24 hours. No DST correction is made.
func (d DateTime) AddDays(n int) DateTime {
	return DateTime{t: d.t.Add(time.Duration(n) * constant.HoursPerDay * time.Hour)}
}

// DaysSince is the whole hours between other and d divided by 24, truncated toward zero.
func (d DateTime) DaysSince(other DateTime) int {
	hours := int(d.t.Sub(other.t) / time.Hour)

	return hours / constant.HoursPerDay
}

// AtNoon returns 12:00:00 of the same calendar date.
func (d DateTime) AtNoon() DateTime {
	return DateTime{t: time.Date(d.t.Year(), d.t.Month(), d.t.Day(), constant.CheckInHour, 0, 0, 0, d.t.Location())}
}

func (d DateTime) Before(other DateTime) bool {
	return d.t.Before(other.t)
}

func (d DateTime) After(other DateTime) bool {
	return d.t.After(other.t)
}

func (d DateTime) BeforeOrEqual(other DateTime) bool {
	return !d.t.After(other.t)
}

func (d DateTime) AfterOrEqual(other DateTime) bool {
	return !d.t.Before(other.t)
}

func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t)
}

// Scan reads TIMESTAMP columns. The stored wall clock is kept as application time.
func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.t = timezone.Reinterpret(v).Truncate(time.Second)

		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		d.t = time.Time{}

		return nil
	default:
		return fmt.Errorf("datetime: cannot scan %T", src)
	}
}

func (d *DateTime) scanString(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		t, rfcErr := time.Parse(time.RFC3339, value)
		if rfcErr != nil {
			return err
		}

		parsed = DateTime{t: timezone.Reinterpret(t).Truncate(time.Second)}
	}

	*d = parsed

	return nil
}

// Value writes the wall clock text, which Postgres casts into TIMESTAMP.
func (d DateTime) Value() (driver.Value, error) {
	return d.String(), nil
}
