// Package rtime provides a UTC timeline point with microsecond
// resolution and a companion signed duration, the base types every
// other package in this module builds on for scan times, purge
// windows, and NIDS wire timestamps.
package rtime

import (
	"fmt"
	"time"
)

// Time is a point on the UTC timeline rounded to microsecond
// resolution, matching the precision radar message timestamps carry.
type Time struct {
	t time.Time
}

// Epoch is the zero value of Time: 1970-01-01T00:00:00Z.
var Epoch = Time{t: time.Unix(0, 0).UTC()}

// New builds a Time from calendar fields plus a fractional second in
// [0, 1). Out-of-range component values roll over the same way
// time.Date does.
func New(year int, month time.Month, day, hour, minute, second int, fractional float64) Time {
	nanos := int(fractional * 1e9)
	return Time{t: time.Date(year, month, day, hour, minute, second, nanos, time.UTC).Round(time.Microsecond)}
}

// FromEpochSeconds builds a Time from integer epoch seconds plus a
// fractional-second remainder.
func FromEpochSeconds(epochSeconds int64, fractional float64) Time {
	sec := time.Unix(epochSeconds, 0).UTC()
	return Time{t: sec.Add(time.Duration(fractional * float64(time.Second))).Round(time.Microsecond)}
}

// Parse builds a Time from a value formatted with a Go reference-time
// layout string (the format/value pair named in the spec).
func Parse(layout, value string) (Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return Time{}, fmt.Errorf("rtime: parse %q with layout %q: %w", value, layout, err)
	}
	return Time{t: t.UTC().Round(time.Microsecond)}, nil
}

// Now returns the current wall-clock time rounded to microseconds.
func Now() Time { return Time{t: time.Now().UTC().Round(time.Microsecond)} }

// Year returns the calendar year.
func (tm Time) Year() int { return tm.t.Year() }

// Month returns the calendar month.
func (tm Time) Month() time.Month { return tm.t.Month() }

// Day returns the day of month.
func (tm Time) Day() int { return tm.t.Day() }

// Hour returns the hour of day, 0-23.
func (tm Time) Hour() int { return tm.t.Hour() }

// Minute returns the minute of hour.
func (tm Time) Minute() int { return tm.t.Minute() }

// Second returns the second of minute.
func (tm Time) Second() int { return tm.t.Second() }

// Fractional returns the sub-second remainder in [0, 1).
func (tm Time) Fractional() float64 {
	return float64(tm.t.Nanosecond()) / 1e9
}

// EpochSeconds returns the integer number of seconds since the epoch,
// truncating any fractional remainder.
func (tm Time) EpochSeconds() int64 { return tm.t.Unix() }

// Std returns the underlying standard-library time, for formatting or
// interop with packages that expect one.
func (tm Time) Std() time.Time { return tm.t }

// Before reports whether tm is strictly earlier than o.
func (tm Time) Before(o Time) bool { return tm.t.Before(o.t) }

// After reports whether tm is strictly later than o.
func (tm Time) After(o Time) bool { return tm.t.After(o.t) }

// Equal reports whether tm and o denote the same instant.
func (tm Time) Equal(o Time) bool { return tm.t.Equal(o.t) }

// Sub returns the signed duration tm - o.
func (tm Time) Sub(o Time) Duration {
	return Duration{ms: tm.t.Sub(o.t).Milliseconds()}
}

// Plus returns tm advanced (or retreated, for a negative duration) by d.
func (tm Time) Plus(d Duration) Time {
	return Time{t: tm.t.Add(d.Std()).Round(time.Microsecond)}
}

// Format renders tm using a Go reference-time layout string.
func (tm Time) Format(layout string) string { return tm.t.Format(layout) }

// String renders tm in RFC3339 with microsecond precision.
func (tm Time) String() string { return tm.t.Format("2006-01-02T15:04:05.000000Z") }
