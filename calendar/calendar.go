// Package calendar converts proleptic calendar dates to and from continuous
// Julian day numbers.
//
// A Julian day number counts days since noon UT on 1 January 4713 BCE in the
// proleptic Julian calendar, the astronomers' convention for date arithmetic
// free of calendar irregularities. Conversions are supported under both the
// Julian and Gregorian leap-year rules, selected by [System], and extend
// both calendars indefinitely before their historical adoption.
//
// All operations are pure functions over value types: no state is shared,
// nothing blocks, and every function is safe for unrestricted concurrent
// use.
//
// Out-of-range date fields are rejected with [ErrInvalidDate], never
// normalized; use the lower-level [github.com/theory/julianday/calendar/jdn]
// package for unchecked arithmetic that folds overflowing fields into the
// day count.
package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/theory/julianday/calendar/jdn"
)

var (
	// ErrInvalidDate is returned for calendar fields outside their valid
	// bounds, such as day 30 of February.
	ErrInvalidDate = errors.New("invalid date")

	// ErrDomain is returned for non-finite numeric input.
	ErrDomain = errors.New("domain")

	// ErrInvalidArgument is returned for a malformed calendar-system
	// selector.
	ErrInvalidArgument = errors.New("invalid argument")
)

// JulianDay is a continuous count of days since noon UT on 1 January 4713
// BCE proleptic Julian, with the fractional part encoding time of day. The
// integer day count is exact over years −9999 through 9999; sub-millisecond
// time of day survives round trips for values within five million days of
// [J2000].
type JulianDay float64

const (
	// J2000 is the J2000.0 epoch, 2000-01-01T12:00 UT Gregorian.
	J2000 = JulianDay(jdn.J2000)

	// UnixEpoch is 1970-01-01T00:00 UT.
	UnixEpoch = JulianDay(jdn.UnixEpoch)

	// MJDEpoch is the Modified Julian Date epoch, 1858-11-17T00:00 UT.
	MJDEpoch = JulianDay(jdn.MJDEpoch)

	// GregorianReform is 1582-10-15 Gregorian, the first day of the
	// reformed civil calendar.
	GregorianReform = JulianDay(jdn.GregorianReform)
)

// ToJulianDay converts date to a Julian day number under system. Returns an
// [ErrInvalidDate] error if the date fields are out of bounds for system;
// fields are never silently normalized.
func ToJulianDay(date Date, system System) (JulianDay, error) {
	if err := date.Validate(system); err != nil {
		return 0, err
	}
	return JulianDay(jdn.ToJulianDay(
		date.Year, date.Month, date.Day, date.Hour, system == Gregorian,
	)), nil
}

// FromJulianDay converts a Julian day number to the calendar date containing
// it under system. Returns an [ErrDomain] error for NaN or infinite jd; any
// finite value is valid, though precision tapers off far outside the
// historical range (see [JulianDay]).
func FromJulianDay(jd JulianDay, system System) (Date, error) {
	day := float64(jd)
	if math.IsNaN(day) || math.IsInf(day, 0) {
		return Date{}, fmt.Errorf(
			"%w: julian day must be finite; got %v", ErrDomain, day,
		)
	}
	year, month, dom, hour := jdn.FromJulianDay(day, system == Gregorian)
	return Date{Year: year, Month: month, Day: dom, Hour: hour}, nil
}

// Weekday returns the weekday of the civil day containing jd.
func (jd JulianDay) Weekday() time.Weekday {
	// jdn numbers weekdays from Monday, time.Weekday from Sunday.
	return time.Weekday((jdn.DayOfWeek(float64(jd)) + 1) % 7)
}

// MJD returns jd as a Modified Julian Date.
func (jd JulianDay) MJD() float64 {
	return float64(jd - MJDEpoch)
}

// Time returns jd as a [time.Time] in UTC. Resolution is limited by the
// float64 fraction to roughly a tenth of a millisecond in the current era.
func (jd JulianDay) Time() time.Time {
	sec := float64(jd-UnixEpoch) * jdn.SecondsPerDay
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC()
}

// FromTime returns the Julian day of the instant t. Leap seconds are not
// modeled; like Unix time itself, the count assumes uniform 86400-second
// days.
func FromTime(t time.Time) JulianDay {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return UnixEpoch + JulianDay(sec/jdn.SecondsPerDay)
}
