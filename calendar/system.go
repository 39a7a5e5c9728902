package calendar

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// System selects the civil-calendar leap-year rule applied when
// interpreting calendar dates.
type System uint8

const (
	// Julian applies the proleptic Julian calendar rule: every fourth year
	// is a leap year.
	Julian System = iota

	// Gregorian applies the proleptic Gregorian calendar rule: century
	// years are leap years only when divisible by 400.
	Gregorian
)

// systemNames maps the names accepted by ParseSystem.
var systemNames = map[string]System{
	"julian":    Julian,
	"gregorian": Gregorian,
}

// String returns the name of s.
func (s System) String() string {
	switch s {
	case Julian:
		return "julian"
	case Gregorian:
		return "gregorian"
	}
	return fmt.Sprintf("calendar.System(%d)", uint8(s))
}

// SystemFor maps a host-side calendar selector to a System. The only valid
// values are 0 (Julian) and 1 (Gregorian), following the flag convention of
// ephemeris libraries. Any other value returns an [ErrInvalidArgument]
// error; boundary layers should apply this mapping before reaching the
// converter.
func SystemFor(flag int) (System, error) {
	switch flag {
	case 0:
		return Julian, nil
	case 1:
		return Gregorian, nil
	}
	return 0, fmt.Errorf(
		"%w: calendar flag must be 0 or 1; got %d", ErrInvalidArgument, flag,
	)
}

// ParseSystem returns the System named by name, case-insensitively. Returns
// an [ErrInvalidArgument] error for an unknown name.
func ParseSystem(name string) (System, error) {
	if s, ok := systemNames[strings.ToLower(name)]; ok {
		return s, nil
	}
	names := maps.Keys(systemNames)
	slices.Sort(names)
	return 0, fmt.Errorf(
		"%w: unknown calendar system %q; expected %v",
		ErrInvalidArgument, name, strings.Join(names, " or "),
	)
}

// IsLeapYear reports whether year contains a leap day under s. Years follow
// astronomical numbering: year 0 exists (and is a leap year in both
// calendars), and negative years represent BCE dates.
func (s System) IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if s == Julian {
		return true
	}
	return year%100 != 0 || year%400 == 0
}

// monthDays contains the length of each month in a common year, indexed by
// month number.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month of year under
// s, or 0 if month is outside [1, 12].
func (s System) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && s.IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}
