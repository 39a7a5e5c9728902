package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDate parses src as a calendar date. Accepted forms, tried in order
// of increasing precision:
//
//	2000-01-01
//	2000-01-01T12:00
//	2000-01-01T12:00:00
//	2000-01-01T12:00:00.5
//
// A space may stand in for the "T". The year may carry a leading "-" or "+"
// for astronomical numbering, so "-4712-01-01T12:00" names the Julian day
// epoch. Times are understood as UT; zone designators are not supported.
//
// Clock fields are range-checked during parsing, but whether the date
// itself exists depends on the calendar rule, so pass the result to
// [Date.Validate] with a [System] before converting it.
func ParseDate(src string) (Date, error) {
	parseErr := fmt.Errorf(
		"%w: cannot parse %q as a calendar date", ErrInvalidDate, src,
	)

	s := src
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	datePart, timePart := s, ""
	if i := strings.IndexAny(s, "T "); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
	}

	fields := strings.Split(datePart, "-")
	if len(fields) != 3 {
		return Date{}, parseErr
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil || fields[0] == "" {
		return Date{}, parseErr
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return Date{}, parseErr
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return Date{}, parseErr
	}

	date := Date{Year: sign * year, Month: month, Day: day}
	if timePart == "" {
		return date, nil
	}

	hour, err := parseClock(timePart)
	if err != nil {
		return Date{}, parseErr
	}
	date.Hour = hour
	return date, nil
}

// parseClock parses "HH:MM", "HH:MM:SS", or "HH:MM:SS.fff" into a
// fractional hour. Each field is bounds-checked so that, say, minute 99
// cannot silently roll over into the hour.
func parseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: malformed clock %q", ErrInvalidDate, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: bad hour %q", ErrInvalidDate, parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: bad minute %q", ErrInvalidDate, parts[1])
	}
	sec := 0.0
	if len(parts) == 3 {
		sec, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || sec < 0 || sec >= 60 {
			return 0, fmt.Errorf("%w: bad second %q", ErrInvalidDate, parts[2])
		}
	}
	return float64(hour) + float64(minute)/60 + sec/3600, nil
}
