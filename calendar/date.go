package calendar

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strings"
	"time"
)

// Date represents a proleptic calendar date with fractional time of day. It
// is a plain value type: construct one with field names, [At], [DateOf], or
// [ParseDate], and interpret it under a [System]. The zero Date is not a
// valid date (its month and day are 0).
type Date struct {
	// Year in astronomical numbering: year 0 is 1 BCE, −1 is 2 BCE.
	Year int
	// Month from 1 (January) through 12 (December).
	Month int
	// Day of the month, bounded by Month and Year under the selected
	// System.
	Day int
	// Hour is the time of day in [0, 24), including any fraction.
	Hour float64
}

// At constructs a Date from discrete clock fields.
func At(year, month, day, hour, minute int, sec float64) Date {
	return Date{
		Year:  year,
		Month: month,
		Day:   day,
		Hour:  float64(hour) + float64(minute)/60 + sec/3600,
	}
}

// DateOf returns the Date for the instant t in t's location.
func DateOf(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
		Hour: float64(t.Hour()) +
			float64(t.Minute())/60 +
			(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600,
	}
}

// Validate returns nil if d is a real calendar date under system, and an
// [ErrInvalidDate] error otherwise. Out-of-range fields are never rolled
// over into neighboring months or days.
func (d Date) Validate(system System) error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf(
			"%w: month %d out of range [1, 12]", ErrInvalidDate, d.Month,
		)
	}
	if last := system.DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > last {
		return fmt.Errorf(
			"%w: day %d out of range [1, %d] for month %d of year %d in the %v calendar",
			ErrInvalidDate, d.Day, last, d.Month, d.Year, system,
		)
	}
	if math.IsNaN(d.Hour) || d.Hour < 0 || d.Hour >= 24 {
		return fmt.Errorf(
			"%w: hour %v out of range [0, 24)", ErrInvalidDate, d.Hour,
		)
	}
	return nil
}

// Clock splits d's fractional hour into clock fields, rounding to the
// nearest nanosecond.
func (d Date) Clock() (hour, minute, sec, nsec int) {
	const dayNS = 24 * int64(time.Hour)
	total := int64(math.Round(d.Hour * float64(time.Hour)))
	if total >= dayNS {
		// An Hour just under 24 can round up to the next day; pin it.
		total = dayNS - 1
	}
	hour = int(total / int64(time.Hour))
	total %= int64(time.Hour)
	minute = int(total / int64(time.Minute))
	total %= int64(time.Minute)
	sec = int(total / int64(time.Second))
	nsec = int(total % int64(time.Second))
	return hour, minute, sec, nsec
}

// String returns d in the canonical form "2000-01-01T12:00:00", with a
// leading sign for negative astronomical years and fractional seconds only
// when present.
func (d Date) String() string {
	hour, minute, sec, nsec := d.Clock()
	sign, year := "", d.Year
	if year < 0 {
		sign, year = "-", -year
	}
	out := fmt.Sprintf(
		"%s%04d-%02d-%02dT%02d:%02d:%02d",
		sign, year, d.Month, d.Day, hour, minute, sec,
	)
	if nsec != 0 {
		out += strings.TrimRight(fmt.Sprintf(".%09d", nsec), "0")
	}
	return out
}

// MarshalJSON implements the json.Marshaler interface. The date is a quoted
// string in the canonical form returned by [Date.String].
func (d Date) MarshalJSON() ([]byte, error) {
	s := d.String()
	b := make([]byte, 0, len(s)+len(`""`))
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must be
// a quoted string in a form accepted by [ParseDate].
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf(
			"%w: cannot parse %s as a calendar date", ErrInvalidDate, data,
		)
	}
	date, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// Scan implements sql.Scanner so Dates can be read from databases
// transparently. Database types that map to string, []byte, and time.Time
// are supported.
func (d *Date) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		// An empty value from a table leaves a null Date.
		if src == "" {
			return nil
		}
		date, err := ParseDate(src)
		if err != nil {
			return err
		}
		*d = date
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return d.Scan(string(src))
	case time.Time:
		*d = DateOf(src)
	default:
		return fmt.Errorf(
			"%w: unable to scan type %T into Date", ErrInvalidArgument, src,
		)
	}
	return nil
}

// Value implements sql.Valuer so that Dates can be written to databases
// transparently. Dates map to their canonical string form.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
