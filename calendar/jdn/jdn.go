// Package jdn implements the raw astronomical Julian day arithmetic: the
// polynomial mapping from proleptic calendar fields to a continuous day
// count and its exact inverse.
//
// Functions in this package perform no validation. Out-of-range fields are
// folded into the day count arithmetically (month 13 lands in the following
// January, day 32 rolls into the next month, and so on). The calendar
// package layers bounds checking and the error taxonomy on top; use it
// unless unchecked arithmetic is what you want.
//
// The integer day count is exact for years −9999 through 9999 in either
// calendar. The fractional part carries time of day at a resolution of
// about 1e-9 day (under a tenth of a millisecond) for day counts within
// five million days of J2000; beyond that, precision degrades smoothly
// with the float64 mantissa.
package jdn

import "math"

const (
	// J2000 is the Julian day of the J2000.0 epoch, 2000-01-01T12:00 UT
	// in the Gregorian calendar.
	J2000 = 2451545.0

	// UnixEpoch is the Julian day of 1970-01-01T00:00 UT.
	UnixEpoch = 2440587.5

	// MJDEpoch is the Julian day of the Modified Julian Date epoch,
	// 1858-11-17T00:00 UT. MJD = JD − MJDEpoch.
	MJDEpoch = 2400000.5

	// GregorianReform is the Julian day of 1582-10-15 Gregorian, the first
	// day of the reformed civil calendar. The preceding civil day was
	// 1582-10-04 Julian.
	GregorianReform = 2299160.5

	// HoursPerDay and SecondsPerDay relate the fractional day to clock
	// time. Leap seconds are not modeled; a day is uniformly 86400 SI
	// seconds here.
	HoursPerDay   = 24
	SecondsPerDay = 86400
)

// ToJulianDay converts calendar fields to a Julian day number. January and
// February count as months 13 and 14 of the previous year, so the leap day
// falls at the end of the adjusted year. When gregorian is true the century
// correction is applied, giving the proleptic Gregorian calendar; otherwise
// the date is read as proleptic Julian. Years follow astronomical
// numbering: year 0 exists, and 1 BCE is year 0, 2 BCE is year −1.
func ToJulianDay(year, month, day int, hour float64, gregorian bool) float64 {
	u := float64(year)
	if month < 3 {
		u--
	}
	u0 := u + 4712
	u1 := float64(month) + 1
	if u1 < 4 {
		u1 += 12
	}
	// The 1e-6 guards the month polynomial against representation error
	// in 30.6*u1 landing just under an integer.
	jd := math.Floor(u0*365.25) +
		math.Floor(30.6*u1+1e-6) +
		float64(day) + hour/HoursPerDay - 63.5
	if gregorian {
		u2 := math.Floor(math.Abs(u)/100) - math.Floor(math.Abs(u)/400)
		if u < 0 {
			u2 = -u2
		}
		jd = jd - u2 + 2
		if u < 0 && u/100 == math.Floor(u/100) && u/400 != math.Floor(u/400) {
			jd--
		}
	}
	return jd
}

// FromJulianDay converts a Julian day number back to calendar fields,
// inverting ToJulianDay for the same calendar flag. The returned hour is in
// [0, 24); the calendar day boundary sits at the half-integer day count,
// since Julian days begin at noon.
func FromJulianDay(jd float64, gregorian bool) (year, month, day int, hour float64) {
	u0 := jd + 32082.5
	if gregorian {
		u1 := u0 + math.Floor(u0/36525) - math.Floor(u0/146100) - 38
		if jd >= 1830691.5 {
			u1++
		}
		u0 = u0 + math.Floor(u1/36525) - math.Floor(u1/146100) - 38
	}
	u2 := math.Floor(u0 + 123)
	u3 := math.Floor((u2 - 122.2) / 365.25)
	u4 := math.Floor((u2 - math.Floor(365.25*u3)) / 30.6001)
	month = int(u4 - 1)
	if month > 12 {
		month -= 12
	}
	day = int(u2 - math.Floor(365.25*u3) - math.Floor(30.6001*u4))
	year = int(u3 + math.Floor((u4-2)/12) - 4800)
	hour = (jd - math.Floor(jd+0.5) + 0.5) * HoursPerDay
	return year, month, day, hour
}

// DayOfWeek returns the weekday of the civil day containing jd, numbered
// from 0 for Monday through 6 for Sunday.
func DayOfWeek(jd float64) int {
	return (int(math.Floor(jd-2433283.5))%7 + 7) % 7
}
