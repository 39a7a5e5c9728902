package jdn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJulianDay(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name      string
		year      int
		month     int
		day       int
		hour      float64
		gregorian bool
		exp       float64
	}{
		{
			name: "jd_epoch",
			year: -4712, month: 1, day: 1, hour: 12,
			exp: 0,
		},
		{
			name: "j2000",
			year: 2000, month: 1, day: 1, hour: 12,
			gregorian: true,
			exp:       2451545,
		},
		{
			name: "j2000_evening",
			year: 2000, month: 1, day: 1, hour: 18,
			gregorian: true,
			exp:       2451545.25,
		},
		{
			name: "last_julian_day",
			year: 1582, month: 10, day: 4,
			exp: 2299159.5,
		},
		{
			name: "first_gregorian_day",
			year: 1582, month: 10, day: 15,
			gregorian: true,
			exp:       2299160.5,
		},
		{
			name: "unix_epoch",
			year: 1970, month: 1, day: 1,
			gregorian: true,
			exp:       UnixEpoch,
		},
		{
			name: "mjd_epoch",
			year: 1858, month: 11, day: 17,
			gregorian: true,
			exp:       MJDEpoch,
		},
		{
			name: "gregorian_leap_day",
			year: 2024, month: 2, day: 29, hour: 6,
			gregorian: true,
			exp:       2460369.75,
		},
		{
			name: "year_before_one",
			year: 0, month: 12, day: 31, hour: 12,
			gregorian: true,
			exp:       1721425,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			jd := ToJulianDay(tc.year, tc.month, tc.day, tc.hour, tc.gregorian)
			a.Equal(tc.exp, jd)

			// The inverse must reproduce the fields exactly.
			year, month, day, hour := FromJulianDay(jd, tc.gregorian)
			a.Equal(tc.year, year)
			a.Equal(tc.month, month)
			a.Equal(tc.day, day)
			a.InDelta(tc.hour, hour, 1e-6)
		})
	}
}

func TestCalendarReformGap(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// The day after 1582-10-04 Julian was 1582-10-15 Gregorian.
	before := ToJulianDay(1582, 10, 4, 0, false)
	after := ToJulianDay(1582, 10, 15, 0, true)
	a.Equal(1.0, after-before)
	a.Equal(GregorianReform, after)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Sweep a million days either side of J2000 in both calendars; here
	// the float64 grid is fine enough to hold the stated tolerance.
	for _, gregorian := range []bool{true, false} {
		for jd := J2000 - 1e6; jd <= J2000+1e6; jd += 17773.7591 {
			year, month, day, hour := FromJulianDay(jd, gregorian)
			back := ToJulianDay(year, month, day, hour, gregorian)
			a.InDelta(jd, back, 1e-9, "jd %v gregorian %v", jd, gregorian)
		}
	}

	// Out to five million days the grid itself coarsens toward 1e-9, so
	// allow a few ulps.
	for _, gregorian := range []bool{true, false} {
		for jd := J2000 - 5e6; jd <= J2000+5e6; jd += 77773.7591 {
			year, month, day, hour := FromJulianDay(jd, gregorian)
			back := ToJulianDay(year, month, day, hour, gregorian)
			a.InDelta(jd, back, 1e-8, "jd %v gregorian %v", jd, gregorian)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Successive calendar days map to successive day counts.
	for _, gregorian := range []bool{true, false} {
		prev := ToJulianDay(-101, 12, 31, 0, gregorian)
		end := prev + 150000
		for jd := prev + 1; jd < end; jd++ {
			year, month, day, hour := FromJulianDay(jd, gregorian)
			next := ToJulianDay(year, month, day, hour, gregorian)
			a.Equal(prev+1, next)
			prev = next
		}
	}
}

func TestCenturyCorrection(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// 1900 is a leap year in the Julian calendar only.
	feb28 := ToJulianDay(1900, 2, 28, 0, false)
	mar1 := ToJulianDay(1900, 3, 1, 0, false)
	a.Equal(2.0, mar1-feb28)

	feb28 = ToJulianDay(1900, 2, 28, 0, true)
	mar1 = ToJulianDay(1900, 3, 1, 0, true)
	a.Equal(1.0, mar1-feb28)

	// 2000 is a leap year in both.
	for _, gregorian := range []bool{true, false} {
		feb28 = ToJulianDay(2000, 2, 28, 0, gregorian)
		mar1 = ToJulianDay(2000, 3, 1, 0, gregorian)
		a.Equal(2.0, mar1-feb28)
	}
}

func TestUncheckedFieldsFold(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// The raw arithmetic normalizes rather than rejecting.
	a.Equal(
		ToJulianDay(2023, 13, 1, 0, true),
		ToJulianDay(2024, 1, 1, 0, true),
	)
	a.Equal(
		ToJulianDay(2023, 1, 32, 0, true),
		ToJulianDay(2023, 2, 1, 0, true),
	)
}

func TestDayOfWeek(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		jd   float64
		name string
		exp  int
	}{
		{J2000, "j2000_saturday", 5},
		{UnixEpoch, "unix_epoch_thursday", 3},
		{GregorianReform, "reform_friday", 4},
		{0, "jd_zero_monday", 0},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, DayOfWeek(tc.jd))
		})
	}
}

func TestWeekdayCycle(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for i := 0; i < 14; i++ {
		jd := J2000 + float64(i)
		exp := (5 + i) % 7
		a.Equal(exp, DayOfWeek(jd), fmt.Sprintf("offset %d", i))
	}
}
