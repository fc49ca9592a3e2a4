package astro

import (
	"math"
	"time"
)

// Standard reference epochs as Julian Dates. These are pure calendar
// arithmetic (J2000.0 = 2000-01-01 12:00 UT, B1950 = 1949-12-31 22:09 UT)
// and are kept as compile-time constants so no initialization is needed.
const (
	J2000 = 2451545.0
	B1950 = 2433282.0 + 22.0/24.0 - 0.5 + 9.0/(24.0*60.0)
)

// unixEpochJD is the Julian Date of 1970-01-01 00:00 UTC.
const unixEpochJD = 2440587.5

// JulianDate calculates the Julian Date (days since January 1, 4713 BC)
// from a Gregorian calendar date. The integer-arithmetic formula is valid
// across the whole Gregorian range; inputs are not range checked.
func JulianDate(year, month, day, hour, minute, second int) float64 {
	julianDay := (1461*(year+4800+(month-14)/12))/4 +
		(367*(month-2-12*((month-14)/12)))/12 -
		(3*((year+4900+(month-14)/12)/100))/4 +
		day - 32075

	return float64(julianDay) +
		(float64(hour)/24.0 - 0.5) +
		float64(minute)/(24.0*60.0) +
		float64(second)/(24.0*60.0*60.0)
}

// JulianDateTime calculates the Julian Date for a time.Time, via its UTC
// calendar fields. Sub-second resolution is preserved.
func JulianDateTime(t time.Time) float64 {
	utc := t.UTC()
	jd := JulianDate(utc.Year(), int(utc.Month()), utc.Day(),
		utc.Hour(), utc.Minute(), utc.Second())
	return jd + float64(utc.Nanosecond())/(86400.0*1e9)
}

// ModifiedJulianDate calculates the Modified Julian Date for a time.Time.
func ModifiedJulianDate(t time.Time) float64 {
	return JulianDateTime(t) - 2400000.5
}

// JulianDateToTime converts a Julian Date back to a time.Time (UTC).
func JulianDateToTime(jd float64) time.Time {
	secs := (jd - unixEpochJD) * 86400.0
	s := math.Floor(secs)
	ns := (secs - s) * 1e9
	return time.Unix(int64(s), int64(ns)).UTC()
}

// LocalSiderealTime calculates the local mean sidereal time in degrees
// (0-360) for a UTC time and east-positive longitude.
//
// Uses the approximate GMST formula 100.46 + 0.985647 d, where 100.46 is
// the GMST offset at 0h UT on 1 Jan 2000 and 0.985647 the number of
// degrees over 360 the Earth rotates per solar day. Accurate to about
// 0.3 arcseconds for modern dates; not valid far from J2000.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	jd := JulianDateTime(t)

	d := jd - J2000
	f := math.Mod(jd, 1.0)   // fractional part is decimal days
	ut := (f + 0.5) * 24.0   // universal time in decimal hours

	return Modulo(100.46+0.985647*d+lonDeg+(360.0/24.0)*ut, 360.0)
}

// LSTAndRAToLongitude returns the east-positive longitude at which a
// target with the given right ascension transits when the local sidereal
// time is lst degrees. Used to place a target's sub-point on a map.
func LSTAndRAToLongitude(lstDeg, raHours float64) float64 {
	lon := lstDeg - raHours*15.0
	if lon < -180.0 {
		lon += 360.0
	} else if lon > 180.0 {
		lon -= 360.0
	}
	return -lon
}
