// Package ephem provides low-precision analytic ephemerides for the Sun
// and Moon, and the truncated-series Earth state vector.
package ephem

import (
	"math"
	"time"

	"github.com/litescript/ls-radiosky/internal/astro"
)

// SunPosition calculates the topocentric horizontal and equatorial
// coordinates of the Sun for an observer at the given time.
//
// Mean longitude plus the equation of center give the ecliptic longitude
// (latitude taken as zero), which is rotated through the obliquity into
// equatorial coordinates. Accurate to roughly 0.01 degrees for dates
// between 1950 and 2050.
func SunPosition(t time.Time, obs astro.Observer) (astro.AzAlt, astro.RADec) {
	n := astro.JulianDateTime(t) - astro.J2000 // days since J2000, including fraction

	// Mean longitude, corrected for aberration, and mean anomaly
	l := astro.Modulo(280.461+0.9856474*n, 360.0)
	g := astro.Modulo(357.5291+0.98560028*n, 360.0)
	gr := g * math.Pi / 180.0

	// Ecliptic longitude: mean longitude plus equation of center
	la := l + 1.9148*math.Sin(gr) + 0.0200*math.Sin(2.0*gr) + 0.0003*math.Sin(3.0*gr)

	// Obliquity of the ecliptic
	e := 23.4393 - 3.563e-7*n

	er := e * math.Pi / 180.0
	lr := la * math.Pi / 180.0

	ra := math.Atan2(math.Cos(er)*math.Sin(lr), math.Cos(lr))
	dec := math.Asin(math.Sin(er) * math.Sin(lr))

	rd := astro.RADec{
		RAHours: astro.Modulo(ra*180.0/math.Pi, 360.0) / 15.0,
		DecDeg:  dec * 180.0 / math.Pi,
	}
	aa := astro.EquatorialToHorizontal(rd, obs, t, false)
	return aa, rd
}

// Sunrise calculates sunrise and sunset times for the calendar date of t
// (UTC) at the given observer location, using the single-pass sunrise
// equation with the standard -0.833 degree altitude. Accurate to within a
// couple of minutes. During polar day or night the hour angle saturates
// and both times collapse toward the solar transit.
func Sunrise(t time.Time, obs astro.Observer) (rise, set time.Time) {
	utc := t.UTC()
	midnight := astro.JulianDate(utc.Year(), int(utc.Month()), utc.Day(), 0, 0, 0)
	n := math.Ceil(midnight - 2451545.0 + (69.184 / 86400.0))

	// Mean solar time
	jStar := n - obs.LonDeg/360.0

	// Solar mean anomaly
	m := astro.Modulo(357.5291+0.98560028*jStar, 360.0)
	mRad := m * math.Pi / 180.0

	// Equation of the center
	c := 1.9148*math.Sin(mRad) + 0.02*math.Sin(2.0*mRad) + 0.0003*math.Sin(3.0*mRad)

	// Ecliptic longitude
	lambda := astro.Modulo(m+c+180.0+102.9372, 360.0)
	lambdaRad := lambda * math.Pi / 180.0

	// Solar transit
	jTransit := 2451545.0 + jStar + 0.0053*math.Sin(mRad) - 0.0069*math.Sin(2.0*lambdaRad)

	// Declination of the Sun
	const tiltRad = 23.4397 * math.Pi / 180.0
	sunDecRad := math.Asin(math.Sin(lambdaRad) * math.Sin(tiltRad))

	// Hour angle for the -0.833 degree standard altitude; the quotient is
	// clamped so polar day/night saturate instead of producing NaN.
	latRad := obs.LatDeg * math.Pi / 180.0
	q := (math.Sin(-0.833*math.Pi/180.0) - math.Sin(latRad)*math.Sin(sunDecRad)) /
		(math.Cos(latRad) * math.Cos(sunDecRad))
	if q > 1.0 {
		q = 1.0
	} else if q < -1.0 {
		q = -1.0
	}
	omega0 := math.Acos(q) * 180.0 / math.Pi

	rise = astro.JulianDateToTime(jTransit - omega0/360.0)
	set = astro.JulianDateToTime(jTransit + omega0/360.0)
	return rise, set
}
