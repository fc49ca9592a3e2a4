package astro

import (
	"math"
	"time"
)

// tropCenturyDays is the length of a tropical century in days.
const tropCenturyDays = 36524.219878

// Precess rotates equatorial coordinates from the epoch given by jdFrom
// to the epoch given by jdTo (both Julian Dates).
//
// The unit vector built from RA/Dec is rotated through a 3x3 matrix whose
// coefficients are a third-order polynomial in tropical centuries since
// B1950 and the elapsed interval.
func Precess(rd RADec, jdFrom, jdTo float64) RADec {
	t0 := (jdFrom - B1950) / tropCenturyDays // tropical centuries since B1950.0
	t := (jdTo - jdFrom) / tropCenturyDays   // tropical centuries from start to end epoch

	var rot [3][3]float64
	rot[0][0] = 1.0 - ((29696.0+26.0*t0)*t*t-13.0*t*t*t)*1e-8
	rot[1][0] = ((2234941.0+1355.0*t0)*t - 676.0*t*t + 221.0*t*t*t) * 1e-8
	rot[2][0] = ((971690.0-414.0*t0)*t + 207.0*t*t + 96.0*t*t*t) * 1e-8
	rot[0][1] = -rot[1][0]
	rot[1][1] = 1.0 - ((24975.0+30.0*t0)*t*t-15.0*t*t*t)*1e-8
	rot[2][1] = -((10858.0 + 2.0*t0) * t * t) * 1e-8
	rot[0][2] = -rot[2][0]
	rot[1][2] = rot[2][1]
	rot[2][2] = 1.0 - ((4721.0-4.0*t0)*t*t)*1e-8

	// Spherical to rectangular
	raRad := degToRad(rd.RAHours * 15.0)
	decRad := degToRad(rd.DecDeg)
	x := math.Cos(raRad) * math.Cos(decRad)
	y := math.Sin(raRad) * math.Cos(decRad)
	z := math.Sin(decRad)

	// Rotate
	xp := rot[0][0]*x + rot[0][1]*y + rot[0][2]*z
	yp := rot[1][0]*x + rot[1][1]*y + rot[1][2]*z
	zp := rot[2][0]*x + rot[2][1]*y + rot[2][2]*z

	// Back to spherical, resolving the RA quadrant from the signs of the
	// rectangular components.
	raDeg := radToDeg(math.Atan(yp / xp))
	if xp < 0.0 {
		raDeg += 180.0
	} else if yp < 0.0 && xp > 0.0 {
		raDeg += 360.0
	}

	return RADec{
		RAHours: raDeg / 15.0,
		DecDeg:  radToDeg(math.Asin(clamp1(zp))),
	}
}

// EquatorialToHorizontal converts equatorial coordinates to horizontal
// coordinates for a given observer and time. No atmospheric refraction is
// applied. If fromJ2000 is true the coordinates are first precessed from
// the J2000 epoch to the epoch of the given time.
func EquatorialToHorizontal(rd RADec, obs Observer, t time.Time, fromJ2000 bool) AzAlt {
	if fromJ2000 {
		rd = Precess(rd, J2000, JulianDateTime(t))
	}

	lstDeg := LocalSiderealTime(t, obs.LonDeg)

	// Hour angle
	haDeg := Modulo(lstDeg-rd.RAHours*15.0, 360.0)

	decRad := degToRad(rd.DecDeg)
	latRad := degToRad(obs.LatDeg)
	haRad := degToRad(haDeg)

	altRad := math.Asin(clamp1(math.Sin(decRad)*math.Sin(latRad) +
		math.Cos(decRad)*math.Cos(latRad)*math.Cos(haRad)))

	// Azimuth from the ambiguous acos form, resolved into 0-360 by the
	// sign of sin(hour angle).
	a := radToDeg(math.Acos(clamp1((math.Sin(decRad) - math.Sin(altRad)*math.Sin(latRad)) /
		(math.Cos(altRad) * math.Cos(latRad)))))
	azDeg := a
	if math.Sin(haRad) >= 0.0 {
		azDeg = 360.0 - a
	}

	return AzAlt{
		AzDeg:  Modulo(azDeg, 360.0),
		AltDeg: radToDeg(altRad),
	}
}

// HorizontalToEquatorial converts horizontal coordinates back to
// equatorial coordinates (epoch of the given time) for an observer.
//
// The hour angle is recovered with atan2 rather than the historical acos
// form, which is ill-conditioned near the meridian.
func HorizontalToEquatorial(aa AzAlt, obs Observer, t time.Time) RADec {
	lstDeg := LocalSiderealTime(t, obs.LonDeg)

	altRad := degToRad(aa.AltDeg)
	azRad := degToRad(aa.AzDeg)
	latRad := degToRad(obs.LatDeg)

	sinDec := math.Sin(latRad)*math.Sin(altRad) +
		math.Cos(latRad)*math.Cos(altRad)*math.Cos(azRad)
	decRad := math.Asin(clamp1(sinDec))

	y := -math.Cos(altRad) * math.Cos(latRad) * math.Sin(azRad)
	x := math.Sin(altRad) - math.Sin(latRad)*sinDec
	haRad := math.Atan2(y, x)

	return RADec{
		RAHours: Modulo((lstDeg-radToDeg(haRad))/15.0, 24.0),
		DecDeg:  radToDeg(decRad),
	}
}
