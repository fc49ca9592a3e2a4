package astro

import "math"

// North Galactic Pole in the J2000 equatorial frame, and the galactic
// longitude constants that fix the rotation between the frames.
const (
	ngpRADeg  = 192.8594813 // NGP right ascension, degrees
	ngpDecDeg = 27.1282511  // NGP declination, degrees
	lAscend   = 33.0        // ascending node of the galactic plane, degrees
	ncpLDeg   = 122.93129   // galactic longitude of the North Celestial Pole
)

// NorthGalacticPoleJ2000 returns the RA/Dec of the North Galactic Pole in
// the J2000 epoch.
func NorthGalacticPoleJ2000() RADec {
	return RADec{RAHours: ngpRADeg / 15.0, DecDeg: ngpDecDeg}
}

// EquatorialToGalactic converts J2000 equatorial coordinates to galactic
// longitude l and latitude b, both in degrees (l in 0-360).
func EquatorialToGalactic(rd RADec) (l, b float64) {
	raRad := degToRad(rd.RAHours * 15.0)
	decRad := degToRad(rd.DecDeg)
	ngpRaRad := degToRad(ngpRADeg)
	ngpDecRad := degToRad(ngpDecDeg)

	bRad := math.Asin(clamp1(math.Sin(ngpDecRad)*math.Sin(decRad) +
		math.Cos(ngpDecRad)*math.Cos(decRad)*math.Cos(raRad-ngpRaRad)))

	lRad := math.Atan2(math.Sin(decRad)-math.Sin(bRad)*math.Sin(ngpDecRad),
		math.Cos(decRad)*math.Cos(ngpDecRad)*math.Sin(raRad-ngpRaRad))

	b = radToDeg(bRad)
	l = radToDeg(lRad) + lAscend
	if l < 0.0 {
		l += 360.0
	}
	if l > 360.0 {
		l -= 360.0
	}
	return l, b
}

// GalacticToEquatorial converts galactic coordinates (degrees) to J2000
// equatorial coordinates. Round-tripping with EquatorialToGalactic agrees
// to better than 0.1 degrees; the rounded node constant limits it.
func GalacticToEquatorial(l, b float64) RADec {
	lRad := degToRad(l)
	bRad := degToRad(b)
	ngpRaRad := degToRad(ngpRADeg)
	ngpDecRad := degToRad(ngpDecDeg)
	ncpLRad := degToRad(ncpLDeg)

	decRad := math.Asin(clamp1(math.Sin(bRad)*math.Sin(ngpDecRad) +
		math.Cos(bRad)*math.Cos(ngpDecRad)*math.Cos(lRad-ncpLRad)))

	y := math.Sin(lRad - ncpLRad)
	x := math.Cos(lRad-ncpLRad)*math.Sin(ngpDecRad) - math.Tan(bRad)*math.Cos(ngpDecRad)
	raRad := math.Atan2(y, x) + (ngpRaRad - math.Pi)

	raHours := radToDeg(raRad) / 15.0
	if raHours < 0.0 {
		raHours += 24.0
	} else if raHours >= 24.0 {
		raHours -= 24.0
	}

	return RADec{RAHours: raHours, DecDeg: radToDeg(decRad)}
}
