package ephem

import (
	"math"
	"time"

	"github.com/litescript/ls-radiosky/internal/astro"
)

const (
	degRad = math.Pi / 180.0
	radDeg = 180.0 / math.Pi
)

// moonDays returns the day number used by the lunar theory: days from
// 2000-01-01 00:00 UT (not noon), including the fraction.
func moonDays(t time.Time) float64 {
	utc := t.UTC()
	y := utc.Year()
	m := int(utc.Month())
	day := utc.Day()

	d := 367*y - 7*(y+(m+9)/12)/4 - 3*((y+(m-9)/7)/100+1)/4 + 275*m/9 + day - 730515

	return float64(d) + float64(utc.Hour())/24.0 +
		float64(utc.Minute())/(24.0*60.0) + float64(utc.Second())/(24.0*60.0*60.0)
}

// MoonPosition calculates the topocentric horizontal and equatorial
// coordinates of the Moon for an observer at the given time.
//
// A perturbed two-body Keplerian solution: orbital elements for the Sun
// and Moon, one-step eccentric anomaly, 12 longitude and 5 latitude
// perturbation terms, then a geocentric-to-topocentric parallax
// correction. Accurate to about 4 arcminutes.
func MoonPosition(t time.Time, obs astro.Observer) (astro.AzAlt, astro.RADec) {
	d := moonDays(t)

	ecl := (23.4393 - 3.563e-7*d) * degRad // obliquity of the ecliptic

	// Orbital elements for the Sun
	ws := (282.9404 + 4.70935e-5*d) * degRad
	ms := (356.0470 + 0.9856002585*d) * degRad

	// Orbital elements for the Moon
	nm := (125.1228 - 0.0529538083*d) * degRad // longitude of the ascending node
	im := 5.1454 * degRad                      // inclination to the ecliptic
	wm := (318.0634 + 0.1643573223*d) * degRad // argument of perigee
	am := 60.2666                              // semi-major axis, Earth radii
	em := 0.054900                             // eccentricity
	mm := (115.3654 + 13.0649929509*d) * degRad // mean anomaly

	// One-step eccentric anomaly approximation; full Newton iteration is
	// not needed at the 4 arcminute accuracy target.
	em1 := mm + em*math.Sin(mm)*(1.0+em*math.Cos(mm))

	xv := am * (math.Cos(em1) - em)
	yv := am * math.Sqrt(1.0-em*em) * math.Sin(em1)

	vm := math.Atan2(yv, xv)         // true anomaly
	rm := math.Sqrt(xv*xv + yv*yv)   // distance, Earth radii

	// Geocentric position in space
	xh := rm * (math.Cos(nm)*math.Cos(vm+wm) - math.Sin(nm)*math.Sin(vm+wm)*math.Cos(im))
	yh := rm * (math.Sin(nm)*math.Cos(vm+wm) + math.Cos(nm)*math.Sin(vm+wm)*math.Cos(im))
	zh := rm * math.Sin(vm+wm) * math.Sin(im)

	lonecl := math.Atan2(yh, xh)
	latecl := math.Atan2(zh, math.Sqrt(xh*xh+yh*yh))

	// Perturbation arguments
	ls := ms + ws      // mean longitude of the Sun
	lm := mm + wm + nm // mean longitude of the Moon
	dd := lm - ls      // mean elongation of the Moon
	f := lm - nm       // argument of latitude

	dlon := -1.274 * math.Sin(mm-2*dd) // the Evection
	dlon += 0.658 * math.Sin(2*dd)     // the Variation
	dlon += -0.186 * math.Sin(ms)      // the Yearly Equation
	dlon += -0.059 * math.Sin(2*mm-2*dd)
	dlon += -0.057 * math.Sin(mm-2*dd+ms)
	dlon += 0.053 * math.Sin(mm+2*dd)
	dlon += 0.046 * math.Sin(2*dd-ms)
	dlon += 0.041 * math.Sin(mm-ms)
	dlon += -0.035 * math.Sin(dd) // the Parallactic Equation
	dlon += -0.031 * math.Sin(mm+ms)
	dlon += -0.015 * math.Sin(2*f-2*dd)
	dlon += 0.011 * math.Sin(mm-4*dd)

	dlat := -0.173 * math.Sin(f-2*dd)
	dlat += -0.055 * math.Sin(mm-f-2*dd)
	dlat += -0.046 * math.Sin(mm+f-2*dd)
	dlat += 0.033 * math.Sin(f+2*dd)
	dlat += 0.017 * math.Sin(2*mm+f)

	lonecl += dlon * degRad
	latecl += dlat * degRad

	rm += -0.58 * math.Cos(mm-2*dd)
	rm += -0.46 * math.Cos(2*dd)

	// Perturbed geocentric rectangular coordinates
	xg := rm * math.Cos(lonecl) * math.Cos(latecl)
	yg := rm * math.Sin(lonecl) * math.Cos(latecl)
	zg := rm * math.Sin(latecl)

	// Rotate to equatorial
	xe := xg
	ye := yg*math.Cos(ecl) - zg*math.Sin(ecl)
	ze := yg*math.Sin(ecl) + zg*math.Cos(ecl)

	ra := math.Atan2(ye, xe)
	dec := math.Atan2(ze, math.Sqrt(xe*xe+ye*ye))

	// Geocentric to topocentric parallax correction
	mpar := math.Asin(1.0 / rm)

	lat := obs.LatDeg * degRad
	gclat := (obs.LatDeg - 0.1924*math.Sin(2.0*lat)) * degRad
	rho := 0.99833 + 0.00167*math.Cos(2.0*lat)

	utc := t.UTC()
	ut := float64(utc.Hour()) + float64(utc.Minute())/60.0 + float64(utc.Second())/3600.0

	gmst0 := ls*radDeg/15.0 + 12.0 // hours
	gmst := gmst0 + ut
	lst := gmst + obs.LonDeg/15.0

	ha := (lst*15.0 - ra*radDeg) * degRad // hour angle
	g := math.Atan(math.Tan(gclat) / math.Cos(ha))

	topRA := ra - mpar*rho*math.Cos(gclat)*math.Sin(ha)/math.Cos(dec)
	var topDec float64
	if g != 0.0 {
		topDec = dec - mpar*rho*math.Sin(gclat)*math.Sin(g-dec)/math.Sin(g)
	} else {
		// g vanishes only on the equator with the Moon on the meridian;
		// the general form divides by sin(g), so use the limiting value.
		topDec = dec - mpar*rho*math.Sin(-dec)*math.Cos(ha)
	}

	rd := astro.RADec{
		RAHours: astro.Modulo(topRA*radDeg, 360.0) / 15.0,
		DecDeg:  topDec * radDeg,
	}
	aa := astro.EquatorialToHorizontal(rd, obs, t, false)
	return aa, rd
}
