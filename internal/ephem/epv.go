package ephem

import (
	"math"

	"github.com/litescript/ls-radiosky/internal/astro"
)

const (
	daysPerJulianYear = 365.25
	j2000JD           = 2451545.0
	mjdZero           = 2400000.5
)

// Matrix elements for orienting the analytical model to DE405. The
// corresponding Euler angles are a 23d 26' 21.4091" rotation about the
// x-axis (obliquity) and +0.0475" about the z-axis (RA offset), obtained
// empirically by comparison with DE405 over 1900-2100.
const (
	am12 = 0.000000211284
	am13 = -0.000000091603
	am21 = -0.000000230286
	am22 = 0.917482137087
	am23 = -0.397776982902
	am32 = 0.397776982902
	am33 = 0.917482137087
)

// StateVector holds a position (AU) and velocity (AU/day) in the BCRS
// equatorial frame.
type StateVector struct {
	Pos astro.Vec3 // AU
	Vel astro.Vec3 // AU/day
}

// EarthState is the Earth's heliocentric and barycentric state at one
// instant. OutsideRange is set when the requested date is more than about
// 100 years from J2000; the values are still returned, at degraded
// accuracy, and the flag is advisory rather than an error.
type EarthState struct {
	Heliocentric StateVector
	Barycentric  StateVector
	OutsideRange bool
}

// EarthStateAt evaluates the simplified VSOP2000 solution at the given
// Modified Julian Date and returns the Earth's heliocentric and
// barycentric position and velocity.
//
// Each harmonic term contributes amplitude*cos(phase + frequency*T)*T^k
// to position, with the analytically differentiated counterpart going to
// velocity. Sums accumulate in the ecliptic frame and are rotated into
// the BCRS-aligned equatorial frame at the end. Comparisons with DE405
// over 1900-2100 show RMS position errors below 5 km.
func EarthStateAt(mjd float64) EarthState {
	t := ((mjdZero - j2000JD) + mjd) / daysPerJulianYear // Julian years since J2000
	t2 := t * t

	var ph, vh, pb, vb [3]float64

	for i := 0; i < 3; i++ {
		xyz, xyzd := 0.0, 0.0

		// Sun-to-Earth ecliptic vector component
		for power := 0; power < 3; power++ {
			dp, dv := sumSeries(sunToEarth[power][i], t, t2, power)
			xyz += dp
			xyzd += dv
		}
		ph[i] = xyz
		vh[i] = xyzd / daysPerJulianYear

		// SSB-to-Sun terms accumulate on top of the heliocentric sums to
		// give the SSB-to-Earth component.
		for power := 0; power < 3; power++ {
			dp, dv := sumSeries(ssbToSun[power][i], t, t2, power)
			xyz += dp
			xyzd += dv
		}
		pb[i] = xyz
		vb[i] = xyzd / daysPerJulianYear
	}

	return EarthState{
		Heliocentric: StateVector{Pos: rotateToBCRS(ph), Vel: rotateToBCRS(vh)},
		Barycentric:  StateVector{Pos: rotateToBCRS(pb), Vel: rotateToBCRS(vb)},
		OutsideRange: math.Abs(t) > 100.0,
	}
}

// sumSeries accumulates one family of harmonic terms at T^power and
// returns the position and (undivided) velocity contributions.
func sumSeries(terms []epvTerm, t, t2 float64, power int) (p, v float64) {
	switch power {
	case 0:
		for _, tm := range terms {
			arg := tm.phi + tm.f*t
			p += tm.a * math.Cos(arg)
			v -= tm.a * tm.f * math.Sin(arg)
		}
	case 1:
		for _, tm := range terms {
			ft := tm.f * t
			arg := tm.phi + ft
			cp := math.Cos(arg)
			p += tm.a * t * cp
			v += tm.a * (cp - ft*math.Sin(arg))
		}
	default:
		for _, tm := range terms {
			ft := tm.f * t
			arg := tm.phi + ft
			cp := math.Cos(arg)
			p += tm.a * t2 * cp
			v += tm.a * t * (2.0*cp - ft*math.Sin(arg))
		}
	}
	return p, v
}

// rotateToBCRS rotates an ecliptic-frame component triple into the
// BCRS-aligned equatorial frame.
func rotateToBCRS(c [3]float64) astro.Vec3 {
	return astro.Vec3{
		X: c[0] + am12*c[1] + am13*c[2],
		Y: am21*c[0] + am22*c[1] + am23*c[2],
		Z: am32*c[1] + am33*c[2],
	}
}
