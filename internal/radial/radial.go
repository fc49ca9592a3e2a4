// Package radial computes line-of-sight velocity corrections and Doppler
// conversions for radio-astronomy observations.
package radial

import (
	"math"
	"time"

	"github.com/litescript/ls-radiosky/internal/astro"
	"github.com/litescript/ls-radiosky/internal/ephem"
)

// Physical constants.
const (
	// SpeedOfLight in m/s.
	SpeedOfLight = 299792458.0

	// Boltzmann constant in J/K.
	Boltzmann = 1.380649e-23

	// earthRotationSpeed is the Earth's equatorial rotation speed in km/s
	// (circumference over one sidereal day).
	earthRotationSpeed = 0.4655

	// auPerDayToKmPerSec converts AU/day to km/s.
	auPerDayToKmPerSec = 1.731e3
)

// Spectral line rest frequencies in Hz.
const (
	HydrogenLineFreq  = 1420405751.768 // 21 cm neutral hydrogen line
	HydroxylLineFreq  = 1612231000.0   // strongest hydroxyl line
	DeuteriumLineFreq = 327384000.0    // deuterium line
)

// solarMotionLSRK is the Sun's peculiar motion with respect to the
// kinematic Local Standard of Rest: 20 km/s toward RA 18h Dec +30d
// (1900), expressed as a J2000 equatorial Cartesian vector in km/s.
var solarMotionLSRK = astro.Vec3{X: 0.29000, Y: -17.31726, Z: 10.00141}

// EarthRotation returns the observer's velocity component (km/s) toward
// the given equatorial direction due to the Earth's rotation. Positive
// means the observer moves toward the target.
func EarthRotation(rd astro.RADec, obs astro.Observer, t time.Time) float64 {
	latRad := obs.LatDeg * math.Pi / 180.0
	raRad := rd.RAHours * 15.0 * math.Pi / 180.0
	decRad := rd.DecDeg * math.Pi / 180.0
	st := astro.LocalSiderealTime(t, obs.LonDeg)
	a := st*math.Pi/180.0 - raRad
	return -earthRotationSpeed * math.Cos(latRad) * math.Sin(a) * math.Cos(decRad)
}

// EarthOrbitBCRS returns the velocity component (km/s) toward the given
// equatorial direction due to the Earth's barycentric orbital motion.
func EarthOrbitBCRS(rd astro.RADec, t time.Time) float64 {
	state := ephem.EarthStateAt(astro.ModifiedJulianDate(t))
	vel := state.Barycentric.Vel.Scale(auPerDayToKmPerSec)
	return vel.Dot(rd.UnitVector())
}

// SunLSRK returns the velocity component (km/s) toward the given
// equatorial direction due to the Sun's motion with respect to the
// kinematic Local Standard of Rest.
func SunLSRK(rd astro.RADec) float64 {
	return solarMotionLSRK.Dot(rd.UnitVector())
}

// ObserverLSRK returns the total line-of-sight velocity (km/s) of an
// Earth-based observer toward the given direction with respect to the
// kinematic Local Standard of Rest: rotation plus orbit plus solar
// motion.
func ObserverLSRK(rd astro.RADec, obs astro.Observer, t time.Time) float64 {
	return EarthRotation(rd, obs, t) + EarthOrbitBCRS(rd, t) + SunLSRK(rd)
}

// DopplerToVelocity returns the velocity in m/s corresponding to a shift
// from rest frequency f0 to observed frequency f, both in Hz. Uses the
// non-relativistic radio definition; positive velocity is approaching.
func DopplerToVelocity(f, f0 float64) float64 {
	return SpeedOfLight*f/f0 - SpeedOfLight
}

// VelocityToDoppler returns the observed frequency in Hz for a rest
// frequency f0 and a velocity v in m/s (positive approaching).
func VelocityToDoppler(v, f0 float64) float64 {
	return f0 * (v + SpeedOfLight) / SpeedOfLight
}

// NoisePowerDBm returns thermal noise power in dBm for a noise
// temperature in Kelvin and bandwidth in Hz.
func NoisePowerDBm(tempK, bwHz float64) float64 {
	return 10.0*math.Log10(Boltzmann*tempK*bwHz) + 30.0
}

// NoiseTemp returns the noise temperature in Kelvin for a power in dBm
// and bandwidth in Hz.
func NoiseTemp(dBm, bwHz float64) float64 {
	return math.Pow(10.0, (dBm-30.0)/10.0) / (Boltzmann * bwHz)
}
