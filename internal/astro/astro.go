// Package astro provides time-scale conversions, spherical coordinate
// transformations and sky math for the radio-astronomy engine.
package astro

import "math"

// RADec represents equatorial celestial coordinates.
// The epoch (J2000 or current) is determined by context.
type RADec struct {
	RAHours float64 // Right Ascension in decimal hours (0-24)
	DecDeg  float64 // Declination in degrees (-90 to +90)
}

// AzAlt represents topocentric horizontal coordinates.
type AzAlt struct {
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg  float64 // Latitude in degrees (north positive)
	LonDeg  float64 // Longitude in degrees (east positive)
	HeightM float64 // Height above sea level in metres
	Name    string  // Optional name for the site
}

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// UnitVector returns the Cartesian unit vector pointing at the given
// equatorial coordinates.
func (rd RADec) UnitVector() Vec3 {
	ra := degToRad(rd.RAHours * 15.0)
	dec := degToRad(rd.DecDeg)
	cd := math.Cos(dec)
	return Vec3{
		X: math.Cos(ra) * cd,
		Y: math.Sin(ra) * cd,
		Z: math.Sin(dec),
	}
}

// Modulo is a floor-based modulo that is correct for negative a:
// Modulo(-10, 360) == 350. Used wherever angles need wrapping, since
// math.Mod truncates toward zero and can return negative values.
func Modulo(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// clamp1 clamps a value to [-1, 1] before asin/acos, to absorb the small
// floating point excursions that show up near the poles.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
