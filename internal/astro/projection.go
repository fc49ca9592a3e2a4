package astro

import "math"

// Tangent-plane projections between Az/Alt and two X/Y axis conventions,
// following NASA technical report 19670030005:
//
//	X85 is positive Southward, Y85 is positive Eastward.
//	X30 is positive Eastward, Y30 is positive Northward.
//
// Both projections collapse the zenith: at alt=90 every azimuth maps to
// (0, 0), so the inverse there returns az=0. The cot/tan singularities on
// the horizon and at y=±90 branch to their signed limiting values instead
// of propagating infinities; each case is part of the contract and is
// exercised by the tests.

// AzAltToXY85 projects horizontal coordinates onto the 85-convention
// tangent plane. Returns x, y in degrees.
func AzAltToXY85(aa AzAlt) (x, y float64) {
	if aa.AltDeg == 90.0 {
		return 0.0, 0.0
	}
	az, el := foldAzEl(aa.AzDeg, aa.AltDeg)

	azr := degToRad(az)
	elr := degToRad(el)
	y = radToDeg(math.Asin(math.Cos(elr) * math.Sin(azr)))

	// x = atan(-cot(el)*cos(az)); cot(0) is infinite, so branch on the
	// sign of cos(az) at the horizon.
	if el == 0.0 {
		switch {
		case az == 90.0 || az == 270.0:
			x = 0.0
		case az > 90.0 && az < 270.0:
			x = 90.0
		default:
			x = -90.0
		}
		return x, y
	}
	x = radToDeg(math.Atan(-(math.Cos(elr) / math.Sin(elr)) * math.Cos(azr)))
	return x, y
}

// AzAltToXY30 projects horizontal coordinates onto the 30-convention
// tangent plane. Returns x, y in degrees.
func AzAltToXY30(aa AzAlt) (x, y float64) {
	if aa.AltDeg == 90.0 {
		return 0.0, 0.0
	}
	az, el := foldAzEl(aa.AzDeg, aa.AltDeg)

	azr := degToRad(az)
	elr := degToRad(el)
	y = radToDeg(math.Asin(math.Cos(elr) * math.Cos(azr)))

	// x = atan(cot(el)*sin(az)); branch on the sign of sin(az) at the
	// horizon.
	if el == 0.0 {
		switch {
		case az == 0.0 || az == 180.0:
			x = 0.0
		case az > 0.0 && az < 180.0:
			x = 90.0
		default:
			x = -90.0
		}
		return x, y
	}
	x = radToDeg(math.Atan((math.Cos(elr) / math.Sin(elr)) * math.Sin(azr)))
	return x, y
}

// XY85ToAzAlt inverts AzAltToXY85. The zenith collapse (0,0) maps back to
// az=0, alt=90.
func XY85ToAzAlt(x, y float64) AzAlt {
	if x == 0.0 && y == 0.0 {
		return AzAlt{AzDeg: 0.0, AltDeg: 90.0}
	}
	xr := degToRad(x)
	yr := degToRad(y)
	elr := math.Asin(clamp1(math.Cos(yr) * math.Cos(xr)))

	var azr float64
	switch {
	case x == 0.0:
		// 1/sin(x) is infinite
		if y >= 0.0 {
			azr = math.Pi / 2.0
		} else {
			azr = 2.0 * math.Pi * 3.0 / 4.0
		}
	case y == 90.0:
		// tan(90) is infinite
		azr = math.Pi / 2.0
	case y == -90.0:
		azr = 2.0 * math.Pi * 3.0 / 4.0
	default:
		// atan2 range is (-pi,pi], we want az in (0,360], so add pi
		azr = math.Atan2(-math.Tan(yr), math.Sin(xr)) + math.Pi
	}

	return AzAlt{AzDeg: radToDeg(azr), AltDeg: radToDeg(elr)}
}

// XY30ToAzAlt inverts AzAltToXY30. The zenith collapse (0,0) maps back to
// az=0, alt=90.
func XY30ToAzAlt(x, y float64) AzAlt {
	if x == 0.0 && y == 0.0 {
		return AzAlt{AzDeg: 0.0, AltDeg: 90.0}
	}
	xr := degToRad(x)
	yr := degToRad(y)
	elr := math.Asin(clamp1(math.Cos(yr) * math.Cos(xr)))

	var azr float64
	switch {
	case y == 0.0:
		// cot(0) is infinite
		if x >= 0.0 {
			azr = math.Pi / 2.0
		} else {
			azr = 2.0 * math.Pi * 3.0 / 4.0
		}
	case y == 90.0:
		azr = 0.0
	case y == -90.0:
		azr = math.Pi
	default:
		azr = math.Atan2(math.Sin(xr), math.Tan(yr))
		if azr < 0.0 {
			azr += 2.0 * math.Pi
		}
	}

	return AzAlt{AzDeg: radToDeg(azr), AltDeg: radToDeg(elr)}
}

// foldAzEl reduces an azimuth/elevation pair into az in [0,360) and el
// at or below 90, reflecting coordinates that look "past" the zenith.
func foldAzEl(az, el float64) (float64, float64) {
	if az >= 360.0 {
		az -= 360.0
	}
	if el > 90.0 {
		el = 180.0 - el
		if az >= 180.0 {
			az -= 180.0
		} else {
			az += 180.0
		}
	}
	return az, el
}
