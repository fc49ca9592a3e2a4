// Package refraction provides atmospheric refraction corrections for
// optical and radio observations: a closed-form model (Saemundsson) and a
// full two-layer numerical integration model derived from the Starlink
// Positional Astronomy Library.
package refraction

import "math"

// AtmosphereProfile holds the atmospheric parameters used by the full
// refraction model.
type AtmosphereProfile struct {
	PressureMb   float64 // surface pressure in millibars
	TemperatureC float64 // ambient temperature in Celsius
	Humidity     float64 // relative humidity in percent
	LapseRate    float64 // tropospheric temperature lapse rate in K/km
}

// StandardAtmosphere returns a typical mid-latitude surface profile.
func StandardAtmosphere() AtmosphereProfile {
	return AtmosphereProfile{
		PressureMb:   1010.0,
		TemperatureC: 10.0,
		Humidity:     50.0,
		LapseRate:    6.49,
	}
}

// Saemundsson returns the altitude adjustment in degrees from true to
// apparent due to atmospheric refraction, using Saemundsson's closed-form
// formula (the one Stellarium uses; primarily for optical wavelengths).
// The zenith gives a factor of zero by construction. Pressure in
// millibars, temperature in Celsius.
func Saemundsson(altDeg, pressureMb, temperatureC float64) float64 {
	pt := (pressureMb / 1010.0) * (283.0 / (273.0 + temperatureC))

	// Original formula yields arcminutes; divide by 60 for degrees.
	return pt * (1.02/math.Tan((altDeg+10.3/(altDeg+5.11))*math.Pi/180.0) + 0.0019279) / 60.0
}

// PAL returns the altitude adjustment in degrees from true to apparent
// using the Starlink PAL atmosphere model, which is more accurate than
// Saemundsson for radio frequencies but considerably more expensive.
//
// altDeg is the true altitude (90 = zenith). Frequency in Hz selects the
// optical/IR or radio branch of the model. latDeg and heightM locate the
// observer; the atmosphere profile supplies surface conditions.
// Out-of-range physical inputs are clamped, never rejected.
func PAL(altDeg float64, atm AtmosphereProfile, frequencyHz, latDeg, heightM float64) float64 {
	tdk := atm.TemperatureC + 273.15                  // ambient temperature, K
	wl := (299792458.0 / frequencyHz) * 1e6           // wavelength, micrometres
	rh := atm.Humidity / 100.0                        // relative humidity, 0-1
	phi := latDeg * math.Pi / 180.0                   // latitude, radians
	tlr := atm.LapseRate / 1000.0                     // lapse rate, K/metre

	z := 90.0 - altDeg
	zu := z * math.Pi / 180.0

	refa, refb := refco(heightM, tdk, atm.PressureMb, rh, wl, phi, tlr, 1e-10)
	zr := refz(zu, refa, refb)

	return z - zr*180.0/math.Pi
}
