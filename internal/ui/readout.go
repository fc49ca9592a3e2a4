package ui

import (
	"time"

	"github.com/litescript/ls-radiosky/internal/astro"
	"github.com/litescript/ls-radiosky/internal/ephem"
	"github.com/litescript/ls-radiosky/internal/radial"
	"github.com/litescript/ls-radiosky/internal/refraction"
)

// Readout is a full set of computed values for one observer, source and
// instant. It is what the dashboard and the headless summary render.
type Readout struct {
	Time   time.Time
	JD     float64
	MJD    float64
	LSTDeg float64

	SunAzAlt astro.AzAlt
	SunRADec astro.RADec
	Sunrise  time.Time
	Sunset   time.Time

	MoonAzAlt astro.AzAlt
	MoonRADec astro.RADec

	Source   astro.Source
	SrcAzAlt astro.AzAlt
	GalL     float64
	GalB     float64

	// Line-of-sight velocity components toward the source, km/s
	VRot  float64
	VOrb  float64
	VSun  float64
	VLSRK float64

	// Rest frequency and the LSRK-shifted sky frequency, Hz
	RestFreqHz float64
	SkyFreqHz  float64

	// Refraction corrections at the source's current altitude, degrees
	RefracSaemundsson float64
	RefracPAL         float64

	// Set when the ephemeris date is outside its fitted range and the
	// orbital velocity component is degraded.
	EphemerisDegraded bool

	Window astro.VisibilityWindow
}

// Compute evaluates everything the dashboard displays for one instant.
func Compute(t time.Time, obs astro.Observer, atm refraction.AtmosphereProfile, restFreqHz float64, src astro.Source) Readout {
	r := Readout{
		Time:       t,
		JD:         astro.JulianDateTime(t),
		MJD:        astro.ModifiedJulianDate(t),
		LSTDeg:     astro.LocalSiderealTime(t, obs.LonDeg),
		Source:     src,
		RestFreqHz: restFreqHz,
	}

	r.SunAzAlt, r.SunRADec = ephem.SunPosition(t, obs)
	r.Sunrise, r.Sunset = ephem.Sunrise(t, obs)
	r.MoonAzAlt, r.MoonRADec = ephem.MoonPosition(t, obs)

	rd := astro.RADec{RAHours: src.RAHours, DecDeg: src.DecDeg}
	r.SrcAzAlt = astro.EquatorialToHorizontal(rd, obs, t, true)
	r.GalL, r.GalB = astro.EquatorialToGalactic(rd)

	r.VRot = radial.EarthRotation(rd, obs, t)
	r.VOrb = radial.EarthOrbitBCRS(rd, t)
	r.VSun = radial.SunLSRK(rd)
	r.VLSRK = r.VRot + r.VOrb + r.VSun
	r.SkyFreqHz = radial.VelocityToDoppler(r.VLSRK*1000.0, restFreqHz)
	r.EphemerisDegraded = ephem.EarthStateAt(r.MJD).OutsideRange

	if r.SrcAzAlt.AltDeg > 0.0 {
		r.RefracSaemundsson = refraction.Saemundsson(r.SrcAzAlt.AltDeg, atm.PressureMb, atm.TemperatureC)
		r.RefracPAL = refraction.PAL(r.SrcAzAlt.AltDeg, atm, restFreqHz, obs.LatDeg, obs.HeightM)
	}

	r.Window = visibilityWindow(t, obs, rd)
	return r
}

// visibilityWindow samples the next 24 hours at 15 minute intervals and
// finds the source's rise, transit and set.
func visibilityWindow(t time.Time, obs astro.Observer, rd astro.RADec) astro.VisibilityWindow {
	const step = 15 * time.Minute
	samples := make([]astro.RADecAtTime, 0, 97)
	for dt := time.Duration(0); dt <= 24*time.Hour; dt += step {
		samples = append(samples, astro.RADecAtTime{Time: t.Add(dt), Coord: rd})
	}
	win, err := astro.RiseSet(obs, samples)
	if err != nil {
		return astro.VisibilityWindow{}
	}
	return win
}
