package astro

import (
	"errors"
	"math"
	"time"
)

// RADecAtTime represents an equatorial position at a specific time, used
// as input to visibility calculations.
type RADecAtTime struct {
	Time  time.Time
	Coord RADec
}

// VisibilityWindow represents a rise-transit-set cycle for a target.
type VisibilityWindow struct {
	Rise          time.Time // Time target rises above the horizon
	Transit       time.Time // Time target crosses the meridian
	Set           time.Time // Time target sets below the horizon
	MaxAltitude   float64   // Peak altitude in degrees
	Valid         bool      // Whether a valid window was found
	AlwaysVisible bool      // Target never sets (circumpolar)
	NeverVisible  bool      // Target never rises
}

// MinAltitude is the threshold for considering a target "visible".
const MinAltitude = 0.0

// ErrInsufficientSamples is returned when too few samples are supplied to
// bracket a visibility cycle.
var ErrInsufficientSamples = errors.New("insufficient samples for visibility calculation")

// RiseSet computes rise, transit and set times for a target given RA/Dec
// samples in chronological order. The samples should span enough time to
// capture a complete cycle (typically 24 hours). Horizon crossings are
// found by linear interpolation between samples.
func RiseSet(obs Observer, samples []RADecAtTime) (VisibilityWindow, error) {
	if len(samples) < 3 {
		return VisibilityWindow{}, ErrInsufficientSamples
	}

	type altSample struct {
		t      time.Time
		altDeg float64
	}
	altSamples := make([]altSample, len(samples))

	minAlt, maxAlt := 90.0, -90.0
	maxIdx := 0
	for i, s := range samples {
		aa := EquatorialToHorizontal(s.Coord, obs, s.Time, false)
		altSamples[i] = altSample{t: s.Time, altDeg: aa.AltDeg}
		if aa.AltDeg < minAlt {
			minAlt = aa.AltDeg
		}
		if aa.AltDeg > maxAlt {
			maxAlt = aa.AltDeg
			maxIdx = i
		}
	}

	if minAlt > MinAltitude {
		return VisibilityWindow{
			Transit:       altSamples[maxIdx].t,
			MaxAltitude:   maxAlt,
			Valid:         true,
			AlwaysVisible: true,
		}, nil
	}
	if maxAlt < MinAltitude {
		return VisibilityWindow{Valid: true, NeverVisible: true}, nil
	}

	// First upward horizon crossing
	var riseTime time.Time
	riseFound := false
	for i := 1; i < len(altSamples); i++ {
		prev, curr := altSamples[i-1], altSamples[i]
		if prev.altDeg <= MinAltitude && curr.altDeg > MinAltitude {
			riseTime = interpolateCrossing(prev.t, curr.t, prev.altDeg, curr.altDeg, MinAltitude)
			riseFound = true
			break
		}
	}

	// First downward crossing after the rise
	var setTime time.Time
	setFound := false
	startIdx := 0
	if riseFound {
		for i, s := range altSamples {
			if !s.t.Before(riseTime) {
				startIdx = i
				break
			}
		}
	}
	for i := startIdx + 1; i < len(altSamples); i++ {
		prev, curr := altSamples[i-1], altSamples[i]
		if prev.altDeg > MinAltitude && curr.altDeg <= MinAltitude {
			setTime = interpolateCrossing(prev.t, curr.t, prev.altDeg, curr.altDeg, MinAltitude)
			setFound = true
			break
		}
	}

	alreadyUp := altSamples[0].altDeg > MinAltitude

	return VisibilityWindow{
		Rise:        riseTime,
		Transit:     altSamples[maxIdx].t,
		Set:         setTime,
		MaxAltitude: maxAlt,
		Valid:       riseFound || setFound || alreadyUp,
	}, nil
}

// CurrentAltitude computes the altitude of a target at a given time.
func CurrentAltitude(obs Observer, rd RADec, t time.Time) float64 {
	return EquatorialToHorizontal(rd, obs, t, false).AltDeg
}

// interpolateCrossing finds the time when the altitude crosses a
// threshold, by linear interpolation between two samples.
func interpolateCrossing(t1, t2 time.Time, alt1, alt2, threshold float64) time.Time {
	if math.Abs(alt2-alt1) < 1e-4 {
		return t1
	}
	fraction := (threshold - alt1) / (alt2 - alt1)
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	dt := t2.Sub(t1)
	return t1.Add(time.Duration(float64(dt) * fraction))
}

// AltitudeTier categorizes altitude for display.
type AltitudeTier int

const (
	AltitudeNone   AltitudeTier = iota // Below horizon
	AltitudeLow                        // 0-15 degrees
	AltitudeMedium                     // 15-45 degrees
	AltitudeHigh                       // 45+ degrees
)

// GetAltitudeTier returns the tier for a given altitude.
func GetAltitudeTier(altDeg float64) AltitudeTier {
	switch {
	case altDeg <= 0:
		return AltitudeNone
	case altDeg < 15:
		return AltitudeLow
	case altDeg < 45:
		return AltitudeMedium
	default:
		return AltitudeHigh
	}
}
