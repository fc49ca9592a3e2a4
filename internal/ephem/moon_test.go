package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-radiosky/internal/astro"
)

func TestMoonPositionScenario(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	aa, rd := MoonPosition(at, greenwich)

	if math.Abs(rd.RAHours-12.5839) > 1e-3 {
		t.Errorf("Moon RA = %v h, want ~12.5839", rd.RAHours)
	}
	if math.Abs(rd.DecDeg-(-3.8345)) > 1e-3 {
		t.Errorf("Moon Dec = %v, want ~-3.8345", rd.DecDeg)
	}
	if math.Abs(aa.AzDeg-80.952) > 1e-2 {
		t.Errorf("Moon azimuth = %v, want ~80.952", aa.AzDeg)
	}
	if math.Abs(aa.AltDeg-(-12.001)) > 1e-2 {
		t.Errorf("Moon altitude = %v, want ~-12.001", aa.AltDeg)
	}
}

func TestMoonPositionNewMoon(t *testing.T) {
	// New moon on 2000-01-06: the Moon stands close to the Sun.
	at := time.Date(2000, 1, 6, 0, 0, 0, 0, time.UTC)
	_, moonRD := MoonPosition(at, greenwich)
	_, sunRD := SunPosition(at, greenwich)

	raDiff := math.Abs(moonRD.RAHours - sunRD.RAHours)
	if raDiff > 12 {
		raDiff = 24 - raDiff
	}
	if raDiff*15 > 10 {
		t.Errorf("new moon RA %v h far from Sun RA %v h", moonRD.RAHours, sunRD.RAHours)
	}
	if math.Abs(moonRD.DecDeg-sunRD.DecDeg) > 6 {
		t.Errorf("new moon Dec %v far from Sun Dec %v", moonRD.DecDeg, sunRD.DecDeg)
	}
}

func TestMoonPositionRanges(t *testing.T) {
	// Over a month the topocentric declination stays inside the lunar
	// inclination band and RA stays normalized.
	for day := 1; day <= 28; day++ {
		at := time.Date(2024, 7, day, 3, 0, 0, 0, time.UTC)
		aa, rd := MoonPosition(at, greenwich)

		if rd.RAHours < 0 || rd.RAHours >= 24 {
			t.Errorf("day %d: RA out of range: %v", day, rd.RAHours)
		}
		if math.Abs(rd.DecDeg) > 30 {
			t.Errorf("day %d: |Dec| too large: %v", day, rd.DecDeg)
		}
		if aa.AzDeg < 0 || aa.AzDeg >= 360 {
			t.Errorf("day %d: azimuth out of range: %v", day, aa.AzDeg)
		}
	}
}

func TestMoonPositionEquatorMeridian(t *testing.T) {
	// Equatorial observer: the parallax correction's g term can vanish;
	// the limiting form must still produce finite coordinates.
	equator := astro.Observer{LatDeg: 0, LonDeg: 0}
	for hour := 0; hour < 24; hour++ {
		at := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		aa, rd := MoonPosition(at, equator)
		if math.IsNaN(rd.RAHours) || math.IsNaN(rd.DecDeg) || math.IsNaN(aa.AltDeg) {
			t.Fatalf("hour %d: NaN in Moon position", hour)
		}
	}
}
