package ephem

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-radiosky/internal/astro"
)

var greenwich = astro.Observer{LatDeg: 51.4778, LonDeg: -0.0015, Name: "Greenwich"}

func TestSunPositionEquinox(t *testing.T) {
	// March equinox 2024 was at 03:06 UTC on the 20th; the Sun crosses
	// the celestial equator at RA 0h.
	equinox := time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC)
	_, rd := SunPosition(equinox, greenwich)

	ra := rd.RAHours
	if ra > 12 {
		ra -= 24
	}
	if math.Abs(ra) > 0.02 {
		t.Errorf("Sun RA at equinox = %v h, want ~0", rd.RAHours)
	}
	if math.Abs(rd.DecDeg) > 0.05 {
		t.Errorf("Sun Dec at equinox = %v, want ~0", rd.DecDeg)
	}
}

func TestSunPositionSolstice(t *testing.T) {
	// June solstice 2024 was at 20:51 UTC on the 20th; the Sun reaches
	// its maximum declination, the obliquity of the ecliptic.
	solstice := time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC)
	_, rd := SunPosition(solstice, greenwich)

	if math.Abs(rd.RAHours-6.0) > 0.02 {
		t.Errorf("Sun RA at solstice = %v h, want ~6", rd.RAHours)
	}
	if math.Abs(rd.DecDeg-23.436) > 0.02 {
		t.Errorf("Sun Dec at solstice = %v, want ~23.436", rd.DecDeg)
	}
}

func TestSunPositionNoonScenario(t *testing.T) {
	// Near local noon in mid-June from London the Sun is almost due
	// south at altitude ~ 90 - lat + dec.
	noon := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	aa, _ := SunPosition(noon, greenwich)

	if math.Abs(aa.AzDeg-179.684) > 0.01 {
		t.Errorf("Sun azimuth = %v, want ~179.684", aa.AzDeg)
	}
	if math.Abs(aa.AltDeg-61.859) > 0.01 {
		t.Errorf("Sun altitude = %v, want ~61.859", aa.AltDeg)
	}
}

func TestSunPositionRanges(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		at := time.Date(2024, month, 15, 9, 0, 0, 0, time.UTC)
		aa, rd := SunPosition(at, greenwich)

		if rd.RAHours < 0 || rd.RAHours >= 24 {
			t.Errorf("%v: RA out of range: %v", month, rd.RAHours)
		}
		if math.Abs(rd.DecDeg) > 23.5 {
			t.Errorf("%v: |Dec| exceeds obliquity: %v", month, rd.DecDeg)
		}
		if aa.AzDeg < 0 || aa.AzDeg >= 360 {
			t.Errorf("%v: azimuth out of range: %v", month, aa.AzDeg)
		}
	}
}

func TestSunriseSummer(t *testing.T) {
	day := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	rise, set := Sunrise(day, greenwich)

	wantRise := time.Date(2024, 6, 21, 3, 42, 47, 0, time.UTC)
	wantSet := time.Date(2024, 6, 21, 20, 20, 49, 0, time.UTC)

	if d := rise.Sub(wantRise); d < -time.Minute || d > time.Minute {
		t.Errorf("sunrise = %v, want %v (±1m)", rise, wantRise)
	}
	if d := set.Sub(wantSet); d < -time.Minute || d > time.Minute {
		t.Errorf("sunset = %v, want %v (±1m)", set, wantSet)
	}
}

func TestSunriseWinter(t *testing.T) {
	day := time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC)
	rise, set := Sunrise(day, greenwich)

	wantRise := time.Date(2024, 12, 21, 8, 3, 18, 0, time.UTC)
	wantSet := time.Date(2024, 12, 21, 15, 53, 5, 0, time.UTC)

	if d := rise.Sub(wantRise); d < -time.Minute || d > time.Minute {
		t.Errorf("sunrise = %v, want %v (±1m)", rise, wantRise)
	}
	if d := set.Sub(wantSet); d < -time.Minute || d > time.Minute {
		t.Errorf("sunset = %v, want %v (±1m)", set, wantSet)
	}
}

func TestSunrisePolarDay(t *testing.T) {
	// Svalbard in June: the hour angle saturates and the rise/set pair
	// spans a full day around the transit instead of going NaN.
	svalbard := astro.Observer{LatDeg: 78.22, LonDeg: 15.65}
	day := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	rise, set := Sunrise(day, svalbard)

	if d := set.Sub(rise); d < 24*time.Hour-time.Second || d > 24*time.Hour+time.Second {
		t.Errorf("polar day should saturate to a 24h window, got %v", d)
	}
}
