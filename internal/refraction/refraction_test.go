package refraction

import (
	"math"
	"testing"
)

func TestSaemundsson(t *testing.T) {
	tests := []struct {
		name   string
		altDeg float64
		want   float64 // degrees
		tol    float64
	}{
		{"zenith", 90, 0, 1e-6},
		{"mid altitude", 45, 1.0146356 / 60.0, 1e-6},
		{"low altitude", 10, 5.4096087 / 60.0, 1e-6},
		{"horizon", 0, 28.9838553 / 60.0, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Saemundsson(tt.altDeg, 1010, 10)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Saemundsson(%v) = %v, want %v", tt.altDeg, got, tt.want)
			}
		})
	}
}

func TestSaemundssonMonotonic(t *testing.T) {
	alts := []float64{85, 60, 45, 30, 20, 10, 5, 2, 0}
	prev := Saemundsson(alts[0], 1010, 10)
	for _, alt := range alts[1:] {
		got := Saemundsson(alt, 1010, 10)
		if got <= prev {
			t.Errorf("refraction at alt=%v (%v) not greater than at higher altitude (%v)", alt, got, prev)
		}
		prev = got
	}
}

func TestSaemundssonScalesWithPressure(t *testing.T) {
	base := Saemundsson(45, 1010, 10)
	double := Saemundsson(45, 2020, 10)
	if math.Abs(double/base-2.0) > 1e-9 {
		t.Errorf("doubling pressure scaled refraction by %v, want 2", double/base)
	}

	// Colder air is denser and refracts more
	cold := Saemundsson(45, 1010, -20)
	if cold <= base {
		t.Errorf("refraction at -20C (%v) not greater than at 10C (%v)", cold, base)
	}
}

func TestPALZenith(t *testing.T) {
	got := PAL(90, StandardAtmosphere(), 1420405751.768, 51.4778, 50)
	if math.Abs(got) > 1e-6 {
		t.Errorf("PAL at zenith = %v, want ~0", got)
	}
}

func TestPALRadioMidAltitude(t *testing.T) {
	// Radio refraction at 45 degrees under the standard profile is
	// about an arcminute, somewhat larger than optical because of the
	// water vapour term.
	got := PAL(45, StandardAtmosphere(), 1420405751.768, 51.4778, 50)
	if got < 0.015 || got > 0.021 {
		t.Errorf("radio refraction at 45 = %v deg, want ~0.0175", got)
	}
}

func TestPALOpticalMidAltitude(t *testing.T) {
	// 550 nm: the optical/IR branch of the refractivity model
	const opticalHz = 299792458.0 / 550e-9

	got := PAL(45, StandardAtmosphere(), opticalHz, 51.4778, 50)
	if got < 0.014 || got > 0.018 {
		t.Errorf("optical refraction at 45 = %v deg, want ~0.016", got)
	}

	// Should be close to the closed-form optical model
	saem := Saemundsson(45, 1010, 10)
	if math.Abs(got-saem)/saem > 0.15 {
		t.Errorf("PAL optical %v differs from Saemundsson %v by more than 15%%", got, saem)
	}

	// Radio exceeds optical at the same geometry
	radio := PAL(45, StandardAtmosphere(), 1420405751.768, 51.4778, 50)
	if radio <= got {
		t.Errorf("radio refraction %v not greater than optical %v", radio, got)
	}
}

func TestPALMonotonic(t *testing.T) {
	alts := []float64{60, 45, 30, 20, 10, 5, 2}
	prev := PAL(alts[0], StandardAtmosphere(), 1420405751.768, 51.4778, 50)
	for _, alt := range alts[1:] {
		got := PAL(alt, StandardAtmosphere(), 1420405751.768, 51.4778, 50)
		if got <= prev {
			t.Errorf("refraction at alt=%v (%v) not greater than at higher altitude (%v)", alt, got, prev)
		}
		prev = got
	}
}

func TestPALContinuousAcrossBlend(t *testing.T) {
	// The fast evaluation blends two fits above 83 degrees zenith
	// distance (altitude 7); the transition must not jump.
	atm := StandardAtmosphere()
	lo := PAL(6.9, atm, 1420405751.768, 51.4778, 50)
	mid := PAL(7.0, atm, 1420405751.768, 51.4778, 50)
	hi := PAL(7.1, atm, 1420405751.768, 51.4778, 50)

	if hi >= lo {
		t.Errorf("refraction not decreasing through the blend: %v .. %v", lo, hi)
	}
	if math.Abs(lo-hi) > 0.15*mid {
		t.Errorf("jump across 83 degree blend: %v vs %v (mid %v)", lo, hi, mid)
	}
}

func TestPALClampsExtremeInputs(t *testing.T) {
	// Out-of-range physical inputs are clamped instead of rejected;
	// whatever comes in, the result must be finite.
	tests := []struct {
		name string
		atm  AtmosphereProfile
		alt  float64
	}{
		{"absurd heat", AtmosphereProfile{PressureMb: 1010, TemperatureC: 500, Humidity: 50, LapseRate: 6.49}, 45},
		{"negative pressure", AtmosphereProfile{PressureMb: -5, TemperatureC: 10, Humidity: 50, LapseRate: 6.49}, 45},
		{"humidity over 100", AtmosphereProfile{PressureMb: 1010, TemperatureC: 10, Humidity: 300, LapseRate: 6.49}, 45},
		{"below horizon", StandardAtmosphere(), -3},
		{"zero lapse rate", AtmosphereProfile{PressureMb: 1010, TemperatureC: 10, Humidity: 50}, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PAL(tt.alt, tt.atm, 1420405751.768, 51.4778, 50)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("PAL returned %v", got)
			}
		})
	}
}

func TestStandardAtmosphere(t *testing.T) {
	atm := StandardAtmosphere()
	if atm.PressureMb != 1010 || atm.TemperatureC != 10 || atm.Humidity != 50 || atm.LapseRate != 6.49 {
		t.Errorf("unexpected standard profile: %+v", atm)
	}
}
