package radial

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-radiosky/internal/astro"
)

var (
	greenwich = astro.Observer{LatDeg: 51.4778, LonDeg: -0.0015}
	casA      = astro.RADec{RAHours: 23.3904, DecDeg: 58.8079}
	scenario  = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
)

func TestDopplerToVelocity(t *testing.T) {
	f0 := HydrogenLineFreq

	tests := []struct {
		name string
		f    float64
		want float64
		tol  float64
	}{
		{"rest frequency", f0, 0, 1e-9},
		{"blueshift 1e-3", f0 * 1.001, 299792.458, 1e-3},
		{"redshift 1e-3", f0 * 0.999, -299792.458, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DopplerToVelocity(tt.f, f0)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("DopplerToVelocity(%v) = %v m/s, want %v", tt.f, got, tt.want)
			}
		})
	}
}

func TestVelocityDopplerRoundTrip(t *testing.T) {
	f0 := HydrogenLineFreq
	for _, v := range []float64{-50000, -100, 0, 100, 50000} {
		f := VelocityToDoppler(v, f0)
		if got := DopplerToVelocity(f, f0); math.Abs(got-v) > 1e-6 {
			t.Errorf("round trip of %v m/s gave %v", v, got)
		}
	}
}

func TestEarthRotationScenario(t *testing.T) {
	got := EarthRotation(casA, greenwich, scenario)
	if math.Abs(got-(-0.149889)) > 1e-4 {
		t.Errorf("EarthRotation = %v km/s, want ~-0.149889", got)
	}
}

func TestEarthRotationBounds(t *testing.T) {
	// The projected rotation speed can never exceed the equatorial
	// rotation speed, and vanishes at the poles.
	for raH := 0.0; raH < 24.0; raH += 3.0 {
		for _, dec := range []float64{-60, 0, 60} {
			rd := astro.RADec{RAHours: raH, DecDeg: dec}
			if v := EarthRotation(rd, greenwich, scenario); math.Abs(v) > 0.4655 {
				t.Errorf("|EarthRotation| at (%v, %v) = %v exceeds 0.4655", raH, dec, v)
			}
		}
	}

	pole := astro.Observer{LatDeg: 90, LonDeg: 0}
	if v := EarthRotation(casA, pole, scenario); math.Abs(v) > 1e-9 {
		t.Errorf("EarthRotation at the pole = %v, want 0", v)
	}
}

func TestEarthOrbitBCRSScenario(t *testing.T) {
	got := EarthOrbitBCRS(casA, scenario)
	if math.Abs(got-14.1365) > 1e-3 {
		t.Errorf("EarthOrbitBCRS = %v km/s, want ~14.1365", got)
	}
}

func TestEarthOrbitBCRSBounds(t *testing.T) {
	// Orbital speed is ~29.8 km/s; the projection onto any direction
	// must stay within it.
	for raH := 0.0; raH < 24.0; raH += 2.0 {
		for _, dec := range []float64{-60, -20, 0, 20, 60} {
			rd := astro.RADec{RAHours: raH, DecDeg: dec}
			if v := EarthOrbitBCRS(rd, scenario); math.Abs(v) > 30.4 {
				t.Errorf("|EarthOrbitBCRS| at (%v, %v) = %v km/s", raH, dec, v)
			}
		}
	}
}

func TestSunLSRK(t *testing.T) {
	got := SunLSRK(casA)
	if math.Abs(got-10.1291) > 1e-3 {
		t.Errorf("SunLSRK toward Cas A = %v km/s, want ~10.1291", got)
	}

	// The solar motion is 20 km/s; any projection is within that.
	for raH := 0.0; raH < 24.0; raH += 2.0 {
		for _, dec := range []float64{-80, -30, 0, 30, 80} {
			rd := astro.RADec{RAHours: raH, DecDeg: dec}
			if v := SunLSRK(rd); math.Abs(v) > 20.0 {
				t.Errorf("|SunLSRK| at (%v, %v) = %v exceeds 20", raH, dec, v)
			}
		}
	}

	// Antipodal directions project with opposite sign
	anti := astro.RADec{RAHours: astro.Modulo(casA.RAHours+12, 24), DecDeg: -casA.DecDeg}
	if v := SunLSRK(anti); math.Abs(v+got) > 1e-9 {
		t.Errorf("antipodal SunLSRK = %v, want %v", v, -got)
	}
}

func TestObserverLSRK(t *testing.T) {
	got := ObserverLSRK(casA, greenwich, scenario)
	if math.Abs(got-24.1157) > 1e-2 {
		t.Errorf("ObserverLSRK = %v km/s, want ~24.1157", got)
	}

	// Total correction is bounded by rotation + orbit + solar motion
	for raH := 0.0; raH < 24.0; raH += 4.0 {
		for _, dec := range []float64{-60, 0, 60} {
			rd := astro.RADec{RAHours: raH, DecDeg: dec}
			if v := ObserverLSRK(rd, greenwich, scenario); math.Abs(v) > 51.0 {
				t.Errorf("|ObserverLSRK| at (%v, %v) = %v km/s", raH, dec, v)
			}
		}
	}
}

func TestSkyFrequencyShift(t *testing.T) {
	// LSRK velocity toward Cas A maps to a ~114 kHz blueshift on the
	// hydrogen line at the scenario instant.
	v := ObserverLSRK(casA, greenwich, scenario) * 1000.0
	sky := VelocityToDoppler(v, HydrogenLineFreq)
	if math.Abs(sky-HydrogenLineFreq-114259.0) > 500.0 {
		t.Errorf("sky frequency shift = %v Hz, want ~114259", sky-HydrogenLineFreq)
	}
}

func TestNoisePowerDBm(t *testing.T) {
	// kTB at 290 K in 1 Hz is the textbook -174 dBm
	got := NoisePowerDBm(290, 1)
	if math.Abs(got-(-173.975)) > 0.05 {
		t.Errorf("NoisePowerDBm(290, 1) = %v, want ~-173.975", got)
	}

	// 10x bandwidth adds 10 dB
	if d := NoisePowerDBm(290, 10) - got; math.Abs(d-10.0) > 1e-9 {
		t.Errorf("bandwidth decade added %v dB, want 10", d)
	}
}

func TestNoiseTempRoundTrip(t *testing.T) {
	for _, temp := range []float64{3, 50, 290, 5000} {
		dBm := NoisePowerDBm(temp, 1e6)
		if got := NoiseTemp(dBm, 1e6); math.Abs(got-temp) > temp*1e-9 {
			t.Errorf("round trip of %v K gave %v", temp, got)
		}
	}
}

func TestSpectralLineConstants(t *testing.T) {
	if HydrogenLineFreq != 1420405751.768 {
		t.Errorf("HydrogenLineFreq = %v", HydrogenLineFreq)
	}
	if HydroxylLineFreq <= 1.6e9 || HydroxylLineFreq >= 1.7e9 {
		t.Errorf("HydroxylLineFreq = %v out of band", HydroxylLineFreq)
	}
	if DeuteriumLineFreq <= 3.2e8 || DeuteriumLineFreq >= 3.3e8 {
		t.Errorf("DeuteriumLineFreq = %v out of band", DeuteriumLineFreq)
	}
}
