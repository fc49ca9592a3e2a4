package astro

import (
	"math"
	"testing"
	"time"
)

// raDiffDeg returns the wrapped RA difference in degrees.
func raDiffDeg(a, b float64) float64 {
	d := Modulo(a-b, 24.0)
	if d > 12.0 {
		d -= 24.0
	}
	return d * 15.0
}

func TestPrecessIdentity(t *testing.T) {
	rd := RADec{RAHours: 5.5756, DecDeg: 22.0145}
	got := Precess(rd, J2000, J2000)
	if math.Abs(raDiffDeg(got.RAHours, rd.RAHours)) > 1e-9 || math.Abs(got.DecDeg-rd.DecDeg) > 1e-9 {
		t.Errorf("zero-interval precession moved %+v to %+v", rd, got)
	}
}

func TestPrecessPolarisToB1950(t *testing.T) {
	// Polaris J2000 (RA 2h31m49s, Dec +89°15'51") precessed back to B1950
	// should land near its catalog B1950 position RA ~1h48.8m, Dec ~+89.03
	polaris := RADec{RAHours: 2.530301, DecDeg: 89.264109}
	got := Precess(polaris, J2000, B1950)

	if math.Abs(got.RAHours-1.8159) > 0.01 {
		t.Errorf("Polaris B1950 RA = %v h, want ~1.8159", got.RAHours)
	}
	if math.Abs(got.DecDeg-89.0287) > 0.01 {
		t.Errorf("Polaris B1950 Dec = %v, want ~89.0287", got.DecDeg)
	}
}

func TestPrecessCassiopeiaATo2025(t *testing.T) {
	casA := RADec{RAHours: 23.3904, DecDeg: 58.8079}
	jd2025 := JulianDate(2025, 1, 1, 0, 0, 0)
	got := Precess(casA, J2000, jd2025)

	if math.Abs(got.RAHours-23.409344) > 1e-3 {
		t.Errorf("Cas A 2025 RA = %v h, want ~23.409344", got.RAHours)
	}
	if math.Abs(got.DecDeg-58.945356) > 1e-3 {
		t.Errorf("Cas A 2025 Dec = %v, want ~58.945356", got.DecDeg)
	}
}

func TestPrecessRoundTrip(t *testing.T) {
	// Forward to B1950 and back; the polynomial is not exactly orthogonal
	// so allow a few tenths of an arcsecond.
	for _, raH := range []float64{0.5, 3, 6.1, 9, 12.2, 15, 18.3, 21, 23.5} {
		for _, dec := range []float64{-70, -30, 0, 30, 70} {
			rd := RADec{RAHours: raH, DecDeg: dec}
			back := Precess(Precess(rd, J2000, B1950), B1950, J2000)

			if math.Abs(raDiffDeg(back.RAHours, raH))*math.Cos(degToRad(dec)) > 1e-3 {
				t.Errorf("RA round trip at (%v, %v): got %v", raH, dec, back.RAHours)
			}
			if math.Abs(back.DecDeg-dec) > 1e-3 {
				t.Errorf("Dec round trip at (%v, %v): got %v", raH, dec, back.DecDeg)
			}
		}
	}
}

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris sits close to the NCP; its altitude stays near the
	// observer's latitude at any time of day.
	polaris := RADec{RAHours: 2.530301, DecDeg: 89.264109}
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}

	for hour := 0; hour < 24; hour += 6 {
		testTime := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		aa := EquatorialToHorizontal(polaris, obs, testTime, false)

		if math.Abs(aa.AltDeg-obs.LatDeg) > 1.0 {
			t.Errorf("Polaris altitude at hour %d = %v, expected ~%v", hour, aa.AltDeg, obs.LatDeg)
		}
	}
}

func TestEquatorialToHorizontal_ZenithStar(t *testing.T) {
	obs := Observer{LatDeg: 35.0, LonDeg: -117.0}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	lst := LocalSiderealTime(testTime, obs.LonDeg)

	// A star with Dec = latitude and RA = LST is at the zenith
	zenith := RADec{RAHours: lst / 15.0, DecDeg: obs.LatDeg}
	aa := EquatorialToHorizontal(zenith, obs, testTime, false)

	if math.Abs(aa.AltDeg-90.0) > 0.01 {
		t.Errorf("zenith star altitude = %v, want ~90", aa.AltDeg)
	}
}

func TestEquatorialToHorizontal_SouthernStar(t *testing.T) {
	// Dec -60 never rises above the horizon from 51.5N
	star := RADec{RAHours: 0, DecDeg: -60}
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}

	for hour := 0; hour < 24; hour += 3 {
		testTime := time.Date(2024, 6, 15, hour, 0, 0, 0, time.UTC)
		aa := EquatorialToHorizontal(star, obs, testTime, false)
		if aa.AltDeg > 0 {
			t.Errorf("star at Dec=-60 visible from 51.5N at hour %d: alt=%v", hour, aa.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_AzimuthRange(t *testing.T) {
	obs := Observer{LatDeg: 35, LonDeg: -117}
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for raH := 0.0; raH < 24.0; raH += 2.0 {
		for dec := -80.0; dec <= 80.0; dec += 20.0 {
			aa := EquatorialToHorizontal(RADec{RAHours: raH, DecDeg: dec}, obs, testTime, false)
			if aa.AzDeg < 0 || aa.AzDeg >= 360 {
				t.Errorf("azimuth out of range for RA=%v Dec=%v: %v", raH, dec, aa.AzDeg)
			}
			if aa.AltDeg < -90 || aa.AltDeg > 90 {
				t.Errorf("altitude out of range for RA=%v Dec=%v: %v", raH, dec, aa.AltDeg)
			}
		}
	}
}

func TestHorizontalToEquatorialRoundTrip(t *testing.T) {
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}
	testTime := time.Date(2024, 6, 15, 21, 30, 0, 0, time.UTC)

	for raH := 0.0; raH < 24.0; raH += 3.0 {
		for dec := -60.0; dec <= 60.0; dec += 30.0 {
			rd := RADec{RAHours: raH, DecDeg: dec}
			aa := EquatorialToHorizontal(rd, obs, testTime, false)
			back := HorizontalToEquatorial(aa, obs, testTime)

			if math.Abs(raDiffDeg(back.RAHours, raH)) > 1e-6 {
				t.Errorf("RA round trip at (%v, %v): got %v", raH, dec, back.RAHours)
			}
			if math.Abs(back.DecDeg-dec) > 1e-6 {
				t.Errorf("Dec round trip at (%v, %v): got %v", raH, dec, back.DecDeg)
			}
		}
	}
}

func TestHorizontalToEquatorialNearMeridian(t *testing.T) {
	// The atan2 hour-angle recovery stays well conditioned close to the
	// meridian, where the historical acos form loses precision.
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}
	testTime := time.Date(2024, 6, 15, 21, 30, 0, 0, time.UTC)
	lst := LocalSiderealTime(testTime, obs.LonDeg)

	for _, offset := range []float64{-0.01, -0.0001, 0.0001, 0.01} {
		rd := RADec{RAHours: Modulo(lst/15.0+offset, 24.0), DecDeg: 20.0}
		aa := EquatorialToHorizontal(rd, obs, testTime, false)
		back := HorizontalToEquatorial(aa, obs, testTime)

		if math.Abs(raDiffDeg(back.RAHours, rd.RAHours)) > 1e-6 {
			t.Errorf("meridian round trip at offset %v: RA %v -> %v", offset, rd.RAHours, back.RAHours)
		}
	}
}
