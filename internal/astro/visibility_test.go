package astro

import (
	"math"
	"testing"
	"time"
)

func daySamples(rd RADec, start time.Time) []RADecAtTime {
	samples := make([]RADecAtTime, 0, 97)
	for dt := time.Duration(0); dt <= 24*time.Hour; dt += 15 * time.Minute {
		samples = append(samples, RADecAtTime{Time: start.Add(dt), Coord: rd})
	}
	return samples
}

func TestRiseSetInsufficientSamples(t *testing.T) {
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}
	_, err := RiseSet(obs, []RADecAtTime{
		{Time: time.Now(), Coord: RADec{RAHours: 0, DecDeg: 0}},
		{Time: time.Now().Add(time.Hour), Coord: RADec{RAHours: 0, DecDeg: 0}},
	})
	if err != ErrInsufficientSamples {
		t.Errorf("expected ErrInsufficientSamples, got %v", err)
	}
}

func TestRiseSetCircumpolar(t *testing.T) {
	// Cassiopeia A (Dec 58.8) never sets from London: min altitude is
	// 58.8 + 51.5 - 90 = +20.3 degrees.
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}
	rd := RADec{RAHours: 23.3904, DecDeg: 58.8079}
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	win, err := RiseSet(obs, daySamples(rd, start))
	if err != nil {
		t.Fatalf("RiseSet: %v", err)
	}
	if !win.Valid || !win.AlwaysVisible {
		t.Errorf("Cas A should be circumpolar from 51.5N: %+v", win)
	}
	// Max altitude at transit: 90 - lat + dec
	wantMax := 90.0 - obs.LatDeg + rd.DecDeg
	if math.Abs(win.MaxAltitude-wantMax) > 1.0 {
		t.Errorf("max altitude = %v, want ~%v", win.MaxAltitude, wantMax)
	}
}

func TestRiseSetNeverVisible(t *testing.T) {
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}
	rd := RADec{RAHours: 13.4246, DecDeg: -43.0192} // Centaurus A
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	win, err := RiseSet(obs, daySamples(rd, start))
	if err != nil {
		t.Fatalf("RiseSet: %v", err)
	}
	if !win.Valid || !win.NeverVisible {
		t.Errorf("Centaurus A should never rise from 51.5N: %+v", win)
	}
}

func TestRiseSetNormalCycle(t *testing.T) {
	obs := Observer{LatDeg: 51.4778, LonDeg: -0.0015}
	rd := RADec{RAHours: 5.5756, DecDeg: 22.0145} // Taurus A
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	win, err := RiseSet(obs, daySamples(rd, start))
	if err != nil {
		t.Fatalf("RiseSet: %v", err)
	}
	if !win.Valid || win.AlwaysVisible || win.NeverVisible {
		t.Fatalf("Taurus A should have a normal rise/set cycle: %+v", win)
	}

	wantMax := 90.0 - obs.LatDeg + rd.DecDeg
	if math.Abs(win.MaxAltitude-wantMax) > 1.0 {
		t.Errorf("max altitude = %v, want ~%v", win.MaxAltitude, wantMax)
	}

	// Altitude at the interpolated crossings should be near zero
	if !win.Rise.IsZero() {
		if alt := CurrentAltitude(obs, rd, win.Rise); math.Abs(alt) > 0.5 {
			t.Errorf("altitude at rise = %v, want ~0", alt)
		}
	}
	if !win.Set.IsZero() {
		if alt := CurrentAltitude(obs, rd, win.Set); math.Abs(alt) > 0.5 {
			t.Errorf("altitude at set = %v, want ~0", alt)
		}
	}
}

func TestCurrentAltitudeMatchesTransform(t *testing.T) {
	obs := Observer{LatDeg: 35, LonDeg: -117}
	rd := RADec{RAHours: 12, DecDeg: 10}
	testTime := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	want := EquatorialToHorizontal(rd, obs, testTime, false).AltDeg
	if got := CurrentAltitude(obs, rd, testTime); got != want {
		t.Errorf("CurrentAltitude = %v, want %v", got, want)
	}
}

func TestInterpolateCrossing(t *testing.T) {
	t1 := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	mid := interpolateCrossing(t1, t2, -1.0, 1.0, 0.0)
	if d := mid.Sub(t1.Add(30 * time.Minute)); d < -time.Second || d > time.Second {
		t.Errorf("symmetric crossing should be at the midpoint, off by %v", d)
	}

	// Degenerate flat segment falls back to the first sample
	flat := interpolateCrossing(t1, t2, 0.0, 0.0, 0.0)
	if !flat.Equal(t1) {
		t.Errorf("flat segment should return t1, got %v", flat)
	}
}

func TestGetAltitudeTier(t *testing.T) {
	tests := []struct {
		altDeg float64
		want   AltitudeTier
	}{
		{-10, AltitudeNone},
		{0, AltitudeNone},
		{5, AltitudeLow},
		{15, AltitudeMedium},
		{44.9, AltitudeMedium},
		{45, AltitudeHigh},
		{90, AltitudeHigh},
	}

	for _, tt := range tests {
		if got := GetAltitudeTier(tt.altDeg); got != tt.want {
			t.Errorf("GetAltitudeTier(%v) = %v, want %v", tt.altDeg, got, tt.want)
		}
	}
}
