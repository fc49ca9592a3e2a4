package astro

import (
	"math"
	"testing"
)

func TestAzAltToXY85Zenith(t *testing.T) {
	for _, az := range []float64{0, 45, 180, 315} {
		x, y := AzAltToXY85(AzAlt{AzDeg: az, AltDeg: 90})
		if x != 0 || y != 0 {
			t.Errorf("zenith at az=%v -> (%v, %v), want (0, 0)", az, x, y)
		}
	}
}

func TestAzAltToXY85Horizon(t *testing.T) {
	// The cot(el) term is singular on the horizon; x branches to its
	// signed limit depending on which side of the E-W line az falls.
	tests := []struct {
		az         float64
		wantX      float64
		wantY      float64
	}{
		{90, 0, 90},
		{270, 0, -90},
		{180, 90, 0},
		{0, -90, 0},
		{135, 90, 45},
		{315, -90, -45},
	}

	for _, tt := range tests {
		x, y := AzAltToXY85(AzAlt{AzDeg: tt.az, AltDeg: 0})
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("az=%v el=0 -> (%v, %v), want (%v, %v)", tt.az, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestAzAltToXY30Horizon(t *testing.T) {
	tests := []struct {
		az         float64
		wantX      float64
		wantY      float64
	}{
		{0, 0, 90},
		{180, 0, -90},
		{90, 90, 0},
		{270, -90, 0},
		{45, 90, 45},
		{225, -90, -45},
	}

	for _, tt := range tests {
		x, y := AzAltToXY30(AzAlt{AzDeg: tt.az, AltDeg: 0})
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("az=%v el=0 -> (%v, %v), want (%v, %v)", tt.az, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestXY85RoundTrip(t *testing.T) {
	for az := 10.0; az < 360.0; az += 40.0 {
		for _, el := range []float64{5, 25, 45, 65, 85} {
			x, y := AzAltToXY85(AzAlt{AzDeg: az, AltDeg: el})
			back := XY85ToAzAlt(x, y)

			if math.Abs(back.AzDeg-az) > 1e-9 || math.Abs(back.AltDeg-el) > 1e-9 {
				t.Errorf("round trip (%v, %v) -> (%v, %v) -> (%v, %v)",
					az, el, x, y, back.AzDeg, back.AltDeg)
			}
		}
	}
}

func TestXY30RoundTrip(t *testing.T) {
	for az := 10.0; az < 360.0; az += 40.0 {
		for _, el := range []float64{5, 25, 45, 65, 85} {
			x, y := AzAltToXY30(AzAlt{AzDeg: az, AltDeg: el})
			back := XY30ToAzAlt(x, y)

			if math.Abs(back.AzDeg-az) > 1e-9 || math.Abs(back.AltDeg-el) > 1e-9 {
				t.Errorf("round trip (%v, %v) -> (%v, %v) -> (%v, %v)",
					az, el, x, y, back.AzDeg, back.AltDeg)
			}
		}
	}
}

func TestXY85ToAzAltZenithCollapse(t *testing.T) {
	aa := XY85ToAzAlt(0, 0)
	if aa.AzDeg != 0 || aa.AltDeg != 90 {
		t.Errorf("(0,0) -> (%v, %v), want (0, 90)", aa.AzDeg, aa.AltDeg)
	}

	aa = XY30ToAzAlt(0, 0)
	if aa.AzDeg != 0 || aa.AltDeg != 90 {
		t.Errorf("(0,0) -> (%v, %v), want (0, 90)", aa.AzDeg, aa.AltDeg)
	}
}

func TestXY85ToAzAltSingularAxes(t *testing.T) {
	// x=0: the 1/sin(x) term is singular, az comes from the sign of y
	aa := XY85ToAzAlt(0, 45)
	if math.Abs(aa.AzDeg-90) > 1e-9 || math.Abs(aa.AltDeg-45) > 1e-9 {
		t.Errorf("(0, 45) -> (%v, %v), want (90, 45)", aa.AzDeg, aa.AltDeg)
	}
	aa = XY85ToAzAlt(0, -45)
	if math.Abs(aa.AzDeg-270) > 1e-9 || math.Abs(aa.AltDeg-45) > 1e-9 {
		t.Errorf("(0, -45) -> (%v, %v), want (270, 45)", aa.AzDeg, aa.AltDeg)
	}

	// y=±90: the tan(y) term is singular
	aa = XY85ToAzAlt(10, 90)
	if math.Abs(aa.AzDeg-90) > 1e-9 || math.Abs(aa.AltDeg) > 1e-9 {
		t.Errorf("(10, 90) -> (%v, %v), want (90, 0)", aa.AzDeg, aa.AltDeg)
	}
	aa = XY85ToAzAlt(10, -90)
	if math.Abs(aa.AzDeg-270) > 1e-9 || math.Abs(aa.AltDeg) > 1e-9 {
		t.Errorf("(10, -90) -> (%v, %v), want (270, 0)", aa.AzDeg, aa.AltDeg)
	}
}

func TestXY30ToAzAltSingularAxes(t *testing.T) {
	// y=0: cot(y) is singular, az comes from the sign of x
	aa := XY30ToAzAlt(5, 0)
	if math.Abs(aa.AzDeg-90) > 1e-9 || math.Abs(aa.AltDeg-85) > 1e-9 {
		t.Errorf("(5, 0) -> (%v, %v), want (90, 85)", aa.AzDeg, aa.AltDeg)
	}
	aa = XY30ToAzAlt(-5, 0)
	if math.Abs(aa.AzDeg-270) > 1e-9 || math.Abs(aa.AltDeg-85) > 1e-9 {
		t.Errorf("(-5, 0) -> (%v, %v), want (270, 85)", aa.AzDeg, aa.AltDeg)
	}

	aa = XY30ToAzAlt(10, 90)
	if math.Abs(aa.AzDeg) > 1e-9 || math.Abs(aa.AltDeg) > 1e-9 {
		t.Errorf("(10, 90) -> (%v, %v), want (0, 0)", aa.AzDeg, aa.AltDeg)
	}
	aa = XY30ToAzAlt(10, -90)
	if math.Abs(aa.AzDeg-180) > 1e-9 || math.Abs(aa.AltDeg) > 1e-9 {
		t.Errorf("(10, -90) -> (%v, %v), want (180, 0)", aa.AzDeg, aa.AltDeg)
	}
}

func TestFoldPastZenith(t *testing.T) {
	// Elevations above 90 reflect through the zenith
	x1, y1 := AzAltToXY85(AzAlt{AzDeg: 0, AltDeg: 100})
	x2, y2 := AzAltToXY85(AzAlt{AzDeg: 180, AltDeg: 80})
	if math.Abs(x1-x2) > 1e-9 || math.Abs(y1-y2) > 1e-9 {
		t.Errorf("(0, 100) -> (%v, %v) but (180, 80) -> (%v, %v)", x1, y1, x2, y2)
	}

	x1, y1 = AzAltToXY30(AzAlt{AzDeg: 270, AltDeg: 95})
	x2, y2 = AzAltToXY30(AzAlt{AzDeg: 90, AltDeg: 85})
	if math.Abs(x1-x2) > 1e-9 || math.Abs(y1-y2) > 1e-9 {
		t.Errorf("(270, 95) -> (%v, %v) but (90, 85) -> (%v, %v)", x1, y1, x2, y2)
	}
}
