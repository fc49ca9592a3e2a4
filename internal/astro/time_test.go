package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name                                   string
		year, month, day, hour, minute, second int
		expected                               float64
		tol                                    float64
	}{
		{
			name: "J2000 epoch",
			year: 2000, month: 1, day: 1, hour: 12,
			expected: 2451545.0,
			tol:      1e-9,
		},
		{
			name: "Unix epoch",
			year: 1970, month: 1, day: 1,
			expected: 2440587.5,
			tol:      1e-9,
		},
		{
			name: "2024-01-01 00:00 UTC",
			year: 2024, month: 1, day: 1,
			expected: 2460310.5,
			tol:      1e-9,
		},
		{
			name: "Sputnik launch 1957-10-04 19:26:24",
			year: 1957, month: 10, day: 4, hour: 19, minute: 26, second: 24,
			expected: 2436116.31,
			tol:      1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDate(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("JulianDate() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestEpochConstants(t *testing.T) {
	if J2000 != 2451545.0 {
		t.Errorf("J2000 = %v, want 2451545.0", J2000)
	}
	// B1950 from calendar arithmetic: 1949-12-31 22:09 UT
	if math.Abs(B1950-2433282.4229166666) > 1e-8 {
		t.Errorf("B1950 = %v, want 2433282.4229166666", B1950)
	}
	if got := JulianDate(1949, 12, 31, 22, 9, 0); math.Abs(got-B1950) > 1e-9 {
		t.Errorf("JulianDate(1949-12-31 22:09) = %v, want B1950 = %v", got, B1950)
	}
}

func TestJulianDateTimeSubSecond(t *testing.T) {
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	withNs := base.Add(500 * time.Millisecond)

	diff := (JulianDateTime(withNs) - JulianDateTime(base)) * 86400.0
	if math.Abs(diff-0.5) > 1e-6 {
		t.Errorf("500ms should advance JD by 0.5s, got %vs", diff)
	}
}

func TestJulianDateRoundTrip(t *testing.T) {
	for year := 1900; year <= 2100; year += 20 {
		orig := time.Date(year, 3, 7, 5, 30, 15, 0, time.UTC)
		got := JulianDateToTime(JulianDateTime(orig))
		if d := got.Sub(orig); d < -time.Second || d > time.Second {
			t.Errorf("round trip for %v off by %v", orig, d)
		}
	}
}

func TestModifiedJulianDate(t *testing.T) {
	unixEpoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ModifiedJulianDate(unixEpoch); math.Abs(got-40587.0) > 1e-9 {
		t.Errorf("MJD at Unix epoch = %v, want 40587.0", got)
	}
}

func TestLocalSiderealTime(t *testing.T) {
	// At the J2000 epoch GMST is approximately 280.46 degrees
	t2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := LocalSiderealTime(t2000, 0); math.Abs(got-280.46) > 0.01 {
		t.Errorf("LST at J2000 lon=0 = %v, want ~280.46", got)
	}

	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	if got := LocalSiderealTime(testTime, 0); math.Abs(got-84.2590) > 0.01 {
		t.Errorf("LST 2024-06-15 12:00 lon=0 = %v, want ~84.2590", got)
	}

	// East longitude advances LST degree for degree
	lst0 := LocalSiderealTime(testTime, 0)
	lst90 := LocalSiderealTime(testTime, 90)
	if math.Abs(lst90-Modulo(lst0+90.0, 360.0)) > 1e-9 {
		t.Errorf("LST at lon=90 = %v, want %v", lst90, Modulo(lst0+90.0, 360.0))
	}

	for lon := -180.0; lon <= 180.0; lon += 30.0 {
		lst := LocalSiderealTime(testTime, lon)
		if lst < 0 || lst >= 360 {
			t.Errorf("LST at lon=%v out of range: %v", lon, lst)
		}
	}
}

func TestModulo(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{-10, 360, 350},
		{370, 360, 10},
		{0, 360, 0},
		{-370, 360, 350},
		{725, 360, 5},
		{25.5, 24, 1.5},
	}

	for _, tt := range tests {
		if got := Modulo(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Modulo(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLSTAndRAToLongitude(t *testing.T) {
	tests := []struct {
		lstDeg  float64
		raHours float64
		want    float64
	}{
		{100, 0, -100},
		{350, 0, 10},
		{0, 12, 180},
		{0, 0, 0},
	}

	for _, tt := range tests {
		got := LSTAndRAToLongitude(tt.lstDeg, tt.raHours)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LSTAndRAToLongitude(%v, %v) = %v, want %v", tt.lstDeg, tt.raHours, got, tt.want)
		}
	}
}
