package ephem

import (
	"math"
	"testing"

	"github.com/litescript/ls-radiosky/internal/astro"
)

func vecClose(t *testing.T, name string, got astro.Vec3, wx, wy, wz, tol float64) {
	t.Helper()
	if math.Abs(got.X-wx) > tol || math.Abs(got.Y-wy) > tol || math.Abs(got.Z-wz) > tol {
		t.Errorf("%s = (%.10f, %.10f, %.10f), want (%.10f, %.10f, %.10f)",
			name, got.X, got.Y, got.Z, wx, wy, wz)
	}
}

func TestEarthStateAtReferenceDate(t *testing.T) {
	// Reference vectors for MJD 53411.52501161 from the published ERFA
	// ephemeris documentation.
	state := EarthStateAt(53411.52501161)

	vecClose(t, "heliocentric pos", state.Heliocentric.Pos,
		-0.7757238809, 0.5598052241, 0.2426998466, 1e-6)
	vecClose(t, "heliocentric vel", state.Heliocentric.Vel,
		-0.0109189182, -0.0124718726, -0.0054075694, 1e-6)
	vecClose(t, "barycentric pos", state.Barycentric.Pos,
		-0.7714104440, 0.5598412061, 0.2425996277, 1e-6)
	vecClose(t, "barycentric vel", state.Barycentric.Vel,
		-0.0109187426, -0.0124652443, -0.0054047731, 1e-6)

	if state.OutsideRange {
		t.Error("2005 date flagged as outside range")
	}
}

func TestEarthStateAtJ2000(t *testing.T) {
	// Early January: Earth is near perihelion.
	state := EarthStateAt(51544.5)

	r := state.Heliocentric.Pos.Norm()
	if math.Abs(r-0.983328) > 1e-3 {
		t.Errorf("heliocentric distance at J2000 = %v AU, want ~0.983", r)
	}

	v := state.Heliocentric.Vel.Norm()
	if math.Abs(v-0.017495) > 1e-4 {
		t.Errorf("heliocentric speed at J2000 = %v AU/day, want ~0.0175", v)
	}
}

func TestEarthStateOrbitEnvelope(t *testing.T) {
	// Sampled across several decades the Sun-Earth distance stays
	// between perihelion and aphelion, and the SSB offset stays small.
	for mjd := 47892.5; mjd < 62000.0; mjd += 197.0 {
		state := EarthStateAt(mjd)

		r := state.Heliocentric.Pos.Norm()
		if r < 0.97 || r > 1.04 {
			t.Errorf("MJD %v: heliocentric distance %v AU outside orbit envelope", mjd, r)
		}

		offset := state.Barycentric.Pos.Add(state.Heliocentric.Pos.Scale(-1.0)).Norm()
		if offset > 0.02 {
			t.Errorf("MJD %v: SSB-Sun offset %v AU too large", mjd, offset)
		}
	}
}

func TestEarthStateOutsideRange(t *testing.T) {
	tests := []struct {
		name string
		mjd  float64
		want bool
	}{
		{"J2000", 51544.5, false},
		{"2024", 60476.0, false},
		{"+150 years", 51544.5 + 150.0*365.25, true},
		{"-150 years", 51544.5 - 150.0*365.25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := EarthStateAt(tt.mjd)
			if state.OutsideRange != tt.want {
				t.Errorf("OutsideRange = %v, want %v", state.OutsideRange, tt.want)
			}
			// Values are still returned either way
			if state.Heliocentric.Pos.Norm() == 0 {
				t.Error("position is zero")
			}
		})
	}
}

func TestEpvTermCounts(t *testing.T) {
	counts := 0
	for _, family := range [2][3][3][]epvTerm{sunToEarth, ssbToSun} {
		for _, power := range family {
			for _, series := range power {
				counts += len(series)
			}
		}
	}
	if counts != 1951 {
		t.Errorf("total term count = %d, want 1951", counts)
	}
}
