package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-radiosky/internal/astro"
	"github.com/litescript/ls-radiosky/internal/radial"
	"github.com/litescript/ls-radiosky/internal/refraction"
)

var testObserver = astro.Observer{LatDeg: 51.4778, LonDeg: -0.0015, HeightM: 50, Name: "Greenwich"}

func testReadout() Readout {
	catalog := astro.DefaultSourceCatalog()
	casA, _ := catalog.Lookup("Cassiopeia A")
	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	return Compute(at, testObserver, refraction.StandardAtmosphere(), radial.HydrogenLineFreq, casA)
}

func TestCompute(t *testing.T) {
	r := testReadout()

	if r.JD < 2460476.9 || r.JD > 2460477.1 {
		t.Errorf("JD = %v, want ~2460477.0", r.JD)
	}
	if r.LSTDeg < 0 || r.LSTDeg >= 360 {
		t.Errorf("LST out of range: %v", r.LSTDeg)
	}
	if r.SunAzAlt.AltDeg < 55 || r.SunAzAlt.AltDeg > 65 {
		t.Errorf("June noon Sun altitude = %v, want ~62", r.SunAzAlt.AltDeg)
	}

	// LSRK shift on the hydrogen line stays within +/-300 kHz
	if shift := math.Abs(r.SkyFreqHz - r.RestFreqHz); shift > 300e3 {
		t.Errorf("sky frequency shift = %v Hz, implausibly large", shift)
	}
	if math.Abs(r.VLSRK-(r.VRot+r.VOrb+r.VSun)) > 1e-9 {
		t.Error("velocity components do not sum to total")
	}

	// Cas A is circumpolar from London
	if !r.Window.Valid || !r.Window.AlwaysVisible {
		t.Errorf("Cas A window = %+v, want circumpolar", r.Window)
	}

	if r.EphemerisDegraded {
		t.Error("2024 date flagged as ephemeris degraded")
	}
}

func TestComputeRefractionOnlyAboveHorizon(t *testing.T) {
	r := testReadout()
	if r.SrcAzAlt.AltDeg > 0 && r.RefracPAL <= 0 {
		t.Errorf("source up but no refraction: alt=%v refrac=%v", r.SrcAzAlt.AltDeg, r.RefracPAL)
	}
}

func TestWriteSummary(t *testing.T) {
	var b strings.Builder
	WriteSummary(&b, testObserver, testReadout())
	out := b.String()

	for _, want := range []string{"Greenwich", "Cassiopeia A", "v_lsrk", "Sun", "Moon", "MJD"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestModelSourceCycling(t *testing.T) {
	catalog := astro.DefaultSourceCatalog()
	m := New(testObserver, refraction.StandardAtmosphere(), radial.HydrogenLineFreq, catalog, 0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	if m.selected != 1 {
		t.Errorf("selected after right = %d, want 1", m.selected)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	if m.selected != len(catalog.Sources)-1 {
		t.Errorf("selected should wrap to %d, got %d", len(catalog.Sources)-1, m.selected)
	}
}

func TestModelView(t *testing.T) {
	catalog := astro.DefaultSourceCatalog()
	m := New(testObserver, refraction.StandardAtmosphere(), radial.HydrogenLineFreq, catalog, 0)

	if got := m.View(); got != "Initializing..." {
		t.Errorf("view before first WindowSizeMsg = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	out := m.View()

	for _, want := range []string{"LS-RADIOSKY", "Sun", "Moon", "LSRK", "Cassiopeia A"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
