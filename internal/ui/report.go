package ui

import (
	"fmt"
	"io"

	"github.com/litescript/ls-radiosky/internal/astro"
)

// WriteSummary writes a plain-text readout for headless use.
func WriteSummary(w io.Writer, obs astro.Observer, r Readout) {
	fmt.Fprintf(w, "%s  %s  (lat %.4f, lon %.4f, height %.0f m)\n",
		r.Time.UTC().Format("2006-01-02 15:04:05 UTC"), obs.Name, obs.LatDeg, obs.LonDeg, obs.HeightM)
	fmt.Fprintf(w, "  JD %.5f  MJD %.5f  LST %s\n", r.JD, r.MJD, formatHours(r.LSTDeg/15.0))

	fmt.Fprintf(w, "  Sun   az %8.3f  alt %+8.3f  RA %s  Dec %+.3f  rise %s  set %s\n",
		r.SunAzAlt.AzDeg, r.SunAzAlt.AltDeg, formatHours(r.SunRADec.RAHours), r.SunRADec.DecDeg,
		r.Sunrise.UTC().Format("15:04"), r.Sunset.UTC().Format("15:04"))
	fmt.Fprintf(w, "  Moon  az %8.3f  alt %+8.3f  RA %s  Dec %+.3f\n",
		r.MoonAzAlt.AzDeg, r.MoonAzAlt.AltDeg, formatHours(r.MoonRADec.RAHours), r.MoonRADec.DecDeg)

	fmt.Fprintf(w, "  %s  az %8.3f  alt %+8.3f  l %.3f  b %+.3f\n",
		r.Source.Name, r.SrcAzAlt.AzDeg, r.SrcAzAlt.AltDeg, r.GalL, r.GalB)
	if r.SrcAzAlt.AltDeg > 0 {
		fmt.Fprintf(w, "    refraction  %+.4f arcmin optical  %+.4f arcmin radio\n",
			r.RefracSaemundsson*60.0, r.RefracPAL*60.0)
	}

	fmt.Fprintf(w, "    v_lsrk %+.4f km/s (rot %+.4f, orbit %+.4f, solar %+.4f)\n",
		r.VLSRK, r.VRot, r.VOrb, r.VSun)
	fmt.Fprintf(w, "    rest %.6f MHz -> sky %.6f MHz\n", r.RestFreqHz/1e6, r.SkyFreqHz/1e6)
	if r.EphemerisDegraded {
		fmt.Fprintf(w, "    warning: date outside ephemeris range, orbit velocity degraded\n")
	}

	w2 := r.Window
	switch {
	case !w2.Valid:
		fmt.Fprintf(w, "    window unknown\n")
	case w2.NeverVisible:
		fmt.Fprintf(w, "    never rises\n")
	case w2.AlwaysVisible:
		fmt.Fprintf(w, "    circumpolar, transit %s UTC, max alt %.1f\n",
			w2.Transit.UTC().Format("15:04"), w2.MaxAltitude)
	default:
		fmt.Fprintf(w, "    rise %s  transit %s  set %s UTC, max alt %.1f\n",
			w2.Rise.UTC().Format("15:04"), w2.Transit.UTC().Format("15:04"),
			w2.Set.UTC().Format("15:04"), w2.MaxAltitude)
	}
}
