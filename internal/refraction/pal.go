package refraction

import "math"

// Port of the Starlink PAL refro/refco/refz routines (themselves derived
// from SLALIB). The atmosphere is modeled as two physically distinct
// layers: a troposphere with a linear temperature lapse and a power-law
// refractive index, and a stratosphere with exponential decay. The
// refraction integral through each layer is evaluated with an adaptive
// Simpson quadrature.

// Fixed model parameters.
const (
	d93      = 1.623156204 // 93 degrees in radians
	gcr      = 8314.32     // universal gas constant
	dmd      = 28.9644     // molecular weight of dry air
	dmw      = 18.0152     // molecular weight of water vapour
	earthR   = 6378120.0   // mean Earth radius, metres
	delta    = 18.36       // exponent of temperature dependence of water vapour pressure
	tropoTop = 11000.0     // height of tropopause, metres
	stratTop = 80000.0     // upper limit for refractive effects, metres
	maxStrip = 16384       // quadrature: maximum number of strips
)

// atmosLayer models the refractive index profile of one atmosphere layer.
type atmosLayer interface {
	// refractivity returns the refractive index dn and r*dn/dr at radius
	// r from the Earth's centre.
	refractivity(r float64) (dn, rdndr float64)
}

// troposphere has a linear temperature lapse and a power-law refractive
// index model. Temperatures are clamped to [100, 320] K.
type troposphere struct {
	r0, t0, alpha          float64
	gamm2, delm2           float64
	c1, c2, c3, c4, c5, c6 float64
}

func (l troposphere) refractivity(r float64) (dn, rdndr float64) {
	t := math.Min(math.Max(l.t0-l.alpha*(r-l.r0), 100.0), 320.0)
	tt0 := t / l.t0
	tt0gm2 := math.Pow(tt0, l.gamm2)
	tt0dm2 := math.Pow(tt0, l.delm2)
	dn = 1.0 + (l.c1*tt0gm2-(l.c2-l.c5/t)*tt0dm2)*tt0
	rdndr = r * (-l.c3*tt0gm2 + (l.c4-l.c6/tt0)*tt0dm2)
	return dn, rdndr
}

// stratosphere has an exponential refractivity decay above the
// tropopause.
type stratosphere struct {
	rt, tt, dnt, gamal float64
}

func (l stratosphere) refractivity(r float64) (dn, rdndr float64) {
	b := l.gamal / l.tt
	w := (l.dnt - 1.0) * math.Exp(-b*(r-l.rt))
	return 1.0 + w, -r * b * w
}

// refi is the refraction integrand.
func refi(dn, rdndr float64) float64 {
	return rdndr / (dn + rdndr)
}

// drange normalizes an angle into +/- pi.
func drange(angle float64) float64 {
	result := math.Mod(angle, 2.0*math.Pi)
	if result > math.Pi {
		result -= 2.0 * math.Pi
	} else if result < -math.Pi {
		result += 2.0 * math.Pi
	}
	return result
}

// refro computes the atmospheric refraction in radians for radio and
// optical/IR wavelengths at an observed zenith distance zobs (radians).
//
//	hm   height of the observer above sea level (metres)
//	tdk  ambient temperature at the observer (K)
//	pmb  pressure at the observer (millibars)
//	rh   relative humidity at the observer (0-1)
//	wl   effective wavelength (micrometres); >100 selects the radio model
//	phi  latitude of the observer (radians)
//	tlr  temperature lapse rate in the troposphere (K/metre)
//	eps  precision required to terminate the iteration (radians)
//
// All inputs are kept within safe bounds by clamping. The sign of the
// result follows the sign of the range-reduced zenith distance.
func refro(zobs, hm, tdk, pmb, rh, wl, phi, tlr, eps float64) float64 {
	// Transform zobs into the normal range.
	zobs1 := drange(zobs)
	zobs2 := math.Min(math.Abs(zobs1), d93)

	// Keep other arguments within safe bounds.
	hmok := math.Min(math.Max(hm, -1e3), stratTop)
	tdkok := math.Min(math.Max(tdk, 100.0), 500.0)
	pmbok := math.Min(math.Max(pmb, 0.0), 10000.0)
	rhok := math.Min(math.Max(rh, 0.0), 1.0)
	wlok := math.Max(wl, 0.1)
	alpha := math.Min(math.Max(math.Abs(tlr), 0.001), 0.01)

	// Tolerance for the quadrature iteration.
	tol := math.Min(math.Max(math.Abs(eps), 1e-12), 0.1) / 2.0

	// Optical/IR or radio case, switching at 100 microns.
	optic := wlok < 100.0

	// Model atmosphere parameters defined at the observer.
	wlsq := wlok * wlok
	gb := 9.784 * (1.0 - 0.0026*math.Cos(phi+phi) - 0.00000028*hmok)
	var a float64
	if optic {
		a = (287.6155 + (1.62887+0.01360/wlsq)/wlsq) * 273.15e-6 / 1013.25
	} else {
		a = 77.6890e-6
	}
	gamal := gb * dmd / gcr
	gamma := gamal / alpha
	gamm2 := gamma - 2.0
	delm2 := delta - 2.0
	tdc := tdkok - 273.15
	psat := math.Pow(10.0, (0.7859+0.03477*tdc)/(1.0+0.00412*tdc)) *
		(1.0 + pmbok*(4.5e-6+6.0e-10*tdc*tdc))
	pwo := 0.0
	if pmbok > 0.0 {
		pwo = rhok * psat / (1.0 - (1.0-rhok)*psat/pmbok)
	}
	w := pwo * (1.0 - dmw/dmd) * gamma / (delta - gamma)
	c1 := a * (pmbok + w) / tdkok
	var c2 float64
	if optic {
		c2 = (a*w + 11.2684e-6*pwo) / tdkok
	} else {
		c2 = (a*w + 6.3938e-6*pwo) / tdkok
	}
	c3 := (gamma - 1.0) * alpha * c1 / tdkok
	c4 := (delta - 1.0) * alpha * c2 / tdkok
	c5, c6 := 0.0, 0.0
	if !optic {
		c5 = 375463e-6 * pwo / tdkok
		c6 = c5 * delm2 * alpha / (tdkok * tdkok)
	}

	tropo := troposphere{
		r0: earthR + hmok, t0: tdkok, alpha: alpha,
		gamm2: gamm2, delm2: delm2,
		c1: c1, c2: c2, c3: c3, c4: c4, c5: c5, c6: c6,
	}

	// Conditions at the observer.
	r0 := tropo.r0
	dn0, rdndr0 := tropo.refractivity(r0)
	sk0 := dn0 * r0 * math.Sin(zobs2)
	f0 := refi(dn0, rdndr0)

	// Conditions in the troposphere at the tropopause.
	rt := earthR + math.Max(tropoTop, hmok)
	dnt, rdndrt := tropo.refractivity(rt)
	sine := sk0 / (rt * dnt)
	zt := math.Atan2(sine, math.Sqrt(math.Max(1.0-sine*sine, 0.0)))
	ft := refi(dnt, rdndrt)

	// The stratosphere model continues from the tropopause temperature.
	tt := math.Min(math.Max(tropo.t0-alpha*(rt-r0), 100.0), 320.0)
	strato := stratosphere{rt: rt, tt: tt, dnt: dnt, gamal: gamal}

	// Conditions in the stratosphere at the tropopause.
	dnts, rdndrp := strato.refractivity(rt)
	sine = sk0 / (rt * dnts)
	zts := math.Atan2(sine, math.Sqrt(math.Max(1.0-sine*sine, 0.0)))
	fts := refi(dnts, rdndrp)

	// Conditions at the stratosphere limit.
	rs := earthR + stratTop
	dns, rdndrs := strato.refractivity(rs)
	sine = sk0 / (rs * dns)
	zs := math.Atan2(sine, math.Sqrt(math.Max(1.0-sine*sine, 0.0)))
	fs := refi(dns, rdndrs)

	// Integrate the refraction integral, troposphere then stratosphere.
	reft := integrateLayer(tropo, zobs2, zt-zobs2, f0, ft, sk0, r0, tol)
	refs := integrateLayer(strato, zts, zs-zts, fts, fs, sk0, rt, tol)

	ref := reft + refs
	if zobs1 < 0.0 {
		ref = -ref
	}
	return ref
}

// integrateLayer evaluates the refraction integral through one atmosphere
// layer with adaptive Simpson quadrature: start with 8 strips, double on
// non-convergence up to maxStrip, reusing previously computed values as
// the even ordinates of the next pass. At each integration point the
// physical radius for a given sine of zenith angle is recovered by a
// bounded fixed-point iteration (at most 4 steps, stopping once the
// radius moves by no more than a metre).
func integrateLayer(layer atmosLayer, z0, zrange, fb, ff, sk0, rStart, tol float64) float64 {
	refold := 1.0
	strips := 8
	fo, fe := 0.0, 0.0
	step := 1

	for {
		h := zrange / float64(strips)
		r := rStart

		for i := 1; i < strips; i += step {
			sz := math.Sin(z0 + h*float64(i))
			if sz > 1e-20 {
				w := sk0 / sz
				rg := r
				dr := 1.0e6
				for j := 0; math.Abs(dr) > 1.0 && j < 4; j++ {
					dn, rdndr := layer.refractivity(rg)
					dr = (rg*dn - w) / (dn + rdndr)
					rg -= dr
				}
				r = rg
			}

			dn, rdndr := layer.refractivity(r)
			f := refi(dn, rdndr)

			// Accumulate odd and (first pass only) even ordinates.
			if step == 1 && i%2 == 0 {
				fe += f
			} else {
				fo += f
			}
		}

		refp := h * (fb + 4.0*fo + 2.0*fe + ff) / 3.0

		if math.Abs(refp-refold) <= tol || strips >= maxStrip {
			return refp
		}
		refold = refp
		strips += strips
		// Sum of all current ordinates becomes the next pass's evens;
		// only new odd ordinates need computing.
		fe += fo
		fo = 0.0
		step = 2
	}
}

// refco determines the two constants of the rational refraction model by
// fitting refro at zenith distances arctan(1) and arctan(4).
func refco(hm, tdk, pmb, rh, wl, phi, tlr, eps float64) (refa, refb float64) {
	const (
		atn1 = 0.7853981633974483
		atn4 = 1.325817663668033
	)

	r1 := refro(atn1, hm, tdk, pmb, rh, wl, phi, tlr, eps)
	r2 := refro(atn4, hm, tdk, pmb, rh, wl, phi, tlr, eps)

	return (64.0*r1 - r2) / 60.0, (r2 - 4.0*r1) / 60.0
}

// refz applies the fitted refraction model to an unrefracted zenith
// distance zu (radians), returning the refracted zenith distance. Beyond
// 83 degrees a high-zenith-angle model blends in, with a hard cap at 93
// degrees.
func refz(zu, refa, refb float64) float64 {
	const (
		d93deg = 93.0                      // largest usable ZD, degrees
		z83    = 83.0 * math.Pi / 180.0    // handover ZD, radians
		hc1    = +0.55445
		hc2    = -0.01133
		hc3    = +0.00202
		hc4    = +0.28385
		hc5    = +0.02390
	)
	// High-ZD model prediction (deg) at the handover point.
	const ref83 = (hc1 + hc2*7.0 + hc3*49.0) / (1.0 + hc4*7.0 + hc5*49.0)

	zu1 := math.Min(zu, z83)

	// Functions of ZD.
	zl := zu1
	s := math.Sin(zl)
	c := math.Cos(zl)
	t := s / c
	tsq := t * t
	tcu := t * tsq

	// Refracted ZD (mathematically to better than 1 mas at 70 deg).
	zl -= (refa*t + refb*tcu) / (1.0 + (refa+3.0*refb*tsq)/(c*c))

	// Further iteration.
	s = math.Sin(zl)
	c = math.Cos(zl)
	t = s / c
	tsq = t * t
	tcu = t * tsq
	ref := zu1 - zl + (zl-zu1+refa*t+refb*tcu)/(1.0+(refa+3.0*refb*tsq)/(c*c))

	// Special handling for large zu.
	if zu > zu1 {
		e := 90.0 - math.Min(d93deg, zu*180.0/math.Pi)
		e2 := e * e
		ref = (ref / ref83) * (hc1 + hc2*e + hc3*e2) / (1.0 + hc4*e + hc5*e2)
	}

	return zu - ref
}
