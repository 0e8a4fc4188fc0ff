// Package astrometry transforms star positions between the ICRS, the CIRS
// and observed coordinates.
//
// The work splits in two. The Apc*/Apio* builders compute an Astrom, the
// star-independent parameters for one epoch and site. The quick functions
// (Atciq, Aticq, Atioq, Atoiq and friends) then apply them to any number of
// stars. The *13 variants do both steps from UTC or TDB alone, using the
// IAU 2006/2000A models and the built-in Earth ephemeris.
package astrometry

import (
	"errors"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/eph"
	"github.com/litescript/ls-sofa/pkg/sofa/erst"
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/ts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Astrom holds the star-independent astrometry parameters.
//
// Vectors EB and EH are BCRS with respect to the solar system barycenter
// and the Sun, in au. V is the observer's barycentric velocity in units
// of c. The observer-dependent fields after BPN are used only by the
// CIRS to observed functions.
type Astrom struct {
	PMT    float64 // proper motion time interval, Julian years
	EB     vm.Vec3 // SSB to observer (au)
	EH     vm.Vec3 // Sun to observer, unit vector
	EM     float64 // distance from Sun to observer (au)
	V      vm.Vec3 // barycentric observer velocity (c)
	BM1    float64 // sqrt(1-|v|^2), reciprocal of Lorentz factor
	BPN    vm.Mat3 // bias-precession-nutation matrix
	Along  float64 // longitude + s' (radians)
	Phi    float64 // geodetic latitude (radians)
	Xpl    float64 // polar motion xp wrt local meridian (radians)
	Ypl    float64 // polar motion yp wrt local meridian (radians)
	Sphi   float64 // sine of geodetic latitude
	Cphi   float64 // cosine of geodetic latitude
	Diurab float64 // magnitude of diurnal aberration vector
	Eral   float64 // "local" Earth rotation angle (radians)
	Refa   float64 // refraction constant A (radians)
	Refb   float64 // refraction constant B (radians)
}

// LdBody describes a solar-system body for light deflection.
type LdBody struct {
	BM float64 // mass of the body (solar masses)
	DL float64 // deflection limiter (radians^2/2)
	PV vm.PV   // barycentric PV of the body (au, au/day)
}

// IsWarning reports whether err only carries warnings, from the leap
// second table or the Earth ephemeris, so the results alongside it are
// usable.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !IsWarning(e) {
				return false
			}
		}
		return true
	}
	return ts.IsWarning(err) || errors.Is(err, eph.ErrDateRange)
}

// Apcs prepares for ICRS <-> GCRS transformations for an observer whose
// geocentric position and velocity are known, given the Earth ephemeris.
// pv is the observer's geocentric GCRS PV (m, m/s); ebpv the Earth's
// barycentric PV (au, au/day) and ehp its heliocentric position (au).
func Apcs(date1, date2 float64, pv, ebpv vm.PV, ehp vm.Vec3) Astrom {
	// au/d to m/s.
	const auDay = consts.DAU / consts.DAYSEC
	// au/d to units of c.
	const cr = consts.AULT / consts.DAYSEC

	var a Astrom
	a.PMT = ((date1 - consts.DJ00) + date2) / consts.DJY

	var pb, vb, ph vm.Vec3
	for i := 0; i < 3; i++ {
		dp := pv[0][i] / consts.DAU
		dv := pv[1][i] / auDay
		pb[i] = ebpv[0][i] + dp
		vb[i] = ebpv[1][i] + dv
		ph[i] = ehp[i] + dp
	}

	a.EB = pb
	a.EM, a.EH = vm.Pn(ph)

	var v2 float64
	for i := 0; i < 3; i++ {
		w := vb[i] * cr
		a.V[i] = w
		v2 += w * w
	}
	a.BM1 = math.Sqrt(1.0 - v2)
	a.BPN = vm.Ir()
	return a
}

// Apcs13 is Apcs with the Earth ephemeris from eph.Epv00 at TDB
// date1+date2.
func Apcs13(date1, date2 float64, pv vm.PV) (Astrom, error) {
	ehpv, ebpv, err := eph.Epv00(date1, date2)
	return Apcs(date1, date2, pv, ebpv, ehpv[0]), err
}

// Apcg prepares for ICRS <-> GCRS transformations for a geocentric
// observer.
func Apcg(date1, date2 float64, ebpv vm.PV, ehp vm.Vec3) Astrom {
	return Apcs(date1, date2, vm.Zpv(), ebpv, ehp)
}

// Apcg13 is Apcg with the Earth ephemeris from eph.Epv00.
func Apcg13(date1, date2 float64) (Astrom, error) {
	ehpv, ebpv, err := eph.Epv00(date1, date2)
	return Apcg(date1, date2, ebpv, ehpv[0]), err
}

// Apci prepares for ICRS <-> CIRS transformations for a terrestrial
// observer, given the CIP X,Y and CIO locator s. Earth rotation, polar
// motion, diurnal aberration and refraction are left out.
func Apci(date1, date2 float64, ebpv vm.PV, ehp vm.Vec3, x, y, s float64) Astrom {
	a := Apcg(date1, date2, ebpv, ehp)
	a.BPN = pnp.C2ixys(x, y, s)
	return a
}

// Apci13 is Apci using the IAU 2006/2000A precession-nutation model at
// TDB date1+date2. It also returns the equation of the origins, ERA-GST.
func Apci13(date1, date2 float64) (Astrom, float64, error) {
	ehpv, ebpv, err := eph.Epv00(date1, date2)

	r := pnp.Pnm06a(date1, date2)
	x, y := pnp.Bpn2xy(r)
	s := pnp.S06(date1, date2, x, y)

	a := Apci(date1, date2, ebpv, ehpv[0], x, y, s)
	return a, pnp.Eors(r, s), err
}

// localRotation returns the celestial-to-local rotation angle ERA+elong
// and the polar motion with respect to the local meridian.
func localRotation(theta, sp, xp, yp, elong float64) (eral, xpl, ypl float64) {
	r := vm.Rz(theta+sp, vm.Ir())
	r = vm.Ry(-xp, r)
	r = vm.Rx(-yp, r)
	r = vm.Rz(elong, r)

	a, b := r[0][0], r[0][1]
	if a != 0 || b != 0 {
		eral = math.Atan2(b, a)
	}
	xpl = math.Atan2(r[0][2], math.Sqrt(a*a+b*b))

	a, b = r[1][2], r[2][2]
	if a != 0 || b != 0 {
		ypl = -math.Atan2(a, b)
	}
	return eral, xpl, ypl
}

// Apco prepares for ICRS <-> observed transformations for a terrestrial
// observer, given all the Earth orientation and ephemeris inputs.
//
// theta is the ERA, elong/phi/hm the WGS84 geodetic site, xp/yp/sp the
// polar motion and TIO locator, refa/refb the refraction constants.
func Apco(date1, date2 float64, ebpv vm.PV, ehp vm.Vec3, x, y, s, theta, elong, phi, hm, xp, yp, sp, refa, refb float64) Astrom {
	eral, xpl, ypl := localRotation(theta, sp, xp, yp, elong)

	// Observer's geocentric GCRS position and velocity.
	r := pnp.C2ixys(x, y, s)
	pvc := Pvtob(elong, phi, hm, xp, yp, sp, theta)
	pv := vm.Trxpv(r, pvc)

	a := Apcs(date1, date2, pv, ebpv, ehp)
	a.BPN = r
	a.Along = vm.Anpm(eral - theta)
	a.Phi = phi
	a.Xpl = xpl
	a.Ypl = ypl
	a.Sphi, a.Cphi = math.Sincos(phi)
	a.Eral = eral
	a.Refa = refa
	a.Refb = refb
	return a
}

// Observatory bundles the site and atmosphere arguments of Apco13 and
// Apio13.
type Observatory struct {
	Elong, Phi, Height float64 // WGS84 longitude, latitude (radians), height (m)
	Xp, Yp             float64 // polar motion (radians)
	Pressure           float64 // hPa
	Temperature        float64 // deg C
	Humidity           float64 // relative, 0-1
	Wavelength         float64 // micrometres
}

// Apco13 is Apco starting from UTC date utc1+utc2 and UT1-UTC dut1
// (seconds), using the IAU 2006/2000A models and the built-in ephemeris.
// It also returns the equation of the origins.
//
// A ts.ErrDubiousYear or eph.ErrDateRange warning comes back with usable
// results; any other error leaves them zero.
func Apco13(utc1, utc2, dut1 float64, o Observatory) (Astrom, float64, error) {
	tai1, tai2, err := ts.Utctai(utc1, utc2)
	if err != nil && !ts.IsWarning(err) {
		return Astrom{}, 0, err
	}
	tt1, tt2 := ts.Taitt(tai1, tai2)
	ut11, ut12, err := ts.Utcut1(utc1, utc2, dut1)
	if err != nil && !ts.IsWarning(err) {
		return Astrom{}, 0, err
	}
	warn := err

	// TT is used for TDB throughout.
	ehpv, ebpv, err := eph.Epv00(tt1, tt2)
	warn = errors.Join(warn, err)

	r := pnp.Pnm06a(tt1, tt2)
	x, y := pnp.Bpn2xy(r)
	s := pnp.S06(tt1, tt2, x, y)
	theta := erst.Era00(ut11, ut12)
	sp := pnp.Sp00(tt1, tt2)
	refa, refb := Refco(o.Pressure, o.Temperature, o.Humidity, o.Wavelength)

	a := Apco(tt1, tt2, ebpv, ehpv[0], x, y, s, theta, o.Elong, o.Phi, o.Height, o.Xp, o.Yp, sp, refa, refb)
	return a, pnp.Eors(r, s), warn
}

// Apio prepares for CIRS <-> observed transformations for a terrestrial
// observer, given the Earth orientation and refraction inputs. Only the
// observer-dependent fields of the result are set.
func Apio(sp, theta, elong, phi, hm, xp, yp, refa, refb float64) Astrom {
	var a Astrom
	a.Eral, a.Xpl, a.Ypl = localRotation(theta, sp, xp, yp, elong)
	a.Along = vm.Anpm(a.Eral - theta)
	a.Phi = phi
	a.Sphi, a.Cphi = math.Sincos(phi)

	pv := Pvtob(elong, phi, hm, xp, yp, sp, theta)
	a.Diurab = math.Sqrt(pv[1][0]*pv[1][0]+pv[1][1]*pv[1][1]) / consts.CMPS

	a.Refa = refa
	a.Refb = refb
	return a
}

// Apio13 is Apio starting from UTC date utc1+utc2 and UT1-UTC dut1.
func Apio13(utc1, utc2, dut1 float64, o Observatory) (Astrom, error) {
	tai1, tai2, err := ts.Utctai(utc1, utc2)
	if err != nil && !ts.IsWarning(err) {
		return Astrom{}, err
	}
	tt1, tt2 := ts.Taitt(tai1, tai2)
	ut11, ut12, err := ts.Utcut1(utc1, utc2, dut1)
	if err != nil && !ts.IsWarning(err) {
		return Astrom{}, err
	}

	sp := pnp.Sp00(tt1, tt2)
	theta := erst.Era00(ut11, ut12)
	refa, refb := Refco(o.Pressure, o.Temperature, o.Humidity, o.Wavelength)

	return Apio(sp, theta, o.Elong, o.Phi, o.Height, o.Xp, o.Yp, refa, refb), err
}

// Aper updates the local Earth rotation angle in a for a new ERA theta,
// leaving everything else alone. It avoids rebuilding the whole block
// when only the time of day moves.
func Aper(theta float64, a *Astrom) {
	a.Eral = theta + a.Along
}

// Aper13 is Aper with the ERA computed from UT1 ut11+ut12.
func Aper13(ut11, ut12 float64, a *Astrom) {
	Aper(erst.Era00(ut11, ut12), a)
}
