package eph

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Quartic polynomials in T (degrees) for the Moon's fundamental arguments,
// Simon et al. (1994) via Meeus.
var (
	moonMeanLongitude = [5]float64{218.31665436, 481267.88123421, -0.0015786, 1.0 / 538841.0, -1.0 / 65194000.0}
	moonElongation    = [5]float64{297.8501921, 445267.1114034, -0.0018819, 1.0 / 545868.0, 1.0 / 113065000.0}
	sunAnomaly        = [5]float64{357.5291092, 35999.0502909, -0.0001536, 1.0 / 24490000.0, 0.0}
	moonAnomaly       = [5]float64{134.9633964, 477198.8675055, 0.0087414, 1.0 / 69699.0, -1.0 / 14712000.0}
	moonNodeDistance  = [5]float64{93.2720950, 483202.0175233, -0.0036539, 1.0 / 3526000.0, 1.0 / 863310000.0}
)

// quartic returns the argument (radians) and its rate (radians per
// century).
func quartic(c [5]float64, t float64) (a, da float64) {
	a = consts.DD2R * math.Mod(c[0]+(c[1]+(c[2]+(c[3]+c[4]*t)*t)*t)*t, 360.0)
	da = consts.DD2R * (c[1] + (c[2]*2.0+(c[3]*3.0+c[4]*4.0*t)*t)*t)
	return a, da
}

// Moon98 returns the geocentric position and velocity of the Moon (au,
// au/day) in the GCRS at TT date1+date2, from the Meeus (1998) series.
// Accuracy is of order 10 arcsec in direction and 50 km in distance over
// 1900-2100.
func Moon98(date1, date2 float64) vm.PV {
	const (
		// Meeus additive terms (degrees).
		al1, al2, al3                = 0.003958, 0.001962, 0.000318
		ab1, ab2, ab3, ab4, ab5, ab6 = -0.002235, 0.000382, 0.000175, 0.000175, 0.000127, -0.000115

		// Mean distance (m).
		r0 = 385000560.0

		e1, e2 = -0.002516, -0.0000074
	)

	t := ((date1 - consts.DJ00) + date2) / consts.DJC

	elp, delp := quartic(moonMeanLongitude, t)
	d, dd := quartic(moonElongation, t)
	em, dem := quartic(sunAnomaly, t)
	emp, demp := quartic(moonAnomaly, t)
	f, df := quartic(moonNodeDistance, t)

	// Venus, Jupiter, and sidereal motion of the Moon.
	a1, da1 := consts.DD2R*(119.75+131.849*t), consts.DD2R*131.849
	a2, da2 := consts.DD2R*(53.09+479264.290*t), consts.DD2R*479264.290
	a3, da3 := consts.DD2R*(313.45+481266.484*t), consts.DD2R*481266.484

	// Eccentricity factor E and its square.
	e := 1.0 + (e1+e2*t)*t
	de := e1 + 2.0*e2*t
	efactor := func(nem int8) (float64, float64) {
		switch nem {
		case 1, -1:
			return e, de
		case 2, -2:
			return e * e, 2.0 * e * de
		}
		return 1.0, 0.0
	}

	vel := al1*math.Sin(a1) + al2*math.Sin(elp-f) + al3*math.Sin(a2)
	vdel := al1*math.Cos(a1)*da1 + al2*math.Cos(elp-f)*(delp-df) + al3*math.Cos(a2)*da2

	vb := ab1*math.Sin(elp) +
		ab2*math.Sin(a3) +
		ab3*math.Sin(a1-f) +
		ab4*math.Sin(a1+f) +
		ab5*math.Sin(elp-emp) +
		ab6*math.Sin(elp+emp)
	vdb := ab1*math.Cos(elp)*delp +
		ab2*math.Cos(a3)*da3 +
		ab3*math.Cos(a1-f)*(da1-df) +
		ab4*math.Cos(a1+f)*(da1+df) +
		ab5*math.Cos(elp-emp)*(delp-demp) +
		ab6*math.Cos(elp+emp)*(delp+demp)

	argument := func(m moonTerm) (float64, float64) {
		arg := float64(m.nd)*d + float64(m.nem)*em + float64(m.nemp)*emp + float64(m.nf)*f
		darg := float64(m.nd)*dd + float64(m.nem)*dem + float64(m.nemp)*demp + float64(m.nf)*df
		return arg, darg
	}

	// Longitude and distance.
	var vr, vdr float64
	for i := len(moonLR) - 1; i >= 0; i-- {
		m := moonLR[i]
		en, den := efactor(m.nem)
		arg, darg := argument(m)
		sa, ca := math.Sincos(arg)
		vel += m.l * sa * en
		vdel += m.l * (ca*darg*en + sa*den)
		vr += m.r * ca * en
		vdr += m.r * (-sa*darg*en + ca*den)
	}
	el := elp + consts.DD2R*vel
	del := (delp + consts.DD2R*vdel) / consts.DJC
	r := (vr + r0) / consts.DAU
	dr := vdr / consts.DAU / consts.DJC

	// Latitude.
	for i := len(moonB) - 1; i >= 0; i-- {
		m := moonB[i]
		en, den := efactor(m.nem)
		arg, darg := argument(m)
		sa, ca := math.Sincos(arg)
		vb += m.l * sa * en
		vdb += m.l * (ca*darg*en + sa*den)
	}
	b := vb * consts.DD2R
	db := vdb * consts.DD2R / consts.DJC

	pv := vm.S2pv(el, b, r, del, db, dr)

	// Mean ecliptic of date to GCRS, IAU 2006 Fukushima-Williams angles.
	gamb, phib, psib, _ := pnp.Pfw06(date1, date2)
	rm := vm.Rz(psib, vm.Ir())
	rm = vm.Rx(-phib, rm)
	rm = vm.Rz(-gamb, rm)

	return vm.Rxpv(rm, pv)
}
