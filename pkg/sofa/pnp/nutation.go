package pnp

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/fundargs"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Planetary nutation in the truncated models, as fixed offsets (radians).
const (
	dpplan = -0.135 * consts.DMAS2R
	deplan = 0.388 * consts.DMAS2R
)

// centuries returns TT Julian centuries since J2000.0.
func centuries(date1, date2 float64) float64 {
	return ((date1 - consts.DJ00) + date2) / consts.DJC
}

// sumLunisolar evaluates the given luni-solar rows, smallest first, and
// returns the sums in units of 0.1 microarcsecond.
func sumLunisolar(terms []lunisolarTerm, t, el, elp, f, d, om float64) (dp, de float64) {
	for i := len(terms) - 1; i >= 0; i-- {
		x := &terms[i]
		arg := math.Mod(float64(x.nl)*el+float64(x.nlp)*elp+float64(x.nf)*f+
			float64(x.nd)*d+float64(x.nom)*om, consts.D2PI)
		sarg, carg := math.Sincos(arg)
		dp += (x.sp+x.spt*t)*sarg + x.cp*carg
		de += (x.ce+x.cet*t)*carg + x.se*sarg
	}
	return dp, de
}

// Nut00a returns the IAU 2000A nutation in longitude and obliquity
// (radians, referred to the mean equator and equinox of date) for the TT
// date date1+date2.
//
// The complete 678-term luni-solar series is represented by its 370 largest
// terms and the planetary series by the constant offsets of IAU 2000B. The
// result agrees with the full model to about 0.1 mas over 1900-2100.
func Nut00a(date1, date2 float64) (dpsi, deps float64) {
	const u2r = consts.DAS2R / 1e7

	t := centuries(date1, date2)

	el := fundargs.Fal03(t)
	// Mean anomaly of the Sun (MHB2000).
	elp := math.Mod(1287104.79305+t*(129596581.0481+t*(-0.5532+t*(0.000136+t*(-0.00001149)))),
		consts.TURNAS) * consts.DAS2R
	f := fundargs.Faf03(t)
	// Mean elongation of the Moon from the Sun (MHB2000).
	d := math.Mod(1072260.70369+t*(1602961601.2090+t*(-6.3706+t*(0.006593+t*(-0.00003169)))),
		consts.TURNAS) * consts.DAS2R
	om := fundargs.Faom03(t)

	dp, de := sumLunisolar(lunisolar2000[:], t, el, elp, f, d, om)
	return dp*u2r + dpplan, de*u2r + deplan
}

// Nut00b returns the IAU 2000B nutation for the TT date date1+date2. It is
// within 1 mas of IAU 2000A over 1995-2050.
func Nut00b(date1, date2 float64) (dpsi, deps float64) {
	const u2r = consts.DAS2R / 1e7

	t := centuries(date1, date2)

	el := math.Mod(485868.249036+1717915923.2178*t, consts.TURNAS) * consts.DAS2R
	elp := math.Mod(1287104.79305+129596581.0481*t, consts.TURNAS) * consts.DAS2R
	f := math.Mod(335779.526232+1739527262.8478*t, consts.TURNAS) * consts.DAS2R
	d := math.Mod(1072260.70369+1602961601.2090*t, consts.TURNAS) * consts.DAS2R
	om := math.Mod(450160.398036-6962890.5431*t, consts.TURNAS) * consts.DAS2R

	dp, de := sumLunisolar(lunisolar2000[:77], t, el, elp, f, d, om)
	return dp*u2r + dpplan, de*u2r + deplan
}

// Nut06a returns IAU 2000A nutation with the adjustments that make it
// consistent with IAU 2006 precession.
func Nut06a(date1, date2 float64) (dpsi, deps float64) {
	t := centuries(date1, date2)
	fj2 := -2.7774e-6 * t

	dp, de := Nut00a(date1, date2)
	return dp + dp*(0.4697e-6+fj2), de + de*fj2
}

// Nut80 returns the IAU 1980 nutation for the TT date date1+date2, with
// respect to the ecliptic of date.
func Nut80(date1, date2 float64) (dpsi, deps float64) {
	const u2r = consts.DAS2R / 1e4

	t := centuries(date1, date2)

	arg := func(c0, c1, c2, c3, turns float64) float64 {
		return vm.Anpm((c0+(c1+(c2+c3*t)*t)*t)*consts.DAS2R + math.Mod(turns*t, 1.0)*consts.D2PI)
	}
	el := arg(485866.733, 715922.633, 31.310, 0.064, 1325)
	elp := arg(1287099.804, 1292581.224, -0.577, -0.012, 99)
	f := arg(335778.877, 295263.137, -13.257, 0.011, 1342)
	d := arg(1072261.307, 1105601.328, -6.891, 0.019, 1236)
	om := arg(450160.280, -482890.539, 7.455, 0.008, -5)

	var dp, de float64
	for i := len(nutation1980) - 1; i >= 0; i-- {
		x := &nutation1980[i]
		a := float64(x.nl)*el + float64(x.nlp)*elp + float64(x.nf)*f +
			float64(x.nd)*d + float64(x.nom)*om
		if s := x.sp + x.spt*t; s != 0 {
			dp += s * math.Sin(a)
		}
		if c := x.ce + x.cet*t; c != 0 {
			de += c * math.Cos(a)
		}
	}
	return dp * u2r, de * u2r
}

// Numat forms the nutation matrix from the mean obliquity and the nutation
// components.
func Numat(epsa, dpsi, deps float64) vm.Mat3 {
	r := vm.Rx(epsa, vm.Ir())
	r = vm.Rz(-dpsi, r)
	return vm.Rx(-(epsa + deps), r)
}

// Nutm80 returns the IAU 1980 nutation matrix.
func Nutm80(date1, date2 float64) vm.Mat3 {
	dpsi, deps := Nut80(date1, date2)
	return Numat(Obl80(date1, date2), dpsi, deps)
}

// Num00a returns the IAU 2000A nutation matrix.
func Num00a(date1, date2 float64) vm.Mat3 {
	return Pn00a(date1, date2).RN
}

// Num00b returns the IAU 2000B nutation matrix.
func Num00b(date1, date2 float64) vm.Mat3 {
	return Pn00b(date1, date2).RN
}

// Num06a returns the IAU 2006/2000A nutation matrix.
func Num06a(date1, date2 float64) vm.Mat3 {
	dpsi, deps := Nut06a(date1, date2)
	return Numat(Obl06(date1, date2), dpsi, deps)
}
