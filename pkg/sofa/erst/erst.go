// Package erst computes the Earth's rotation: Earth rotation angle,
// Greenwich mean and apparent sidereal time in the IAU 1982, 2000 and 2006
// models, the equation of the equinoxes, and the complete
// celestial-to-terrestrial matrix.
//
// Sidereal time functions take UT1 (uta+utb) for the rotation and TT
// (tta+ttb) for the precession-nutation terms. Results are radians in the
// range 0-2pi.
package erst

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/fundargs"
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Era00 returns the Earth rotation angle for the UT1 date dj1+dj2.
func Era00(dj1, dj2 float64) float64 {
	d1, d2 := dj1, dj2
	if dj1 >= dj2 {
		d1, d2 = dj2, dj1
	}
	t := d1 + (d2 - consts.DJ00)

	// Fractional part of T (days).
	f := math.Mod(d1, 1.0) + math.Mod(d2, 1.0)

	return vm.Anp(consts.D2PI * (f + 0.7790572732640 + 0.00273781191135448*t))
}

// Gmst00 returns Greenwich mean sidereal time consistent with IAU 2000
// resolutions.
func Gmst00(uta, utb, tta, ttb float64) float64 {
	t := ((tta - consts.DJ00) + ttb) / consts.DJC
	return vm.Anp(Era00(uta, utb) +
		(0.014506+(4612.15739966+(1.39667721+(-0.00009344+(0.00001882)*t)*t)*t)*t)*consts.DAS2R)
}

// Gmst06 returns Greenwich mean sidereal time consistent with IAU 2006
// precession.
func Gmst06(uta, utb, tta, ttb float64) float64 {
	t := ((tta - consts.DJ00) + ttb) / consts.DJC
	return vm.Anp(Era00(uta, utb) +
		(0.014506+(4612.156534+(1.3915817+(-0.00000044+(-0.000029956+(-0.0000000368)*t)*t)*t)*t)*t)*consts.DAS2R)
}

// Gmst82 returns Greenwich mean sidereal time from the IAU 1982 model for
// the UT1 date dj1+dj2.
func Gmst82(dj1, dj2 float64) float64 {
	// The JD starts at noon, so the first coefficient loses 12 hours.
	const (
		a = 24110.54841 - consts.DAYSEC/2.0
		b = 8640184.812866
		c = 0.093104
		d = -6.2e-6
	)

	d1, d2 := dj1, dj2
	if dj1 >= dj2 {
		d1, d2 = dj2, dj1
	}
	t := (d1 + (d2 - consts.DJ00)) / consts.DJC

	// Fractional part of JD(UT1), in seconds.
	f := consts.DAYSEC * (math.Mod(d1, 1.0) + math.Mod(d2, 1.0))

	return vm.Anp(consts.DS2R * ((a + (b+(c+d*t)*t)*t) + f))
}

// Eect00 returns the complementary terms of the equation of the
// equinoxes, IAU 2000.
func Eect00(date1, date2 float64) float64 {
	t := ((date1 - consts.DJ00) + date2) / consts.DJC

	fa := [8]float64{
		fundargs.Fal03(t),
		fundargs.Falp03(t),
		fundargs.Faf03(t),
		fundargs.Fad03(t),
		fundargs.Faom03(t),
		fundargs.Fave03(t),
		fundargs.Fae03(t),
		fundargs.Fapa03(t),
	}

	sum := func(terms []eeTerm) float64 {
		s := 0.0
		for i := len(terms) - 1; i >= 0; i-- {
			a := 0.0
			for j, n := range terms[i].nfa {
				a += float64(n) * fa[j]
			}
			sa, ca := math.Sincos(a)
			s += terms[i].s*sa + terms[i].c*ca
		}
		return s
	}

	return (sum(eect0[:]) + sum(eect1[:])*t) * consts.DAS2R
}

// Ee00 returns the equation of the equinoxes given the mean obliquity and
// the nutation in longitude, IAU 2000.
func Ee00(date1, date2, epsa, dpsi float64) float64 {
	return dpsi*math.Cos(epsa) + Eect00(date1, date2)
}

// ee00 evaluates Ee00 with the IAU 2000 mean obliquity.
func ee00(date1, date2, dpsi float64) float64 {
	_, depspr := pnp.Pr00(date1, date2)
	return Ee00(date1, date2, pnp.Obl80(date1, date2)+depspr, dpsi)
}

// Ee00a returns the equation of the equinoxes, IAU 2000A nutation.
func Ee00a(date1, date2 float64) float64 {
	dpsi, _ := pnp.Nut00a(date1, date2)
	return ee00(date1, date2, dpsi)
}

// Ee00b returns the equation of the equinoxes, IAU 2000B nutation.
func Ee00b(date1, date2 float64) float64 {
	dpsi, _ := pnp.Nut00b(date1, date2)
	return ee00(date1, date2, dpsi)
}

// Ee06a returns the equation of the equinoxes consistent with IAU 2006
// precession and IAU 2000A nutation.
func Ee06a(date1, date2 float64) float64 {
	return vm.Anpm(Gst06a(0, 0, date1, date2) - Gmst06(0, 0, date1, date2))
}

// Eqeq94 returns the equation of the equinoxes, IAU 1994 model.
func Eqeq94(date1, date2 float64) float64 {
	t := ((date1 - consts.DJ00) + date2) / consts.DJC

	// Longitude of the mean ascending node of the lunar orbit.
	om := vm.Anpm((450160.280+(-482890.539+(7.455+0.008*t)*t)*t)*consts.DAS2R +
		math.Mod(-5.0*t, 1.0)*consts.D2PI)

	dpsi, _ := pnp.Nut80(date1, date2)
	eps0 := pnp.Obl80(date1, date2)

	return dpsi*math.Cos(eps0) + consts.DAS2R*(0.00264*math.Sin(om)+0.000063*math.Sin(om+om))
}

// Gst00a returns Greenwich apparent sidereal time, IAU 2000A.
func Gst00a(uta, utb, tta, ttb float64) float64 {
	return vm.Anp(Gmst00(uta, utb, tta, ttb) + Ee00a(tta, ttb))
}

// Gst00b returns Greenwich apparent sidereal time, IAU 2000B. UT1 stands in
// for TT in the precession-nutation terms.
func Gst00b(uta, utb float64) float64 {
	return vm.Anp(Gmst00(uta, utb, uta, utb) + Ee00b(uta, utb))
}

// Gst06 returns Greenwich apparent sidereal time given the
// bias-precession-nutation matrix, IAU 2006.
func Gst06(uta, utb, tta, ttb float64, rnpb vm.Mat3) float64 {
	x, y := pnp.Bpn2xy(rnpb)
	s := pnp.S06(tta, ttb, x, y)
	return vm.Anp(Era00(uta, utb) - pnp.Eors(rnpb, s))
}

// Gst06a returns Greenwich apparent sidereal time, IAU 2006/2000A.
func Gst06a(uta, utb, tta, ttb float64) float64 {
	return Gst06(uta, utb, tta, ttb, pnp.Pnm06a(tta, ttb))
}

// Gst94 returns Greenwich apparent sidereal time, IAU 1982/1994.
func Gst94(uta, utb float64) float64 {
	return vm.Anp(Gmst82(uta, utb) + Eqeq94(uta, utb))
}
