package pnp

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/fundargs"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// eval returns s given the CIP coordinates x, y.
func (ss *sSeries) eval(date1, date2, x, y float64) float64 {
	t := centuries(date1, date2)

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

	w := ss.poly
	for k, terms := range ss.terms {
		for i := len(terms) - 1; i >= 0; i-- {
			a := 0.0
			for j, n := range terms[i].nfa {
				a += float64(n) * fa[j]
			}
			sa, ca := math.Sincos(a)
			w[k] += terms[i].s*sa + terms[i].c*ca
		}
	}

	return (w[0]+(w[1]+(w[2]+(w[3]+(w[4]+w[5]*t)*t)*t)*t)*t)*consts.DAS2R - x*y/2.0
}

// S00 returns the CIO locator s, positioning the Celestial Intermediate
// Origin on the equator of the CIP, given the CIP X,Y. IAU 2000 model.
func S00(date1, date2, x, y float64) float64 {
	return s00Series.eval(date1, date2, x, y)
}

// S06 is S00 for the IAU 2006 precession with IAU 2000A nutation.
func S06(date1, date2, x, y float64) float64 {
	return s06Series.eval(date1, date2, x, y)
}

// S00a returns the CIO locator s using IAU 2000A precession-nutation.
func S00a(date1, date2 float64) float64 {
	x, y := Bpn2xy(Pnm00a(date1, date2))
	return S00(date1, date2, x, y)
}

// S00b returns the CIO locator s using IAU 2000B precession-nutation.
func S00b(date1, date2 float64) float64 {
	x, y := Bpn2xy(Pnm00b(date1, date2))
	return S00(date1, date2, x, y)
}

// S06a returns the CIO locator s using IAU 2006/2000A precession-nutation.
func S06a(date1, date2 float64) float64 {
	x, y := Bpn2xy(Pnm06a(date1, date2))
	return S06(date1, date2, x, y)
}

// Sp00 returns the TIO locator s', positioning the Terrestrial
// Intermediate Origin on the equator of the CIP.
func Sp00(date1, date2 float64) float64 {
	return -47e-6 * centuries(date1, date2) * consts.DAS2R
}

// Bpn2xy extracts the CIP X,Y from a bias-precession-nutation matrix.
func Bpn2xy(rbpn vm.Mat3) (x, y float64) {
	return rbpn[2][0], rbpn[2][1]
}

// Xys00a returns the CIP X,Y and the CIO locator s, IAU 2000A.
func Xys00a(date1, date2 float64) (x, y, s float64) {
	x, y = Bpn2xy(Pnm00a(date1, date2))
	return x, y, S00(date1, date2, x, y)
}

// Xys00b returns the CIP X,Y and the CIO locator s, IAU 2000B.
func Xys00b(date1, date2 float64) (x, y, s float64) {
	x, y = Bpn2xy(Pnm00b(date1, date2))
	return x, y, S00(date1, date2, x, y)
}

// Xys06a returns the CIP X,Y and the CIO locator s, IAU 2006/2000A.
func Xys06a(date1, date2 float64) (x, y, s float64) {
	x, y = Bpn2xy(Pnm06a(date1, date2))
	return x, y, S06(date1, date2, x, y)
}

// C2ixys forms the celestial-to-intermediate matrix from the CIP X,Y and
// the CIO locator s.
func C2ixys(x, y, s float64) vm.Mat3 {
	r2 := x*x + y*y
	e := 0.0
	if r2 > 0 {
		e = math.Atan2(y, x)
	}
	d := math.Atan(math.Sqrt(r2 / (1.0 - r2)))

	r := vm.Rz(e, vm.Ir())
	r = vm.Ry(d, r)
	return vm.Rz(-(e + s), r)
}

// C2ixy is C2ixys with s from the IAU 2000 series.
func C2ixy(date1, date2, x, y float64) vm.Mat3 {
	return C2ixys(x, y, S00(date1, date2, x, y))
}

// C2ibpn forms the celestial-to-intermediate matrix given the
// bias-precession-nutation matrix. IAU 2000.
func C2ibpn(date1, date2 float64, rbpn vm.Mat3) vm.Mat3 {
	x, y := Bpn2xy(rbpn)
	return C2ixy(date1, date2, x, y)
}

// C2i00a returns the celestial-to-intermediate matrix, IAU 2000A.
func C2i00a(date1, date2 float64) vm.Mat3 {
	return C2ibpn(date1, date2, Pnm00a(date1, date2))
}

// C2i00b returns the celestial-to-intermediate matrix, IAU 2000B.
func C2i00b(date1, date2 float64) vm.Mat3 {
	return C2ibpn(date1, date2, Pnm00b(date1, date2))
}

// C2i06a returns the celestial-to-intermediate matrix, IAU 2006/2000A.
func C2i06a(date1, date2 float64) vm.Mat3 {
	x, y, s := Xys06a(date1, date2)
	return C2ixys(x, y, s)
}

// Eors returns the equation of the origins (ERA - GST) given the
// classical NPB matrix and the CIO locator s.
func Eors(rnpb vm.Mat3, s float64) float64 {
	x := rnpb[2][0]
	ax := x / (1.0 + rnpb[2][2])
	xs := 1.0 - ax*x
	ys := -ax * rnpb[2][1]
	zs := -x
	p := rnpb[0][0]*xs + rnpb[0][1]*ys + rnpb[0][2]*zs
	q := rnpb[1][0]*xs + rnpb[1][1]*ys + rnpb[1][2]*zs
	if p == 0 && q == 0 {
		return s
	}
	return s - math.Atan2(q, p)
}

// Eo06a returns the equation of the origins, IAU 2006/2000A.
func Eo06a(date1, date2 float64) float64 {
	r := Pnm06a(date1, date2)
	x, y := Bpn2xy(r)
	return Eors(r, S06(date1, date2, x, y))
}

// Pom00 forms the polar motion matrix from the pole coordinates xp, yp and
// the TIO locator sp, all in radians.
func Pom00(xp, yp, sp float64) vm.Mat3 {
	r := vm.Rz(sp, vm.Ir())
	r = vm.Ry(-xp, r)
	return vm.Rx(-yp, r)
}

// C2tcio assembles the celestial-to-terrestrial matrix from the CIO based
// components: celestial-to-intermediate matrix, Earth rotation angle and
// polar motion.
func C2tcio(rc2i vm.Mat3, era float64, rpom vm.Mat3) vm.Mat3 {
	return vm.Rxr(rpom, vm.Rz(era, rc2i))
}

// C2teqx assembles the celestial-to-terrestrial matrix from the equinox
// based components: NPB matrix, Greenwich sidereal time and polar motion.
func C2teqx(rbpn vm.Mat3, gst float64, rpom vm.Mat3) vm.Mat3 {
	return vm.Rxr(rpom, vm.Rz(gst, rbpn))
}
