package coords

import (
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Ecm06 returns the rotation from ICRS equatorial to ecliptic coordinates
// (mean equinox and ecliptic of date), IAU 2006.
func Ecm06(date1, date2 float64) vm.Mat3 {
	e := vm.Rx(pnp.Obl06(date1, date2), vm.Ir())
	return vm.Rxr(e, pnp.Pmat06(date1, date2))
}

// Eqec06 converts ICRS RA,Dec to ecliptic longitude and latitude of the
// TT date date1+date2, IAU 2006.
func Eqec06(date1, date2, dr, dd float64) (dl, db float64) {
	return toSpherical(vm.Rxp(Ecm06(date1, date2), vm.S2c(dr, dd)))
}

// Eceq06 is the inverse of Eqec06.
func Eceq06(date1, date2, dl, db float64) (dr, dd float64) {
	return toSpherical(vm.Trxp(Ecm06(date1, date2), vm.S2c(dl, db)))
}

// Ltecm returns the ICRS equatorial to ecliptic rotation for Julian epoch
// epj using the long-term precession model.
func Ltecm(epj float64) vm.Mat3 {
	const (
		dx = -0.016617 * consts.DAS2R
		de = -0.0068192 * consts.DAS2R
		dr = -0.0146 * consts.DAS2R
	)

	p := pnp.Ltpequ(epj)
	z := pnp.Ltpecl(epj)

	_, x := vm.Pn(vm.Pxp(p, z))
	y := vm.Pxp(z, x)

	var rm vm.Mat3
	for i, v := range [3]vm.Vec3{x, y, z} {
		rm[i] = [3]float64{
			v[0] - v[1]*dr + v[2]*dx,
			v[0]*dr + v[1] + v[2]*de,
			-v[0]*dx - v[1]*de + v[2],
		}
	}
	return rm
}

// Lteqec converts ICRS RA,Dec to ecliptic coordinates of epoch epj, long
// term model.
func Lteqec(epj, dr, dd float64) (dl, db float64) {
	return toSpherical(vm.Rxp(Ltecm(epj), vm.S2c(dr, dd)))
}

// Lteceq is the inverse of Lteqec.
func Lteceq(epj, dl, db float64) (dr, dd float64) {
	return toSpherical(vm.Trxp(Ltecm(epj), vm.S2c(dl, db)))
}

// toSpherical returns the direction of v as longitude in 0-2pi and
// latitude in +/-pi.
func toSpherical(v vm.Vec3) (float64, float64) {
	a, b := vm.C2s(v)
	return vm.Anp(a), vm.Anpm(b)
}
