package star

import (
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Fk5hip returns the FK5 to Hipparcos rotation matrix and the spin of
// Hipparcos with respect to FK5 (radians per year), from Feissel and
// Mignard (1998).
func Fk5hip() (r5h vm.Mat3, s5h vm.Vec3) {
	ep := vm.Vec3{-19.9e-3 * consts.DAS2R, -9.1e-3 * consts.DAS2R, 22.9e-3 * consts.DAS2R}
	om := vm.Vec3{-0.30e-3 * consts.DAS2R, 0.60e-3 * consts.DAS2R, 0.70e-3 * consts.DAS2R}
	return vm.Rv2m(ep), om
}

// spinPerDay returns Fk5hip with the spin in radians per day.
func spinPerDay() (vm.Mat3, vm.Vec3) {
	r5h, s5h := Fk5hip()
	return r5h, vm.Sxp(1.0/365.25, s5h)
}

// Fk52h transforms FK5 (J2000.0) catalog data to Hipparcos.
func Fk52h(s Star) (Star, error) {
	pv5, _ := Starpv(s)
	r5h, s5h := spinPerDay()

	var pvh vm.PV
	pvh[0] = vm.Rxp(r5h, pv5[0])

	// The spin adds a space motion component.
	pvh[1] = vm.Rxp(r5h, vm.Ppp(vm.Pxp(pv5[0], s5h), pv5[1]))

	return Pvstar(pvh)
}

// H2fk5 transforms Hipparcos catalog data to FK5 (J2000.0).
func H2fk5(s Star) (Star, error) {
	pvh, _ := Starpv(s)
	r5h, s5h := spinPerDay()

	// Spin in the Hipparcos frame.
	sh := vm.Rxp(r5h, s5h)

	var pv5 vm.PV
	pv5[0] = vm.Trxp(r5h, pvh[0])
	pv5[1] = vm.Trxp(r5h, vm.Pmp(pvh[1], vm.Pxp(pvh[0], sh)))

	return Pvstar(pv5)
}

// Fk5hz transforms an FK5 (J2000.0) position of a star with zero
// Hipparcos proper motion to the Hipparcos frame at TDB date1+date2.
func Fk5hz(r5, d5, date1, date2 float64) (rh, dh float64) {
	// Date to J2000.0, Julian years.
	t := -((date1 - consts.DJ00) + date2) / consts.DJY

	r5h, s5h := Fk5hip()

	// Derotate the accumulated spin, then orient into Hipparcos.
	rst := vm.Rv2m(vm.Sxp(t, s5h))
	ph := vm.Rxp(r5h, vm.Trxp(rst, vm.S2c(r5, d5)))

	w, dh := vm.C2s(ph)
	return vm.Anp(w), dh
}

// Hfk5z transforms a Hipparcos star position at TDB date1+date2 to FK5
// J2000.0, assuming zero Hipparcos proper motion. The FK5 proper motion
// this implies is returned in radians per year; the RA rate is dRA/dt.
func Hfk5z(rh, dh, date1, date2 float64) (r5, d5, dr5, dd5 float64) {
	t := ((date1 - consts.DJ00) + date2) / consts.DJY

	ph := vm.S2c(rh, dh)
	r5h, s5h := Fk5hip()
	sh := vm.Rxp(r5h, s5h)

	// Accumulated spin, then FK5 to Hipparcos.
	r5ht := vm.Rxr(r5h, vm.Rv2m(vm.Sxp(t, s5h)))

	pv5e := vm.PV{
		vm.Trxp(r5ht, ph),
		vm.Trxp(r5ht, vm.Pxp(sh, ph)),
	}

	w, d5, _, dr5, dd5, _ := vm.Pv2s(pv5e)
	return vm.Anp(w), d5, dr5, dd5
}
