// Package eph provides low-precision ephemerides for the Earth and the
// Moon, sufficient for the astrometry pipeline: aberration needs the
// Earth's barycentric velocity, light deflection its heliocentric
// direction.
package eph

import (
	"errors"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// ErrDateRange is a warning: the date is outside 1900-2100 and the
// returned vectors are of degraded accuracy.
var ErrDateRange = errors.New("eph: date outside 1900-2100")

// Ecliptic to BCRS frame rotation.
var eclToBCRS = vm.Mat3{
	{1.0, 0.000000211284, -0.000000091603},
	{-0.000000230286, 0.917482137087, -0.397776982902},
	{0.0, 0.397776982902, 0.917482137087},
}

// series sums the T^0 and T^1 Fourier terms for one axis, returning the
// position (au) and velocity (au per Julian year).
func series(t float64, s0, s1 []epvTerm) (p, v float64) {
	for i := len(s0) - 1; i >= 0; i-- {
		a := s0[i].b + s0[i].c*t
		sa, ca := math.Sincos(a)
		p += s0[i].a * ca
		v -= s0[i].c * s0[i].a * sa
	}
	for i := len(s1) - 1; i >= 0; i-- {
		a := s1[i].b + s1[i].c*t
		sa, ca := math.Sincos(a)
		p += t * s1[i].a * ca
		v += s1[i].a * (ca - t*s1[i].c*sa)
	}
	return p, v
}

// Epv00 returns the Earth's heliocentric and barycentric position/velocity
// (au, au/day) in the BCRS at TDB date1+date2.
//
// The series is truncated from the one fitted to JPL DE405: heliocentric
// positions are good to about 2e-5 au and barycentric ones to about 1e-4
// au between 1900 and 2100. Outside that span ErrDateRange is
// returned with the vectors, which remain usable for rough work.
func Epv00(date1, date2 float64) (pvh, pvb vm.PV, err error) {
	t := ((date1 - consts.DJ00) + date2) / consts.DJY
	if math.Abs(t) > 100.0 {
		err = ErrDateRange
	}

	var ph, vh, pb, vb vm.Vec3
	sun := [3][]epvTerm{s0x, s0y, s0z}
	earth := [3][2][]epvTerm{{e0x, e1x}, {e0y, e1y}, {e0z, e1z}}
	for i := 0; i < 3; i++ {
		xyz, xyzd := series(t, earth[i][0], earth[i][1])
		sxyz, sxyzd := series(t, sun[i], nil)
		ph[i], vh[i] = xyz, xyzd/consts.DJY
		pb[i], vb[i] = xyz+sxyz, (xyzd+sxyzd)/consts.DJY
	}

	pvh = vm.PV{vm.Rxp(eclToBCRS, ph), vm.Rxp(eclToBCRS, vh)}
	pvb = vm.PV{vm.Rxp(eclToBCRS, pb), vm.Rxp(eclToBCRS, vb)}
	return pvh, pvb, err
}
