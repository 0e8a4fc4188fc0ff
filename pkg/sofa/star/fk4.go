package star

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/cal"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Conversions between B1950.0 FK4 and J2000.0 FK5 follow Standish (1982)
// as developed by Aoki et al. (1983), with the constants of the
// Explanatory Supplement (1992), sections 3.591 and 3.592. FK4 proper
// motions are per tropical year, FK5 per Julian year.

const (
	// Radians per year to arcsec per century.
	pmf = 100.0 * consts.DR2AS

	tiny = 1e-30

	// km/s to au per tropical century.
	vf = 21.095
)

// E-terms of aberration, vectors A and Adot.
var eterms = vm.PV{
	{-1.62557e-6, -0.31919e-6, -0.13843e-6},
	{1.245e-3, -1.580e-3, -0.659e-3},
}

// pvMatrix is a 6x6 matrix acting on pv-vectors.
type pvMatrix [2][3][2]vm.Vec3

func (em *pvMatrix) apply(pv vm.PV) vm.PV {
	var out vm.PV
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			w := 0.0
			for k := 0; k < 2; k++ {
				for l := 0; l < 3; l++ {
					w += em[i][j][k][l] * pv[k][l]
				}
			}
			out[i][j] = w
		}
	}
	return out
}

// FK4 to FK5, matrix M.
var fk4to5 = pvMatrix{
	{
		{{0.9999256782, -0.0111820611, -0.0048579477}, {0.00000242395018, -0.00000002710663, -0.00000001177656}},
		{{0.0111820610, 0.9999374784, -0.0000271765}, {0.00000002710663, 0.00000242397878, -0.00000000006587}},
		{{0.0048579479, -0.0000271474, 0.9999881997}, {0.00000001177656, -0.00000000006582, 0.00000242410173}},
	},
	{
		{{-0.000551, -0.238565, 0.435739}, {0.99994704, -0.01118251, -0.00485767}},
		{{0.238514, -0.002667, -0.008541}, {0.01118251, 0.99995883, -0.00002718}},
		{{-0.435623, 0.012254, 0.002117}, {0.00485767, -0.00002714, 1.00000956}},
	},
}

// FK5 to FK4, matrix M^-1.
var fk5to4 = pvMatrix{
	{
		{{0.9999256795, 0.0111814828, 0.0048590039}, {-0.00000242389840, -0.00000002710544, -0.00000001177742}},
		{{-0.0111814828, 0.9999374849, -0.0000271771}, {0.00000002710544, -0.00000242392702, 0.00000000006585}},
		{{-0.0048590040, -0.0000271557, 0.9999881946}, {0.00000001177742, 0.00000000006585, -0.00000242404995}},
	},
	{
		{{-0.000551, 0.238509, -0.435614}, {0.99990432, 0.01118145, 0.00485852}},
		{{-0.238560, -0.002667, 0.012254}, {-0.01118145, 0.99991613, -0.00002717}},
		{{0.435730, -0.008541, 0.002117}, {-0.00485852, -0.00002716, 0.99996684}},
	},
}

// toPV expresses catalog data as a pv-vector of unit length, with proper
// motions in arcsec per century. pxvf is returned for the reverse step.
func toPV(s Star) (vm.PV, float64) {
	pxvf := s.Px * vf
	return vm.S2pv(s.RA, s.Dec, 1.0, s.PMRA*pmf, s.PMDec*pmf, s.RV*pxvf), pxvf
}

func fromPV(pv vm.PV, px, rv, pxvf float64) Star {
	r, d, w, ur, ud, rd := vm.Pv2s(pv)
	if px > tiny {
		rv = rd / pxvf
		px = px / w
	}
	return Star{
		RA:    vm.Anp(r),
		Dec:   d,
		PMRA:  ur / pmf,
		PMDec: ud / pmf,
		Px:    px,
		RV:    rv,
	}
}

// Fk425 converts B1950.0 FK4 catalog data to J2000.0 FK5. The E-terms of
// aberration are removed, including their effect on the proper motions of
// all stars, polar or not.
func Fk425(s Star) Star {
	r0, pxvf := toPV(s)

	// Remove E-terms.
	pv1 := vm.Pvmpv(r0, eterms)
	pv2 := vm.PV{
		vm.Sxp(vm.Pdp(r0[0], eterms[0]), r0[0]),
		vm.Sxp(vm.Pdp(r0[0], eterms[1]), r0[0]),
	}
	pv1 = vm.Pvppv(pv1, pv2)

	return fromPV(fk4to5.apply(pv1), s.Px, s.RV, pxvf)
}

// Fk524 converts J2000.0 FK5 catalog data to B1950.0 FK4.
func Fk524(s Star) Star {
	r0, pxvf := toPV(s)
	r1 := fk5to4.apply(r0)

	// Apply E-terms, one iteration on the length.
	w := vm.Pm(r1[0])
	p1 := vm.Sxp(vm.Pdp(r1[0], eterms[0]), r1[0])
	p1 = vm.Ppp(r1[0], vm.Pmp(vm.Sxp(w, eterms[0]), p1))
	w = vm.Pm(p1)

	var pv vm.PV
	p1 = vm.Sxp(vm.Pdp(r1[0], eterms[0]), r1[0])
	pv[0] = vm.Ppp(r1[0], vm.Pmp(vm.Sxp(w, eterms[0]), p1))

	p1 = vm.Sxp(vm.Pdp(r1[0], eterms[1]), pv[0])
	pv[1] = vm.Ppp(r1[1], vm.Pmp(vm.Sxp(w, eterms[1]), p1))

	return fromPV(pv, s.Px, s.RV, pxvf)
}

// Fk45z converts a B1950.0 FK4 position observed at Besselian epoch bepoch
// to J2000.0 FK5, on the assumption that the FK5 proper motion is zero.
func Fk45z(r1950, d1950, bepoch float64) (r2000, d2000 float64) {
	r0 := vm.S2c(r1950, d1950)

	// E-terms adjusted to give zero proper motion in FK5, then removed.
	p := vm.Ppsp(eterms[0], (bepoch-1950.0)/pmf, eterms[1])
	p = vm.Pmp(r0, vm.Ppsp(p, -vm.Pdp(r0, p), r0))

	// To the Fricke system, using the position columns of M.
	var pv vm.PV
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			pv[i][j] = vm.Pdp(vm.Vec3{fk4to5[i][j][0][0], fk4to5[i][j][0][1], fk4to5[i][j][0][2]}, p)
		}
	}

	// Fictitious proper motion.
	djm0, djm := cal.Epb2jd(bepoch)
	pv = vm.Pvu((cal.Epj(djm0, djm)-2000.0)/pmf, pv)

	w, d2000 := vm.C2s(pv[0])
	return vm.Anp(w), d2000
}

// Fk54z converts a J2000.0 FK5 star with zero proper motion to B1950.0 FK4
// at Besselian epoch bepoch. The fictitious FK4 proper motion it acquires
// is returned as well.
func Fk54z(r2000, d2000, bepoch float64) (r1950, d1950, dr1950, dd1950 float64) {
	b := Fk524(Star{RA: r2000, Dec: d2000})
	r, d := b.RA, b.Dec
	pr, pd := b.PMRA, b.PMDec

	p := vm.S2c(r, d)
	sr, cr := math.Sincos(r)
	sd, cd := math.Sincos(d)
	v := vm.Vec3{
		-pr*p[1] - pd*cr*sd,
		pr*p[0] - pd*sr*sd,
		pd * cd,
	}

	p = vm.Ppsp(p, bepoch-1950.0, v)

	w, d1950 := vm.C2s(p)
	return vm.Anp(w), d1950, pr, pd
}
