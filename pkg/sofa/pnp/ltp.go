package pnp

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Long-term precession (Vondrak, Capitaine and Wallace 2011). Valid for
// several hundred millennia either side of J2000.0.

// Ecliptic pole polynomial and periodic coefficients, arcseconds. Each
// periodic row is period (years), cos P, cos Q, sin P, sin Q.
var (
	pqpol = [2][4]float64{
		{5851.607687, -0.1189000, -0.00028913, 0.000000101},
		{-1600.886300, 1.1689818, -0.00000020, -0.000000437},
	}
	pqper = [...][5]float64{
		{708.15, -5486.751211, -684.661560, 667.666730, -5523.863691},
		{2309.00, -17.127623, 2446.283880, -2354.886252, -549.747450},
		{1620.00, -617.517403, 399.671049, -428.152441, -310.998056},
		{492.20, 413.442940, -356.652376, 376.202861, 421.535876},
		{1183.00, 78.614193, -186.387003, 184.778874, -36.776172},
		{622.00, -180.732815, -316.800070, 335.321713, -145.278396},
		{882.00, -87.676083, 198.296701, -185.138669, -34.744450},
		{547.00, 46.140315, 101.135679, -120.972830, 22.885731},
	}
)

// Equator pole coefficients, laid out as for the ecliptic.
var (
	xypol = [2][4]float64{
		{5453.282155, 0.4252841, -0.00037173, -0.000000152},
		{-73750.930350, -0.7675452, -0.00018725, 0.000000231},
	}
	xyper = [...][5]float64{
		{256.75, -819.940624, 75004.344875, 81491.287984, 1558.515853},
		{708.15, -8444.676815, 624.033993, 787.163481, 7774.939698},
		{274.20, 2600.009459, 1251.136893, 1251.296102, -2219.534038},
		{241.45, 2755.175630, -1102.212834, -1257.950837, -2523.969396},
		{2309.00, -167.659835, -2660.664980, -2966.799730, 247.850422},
		{492.20, 871.855056, 699.291817, 639.744522, -846.485643},
		{396.10, 44.769698, 153.167220, 131.600209, -1393.124055},
		{288.90, -512.313065, -950.865637, -445.040117, 368.526116},
		{231.10, -819.415595, 499.754645, 584.522874, 749.045012},
		{1610.00, -538.071099, -145.188210, -89.756563, 444.704518},
		{620.00, -189.793622, 558.116553, 524.429630, 235.934465},
		{157.87, -402.922932, -23.923029, -13.549067, 374.049623},
		{220.30, 179.516345, -165.405086, -210.157124, -171.330180},
		{1200.00, -9.814756, 9.344131, -44.919798, -22.899655},
	}
)

// poleSeries sums the periodic and polynomial parts of a pole series at
// Julian epoch epj, returning the two components in radians.
func poleSeries(epj float64, pol [2][4]float64, per [][5]float64) (a, b float64) {
	t := (epj - 2000.0) / 100.0

	w := consts.D2PI * t
	for _, row := range per {
		s, c := math.Sincos(w / row[0])
		a += c*row[1] + s*row[3]
		b += c*row[2] + s*row[4]
	}

	w = 1.0
	for i := range pol[0] {
		a += pol[0][i] * w
		b += pol[1][i] * w
		w *= t
	}
	return a * consts.DAS2R, b * consts.DAS2R
}

func poleZ(a, b float64) float64 {
	w := 1.0 - a*a - b*b
	if w < 0 {
		return 0
	}
	return math.Sqrt(w)
}

// Ltpecl returns the unit vector of the ecliptic pole at Julian epoch epj,
// in the GCRS-aligned J2000.0 mean equator frame.
func Ltpecl(epj float64) vm.Vec3 {
	const eps0 = 84381.406 * consts.DAS2R

	p, q := poleSeries(epj, pqpol, pqper[:])
	w := poleZ(p, q)
	s, c := math.Sincos(eps0)
	return vm.Vec3{p, -q*c - w*s, -q*s + w*c}
}

// Ltpequ returns the unit vector of the equator pole at Julian epoch epj.
func Ltpequ(epj float64) vm.Vec3 {
	x, y := poleSeries(epj, xypol, xyper[:])
	return vm.Vec3{x, y, poleZ(x, y)}
}

// Ltp returns the long-term precession matrix from J2000.0 to epoch epj.
func Ltp(epj float64) vm.Mat3 {
	peqr := Ltpequ(epj)
	pecl := Ltpecl(epj)

	_, eqx := vm.Pn(vm.Pxp(peqr, pecl))
	return vm.Mat3{eqx, vm.Pxp(peqr, eqx), peqr}
}

// Ltpb is Ltp with the frame bias applied, so that it rotates GCRS
// vectors to the mean equator and equinox of epoch epj.
func Ltpb(epj float64) vm.Mat3 {
	const (
		dx = -0.016617 * consts.DAS2R
		de = -0.0068192 * consts.DAS2R
		dr = -0.0146 * consts.DAS2R
	)

	rp := Ltp(epj)
	var rpb vm.Mat3
	for i := range rp {
		rpb[i][0] = rp[i][0] - rp[i][1]*dr + rp[i][2]*dx
		rpb[i][1] = rp[i][0]*dr + rp[i][1] + rp[i][2]*de
		rpb[i][2] = -rp[i][0]*dx - rp[i][1]*de + rp[i][2]
	}
	return rpb
}
