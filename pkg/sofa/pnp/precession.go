// Package pnp models the orientation of the Earth's axis in space: frame
// bias, precession and nutation in the IAU 1976/1980, 2000 and 2006
// flavors, the CIO and TIO locators, and the assembly of the
// celestial-to-terrestrial matrix from its components.
//
// Dates are TT two-part Julian Dates unless stated otherwise; angles are
// radians.
package pnp

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// IAU 2000 frame bias and precession-rate corrections (radians).
const (
	dpsibi = -0.041775 * consts.DAS2R
	depsbi = -0.0068192 * consts.DAS2R
	dra0   = -0.0146 * consts.DAS2R

	precor = -0.29965 * consts.DAS2R
	oblcor = -0.02524 * consts.DAS2R
)

// Bi00 returns the frame bias components of the IAU 2000 model: the
// longitude and obliquity corrections and the ICRS RA of the J2000.0 mean
// equinox, all in radians.
func Bi00() (dpsibi0, depsbi0, dra float64) {
	return dpsibi, depsbi, dra0
}

// Pr00 returns the precession-rate part of the IAU 2000 precession-nutation
// model: corrections to the IAU 1976 precession in longitude and obliquity.
func Pr00(date1, date2 float64) (dpsipr, depspr float64) {
	t := centuries(date1, date2)
	return precor * t, oblcor * t
}

// Obl80 returns the IAU 1980 mean obliquity of the ecliptic.
func Obl80(date1, date2 float64) float64 {
	t := centuries(date1, date2)
	return consts.DAS2R * (84381.448 + (-46.8150+(-0.00059+0.001813*t)*t)*t)
}

// Obl06 returns the IAU 2006 mean obliquity of the ecliptic.
func Obl06(date1, date2 float64) float64 {
	t := centuries(date1, date2)
	return (84381.406 + (-46.836769+(-0.0001831+(0.00200340+(-0.000000576+(-0.0000000434)*t)*t)*t)*t)*t) * consts.DAS2R
}

// Bp00 returns the IAU 2000 frame bias matrix, the precession matrix
// (J2000.0 mean to mean of date) and their product.
func Bp00(date1, date2 float64) (rb, rp, rbp vm.Mat3) {
	const eps0 = 84381.448 * consts.DAS2R

	t := centuries(date1, date2)

	// IAU 1976 precession angles, corrected for the IAU 2000 rates.
	psia77 := (5038.7784 + (-1.07259+(-0.001147)*t)*t) * t * consts.DAS2R
	oma77 := eps0 + ((0.05127+(-0.007726)*t)*t)*t*consts.DAS2R
	chia := (10.5526 + (-2.38064+(-0.001125)*t)*t) * t * consts.DAS2R

	dpsipr, depspr := Pr00(date1, date2)
	psia := psia77 + dpsipr
	oma := oma77 + depspr

	rb = vm.Rz(dra0, vm.Ir())
	rb = vm.Ry(dpsibi*math.Sin(eps0), rb)
	rb = vm.Rx(-depsbi, rb)

	rp = vm.Rx(eps0, vm.Ir())
	rp = vm.Rz(-psia, rp)
	rp = vm.Rx(-oma, rp)
	rp = vm.Rz(chia, rp)

	return rb, rp, vm.Rxr(rp, rb)
}

// Pmat00 returns the IAU 2000 bias-precession matrix.
func Pmat00(date1, date2 float64) vm.Mat3 {
	_, _, rbp := Bp00(date1, date2)
	return rbp
}

// Pfw06 returns the IAU 2006 Fukushima-Williams precession angles
// gamma_bar, phi_bar, psi_bar and the mean obliquity, including frame bias.
func Pfw06(date1, date2 float64) (gamb, phib, psib, epsa float64) {
	t := centuries(date1, date2)

	gamb = (-0.052928 + (10.556378+(0.4932044+(-0.00031238+(-0.000002788+(0.0000000260)*t)*t)*t)*t)*t) * consts.DAS2R
	phib = (84381.412819 + (-46.811016+(0.0511268+(0.00053289+(-0.000000440+(-0.0000000176)*t)*t)*t)*t)*t) * consts.DAS2R
	psib = (-0.041775 + (5038.481484+(1.5584175+(-0.00018522+(-0.000026452+(-0.0000000148)*t)*t)*t)*t)*t) * consts.DAS2R
	return gamb, phib, psib, Obl06(date1, date2)
}

// Fw2m forms a rotation matrix from Fukushima-Williams angles. With
// nutation added to psi and eps the result is the full NPB matrix.
func Fw2m(gamb, phib, psi, eps float64) vm.Mat3 {
	r := vm.Rz(gamb, vm.Ir())
	r = vm.Rx(phib, r)
	r = vm.Rz(-psi, r)
	return vm.Rx(-eps, r)
}

// Fw2xy returns the CIP X,Y implied by Fukushima-Williams angles.
func Fw2xy(gamb, phib, psi, eps float64) (x, y float64) {
	return Bpn2xy(Fw2m(gamb, phib, psi, eps))
}

// Pmat06 returns the IAU 2006 bias-precession matrix.
func Pmat06(date1, date2 float64) vm.Mat3 {
	return Fw2m(Pfw06(date1, date2))
}

// Bp06 returns the IAU 2006 frame bias matrix, precession matrix and their
// product.
func Bp06(date1, date2 float64) (rb, rp, rbp vm.Mat3) {
	rb = Fw2m(Pfw06(consts.DJM0, consts.DJM00))
	rbp = Pmat06(date1, date2)
	return rb, vm.Rxr(rbp, vm.Tr(rb)), rbp
}

// Pb06 returns the equatorial precession Euler angles zeta, z, theta that
// reproduce the IAU 2006 bias-precession matrix. Where the matrix allows
// two solutions the one with |z| < pi/2 is chosen.
func Pb06(date1, date2 float64) (bzeta, bz, btheta float64) {
	r := Pmat06(date1, date2)

	solve := func(y, x float64) float64 {
		if x != 0 || y != 0 {
			return -math.Atan2(y, x)
		}
		return 0
	}

	y, x := r[1][2], -r[0][2]
	if x < 0 {
		y, x = -y, -x
	}
	bz = solve(y, x)

	r = vm.Rz(bz, r)
	btheta = solve(r[0][2], r[2][2])
	bzeta = solve(-r[1][0], r[1][1])
	return bzeta, bz, btheta
}

// Prec76 returns the IAU 1976 precession Euler angles zeta, z, theta
// carrying the mean equator and equinox of epoch ep0 to that of ep1, both
// TDB two-part Julian Dates.
func Prec76(date01, date02, date11, date12 float64) (zeta, z, theta float64) {
	t0 := ((date01 - consts.DJ00) + date02) / consts.DJC
	t := ((date11 - date01) + (date12 - date02)) / consts.DJC
	tas2r := t * consts.DAS2R

	w := 2306.2181 + (1.39656-0.000139*t0)*t0
	zeta = (w + ((0.30188-0.000344*t0)+0.017998*t)*t) * tas2r
	z = (w + ((1.09468+0.000066*t0)+0.018203*t)*t) * tas2r
	theta = ((2004.3109 + (-0.85330-0.000217*t0)*t0) +
		((-0.42665-0.000217*t0)-0.041833*t)*t) * tas2r
	return zeta, z, theta
}

// Pmat76 returns the IAU 1976 precession matrix from J2000.0 to date.
func Pmat76(date1, date2 float64) vm.Mat3 {
	zeta, z, theta := Prec76(consts.DJ00, 0, date1, date2)
	r := vm.Rz(-zeta, vm.Ir())
	r = vm.Ry(theta, r)
	return vm.Rz(-z, r)
}

// Pnm80 returns the IAU 1976/1980 precession-nutation matrix.
func Pnm80(date1, date2 float64) vm.Mat3 {
	return vm.Rxr(Nutm80(date1, date2), Pmat76(date1, date2))
}

// Angles06 holds the full set of IAU 2006 precession angles returned by
// P06e. All are in radians.
type Angles06 struct {
	Eps0   float64 // obliquity of the ecliptic at J2000.0
	Psia   float64 // luni-solar precession
	Oma    float64 // inclination of mean equator with respect to J2000.0 ecliptic
	Bpa    float64 // ecliptic pole x, J2000.0 ecliptic triad
	Bqa    float64 // ecliptic pole -y, J2000.0 ecliptic triad
	Pia    float64 // angle between moving and J2000.0 ecliptics
	Bpia   float64 // longitude of ascending node of the ecliptic of date
	Epsa   float64 // obliquity of the ecliptic of date
	Chia   float64 // planetary precession
	Za     float64 // equatorial precession: -3rd 323 Euler angle
	Zetaa  float64 // equatorial precession: -1st 323 Euler angle
	Thetaa float64 // equatorial precession: 2nd 323 Euler angle
	Pa     float64 // general precession
	Gam    float64 // Fukushima-Williams gamma_J2000
	Phi    float64 // Fukushima-Williams phi_J2000
	Psi    float64 // Fukushima-Williams psi_J2000
}

// P06e returns the IAU 2006 precession angles in their various
// parameterizations for the TT date date1+date2.
func P06e(date1, date2 float64) Angles06 {
	const eps0 = 84381.406 * consts.DAS2R

	t := centuries(date1, date2)
	as := func(v float64) float64 { return v * consts.DAS2R }

	return Angles06{
		Eps0:   eps0,
		Psia:   as((5038.481507 + (-1.0790069+(-0.00114045+(0.000132851+(-0.0000000951)*t)*t)*t)*t) * t),
		Oma:    eps0 + as((-0.025754+(0.0512623+(-0.00772503+(-0.000000467+(0.0000003337)*t)*t)*t)*t)*t),
		Bpa:    as((4.199094 + (0.1939873+(-0.00022466+(-0.000000912+(0.0000000120)*t)*t)*t)*t) * t),
		Bqa:    as((-46.811015 + (0.0510283+(0.00052413+(-0.000000646+(-0.0000000172)*t)*t)*t)*t) * t),
		Pia:    as((46.998973 + (-0.0334926+(-0.00012559+(0.000000113+(-0.0000000022)*t)*t)*t)*t) * t),
		Bpia:   as(629546.7936 + (-867.95758+(0.157992+(-0.0005371+(-0.00004797+(0.000000072)*t)*t)*t)*t)*t),
		Epsa:   Obl06(date1, date2),
		Chia:   as((10.556403 + (-2.3814292+(-0.00121197+(0.000170663+(-0.0000000560)*t)*t)*t)*t) * t),
		Za:     as(-2.650545 + (2306.077181+(1.0927348+(0.01826837+(-0.000028596+(-0.0000002904)*t)*t)*t)*t)*t),
		Zetaa:  as(2.650545 + (2306.083227+(0.2988499+(0.01801828+(-0.000005971+(-0.0000003173)*t)*t)*t)*t)*t),
		Thetaa: as((2004.191903 + (-0.4294934+(-0.04182264+(-0.000007089+(-0.0000001274)*t)*t)*t)*t) * t),
		Pa:     as((5028.796195 + (1.1054348+(0.00007964+(-0.000023857+(-0.0000000383)*t)*t)*t)*t) * t),
		Gam:    as((10.556403 + (0.4932044+(-0.00031238+(-0.000002788+(0.0000000260)*t)*t)*t)*t) * t),
		Phi:    eps0 + as((-46.811015+(0.0511269+(0.00053289+(-0.000000440+(-0.0000000176)*t)*t)*t)*t)*t),
		Psi:    as((5038.481507 + (1.5584176+(-0.00018522+(-0.000026452+(-0.0000000148)*t)*t)*t)*t) * t),
	}
}
