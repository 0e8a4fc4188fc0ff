// Package vm provides the vector and matrix helpers used throughout the sofa
// packages: 3-vectors, 3x3 rotation matrices, position/velocity pairs,
// spherical coordinates and sexagesimal angle formatting.
//
// All types are plain arrays so values copy on assignment; every function
// returns its result instead of writing through an argument.
package vm

import "math"

// Vec3 is a Cartesian 3-vector (position, velocity or direction cosines).
type Vec3 [3]float64

// Mat3 is a 3x3 matrix stored row by row.
type Mat3 [3][3]float64

// PV is a position/velocity vector: PV[0] is position, PV[1] is velocity.
type PV [2]Vec3

// Ir returns the identity matrix.
func Ir() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Zp returns a zero p-vector.
func Zp() Vec3 { return Vec3{} }

// Zpv returns a zero pv-vector.
func Zpv() PV { return PV{} }

// Zr returns the null matrix.
func Zr() Mat3 { return Mat3{} }

// P2pv extends a p-vector to a pv-vector with zero velocity.
func P2pv(p Vec3) PV {
	return PV{p, {}}
}

// Pv2p discards the velocity component of a pv-vector.
func Pv2p(pv PV) Vec3 {
	return pv[0]
}

// Pdp returns the inner (dot) product of two p-vectors.
func Pdp(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Pm returns the modulus of a p-vector.
func Pm(p Vec3) float64 {
	return math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
}

// Pmp returns a - b.
func Pmp(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Ppp returns a + b.
func Ppp(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Ppsp returns a + s*b.
func Ppsp(a Vec3, s float64, b Vec3) Vec3 {
	return Vec3{a[0] + s*b[0], a[1] + s*b[1], a[2] + s*b[2]}
}

// Pxp returns the outer (cross) product a x b.
func Pxp(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Sxp multiplies a p-vector by a scalar.
func Sxp(s float64, p Vec3) Vec3 {
	return Vec3{s * p[0], s * p[1], s * p[2]}
}

// Pn splits a p-vector into its modulus and a unit vector. A null vector
// yields a zero modulus and a zero unit vector.
func Pn(p Vec3) (float64, Vec3) {
	w := Pm(p)
	if w == 0 {
		return 0, Vec3{}
	}
	return w, Sxp(1/w, p)
}

// Pvdpv returns the inner product of two pv-vectors: a.b and its rate.
func Pvdpv(a, b PV) [2]float64 {
	return [2]float64{
		Pdp(a[0], b[0]),
		Pdp(a[0], b[1]) + Pdp(a[1], b[0]),
	}
}

// Pvm returns the moduli of position and velocity.
func Pvm(pv PV) (r, s float64) {
	return Pm(pv[0]), Pm(pv[1])
}

// Pvmpv returns a - b for pv-vectors.
func Pvmpv(a, b PV) PV {
	return PV{Pmp(a[0], b[0]), Pmp(a[1], b[1])}
}

// Pvppv returns a + b for pv-vectors.
func Pvppv(a, b PV) PV {
	return PV{Ppp(a[0], b[0]), Ppp(a[1], b[1])}
}

// Pvu updates a pv-vector by dt, assuming constant velocity.
func Pvu(dt float64, pv PV) PV {
	return PV{Ppsp(pv[0], dt, pv[1]), pv[1]}
}

// Pvup updates a pv-vector by dt and discards the velocity.
func Pvup(dt float64, pv PV) Vec3 {
	return Ppsp(pv[0], dt, pv[1])
}

// Pvxpv returns the outer product of two pv-vectors.
func Pvxpv(a, b PV) PV {
	return PV{
		Pxp(a[0], b[0]),
		Ppp(Pxp(a[0], b[1]), Pxp(a[1], b[0])),
	}
}

// S2xpv multiplies the position by s1 and the velocity by s2.
func S2xpv(s1, s2 float64, pv PV) PV {
	return PV{Sxp(s1, pv[0]), Sxp(s2, pv[1])}
}

// Sxpv multiplies a pv-vector by a scalar.
func Sxpv(s float64, pv PV) PV {
	return S2xpv(s, s, pv)
}
