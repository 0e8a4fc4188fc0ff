package vm

import "math"

// Rx rotates an r-matrix about the x-axis by phi. Positive phi is
// anticlockwise looking from +x towards the origin.
func Rx(phi float64, r Mat3) Mat3 {
	s, c := math.Sincos(phi)
	a10 := c*r[1][0] + s*r[2][0]
	a11 := c*r[1][1] + s*r[2][1]
	a12 := c*r[1][2] + s*r[2][2]
	a20 := -s*r[1][0] + c*r[2][0]
	a21 := -s*r[1][1] + c*r[2][1]
	a22 := -s*r[1][2] + c*r[2][2]
	r[1] = [3]float64{a10, a11, a12}
	r[2] = [3]float64{a20, a21, a22}
	return r
}

// Ry rotates an r-matrix about the y-axis by theta.
func Ry(theta float64, r Mat3) Mat3 {
	s, c := math.Sincos(theta)
	a00 := c*r[0][0] - s*r[2][0]
	a01 := c*r[0][1] - s*r[2][1]
	a02 := c*r[0][2] - s*r[2][2]
	a20 := s*r[0][0] + c*r[2][0]
	a21 := s*r[0][1] + c*r[2][1]
	a22 := s*r[0][2] + c*r[2][2]
	r[0] = [3]float64{a00, a01, a02}
	r[2] = [3]float64{a20, a21, a22}
	return r
}

// Rz rotates an r-matrix about the z-axis by psi.
func Rz(psi float64, r Mat3) Mat3 {
	s, c := math.Sincos(psi)
	a00 := c*r[0][0] + s*r[1][0]
	a01 := c*r[0][1] + s*r[1][1]
	a02 := c*r[0][2] + s*r[1][2]
	a10 := -s*r[0][0] + c*r[1][0]
	a11 := -s*r[0][1] + c*r[1][1]
	a12 := -s*r[0][2] + c*r[1][2]
	r[0] = [3]float64{a00, a01, a02}
	r[1] = [3]float64{a10, a11, a12}
	return r
}

// Rxr returns the matrix product a * b.
func Rxr(a, b Mat3) Mat3 {
	var atb Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var w float64
			for k := 0; k < 3; k++ {
				w += a[i][k] * b[k][j]
			}
			atb[i][j] = w
		}
	}
	return atb
}

// Tr returns the transpose of r.
func Tr(r Mat3) Mat3 {
	var rt Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rt[i][j] = r[j][i]
		}
	}
	return rt
}

// Rxp multiplies a p-vector by an r-matrix.
func Rxp(r Mat3, p Vec3) Vec3 {
	var rp Vec3
	for j := 0; j < 3; j++ {
		var w float64
		for i := 0; i < 3; i++ {
			w += r[j][i] * p[i]
		}
		rp[j] = w
	}
	return rp
}

// Trxp multiplies a p-vector by the transpose of an r-matrix.
func Trxp(r Mat3, p Vec3) Vec3 {
	return Rxp(Tr(r), p)
}

// Rxpv multiplies a pv-vector by an r-matrix.
func Rxpv(r Mat3, pv PV) PV {
	return PV{Rxp(r, pv[0]), Rxp(r, pv[1])}
}

// Trxpv multiplies a pv-vector by the transpose of an r-matrix.
func Trxpv(r Mat3, pv PV) PV {
	return Rxpv(Tr(r), pv)
}

// Rm2v expresses an r-matrix as a rotation vector: its direction is the
// axis and its modulus the angle (radians, 0 to pi).
func Rm2v(r Mat3) Vec3 {
	x := r[1][2] - r[2][1]
	y := r[2][0] - r[0][2]
	z := r[0][1] - r[1][0]
	s2 := math.Sqrt(x*x + y*y + z*z)
	if s2 == 0 {
		return Vec3{}
	}
	c2 := r[0][0] + r[1][1] + r[2][2] - 1
	phi := math.Atan2(s2, c2)
	f := phi / s2
	return Vec3{x * f, y * f, z * f}
}

// Rv2m forms the r-matrix corresponding to a rotation vector.
func Rv2m(w Vec3) Mat3 {
	x, y, z := w[0], w[1], w[2]
	phi := math.Sqrt(x*x + y*y + z*z)
	s, c := math.Sincos(phi)
	f := 1 - c
	if phi > 0 {
		x /= phi
		y /= phi
		z /= phi
	}
	return Mat3{
		{x*x*f + c, x*y*f + z*s, x*z*f - y*s},
		{y*x*f - z*s, y*y*f + c, y*z*f + x*s},
		{z*x*f + y*s, z*y*f - x*s, z*z*f + c},
	}
}
