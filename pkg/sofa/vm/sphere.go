package vm

import "math"

// C2s converts a p-vector to spherical coordinates (theta, phi).
// The vector need not be of unit length.
func C2s(p Vec3) (theta, phi float64) {
	x, y, z := p[0], p[1], p[2]
	d2 := x*x + y*y
	if d2 != 0 {
		theta = math.Atan2(y, x)
	}
	if z != 0 {
		phi = math.Atan2(z, math.Sqrt(d2))
	}
	return theta, phi
}

// P2s converts a p-vector to spherical polar coordinates.
func P2s(p Vec3) (theta, phi, r float64) {
	theta, phi = C2s(p)
	return theta, phi, Pm(p)
}

// Pv2s converts a pv-vector to spherical coordinates and their rates.
func Pv2s(pv PV) (theta, phi, r, td, pd, rd float64) {
	x, y, z := pv[0][0], pv[0][1], pv[0][2]
	xd, yd, zd := pv[1][0], pv[1][1], pv[1][2]

	rxy2 := x*x + y*y
	r2 := rxy2 + z*z
	rtrue := math.Sqrt(r2)

	// A null position moves the origin along the direction of motion.
	rw := rtrue
	if rtrue == 0 {
		x, y, z = xd, yd, zd
		rxy2 = x*x + y*y
		r2 = rxy2 + z*z
		rw = math.Sqrt(r2)
	}

	rxy := math.Sqrt(rxy2)
	xyp := x*xd + y*yd
	if rxy2 != 0 {
		theta = math.Atan2(y, x)
		phi = math.Atan2(z, rxy)
		td = (x*yd - y*xd) / rxy2
		pd = (zd*rxy2 - z*xyp) / (r2 * rxy)
	} else if z != 0 {
		phi = math.Atan2(z, rxy)
	}
	r = rtrue
	if rw != 0 {
		rd = (xyp + z*zd) / rw
	}
	return theta, phi, r, td, pd, rd
}

// S2c converts spherical coordinates to a unit vector.
func S2c(theta, phi float64) Vec3 {
	cp := math.Cos(phi)
	return Vec3{math.Cos(theta) * cp, math.Sin(theta) * cp, math.Sin(phi)}
}

// S2p converts spherical polar coordinates to a p-vector.
func S2p(theta, phi, r float64) Vec3 {
	return Sxp(r, S2c(theta, phi))
}

// S2pv converts position and velocity from spherical to Cartesian.
func S2pv(theta, phi, r, td, pd, rd float64) PV {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	rcp := r * cp
	x := rcp * ct
	y := rcp * st
	rpd := r * pd
	w := rpd*sp - cp*rd
	return PV{
		{x, y, r * sp},
		{-y*td - w*ct, x*td - w*st, rpd*cp + sp*rd},
	}
}

// Pap returns the position angle of b with respect to a, measured
// anticlockwise from the north pole direction.
func Pap(a, b Vec3) float64 {
	am, au := Pn(a)
	bm := Pm(b)

	st, ct := 0.0, 1.0
	if am != 0 && bm != 0 {
		xa, ya, za := a[0], a[1], a[2]
		eta := Vec3{-xa * za, -ya * za, xa*xa + ya*ya}
		xi := Pxp(eta, au)
		a2b := Pmp(b, a)
		st = Pdp(a2b, xi)
		ct = Pdp(a2b, eta)
		if st == 0 && ct == 0 {
			ct = 1
		}
	}
	return math.Atan2(st, ct)
}

// Pas returns the position angle of B with respect to A from spherical
// coordinates.
func Pas(al, ap, bl, bp float64) float64 {
	dl := bl - al
	y := math.Sin(dl) * math.Cos(bp)
	x := math.Sin(bp)*math.Cos(ap) - math.Cos(bp)*math.Sin(ap)*math.Cos(dl)
	if x != 0 || y != 0 {
		return math.Atan2(y, x)
	}
	return 0
}

// Sepp returns the angular separation of two p-vectors.
func Sepp(a, b Vec3) float64 {
	ss := Pm(Pxp(a, b))
	cs := Pdp(a, b)
	if ss != 0 || cs != 0 {
		return math.Atan2(ss, cs)
	}
	return 0
}

// Seps returns the angular separation of two sets of spherical coordinates.
func Seps(al, ap, bl, bp float64) float64 {
	return Sepp(S2c(al, ap), S2c(bl, bp))
}
