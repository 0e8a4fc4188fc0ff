// Package gnomic handles gnomonic (tangent plane) projections: a star's
// standard coordinates xi, eta with respect to a tangent point, and the
// inverse problems. Each operation comes in a spherical and a vector
// form.
package gnomic

import (
	"errors"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Projection errors. The returned xi, eta are still computed, from a
// clamped denominator.
var (
	ErrTooFarFromAxis = errors.New("gnomic: star too far from axis")
	ErrAntistar       = errors.New("gnomic: antistar on tangent plane")
	ErrAntistarTooFar = errors.New("gnomic: antistar too far from axis")
)

const tiny = 1e-6

// classify clamps d, the reciprocal length of the star vector to the
// tangent plane, and reports the dubious cases.
func classify(d float64) (float64, error) {
	switch {
	case d > tiny:
		return d, nil
	case d >= 0.0:
		return tiny, ErrTooFarFromAxis
	case d > -tiny:
		return -tiny, ErrAntistar
	}
	return d, ErrAntistarTooFar
}

// Tpxes projects the star a,b onto the tangent plane at a0,b0.
func Tpxes(a, b, a0, b0 float64) (xi, eta float64, err error) {
	sb0, cb0 := math.Sincos(b0)
	sb, cb := math.Sincos(b)
	sda, cda := math.Sincos(a - a0)

	d, err := classify(sb*sb0 + cb*cb0*cda)

	xi = cb * sda / d
	eta = (sb*cb0 - cb*sb0*cda) / d
	return xi, eta, err
}

// Tpxev is Tpxes for direction cosines: v is the star, v0 the tangent
// point. Both must be unit vectors.
func Tpxev(v, v0 vm.Vec3) (xi, eta float64, err error) {
	x, y, z := v[0], v[1], v[2]
	x0, y0, z0 := v0[0], v0[1], v0[2]

	// At the pole, pretend the tangent point is a hair off it.
	r2 := x0*x0 + y0*y0
	r := math.Sqrt(r2)
	if r == 0.0 {
		r = 1e-20
		x0 = r
	}

	w := x*x0 + y*y0
	d, err := classify(w + z*z0)

	d *= r
	xi = (y*x0 - x*y0) / d
	eta = (z*r2 - z0*w) / d
	return xi, eta, err
}

// Tpsts returns the star a,b given its standard coordinates and the
// tangent point a0,b0.
func Tpsts(xi, eta, a0, b0 float64) (a, b float64) {
	sb0, cb0 := math.Sincos(b0)
	d := cb0 - eta*sb0
	a = vm.Anp(math.Atan2(xi, d) + a0)
	b = math.Atan2(sb0+eta*cb0, math.Sqrt(xi*xi+d*d))
	return a, b
}

// Tpstv is Tpsts for direction cosines. v0 must be a unit vector; the
// result is one too.
func Tpstv(xi, eta float64, v0 vm.Vec3) vm.Vec3 {
	x, y, z := v0[0], v0[1], v0[2]

	r := math.Sqrt(x*x + y*y)
	if r == 0.0 {
		r = 1e-20
		x = r
	}

	f := math.Sqrt(1.0 + xi*xi + eta*eta)
	return vm.Vec3{
		(x - (xi*y+eta*x*z)/r) / f,
		(y + (xi*x-eta*y*z)/r) / f,
		(z + eta*r) / f,
	}
}

// Tpors solves for the tangent point a0,b0 given the star a,b and its
// standard coordinates. There may be zero, one or two solutions; n says
// how many are valid, and the first pair is filled before the second.
func Tpors(xi, eta, a, b float64) (a01, b01, a02, b02 float64, n int) {
	xi2 := xi * xi
	r := math.Sqrt(1.0 + xi2 + eta*eta)
	sb, cb := math.Sincos(b)
	rsb := r * sb
	rcb := r * cb
	w2 := rcb*rcb - xi2
	if w2 < 0.0 {
		return 0, 0, 0, 0, 0
	}

	w := math.Sqrt(w2)
	s := rsb - eta*w
	c := rsb*eta + w
	if xi == 0.0 && w == 0.0 {
		w = 1.0
	}
	a01 = vm.Anp(a - math.Atan2(xi, w))
	b01 = math.Atan2(s, c)

	w = -w
	s = rsb - eta*w
	c = rsb*eta + w
	a02 = vm.Anp(a - math.Atan2(xi, w))
	b02 = math.Atan2(s, c)

	n = 2
	if math.Abs(rsb) < 1.0 {
		n = 1
	}
	return a01, b01, a02, b02, n
}

// Tporv is Tpors for direction cosines. v is the star; the solutions are
// unit vectors.
func Tporv(xi, eta float64, v vm.Vec3) (v01, v02 vm.Vec3, n int) {
	x, y := v[0], v[1]
	rxy2 := x*x + y*y
	xi2 := xi * xi
	eta2p1 := eta*eta + 1.0
	r := math.Sqrt(xi2 + eta2p1)
	rsb := r * v[2]
	rcb := r * math.Sqrt(rxy2)
	w2 := rcb*rcb - xi2
	if w2 <= 0.0 {
		return vm.Vec3{}, vm.Vec3{}, 0
	}

	solve := func(w float64) vm.Vec3 {
		c := (rsb*eta + w) / (eta2p1 * math.Sqrt(rxy2*(w2+xi2)))
		return vm.Vec3{
			c * (x*w + y*xi),
			c * (y*w - x*xi),
			(rsb - eta*w) / eta2p1,
		}
	}
	w := math.Sqrt(w2)
	v01 = solve(w)
	v02 = solve(-w)

	n = 2
	if math.Abs(rsb) < 1.0 {
		n = 1
	}
	return v01, v02, n
}
