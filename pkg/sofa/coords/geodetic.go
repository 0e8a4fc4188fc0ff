package coords

import (
	"errors"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

var (
	ErrEllipsoid  = errors.New("coords: unsupported reference ellipsoid")
	ErrFlattening = errors.New("coords: flattening outside 0-1")
	ErrRadius     = errors.New("coords: equatorial radius not positive")
	// ErrGeodetic reports a latitude/flattening pair with no geocentric
	// solution.
	ErrGeodetic = errors.New("coords: illegal geodetic case")
)

// Eform returns the equatorial radius (metres) and flattening of one of
// the reference ellipsoids consts.WGS84, consts.GRS80 or consts.WGS72.
func Eform(n int) (a, f float64, err error) {
	switch n {
	case consts.WGS84:
		return 6378137.0, 1.0 / 298.257223563, nil
	case consts.GRS80:
		return 6378137.0, 1.0 / 298.257222101, nil
	case consts.WGS72:
		return 6378135.0, 1.0 / 298.26, nil
	}
	return 0, 0, ErrEllipsoid
}

// Gc2gd converts geocentric x,y,z (metres) to east longitude, geodetic
// latitude (radians) and height above the ellipsoid n.
func Gc2gd(n int, xyz vm.Vec3) (elong, phi, height float64, err error) {
	a, f, err := Eform(n)
	if err != nil {
		return 0, 0, 0, err
	}
	return Gc2gde(a, f, xyz)
}

// Gc2gde is Gc2gd for an ellipsoid given by equatorial radius a and
// flattening f. It uses the closed-form Halley correction of Fukushima
// (2006).
func Gc2gde(a, f float64, xyz vm.Vec3) (elong, phi, height float64, err error) {
	if f < 0 || f >= 1 {
		return 0, 0, 0, ErrFlattening
	}
	if a <= 0 {
		return 0, 0, 0, ErrRadius
	}

	aeps2 := a * a * 1e-32
	e2 := (2.0 - f) * f
	e4t := e2 * e2 * 1.5
	ec2 := 1.0 - e2
	if ec2 <= 0 {
		return 0, 0, 0, ErrFlattening
	}
	ec := math.Sqrt(ec2)
	b := a * ec

	x, y, z := xyz[0], xyz[1], xyz[2]

	// Distance from polar axis squared.
	p2 := x*x + y*y
	if p2 > 0 {
		elong = math.Atan2(y, x)
	}

	absz := math.Abs(z)

	if p2 > aeps2 {
		p := math.Sqrt(p2)

		s0 := absz / a
		pn := p / a
		zc := ec * s0

		// Newton correction factors.
		c0 := ec * pn
		c02 := c0 * c0
		c03 := c02 * c0
		s02 := s0 * s0
		s03 := s02 * s0
		a02 := c02 + s02
		a0 := math.Sqrt(a02)
		a03 := a02 * a0
		d0 := zc*a03 + e2*s03
		f0 := pn*a03 - e2*c03

		// Halley correction factor.
		b0 := e4t * s02 * c02 * pn * (a0 - ec)
		s1 := d0*f0 - b0*s0
		cc := ec * (f0*f0 - b0*c0)

		phi = math.Atan2(s1, cc)
		s12 := s1 * s1
		cc2 := cc * cc
		height = (p*cc + absz*s1 - a*math.Sqrt(ec2*s12+cc2)) / math.Sqrt(s12+cc2)
	} else {
		// Pole.
		phi = consts.DPI / 2.0
		height = absz - b
	}

	if z < 0 {
		phi = -phi
	}
	return elong, phi, height, nil
}

// Gd2gc converts east longitude, geodetic latitude and height on the
// ellipsoid n to geocentric x,y,z.
func Gd2gc(n int, elong, phi, height float64) (vm.Vec3, error) {
	a, f, err := Eform(n)
	if err != nil {
		return vm.Vec3{}, err
	}
	return Gd2gce(a, f, elong, phi, height)
}

// Gd2gce is Gd2gc for an ellipsoid given by a and f.
func Gd2gce(a, f, elong, phi, height float64) (vm.Vec3, error) {
	sp, cp := math.Sincos(phi)
	w := (1.0 - f) * (1.0 - f)
	d := cp*cp + w*sp*sp
	if d <= 0 {
		return vm.Vec3{}, ErrGeodetic
	}
	ac := a / math.Sqrt(d)
	as := w * ac

	r := (ac + height) * cp
	return vm.Vec3{r * math.Cos(elong), r * math.Sin(elong), (as + height) * sp}, nil
}
