package erst

import (
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// The C2t functions return the matrix that rotates a GCRS vector into the
// ITRS. xp and yp are the pole coordinates in radians.

// C2t00a returns the celestial-to-terrestrial matrix, IAU 2000A, CIO based.
func C2t00a(tta, ttb, uta, utb, xp, yp float64) vm.Mat3 {
	rc2i := pnp.C2i00a(tta, ttb)
	rpom := pnp.Pom00(xp, yp, pnp.Sp00(tta, ttb))
	return pnp.C2tcio(rc2i, Era00(uta, utb), rpom)
}

// C2t00b returns the celestial-to-terrestrial matrix, IAU 2000B, CIO based.
// The TIO locator is neglected.
func C2t00b(tta, ttb, uta, utb, xp, yp float64) vm.Mat3 {
	rc2i := pnp.C2i00b(tta, ttb)
	rpom := pnp.Pom00(xp, yp, 0)
	return pnp.C2tcio(rc2i, Era00(uta, utb), rpom)
}

// C2t06a returns the celestial-to-terrestrial matrix, IAU 2006/2000A, CIO
// based.
func C2t06a(tta, ttb, uta, utb, xp, yp float64) vm.Mat3 {
	rc2i := pnp.C2i06a(tta, ttb)
	rpom := pnp.Pom00(xp, yp, pnp.Sp00(tta, ttb))
	return pnp.C2tcio(rc2i, Era00(uta, utb), rpom)
}

// C2tpe returns the celestial-to-terrestrial matrix given the nutation
// components, equinox based.
func C2tpe(tta, ttb, uta, utb, dpsi, deps, xp, yp float64) vm.Mat3 {
	pn := pnp.Pn00(tta, ttb, dpsi, deps)
	gst := Gmst00(uta, utb, tta, ttb) + Ee00(tta, ttb, pn.Epsa, dpsi)
	rpom := pnp.Pom00(xp, yp, pnp.Sp00(tta, ttb))
	return pnp.C2teqx(pn.RBPN, gst, rpom)
}

// C2txy returns the celestial-to-terrestrial matrix given the CIP X,Y.
func C2txy(tta, ttb, uta, utb, x, y, xp, yp float64) vm.Mat3 {
	rc2i := pnp.C2ixy(tta, ttb, x, y)
	rpom := pnp.Pom00(xp, yp, pnp.Sp00(tta, ttb))
	return pnp.C2tcio(rc2i, Era00(uta, utb), rpom)
}
