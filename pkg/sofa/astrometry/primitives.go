package astrometry

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/coords"
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Ab applies stellar aberration, turning the natural direction pnat into
// the proper direction. v is the observer's barycentric velocity in units
// of c, s the Sun-observer distance (au) and bm1 the reciprocal Lorentz
// factor.
func Ab(pnat, v vm.Vec3, s, bm1 float64) vm.Vec3 {
	pdv := vm.Pdp(pnat, v)
	w1 := 1.0 + pdv/(1.0+bm1)
	w2 := consts.SRS / s

	var p vm.Vec3
	var r2 float64
	for i := 0; i < 3; i++ {
		w := pnat[i]*bm1 + w1*v[i] + w2*(v[i]-pdv*pnat[i])
		p[i] = w
		r2 += w * w
	}
	return vm.Sxp(1.0/math.Sqrt(r2), p)
}

// Ld deflects the direction p of a source by one body of mass bm (solar
// masses). q is the body-to-source unit vector, e the body-to-observer
// unit vector, em its length (au); dlim stops the deflection growing
// without bound near the limb.
func Ld(bm float64, p, q, e vm.Vec3, em, dlim float64) vm.Vec3 {
	qpe := vm.Ppp(q, e)
	qdqpe := vm.Pdp(q, qpe)

	w := bm * consts.SRS / em / math.Max(qdqpe, dlim)

	eq := vm.Pxp(e, q)
	peq := vm.Pxp(p, eq)
	return vm.Ppsp(p, w, peq)
}

// Ldn applies light deflection by each of the bodies in turn. ob is the
// observer's barycentric position (au), sc the star direction.
func Ldn(bodies []LdBody, ob, sc vm.Vec3) vm.Vec3 {
	// Light time for 1 au, days.
	const cr = consts.AULT / consts.DAYSEC

	sn := sc
	for _, b := range bodies {
		v := vm.Pmp(ob, b.PV[0])

		// Back off to the body's position when the light passed it.
		dt := math.Min(vm.Pdp(sn, v)*cr, 0.0)
		ev := vm.Ppsp(v, -dt, b.PV[1])

		em, e := vm.Pn(ev)
		sn = Ld(b.BM, sn, sn, e, em, b.DL)
	}
	return sn
}

// Ldsun applies light deflection by the Sun. e is the Sun-to-observer
// unit vector, em its length (au).
func Ldsun(p, e vm.Vec3, em float64) vm.Vec3 {
	// Deflection limiter, smaller for distant observers.
	em2 := math.Max(em*em, 1.0)
	dlim := 1e-6 / em2
	return Ld(1.0, p, p, e, em, dlim)
}

// Pmpx applies proper motion and parallax to a catalog place, returning
// the coordinate direction. pmt is the interval since the catalog epoch
// (Julian years) and pob the observer's barycentric position (au).
func Pmpx(rc, dc, pr, pd, px, rv, pmt float64, pob vm.Vec3) vm.Vec3 {
	// km/s to au/year.
	const vf = consts.DAYSEC * consts.DJM / consts.DAU
	// Light time for 1 au, Julian years.
	const aulty = consts.AULT / consts.DAYSEC / consts.DJY

	sr, cr := math.Sincos(rc)
	sd, cd := math.Sincos(dc)
	p := vm.Vec3{cr * cd, sr * cd, sd}

	// Proper motion time interval including Roemer effect.
	dt := pmt + vm.Pdp(p, pob)*aulty

	// Space motion (radians per year).
	pxr := px * consts.DAS2R
	w := vf * rv * pxr
	pdz := pd * p[2]
	pm := vm.Vec3{
		-pr*p[1] - pdz*cr + w*p[0],
		pr*p[0] - pdz*sr + w*p[1],
		pd*cd + w*p[2],
	}

	for i := 0; i < 3; i++ {
		p[i] += dt*pm[i] - pxr*pob[i]
	}
	_, u := vm.Pn(p)
	return u
}

// Pvtob returns the position and velocity (m, m/s) of a terrestrial
// observer in the CIRS, given its WGS84 site, polar motion, TIO locator
// and the ERA theta.
func Pvtob(elong, phi, hm, xp, yp, sp, theta float64) vm.PV {
	// Earth rotation rate, radians per UT1 second.
	const om = 1.00273781191135448 * consts.D2PI / consts.DAYSEC

	// WGS84 always has a geocentric solution.
	xyzm, _ := coords.Gd2gc(consts.WGS84, elong, phi, hm)

	// Polar motion and TIO position.
	xyz := vm.Trxp(pnp.Pom00(xp, yp, sp), xyzm)
	x, y, z := xyz[0], xyz[1], xyz[2]

	s, c := math.Sincos(theta)
	return vm.PV{
		{c*x - s*y, s*x + c*y, z},
		{om * (-s*x - c*y), om * (c*x - s*y), 0.0},
	}
}

// Refco returns the refraction constants A and B for the model
// dZ = A tan Z + B tan^3 Z, given pressure (hPa), temperature (deg C),
// relative humidity (0-1) and wavelength (micrometres). Wavelengths
// above 100 micrometres select the radio formulation.
func Refco(phpa, tc, rh, wl float64) (refa, refb float64) {
	optic := wl <= 100.0

	t := clamp(tc, -150.0, 200.0)
	p := clamp(phpa, 0.0, 10000.0)
	r := clamp(rh, 0.0, 1.0)
	w := clamp(wl, 0.1, 1e6)

	// Water vapour pressure at the observer.
	var pw float64
	if p > 0.0 {
		ps := math.Pow(10.0, (0.7859+0.03477*t)/(1.0+0.00412*t)) *
			(1.0 + p*(4.5e-6+6e-10*t*t))
		pw = r * ps / (1.0 - (1.0-r)*ps/p)
	}

	// Refractive index minus 1 at the observer.
	tk := t + 273.15
	var gamma float64
	if optic {
		wlsq := w * w
		gamma = ((77.53484e-6+(4.39108e-7+3.666e-9/wlsq)/wlsq)*p - 11.2684e-6*pw) / tk
	} else {
		gamma = (77.6890e-6*p - (6.3938e-6-0.375463/tk)*pw) / tk
	}

	// Formula for beta from Stone, with empirical adjustments.
	beta := 4.4474e-6 * tk
	if !optic {
		beta -= 0.0074 * pw * beta
	}

	refa = gamma * (1.0 - beta)
	refb = -gamma * (beta - gamma/2.0)
	return refa, refb
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
