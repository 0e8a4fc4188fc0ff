package astrometry

import (
	"math"
	"strings"

	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Coordinate types accepted by Atoiq and friends.
const (
	// RADec is observed right ascension (CIO based) and declination.
	RADec = "R"
	// HADec is observed hour angle and declination.
	HADec = "H"
	// AzZd is observed azimuth (N=0, E=90deg) and zenith distance.
	AzZd = "A"
)

// Observed is a place in observed coordinates.
type Observed struct {
	Az, Zd float64 // azimuth (N=0, E=90deg) and zenith distance
	HA     float64 // hour angle
	Dec    float64 // declination
	RA     float64 // CIO-based right ascension
}

// minimum cos(alt) and sin(alt) for refraction purposes
const (
	celmin = 1e-6
	selmin = 0.05
)

func spherical(p vm.Vec3) (float64, float64) {
	w, d := vm.C2s(p)
	return vm.Anp(w), d
}

// Atccq turns an ICRS catalog place into an astrometric place, using
// parameters from one of the Apc* builders. pr is dRA/dt (radians per
// year), px arcsec and rv km/s.
func Atccq(rc, dc, pr, pd, px, rv float64, a *Astrom) (ra, da float64) {
	p := Pmpx(rc, dc, pr, pd, px, rv, a.PMT, a.EB)
	return spherical(p)
}

// Atcc13 is Atccq with the parameters computed at TDB date1+date2.
func Atcc13(rc, dc, pr, pd, px, rv, date1, date2 float64) (ra, da float64, err error) {
	a, _, err := Apci13(date1, date2)
	ra, da = Atccq(rc, dc, pr, pd, px, rv, &a)
	return ra, da, err
}

// Atciq turns an ICRS catalog place into CIRS, with light deflection by
// the Sun only.
func Atciq(rc, dc, pr, pd, px, rv float64, a *Astrom) (ri, di float64) {
	pco := Pmpx(rc, dc, pr, pd, px, rv, a.PMT, a.EB)
	pnat := Ldsun(pco, a.EH, a.EM)
	ppr := Ab(pnat, a.V, a.EM, a.BM1)
	return spherical(vm.Rxp(a.BPN, ppr))
}

// Atci13 is Atciq with the parameters computed at TDB date1+date2. It
// also returns the equation of the origins.
func Atci13(rc, dc, pr, pd, px, rv, date1, date2 float64) (ri, di, eo float64, err error) {
	a, eo, err := Apci13(date1, date2)
	ri, di = Atciq(rc, dc, pr, pd, px, rv, &a)
	return ri, di, eo, err
}

// Atciqn is Atciq with light deflection by the given bodies. The Sun, if
// wanted, is normally the last entry.
func Atciqn(rc, dc, pr, pd, px, rv float64, a *Astrom, bodies []LdBody) (ri, di float64) {
	pco := Pmpx(rc, dc, pr, pd, px, rv, a.PMT, a.EB)
	pnat := Ldn(bodies, a.EB, pco)
	ppr := Ab(pnat, a.V, a.EM, a.BM1)
	return spherical(vm.Rxp(a.BPN, ppr))
}

// Atciqz transforms an ICRS star with no proper motion or parallax to
// CIRS.
func Atciqz(rc, dc float64, a *Astrom) (ri, di float64) {
	pco := vm.S2c(rc, dc)
	pnat := Ldsun(pco, a.EH, a.EM)
	ppr := Ab(pnat, a.V, a.EM, a.BM1)
	return spherical(vm.Rxp(a.BPN, ppr))
}

// unaberrate inverts Ab by iteration.
func unaberrate(ppr vm.Vec3, a *Astrom) vm.Vec3 {
	var d, pnat vm.Vec3
	for j := 0; j < 2; j++ {
		_, before := vm.Pn(vm.Pmp(ppr, d))
		after := Ab(before, a.V, a.EM, a.BM1)
		d = vm.Pmp(after, before)
		_, pnat = vm.Pn(vm.Pmp(ppr, d))
	}
	return pnat
}

// undeflect inverts a light deflection function by iteration.
func undeflect(pnat vm.Vec3, deflect func(vm.Vec3) vm.Vec3) vm.Vec3 {
	var d, pco vm.Vec3
	for j := 0; j < 5; j++ {
		_, before := vm.Pn(vm.Pmp(pnat, d))
		after := deflect(before)
		d = vm.Pmp(after, before)
		_, pco = vm.Pn(vm.Pmp(pnat, d))
	}
	return pco
}

// Aticq is the inverse of Atciqz: CIRS to an ICRS astrometric place,
// undoing aberration and light deflection by the Sun.
func Aticq(ri, di float64, a *Astrom) (rc, dc float64) {
	ppr := vm.Trxp(a.BPN, vm.S2c(ri, di))
	pnat := unaberrate(ppr, a)
	pco := undeflect(pnat, func(p vm.Vec3) vm.Vec3 {
		return Ldsun(p, a.EH, a.EM)
	})
	return spherical(pco)
}

// Atic13 is Aticq with the parameters computed at TDB date1+date2.
func Atic13(ri, di, date1, date2 float64) (rc, dc, eo float64, err error) {
	a, eo, err := Apci13(date1, date2)
	rc, dc = Aticq(ri, di, &a)
	return rc, dc, eo, err
}

// Aticqn is Aticq with light deflection by the given bodies.
func Aticqn(ri, di float64, a *Astrom, bodies []LdBody) (rc, dc float64) {
	ppr := vm.Trxp(a.BPN, vm.S2c(ri, di))
	pnat := unaberrate(ppr, a)
	pco := undeflect(pnat, func(p vm.Vec3) vm.Vec3 {
		return Ldn(bodies, a.EB, p)
	})
	return spherical(pco)
}

// Atioq turns a CIRS place into observed coordinates, using parameters
// from Apco or Apio. Refraction is applied with the A tan Z + B tan^3 Z
// model, held constant below about 3 degrees altitude.
func Atioq(ri, di float64, a *Astrom) Observed {
	// CIRS RA,Dec to Cartesian -HA,Dec.
	v := vm.S2c(ri-a.Eral, di)
	x, y, z := v[0], v[1], v[2]

	// Polar motion.
	sx, cx := math.Sincos(a.Xpl)
	sy, cy := math.Sincos(a.Ypl)
	xhd := cx*x + sx*z
	yhd := sx*sy*x + cy*y - cx*sy*z
	zhd := -sx*cy*x + sy*y + cx*cy*z

	// Diurnal aberration.
	f := 1.0 - a.Diurab*yhd
	xhdt := f * xhd
	yhdt := f * (yhd + a.Diurab)
	zhdt := f * zhd

	// Cartesian -HA,Dec to Cartesian Az,El (S=0,E=90).
	xaet := a.Sphi*xhdt - a.Cphi*zhdt
	yaet := yhdt
	zaet := a.Cphi*xhdt + a.Sphi*zhdt

	var azobs float64
	if xaet != 0 || yaet != 0 {
		azobs = math.Atan2(yaet, -xaet)
	}

	// Refraction, cot and tan of zenith distance kept finite near the
	// horizon.
	r := math.Max(math.Sqrt(xaet*xaet+yaet*yaet), celmin)
	z = math.Max(zaet, selmin)
	tz := r / z
	w := a.Refb * tz * tz
	del := (a.Refa + w) * tz / (1.0 + (a.Refa+3.0*w)/(z*z))

	// Apply the change, giving observed vector.
	cosdel := 1.0 - del*del/2.0
	f = cosdel - del*z/r
	xaeo := xaet * f
	yaeo := yaet * f
	zaeo := cosdel*zaet + del*r

	zdobs := math.Atan2(math.Sqrt(xaeo*xaeo+yaeo*yaeo), zaeo)

	// Az/El vector to HA,Dec vector (both right-handed).
	v = vm.Vec3{
		a.Sphi*xaeo + a.Cphi*zaeo,
		yaeo,
		-a.Cphi*xaeo + a.Sphi*zaeo,
	}
	hmobs, dcobs := vm.C2s(v)

	return Observed{
		Az:  vm.Anp(azobs),
		Zd:  zdobs,
		HA:  -hmobs,
		Dec: dcobs,
		RA:  vm.Anp(a.Eral + hmobs),
	}
}

// Atio13 is Atioq with the parameters computed from UTC.
func Atio13(ri, di, utc1, utc2, dut1 float64, o Observatory) (Observed, error) {
	a, err := Apio13(utc1, utc2, dut1, o)
	if err != nil && !IsWarning(err) {
		return Observed{}, err
	}
	return Atioq(ri, di, &a), err
}

// Atco13 takes an ICRS catalog place all the way to observed coordinates
// at UTC utc1+utc2. It also returns the equation of the origins.
func Atco13(rc, dc, pr, pd, px, rv, utc1, utc2, dut1 float64, o Observatory) (Observed, float64, error) {
	a, eo, err := Apco13(utc1, utc2, dut1, o)
	if err != nil && !IsWarning(err) {
		return Observed{}, 0, err
	}
	ri, di := Atciq(rc, dc, pr, pd, px, rv, &a)
	return Atioq(ri, di, &a), eo, err
}

// Atoiq turns observed coordinates back into CIRS. typ selects the
// meaning of ob1 and ob2: RADec, HADec or AzZd; only the first letter
// counts and anything other than R or H is taken as AzZd.
func Atoiq(typ string, ob1, ob2 float64, a *Astrom) (ri, di float64) {
	c := "A"
	if typ != "" {
		c = strings.ToUpper(typ[:1])
	}

	sphi, cphi := a.Sphi, a.Cphi

	// Observed place as Cartesian Az,El (S=0,E=90).
	var xaeo, yaeo, zaeo float64
	switch c {
	case RADec, HADec:
		if c == RADec {
			ob1 = a.Eral - ob1
		}
		v := vm.S2c(-ob1, ob2)
		xaeo = sphi*v[0] - cphi*v[2]
		yaeo = v[1]
		zaeo = cphi*v[0] + sphi*v[2]
	default:
		ce := math.Sin(ob2)
		xaeo = -math.Cos(ob1) * ce
		yaeo = math.Sin(ob1) * ce
		zaeo = math.Cos(ob2)
	}

	var az float64
	if xaeo != 0 || yaeo != 0 {
		az = math.Atan2(yaeo, xaeo)
	}

	// Observed ZD, then remove refraction.
	sz := math.Sqrt(xaeo*xaeo + yaeo*yaeo)
	zdo := math.Atan2(sz, zaeo)
	tz := sz / math.Max(zaeo, selmin)
	dref := (a.Refa + a.Refb*tz*tz) * tz
	zdt := zdo + dref

	// To Cartesian Az,ZD.
	ce := math.Sin(zdt)
	xaet := math.Cos(az) * ce
	yaet := math.Sin(az) * ce
	zaet := math.Cos(zdt)

	// Cartesian Az,ZD to Cartesian -HA,Dec.
	xmhda := sphi*xaet + cphi*zaet
	ymhda := yaet
	zmhda := -cphi*xaet + sphi*zaet

	// Diurnal aberration.
	f := 1.0 + a.Diurab*ymhda
	xhd := f * xmhda
	yhd := f * (ymhda - a.Diurab)
	zhd := f * zmhda

	// Polar motion.
	sx, cx := math.Sincos(a.Xpl)
	sy, cy := math.Sincos(a.Ypl)
	v := vm.Vec3{
		cx*xhd + sx*sy*yhd - sx*cy*zhd,
		cy*yhd + sy*zhd,
		sx*xhd - cx*sy*yhd + cx*cy*zhd,
	}

	hma, di := vm.C2s(v)
	return vm.Anp(a.Eral + hma), di
}

// Atoi13 is Atoiq with the parameters computed from UTC.
func Atoi13(typ string, ob1, ob2, utc1, utc2, dut1 float64, o Observatory) (ri, di float64, err error) {
	a, err := Apio13(utc1, utc2, dut1, o)
	if err != nil && !IsWarning(err) {
		return 0, 0, err
	}
	ri, di = Atoiq(typ, ob1, ob2, &a)
	return ri, di, err
}

// Atoc13 takes observed coordinates back to an ICRS astrometric place.
func Atoc13(typ string, ob1, ob2, utc1, utc2, dut1 float64, o Observatory) (rc, dc float64, err error) {
	a, _, err := Apco13(utc1, utc2, dut1, o)
	if err != nil && !IsWarning(err) {
		return 0, 0, err
	}
	ri, di := Atoiq(typ, ob1, ob2, &a)
	rc, dc = Aticq(ri, di, &a)
	return rc, dc, err
}
