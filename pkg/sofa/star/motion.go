// Package star converts star catalog data between the FK4, FK5 and
// Hipparcos systems and propagates catalog positions through space motion,
// including the relativistic Doppler correction between observed and
// inertial velocities.
//
// Catalog angles are radians, proper motions radians per year (RA rate is
// dRA/dt, not cos(Dec)*dRA/dt), parallax arcseconds and radial velocity
// km/s positive receding.
package star

import (
	"errors"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

var (
	// ErrDistanceOverridden is a warning: the parallax was too small and a
	// default distance was used instead.
	ErrDistanceOverridden = errors.New("star: distance overridden")
	// ErrExcessiveSpeed is a warning: the space velocity exceeded half the
	// speed of light and was set to zero.
	ErrExcessiveSpeed = errors.New("star: excessive speed")
	// ErrNoConvergence is a warning from the relativistic velocity
	// iteration.
	ErrNoConvergence = errors.New("star: relativistic solution did not converge")

	ErrSuperluminal = errors.New("star: superluminal speed")
	ErrNullPosition = errors.New("star: null position vector")
)

// IsWarning reports whether err carries only warnings, so the results
// returned with it are usable.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !IsWarning(e) {
				return false
			}
		}
		return true
	}
	return errors.Is(err, ErrDistanceOverridden) ||
		errors.Is(err, ErrExcessiveSpeed) ||
		errors.Is(err, ErrNoConvergence)
}

// Star is one catalog entry.
type Star struct {
	RA    float64 // right ascension (rad)
	Dec   float64 // declination (rad)
	PMRA  float64 // RA proper motion (rad/year)
	PMDec float64 // Dec proper motion (rad/year)
	Px    float64 // parallax (arcsec)
	RV    float64 // radial velocity (km/s, +ve receding)
}

// Starpv converts catalog coordinates to a barycentric position/velocity
// vector in au and au/day. The velocity is the inertial one: the Doppler
// effect relating observed and inertial radial velocity is removed.
//
// A parallax below 1e-7 arcsec is replaced by that value, and speeds over
// half of c are zeroed. These cases and a non-converging iteration are
// reported as warnings, joined, while the pv-vector is still returned.
func Starpv(s Star) (vm.PV, error) {
	const (
		pxmin = 1e-7
		vmax  = 0.5
		imax  = 100
	)

	var warns []error

	w := s.Px
	if w < pxmin {
		w = pxmin
		warns = append(warns, ErrDistanceOverridden)
	}
	r := consts.DR2AS / w

	// Radial speed (au/day).
	rd := consts.DAYSEC * s.RV * 1e3 / consts.DAU

	// Proper motion (radian/day).
	rad := s.PMRA / consts.DJY
	decd := s.PMDec / consts.DJY

	pv := vm.S2pv(s.RA, s.Dec, r, rad, decd, rd)

	if vm.Pm(pv[1])/consts.DC > vmax {
		pv[1] = vm.Zp()
		warns = append(warns, ErrExcessiveSpeed)
	}

	// Radial and transverse components of the velocity.
	_, pu := vm.Pn(pv[0])
	vsr := vm.Pdp(pu, pv[1])
	usr := vm.Sxp(vsr, pu)
	ust := vm.Pmp(pv[1], usr)
	vst := vm.Pm(ust)

	betsr := vsr / consts.DC
	betst := vst / consts.DC

	// Observed-to-inertial correction terms.
	var d, del, od, odel, odd, oddel float64
	bett, betr := betst, betsr
	i := 0
	for ; i < imax; i++ {
		d = 1.0 + betr
		w = betr*betr + bett*bett
		del = -w / (math.Sqrt(1.0-w) + 1.0)
		betr = d*betsr + del
		bett = d * betst
		if i > 0 {
			dd := math.Abs(d - od)
			ddel := math.Abs(del - odel)
			if i > 1 && dd >= odd && ddel >= oddel {
				break
			}
			odd, oddel = dd, ddel
		}
		od, odel = d, del
	}
	if i >= imax {
		warns = append(warns, ErrNoConvergence)
	}

	ut := vm.Sxp(d, ust)
	ur := vm.Sxp(consts.DC*(d*betsr+del), pu)
	pv[1] = vm.Ppp(ur, ut)

	return pv, errors.Join(warns...)
}

// Pvstar is the inverse of Starpv: it converts a barycentric inertial
// pv-vector back to catalog coordinates, restoring the observed radial
// velocity.
func Pvstar(pv vm.PV) (Star, error) {
	r, x := vm.Pn(pv[0])
	vr := vm.Pdp(x, pv[1])
	ur := vm.Sxp(vr, x)
	ut := vm.Pmp(pv[1], ur)
	vt := vm.Pm(ut)

	bett := vt / consts.DC
	betr := vr / consts.DC

	// Inertial-to-observed correction terms.
	d := 1.0 + betr
	w := betr*betr + bett*bett
	if d == 0 || w > 1 {
		return Star{}, ErrSuperluminal
	}
	del := -w / (math.Sqrt(1.0-w) + 1.0)

	ust := vm.Sxp(1.0/d, ut)
	usr := vm.Sxp(consts.DC*(betr-del)/d, x)
	pv[1] = vm.Ppp(usr, ust)

	a, dec, r, rad, decd, rd := vm.Pv2s(pv)
	if r == 0 {
		return Star{}, ErrNullPosition
	}

	return Star{
		RA:    vm.Anp(a),
		Dec:   dec,
		PMRA:  rad * consts.DJY,
		PMDec: decd * consts.DJY,
		Px:    consts.DR2AS / r,
		RV:    1e-3 * rd * consts.DAU / consts.DAYSEC,
	}, nil
}

// Starpm updates star catalog data for space motion between the TDB
// epochs ep1a+ep1b and ep2a+ep2b, allowing for the light time change.
// Warnings from Starpv are passed through with a valid result.
func Starpm(s Star, ep1a, ep1b, ep2a, ep2b float64) (Star, error) {
	pv1, warn := Starpv(s)

	// Light time when observed (days).
	tl1 := vm.Pm(pv1[0]) / consts.DC

	dt := (ep2a - ep1a) + (ep2b - ep1b)

	// Geometric position at the second epoch.
	pv := vm.Pvu(dt+tl1, pv1)

	// Light time at the second epoch.
	r2 := vm.Pdp(pv[0], pv[0])
	rdv := vm.Pdp(pv[0], pv[1])
	v2 := vm.Pdp(pv[1], pv[1])
	c2mv2 := consts.DC*consts.DC - v2
	if c2mv2 <= 0 {
		return Star{}, ErrSuperluminal
	}
	tl2 := (-rdv + math.Sqrt(rdv*rdv+c2mv2*r2)) / c2mv2

	pv2 := vm.Pvu(dt+(tl1-tl2), pv1)

	out, err := Pvstar(pv2)
	if err != nil {
		return Star{}, err
	}
	return out, warn
}

// Pmsafe is Starpm with the parallax raised where needed so that stars of
// small or zero parallax do not trigger the speed limit. The parallax is
// kept above 5e-7 arcsec and above what a transverse speed of about 1% of
// c implies; doing so is reported as ErrDistanceOverridden.
func Pmsafe(s Star, ep1a, ep1b, ep2a, ep2b float64) (Star, error) {
	const (
		pxmin = 5e-7
		f     = 326.0
	)

	// Proper motion in one year (radians).
	pm := vm.Seps(s.RA, s.Dec, s.RA+s.PMRA, s.Dec+s.PMDec) * f

	overridden := false
	if s.Px < pm {
		s.Px = pm
		overridden = true
	}
	if s.Px < pxmin {
		s.Px = pxmin
		overridden = true
	}

	out, err := Starpm(s, ep1a, ep1b, ep2a, ep2b)
	if err != nil && !IsWarning(err) {
		return out, err
	}
	if overridden && !errors.Is(err, ErrDistanceOverridden) {
		err = errors.Join(err, ErrDistanceOverridden)
	}
	return out, err
}
