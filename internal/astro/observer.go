package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-sofa/pkg/sofa/astrometry"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/coords"
	"github.com/litescript/ls-sofa/pkg/sofa/erst"
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Position is the observed place of an object, in degrees.
type Position struct {
	Name  string  `json:"name"`
	AzDeg float64 `json:"az_deg"` // N=0, E=90
	ElDeg float64 `json:"el_deg"`
	ZdDeg float64 `json:"zd_deg"`

	// Observed hour angle, declination and CIO-based right ascension.
	HADeg  float64 `json:"ha_deg"`
	DecDeg float64 `json:"dec_deg"`
	RADeg  float64 `json:"ra_deg"`

	// Geocentric apparent place, CIRS and equinox-based.
	CIRSRADeg  float64 `json:"cirs_ra_deg"`
	CIRSDecDeg float64 `json:"cirs_dec_deg"`
	AppRADeg   float64 `json:"app_ra_deg"`

	SunSepDeg float64 `json:"sun_sep_deg"`
	Mag       float64 `json:"mag,omitempty"`
}

// Observer holds the star-independent astrometry for one site and
// epoch. Build one with NewObserver, then place any number of objects.
// An Observer is not safe for concurrent use.
type Observer struct {
	Site    Site
	Weather Weather
	Earth   EarthParams
	Epoch   time.Time
	Scales  Scales

	astrom astrometry.Astrom
	eo     float64

	// Warning carries a dubious-year or ephemeris-range note from the
	// last rebuild.
	Warning error
}

// NewObserver prepares the astrometry for site at instant t.
func NewObserver(site Site, w Weather, e EarthParams, t time.Time) (*Observer, error) {
	o := &Observer{Site: site, Weather: w, Earth: e}
	if err := o.Rebuild(t); err != nil {
		return nil, err
	}
	return o, nil
}

// Rebuild recomputes every parameter for instant t.
func (o *Observer) Rebuild(t time.Time) error {
	if err := o.Site.Validate(); err != nil {
		return err
	}
	sc, err := TimeScales(t, o.Earth.DUT1)
	if err != nil {
		return fmt.Errorf("observer %s: %w", o.Site.Name, err)
	}
	a, eo, err := astrometry.Apco13(sc.UTC.D1, sc.UTC.D2, o.Earth.DUT1, Observatory(o.Site, o.Weather, o.Earth))
	if err != nil && !astrometry.IsWarning(err) {
		return fmt.Errorf("observer %s: %w", o.Site.Name, err)
	}
	o.Epoch = t
	o.Scales = sc
	o.astrom = a
	o.eo = eo
	o.Warning = err
	return nil
}

// Advance moves the observer to instant t by updating the Earth rotation
// angle only. Precession, nutation, aberration and the Sun's place stay
// at the last Rebuild, which is fine for a few hours.
func (o *Observer) Advance(t time.Time) error {
	sc, err := TimeScales(t, o.Earth.DUT1)
	if err != nil {
		return err
	}
	astrometry.Aper13(sc.UT1.D1, sc.UT1.D2, &o.astrom)
	o.Epoch = t
	o.Scales = sc
	return nil
}

// EquationOfOrigins returns ERA-GST in radians at the last Rebuild.
func (o *Observer) EquationOfOrigins() float64 {
	return o.eo
}

// Observe returns the observed place of a catalog star.
func (o *Observer) Observe(s Star) Position {
	rc, dc, pr, pd, px, rv := s.Astrometric()
	ri, di := astrometry.Atciq(rc, dc, pr, pd, px, rv, &o.astrom)
	p := o.position(ri, di)
	p.Name = s.Name
	p.Mag = s.Mag
	p.SunSepDeg = o.sunSeparation(vm.S2c(rc, dc))
	return p
}

// ObserveICRS returns the observed place of a distant source with no
// space motion, at ICRS raDeg, decDeg.
func (o *Observer) ObserveICRS(raDeg, decDeg float64) Position {
	rc, dc := degToRad(raDeg), degToRad(decDeg)
	ri, di := astrometry.Atciqz(rc, dc, &o.astrom)
	p := o.position(ri, di)
	p.SunSepDeg = o.sunSeparation(vm.S2c(rc, dc))
	return p
}

// ObserveGCRS returns the observed place of a nearby body given its
// geocentric apparent direction (unit vector, GCRS) and distance in au.
// Topocentric parallax is applied when distAU is positive, then the
// diurnal aberration due to the site's rotation with the Earth.
func (o *Observer) ObserveGCRS(dir vm.Vec3, distAU float64) Position {
	site := o.siteCIRS()
	p := vm.Rxp(o.astrom.BPN, dir)
	if distAU > 0 {
		p = vm.Pmp(vm.Sxp(distAU, p), vm.Sxp(1.0/consts.DAU, site[0]))
	}
	_, u := vm.Pn(p)

	// Apco folds the site velocity into its annual aberration, so Atioq
	// leaves this to the caller.
	v := vm.Sxp(1.0/consts.CMPS, site[1])
	u = astrometry.Ab(u, v, o.astrom.EM, math.Sqrt(1-vm.Pdp(v, v)))

	ri, di := vm.C2s(u)
	pos := o.position(vm.Anp(ri), di)
	pos.SunSepDeg = o.sunSeparation(dir)
	return pos
}

// siteCIRS returns the observer's geocentric position (m) and velocity
// (m/s), CIRS axes.
func (o *Observer) siteCIRS() vm.PV {
	obs := Observatory(o.Site, o.Weather, o.Earth)
	sp := pnp.Sp00(o.Scales.TT.D1, o.Scales.TT.D2)
	theta := erst.Era00(o.Scales.UT1.D1, o.Scales.UT1.D2)
	return astrometry.Pvtob(obs.Elong, obs.Phi, obs.Height, obs.Xp, obs.Yp, sp, theta)
}

// ICRSAt inverts the observed place azDeg, elDeg to an ICRS direction,
// ignoring space motion.
func (o *Observer) ICRSAt(azDeg, elDeg float64) (raDeg, decDeg float64) {
	ri, di := astrometry.Atoiq(astrometry.AzZd, degToRad(azDeg), degToRad(90-elDeg), &o.astrom)
	rc, dc := astrometry.Aticq(ri, di, &o.astrom)
	return radToDeg(rc), radToDeg(dc)
}

func (o *Observer) position(ri, di float64) Position {
	ob := astrometry.Atioq(ri, di, &o.astrom)
	zd := radToDeg(ob.Zd)
	return Position{
		AzDeg:      normalizeAngle360(radToDeg(ob.Az)),
		ElDeg:      90 - zd,
		ZdDeg:      zd,
		HADeg:      radToDeg(vm.Anpm(ob.HA)),
		DecDeg:     radToDeg(ob.Dec),
		RADeg:      radToDeg(vm.Anp(ob.RA)),
		CIRSRADeg:  radToDeg(ri),
		CIRSDecDeg: radToDeg(di),
		AppRADeg:   radToDeg(vm.Anp(ri - o.eo)),
	}
}

// sunSeparation is the angle between p and the geometric direction of
// the Sun, in degrees.
func (o *Observer) sunSeparation(p vm.Vec3) float64 {
	sun := vm.Sxp(-1, o.astrom.EH)
	return radToDeg(vm.Sepp(sun, p))
}

// ElevationFunc gives an object's elevation in degrees at an instant.
type ElevationFunc func(time.Time) (float64, error)

// StarElevation returns an ElevationFunc for s seen by this observer.
// The star's CIRS place is fixed at the observer's epoch and only the
// Earth rotation is advanced, so keep the span to a day or two.
func (o *Observer) StarElevation(s Star) ElevationFunc {
	rc, dc, pr, pd, px, rv := s.Astrometric()
	return o.cirsElevation(astrometry.Atciq(rc, dc, pr, pd, px, rv, &o.astrom))
}

func (o *Observer) cirsElevation(ri, di float64) ElevationFunc {
	a := o.astrom
	dut1 := o.Earth.DUT1
	return func(t time.Time) (float64, error) {
		sc, err := TimeScales(t, dut1)
		if err != nil {
			return 0, err
		}
		astrometry.Aper13(sc.UT1.D1, sc.UT1.D2, &a)
		ob := astrometry.Atioq(ri, di, &a)
		return 90 - radToDeg(ob.Zd), nil
	}
}

// FixedElevation returns an ElevationFunc for a source at constant ICRS
// raDeg, decDeg with no space motion.
func (o *Observer) FixedElevation(raDeg, decDeg float64) ElevationFunc {
	return o.cirsElevation(astrometry.Atciqz(degToRad(raDeg), degToRad(decDeg), &o.astrom))
}

// ParallacticAngle returns the parallactic angle in degrees for an
// object at observed hour angle haDeg and declination decDeg.
func (o *Observer) ParallacticAngle(haDeg, decDeg float64) float64 {
	return radToDeg(coords.Hd2pa(degToRad(haDeg), degToRad(decDeg), degToRad(o.Site.LatDeg)))
}
