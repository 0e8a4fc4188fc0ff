package astro

import (
	"fmt"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/coords"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// SkyCoord is a pair of spherical coordinates in degrees, longitude-like
// first.
type SkyCoord struct {
	LonDeg float64 `json:"lon_deg"`
	LatDeg float64 `json:"lat_deg"`
}

// Galactic converts ICRS raDeg, decDeg to IAU 1958 galactic coordinates.
func Galactic(raDeg, decDeg float64) SkyCoord {
	l, b := coords.Icrs2g(degToRad(raDeg), degToRad(decDeg))
	return SkyCoord{radToDeg(l), radToDeg(b)}
}

// FromGalactic converts galactic l, b back to ICRS RA, Dec.
func FromGalactic(lDeg, bDeg float64) SkyCoord {
	ra, dec := coords.G2icrs(degToRad(lDeg), degToRad(bDeg))
	return SkyCoord{radToDeg(ra), radToDeg(dec)}
}

// Ecliptic converts ICRS raDeg, decDeg to ecliptic coordinates of date
// (IAU 2006 mean equinox and ecliptic) at TT tt.
func Ecliptic(tt JD, raDeg, decDeg float64) SkyCoord {
	l, b := coords.Eqec06(tt.D1, tt.D2, degToRad(raDeg), degToRad(decDeg))
	return SkyCoord{radToDeg(l), radToDeg(b)}
}

// FromEcliptic converts ecliptic coordinates of date back to ICRS.
func FromEcliptic(tt JD, lonDeg, latDeg float64) SkyCoord {
	ra, dec := coords.Eceq06(tt.D1, tt.D2, degToRad(lonDeg), degToRad(latDeg))
	return SkyCoord{radToDeg(ra), radToDeg(dec)}
}

// FormatHMS renders an angle in degrees as hours, minutes and seconds
// with ndp decimals, normalized to 0-24h.
func FormatHMS(deg float64, ndp int) string {
	_, f := vm.A2tf(ndp, vm.Anp(degToRad(deg)))
	if ndp <= 0 {
		return fmt.Sprintf("%02dh%02dm%02ds", f[0], f[1], f[2])
	}
	return fmt.Sprintf("%02dh%02dm%02d.%0*ds", f[0], f[1], f[2], ndp, f[3])
}

// FormatDMS renders an angle in degrees as signed degrees, arcminutes
// and arcseconds with ndp decimals.
func FormatDMS(deg float64, ndp int) string {
	sign, f := vm.A2af(ndp, degToRad(deg))
	if ndp <= 0 {
		return fmt.Sprintf("%c%02d°%02d'%02d\"", sign, f[0], f[1], f[2])
	}
	return fmt.Sprintf("%c%02d°%02d'%02d.%0*d\"", sign, f[0], f[1], f[2], ndp, f[3])
}

// ParseHMS parses "hh mm ss.s" fields into degrees.
func ParseHMS(sign byte, h, m int, s float64) (float64, error) {
	rad, err := vm.Tf2a(sign, h, m, s)
	if err != nil {
		return 0, err
	}
	return radToDeg(rad), nil
}

// ParseDMS parses "dd mm ss.s" fields into degrees.
func ParseDMS(sign byte, d, m int, s float64) (float64, error) {
	rad, err := vm.Af2a(sign, d, m, s)
	if err != nil {
		return 0, err
	}
	return radToDeg(rad), nil
}

// LightTime returns the light travel time in seconds over distAU.
func LightTime(distAU float64) float64 {
	return distAU * consts.AULT
}

// FormatLightTime formats a light time in seconds as a short duration.
func FormatLightTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm%ds", int(seconds/60), int(seconds)%60)
	default:
		return fmt.Sprintf("%dh%dm", int(seconds/3600), (int(seconds)%3600)/60)
	}
}
