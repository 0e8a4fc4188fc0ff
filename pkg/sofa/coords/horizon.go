// Package coords converts between astronomical reference frames:
// equatorial, ecliptic, galactic and horizon coordinates, and geocentric
// and geodetic positions on the terrestrial reference ellipsoids.
package coords

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

// Hd2ae converts hour angle and declination to azimuth (north through
// east, 0-2pi) and altitude for an observer at geodetic latitude phi.
func Hd2ae(ha, dec, phi float64) (az, el float64) {
	sh, ch := math.Sincos(ha)
	sd, cd := math.Sincos(dec)
	sp, cp := math.Sincos(phi)

	x := -ch*cd*sp + sd*cp
	y := -sh * cd
	z := ch*cd*cp + sd*sp

	r := math.Sqrt(x*x + y*y)
	a := 0.0
	if r != 0 {
		a = math.Atan2(y, x)
	}
	if a < 0 {
		a += consts.D2PI
	}
	return a, math.Atan2(z, r)
}

// Ae2hd converts azimuth and altitude to hour angle and declination.
func Ae2hd(az, el, phi float64) (ha, dec float64) {
	sa, ca := math.Sincos(az)
	se, ce := math.Sincos(el)
	sp, cp := math.Sincos(phi)

	x := -ca*ce*sp + se*cp
	y := -sa * ce
	z := ca*ce*cp + se*sp

	r := math.Sqrt(x*x + y*y)
	if r != 0 {
		ha = math.Atan2(y, x)
	}
	return ha, math.Atan2(z, r)
}

// Hd2pa returns the parallactic angle for hour angle ha and declination
// dec at latitude phi. Zero at the pole or zenith.
func Hd2pa(ha, dec, phi float64) float64 {
	cp := math.Cos(phi)
	sqsz := cp * math.Sin(ha)
	cqsz := math.Sin(phi)*math.Cos(dec) - cp*math.Sin(dec)*math.Cos(ha)
	if sqsz == 0 && cqsz == 0 {
		return 0
	}
	return math.Atan2(sqsz, cqsz)
}
