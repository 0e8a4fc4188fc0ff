// Package fundargs evaluates the fundamental arguments of the IERS
// Conventions (2003): the Delaunay arguments of lunar and solar motion and
// the planetary mean longitudes used by the nutation series.
//
// Every function takes t, TDB Julian centuries since J2000.0 (TT is close
// enough in practice), and returns radians.
package fundargs

import (
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

// delaunay evaluates a quartic in t given in arcseconds and reduces it to
// radians.
func delaunay(c0, c1, c2, c3, c4, t float64) float64 {
	return math.Mod(c0+t*(c1+t*(c2+t*(c3+t*c4))), consts.TURNAS) * consts.DAS2R
}

// Fal03 returns l, the mean anomaly of the Moon.
func Fal03(t float64) float64 {
	return delaunay(485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470, t)
}

// Falp03 returns l', the mean anomaly of the Sun.
func Falp03(t float64) float64 {
	return delaunay(1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149, t)
}

// Faf03 returns F = L - Om, the mean longitude of the Moon minus that of
// its ascending node.
func Faf03(t float64) float64 {
	return delaunay(335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417, t)
}

// Fad03 returns D, the mean elongation of the Moon from the Sun.
func Fad03(t float64) float64 {
	return delaunay(1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169, t)
}

// Faom03 returns Om, the mean longitude of the Moon's ascending node.
func Faom03(t float64) float64 {
	return delaunay(450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939, t)
}

// Fame03 returns the mean longitude of Mercury.
func Fame03(t float64) float64 {
	return math.Mod(4.402608842+2608.7903141574*t, consts.D2PI)
}

// Fave03 returns the mean longitude of Venus.
func Fave03(t float64) float64 {
	return math.Mod(3.176146697+1021.3285546211*t, consts.D2PI)
}

// Fae03 returns the mean longitude of Earth.
func Fae03(t float64) float64 {
	return math.Mod(1.753470314+628.3075849991*t, consts.D2PI)
}

// Fama03 returns the mean longitude of Mars.
func Fama03(t float64) float64 {
	return math.Mod(6.203480913+334.0612426700*t, consts.D2PI)
}

// Faju03 returns the mean longitude of Jupiter.
func Faju03(t float64) float64 {
	return math.Mod(0.599546497+52.9690962641*t, consts.D2PI)
}

// Fasa03 returns the mean longitude of Saturn.
func Fasa03(t float64) float64 {
	return math.Mod(0.874016757+21.3299104960*t, consts.D2PI)
}

// Faur03 returns the mean longitude of Uranus.
func Faur03(t float64) float64 {
	return math.Mod(5.481293872+7.4781598567*t, consts.D2PI)
}

// Fane03 returns the mean longitude of Neptune.
func Fane03(t float64) float64 {
	return math.Mod(5.311886287+3.8133035638*t, consts.D2PI)
}

// Fapa03 returns the general accumulated precession in longitude.
func Fapa03(t float64) float64 {
	return (0.024381750 + 0.00000538691*t) * t
}
