package astro

import (
	"math"
	"strings"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

// Star is a catalog entry: ICRS place at epoch J2000.0 with space motion.
type Star struct {
	Name   string  `json:"name"`
	RAdeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	// Proper motion in mas/yr; PMRA is the RA rate times cos(Dec).
	PMRA  float64 `json:"pm_ra"`
	PMDec float64 `json:"pm_dec"`
	// Parallax in mas, radial velocity in km/s (positive receding).
	Parallax float64 `json:"parallax"`
	RV       float64 `json:"rv"`
	Mag      float64 `json:"mag"`
}

// Astrometric returns the star's catalog data in the units the
// astrometry package takes: radians, radians/yr of RA and Dec, arcsec
// and km/s.
func (s Star) Astrometric() (rc, dc, pr, pd, px, rv float64) {
	rc = degToRad(s.RAdeg)
	dc = degToRad(s.DecDeg)
	pr = s.PMRA * consts.DMAS2R / math.Cos(dc)
	pd = s.PMDec * consts.DMAS2R
	px = s.Parallax / 1000.0
	return rc, dc, pr, pd, px, s.RV
}

// StarCatalog holds a collection of stars.
type StarCatalog struct {
	Stars []Star
}

// DefaultStarCatalog returns the built-in catalog of the brightest stars,
// brightest first. Positions and motions are from Hipparcos.
func DefaultStarCatalog() StarCatalog {
	return StarCatalog{
		Stars: defaultStars,
	}
}

// Find looks a star up by name, ignoring case.
func (c StarCatalog) Find(name string) (Star, bool) {
	for _, s := range c.Stars {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Star{}, false
}

// Brighter returns the stars at or brighter than mag.
func (c StarCatalog) Brighter(mag float64) []Star {
	var out []Star
	for _, s := range c.Stars {
		if s.Mag <= mag {
			out = append(out, s)
		}
	}
	return out
}

var defaultStars = []Star{
	{"Sirius", 101.287155, -16.716116, -546.01, -1223.07, 379.21, -5.50, -1.46},
	{"Canopus", 95.987958, -52.695661, 19.93, 23.24, 10.55, 20.30, -0.74},
	{"Arcturus", 213.915300, 19.182409, -1093.39, -2000.06, 88.83, -5.19, -0.05},
	{"Vega", 279.234735, 38.783689, 200.94, 286.23, 130.23, -13.90, 0.03},
	{"Capella", 79.172328, 45.997991, 75.25, -426.89, 76.20, 29.19, 0.08},
	{"Rigel", 78.634467, -8.201638, 1.31, 0.50, 3.78, 17.80, 0.13},
	{"Procyon", 114.825498, 5.224988, -714.59, -1036.80, 284.56, -3.20, 0.34},
	{"Achernar", 24.428523, -57.236753, 87.00, -38.24, 23.39, 16.00, 0.46},
	{"Betelgeuse", 88.792939, 7.407064, 27.54, 11.30, 6.55, 21.91, 0.50},
	{"Hadar", 210.955856, -60.373035, -33.27, -23.16, 8.32, 5.90, 0.61},
	{"Acrux", 186.649563, -63.099093, -35.83, -14.86, 10.13, -11.20, 0.76},
	{"Altair", 297.695827, 8.868321, 536.23, 385.29, 194.95, -26.60, 0.77},
	{"Aldebaran", 68.980163, 16.509302, 63.45, -188.94, 48.94, 54.26, 0.86},
	{"Antares", 247.351915, -26.432003, -12.11, -23.30, 5.89, -3.50, 0.96},
	{"Spica", 201.298247, -11.161319, -42.35, -30.67, 13.06, 1.00, 0.97},
	{"Pollux", 116.328958, 28.026199, -626.55, -45.80, 96.54, 3.23, 1.14},
	{"Fomalhaut", 344.412693, -29.622237, 328.95, -164.67, 129.81, 6.50, 1.16},
	{"Deneb", 310.357980, 45.280339, 2.01, 1.85, 2.31, -4.50, 1.25},
	{"Mimosa", 191.930287, -59.688772, -42.97, -16.18, 9.25, 15.60, 1.25},
	{"Regulus", 152.092962, 11.967209, -248.73, 5.59, 41.13, 5.90, 1.35},
	{"Adhara", 104.656453, -28.972086, 3.24, 1.33, 7.57, 27.30, 1.50},
	{"Castor", 113.649428, 31.888282, -191.45, -145.19, 64.12, 5.40, 1.58},
	{"Shaula", 263.402167, -37.103824, -8.90, -29.95, 4.64, -3.00, 1.62},
	{"Gacrux", 187.791498, -57.113213, 27.94, -264.33, 37.09, 20.60, 1.63},
	{"Bellatrix", 81.282764, 6.349703, -8.75, -13.28, 12.92, 18.20, 1.64},
	{"Elnath", 81.572971, 28.607452, 23.28, -174.22, 24.89, 9.20, 1.65},
	{"Miaplacidus", 138.299906, -69.717208, -157.66, 108.91, 29.34, -5.00, 1.67},
	{"Alnilam", 84.053389, -1.201919, 1.49, -1.06, 1.65, 25.90, 1.69},
	{"Alnair", 332.058270, -46.960974, 127.60, -147.91, 32.16, 11.80, 1.73},
	{"Alioth", 193.507290, 55.959823, 111.74, -8.99, 40.30, -9.30, 1.76},
	{"Dubhe", 165.931965, 61.751035, -136.46, -35.25, 26.38, -9.40, 1.79},
	{"Mirfak", 51.080709, 49.861179, 24.11, -26.01, 5.51, -2.00, 1.79},
	{"Wezen", 107.097850, -26.393200, -2.75, 3.33, 1.82, 34.30, 1.83},
	{"Kaus Australis", 276.042993, -34.384616, -39.61, -124.05, 22.55, -15.00, 1.85},
	{"Avior", 125.628480, -59.509484, -25.34, 22.72, 5.16, 11.60, 1.86},
	{"Alkaid", 206.885157, 49.313267, -121.23, -15.56, 32.39, -10.90, 1.86},
	{"Menkalinan", 89.882179, 44.947433, -56.41, -0.88, 39.72, -18.20, 1.90},
	{"Atria", 252.166229, -69.027712, 17.85, -32.92, 8.35, -3.00, 1.91},
	{"Alhena", 99.427960, 16.399280, -2.04, -66.92, 31.12, -12.50, 1.93},
	{"Peacock", 306.411904, -56.735090, 7.71, -86.15, 18.24, 2.00, 1.94},
	{"Polaris", 37.954561, 89.264109, 44.48, -11.85, 7.54, -16.42, 1.98},
	{"Mirzam", 95.674939, -17.955919, -3.45, -0.47, 6.53, 33.70, 1.98},
	{"Alphard", 141.896847, -8.658603, -14.49, 33.25, 18.40, -4.30, 1.99},
	{"Hamal", 31.793357, 23.462418, 190.73, -145.77, 49.48, -14.20, 2.00},
	{"Diphda", 10.897379, -17.986606, 232.79, 32.71, 34.04, 13.30, 2.04},
	{"Nunki", 283.816360, -26.296724, 13.87, -52.65, 14.54, -11.20, 2.05},
	{"Alpheratz", 2.096916, 29.090431, 135.68, -162.95, 33.60, -10.60, 2.06},
	{"Kochab", 222.676357, 74.155505, -32.29, 11.91, 25.79, 16.90, 2.08},
	{"Rasalhague", 263.733627, 12.560035, 110.08, -222.61, 69.84, 12.70, 2.08},
	{"Algol", 47.042215, 40.955648, 2.39, -1.44, 35.14, 4.00, 2.12},
	{"Denebola", 177.264910, 14.572058, -499.02, -113.78, 90.16, -0.20, 2.13},
	{"Mizar", 200.981429, 54.925362, 121.23, -22.01, 41.73, -5.60, 2.23},
	{"Schedar", 10.126838, 56.537331, 50.36, -32.17, 14.29, -4.30, 2.24},
	{"Eltanin", 269.151541, 51.488896, -8.52, -23.05, 22.10, -27.90, 2.24},
	{"Caph", 2.294522, 59.149781, 523.39, -180.42, 59.89, 11.30, 2.28},
}
