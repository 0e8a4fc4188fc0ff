package eph

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Planet numbers the major planets from the Sun outward. Earth is the
// Earth-Moon barycentre.
type Planet int

const (
	Mercury Planet = iota + 1
	Venus
	EarthMoon
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var planetNames = [...]string{"", "Mercury", "Venus", "Earth-Moon", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

func (p Planet) String() string {
	if p < Mercury || p > Neptune {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

var (
	// ErrPlanet is returned for a planet number outside 1-8.
	ErrPlanet = errors.New("eph: planet number must be 1-8")
	// ErrPlanetDateRange is a warning: the date is outside 1000-3000.
	ErrPlanetDateRange = errors.New("eph: date outside 1000-3000")
	// ErrKepler is a warning: Kepler's equation did not converge.
	ErrKepler = errors.New("eph: Kepler's equation not converged")
)

// Plan94 orbit. Mean elements are polynomials in Julian millennia from
// J2000: semi-major axis (au), longitude and perihelion (degrees, then
// arcsec), eccentricity, inclination and node (degrees, then arcsec).
var (
	plA = [8][3]float64{
		{0.3870983098, 0.0, 0.0},
		{0.7233298200, 0.0, 0.0},
		{1.0000010178, 0.0, 0.0},
		{1.5236793419, 3e-10, 0.0},
		{5.2026032092, 19132e-10, -39e-10},
		{9.5549091915, -0.0000213896, 444e-10},
		{19.2184460618, -3716e-10, 979e-10},
		{30.1103868694, -16635e-10, 686e-10},
	}

	plDlm = [8][3]float64{
		{252.25090552, 5381016286.88982, -1.92789},
		{181.97980085, 2106641364.33548, 0.59381},
		{100.46645683, 1295977422.83429, -2.04411},
		{355.43299958, 689050774.93988, 0.94264},
		{34.35151874, 109256603.77991, -30.60378},
		{50.07744430, 43996098.55732, 75.61614},
		{314.05500511, 15424811.93933, -1.75083},
		{304.34866548, 7865503.20744, 0.21103},
	}

	plE = [8][3]float64{
		{0.2056317526, 0.0002040653, -28349e-10},
		{0.0067719164, -0.0004776521, 98127e-10},
		{0.0167086342, -0.0004203654, -0.0000126734},
		{0.0934006477, 0.0009048438, -80641e-10},
		{0.0484979255, 0.0016322542, -0.0000471366},
		{0.0555481426, -0.0034664062, -0.0000643639},
		{0.0463812221, -0.0002729293, 0.0000078913},
		{0.0094557470, 0.0000603263, 0.0},
	}

	plPi = [8][3]float64{
		{77.45611904, 5719.11590, -4.83016},
		{131.56370300, 175.48640, -498.48184},
		{102.93734808, 11612.35290, 53.27577},
		{336.06023395, 15980.45908, -62.32800},
		{14.33120687, 7758.75163, 259.95938},
		{93.05723748, 20395.49439, 190.25952},
		{173.00529106, 3215.56238, -34.09288},
		{48.12027554, 1050.71912, 27.39717},
	}

	plInc = [8][3]float64{
		{7.00498625, -214.25629, 0.28977},
		{3.39466189, -30.84437, -11.67836},
		{0.0, 469.97289, -3.35053},
		{1.84972648, -293.31722, -8.11830},
		{1.30326698, -71.55890, 11.95297},
		{2.48887878, 91.85195, -17.66225},
		{0.77319689, -60.72723, 1.25759},
		{1.76995259, 8.12333, 0.08135},
	}

	plOmega = [8][3]float64{
		{48.33089304, -4515.21727, -31.79892},
		{76.67992019, -10008.48154, -51.32614},
		{174.87317577, -8679.27034, 15.34191},
		{49.55809321, -10620.90088, -230.57416},
		{100.46440702, 6362.03561, 326.52178},
		{113.66550252, -9240.19942, -66.23743},
		{74.00595701, 2669.15033, 145.93964},
		{131.78405702, -221.94322, -0.78728},
	}
)

// Periodic perturbations in units of 1e-7: frequency multipliers and
// cos/sin amplitudes for the semi-major axis (kp, ca, sa) and the mean
// longitude (kq, cl, sl). The last column of each is a mixed T term.
var (
	plKp = [8][9]float64{
		{69613, 75645, 88306, 59899, 15746, 71087, 142173, 3086, 0},
		{21863, 32794, 26934, 10931, 26250, 43725, 53867, 28939, 0},
		{16002, 21863, 32004, 10931, 14529, 16368, 15318, 32794, 0},
		{6345, 7818, 15636, 7077, 8184, 14163, 1107, 4872, 0},
		{1760, 1454, 1167, 880, 287, 2640, 19, 2047, 1454},
		{574, 0, 880, 287, 19, 1760, 1167, 306, 574},
		{204, 0, 177, 1265, 4, 385, 200, 208, 204},
		{0, 102, 106, 4, 98, 1367, 487, 204, 0},
	}

	plCa = [8][9]float64{
		{4, -13, 11, -9, -9, -3, -1, 4, 0},
		{-156, 59, -42, 6, 19, -20, -10, -12, 0},
		{64, -152, 62, -8, 32, -41, 19, -11, 0},
		{124, 621, -145, 208, 54, -57, 30, 15, 0},
		{-23437, -2634, 6601, 6259, -1507, -1821, 2620, -2115, -1489},
		{62911, -119919, 79336, 17814, -24241, 12068, 8306, -4893, 8902},
		{389061, -262125, -44088, 8387, -22976, -2093, -615, -9720, 6633},
		{-412235, -157046, -31430, 37817, -9740, -13, -7449, 9644, 0},
	}

	plSa = [8][9]float64{
		{-29, -1, 9, 6, -6, 5, 4, 0, 0},
		{-48, -125, -26, -37, 18, -13, -20, -2, 0},
		{-150, -46, 68, 54, 14, 24, -28, 22, 0},
		{-621, 532, -694, -20, 192, -94, 71, -73, 0},
		{-14614, -19828, -5869, 1881, -4372, -2255, 782, 930, 913},
		{139737, 0, 24667, 51123, -5102, 7429, -4095, -1976, -9566},
		{-138081, 0, 37205, -49039, -41901, -33872, -27037, -12474, 18797},
		{0, 28492, 133236, 69654, 52322, -49577, -26430, -3593, 0},
	}

	plKq = [8][10]float64{
		{3086, 15746, 69613, 59899, 75645, 88306, 12661, 2658, 0, 0},
		{21863, 32794, 10931, 73, 4387, 26934, 1473, 2157, 0, 0},
		{10, 16002, 21863, 10931, 1473, 32004, 4387, 73, 0, 0},
		{10, 6345, 7818, 1107, 15636, 7077, 8184, 532, 10, 0},
		{19, 1760, 1454, 287, 1167, 880, 574, 2640, 19, 1454},
		{19, 574, 287, 306, 1760, 12, 31, 38, 19, 574},
		{4, 204, 177, 8, 31, 200, 1265, 102, 4, 204},
		{4, 102, 106, 8, 98, 1367, 487, 204, 4, 102},
	}

	plCl = [8][10]float64{
		{21, -95, -157, 41, -5, 42, 23, 30, 0, 0},
		{-160, -313, -235, 60, -74, -76, -27, 34, 0, 0},
		{-325, -322, -79, 232, -52, 97, 55, -41, 0, 0},
		{2268, -979, 802, 602, -668, -33, 345, 201, -55, 0},
		{7610, -4997, -7689, -5841, -2617, 1115, -748, -607, 6074, 354},
		{-18549, 30125, 20012, -730, 824, 23, 1289, -352, -14767, -2062},
		{-135245, -14594, 4197, -4030, -5630, -2898, 2540, -306, 2939, 1986},
		{89948, 2103, 8963, 2695, 3682, 1648, 866, -154, -1963, -283},
	}

	plSl = [8][10]float64{
		{-342, 136, -23, 62, 66, -52, -33, 17, 0, 0},
		{524, -149, -35, 117, 151, 122, -71, -62, 0, 0},
		{-105, -137, 258, 35, -116, -88, -112, -80, 0, 0},
		{854, -205, -936, -240, 140, -341, -97, -232, 536, 0},
		{-56980, 8016, 1012, 1448, -3024, -3710, 318, 503, 3767, 577},
		{138606, -13478, -4964, 1441, -1319, -1482, 427, 1236, -9167, -1918},
		{71234, -41116, 5334, -4935, -1848, 66, 434, -1748, 3780, -701},
		{-47645, 11647, 2166, 3194, 679, 0, -244, -419, -2531, 48},
	}

	// Reciprocal planetary masses in solar units.
	plAmas = [8]float64{6023600.0, 408523.5, 328900.5, 3098710.0, 1047.355, 3498.5, 22869.0, 19314.0}
)

// Plan94 returns the heliocentric position and velocity (au, au/day) of
// a major planet at TDB date1+date2, in the J2000 equatorial frame, from
// the Simon et al. (1994) mean elements and periodic terms.
//
// Over 1800-2050 directions are good to between 4 arcsec (Mercury) and
// about 90 arcsec (Uranus). Outside 1000-3000 ErrPlanetDateRange comes
// back with the result; ErrKepler likewise marks a result whose Kepler
// iteration did not converge. An unknown planet gives ErrPlanet and a
// zero result.
func Plan94(date1, date2 float64, p Planet) (vm.PV, error) {
	const (
		// Gaussian constant.
		gk = 0.017202098950
		// Sine and cosine of J2000 mean obliquity (IAU 1976).
		sineps = 0.3977771559319137
		coseps = 0.9174820620691818
		kmax   = 10
	)

	if p < Mercury || p > Neptune {
		return vm.PV{}, fmt.Errorf("%w: %d", ErrPlanet, int(p))
	}
	np := int(p) - 1

	t := ((date1 - consts.DJ00) + date2) / consts.DJM

	var warn error
	if math.Abs(t) > 1.0 {
		warn = ErrPlanetDateRange
	}

	da := plA[np][0] + (plA[np][1]+plA[np][2]*t)*t
	dl := (3600.0*plDlm[np][0] + (plDlm[np][1]+plDlm[np][2]*t)*t) * consts.DAS2R
	de := plE[np][0] + (plE[np][1]+plE[np][2]*t)*t
	dp := vm.Anpm((3600.0*plPi[np][0] + (plPi[np][1]+plPi[np][2]*t)*t) * consts.DAS2R)
	di := (3600.0*plInc[np][0] + (plInc[np][1]+plInc[np][2]*t)*t) * consts.DAS2R
	dom := vm.Anpm((3600.0*plOmega[np][0] + (plOmega[np][1]+plOmega[np][2]*t)*t) * consts.DAS2R)

	dmu := 0.35953620 * t
	for k := 0; k < 8; k++ {
		arga := plKp[np][k] * dmu
		argl := plKq[np][k] * dmu
		da += (plCa[np][k]*math.Cos(arga) + plSa[np][k]*math.Sin(arga)) * 1e-7
		dl += (plCl[np][k]*math.Cos(argl) + plSl[np][k]*math.Sin(argl)) * 1e-7
	}
	arga := plKp[np][8] * dmu
	da += t * (plCa[np][8]*math.Cos(arga) + plSa[np][8]*math.Sin(arga)) * 1e-7
	for k := 8; k < 10; k++ {
		argl := plKq[np][k] * dmu
		dl += t * (plCl[np][k]*math.Cos(argl) + plSl[np][k]*math.Sin(argl)) * 1e-7
	}
	dl = math.Mod(dl, consts.D2PI)

	// Eccentric anomaly by Newton iteration.
	am := dl - dp
	ae := am + de*math.Sin(am)
	dae := 1.0
	for k := 0; k < kmax && math.Abs(dae) > 1e-12; k++ {
		dae = (am - ae + de*math.Sin(ae)) / (1.0 - de*math.Cos(ae))
		ae += dae
		if k+1 == kmax-1 {
			warn = errors.Join(warn, ErrKepler)
		}
	}

	// True anomaly.
	ae2 := ae / 2.0
	at := 2.0 * math.Atan2(math.Sqrt((1.0+de)/(1.0-de))*math.Sin(ae2), math.Cos(ae2))

	// Distance (au) and speed (radians per day).
	r := da * (1.0 - de*math.Cos(ae))
	v := gk * math.Sqrt((1.0+1.0/plAmas[np])/(da*da*da))

	si2 := math.Sin(di / 2.0)
	xq := si2 * math.Cos(dom)
	xp := si2 * math.Sin(dom)
	tl := at + dp
	xsw, xcw := math.Sincos(tl)
	xm2 := 2.0 * (xp*xcw - xq*xsw)
	xf := da / math.Sqrt(1-de*de)
	ci2 := math.Cos(di / 2.0)
	xms := (de*math.Sin(dp) + xsw) * xf
	xmc := (de*math.Cos(dp) + xcw) * xf
	xpxq2 := 2 * xp * xq

	// Rotate the ecliptic vectors to the equator.
	x := r * (xcw - xm2*xp)
	y := r * (xsw + xm2*xq)
	z := r * (-xm2 * ci2)

	var pv vm.PV
	pv[0] = vm.Vec3{x, y*coseps - z*sineps, y*sineps + z*coseps}

	x = v * ((-1.0+2.0*xp*xp)*xms + xpxq2*xmc)
	y = v * ((1.0-2.0*xq*xq)*xmc - xpxq2*xms)
	z = v * (2.0 * ci2 * (xp*xms + xq*xmc))
	pv[1] = vm.Vec3{x, y*coseps - z*sineps, y*sineps + z*coseps}

	return pv, warn
}
