package vm

import (
	"errors"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

// Range errors from the sexagesimal-to-radians conversions. The converted
// value is still returned alongside them.
var (
	ErrDegrees = errors.New("vm: degrees outside range 0-359")
	ErrHours   = errors.New("vm: hours outside range 0-23")
	ErrMinutes = errors.New("vm: minutes outside range 0-59")
	ErrSeconds = errors.New("vm: seconds outside range 0-59.999")
)

// Anp normalizes an angle into the range 0 <= a < 2pi.
func Anp(a float64) float64 {
	w := math.Mod(a, consts.D2PI)
	if w < 0 {
		w += consts.D2PI
	}
	return w
}

// Anpm normalizes an angle into the range -pi <= a < +pi.
func Anpm(a float64) float64 {
	w := math.Mod(a, consts.D2PI)
	if math.Abs(w) >= consts.DPI {
		w -= math.Copysign(consts.D2PI, a)
	}
	return w
}

// D2tf decomposes days into hours, minutes, seconds and fraction. ndp is the
// number of decimal places in the fraction; negative values round to
// coarser units (-1: 10s, -2: 1m, -3: 10m, -4: 1h, -5: 10h).
func D2tf(ndp int, days float64) (sign byte, ihmsf [4]int) {
	sign = '+'
	if days < 0 {
		sign = '-'
	}

	a := consts.DAYSEC * math.Abs(days)

	if ndp < 0 {
		nrs := 1
		for n := 1; n <= -ndp; n++ {
			if n == 2 || n == 4 {
				nrs *= 6
			} else {
				nrs *= 10
			}
		}
		rs := float64(nrs)
		w := a / rs
		a = rs * math.Round(w)
	}

	nrs := 1
	for n := 1; n <= ndp; n++ {
		nrs *= 10
	}
	rs := float64(nrs)
	rm := rs * 60
	rh := rm * 60

	a = math.Round(rs * a)

	ah := math.Floor(a / rh)
	a -= ah * rh
	am := math.Floor(a / rm)
	a -= am * rm
	as := math.Floor(a / rs)
	af := a - as*rs

	return sign, [4]int{int(ah), int(am), int(as), int(af)}
}

// A2tf decomposes radians into hours, minutes, seconds and fraction.
func A2tf(ndp int, angle float64) (sign byte, ihmsf [4]int) {
	return D2tf(ndp, angle/consts.D2PI)
}

// A2af decomposes radians into degrees, arcminutes, arcseconds and fraction.
func A2af(ndp int, angle float64) (sign byte, idmsf [4]int) {
	const f = 15.0 / consts.D2PI
	return D2tf(ndp, angle*f)
}

// Af2a converts degrees, arcminutes and arcseconds to radians. Any sign on
// the numeric fields is ignored; s of '-' makes the result negative.
func Af2a(s byte, ideg, iamin int, asec float64) (float64, error) {
	rad := signOf(s) * (60.0*(60.0*math.Abs(float64(ideg))+math.Abs(float64(iamin))) +
		math.Abs(asec)) * consts.DAS2R

	switch {
	case ideg < 0 || ideg > 359:
		return rad, ErrDegrees
	case iamin < 0 || iamin > 59:
		return rad, ErrMinutes
	case asec < 0 || asec >= 60:
		return rad, ErrSeconds
	}
	return rad, nil
}

// Tf2a converts hours, minutes and seconds to radians.
func Tf2a(s byte, ihour, imin int, sec float64) (float64, error) {
	rad := signOf(s) * (60.0*(60.0*math.Abs(float64(ihour))+math.Abs(float64(imin))) +
		math.Abs(sec)) * consts.DS2R
	return rad, checkHMS(ihour, imin, sec)
}

// Tf2d converts hours, minutes and seconds to days.
func Tf2d(s byte, ihour, imin int, sec float64) (float64, error) {
	days := signOf(s) * (60.0*(60.0*math.Abs(float64(ihour))+math.Abs(float64(imin))) +
		math.Abs(sec)) / consts.DAYSEC
	return days, checkHMS(ihour, imin, sec)
}

func signOf(s byte) float64 {
	if s == '-' {
		return -1
	}
	return 1
}

func checkHMS(ihour, imin int, sec float64) error {
	switch {
	case ihour < 0 || ihour > 23:
		return ErrHours
	case imin < 0 || imin > 59:
		return ErrMinutes
	case sec < 0 || sec >= 60:
		return ErrSeconds
	}
	return nil
}
