// Package cal converts between the Gregorian calendar and Julian Dates and
// handles Besselian and Julian epochs.
package cal

import (
	"errors"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

var (
	// ErrYear reports a year before IYMIN.
	ErrYear = errors.New("cal: bad year")
	// ErrMonth reports a month outside 1-12.
	ErrMonth = errors.New("cal: bad month")
	// ErrDay reports a day outside the month.
	ErrDay = errors.New("cal: bad day")
	// ErrDate reports a Julian Date outside the supported range.
	ErrDate = errors.New("cal: unacceptable date")
	// ErrPrecision reports a Jdcalf precision outside 0-9. It is a
	// warning: the date is still returned, rounded to whole days.
	ErrPrecision = errors.New("cal: precision out of range, 0 assumed")
)

var mtab = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Cal2jd converts a Gregorian calendar date to a two-part Modified Julian
// Date: djm0 is always DJM0 and djm holds the MJD at 0 hrs.
func Cal2jd(iy, im, id int) (djm0, djm float64, err error) {
	if iy < consts.IYMIN {
		return 0, 0, ErrYear
	}
	if im < 1 || im > 12 {
		return 0, 0, ErrMonth
	}

	ly := 0
	if im == 2 && iy%4 == 0 && (iy%100 != 0 || iy%400 == 0) {
		ly = 1
	}
	if id < 1 || id > mtab[im-1]+ly {
		return 0, 0, ErrDay
	}

	my := (im - 14) / 12
	iypmy := int64(iy + my)
	djm = float64((1461*(iypmy+4800))/4 +
		(367*int64(im-2-12*my))/12 -
		(3*((iypmy+4900)/100))/4 +
		int64(id) - 2432076)

	return consts.DJM0, djm, nil
}

// Jd2cal converts a two-part Julian Date to a Gregorian year, month, day and
// fraction of day. The split between dj1 and dj2 is arbitrary.
func Jd2cal(dj1, dj2 float64) (iy, im, id int, fd float64, err error) {
	const (
		djmin = -68569.5
		djmax = 1e9
	)

	dj := dj1 + dj2
	if dj < djmin || dj > djmax {
		return 0, 0, 0, 0, ErrDate
	}

	// Separate day and fraction (-0.5 <= fraction < 0.5).
	d := math.Round(dj1)
	f1 := dj1 - d
	jd := int64(d)
	d = math.Round(dj2)
	f2 := dj2 - d
	jd += int64(d)

	// f1+f2+0.5 by compensated summation.
	s := 0.5
	cs := 0.0
	for _, x := range [2]float64{f1, f2} {
		t := s + x
		if math.Abs(s) >= math.Abs(x) {
			cs += (s - t) + x
		} else {
			cs += (x - t) + s
		}
		s = t
		if s >= 1 {
			jd++
			s--
		}
	}
	f := s + cs
	cs = f - s

	if f < 0 {
		f = s + 1
		cs += (1 - f) + s
		s = f
		f = s + cs
		cs = f - s
		jd--
	}

	const eps = 2.220446049250313e-16
	if f-1 >= -eps/4 {
		t := s - 1
		cs += (s - t) - 1
		s = t
		f = s + cs
		if -eps/2 < f {
			jd++
			f = math.Max(f, 0)
		}
	}

	l := jd + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= (1461*i)/4 - 31
	k := (80 * l) / 2447
	id = int(l - (2447*k)/80)
	l = k / 11
	im = int(k + 2 - 12*l)
	iy = int(100*(n-49) + i + l)

	return iy, im, id, f, nil
}

// Jdcalf converts a Julian Date to a Gregorian date rounded to ndp decimal
// places of a day. The result is year, month, day, fraction-as-integer.
func Jdcalf(ndp int, dj1, dj2 float64) (iymdf [4]int, err error) {
	var denom float64
	if ndp >= 0 && ndp <= 9 {
		denom = math.Pow(10, float64(ndp))
	} else {
		err = ErrPrecision
		denom = 1
	}

	d1, d2 := dj1, dj2
	if math.Abs(dj1) < math.Abs(dj2) {
		d1, d2 = dj2, dj1
	}

	// Realign to midnight.
	d1 -= 0.5

	d := math.Round(d1)
	f1 := d1 - d
	djd := d
	d = math.Round(d2)
	f2 := d2 - d
	djd += d
	d = math.Round(f1 + f2)
	f := (f1 - d) + f2
	if f < 0 {
		f++
		d--
	}
	djd += d

	rf := math.Round(f*denom) / denom

	djd += 0.5

	iy, im, id, fd, jerr := Jd2cal(djd, rf)
	if jerr != nil {
		return iymdf, jerr
	}
	return [4]int{iy, im, id, int(math.Round(fd * denom))}, err
}

// Epb converts a Julian Date to a Besselian epoch.
func Epb(dj1, dj2 float64) float64 {
	return 1900.0 + ((dj1-consts.DJ00)+(dj2+consts.D1900))/consts.DTY
}

// Epb2jd converts a Besselian epoch to a two-part Julian Date.
func Epb2jd(epb float64) (djm0, djm float64) {
	return consts.DJM0, 15019.81352 + (epb-1900.0)*consts.DTY
}

// Epj converts a Julian Date to a Julian epoch.
func Epj(dj1, dj2 float64) float64 {
	return 2000.0 + ((dj1-consts.DJ00)+dj2)/consts.DJY
}

// Epj2jd converts a Julian epoch to a two-part Julian Date.
func Epj2jd(epj float64) (djm0, djm float64) {
	return consts.DJM0, consts.DJM00 + (epj-2000.0)*consts.DJY
}
