package ts

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/cal"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// leapDay reports the TAI-UTC values needed to detect drift and jumps on the
// UTC day starting at (iy, im, id): at 0h, at 12h and at 0h the next day.
// The day after is located from the two-part date (d1, d2) with fraction fd.
// Only the next day's lookup decides the warning, so the last day before
// UTC began is not reported as pre-UTC.
func leapDay(iy, im, id int, d1, d2, fd float64) (dat0, dat12, dat24 float64, warn error) {
	var err error
	dat0, err = Dat(iy, im, id, 0)
	if err != nil && !IsWarning(err) {
		return 0, 0, 0, err
	}

	dat12, err = Dat(iy, im, id, 0.5)
	if err != nil && !IsWarning(err) {
		return 0, 0, 0, err
	}

	iyt, imt, idt, _, err := cal.Jd2cal(d1+1.5, d2-fd)
	if err != nil {
		return 0, 0, 0, err
	}
	dat24, err = Dat(iyt, imt, idt, 0)
	if err != nil && !IsWarning(err) {
		return 0, 0, 0, err
	}
	return dat0, dat12, dat24, err
}

// Utctai converts UTC to TAI. The UTC day containing a leap second has its
// fraction scaled so that the JD runs smoothly through 23:59:60.
func Utctai(utc1, utc2 float64) (tai1, tai2 float64, err error) {
	big1 := math.Abs(utc1) >= math.Abs(utc2)
	u1, u2 := utc1, utc2
	if !big1 {
		u1, u2 = utc2, utc1
	}

	iy, im, id, fd, err := cal.Jd2cal(u1, u2)
	if err != nil {
		return 0, 0, fmt.Errorf("utctai: %w", err)
	}
	dat0, dat12, dat24, warn := leapDay(iy, im, id, u1, u2, fd)
	if warn != nil && !IsWarning(warn) {
		return 0, 0, fmt.Errorf("utctai: %w", warn)
	}

	// Separate TAI-UTC change into per-day drift and any jump.
	dlod := 2.0 * (dat12 - dat0)
	dleap := dat24 - (dat0 + dlod)

	// Remove the leap second scaling, then go from pre-1972 UTC seconds to
	// SI seconds.
	fd *= (consts.DAYSEC + dleap) / consts.DAYSEC
	fd *= (consts.DAYSEC + dlod) / consts.DAYSEC

	z1, z2, err := cal.Cal2jd(iy, im, id)
	if err != nil {
		return 0, 0, fmt.Errorf("utctai: %w", err)
	}

	a2 := z1 - u1
	a2 += z2
	a2 += fd + dat0/consts.DAYSEC
	if big1 {
		return u1, a2, warn
	}
	return a2, u1, warn
}

// Taiutc converts TAI to UTC by iterating Utctai.
func Taiutc(tai1, tai2 float64) (utc1, utc2 float64, err error) {
	big1 := math.Abs(tai1) >= math.Abs(tai2)
	a1, a2 := tai1, tai2
	if !big1 {
		a1, a2 = tai2, tai1
	}

	u1, u2 := a1, a2
	var warn error
	for i := 0; i < 3; i++ {
		g1, g2, err := Utctai(u1, u2)
		if err != nil && !IsWarning(err) {
			return 0, 0, err
		}
		warn = err
		u2 += a1 - g1
		u2 += a2 - g2
	}

	if big1 {
		return u1, u2, warn
	}
	return u2, u1, warn
}

// Utcut1 converts UTC to UT1 given dut1 = UT1-UTC in seconds.
func Utcut1(utc1, utc2, dut1 float64) (ut11, ut12 float64, err error) {
	iy, im, id, _, err := cal.Jd2cal(utc1, utc2)
	if err != nil {
		return 0, 0, fmt.Errorf("utcut1: %w", err)
	}
	dat, err := Dat(iy, im, id, 0)
	if err != nil && !IsWarning(err) {
		return 0, 0, fmt.Errorf("utcut1: %w", err)
	}
	warn := err

	dta := dut1 - dat
	tai1, tai2, err := Utctai(utc1, utc2)
	if err != nil && !IsWarning(err) {
		return 0, 0, err
	}
	if err != nil {
		warn = err
	}

	ut11, ut12 = Taiut1(tai1, tai2, dta)
	return ut11, ut12, warn
}

// Ut1utc converts UT1 to UTC given dut1 = UT1-UTC in seconds.
func Ut1utc(ut11, ut12, dut1 float64) (utc1, utc2 float64, err error) {
	duts := dut1

	big1 := math.Abs(ut11) >= math.Abs(ut12)
	u1, u2 := ut11, ut12
	if !big1 {
		u1, u2 = ut12, ut11
	}

	// See if the UT1 can possibly be in a leap-second day.
	var warn error
	d1 := u1
	dats1 := 0.0
	for i := -1; i <= 3; i++ {
		d2 := u2 + float64(i)
		iy, im, id, _, err := cal.Jd2cal(d1, d2)
		if err != nil {
			return 0, 0, fmt.Errorf("ut1utc: %w", err)
		}
		dats2, err := Dat(iy, im, id, 0)
		if err != nil && !IsWarning(err) {
			return 0, 0, fmt.Errorf("ut1utc: %w", err)
		}
		if err != nil {
			warn = err
		}
		if i == -1 {
			dats1 = dats2
		}
		ddats := dats2 - dats1
		if math.Abs(ddats) >= 0.5 {
			// Leap second nearby: ensure UT1-UTC is the "before" value.
			if ddats*duts >= 0 {
				duts -= ddats
			}

			// UT1 for the start of the UTC day that ends in a leap.
			us1, us2, err := cal.Cal2jd(iy, im, id)
			if err != nil {
				return 0, 0, fmt.Errorf("ut1utc: %w", err)
			}
			us2 = us2 - 1.0 + duts/consts.DAYSEC

			du := u1 - us1
			du += u2 - us2
			if du > 0 {
				fd := du * consts.DAYSEC / (consts.DAYSEC + ddats)
				duts += ddats * math.Min(fd, 1.0)
			}
			break
		}
		dats1 = dats2
	}

	u2 -= duts / consts.DAYSEC

	if big1 {
		return u1, u2, warn
	}
	return u2, u1, warn
}

// Dtf2d encodes a calendar date and time of day in the given time scale as
// a two-part Julian Date. For "UTC" the length of the day allows for leap
// seconds, so 23:59:60.5 is legal on a leap second day.
func Dtf2d(scale string, iy, im, id, ihr, imn int, sec float64) (d1, d2 float64, err error) {
	djm0, djm, err := cal.Cal2jd(iy, im, id)
	if err != nil {
		return 0, 0, fmt.Errorf("dtf2d: %w", err)
	}
	dj := djm0 + djm

	day := consts.DAYSEC
	seclim := 60.0
	var warn error

	if scale == "UTC" {
		dat0, dat12, dat24, w := leapDay(iy, im, id, dj, 0, 0)
		if w != nil && !IsWarning(w) {
			return 0, 0, fmt.Errorf("dtf2d: %w", w)
		}
		warn = w

		dleap := dat24 - (2.0*dat12 - dat0)
		day += dleap
		if ihr == 23 && imn == 59 {
			seclim += dleap
		}
	}

	switch {
	case ihr < 0 || ihr > 23:
		return 0, 0, ErrHour
	case imn < 0 || imn > 59:
		return 0, 0, ErrMinute
	case sec < 0:
		return 0, 0, ErrSecond
	case sec >= seclim:
		warn = errors.Join(warn, ErrTimeIsAfterEndOfDay)
	}

	time := (60.0*float64(60*ihr+imn) + sec) / day
	return dj, time, warn
}

// DateTime is the calendar form returned by D2dtf.
type DateTime struct {
	Year, Month, Day int
	// Hour, minute, second and fraction in units of 10^-ndp seconds.
	HMSF [4]int
}

// D2dtf formats a two-part Julian Date in the given time scale as a
// calendar date and time of day rounded to ndp decimal places of a second.
// For "UTC" a leap second is rendered as 23:59:60.
func D2dtf(scale string, ndp int, d1, d2 float64) (DateTime, error) {
	iy1, im1, id1, fd, err := cal.Jd2cal(d1, d2)
	if err != nil {
		return DateTime{}, fmt.Errorf("d2dtf: %w", err)
	}

	var warn error
	leap := false
	if scale == "UTC" {
		dat0, dat12, dat24, w := leapDay(iy1, im1, id1, d1, d2, fd)
		if w != nil && !IsWarning(w) {
			return DateTime{}, fmt.Errorf("d2dtf: %w", w)
		}
		warn = w

		dleap := dat24 - (2.0*dat12 - dat0)
		leap = math.Abs(dleap) > 0.5
		if leap {
			fd += fd * dleap / consts.DAYSEC
		}
	}

	_, ihmsf := vm.D2tf(ndp, fd)

	// Rounding may have pushed the time past 24h.
	if ihmsf[0] > 23 {
		iy2, im2, id2, _, err := cal.Jd2cal(d1+1.5, d2-fd)
		if err != nil {
			return DateTime{}, fmt.Errorf("d2dtf: %w", err)
		}
		tomorrow := func() {
			iy1, im1, id1 = iy2, im2, id2
			ihmsf[0], ihmsf[1], ihmsf[2] = 0, 0, 0
		}

		switch {
		case !leap:
			tomorrow()
		case ihmsf[2] > 0:
			// Past the leap second itself.
			tomorrow()
		default:
			ihmsf[0], ihmsf[1], ihmsf[2] = 23, 59, 60
			if ndp < 0 {
				tomorrow()
			}
		}
	}

	return DateTime{Year: iy1, Month: im1, Day: id1, HMSF: ihmsf}, warn
}
