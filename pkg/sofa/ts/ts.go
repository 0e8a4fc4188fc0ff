// Package ts converts between the astronomical time scales TAI, TT, TDB,
// TCB, TCG, UTC and UT1, using two-part Julian Dates throughout.
//
// UTC is handled with the quasi-JD convention: on a day containing a leap
// second the fraction of day is scaled so that 23:59:60 fits.
package ts

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

var (
	// ErrDubiousYear is a warning: the date lies beyond the reach of the
	// leap second table, results are still returned.
	ErrDubiousYear = errors.New("ts: dubious year")
	// ErrPreUTC is a warning for dates before UTC began in 1960.
	ErrPreUTC = fmt.Errorf("ts: date precedes UTC: %w", ErrDubiousYear)
	// ErrTimeIsAfterEndOfDay is a warning from Dtf2d: the seconds field
	// runs past the end of the day.
	ErrTimeIsAfterEndOfDay = errors.New("ts: time is after end of day")

	ErrFraction = errors.New("ts: bad fraction of day")
	ErrHour     = errors.New("ts: bad hour")
	ErrMinute   = errors.New("ts: bad minute")
	ErrSecond   = errors.New("ts: bad second")
	ErrInternal = errors.New("ts: internal error")
)

// IsWarning reports whether err only carries warnings, meaning the values
// returned alongside it are valid.
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
	return errors.Is(err, ErrDubiousYear) || errors.Is(err, ErrTimeIsAfterEndOfDay)
}

// bigFirst applies a day offset to whichever part of a two-part JD is the
// smaller, preserving precision.
func bigFirst(d1, d2, delta float64) (float64, float64) {
	if math.Abs(d1) > math.Abs(d2) {
		return d1, d2 + delta
	}
	return d1 + delta, d2
}

// Taitt converts TAI to TT.
func Taitt(tai1, tai2 float64) (tt1, tt2 float64) {
	return bigFirst(tai1, tai2, consts.TTMTAI/consts.DAYSEC)
}

// Tttai converts TT to TAI.
func Tttai(tt1, tt2 float64) (tai1, tai2 float64) {
	return bigFirst(tt1, tt2, -consts.TTMTAI/consts.DAYSEC)
}

// Taiut1 converts TAI to UT1 given dta = UT1-TAI in seconds.
func Taiut1(tai1, tai2, dta float64) (ut11, ut12 float64) {
	return bigFirst(tai1, tai2, dta/consts.DAYSEC)
}

// Ut1tai converts UT1 to TAI given dta = UT1-TAI in seconds.
func Ut1tai(ut11, ut12, dta float64) (tai1, tai2 float64) {
	return bigFirst(ut11, ut12, -dta/consts.DAYSEC)
}

// Tttdb converts TT to TDB given dtr = TDB-TT in seconds.
func Tttdb(tt1, tt2, dtr float64) (tdb1, tdb2 float64) {
	return bigFirst(tt1, tt2, dtr/consts.DAYSEC)
}

// Tdbtt converts TDB to TT given dtr = TDB-TT in seconds.
func Tdbtt(tdb1, tdb2, dtr float64) (tt1, tt2 float64) {
	return bigFirst(tdb1, tdb2, -dtr/consts.DAYSEC)
}

// Ttut1 converts TT to UT1 given dt = TT-UT1 in seconds.
func Ttut1(tt1, tt2, dt float64) (ut11, ut12 float64) {
	return bigFirst(tt1, tt2, -dt/consts.DAYSEC)
}

// Ut1tt converts UT1 to TT given dt = TT-UT1 in seconds.
func Ut1tt(ut11, ut12, dt float64) (tt1, tt2 float64) {
	return bigFirst(ut11, ut12, dt/consts.DAYSEC)
}

// Tcgtt converts TCG to TT.
func Tcgtt(tcg1, tcg2 float64) (tt1, tt2 float64) {
	const t77t = consts.DJM77 + consts.TTMTAI/consts.DAYSEC
	if math.Abs(tcg1) > math.Abs(tcg2) {
		return tcg1, tcg2 - ((tcg1-consts.DJM0)+(tcg2-t77t))*consts.ELG
	}
	return tcg1 - ((tcg2-consts.DJM0)+(tcg1-t77t))*consts.ELG, tcg2
}

// Tttcg converts TT to TCG.
func Tttcg(tt1, tt2 float64) (tcg1, tcg2 float64) {
	const (
		t77t = consts.DJM77 + consts.TTMTAI/consts.DAYSEC
		elgg = consts.ELG / (1.0 - consts.ELG)
	)
	if math.Abs(tt1) > math.Abs(tt2) {
		return tt1, tt2 + ((tt1-consts.DJM0)+(tt2-t77t))*elgg
	}
	return tt1 + ((tt2-consts.DJM0)+(tt1-t77t))*elgg, tt2
}

// Tcbtdb converts TCB to TDB.
func Tcbtdb(tcb1, tcb2 float64) (tdb1, tdb2 float64) {
	const (
		t77td = consts.DJM0 + consts.DJM77
		t77tf = consts.TTMTAI / consts.DAYSEC
		tdb0  = consts.TDB0 / consts.DAYSEC
	)
	if math.Abs(tcb1) > math.Abs(tcb2) {
		d := tcb1 - t77td
		return tcb1, tcb2 + tdb0 - (d+(tcb2-t77tf))*consts.ELB
	}
	d := tcb2 - t77td
	return tcb1 + tdb0 - (d+(tcb1-t77tf))*consts.ELB, tcb2
}

// Tdbtcb converts TDB to TCB.
func Tdbtcb(tdb1, tdb2 float64) (tcb1, tcb2 float64) {
	const (
		t77td = consts.DJM0 + consts.DJM77
		t77tf = consts.TTMTAI / consts.DAYSEC
		tdb0  = consts.TDB0 / consts.DAYSEC
		elbb  = consts.ELB / (1.0 - consts.ELB)
	)
	if math.Abs(tdb1) > math.Abs(tdb2) {
		d := t77td - tdb1
		f := tdb2 - tdb0
		return tdb1, f - (d-(f-t77tf))*elbb
	}
	d := t77td - tdb2
	f := tdb1 - tdb0
	return f - (d-(f-t77tf))*elbb, tdb2
}
