package ts

import (
	"fmt"

	"github.com/litescript/ls-sofa/pkg/sofa/cal"
)

// LeapTableYear is the year the leap second table below was last checked.
// Dates more than five years later are reported as dubious: a leap second
// may have been announced since.
//
// The table must be updated by hand whenever IERS announces a new leap
// second (Bulletin C). Add the new entry to datChanges and bump this year.
const LeapTableYear = 2023

// Drift rates for the pre-1972 rubber-second era: reference MJD and
// seconds per day.
var datDrift = [...][2]float64{
	{37300.0, 0.0012960},
	{37300.0, 0.0012960},
	{37300.0, 0.0012960},
	{37665.0, 0.0011232},
	{37665.0, 0.0011232},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{39126.0, 0.0025920},
	{39126.0, 0.0025920},
}

type datChange struct {
	year, month int
	delat       float64
}

// Dates and Delta(AT)s.
var datChanges = [...]datChange{
	{1960, 1, 1.4178180},
	{1961, 1, 1.4228180},
	{1961, 8, 1.3728180},
	{1962, 1, 1.8458580},
	{1963, 11, 1.9458580},
	{1964, 1, 3.2401300},
	{1964, 4, 3.3401300},
	{1964, 9, 3.4401300},
	{1965, 1, 3.5401300},
	{1965, 3, 3.6401300},
	{1965, 7, 3.7401300},
	{1965, 9, 3.8401300},
	{1966, 1, 4.3131700},
	{1968, 2, 4.2131700},
	{1972, 1, 10.0},
	{1972, 7, 11.0},
	{1973, 1, 12.0},
	{1974, 1, 13.0},
	{1975, 1, 14.0},
	{1976, 1, 15.0},
	{1977, 1, 16.0},
	{1978, 1, 17.0},
	{1979, 1, 18.0},
	{1980, 1, 19.0},
	{1981, 7, 20.0},
	{1982, 7, 21.0},
	{1983, 7, 22.0},
	{1985, 7, 23.0},
	{1988, 1, 24.0},
	{1990, 1, 25.0},
	{1991, 1, 26.0},
	{1992, 7, 27.0},
	{1993, 7, 28.0},
	{1994, 7, 29.0},
	{1996, 1, 30.0},
	{1997, 7, 31.0},
	{1999, 1, 32.0},
	{2006, 1, 33.0},
	{2009, 1, 34.0},
	{2012, 7, 35.0},
	{2015, 7, 36.0},
	{2017, 1, 37.0},
}

// Dat returns Delta(AT) = TAI-UTC in seconds for a UTC calendar date and
// fraction of day fd.
//
// Before 1960 there is no UTC; Dat returns 0 with ErrPreUTC. After
// LeapTableYear+5 the last known value is returned with ErrDubiousYear.
// Both are warnings; every other error means no value could be computed.
func Dat(iy, im, id int, fd float64) (float64, error) {
	if fd < 0 || fd > 1 {
		return 0, ErrFraction
	}

	_, djm, err := cal.Cal2jd(iy, im, id)
	if err != nil {
		return 0, fmt.Errorf("dat: %w", err)
	}

	if iy < datChanges[0].year {
		return 0, ErrPreUTC
	}

	var warn error
	if iy > LeapTableYear+5 {
		warn = ErrDubiousYear
	}

	// Combine year and month into a date-ordered integer and find the
	// preceding table entry.
	m := 12*iy + im
	i := len(datChanges) - 1
	for ; i >= 0; i-- {
		if m >= 12*datChanges[i].year+datChanges[i].month {
			break
		}
	}
	if i < 0 {
		return 0, ErrInternal
	}

	da := datChanges[i].delat
	if i < len(datDrift) {
		da += (djm + fd - datDrift[i][0]) * datDrift[i][1]
	}
	return da, warn
}
