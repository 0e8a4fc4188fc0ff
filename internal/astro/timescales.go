package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/erst"
	"github.com/litescript/ls-sofa/pkg/sofa/pnp"
	"github.com/litescript/ls-sofa/pkg/sofa/ts"
)

// JD is a two-part Julian Date.
type JD struct {
	D1 float64 `json:"d1"`
	D2 float64 `json:"d2"`
}

// Float returns the date as a single number, losing some precision.
func (j JD) Float() float64 {
	return j.D1 + j.D2
}

// MJD returns the Modified Julian Date.
func (j JD) MJD() float64 {
	return (j.D1 - consts.DJM0) + j.D2
}

// Scales holds one instant expressed in every supported time scale.
type Scales struct {
	UTC JD `json:"utc"`
	TAI JD `json:"tai"`
	TT  JD `json:"tt"`
	TCG JD `json:"tcg"`
	TDB JD `json:"tdb"`
	TCB JD `json:"tcb"`
	UT1 JD `json:"ut1"`

	// Offsets in seconds.
	DeltaAT float64 `json:"delta_at"` // TAI-UTC
	DUT1    float64 `json:"dut1"`     // UT1-UTC
	DeltaT  float64 `json:"delta_t"`  // TT-UT1
	TDBmTT  float64 `json:"tdb_tt"`

	// Warning is set when the date lies outside the leap second table's
	// reliable range. The values are still usable.
	Warning error `json:"-"`
}

// julianDate splits t (taken as UTC) into a UTC quasi-JD pair.
func julianDate(t time.Time) (JD, error) {
	t = t.UTC()
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	d1, d2, err := ts.Dtf2d("UTC", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), sec)
	if err != nil && !ts.IsWarning(err) {
		return JD{}, err
	}
	return JD{d1, d2}, err
}

// TimeOf converts a UTC two-part JD back to a time.Time. A leap second
// collapses onto the following second.
func TimeOf(utc JD) (time.Time, error) {
	dt, err := ts.D2dtf("UTC", 6, utc.D1, utc.D2)
	if err != nil && !ts.IsWarning(err) {
		return time.Time{}, err
	}
	h := dt.HMSF
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, h[0], h[1], h[2], h[3]*1000, time.UTC), nil
}

// TDBMinusTT is a low-order model of TDB-TT in seconds, good to about
// 30 microseconds between 1980 and 2050.
func TDBMinusTT(tt JD) float64 {
	g := degToRad(357.53 + 0.98560028*((tt.D1-consts.DJ00)+tt.D2))
	return 0.001657*math.Sin(g) + 0.000014*math.Sin(2*g)
}

// TimeScales expresses the UTC instant t in UTC, TAI, TT, TCG, TDB, TCB
// and UT1. dut1 is UT1-UTC in seconds.
func TimeScales(t time.Time, dut1 float64) (Scales, error) {
	utc, warn := julianDate(t)
	if warn != nil && !ts.IsWarning(warn) {
		return Scales{}, fmt.Errorf("utc: %w", warn)
	}

	tai1, tai2, err := ts.Utctai(utc.D1, utc.D2)
	if err != nil && !ts.IsWarning(err) {
		return Scales{}, fmt.Errorf("tai: %w", err)
	}
	ut11, ut12, err := ts.Utcut1(utc.D1, utc.D2, dut1)
	if err != nil && !ts.IsWarning(err) {
		return Scales{}, fmt.Errorf("ut1: %w", err)
	}

	tt1, tt2 := ts.Taitt(tai1, tai2)
	tt := JD{tt1, tt2}
	tcg1, tcg2 := ts.Tttcg(tt1, tt2)
	dtr := TDBMinusTT(tt)
	tdb1, tdb2 := ts.Tttdb(tt1, tt2, dtr)
	tcb1, tcb2 := ts.Tdbtcb(tdb1, tdb2)

	dat := ((tai1 - utc.D1) + (tai2 - utc.D2)) * consts.DAYSEC

	return Scales{
		UTC:     utc,
		TAI:     JD{tai1, tai2},
		TT:      tt,
		TCG:     JD{tcg1, tcg2},
		TDB:     JD{tdb1, tdb2},
		TCB:     JD{tcb1, tcb2},
		UT1:     JD{ut11, ut12},
		DeltaAT: math.Round(dat*1e6) / 1e6,
		DUT1:    dut1,
		DeltaT:  consts.TTMTAI + dat - dut1,
		TDBmTT:  dtr,
		Warning: warn,
	}, nil
}

// FormatScale renders one of the scales as an ISO-like calendar string
// with ndp decimal places of a second. Leap seconds show as :60 in UTC.
func (s Scales) FormatScale(name string, ndp int) string {
	var jd JD
	scale := name
	switch name {
	case "UTC":
		jd = s.UTC
	case "TAI":
		jd = s.TAI
	case "TT":
		jd = s.TT
	case "TCG":
		jd = s.TCG
	case "TDB":
		jd = s.TDB
	case "TCB":
		jd = s.TCB
	case "UT1":
		jd = s.UT1
	default:
		return "?"
	}
	if scale != "UTC" {
		scale = ""
	}
	dt, err := ts.D2dtf(scale, ndp, jd.D1, jd.D2)
	if err != nil && !ts.IsWarning(err) {
		return "?"
	}
	h := dt.HMSF
	if ndp <= 0 {
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", dt.Year, dt.Month, dt.Day, h[0], h[1], h[2])
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%0*d", dt.Year, dt.Month, dt.Day, h[0], h[1], h[2], ndp, h[3])
}

// ScaleNames lists the scales in display order.
var ScaleNames = []string{"UTC", "UT1", "TAI", "TT", "TDB", "TCG", "TCB"}

// SiderealTimes holds Earth rotation angles at an instant, in radians.
type SiderealTimes struct {
	ERA  float64 `json:"era"`
	GMST float64 `json:"gmst"`
	GAST float64 `json:"gast"`
	// EO is the equation of the origins, ERA-GAST.
	EO float64 `json:"eo"`
}

// Sidereal computes the Earth rotation angle and the IAU 2006 mean and
// apparent Greenwich sidereal times.
func Sidereal(s Scales) SiderealTimes {
	return SiderealTimes{
		ERA:  erst.Era00(s.UT1.D1, s.UT1.D2),
		GMST: erst.Gmst06(s.UT1.D1, s.UT1.D2, s.TT.D1, s.TT.D2),
		GAST: erst.Gst06a(s.UT1.D1, s.UT1.D2, s.TT.D1, s.TT.D2),
		EO:   pnp.Eo06a(s.TT.D1, s.TT.D2),
	}
}

// Local returns the local apparent sidereal time at east longitude
// lonDeg, in radians.
func (st SiderealTimes) Local(lonDeg float64) float64 {
	return normalizeRad(st.GAST + degToRad(lonDeg))
}

func normalizeRad(a float64) float64 {
	a = math.Mod(a, consts.D2PI)
	if a < 0 {
		a += consts.D2PI
	}
	return a
}
