package astro

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-sofa/pkg/sofa/ts"
)

// refTime is the usual SOFA worked example instant.
var refTime = time.Date(2006, 1, 15, 21, 24, 37, 500_000_000, time.UTC)

const refDUT1 = 0.3341

func seconds(a, b JD) float64 {
	return ((a.D1 - b.D1) + (a.D2 - b.D2)) * 86400
}

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
	}{
		{"J2000 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"Unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{"2024-01-01 00:00 UTC", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2460310.5},
		{"non-UTC zone", time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600)), 2460310.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := julianDate(tt.time)
			if err != nil {
				t.Fatalf("julianDate() error = %v", err)
			}
			if math.Abs(got.Float()-tt.expected) > 1e-9 {
				t.Errorf("julianDate() = %v, want %v", got.Float(), tt.expected)
			}
		})
	}
}

func TestTimeScales(t *testing.T) {
	sc, err := TimeScales(refTime, refDUT1)
	if err != nil {
		t.Fatalf("TimeScales() error = %v", err)
	}

	if sc.UTC.D1 != 2453750.5 || math.Abs(sc.UTC.D2-0.8921006944444444) > 1e-12 {
		t.Errorf("UTC = %+v", sc.UTC)
	}

	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"TAI-UTC", seconds(sc.TAI, sc.UTC), 33, 1e-6},
		{"TT-TAI", seconds(sc.TT, sc.TAI), 32.184, 1e-6},
		{"UT1-UTC", seconds(sc.UT1, sc.UTC), refDUT1, 1e-6},
		{"TCG-TT", seconds(sc.TCG, sc.TT), 0.63869, 1e-4},
		{"TDB-TT", seconds(sc.TDB, sc.TT), sc.TDBmTT, 1e-6},
		{"TCB-TDB", seconds(sc.TCB, sc.TDB), 14.2096, 1e-3},
		{"DeltaAT", sc.DeltaAT, 33, 0},
		{"DeltaT", sc.DeltaT, 32.184 + 33 - refDUT1, 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.tol {
				t.Errorf("%s = %.9f s, want %.9f", tt.name, tt.got, tt.want)
			}
		})
	}
	if sc.Warning != nil {
		t.Errorf("Warning = %v, want nil", sc.Warning)
	}
}

func TestTimeScalesLeapSecondTable(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{1999, 32},
		{2009, 34},
		{2016, 36},
		{2024, 37},
	}
	for _, tt := range tests {
		sc, err := TimeScales(time.Date(tt.year, 6, 1, 0, 0, 0, 0, time.UTC), 0)
		if err != nil {
			t.Fatalf("TimeScales(%d) error = %v", tt.year, err)
		}
		if sc.DeltaAT != tt.want {
			t.Errorf("TimeScales(%d).DeltaAT = %v, want %v", tt.year, sc.DeltaAT, tt.want)
		}
	}
}

func TestTimeScalesDubiousYear(t *testing.T) {
	sc, err := TimeScales(time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	if err != nil {
		t.Fatalf("TimeScales() error = %v", err)
	}
	if !errors.Is(sc.Warning, ts.ErrDubiousYear) {
		t.Errorf("Warning = %v, want ErrDubiousYear", sc.Warning)
	}
}

func TestTDBMinusTT(t *testing.T) {
	// Full SOFA series value at this TT, less the topocentric terms.
	got := TDBMinusTT(JD{2448939.5, 0.123})
	if math.Abs(got-(-0.00128037)) > 3e-5 {
		t.Errorf("TDBMinusTT() = %v, want about -0.00128", got)
	}
	for d := 0.0; d < 366; d += 7 {
		if v := TDBMinusTT(JD{2460000.5, d}); math.Abs(v) > 0.00168 {
			t.Errorf("TDBMinusTT(+%vd) = %v out of range", d, v)
		}
	}
}

func TestFormatScale(t *testing.T) {
	sc, err := TimeScales(refTime, refDUT1)
	if err != nil {
		t.Fatalf("TimeScales() error = %v", err)
	}

	tests := []struct {
		scale string
		ndp   int
		want  string
	}{
		{"UTC", 1, "2006-01-15 21:24:37.5"},
		{"TAI", 1, "2006-01-15 21:25:10.5"},
		{"TT", 3, "2006-01-15 21:25:42.684"},
		{"UT1", 4, "2006-01-15 21:24:37.8341"},
		{"UTC", 2, "2006-01-15 21:24:37.50"},
		{"XYZ", 0, "?"},
	}
	for _, tt := range tests {
		t.Run(tt.scale, func(t *testing.T) {
			if got := sc.FormatScale(tt.scale, tt.ndp); got != tt.want {
				t.Errorf("FormatScale(%s, %d) = %q, want %q", tt.scale, tt.ndp, got, tt.want)
			}
		})
	}
}

func TestTimeOfRoundTrip(t *testing.T) {
	jd, err := julianDate(refTime)
	if err != nil {
		t.Fatalf("julianDate() error = %v", err)
	}
	got, err := TimeOf(jd)
	if err != nil {
		t.Fatalf("TimeOf() error = %v", err)
	}
	if d := got.Sub(refTime); d > time.Microsecond || d < -time.Microsecond {
		t.Errorf("TimeOf(julianDate(t)) = %v, want %v", got, refTime)
	}
}

func TestSidereal(t *testing.T) {
	sc, err := TimeScales(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 0)
	if err != nil {
		t.Fatalf("TimeScales() error = %v", err)
	}
	st := Sidereal(sc)

	// ERA at UT1 = J2000.0 is 2pi * 0.7790572732640.
	if got := radToDeg(st.ERA); math.Abs(got-280.46061837504) > 1e-8 {
		t.Errorf("ERA = %.11f°, want 280.46061837504", got)
	}
	if got := radToDeg(st.GMST); math.Abs(got-280.46) > 0.01 {
		t.Errorf("GMST = %v°, want ~280.46", got)
	}
	// Apparent and mean differ by the equation of the equinoxes, < 1.2s.
	if d := math.Abs(st.GAST - st.GMST); d > degToRad(1.2*15/3600) {
		t.Errorf("|GAST-GMST| = %v rad, too large", d)
	}
	// EO = ERA - GAST.
	if d := math.Abs(normalizeRad(st.ERA-st.EO) - normalizeRad(st.GAST)); d > 1e-9 {
		t.Errorf("ERA-EO differs from GAST by %v rad", d)
	}
}

func TestSiderealLocal(t *testing.T) {
	st := SiderealTimes{GAST: degToRad(350)}

	tests := []struct {
		lon  float64
		want float64
	}{
		{0, 350},
		{20, 10},
		{-100, 250},
	}
	for _, tt := range tests {
		if got := radToDeg(st.Local(tt.lon)); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Local(%v) = %v, want %v", tt.lon, got, tt.want)
		}
	}
}
