package ephem

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/eph"
	"github.com/litescript/ls-sofa/pkg/sofa/ts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"apparent", ModeApparent},
		{"geometric", ModeGeometric},
		{"", ModeApparent},        // default
		{"invalid", ModeApparent}, // default for unknown
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseMode(tc.input)
			if got != tc.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeApparent, "apparent"},
		{ModeGeometric, "geometric"},
		{Mode(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.mode.String()
			if got != tc.expected {
				t.Errorf("Mode(%d).String() = %q, want %q", tc.mode, got, tc.expected)
			}
		})
	}
}

func position(t *testing.T, p *SofaProvider, body Body, when time.Time) BodyPosition {
	t.Helper()
	pos, err := p.Position(context.Background(), body, when)
	if err != nil {
		t.Fatalf("Position(%v, %v) error = %v", body, when, err)
	}
	if !pos.Valid {
		t.Fatalf("Position(%v, %v) is not valid", body, when)
	}
	return pos
}

func TestSunDistance(t *testing.T) {
	p := NewSofaProvider(ModeApparent)

	tests := []struct {
		name string
		when time.Time
		want float64
	}{
		{"perihelion 2024", time.Date(2024, 1, 3, 0, 39, 0, 0, time.UTC), 0.983307},
		{"aphelion 2024", time.Date(2024, 7, 5, 5, 6, 0, 0, time.UTC), 1.016725},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := position(t, p, Sun, tt.when)
			if math.Abs(pos.DistAU-tt.want) > 5e-5 {
				t.Errorf("DistAU = %.6f, want %.6f", pos.DistAU, tt.want)
			}
			if math.Abs(pos.LightTime-pos.DistAU*consts.AULT) > 1e-9 {
				t.Errorf("LightTime = %v inconsistent with distance", pos.LightTime)
			}
		})
	}
}

func TestSunAtSolstice(t *testing.T) {
	p := NewSofaProvider(ModeApparent)
	pos := position(t, p, Sun, time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC))

	// Near RA 90 the J2000 frame and the frame of date agree in
	// declination.
	if math.Abs(pos.DecDeg-23.44) > 0.02 {
		t.Errorf("solstice DecDeg = %.4f, want 23.44", pos.DecDeg)
	}
	if math.Abs(pos.RADeg-90) > 1 {
		t.Errorf("solstice RADeg = %.4f, want ~90", pos.RADeg)
	}
	if math.Abs(vm.Pm(pos.Dir)-1) > 1e-12 {
		t.Errorf("|Dir| = %v, want 1", vm.Pm(pos.Dir))
	}
}

func TestApparentVersusGeometric(t *testing.T) {
	when := time.Date(2025, 2, 10, 6, 0, 0, 0, time.UTC)
	app := NewSofaProvider(ModeApparent)
	geo := NewSofaProvider(ModeGeometric)

	sc, err := astro.TimeScales(when, 0)
	if err != nil {
		t.Fatalf("TimeScales() error = %v", err)
	}
	_, pvb, err := eph.Epv00(sc.TDB.D1, sc.TDB.D2)
	if err != nil {
		t.Fatalf("Epv00() error = %v", err)
	}
	v := vm.Sxp(consts.AULT/consts.DAYSEC, pvb[1])

	tests := []struct {
		body Body
		tol  float64 // arcsec
	}{
		{Sun, 0.05},
		// The Moon also moves about 0.7 arcsec during its light time.
		{Moon, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.body.String(), func(t *testing.T) {
			a := position(t, app, tt.body, when)
			g := position(t, geo, tt.body, when)

			// First order annual aberration: |v|/c sin(theta).
			want := vm.Pm(v) * math.Sin(vm.Sepp(g.Dir, v)) * consts.DR2AS
			sep := vm.Sepp(a.Dir, g.Dir) * consts.DR2AS
			if math.Abs(sep-want) > tt.tol {
				t.Errorf("apparent-geometric = %.3f arcsec, want %.3f (±%v)", sep, want, tt.tol)
			}
		})
	}
}

func TestJupiterOpposition(t *testing.T) {
	when := time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC)
	p := NewSofaProvider(ModeApparent)

	sun := position(t, p, Sun, when)
	jup := position(t, p, Jupiter, when)

	if elong := vm.Sepp(sun.Dir, jup.Dir) * consts.DR2D; elong < 178 {
		t.Errorf("Jupiter elongation = %.2f°, want > 178°", elong)
	}
	if jup.DistAU < 4.05 || jup.DistAU > 4.13 {
		t.Errorf("Jupiter distance = %.3f au, want ~4.09", jup.DistAU)
	}
	if math.Abs(jup.LightTime-jup.DistAU*consts.AULT) > 1e-9 {
		t.Errorf("LightTime = %v inconsistent with distance", jup.LightTime)
	}
}

func TestInnerPlanetElongation(t *testing.T) {
	p := NewSofaProvider(ModeGeometric)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	limits := map[Body]float64{Mercury: 28.5, Venus: 47.5}
	for body, limit := range limits {
		t.Run(body.String(), func(t *testing.T) {
			var widest float64
			for d := 0; d < 800; d += 5 {
				when := start.AddDate(0, 0, d)
				sun := position(t, p, Sun, when)
				pl := position(t, p, body, when)
				widest = math.Max(widest, vm.Sepp(sun.Dir, pl.Dir)*consts.DR2D)
			}
			if widest > limit || widest < limit-3 {
				t.Errorf("greatest elongation = %.2f°, want just under %v°", widest, limit)
			}
		})
	}
}

func TestMoonDistanceRange(t *testing.T) {
	p := NewSofaProvider(ModeApparent)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for d := 0; d < 30; d++ {
		pos := position(t, p, Moon, start.AddDate(0, 0, d))
		km := pos.DistAU * consts.DAU / 1000
		if km < 356000 || km > 407000 {
			t.Errorf("day %d: Moon distance = %.0f km out of range", d, km)
		}
	}
}

func TestEclipseConjunction(t *testing.T) {
	// Total solar eclipse of 2024 April 8, greatest eclipse.
	when := time.Date(2024, 4, 8, 18, 17, 0, 0, time.UTC)
	p := NewSofaProvider(ModeApparent)

	sun := position(t, p, Sun, when)
	moon := position(t, p, Moon, when)

	sep := vm.Sepp(sun.Dir, moon.Dir) * consts.DR2D
	if sep > 1.0 {
		t.Errorf("geocentric Sun-Moon separation = %.3f°, want < 1°", sep)
	}
}

func TestPositionErrors(t *testing.T) {
	p := NewSofaProvider(ModeApparent)

	if _, err := p.Position(context.Background(), Body(42), time.Now()); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("Position(unknown) error = %v, want ErrUnknownBody", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Position(ctx, Sun, time.Now()); !errors.Is(err, context.Canceled) {
		t.Errorf("Position(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestPositionDateRangeWarning(t *testing.T) {
	p := NewSofaProvider(ModeApparent)
	pos := position(t, p, Sun, time.Date(2150, 1, 1, 0, 0, 0, 0, time.UTC))
	if !errors.Is(pos.Warning, eph.ErrDateRange) {
		t.Errorf("Warning = %v, want eph.ErrDateRange", pos.Warning)
	}
	// Beyond the leap second table as well.
	if !errors.Is(pos.Warning, ts.ErrDubiousYear) {
		t.Errorf("Warning = %v, want ts.ErrDubiousYear too", pos.Warning)
	}
}

func TestPath(t *testing.T) {
	p := NewSofaProvider(ModeApparent)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	start := now
	end := now.Add(2 * time.Hour)
	path, err := p.Path(context.Background(), Moon, start, end, 30*time.Minute)
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if len(path.Points) != 5 {
		t.Fatalf("Path() has %d points, want 5", len(path.Points))
	}
	if !path.Start.Equal(start) || !path.End.Equal(end) || path.Body != Moon {
		t.Errorf("Path() = %v %v..%v", path.Body, path.Start, path.End)
	}

	// The Moon moves about half a degree an hour against the stars.
	move := vm.Sepp(path.Points[0].Dir, path.Points[4].Dir) * consts.DR2D
	if move < 0.7 || move > 1.5 {
		t.Errorf("Moon moved %.3f° in 2h, want 0.7-1.5", move)
	}

	// Same request within the TTL comes from cache.
	again, err := p.Path(context.Background(), Moon, start, end, 30*time.Minute)
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if &again.Points[0] != &path.Points[0] {
		t.Error("second Path() call was not served from cache")
	}

	p.InvalidateCache(Moon)
	fresh, err := p.Path(context.Background(), Moon, start, end, 30*time.Minute)
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if &fresh.Points[0] == &path.Points[0] {
		t.Error("Path() after InvalidateCache returned the cached slice")
	}
}

func TestPathErrors(t *testing.T) {
	p := NewSofaProvider(ModeApparent)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	if _, err := p.Path(context.Background(), Sun, now, now.Add(time.Hour), 0); err == nil {
		t.Error("Path(step=0) expected an error")
	}
	if _, err := p.Path(context.Background(), Sun, now, now.Add(-time.Hour), time.Minute); err == nil {
		t.Error("Path(end<start) expected an error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Path(ctx, Sun, now, now.Add(time.Hour), time.Minute); !errors.Is(err, context.Canceled) {
		t.Errorf("Path(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestBodyPositionJSON(t *testing.T) {
	data, err := json.Marshal(BodyPosition{Body: Moon, Valid: true})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m["body"] != "Moon" {
		t.Errorf("body = %v, want Moon", m["body"])
	}
	if _, ok := m["Dir"]; ok {
		t.Error("Dir should not be serialized")
	}
}
