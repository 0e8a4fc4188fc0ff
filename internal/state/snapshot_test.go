package state

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/config"
	"github.com/litescript/ls-sofa/internal/ephem"
)

func testAppConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Stars = []string{"Vega", "Polaris", "Sirius"}
	cfg.Earth = astro.EarthParams{DUT1: 0.1}
	return cfg
}

func newTestEngine(t *testing.T, provider ephem.Provider, at time.Time) *Engine {
	t.Helper()
	e, err := NewEngine(testAppConfig(), astro.DefaultStarCatalog(), provider)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	e.now = func() time.Time { return at }
	return e
}

// failingProvider knows the Sun only by error.
type failingProvider struct{ err error }

func (p failingProvider) Name() string                 { return "failing" }
func (p failingProvider) Available(b ephem.Body) bool { return b == ephem.Sun }
func (p failingProvider) Position(context.Context, ephem.Body, time.Time) (ephem.BodyPosition, error) {
	return ephem.BodyPosition{}, p.err
}
func (p failingProvider) Path(context.Context, ephem.Body, time.Time, time.Time, time.Duration) (ephem.Path, error) {
	return ephem.Path{}, p.err
}

func TestEngineCompute(t *testing.T) {
	e := newTestEngine(t, ephem.NewSofaProvider(ephem.ModeApparent), base)

	snap, err := e.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !snap.Time.Equal(base) || snap.Site.Name != "Goldstone" {
		t.Errorf("snapshot time/site = %v %q", snap.Time, snap.Site.Name)
	}
	if len(snap.Stars) != 3 {
		t.Fatalf("got %d stars, want 3", len(snap.Stars))
	}
	if len(snap.Bodies) != len(ephem.Bodies) {
		t.Fatalf("got %d bodies, want %d", len(snap.Bodies), len(ephem.Bodies))
	}
	if snap.Twilight == "" {
		t.Error("Twilight should be set when the Sun is placed")
	}
	if snap.LASTDeg < 0 || snap.LASTDeg >= 360 {
		t.Errorf("LASTDeg = %v out of range", snap.LASTDeg)
	}
	if len(snap.Warnings) != 0 {
		t.Errorf("Warnings = %q, want none", snap.Warnings)
	}

	obs, err := astro.NewObserver(astro.KnownSites["goldstone"], astro.StandardWeather, astro.EarthParams{DUT1: 0.1}, base)
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	vega, _ := astro.DefaultStarCatalog().Find("Vega")
	want := obs.Observe(vega)
	got, ok := snap.Star("Vega")
	if !ok {
		t.Fatal("Star(Vega) not found")
	}
	if math.Abs(got.AzDeg-want.AzDeg) > 1e-9 || math.Abs(got.ElDeg-want.ElDeg) > 1e-9 {
		t.Errorf("Vega = %v,%v want %v,%v", got.AzDeg, got.ElDeg, want.AzDeg, want.ElDeg)
	}
	if got.Tier != astro.GetElevationTier(got.ElDeg) {
		t.Errorf("Tier = %v for el %v", got.Tier, got.ElDeg)
	}

	polaris, _ := snap.Star("Polaris")
	if polaris.Window == nil || !polaris.Window.AlwaysVisible {
		t.Errorf("Polaris window = %+v, want circumpolar", polaris.Window)
	}
	if vw, _ := snap.Star("Vega"); vw.Window == nil || !vw.Window.Valid {
		t.Error("Vega should have a rise/set window")
	}

	sun, ok := snap.Body(ephem.Sun)
	if !ok || sun.Observed.Name != "Sun" {
		t.Fatalf("Body(Sun) = %+v, %v", sun, ok)
	}
	if math.Abs(sun.DistAU-1.016) > 0.01 {
		t.Errorf("Sun distance = %v au, want ~1.016 in July", sun.DistAU)
	}
	if snap.Twilight != astro.Twilight(sun.Observed.ElDeg).String() {
		t.Errorf("Twilight = %q for Sun elevation %v", snap.Twilight, sun.Observed.ElDeg)
	}
	if _, ok := snap.Star("Canopus"); ok {
		t.Error("Star(Canopus) should not be in the watch list")
	}
}

func TestEngineAdvanceAndRebuild(t *testing.T) {
	e := newTestEngine(t, nil, base)
	if _, err := e.Compute(context.Background()); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	later := base.Add(20 * time.Minute)
	e.now = func() time.Time { return later }
	snap, err := e.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !e.built.Equal(base) {
		t.Errorf("observer rebuilt after 20 minutes (built %v)", e.built)
	}
	if len(snap.Bodies) != 0 || snap.Twilight != "" {
		t.Error("a nil provider should yield no bodies")
	}

	obs, err := astro.NewObserver(astro.KnownSites["goldstone"], astro.StandardWeather, astro.EarthParams{DUT1: 0.1}, later)
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	sirius, _ := astro.DefaultStarCatalog().Find("Sirius")
	want := obs.Observe(sirius)
	got, _ := snap.Star("Sirius")
	if math.Abs(got.ElDeg-want.ElDeg) > 0.001 {
		t.Errorf("advanced Sirius el = %v, want %v", got.ElDeg, want.ElDeg)
	}

	muchLater := base.Add(2 * time.Hour)
	e.now = func() time.Time { return muchLater }
	if _, err := e.Compute(context.Background()); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if !e.built.Equal(muchLater) {
		t.Errorf("observer not rebuilt after 2h (built %v)", e.built)
	}
}

func TestEngineProviderErrors(t *testing.T) {
	boom := errors.New("no ephemeris")
	e := newTestEngine(t, failingProvider{err: boom}, base)

	snap, err := e.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(snap.Bodies) != 0 {
		t.Errorf("got %d bodies, want 0", len(snap.Bodies))
	}
	if len(snap.Warnings) != 1 || snap.Warnings[0] != "Sun: no ephemeris" {
		t.Errorf("Warnings = %q", snap.Warnings)
	}
}

func TestEngineCancelled(t *testing.T) {
	e := newTestEngine(t, nil, base)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Compute(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Compute() error = %v, want context.Canceled", err)
	}
}

func TestEngineReconfigure(t *testing.T) {
	e := newTestEngine(t, nil, base)
	if _, err := e.Compute(context.Background()); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	cfg := testAppConfig()
	cfg.SiteName = "canberra"
	cfg.Stars = []string{"Acrux"}
	if err := e.Reconfigure(cfg); err != nil {
		t.Fatalf("Reconfigure() error = %v", err)
	}
	if e.Site().Name != "Canberra" {
		t.Errorf("Site() = %q, want Canberra", e.Site().Name)
	}

	snap, err := e.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(snap.Stars) != 1 || snap.Stars[0].Name != "Acrux" {
		t.Errorf("stars = %+v, want Acrux only", snap.Stars)
	}
	if acrux := snap.Stars[0]; acrux.Window == nil || !acrux.Window.AlwaysVisible {
		t.Errorf("Acrux from Canberra should be circumpolar: %+v", acrux.Window)
	}

	cfg.Stars = []string{"Nemesis"}
	if err := e.Reconfigure(cfg); err == nil {
		t.Error("Reconfigure() with an unknown star expected an error")
	}
}

func TestNewEngineErrors(t *testing.T) {
	cfg := testAppConfig()
	cfg.SiteName = "atlantis"
	if _, err := NewEngine(cfg, astro.DefaultStarCatalog(), nil); !errors.Is(err, config.ErrUnknownSite) {
		t.Errorf("NewEngine() error = %v, want ErrUnknownSite", err)
	}
}
