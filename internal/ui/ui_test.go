package ui

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/ephem"
	"github.com/litescript/ls-sofa/internal/state"
)

var testTime = time.Date(2024, 7, 15, 4, 0, 0, 0, time.UTC)

// testView builds a small hand-made snapshot: three stars and the Sun
// below the horizon.
func testView(t *testing.T) state.View {
	t.Helper()
	sc, err := astro.TimeScales(testTime, 0.1)
	if err != nil {
		t.Fatalf("TimeScales() error = %v", err)
	}
	site := astro.KnownSites["goldstone"]
	st := astro.Sidereal(sc)

	star := func(name string, az, el, ha, mag float64, w *astro.VisibilityWindow) state.StarView {
		return state.StarView{
			Position: astro.Position{Name: name, AzDeg: az, ElDeg: el, ZdDeg: 90 - el, HADeg: ha, Mag: mag, SunSepDeg: 120},
			Tier:     astro.GetElevationTier(el),
			Window:   w,
		}
	}

	snap := &state.Snapshot{
		Time:     testTime,
		Site:     site,
		Weather:  astro.StandardWeather,
		Earth:    astro.EarthParams{DUT1: 0.1},
		Scales:   sc,
		Sidereal: st,
		LASTDeg:  st.Local(site.LonDeg) * 180 / 3.141592653589793,
		Twilight: "night",
		Stars: []state.StarView{
			star("Vega", 300, 60, 30, 0.03, &astro.VisibilityWindow{
				Valid: true, Rise: testTime.Add(-8 * time.Hour), Transit: testTime.Add(-2 * time.Hour),
				Set: testTime.Add(5 * time.Hour), MaxElevation: 86.6,
			}),
			star("Polaris", 0, 35, 100, 1.98, &astro.VisibilityWindow{Valid: true, AlwaysVisible: true, MaxElevation: 36}),
			star("Sirius", 120, -40, -100, -1.46, &astro.VisibilityWindow{Valid: true, NeverVisible: false}),
		},
		Bodies: []state.BodyView{
			{
				BodyPosition: ephem.BodyPosition{Body: ephem.Sun, Time: testTime, RADeg: 113, DecDeg: 21.5, DistAU: 1.0164, LightTime: 507, Valid: true},
				Observed:     astro.Position{Name: "Sun", AzDeg: 10, ElDeg: -30},
			},
			{
				BodyPosition: ephem.BodyPosition{Body: ephem.Moon, Time: testTime, RADeg: 200, DecDeg: -10, DistAU: 0.00257, LightTime: 1.28, Valid: true},
				Observed:     astro.Position{Name: "Moon", AzDeg: 250, ElDeg: 20},
			},
			{
				BodyPosition: ephem.BodyPosition{Body: ephem.Jupiter, Time: testTime, RADeg: 75, DecDeg: 22, DistAU: 5.44, LightTime: 2714, Valid: true},
				Observed:     astro.Position{Name: "Jupiter", AzDeg: 150, ElDeg: 40},
			},
		},
	}
	return state.View{Snapshot: snap, LastUpdate: testTime, ComputeDuration: 3 * time.Millisecond}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(nil, astro.DefaultStarCatalog())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	next, _ = next.Update(DataUpdateMsg{View: testView(t)})
	return next.(Model)
}

func TestModelTabCycle(t *testing.T) {
	m := newTestModel(t)

	want := []ViewMode{ViewStars, ViewTarget, ViewSky, ViewDashboard}
	for _, w := range want {
		next, _ := m.Update(key("tab"))
		m = next.(Model)
		if m.viewMode != w {
			t.Fatalf("viewMode = %v, want %v", m.viewMode, w)
		}
	}

	next, _ := m.Update(key("4"))
	if next.(Model).viewMode != ViewSky {
		t.Errorf("key 4 viewMode = %v, want ViewSky", next.(Model).viewMode)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestModelViewsRender(t *testing.T) {
	m := newTestModel(t)

	checks := map[string]string{
		"1": "Time Scales",
		"2": "Watch List",
		"3": "PASSES",
		"4": "Sky View",
	}
	for k, want := range checks {
		next, _ := m.Update(key(k))
		out := plain(next.(Model).View())
		if !strings.Contains(out, want) {
			t.Errorf("view %s missing %q", k, want)
		}
		if !strings.Contains(out, "Goldstone") {
			t.Errorf("view %s missing the site name", k)
		}
	}
}

func TestModelNotReady(t *testing.T) {
	m := New(nil, astro.DefaultStarCatalog())
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q before the first resize", got)
	}
}

func TestModelOpenTargetStartsPlan(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(OpenTargetMsg{Target: "Polaris"})
	m = next.(Model)
	if m.viewMode != ViewTarget || m.target.Selected() != "Polaris" {
		t.Fatalf("after OpenTargetMsg: view %v target %q", m.viewMode, m.target.Selected())
	}
	if e := m.plans["Polaris"]; e == nil || !e.pending {
		t.Fatal("no pending plan for Polaris")
	}
	if cmd == nil {
		t.Fatal("OpenTargetMsg returned no command")
	}

	// A second request while pending starts nothing.
	if m.maybeRefreshPlan() != nil {
		t.Error("maybeRefreshPlan() started a second computation")
	}
}

func TestPlanCmd(t *testing.T) {
	polaris, _ := astro.DefaultStarCatalog().Find("Polaris")
	home := astro.KnownSites["paranal"]

	msg := planCmd(polaris, home, astro.StandardWeather, astro.EarthParams{}, testTime)().(planUpdatedMsg)
	if msg.target != "Polaris" || !msg.at.Equal(testTime) {
		t.Fatalf("planCmd() = %q at %v", msg.target, msg.at)
	}
	if msg.plan.Err != nil {
		t.Fatalf("planCmd() error = %v", msg.plan.Err)
	}
	if msg.plan.Sites[0] != "Paranal" || len(msg.plan.Sites) != 4 {
		t.Errorf("Sites = %v", msg.plan.Sites)
	}
	// Polaris never rises at Paranal or Canberra and never sets at Goldstone.
	if n := len(msg.plan.Plan.PassesForSite("Paranal")); n != 0 {
		t.Errorf("Paranal passes = %d, want 0", n)
	}
	if n := len(msg.plan.Plan.PassesForSite("Goldstone")); n != 1 {
		t.Errorf("Goldstone passes = %d, want 1", n)
	}
	if msg.plan.Trace == nil || msg.plan.Trace.Site != "Paranal" {
		t.Errorf("Trace = %+v", msg.plan.Trace)
	}

	bad := planCmd(polaris, astro.Site{Name: "bad", LatDeg: 95}, astro.StandardWeather, astro.EarthParams{}, testTime)().(planUpdatedMsg)
	if bad.plan.Err == nil {
		t.Error("planCmd(bad site) expected an error")
	}
}

func TestModelPlanUpdateAndCache(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(OpenTargetMsg{Target: "Vega"})
	m = next.(Model)

	plan := TargetPlan{Sites: []string{"Goldstone"}, Plan: &astro.PassPlan{Target: "Vega"}}
	next, _ = m.Update(planUpdatedMsg{target: "Vega", at: testTime, plan: plan})
	m = next.(Model)
	if m.target.plan.Plan == nil {
		t.Fatal("plan not attached to the target view")
	}

	// Fresh plans are reused.
	if m.maybeRefreshPlan() != nil {
		t.Error("fresh plan recomputed")
	}

	// Stale plans are recomputed.
	v := testView(t)
	v.Snapshot.Time = testTime.Add(PlanRefresh + time.Minute)
	next, cmd := m.Update(DataUpdateMsg{View: v})
	if cmd == nil || !next.(Model).plans["Vega"].pending {
		t.Error("stale plan not recomputed")
	}
}

func TestModelErrorMsg(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(ErrorMsg{Error: errors.New("boom")})
	out := plain(next.(Model).View())
	if !strings.Contains(out, "ERROR: boom") {
		t.Error("footer does not show the error")
	}
}

func TestModelTickWithManager(t *testing.T) {
	mgr := state.NewManager(state.DefaultConfig())
	v := testView(t)
	mgr.Update(v.Snapshot, time.Millisecond, nil)
	mgr.Update(v.Snapshot, time.Millisecond, nil)

	m := New(mgr, astro.DefaultStarCatalog())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	next, _ = next.Update(TickMsg(testTime))
	m = next.(Model)

	if m.view.Snapshot != v.Snapshot {
		t.Fatal("tick did not pull the manager's snapshot")
	}
	if got := len(m.stars.history["Vega"]); got != 2 {
		t.Errorf("Vega history = %d points, want 2", got)
	}
}

func TestPlanSites(t *testing.T) {
	sites := PlanSites(astro.KnownSites["madrid"])
	if len(sites) != 3 || sites[0].Name != "Madrid" {
		t.Errorf("PlanSites(madrid) = %v", sites)
	}
	sites = PlanSites(astro.KnownSites["lapalma"])
	if len(sites) != 4 {
		t.Errorf("PlanSites(lapalma) has %d sites, want 4", len(sites))
	}
}

func TestGradientColor(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for _, c := range []struct{ col, row int }{{0, 0}, {30, 2}, {59, 5}} {
		if got := gradientColor(c.col, c.row, 60, 6); !hex.MatchString(got) {
			t.Errorf("gradientColor(%d,%d) = %q", c.col, c.row, got)
		}
	}
	if got := gradientColor(0, 0, 60, 6); got != "#3B82F6" {
		t.Errorf("gradientColor(0,0) = %q, want #3B82F6", got)
	}
}

func TestShimmer(t *testing.T) {
	if shimmer("", 3) != "" {
		t.Error("shimmer(\"\") not empty")
	}
	if got := plain(shimmer("loading", 5)); got != "loading" {
		t.Errorf("shimmer() text = %q", got)
	}
}
