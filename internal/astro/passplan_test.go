package astro

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestPassStatusString(t *testing.T) {
	tests := []struct {
		status PassStatus
		want   string
	}{
		{PassPast, "PAST"},
		{PassNow, "NOW"},
		{PassNext, "NEXT"},
		{PassFuture, "FUTURE"},
		{PassStatus(99), "?"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("PassStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestPassStatusJSON(t *testing.T) {
	data, err := json.Marshal(Pass{Site: "Goldstone", Status: PassNext})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"status":"NEXT"`) {
		t.Errorf("Marshal() = %s, want status NEXT", data)
	}
}

func TestComputePassPlan_SinglePass(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	// Up from 0h to 12h of a 24h cycle; 20 deg peak at 6h.
	samples := sineSamples(now, 289, PassSampleInterval, 24*time.Hour, 20, 0)

	plan := ComputePassPlan("TEST", []SiteSeries{{Site: "Goldstone", Samples: samples}}, now)

	if plan == nil {
		t.Fatal("expected non-nil plan")
	}
	if plan.Target != "TEST" {
		t.Errorf("Target = %q, want %q", plan.Target, "TEST")
	}
	if len(plan.Passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(plan.Passes))
	}

	p := plan.Passes[0]
	// 20 sin x = 5 at x = 14.48 deg, about 58 min.
	if d := p.Start.Sub(now.Add(58 * time.Minute)); d < -2*time.Minute || d > 2*time.Minute {
		t.Errorf("Start = %v, want ~12:58", p.Start)
	}
	if d := p.End.Sub(now.Add(11*time.Hour + 2*time.Minute)); d < -2*time.Minute || d > 2*time.Minute {
		t.Errorf("End = %v, want ~23:02", p.End)
	}
	if !p.Peak.Equal(now.Add(6 * time.Hour)) {
		t.Errorf("Peak = %v, want 18:00", p.Peak)
	}
	if p.MaxElDeg < 19.99 {
		t.Errorf("MaxElDeg = %v, want 20", p.MaxElDeg)
	}
	// No sun series means the separation is unknown, reported as 180.
	if p.SunMinSep != 180 {
		t.Errorf("SunMinSep = %v, want 180", p.SunMinSep)
	}
	if !plan.WindowStart.Equal(now) || !plan.WindowEnd.Equal(now.Add(24*time.Hour)) {
		t.Errorf("window = %v..%v", plan.WindowStart, plan.WindowEnd)
	}
}

func TestComputePassPlan_SortedAcrossSites(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	series := []SiteSeries{
		{Site: "Madrid", Samples: sineSamples(now.Add(-8*time.Hour), 385, PassSampleInterval, 24*time.Hour, 30, 0)},
		{Site: "Goldstone", Samples: sineSamples(now, 289, PassSampleInterval, 24*time.Hour, 30, 0)},
		{Site: "Canberra", Samples: sineSamples(now.Add(-4*time.Hour), 337, PassSampleInterval, 24*time.Hour, 30, 0)},
	}

	plan := ComputePassPlan("TEST", series, now)
	if len(plan.Passes) < 3 {
		t.Fatalf("got %d passes, want at least 3", len(plan.Passes))
	}
	for i := 1; i < len(plan.Passes); i++ {
		if plan.Passes[i].Start.Before(plan.Passes[i-1].Start) {
			t.Errorf("passes not sorted: pass %d starts before pass %d", i, i-1)
		}
	}
	if !plan.WindowStart.Equal(now.Add(-8 * time.Hour)) {
		t.Errorf("WindowStart = %v, want earliest sample", plan.WindowStart)
	}
}

func TestComputePassPlan_InsufficientSamples(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	// Only 2 samples - not enough
	samples := []ElevationSample{
		{Time: now, ElDeg: 30},
		{Time: now.Add(time.Hour), ElDeg: 40},
	}

	plan := ComputePassPlan("TEST", []SiteSeries{{Site: "Goldstone", Samples: samples}}, now)

	if plan == nil {
		t.Fatal("expected non-nil plan")
	}
	if len(plan.Passes) != 0 {
		t.Errorf("expected empty passes with insufficient samples, got %d", len(plan.Passes))
	}
}

func TestComputePassPlan_NoPasses(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	// Peaks at 4 degrees, under the pass threshold.
	samples := sineSamples(now, 289, PassSampleInterval, 24*time.Hour, 4, 0)

	plan := ComputePassPlan("TEST", []SiteSeries{{Site: "Canberra", Samples: samples}}, now)
	if len(plan.Passes) != 0 {
		t.Errorf("got %d passes, want 0", len(plan.Passes))
	}
}

func TestComputePassPlan_OpenEnded(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	// Always above threshold: one pass covering the whole window.
	samples := sineSamples(now, 49, PassSampleInterval, 24*time.Hour, 10, 30)

	plan := ComputePassPlan("TEST", []SiteSeries{{Site: "Madrid", Samples: samples}}, now.Add(time.Hour))
	if len(plan.Passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(plan.Passes))
	}
	p := plan.Passes[0]
	if !p.Start.Equal(now) || !p.End.Equal(samples[len(samples)-1].Time) {
		t.Errorf("pass = %v..%v, want the sample range", p.Start, p.End)
	}
	if p.Status != PassNow {
		t.Errorf("Status = %v, want NOW", p.Status)
	}
}

func TestComputePassPlan_SunSeparation(t *testing.T) {
	now := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	samples := sineSamples(now, 145, PassSampleInterval, 24*time.Hour, 40, 0)
	seps := make([]float64, len(samples))
	for i := range seps {
		seps[i] = 50 - float64(i)*0.1
	}

	plan := ComputePassPlan("TEST", []SiteSeries{{Site: "Goldstone", Samples: samples, SunSepDeg: seps}}, now)
	if len(plan.Passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(plan.Passes))
	}

	// Separation shrinks through the pass, so the minimum is at the set.
	p := plan.Passes[0]
	if p.SunMinSep < 0 || p.SunMinSep > 180 {
		t.Errorf("invalid SunMinSep: %v", p.SunMinSep)
	}
	if p.SunMinSep > 40 || p.SunMinSep < 35 {
		t.Errorf("SunMinSep = %v, want 35-40", p.SunMinSep)
	}
}

func TestComputePassPlan_MaxElevation(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	samples := sineSamples(now, 577, PassSampleInterval, 24*time.Hour, 60, 0)

	plan := ComputePassPlan("TEST", []SiteSeries{{Site: "Goldstone", Samples: samples}}, now)
	if len(plan.Passes) != 2 {
		t.Fatalf("got %d passes over 48h, want 2", len(plan.Passes))
	}

	for _, p := range plan.Passes {
		if p.MaxElDeg < MinPassElevation {
			t.Errorf("MaxElDeg=%v < MinPassElevation=%v", p.MaxElDeg, MinPassElevation)
		}
		if p.Peak.Before(p.Start) || p.Peak.After(p.End) {
			t.Errorf("peak time %v outside pass window [%v, %v]", p.Peak, p.Start, p.End)
		}
	}
}

func TestClassifyPasses(t *testing.T) {
	baseTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	passes := []Pass{
		{Start: baseTime.Add(-2 * time.Hour), End: baseTime.Add(-1 * time.Hour)},      // Past
		{Start: baseTime.Add(-30 * time.Minute), End: baseTime.Add(30 * time.Minute)}, // Now
		{Start: baseTime.Add(1 * time.Hour), End: baseTime.Add(2 * time.Hour)},        // Next
		{Start: baseTime.Add(3 * time.Hour), End: baseTime.Add(4 * time.Hour)},        // Future
	}

	classifyPasses(passes, baseTime)

	expected := []PassStatus{PassPast, PassNow, PassNext, PassFuture}
	for i, p := range passes {
		if p.Status != expected[i] {
			t.Errorf("pass %d: got status %v, want %v", i, p.Status, expected[i])
		}
	}
}

func TestClassifyPasses_NoNowPass(t *testing.T) {
	baseTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	passes := []Pass{
		{Start: baseTime.Add(-2 * time.Hour), End: baseTime.Add(-1 * time.Hour)}, // Past
		{Start: baseTime.Add(1 * time.Hour), End: baseTime.Add(2 * time.Hour)},   // Should be Next
		{Start: baseTime.Add(3 * time.Hour), End: baseTime.Add(4 * time.Hour)},   // Future
	}

	classifyPasses(passes, baseTime)

	expected := []PassStatus{PassPast, PassNext, PassFuture}
	for i, p := range passes {
		if p.Status != expected[i] {
			t.Errorf("pass %d: got status %v, want %v", i, p.Status, expected[i])
		}
	}
}

func TestPassPlanHelpers(t *testing.T) {
	plan := &PassPlan{
		Passes: []Pass{
			{Site: "Goldstone", Status: PassPast},
			{Site: "Canberra", Status: PassNow},
			{Site: "Madrid", Status: PassNext},
			{Site: "Goldstone", Status: PassFuture},
		},
	}

	if current := plan.CurrentPass(); current == nil || current.Site != "Canberra" {
		t.Errorf("CurrentPass() = %+v, want the Canberra pass", current)
	}
	if next := plan.NextPass(); next == nil || next.Site != "Madrid" {
		t.Errorf("NextPass() = %+v, want the Madrid pass", next)
	}
	if got := plan.PassesForSite("Goldstone"); len(got) != 2 {
		t.Errorf("PassesForSite(Goldstone) = %d passes, want 2", len(got))
	}

	empty := &PassPlan{}
	if empty.CurrentPass() != nil || empty.NextPass() != nil {
		t.Error("empty plan should have no current or next pass")
	}
}

func TestPlanStar(t *testing.T) {
	now := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	arcturus, _ := DefaultStarCatalog().Find("Arcturus")
	sites := []Site{KnownSites["goldstone"], KnownSites["canberra"], KnownSites["madrid"]}

	plan, err := PlanStar(arcturus, sites, StandardWeather, EarthParams{}, now)
	if err != nil {
		t.Fatalf("PlanStar() error = %v", err)
	}
	if plan.Target != "Arcturus" {
		t.Errorf("Target = %q", plan.Target)
	}
	for _, site := range sites {
		if len(plan.PassesForSite(site.Name)) == 0 {
			t.Errorf("no Arcturus pass at %s in 24h", site.Name)
		}
	}
	for _, p := range plan.Passes {
		if p.SunMinSep <= 0 || p.SunMinSep > 180 {
			t.Errorf("SunMinSep = %v out of range", p.SunMinSep)
		}
	}

	if _, err := PlanStar(arcturus, []Site{{Name: "bad", LatDeg: 95}}, StandardWeather, EarthParams{}, now); err == nil {
		t.Error("PlanStar(bad site) expected an error")
	}
}
