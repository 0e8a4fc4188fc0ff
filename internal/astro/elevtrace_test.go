package astro

import (
	"errors"
	"math"
	"testing"
	"time"
	"unicode/utf8"
)

func TestComputeElevationTrace(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	obs := newTestObserver(t, "goldstone", now)

	trace, err := ComputeElevationTrace("M31", "Goldstone", obs.FixedElevation(10.6847, 41.2690), now)
	if err != nil {
		t.Fatalf("ComputeElevationTrace() error = %v", err)
	}

	if trace.Target != "M31" || trace.Site != "Goldstone" {
		t.Errorf("trace = %q at %q", trace.Target, trace.Site)
	}

	// 4 hours at 5 minute intervals = 49 samples
	if len(trace.Samples) != 49 {
		t.Fatalf("sample count = %d, want 49", len(trace.Samples))
	}
	if !trace.Samples[0].Time.Equal(trace.WindowStart) || !trace.Samples[48].Time.Equal(trace.WindowEnd) {
		t.Errorf("samples span %v..%v, want %v..%v",
			trace.Samples[0].Time, trace.Samples[48].Time, trace.WindowStart, trace.WindowEnd)
	}

	for i := 1; i < len(trace.Samples); i++ {
		if delta := trace.Samples[i].Time.Sub(trace.Samples[i-1].Time); delta != ElevationTraceSampleInterval {
			t.Errorf("sample spacing at %d = %v, want %v", i, delta, ElevationTraceSampleInterval)
		}
	}

	for i, s := range trace.Samples {
		if math.IsNaN(s.ElDeg) || s.ElDeg < -90 || s.ElDeg > 90 {
			t.Errorf("sample %d has invalid elevation %v", i, s.ElDeg)
		}
	}

	// The centre sample is the observer's own place.
	mid := trace.CurrentElevation(now)
	if want := obs.ObserveICRS(10.6847, 41.2690).ElDeg; math.Abs(mid.ElDeg-want) > 1e-9 {
		t.Errorf("centre elevation = %v, want %v", mid.ElDeg, want)
	}
}

func TestComputeElevationTraceError(t *testing.T) {
	boom := errors.New("boom")
	fn := func(time.Time) (float64, error) { return 0, boom }

	if _, err := ComputeElevationTrace("X", "Y", fn, time.Now()); !errors.Is(err, boom) {
		t.Errorf("ComputeElevationTrace() error = %v, want %v", err, boom)
	}
}

func TestElevationTraceCurrentElevation(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	trace := &ElevationTrace{
		Samples: []ElevationSample{
			{Time: now.Add(-10 * time.Minute), ElDeg: 20},
			{Time: now.Add(-5 * time.Minute), ElDeg: 25},
			{Time: now, ElDeg: 30},
			{Time: now.Add(5 * time.Minute), ElDeg: 35},
		},
	}

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"exact", now, 30},
		{"closer to earlier", now.Add(-6 * time.Minute), 25},
		{"closer to later", now.Add(3 * time.Minute), 35},
		{"after the end", now.Add(time.Hour), 35},
		{"before the start", now.Add(-time.Hour), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trace.CurrentElevation(tt.at)
			if got == nil || got.ElDeg != tt.want {
				t.Errorf("CurrentElevation() = %+v, want el %v", got, tt.want)
			}
		})
	}

	empty := &ElevationTrace{}
	if empty.CurrentElevation(now) != nil {
		t.Error("CurrentElevation() on an empty trace should be nil")
	}
}

func TestElevationTraceSparkline(t *testing.T) {
	trace := &ElevationTrace{
		Samples: []ElevationSample{
			{ElDeg: -5}, {ElDeg: 0}, {ElDeg: 5}, {ElDeg: 45}, {ElDeg: 89}, {ElDeg: 90},
		},
	}

	got := trace.Sparkline()
	if want := "··▁▅██"; got != want {
		t.Errorf("Sparkline() = %q, want %q", got, want)
	}
	if n := utf8.RuneCountInString(got); n != len(trace.Samples) {
		t.Errorf("Sparkline() has %d runes, want %d", n, len(trace.Samples))
	}
}
