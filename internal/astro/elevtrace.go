package astro

import (
	"time"
)

// ElevationTrace contains elevation samples around a reference time.
type ElevationTrace struct {
	Target      string            `json:"target"`
	Site        string            `json:"site"`
	Samples     []ElevationSample `json:"samples"`
	GeneratedAt time.Time         `json:"generated_at"`
	WindowStart time.Time         `json:"window_start"`
	WindowEnd   time.Time         `json:"window_end"`
}

// ElevationTraceWindow is the time span for elevation traces (±2 hours from now).
const ElevationTraceWindow = 2 * time.Hour

// ElevationTraceSampleInterval is the time between samples.
const ElevationTraceSampleInterval = 5 * time.Minute

// ComputeElevationTrace samples fn over a ±2 hour window centred on now.
func ComputeElevationTrace(target, site string, fn ElevationFunc, now time.Time) (*ElevationTrace, error) {
	windowStart := now.Add(-ElevationTraceWindow)
	windowEnd := now.Add(ElevationTraceWindow)

	samples, err := SampleElevation(fn, windowStart, 2*ElevationTraceWindow, ElevationTraceSampleInterval)
	if err != nil {
		return nil, err
	}

	return &ElevationTrace{
		Target:      target,
		Site:        site,
		Samples:     samples,
		GeneratedAt: now,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}, nil
}

// CurrentElevation returns the elevation sample closest to the given time,
// or nil if no samples exist.
func (t *ElevationTrace) CurrentElevation(now time.Time) *ElevationSample {
	if len(t.Samples) == 0 {
		return nil
	}

	var closest *ElevationSample
	var minDelta time.Duration = 1<<63 - 1

	for i := range t.Samples {
		delta := t.Samples[i].Time.Sub(now)
		if delta < 0 {
			delta = -delta
		}
		if delta < minDelta {
			minDelta = delta
			closest = &t.Samples[i]
		}
	}

	return closest
}

// Sparkline renders the trace as block characters, one per sample,
// scaled from the horizon to the zenith. Samples below the horizon show
// as a baseline dot.
func (t *ElevationTrace) Sparkline() string {
	blocks := []rune("▁▂▃▄▅▆▇█")
	out := make([]rune, 0, len(t.Samples))
	for _, s := range t.Samples {
		if s.ElDeg <= 0 {
			out = append(out, '·')
			continue
		}
		idx := int(s.ElDeg / 90 * float64(len(blocks)))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		out = append(out, blocks[idx])
	}
	return string(out)
}
