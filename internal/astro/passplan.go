package astro

import (
	"sort"
	"time"
)

// PassStatus classifies a pass relative to current time.
type PassStatus int

const (
	PassPast   PassStatus = iota // Pass has ended
	PassNow                      // Currently in progress
	PassNext                     // Next upcoming pass
	PassFuture                   // Future pass (not next)
)

// String returns the status name.
func (s PassStatus) String() string {
	switch s {
	case PassPast:
		return "PAST"
	case PassNow:
		return "NOW"
	case PassNext:
		return "NEXT"
	case PassFuture:
		return "FUTURE"
	default:
		return "?"
	}
}

// MarshalText lets the status travel as its name in JSON.
func (s PassStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pass is an interval during which a target stays above
// MinPassElevation at one site.
type Pass struct {
	Site      string     `json:"site"`
	Start     time.Time  `json:"start"`
	Peak      time.Time  `json:"peak"`
	End       time.Time  `json:"end"`
	MaxElDeg  float64    `json:"max_el_deg"`
	SunMinSep float64    `json:"sun_min_sep"`
	Status    PassStatus `json:"status"`
}

// PassPlan contains all passes for one target across the sites.
type PassPlan struct {
	Target      string    `json:"target"`
	GeneratedAt time.Time `json:"generated_at"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Passes      []Pass    `json:"passes"`
}

// SiteSeries is an elevation series for one site. SunSepDeg, if not
// empty, runs parallel to Samples.
type SiteSeries struct {
	Site      string
	Samples   []ElevationSample
	SunSepDeg []float64
}

// MinPassElevation is the threshold for pass start/end (degrees).
const MinPassElevation = 5.0

// PassSampleInterval is the time between elevation samples.
const PassSampleInterval = 5 * time.Minute

// PassWindowDuration is the default forecast window.
const PassWindowDuration = 24 * time.Hour

// ComputePassPlan finds the passes of target in every series and
// classifies them against now.
func ComputePassPlan(target string, series []SiteSeries, now time.Time) *PassPlan {
	plan := &PassPlan{Target: target, GeneratedAt: now}

	var allPasses []Pass
	for _, s := range series {
		if len(s.Samples) < 3 {
			continue
		}
		first, last := s.Samples[0].Time, s.Samples[len(s.Samples)-1].Time
		if plan.WindowStart.IsZero() || first.Before(plan.WindowStart) {
			plan.WindowStart = first
		}
		if last.After(plan.WindowEnd) {
			plan.WindowEnd = last
		}
		allPasses = append(allPasses, passesForSite(s)...)
	}

	sort.Slice(allPasses, func(i, j int) bool {
		return allPasses[i].Start.Before(allPasses[j].Start)
	})
	classifyPasses(allPasses, now)

	plan.Passes = allPasses
	return plan
}

// passesForSite walks one series for contiguous runs above the threshold.
func passesForSite(s SiteSeries) []Pass {
	var passes []Pass
	inPass := false
	var cur Pass

	sunSep := func(i int) float64 {
		if i < len(s.SunSepDeg) {
			return s.SunSepDeg[i]
		}
		return 180
	}

	for i, curr := range s.Samples {
		above := curr.ElDeg >= MinPassElevation

		if !inPass && above {
			inPass = true
			cur = Pass{Site: s.Site, Start: curr.Time, Peak: curr.Time, MaxElDeg: curr.ElDeg, SunMinSep: 360}
			if i > 0 {
				prev := s.Samples[i-1]
				cur.Start = interpolateCrossing(prev.Time, curr.Time, prev.ElDeg, curr.ElDeg, MinPassElevation)
			}
		}

		if !inPass {
			continue
		}

		if curr.ElDeg > cur.MaxElDeg {
			cur.MaxElDeg = curr.ElDeg
			cur.Peak = curr.Time
		}
		if sep := sunSep(i); sep < cur.SunMinSep {
			cur.SunMinSep = sep
		}

		if !above {
			prev := s.Samples[i-1]
			cur.End = interpolateCrossing(prev.Time, curr.Time, prev.ElDeg, curr.ElDeg, MinPassElevation)
			passes = append(passes, cur)
			inPass = false
		}
	}

	// A pass still up at the end of the window ends there.
	if inPass {
		cur.End = s.Samples[len(s.Samples)-1].Time
		passes = append(passes, cur)
	}

	return passes
}

// classifyPasses assigns status to each pass based on current time.
func classifyPasses(passes []Pass, now time.Time) {
	foundNext := false

	for i := range passes {
		p := &passes[i]

		if now.After(p.End) {
			p.Status = PassPast
		} else if now.After(p.Start) && now.Before(p.End) {
			p.Status = PassNow
		} else if !foundNext && now.Before(p.Start) {
			p.Status = PassNext
			foundNext = true
		} else {
			p.Status = PassFuture
		}
	}
}

// PassesForSite returns passes filtered by site.
func (p *PassPlan) PassesForSite(site string) []Pass {
	var result []Pass
	for _, pass := range p.Passes {
		if pass.Site == site {
			result = append(result, pass)
		}
	}
	return result
}

// CurrentPass returns the pass currently in progress, or nil.
func (p *PassPlan) CurrentPass() *Pass {
	for i := range p.Passes {
		if p.Passes[i].Status == PassNow {
			return &p.Passes[i]
		}
	}
	return nil
}

// NextPass returns the next upcoming pass, or nil.
func (p *PassPlan) NextPass() *Pass {
	for i := range p.Passes {
		if p.Passes[i].Status == PassNext {
			return &p.Passes[i]
		}
	}
	return nil
}

// PlanStar samples a star's elevation at each site over the default
// forecast window and builds its pass plan. Each site gets its own
// Observer at now.
func PlanStar(s Star, sites []Site, w Weather, e EarthParams, now time.Time) (*PassPlan, error) {
	series := make([]SiteSeries, 0, len(sites))
	for _, site := range sites {
		obs, err := NewObserver(site, w, e, now)
		if err != nil {
			return nil, err
		}
		samples, err := SampleElevation(obs.StarElevation(s), now, PassWindowDuration, PassSampleInterval)
		if err != nil {
			return nil, err
		}
		sep := obs.Observe(s).SunSepDeg
		seps := make([]float64, len(samples))
		for i := range seps {
			seps[i] = sep
		}
		series = append(series, SiteSeries{Site: site.Name, Samples: samples, SunSepDeg: seps})
	}
	return ComputePassPlan(s.Name, series, now), nil
}
