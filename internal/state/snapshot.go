package state

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/config"
	"github.com/litescript/ls-sofa/internal/ephem"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

// RebuildInterval is how long an Observer is advanced by Earth rotation
// alone before its astrometry is rebuilt from scratch.
const RebuildInterval = time.Hour

// StarView is one watched star as seen from the site.
type StarView struct {
	astro.Position
	Galactic astro.SkyCoord         `json:"galactic"`
	Tier     astro.ElevationTier    `json:"tier"`
	Window   *astro.VisibilityWindow `json:"window,omitempty"`
}

// BodyView is a solar-system body with its observed place.
type BodyView struct {
	ephem.BodyPosition
	Observed astro.Position `json:"observed"`
}

// Snapshot is the sky at one instant. Once published through a Manager
// it is shared between readers and must not be modified.
type Snapshot struct {
	Time     time.Time           `json:"time"`
	Site     astro.Site          `json:"site"`
	Weather  astro.Weather       `json:"weather"`
	Earth    astro.EarthParams   `json:"earth"`
	Scales   astro.Scales        `json:"scales"`
	Sidereal astro.SiderealTimes `json:"sidereal"`
	// LASTDeg is the local apparent sidereal time in degrees.
	LASTDeg  float64    `json:"last_deg"`
	Twilight string     `json:"twilight,omitempty"`
	Stars    []StarView `json:"stars"`
	Bodies   []BodyView `json:"bodies"`
	Warnings []string   `json:"warnings,omitempty"`

	ComputeDuration time.Duration `json:"compute_duration_ns"`
}

// Star returns the named star's view.
func (s *Snapshot) Star(name string) (StarView, bool) {
	for _, v := range s.Stars {
		if v.Name == name {
			return v, true
		}
	}
	return StarView{}, false
}

// Body returns the view of body b.
func (s *Snapshot) Body(b ephem.Body) (BodyView, bool) {
	for _, v := range s.Bodies {
		if v.Body == b {
			return v, true
		}
	}
	return BodyView{}, false
}

// Engine computes snapshots for one site and watch list. It keeps an
// Observer between calls and advances it cheaply while the epoch stays
// within RebuildInterval. Safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	site     astro.Site
	weather  astro.Weather
	earth    astro.EarthParams
	catalog  astro.StarCatalog
	stars    []astro.Star
	provider ephem.Provider

	observer *astro.Observer
	built    time.Time // epoch of the last full rebuild
	vis      *astro.VisibilityCache

	now func() time.Time
}

// NewEngine builds an Engine from the application config.
func NewEngine(cfg config.Config, cat astro.StarCatalog, provider ephem.Provider) (*Engine, error) {
	e := &Engine{
		catalog:  cat,
		provider: provider,
		now:      time.Now,
	}
	e.vis = astro.NewVisibilityCacheClock(func() time.Time { return e.now() })
	if err := e.apply(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Reconfigure switches the engine to a new config. Cached astrometry
// and visibility windows are dropped.
func (e *Engine) Reconfigure(cfg config.Config) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(cfg)
}

func (e *Engine) apply(cfg config.Config) error {
	site, err := cfg.Site()
	if err != nil {
		return err
	}
	stars, err := cfg.WatchList(e.catalog)
	if err != nil {
		return err
	}
	e.site = site
	e.weather = cfg.Weather
	e.earth = cfg.Earth
	e.stars = stars
	e.observer = nil
	e.vis.Clear()
	return nil
}

// Site returns the engine's observing site.
func (e *Engine) Site() astro.Site {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.site
}

// Compute builds a snapshot for the current time.
func (e *Engine) Compute(ctx context.Context) (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	now := e.now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.observerAt(now); err != nil {
		return nil, err
	}
	obs := e.observer

	snap := &Snapshot{
		Time:     now,
		Site:     e.site,
		Weather:  e.weather,
		Earth:    e.earth,
		Scales:   obs.Scales,
		Sidereal: astro.Sidereal(obs.Scales),
	}
	snap.LASTDeg = normalizeDeg(snap.Sidereal.Local(e.site.LonDeg) * consts.DR2D)

	warn := func(err error) {
		if err != nil {
			snap.Warnings = appendUnique(snap.Warnings, err.Error())
		}
	}
	warn(obs.Scales.Warning)
	warn(obs.Warning)

	snap.Stars = make([]StarView, 0, len(e.stars))
	for _, s := range e.stars {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos := obs.Observe(s)
		view := StarView{
			Position: pos,
			Galactic: astro.Galactic(s.RAdeg, s.DecDeg),
			Tier:     astro.GetElevationTier(pos.ElDeg),
		}
		if e.vis.NeedsRefresh(s.Name) {
			if err := e.vis.Update(s, []*astro.Observer{obs}); err != nil {
				warn(fmt.Errorf("visibility %s: %w", s.Name, err))
			}
		}
		if info := e.vis.Get(s.Name, e.site.Name); info != nil {
			w := info.Window
			view.Window = &w
		}
		snap.Stars = append(snap.Stars, view)
	}

	for _, info := range ephem.Bodies {
		if e.provider == nil || !e.provider.Available(info.Body) {
			continue
		}
		bp, err := e.provider.Position(ctx, info.Body, now)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			warn(fmt.Errorf("%s: %w", info.Name, err))
			continue
		}
		warn(bp.Warning)

		view := BodyView{BodyPosition: bp, Observed: obs.ObserveGCRS(bp.Dir, bp.DistAU)}
		view.Observed.Name = info.Name
		if info.Body == ephem.Sun {
			snap.Twilight = astro.Twilight(view.Observed.ElDeg).String()
		}
		snap.Bodies = append(snap.Bodies, view)
	}

	snap.ComputeDuration = time.Since(start)
	return snap, nil
}

// observerAt brings the cached observer to now.
func (e *Engine) observerAt(now time.Time) error {
	if e.observer == nil {
		obs, err := astro.NewObserver(e.site, e.weather, e.earth, now)
		if err != nil {
			return err
		}
		e.observer = obs
		e.built = now
		return nil
	}
	if d := now.Sub(e.built); d > RebuildInterval || d < -RebuildInterval {
		if err := e.observer.Rebuild(now); err != nil {
			return err
		}
		e.built = now
		return nil
	}
	return e.observer.Advance(now)
}

func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
