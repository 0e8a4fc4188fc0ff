package ephem

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/pkg/sofa/astrometry"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/eph"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

const (
	// DefaultPathDuration is the default time span for body paths.
	DefaultPathDuration = 24 * time.Hour

	// DefaultPathStep is the default step between path points.
	DefaultPathStep = 10 * time.Minute

	// PathCacheTTL is how long a computed path is reused.
	PathCacheTTL = 5 * time.Minute

	// lightTimeIterations is enough for the Sun's light time to settle
	// far below the series accuracy.
	lightTimeIterations = 2
)

// SofaProvider computes Sun, Moon and planet places from the analytical
// Earth, Moon and planetary series. Safe for concurrent use.
type SofaProvider struct {
	mode Mode

	mu        sync.RWMutex
	pathCache map[Body]*cachedPath
	now       func() time.Time
}

type cachedPath struct {
	path       Path
	step       time.Duration
	computedAt time.Time
}

// NewSofaProvider creates a provider applying the corrections of mode.
func NewSofaProvider(mode Mode) *SofaProvider {
	return &SofaProvider{
		mode:      mode,
		pathCache: make(map[Body]*cachedPath),
		now:       time.Now,
	}
}

// Name implements Provider.
func (p *SofaProvider) Name() string {
	return "SOFA/" + p.mode.String()
}

// planets maps bodies to their Plan94 orbit.
var planets = map[Body]eph.Planet{
	Mercury: eph.Mercury,
	Venus:   eph.Venus,
	Mars:    eph.Mars,
	Jupiter: eph.Jupiter,
	Saturn:  eph.Saturn,
	Uranus:  eph.Uranus,
	Neptune: eph.Neptune,
}

// Available implements Provider.
func (p *SofaProvider) Available(body Body) bool {
	_, planet := planets[body]
	return body == Sun || body == Moon || planet
}

// Position implements Provider.
func (p *SofaProvider) Position(ctx context.Context, body Body, t time.Time) (BodyPosition, error) {
	if err := ctx.Err(); err != nil {
		return BodyPosition{}, err
	}
	if !p.Available(body) {
		return BodyPosition{}, fmt.Errorf("%w: %d", ErrUnknownBody, body)
	}

	sc, err := astro.TimeScales(t, 0)
	if err != nil {
		return BodyPosition{}, fmt.Errorf("ephem %s: %w", body, err)
	}

	// Earth's heliocentric and barycentric state drive the aberration
	// and the planets' geocentric vectors.
	pvh, pvb, warn := eph.Epv00(sc.TDB.D1, sc.TDB.D2)
	warn = errors.Join(warn, sc.Warning)

	var g vm.Vec3
	switch body {
	case Sun:
		g = p.sunVector(sc, pvh, pvb)
	case Moon:
		g = p.moonVector(sc)
	default:
		var err error
		g, err = p.planetVector(sc, planets[body], pvh)
		if err != nil && !isPlanetWarning(err) {
			return BodyPosition{}, fmt.Errorf("ephem %s: %w", body, err)
		}
		warn = errors.Join(warn, err)
	}

	dist, u := vm.Pn(g)
	if p.mode == ModeApparent {
		u = aberrate(u, pvh, pvb)
	}
	ra, dec := vm.C2s(u)

	return BodyPosition{
		Body:      body,
		Time:      t,
		Dir:       u,
		RADeg:     vm.Anp(ra) * consts.DR2D,
		DecDeg:    dec * consts.DR2D,
		DistAU:    dist,
		LightTime: dist * consts.AULT,
		Valid:     true,
		Warning:   warn,
	}, nil
}

// sunVector returns the geocentric Sun in au, BCRS axes. In apparent
// mode the Sun is taken where it was when the light left it.
func (p *SofaProvider) sunVector(sc astro.Scales, pvh, pvb vm.PV) vm.Vec3 {
	g := vm.Sxp(-1, pvh[0])
	if p.mode != ModeApparent {
		return g
	}
	for i := 0; i < lightTimeIterations; i++ {
		tau := vm.Pm(g) * consts.AULT / consts.DAYSEC
		// Ephemeris range warnings were already taken at t.
		h, b, _ := eph.Epv00(sc.TDB.D1, sc.TDB.D2-tau)
		sunB := vm.Pmp(b[0], h[0])
		g = vm.Pmp(sunB, pvb[0])
	}
	return g
}

// planetVector returns the geocentric planet in au, BCRS axes. In
// apparent mode the planet is taken where it was when the light left it.
func (p *SofaProvider) planetVector(sc astro.Scales, planet eph.Planet, pvh vm.PV) (vm.Vec3, error) {
	pv, err := eph.Plan94(sc.TDB.D1, sc.TDB.D2, planet)
	if err != nil && !isPlanetWarning(err) {
		return vm.Vec3{}, err
	}
	g := vm.Pmp(pv[0], pvh[0])
	if p.mode != ModeApparent {
		return g, err
	}
	for i := 0; i < lightTimeIterations; i++ {
		tau := vm.Pm(g) * consts.AULT / consts.DAYSEC
		// Warnings were already taken at t.
		pv, _ = eph.Plan94(sc.TDB.D1, sc.TDB.D2-tau, planet)
		g = vm.Pmp(pv[0], pvh[0])
	}
	return g, err
}

func isPlanetWarning(err error) bool {
	return errors.Is(err, eph.ErrPlanetDateRange) || errors.Is(err, eph.ErrKepler)
}

// moonVector returns the geocentric Moon in au, GCRS.
func (p *SofaProvider) moonVector(sc astro.Scales) vm.Vec3 {
	pv := eph.Moon98(sc.TT.D1, sc.TT.D2)
	if p.mode != ModeApparent {
		return pv[0]
	}
	tau := vm.Pm(pv[0]) * consts.AULT / consts.DAYSEC
	return vm.Pmp(pv[0], vm.Sxp(tau, pv[1]))
}

// aberrate applies annual aberration for the geocentre to the unit
// vector u.
func aberrate(u vm.Vec3, pvh, pvb vm.PV) vm.Vec3 {
	v := vm.Sxp(consts.AULT/consts.DAYSEC, pvb[1])
	bm1 := math.Sqrt(1 - vm.Pdp(v, v))
	return astrometry.Ab(u, v, vm.Pm(pvh[0]), bm1)
}

// Path implements Provider. A path for the same body, span and step
// computed within PathCacheTTL is returned from cache.
func (p *SofaProvider) Path(ctx context.Context, body Body, start, end time.Time, step time.Duration) (Path, error) {
	if step <= 0 {
		return Path{}, fmt.Errorf("ephem: path step must be positive, got %v", step)
	}
	if end.Before(start) {
		return Path{}, fmt.Errorf("ephem: path end %v before start %v", end, start)
	}

	p.mu.RLock()
	cached, ok := p.pathCache[body]
	p.mu.RUnlock()
	if ok && cached.step == step && cached.path.Start.Equal(start) && cached.path.End.Equal(end) &&
		p.now().Sub(cached.computedAt) < PathCacheTTL {
		return cached.path, nil
	}

	path := Path{Body: body, Start: start, End: end}
	for t := start; !t.After(end); t = t.Add(step) {
		pos, err := p.Position(ctx, body, t)
		if err != nil {
			return Path{}, err
		}
		path.Points = append(path.Points, pos)
	}

	p.mu.Lock()
	p.pathCache[body] = &cachedPath{path: path, step: step, computedAt: p.now()}
	p.mu.Unlock()

	return path, nil
}

// InvalidateCache drops any cached path for body.
func (p *SofaProvider) InvalidateCache(body Body) {
	p.mu.Lock()
	delete(p.pathCache, body)
	p.mu.Unlock()
}

var _ Provider = (*SofaProvider)(nil)
