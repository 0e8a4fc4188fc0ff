package astro

import (
	"sync"
	"time"
)

const (
	// VisibilityCacheTTL is how long visibility windows remain valid.
	VisibilityCacheTTL = 5 * time.Minute

	// VisibilityWindowSpan is the time range for visibility calculation.
	VisibilityWindowSpan = 24 * time.Hour

	// VisibilitySampleStep is the sample interval for visibility calculation.
	VisibilitySampleStep = 10 * time.Minute
)

// VisibilityInfo holds visibility data for a star at one site.
type VisibilityInfo struct {
	Site         string            `json:"site"`
	Window       VisibilityWindow  `json:"window"`
	CurrentElev  float64           `json:"current_elev"`
	ElevTier     ElevationTier     `json:"elev_tier"`
	SunSep       float64           `json:"sun_sep"`
	SunSepTier   SunSeparationTier `json:"sun_sep_tier"`
	LastComputed time.Time         `json:"last_computed"`
}

// VisibilityCache caches visibility windows per star and site.
type VisibilityCache struct {
	mu sync.RWMutex

	// star name -> site name -> info
	cache map[string]map[string]*VisibilityInfo

	ttl time.Duration
	now func() time.Time
}

// NewVisibilityCache creates a new visibility cache.
func NewVisibilityCache() *VisibilityCache {
	return &VisibilityCache{
		cache: make(map[string]map[string]*VisibilityInfo),
		ttl:   VisibilityCacheTTL,
		now:   time.Now,
	}
}

// NewVisibilityCacheClock is NewVisibilityCache with a custom clock.
func NewVisibilityCacheClock(now func() time.Time) *VisibilityCache {
	vc := NewVisibilityCache()
	vc.now = now
	return vc
}

// Get returns visibility info for a star at a site, or nil.
func (vc *VisibilityCache) Get(star, site string) *VisibilityInfo {
	vc.mu.RLock()
	defer vc.mu.RUnlock()

	if siteMap, ok := vc.cache[star]; ok {
		if info, ok := siteMap[site]; ok {
			cp := *info
			return &cp
		}
	}
	return nil
}

// All returns visibility info for a star at every cached site.
func (vc *VisibilityCache) All(star string) map[string]*VisibilityInfo {
	vc.mu.RLock()
	defer vc.mu.RUnlock()

	siteMap, ok := vc.cache[star]
	if !ok {
		return nil
	}
	// Copies, so callers never share the cached structs.
	result := make(map[string]*VisibilityInfo, len(siteMap))
	for s, v := range siteMap {
		info := *v
		result[s] = &info
	}
	return result
}

// NeedsRefresh reports whether a star's entry is missing or stale.
func (vc *VisibilityCache) NeedsRefresh(star string) bool {
	vc.mu.RLock()
	defer vc.mu.RUnlock()

	siteMap, ok := vc.cache[star]
	if !ok || len(siteMap) == 0 {
		return true
	}
	for _, info := range siteMap {
		if vc.now().Sub(info.LastComputed) > vc.ttl {
			return true
		}
	}
	return false
}

// Update computes and caches the visibility of s from each observer.
// The observers should be built at or near the current time.
func (vc *VisibilityCache) Update(s Star, observers []*Observer) error {
	now := vc.now()
	result := make(map[string]*VisibilityInfo, len(observers))

	for _, obs := range observers {
		pos := obs.Observe(s)
		info := &VisibilityInfo{
			Site:         obs.Site.Name,
			CurrentElev:  pos.ElDeg,
			ElevTier:     GetElevationTier(pos.ElDeg),
			SunSep:       pos.SunSepDeg,
			SunSepTier:   GetSunSeparationTier(pos.SunSepDeg),
			LastComputed: now,
		}

		samples, err := SampleElevation(obs.StarElevation(s), now, VisibilityWindowSpan, VisibilitySampleStep)
		if err != nil {
			return err
		}
		if window, err := RiseSet(samples, MinElevation); err == nil {
			info.Window = window
		}
		result[obs.Site.Name] = info
	}

	vc.mu.Lock()
	vc.cache[s.Name] = result
	vc.mu.Unlock()

	return nil
}

// Clear removes all cached visibility data.
func (vc *VisibilityCache) Clear() {
	vc.mu.Lock()
	vc.cache = make(map[string]map[string]*VisibilityInfo)
	vc.mu.Unlock()
}

// Forget removes cached visibility data for one star.
func (vc *VisibilityCache) Forget(star string) {
	vc.mu.Lock()
	delete(vc.cache, star)
	vc.mu.Unlock()
}
