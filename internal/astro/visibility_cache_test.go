package astro

import (
	"sync"
	"testing"
	"time"
)

func testCacheObservers(t *testing.T, now time.Time) []*Observer {
	t.Helper()
	var observers []*Observer
	for _, key := range SiteOrder {
		observers = append(observers, newTestObserver(t, key, now))
	}
	return observers
}

func TestVisibilityCacheUpdate(t *testing.T) {
	now := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	vc := NewVisibilityCache()
	vc.now = func() time.Time { return now }

	arcturus, _ := DefaultStarCatalog().Find("Arcturus")
	if !vc.NeedsRefresh("Arcturus") {
		t.Error("empty cache should need a refresh")
	}
	if err := vc.Update(arcturus, testCacheObservers(t, now)); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if vc.NeedsRefresh("Arcturus") {
		t.Error("fresh entry should not need a refresh")
	}

	all := vc.All("Arcturus")
	if len(all) != len(SiteOrder) {
		t.Fatalf("All() has %d sites, want %d", len(all), len(SiteOrder))
	}
	for site, info := range all {
		if info.Site != site {
			t.Errorf("info.Site = %q under key %q", info.Site, site)
		}
		if !info.Window.Valid || info.Window.NeverVisible {
			t.Errorf("%s window = %+v, want a valid rising window", site, info.Window)
		}
		if info.ElevTier != GetElevationTier(info.CurrentElev) {
			t.Errorf("%s tier %v does not match elevation %v", site, info.ElevTier, info.CurrentElev)
		}
		if info.SunSepTier != GetSunSeparationTier(info.SunSep) {
			t.Errorf("%s sun tier %v does not match %v", site, info.SunSepTier, info.SunSep)
		}
		if !info.LastComputed.Equal(now) {
			t.Errorf("%s LastComputed = %v, want %v", site, info.LastComputed, now)
		}
	}

	if vc.Get("Arcturus", "Goldstone") == nil {
		t.Error("Get(Arcturus, Goldstone) = nil")
	}
	if vc.Get("Arcturus", "Nowhere") != nil || vc.Get("Vega", "Goldstone") != nil {
		t.Error("Get() for an unknown key should be nil")
	}
	if vc.All("Vega") != nil {
		t.Error("All(Vega) should be nil before any update")
	}
}

func TestVisibilityCacheTTL(t *testing.T) {
	now := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	vc := NewVisibilityCache()
	vc.now = func() time.Time { return now }

	vega, _ := DefaultStarCatalog().Find("Vega")
	if err := vc.Update(vega, testCacheObservers(t, now)[:1]); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	vc.now = func() time.Time { return now.Add(VisibilityCacheTTL - time.Second) }
	if vc.NeedsRefresh("Vega") {
		t.Error("entry should still be fresh just inside the TTL")
	}
	vc.now = func() time.Time { return now.Add(VisibilityCacheTTL + time.Second) }
	if !vc.NeedsRefresh("Vega") {
		t.Error("entry should be stale after the TTL")
	}
}

func TestVisibilityCacheReturnsCopies(t *testing.T) {
	now := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	vc := NewVisibilityCache()
	vc.now = func() time.Time { return now }

	vega, _ := DefaultStarCatalog().Find("Vega")
	if err := vc.Update(vega, testCacheObservers(t, now)[:1]); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	info := vc.Get("Vega", "Goldstone")
	info.CurrentElev = -99
	vc.All("Vega")["Goldstone"].SunSep = -1

	again := vc.Get("Vega", "Goldstone")
	if again.CurrentElev == -99 || again.SunSep == -1 {
		t.Error("mutating a returned entry changed the cache")
	}
}

func TestVisibilityCacheForgetAndClear(t *testing.T) {
	now := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	vc := NewVisibilityCache()
	vc.now = func() time.Time { return now }
	observers := testCacheObservers(t, now)[:1]

	cat := DefaultStarCatalog()
	for _, name := range []string{"Vega", "Sirius"} {
		s, _ := cat.Find(name)
		if err := vc.Update(s, observers); err != nil {
			t.Fatalf("Update(%s) error = %v", name, err)
		}
	}

	vc.Forget("Vega")
	if !vc.NeedsRefresh("Vega") || vc.NeedsRefresh("Sirius") {
		t.Error("Forget(Vega) should drop only Vega")
	}

	vc.Clear()
	if !vc.NeedsRefresh("Sirius") {
		t.Error("Clear() should drop everything")
	}
}

func TestVisibilityCacheConcurrentReads(t *testing.T) {
	now := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	vc := NewVisibilityCache()
	vc.now = func() time.Time { return now }

	vega, _ := DefaultStarCatalog().Find("Vega")
	observers := testCacheObservers(t, now)[:1]
	if err := vc.Update(vega, observers); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = vc.Get("Vega", "Goldstone")
				_ = vc.All("Vega")
				_ = vc.NeedsRefresh("Vega")
			}
		}()
	}
	wg.Wait()
}
