package astro

import (
	"math"
	"testing"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

func TestDefaultStarCatalog_NonEmpty(t *testing.T) {
	cat := DefaultStarCatalog()

	if len(cat.Stars) == 0 {
		t.Error("DefaultStarCatalog() returned empty catalog")
	}

	if len(cat.Stars) < 50 {
		t.Errorf("Expected at least 50 stars, got %d", len(cat.Stars))
	}
}

func TestDefaultStarCatalog_KnownStars(t *testing.T) {
	cat := DefaultStarCatalog()

	// Check for some well-known bright stars
	knownStars := map[string]struct {
		minRA, maxRA   float64
		minDec, maxDec float64
		maxMag         float64
	}{
		"Sirius":     {100, 103, -18, -15, 0}, // brightest star
		"Vega":       {278, 281, 37, 40, 0.5}, // summer triangle
		"Polaris":    {35, 40, 88, 90, 2.5},   // north star
		"Canopus":    {94, 98, -54, -51, 0},   // second brightest
		"Arcturus":   {212, 215, 18, 21, 0.5}, // bright orange star
		"Betelgeuse": {87, 90, 6, 9, 1.0},     // Orion's shoulder
	}

	starMap := make(map[string]Star)
	for _, s := range cat.Stars {
		starMap[s.Name] = s
	}

	for name, expected := range knownStars {
		star, found := starMap[name]
		if !found {
			t.Errorf("Expected star %s not in catalog", name)
			continue
		}

		if star.RAdeg < expected.minRA || star.RAdeg > expected.maxRA {
			t.Errorf("%s RA=%v, expected %v-%v", name, star.RAdeg, expected.minRA, expected.maxRA)
		}

		if star.DecDeg < expected.minDec || star.DecDeg > expected.maxDec {
			t.Errorf("%s Dec=%v, expected %v-%v", name, star.DecDeg, expected.minDec, expected.maxDec)
		}

		if star.Mag > expected.maxMag {
			t.Errorf("%s Mag=%v, expected < %v", name, star.Mag, expected.maxMag)
		}
	}
}

func TestDefaultStarCatalog_ValidCoordinates(t *testing.T) {
	cat := DefaultStarCatalog()

	for _, star := range cat.Stars {
		// RA should be 0-360
		if star.RAdeg < 0 || star.RAdeg >= 360 {
			t.Errorf("Star %s has invalid RA: %v", star.Name, star.RAdeg)
		}

		// Dec should be -90 to +90
		if star.DecDeg < -90 || star.DecDeg > 90 {
			t.Errorf("Star %s has invalid Dec: %v", star.Name, star.DecDeg)
		}

		if star.Mag < -2 || star.Mag > 3 {
			t.Errorf("Star %s has unusual magnitude: %v", star.Name, star.Mag)
		}

		if star.Name == "" {
			t.Error("Found star with empty name")
		}

		if star.Parallax <= 0 {
			t.Errorf("Star %s has non-positive parallax: %v", star.Name, star.Parallax)
		}
	}
}

func TestDefaultStarCatalog_NoDuplicates(t *testing.T) {
	cat := DefaultStarCatalog()

	seen := make(map[string]bool)
	for _, star := range cat.Stars {
		if seen[star.Name] {
			t.Errorf("Duplicate star name: %s", star.Name)
		}
		seen[star.Name] = true
	}
}

func TestDefaultStarCatalog_DeterministicOrder(t *testing.T) {
	// Calling DefaultStarCatalog() twice should return same order
	cat1 := DefaultStarCatalog()
	cat2 := DefaultStarCatalog()

	if len(cat1.Stars) != len(cat2.Stars) {
		t.Fatal("Catalog length differs between calls")
	}

	for i := range cat1.Stars {
		if cat1.Stars[i].Name != cat2.Stars[i].Name {
			t.Errorf("Star order differs at index %d: %s vs %s",
				i, cat1.Stars[i].Name, cat2.Stars[i].Name)
		}
	}
}

func TestDefaultStarCatalog_BrightestFirst(t *testing.T) {
	cat := DefaultStarCatalog()

	// First star should be Sirius (brightest)
	if len(cat.Stars) > 0 && cat.Stars[0].Name != "Sirius" {
		t.Errorf("First star should be Sirius (brightest), got %s", cat.Stars[0].Name)
	}

	// First 10 stars should all be mag < 1.0
	for i := 0; i < 10 && i < len(cat.Stars); i++ {
		if cat.Stars[i].Mag > 1.0 {
			t.Errorf("Star %d (%s) has mag %v, expected < 1.0 for brightest stars",
				i, cat.Stars[i].Name, cat.Stars[i].Mag)
		}
	}
}

func TestDefaultStarCatalog_SortedByMagnitude(t *testing.T) {
	cat := DefaultStarCatalog()
	for i := 1; i < len(cat.Stars); i++ {
		if cat.Stars[i].Mag < cat.Stars[i-1].Mag {
			t.Errorf("%s (%.2f) listed after fainter %s (%.2f)",
				cat.Stars[i].Name, cat.Stars[i].Mag, cat.Stars[i-1].Name, cat.Stars[i-1].Mag)
		}
	}
}

func TestStarCatalog_Find(t *testing.T) {
	cat := DefaultStarCatalog()

	tests := []struct {
		query  string
		want   string
		wantOK bool
	}{
		{"Vega", "Vega", true},
		{"vega", "Vega", true},
		{"KAUS AUSTRALIS", "Kaus Australis", true},
		{"Vulcan", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := cat.Find(tt.query)
			if ok != tt.wantOK || got.Name != tt.want {
				t.Errorf("Find(%q) = %q, %v; want %q, %v", tt.query, got.Name, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStarCatalog_Brighter(t *testing.T) {
	cat := DefaultStarCatalog()
	got := cat.Brighter(0.5)
	if len(got) != 9 {
		t.Errorf("Brighter(0.5) returned %d stars, want 9", len(got))
	}
	for _, s := range got {
		if s.Mag > 0.5 {
			t.Errorf("Brighter(0.5) included %s at %.2f", s.Name, s.Mag)
		}
	}
}

func TestStar_Astrometric(t *testing.T) {
	s := Star{Name: "test", RAdeg: 90, DecDeg: 60, PMRA: 100, PMDec: -50, Parallax: 250, RV: -12}
	rc, dc, pr, pd, px, rv := s.Astrometric()

	checks := []struct {
		name      string
		got, want float64
	}{
		{"rc", rc, math.Pi / 2},
		{"dc", dc, math.Pi / 3},
		// RA rate is the catalog mu_alpha* divided by cos(dec).
		{"pr", pr, 200 * consts.DMAS2R},
		{"pd", pd, -50 * consts.DMAS2R},
		{"px", px, 0.25},
		{"rv", rv, -12},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-12*math.Max(1, math.Abs(c.want)) {
			t.Errorf("Astrometric() %s = %v, want %v", c.name, c.got, c.want)
		}
	}
}
