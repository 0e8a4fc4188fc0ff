package astro

import (
	"math"
	"testing"

	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

func TestSiteByName(t *testing.T) {
	tests := []struct {
		query  string
		want   string
		wantOK bool
	}{
		{"goldstone", "Goldstone", true},
		{"Mauna Kea", "Mauna Kea", true},
		{"CDS", "Canberra", true},
		{"siding spring", "Siding Spring", true},
		{"atlantis", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := SiteByName(tt.query)
			if ok != tt.wantOK || got.Name != tt.want {
				t.Errorf("SiteByName(%q) = %q, %v; want %q, %v", tt.query, got.Name, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSiteNamesSorted(t *testing.T) {
	names := SiteNames()
	if len(names) != len(KnownSites) {
		t.Fatalf("SiteNames() returned %d names, want %d", len(names), len(KnownSites))
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("SiteNames() not sorted at %d: %s < %s", i, names[i], names[i-1])
		}
	}
	for _, key := range SiteOrder {
		if _, ok := KnownSites[key]; !ok {
			t.Errorf("SiteOrder names unknown site %q", key)
		}
	}
}

func TestSiteValidate(t *testing.T) {
	tests := []struct {
		name    string
		site    Site
		wantErr bool
	}{
		{"ok", Site{Name: "x", LatDeg: 10, LonDeg: 20}, false},
		{"lat too big", Site{Name: "x", LatDeg: 91}, true},
		{"lat too small", Site{Name: "x", LatDeg: -91}, true},
		{"lon too small", Site{Name: "x", LonDeg: -181}, true},
		{"lon east of 180", Site{Name: "x", LonDeg: 250}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.site.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSiteGeocentric(t *testing.T) {
	xyz, err := KnownSites["goldstone"].Geocentric()
	if err != nil {
		t.Fatalf("Geocentric() error = %v", err)
	}
	want := [3]float64{-2353635.436, -4641276.374, 3677124.350}
	for i := range want {
		if math.Abs(xyz[i]-want[i]) > 0.01 {
			t.Errorf("Geocentric()[%d] = %.3f, want %.3f", i, xyz[i], want[i])
		}
	}
}

func TestObservatory(t *testing.T) {
	site := Site{Name: "x", LatDeg: 45, LonDeg: -90, HeightM: 100}
	o := Observatory(site, StandardWeather, EarthParams{XpArcsec: 0.1, YpArcsec: 0.3})

	if math.Abs(o.Phi-math.Pi/4) > 1e-15 || math.Abs(o.Elong+math.Pi/2) > 1e-15 {
		t.Errorf("Observatory() lon/lat = %v %v", o.Elong, o.Phi)
	}
	if math.Abs(o.Xp-0.1*consts.DAS2R) > 1e-20 || math.Abs(o.Yp-0.3*consts.DAS2R) > 1e-20 {
		t.Errorf("Observatory() polar motion = %v %v", o.Xp, o.Yp)
	}
	if o.Height != 100 || o.Pressure != 1013.25 || o.Wavelength != 0.55 {
		t.Errorf("Observatory() = %+v", o)
	}
}
