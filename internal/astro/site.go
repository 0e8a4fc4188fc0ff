// Package astro turns the pkg/sofa routines into observer-facing sky
// math: time scales at an instant, sidereal times, observed places of
// catalog stars, visibility windows and pass plans.
package astro

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/litescript/ls-sofa/pkg/sofa/astrometry"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/coords"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// Site is a geodetic location on the WGS84 ellipsoid.
type Site struct {
	Name string `json:"name" toml:"name"`
	// ShortName is a 3-letter display code.
	ShortName string `json:"short_name" toml:"short"`
	// Latitude north and longitude east, degrees; height above the
	// ellipsoid in metres.
	LatDeg  float64 `json:"lat_deg" toml:"lat_deg"`
	LonDeg  float64 `json:"lon_deg" toml:"lon_deg"`
	HeightM float64 `json:"height_m" toml:"height_m"`
}

// Weather holds the ambient conditions used for refraction. Humidity is
// relative, 0-1. A zero pressure switches refraction off.
type Weather struct {
	PressureHPa  float64 `json:"pressure_hpa" toml:"pressure_hpa"`
	TemperatureC float64 `json:"temperature_c" toml:"temperature_c"`
	Humidity     float64 `json:"humidity" toml:"humidity"`
	WavelengthUm float64 `json:"wavelength_um" toml:"wavelength_um"`
}

// EarthParams are the Earth orientation parameters the user supplies
// from IERS bulletins: UT1-UTC in seconds and the polar motion
// coordinates in arcseconds.
type EarthParams struct {
	DUT1     float64 `json:"dut1" toml:"dut1"`
	XpArcsec float64 `json:"xp_arcsec" toml:"xp_arcsec"`
	YpArcsec float64 `json:"yp_arcsec" toml:"yp_arcsec"`
}

// StandardWeather is a sea-level optical atmosphere.
var StandardWeather = Weather{PressureHPa: 1013.25, TemperatureC: 15, Humidity: 0.5, WavelengthUm: 0.55}

// KnownSites are the built-in observing sites, keyed by lower-case name.
var KnownSites = map[string]Site{
	"goldstone": {Name: "Goldstone", ShortName: "GDS", LatDeg: 35.4267, LonDeg: -116.8900, HeightM: 1001},
	"canberra":  {Name: "Canberra", ShortName: "CDS", LatDeg: -35.4014, LonDeg: 148.9817, HeightM: 692},
	"madrid":    {Name: "Madrid", ShortName: "MDS", LatDeg: 40.4314, LonDeg: -4.2481, HeightM: 865},
	"greenwich": {Name: "Greenwich", ShortName: "GRW", LatDeg: 51.4769, LonDeg: -0.0005, HeightM: 46},
	"maunakea":  {Name: "Mauna Kea", ShortName: "MKO", LatDeg: 19.8207, LonDeg: -155.4681, HeightM: 4205},
	"paranal":   {Name: "Paranal", ShortName: "PAR", LatDeg: -24.6272, LonDeg: -70.4042, HeightM: 2635},
	"lapalma":   {Name: "La Palma", ShortName: "ORM", LatDeg: 28.7606, LonDeg: -17.8816, HeightM: 2396},
	"siding":    {Name: "Siding Spring", ShortName: "SSO", LatDeg: -31.2733, LonDeg: 149.0617, HeightM: 1165},
	"kittpeak":  {Name: "Kitt Peak", ShortName: "KPN", LatDeg: 31.9583, LonDeg: -111.5967, HeightM: 2096},
	"northpole": {Name: "North Pole", ShortName: "NPL", LatDeg: 89.9, LonDeg: 0, HeightM: 0},
}

// SiteOrder is the display order of the tracking-complex sites.
var SiteOrder = []string{"goldstone", "canberra", "madrid"}

// SiteByName looks up a built-in site by key, display name or short
// code, ignoring case and spaces.
func SiteByName(name string) (Site, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if s, ok := KnownSites[key]; ok {
		return s, true
	}
	for _, s := range KnownSites {
		if strings.EqualFold(s.Name, name) || strings.EqualFold(s.ShortName, name) {
			return s, true
		}
	}
	return Site{}, false
}

// SiteNames returns the built-in site keys in sorted order.
func SiteNames() []string {
	names := make([]string, 0, len(KnownSites))
	for k := range KnownSites {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate checks the site lies on the globe.
func (s Site) Validate() error {
	if s.LatDeg < -90 || s.LatDeg > 90 {
		return fmt.Errorf("site %q: latitude %.4f out of range", s.Name, s.LatDeg)
	}
	if s.LonDeg < -180 || s.LonDeg > 360 {
		return fmt.Errorf("site %q: longitude %.4f out of range", s.Name, s.LonDeg)
	}
	return nil
}

// Geocentric returns the site's WGS84 geocentric position in metres.
func (s Site) Geocentric() (vm.Vec3, error) {
	return coords.Gd2gc(consts.WGS84, degToRad(s.LonDeg), degToRad(s.LatDeg), s.HeightM)
}

// Observatory packs site, weather and polar motion into the form the
// astrometry package wants.
func Observatory(s Site, w Weather, e EarthParams) astrometry.Observatory {
	return astrometry.Observatory{
		Elong:       degToRad(s.LonDeg),
		Phi:         degToRad(s.LatDeg),
		Height:      s.HeightM,
		Xp:          e.XpArcsec * consts.DAS2R,
		Yp:          e.YpArcsec * consts.DAS2R,
		Pressure:    w.PressureHPa,
		Temperature: w.TemperatureC,
		Humidity:    w.Humidity,
		Wavelength:  w.WavelengthUm,
	}
}

func degToRad(deg float64) float64 {
	return deg * consts.DD2R
}

func radToDeg(rad float64) float64 {
	return rad / consts.DD2R
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
