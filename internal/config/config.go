// Package config loads ls-sofa settings from defaults, a TOML file,
// LS_SOFA_* environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/ephem"
)

// ErrUnknownSite is returned when the site name is not built in and no
// custom site is given.
var ErrUnknownSite = errors.New("unknown site")

// Config is the resolved application configuration.
type Config struct {
	// SiteName selects a built-in site. CustomSite, when set, wins.
	SiteName   string
	CustomSite *astro.Site

	Weather astro.Weather
	Earth   astro.EarthParams

	// Stars is the watch list; empty means every catalog star at or
	// brighter than MaxMag.
	Stars  []string
	MaxMag float64

	EphemMode string

	RefreshInterval  time.Duration
	SnapshotInterval time.Duration

	Listen    string
	RateLimit float64 // requests per second per client
	RateBurst int

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		SiteName:         "goldstone",
		Weather:          astro.StandardWeather,
		MaxMag:           2.0,
		EphemMode:        ephem.ModeApparent.String(),
		RefreshInterval:  time.Second,
		SnapshotInterval: 5 * time.Second,
		Listen:           "127.0.0.1:8080",
		RateLimit:        10,
		RateBurst:        20,
		LogLevel:         "info",
	}
}

// Site returns the observing site the config selects.
func (c *Config) Site() (astro.Site, error) {
	if c.CustomSite != nil {
		return *c.CustomSite, nil
	}
	s, ok := astro.SiteByName(c.SiteName)
	if !ok {
		return astro.Site{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownSite, c.SiteName, strings.Join(astro.SiteNames(), ", "))
	}
	return s, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	site, err := c.Site()
	if err != nil {
		return err
	}
	if err := site.Validate(); err != nil {
		return err
	}

	if c.Weather.PressureHPa < 0 || c.Weather.PressureHPa > 1100 {
		return fmt.Errorf("pressure %v hPa out of range 0-1100", c.Weather.PressureHPa)
	}
	if c.Weather.Humidity < 0 || c.Weather.Humidity > 1 {
		return fmt.Errorf("humidity %v out of range 0-1", c.Weather.Humidity)
	}
	if c.Weather.WavelengthUm <= 0 {
		return fmt.Errorf("wavelength must be positive")
	}
	if c.Earth.DUT1 < -1 || c.Earth.DUT1 > 1 {
		return fmt.Errorf("dut1 %v s outside -1..1", c.Earth.DUT1)
	}

	switch c.EphemMode {
	case ephem.ModeApparent.String(), ephem.ModeGeometric.String():
	default:
		return fmt.Errorf("ephem mode %q must be apparent or geometric", c.EphemMode)
	}

	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}
	if c.SnapshotInterval <= 0 {
		return fmt.Errorf("snapshot interval must be positive")
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// WatchList resolves the stars to observe from the catalog.
func (c *Config) WatchList(cat astro.StarCatalog) ([]astro.Star, error) {
	if len(c.Stars) == 0 {
		return cat.Brighter(c.MaxMag), nil
	}
	stars := make([]astro.Star, 0, len(c.Stars))
	for _, name := range c.Stars {
		s, ok := cat.Find(name)
		if !ok {
			return nil, fmt.Errorf("star %q not in catalog", name)
		}
		stars = append(stars, s)
	}
	return stars, nil
}

// configSetter applies values while respecting flag precedence: a value
// is only applied if the matching flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a positive float64.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setFloatPtr sets any float64, including zero and negatives.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

func (s *configSetter) setList(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	*dst = out
}
