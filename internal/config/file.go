package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/litescript/ls-sofa/internal/astro"
)

// FileConfig mirrors Config with TOML-friendly types. Durations are
// strings; optional numbers are pointers so zero can be set explicitly.
type FileConfig struct {
	Site       string       `toml:"site"`
	CustomSite *astro.Site  `toml:"custom_site"`
	Weather    *FileWeather `toml:"weather"`
	Earth      *FileEarth   `toml:"earth"`

	Stars  []string `toml:"stars"`
	MaxMag *float64 `toml:"max_mag"`

	EphemMode        string `toml:"ephem_mode"`
	RefreshInterval  string `toml:"refresh_interval"`
	SnapshotInterval string `toml:"snapshot_interval"`

	Listen    string  `toml:"listen"`
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`

	LogLevel string `toml:"log_level"`
}

// FileWeather is the [weather] table.
type FileWeather struct {
	PressureHPa  *float64 `toml:"pressure_hpa"`
	TemperatureC *float64 `toml:"temperature_c"`
	Humidity     *float64 `toml:"humidity"`
	WavelengthUm *float64 `toml:"wavelength_um"`
}

// FileEarth is the [earth] table. A key left out keeps its current value.
type FileEarth struct {
	DUT1     *float64 `toml:"dut1"`
	XpArcsec *float64 `toml:"xp_arcsec"`
	YpArcsec *float64 `toml:"yp_arcsec"`
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultPath returns ~/.ls-sofa/config.toml, or "" if there is no home
// directory.
func DefaultPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".ls-sofa", "config.toml")
	}
	return ""
}

// ApplyFile applies a parsed file to cfg, skipping fields whose flag is
// in changed.
func ApplyFile(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("site", fc.Site, &cfg.SiteName)
	if fc.CustomSite != nil && !changed["site"] {
		site := *fc.CustomSite
		cfg.CustomSite = &site
	}

	if w := fc.Weather; w != nil {
		s.setFloatPtr("pressure", w.PressureHPa, &cfg.Weather.PressureHPa)
		s.setFloatPtr("temperature", w.TemperatureC, &cfg.Weather.TemperatureC)
		s.setFloatPtr("humidity", w.Humidity, &cfg.Weather.Humidity)
		s.setFloatPtr("wavelength", w.WavelengthUm, &cfg.Weather.WavelengthUm)
	}
	if e := fc.Earth; e != nil {
		s.setFloatPtr("dut1", e.DUT1, &cfg.Earth.DUT1)
		s.setFloatPtr("xp", e.XpArcsec, &cfg.Earth.XpArcsec)
		s.setFloatPtr("yp", e.YpArcsec, &cfg.Earth.YpArcsec)
	}

	if len(fc.Stars) > 0 && !changed["stars"] {
		cfg.Stars = append([]string(nil), fc.Stars...)
	}
	s.setFloatPtr("max-mag", fc.MaxMag, &cfg.MaxMag)

	s.setString("ephem-mode", fc.EphemMode, &cfg.EphemMode)
	if err := s.setDuration("refresh", fc.RefreshInterval, &cfg.RefreshInterval); err != nil {
		return err
	}
	if err := s.setDuration("snapshot-interval", fc.SnapshotInterval, &cfg.SnapshotInterval); err != nil {
		return err
	}

	s.setString("listen", fc.Listen, &cfg.Listen)
	s.setFloat("rate-limit", fc.RateLimit, &cfg.RateLimit)
	s.setInt("rate-burst", fc.RateBurst, &cfg.RateBurst)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// Load layers path (if it exists) and the environment over cfg, then
// validates. cfg should already hold defaults and any flag values;
// changed names the flags the user set.
func Load(cfg Config, path string, changed map[string]bool) (Config, error) {
	if path != "" && FileExists(path) {
		fc, err := LoadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := ApplyFile(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg, changed); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
