package config

import "os"

// ApplyEnv applies configuration from LS_SOFA_* environment variables,
// skipping fields whose flag is in changed.
func ApplyEnv(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("site", os.Getenv("LS_SOFA_SITE"), &cfg.SiteName)
	s.setList("stars", os.Getenv("LS_SOFA_STARS"), &cfg.Stars)
	s.setString("ephem-mode", os.Getenv("LS_SOFA_EPHEM_MODE"), &cfg.EphemMode)
	s.setString("listen", os.Getenv("LS_SOFA_LISTEN"), &cfg.Listen)
	s.setString("log-level", os.Getenv("LS_SOFA_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("refresh", os.Getenv("LS_SOFA_REFRESH_INTERVAL"), &cfg.RefreshInterval); err != nil {
		return err
	}
	if err := s.setDuration("snapshot-interval", os.Getenv("LS_SOFA_SNAPSHOT_INTERVAL"), &cfg.SnapshotInterval); err != nil {
		return err
	}

	floats := []struct {
		flag, env string
		dst       *float64
	}{
		{"dut1", "LS_SOFA_DUT1", &cfg.Earth.DUT1},
		{"xp", "LS_SOFA_XP", &cfg.Earth.XpArcsec},
		{"yp", "LS_SOFA_YP", &cfg.Earth.YpArcsec},
		{"pressure", "LS_SOFA_PRESSURE", &cfg.Weather.PressureHPa},
		{"temperature", "LS_SOFA_TEMPERATURE", &cfg.Weather.TemperatureC},
		{"humidity", "LS_SOFA_HUMIDITY", &cfg.Weather.Humidity},
		{"wavelength", "LS_SOFA_WAVELENGTH", &cfg.Weather.WavelengthUm},
		{"max-mag", "LS_SOFA_MAX_MAG", &cfg.MaxMag},
		{"rate-limit", "LS_SOFA_RATE_LIMIT", &cfg.RateLimit},
	}
	for _, f := range floats {
		if err := s.setFloatFromString(f.flag, os.Getenv(f.env), f.dst); err != nil {
			return err
		}
	}

	return s.setIntFromString("rate-burst", os.Getenv("LS_SOFA_RATE_BURST"), &cfg.RateBurst)
}
