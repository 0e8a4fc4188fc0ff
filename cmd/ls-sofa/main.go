package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/litescript/ls-sofa/internal/config"
	"github.com/litescript/ls-sofa/internal/logging"
	"github.com/litescript/ls-sofa/internal/version"
)

const (
	minRefresh = 250 * time.Millisecond
	maxRefresh = 5 * time.Minute
)

var longHelp = strings.TrimSpace(`
Fundamental astronomy at the terminal: time scales, sidereal time and the
observed places of bright stars, the Sun, the Moon and the planets for
any site.

Settings come from ~/.ls-sofa/config.toml, LS_SOFA_* environment
variables and flags, later sources winning.
`)

var exampleUsage = strings.TrimSpace(`
  ls-sofa --site paranal
  ls-sofa now --json
  ls-sofa observe Vega --site lapalma
  ls-sofa convert --time 2024-07-15T04:00:00Z --ra 279.2347 --dec 38.7837
  ls-sofa serve --listen :8080
`)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg     config.Config
	cfgPath string
	changed map[string]bool
	log     *logging.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.DefaultConfig()}

	root := &cobra.Command{
		Use:           "ls-sofa",
		Short:         "Observed places and time scales in the terminal",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", version.Version, runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), a)
		},
	}
	bindFlags(root.PersistentFlags(), a)

	root.AddCommand(
		newNowCmd(a),
		newObserveCmd(a),
		newConvertCmd(a),
		newServeCmd(a),
	)
	return root
}

// bindFlags points the persistent flags straight at the config. Load
// later layers the file and environment over the defaults, skipping any
// field whose flag was set.
func bindFlags(fs *pflag.FlagSet, a *app) {
	c := &a.cfg
	fs.StringVar(&a.cfgPath, "config", "", "config file (default ~/.ls-sofa/config.toml)")

	fs.StringVar(&c.SiteName, "site", c.SiteName, "observing site name")
	fs.Float64Var(&c.Weather.PressureHPa, "pressure", c.Weather.PressureHPa, "air pressure in hPa, 0 disables refraction")
	fs.Float64Var(&c.Weather.TemperatureC, "temperature", c.Weather.TemperatureC, "air temperature in deg C")
	fs.Float64Var(&c.Weather.Humidity, "humidity", c.Weather.Humidity, "relative humidity 0-1")
	fs.Float64Var(&c.Weather.WavelengthUm, "wavelength", c.Weather.WavelengthUm, "observing wavelength in microns")
	fs.Float64Var(&c.Earth.DUT1, "dut1", c.Earth.DUT1, "UT1-UTC in seconds")
	fs.Float64Var(&c.Earth.XpArcsec, "xp", c.Earth.XpArcsec, "polar motion x in arcsec")
	fs.Float64Var(&c.Earth.YpArcsec, "yp", c.Earth.YpArcsec, "polar motion y in arcsec")

	fs.StringSliceVar(&c.Stars, "stars", c.Stars, "comma-separated watch list (default: catalog stars brighter than --max-mag)")
	fs.Float64Var(&c.MaxMag, "max-mag", c.MaxMag, "faintest catalog magnitude for the default watch list")
	fs.StringVar(&c.EphemMode, "ephem-mode", c.EphemMode, "solar-system body corrections: apparent or geometric")

	fs.DurationVar(&c.RefreshInterval, "refresh", c.RefreshInterval, "recompute interval")
	fs.DurationVar(&c.SnapshotInterval, "snapshot-interval", c.SnapshotInterval, "headless --watch interval")

	fs.StringVar(&c.Listen, "listen", c.Listen, "serve: listen address")
	fs.Float64Var(&c.RateLimit, "rate-limit", c.RateLimit, "serve: requests per second per client")
	fs.IntVar(&c.RateBurst, "rate-burst", c.RateBurst, "serve: burst size per client")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// load resolves the final config and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	a.changed = map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { a.changed[f.Name] = true })

	if a.cfgPath == "" {
		a.cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(a.cfg, a.cfgPath, a.changed)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.RefreshInterval = clampRefresh(cfg.RefreshInterval)
	a.cfg = cfg

	a.log = logging.New(logging.ParseLevel(cfg.LogLevel))
	zl := a.log.Zerolog()
	zl.Debug().
		Str("site", cfg.SiteName).
		Strs("stars", cfg.Stars).
		Dur("refresh", cfg.RefreshInterval).
		Str("config", a.cfgPath).
		Msg("configuration")
	return nil
}

func clampRefresh(d time.Duration) time.Duration {
	return min(max(d, minRefresh), maxRefresh)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
