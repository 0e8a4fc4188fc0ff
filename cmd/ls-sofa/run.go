package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/config"
	"github.com/litescript/ls-sofa/internal/ephem"
	"github.com/litescript/ls-sofa/internal/logging"
	"github.com/litescript/ls-sofa/internal/metrics"
	"github.com/litescript/ls-sofa/internal/server"
	"github.com/litescript/ls-sofa/internal/state"
	"github.com/litescript/ls-sofa/internal/ui"
)

// pipeline is the engine and manager shared by the long-running modes.
type pipeline struct {
	engine  *state.Engine
	state   *state.Manager
	catalog astro.StarCatalog
	metrics *metrics.Collector
	log     *logging.Logger
}

func newPipeline(cfg config.Config, log *logging.Logger) (*pipeline, error) {
	cat := astro.DefaultStarCatalog()
	provider := ephem.NewSofaProvider(ephem.ParseMode(cfg.EphemMode))

	engine, err := state.NewEngine(cfg, cat, provider)
	if err != nil {
		return nil, err
	}

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = cfg.RefreshInterval
	mgr := state.NewManager(stateCfg)
	mgr.SetAppConfig(cfg)

	return &pipeline{engine: engine, state: mgr, catalog: cat, log: log}, nil
}

// computeOnce builds one snapshot and publishes it.
func (p *pipeline) computeOnce(ctx context.Context) (*state.Snapshot, error) {
	start := time.Now()
	snap, err := p.engine.Compute(ctx)
	dur := time.Since(start)

	p.state.Update(snap, dur, err)
	if p.metrics != nil {
		p.metrics.RecordSnapshot(dur, visibleCount(snap), err)
	}
	if err != nil {
		p.log.Error("compute failed: %v", err)
		return nil, err
	}
	p.log.Debug("snapshot: %d stars, %d bodies in %.1fms", len(snap.Stars), len(snap.Bodies), float64(dur.Microseconds())/1000)
	for _, w := range snap.Warnings {
		p.log.Warn("%s", w)
	}
	return snap, nil
}

// computeLoop recomputes every refresh interval until ctx is done,
// calling notify after each attempt. A changed interval takes effect on
// the next tick.
func (p *pipeline) computeLoop(ctx context.Context, notify func(*state.Snapshot, error)) {
	snap, err := p.computeOnce(ctx)
	if notify != nil {
		notify(snap, err)
	}

	interval := p.state.RefreshInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug("compute loop shutting down")
			return
		case <-ticker.C:
			snap, err := p.computeOnce(ctx)
			if notify != nil {
				notify(snap, err)
			}
			if d := p.state.RefreshInterval(); d != interval {
				interval = d
				ticker.Reset(interval)
			}
		}
	}
}

// reconfigure applies a reloaded config file.
func (p *pipeline) reconfigure(cfg config.Config) {
	cfg.RefreshInterval = clampRefresh(cfg.RefreshInterval)
	if err := p.engine.Reconfigure(cfg); err != nil {
		p.log.Error("config reload rejected: %v", err)
		return
	}
	p.state.SetAppConfig(cfg)
	p.log.SetLevel(logging.ParseLevel(cfg.LogLevel))
	p.log.Info("config reloaded: site %s, %d stars listed", cfg.SiteName, len(cfg.Stars))
}

// watchConfig reloads the config file until ctx is done. Missing files
// are not watched.
func (p *pipeline) watchConfig(ctx context.Context, a *app) {
	if a.cfgPath == "" || !config.FileExists(a.cfgPath) {
		return
	}
	w := config.NewWatcher(a.cfgPath, flagBase(a), a.changed, p.reconfigure, p.log.With("component", "config"))
	if err := w.Run(ctx); err != nil {
		p.log.Warn("config watcher stopped: %v", err)
	}
}

// flagBase is the config reloads start from: defaults with the flags the
// user set, so a reload never resurrects a value from the old file.
func flagBase(a *app) config.Config {
	base := config.DefaultConfig()
	c := a.cfg
	for name := range a.changed {
		switch name {
		case "site":
			base.SiteName = c.SiteName
		case "pressure":
			base.Weather.PressureHPa = c.Weather.PressureHPa
		case "temperature":
			base.Weather.TemperatureC = c.Weather.TemperatureC
		case "humidity":
			base.Weather.Humidity = c.Weather.Humidity
		case "wavelength":
			base.Weather.WavelengthUm = c.Weather.WavelengthUm
		case "dut1":
			base.Earth.DUT1 = c.Earth.DUT1
		case "xp":
			base.Earth.XpArcsec = c.Earth.XpArcsec
		case "yp":
			base.Earth.YpArcsec = c.Earth.YpArcsec
		case "stars":
			base.Stars = c.Stars
		case "max-mag":
			base.MaxMag = c.MaxMag
		case "ephem-mode":
			base.EphemMode = c.EphemMode
		case "refresh":
			base.RefreshInterval = c.RefreshInterval
		case "snapshot-interval":
			base.SnapshotInterval = c.SnapshotInterval
		case "listen":
			base.Listen = c.Listen
		case "rate-limit":
			base.RateLimit = c.RateLimit
		case "rate-burst":
			base.RateBurst = c.RateBurst
		case "log-level":
			base.LogLevel = c.LogLevel
		}
	}
	return base
}

func visibleCount(snap *state.Snapshot) int {
	if snap == nil {
		return 0
	}
	n := 0
	for _, s := range snap.Stars {
		if s.ElDeg > 0 {
			n++
		}
	}
	return n
}

// runTUI starts the dashboard, or falls back to a one-shot summary when
// stdout is not a terminal.
func runTUI(ctx context.Context, a *app) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runNow(ctx, a, nowOptions{})
	}

	ctx, cancel := signalContext(ctx)
	defer cancel()

	// The alternate screen owns the terminal.
	a.log.SetOutput(io.Discard)

	p, err := newPipeline(a.cfg, a.log)
	if err != nil {
		return err
	}

	model := ui.New(p.state, p.catalog)
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	go p.computeLoop(ctx, func(_ *state.Snapshot, err error) {
		if err != nil {
			prog.Send(ui.ErrorMsg{Error: err})
			return
		}
		prog.Send(ui.DataUpdateMsg{View: p.state.View()})
	})
	go p.watchConfig(ctx, a)

	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve snapshots over HTTP and websocket with Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	ctx, cancel := signalContext(ctx)
	defer cancel()

	p, err := newPipeline(a.cfg, a.log)
	if err != nil {
		return err
	}
	p.metrics = metrics.NewCollector()

	srvCfg := server.DefaultConfig()
	srvCfg.Listen = a.cfg.Listen
	srvCfg.RateLimit = a.cfg.RateLimit
	srvCfg.RateBurst = a.cfg.RateBurst
	srv := server.New(srvCfg, p.state, p.catalog, p.metrics, a.log.With("component", "server"))

	a.log.Info("ls-sofa serve: site %s, refresh %s", p.engine.Site().Name, a.cfg.RefreshInterval)

	go p.computeLoop(ctx, nil)
	go p.watchConfig(ctx, a)

	return srv.ListenAndServe(ctx)
}
