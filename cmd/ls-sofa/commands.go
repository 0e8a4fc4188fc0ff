package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/state"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

type nowOptions struct {
	json  bool
	out   string
	watch bool
}

func newNowCmd(a *app) *cobra.Command {
	var opts nowOptions
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current sky once (or every --snapshot-interval with --watch)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(cmd.Context(), a, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the snapshot as JSON")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "repeat every snapshot interval")
	return cmd
}

func runNow(ctx context.Context, a *app, opts nowOptions) error {
	ctx, cancel := signalContext(ctx)
	defer cancel()

	p, err := newPipeline(a.cfg, a.log)
	if err != nil {
		return err
	}

	outputOnce := func() error {
		snap, err := p.computeOnce(ctx)
		if err != nil {
			return err
		}
		return writeSnapshot(snap, opts)
	}

	if !opts.watch {
		return outputOnce()
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(a.cfg.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !opts.json {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

func writeSnapshot(snap *state.Snapshot, opts nowOptions) error {
	var w io.Writer = os.Stdout
	if opts.out != "" && opts.out != "-" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create snapshot file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if opts.json {
		if err := snap.WriteJSON(w); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		return nil
	}
	state.WriteSummaryTable(w, snap)
	return nil
}

func newObserveCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "observe <star>",
		Short: "Show one catalog star's observed place and its passes over the next day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(at, time.Now())
			if err != nil {
				return err
			}
			return observeStar(cmd.OutOrStdout(), a, args[0], t)
		},
	}
	cmd.Flags().StringVarP(&at, "time", "t", "now", "UTC instant: RFC 3339, 2006-01-02 15:04:05, JD<n> or MJD<n>")
	return cmd
}

func observeStar(w io.Writer, a *app, name string, t time.Time) error {
	star, ok := astro.DefaultStarCatalog().Find(name)
	if !ok {
		return fmt.Errorf("star %q not in catalog", name)
	}
	site, err := a.cfg.Site()
	if err != nil {
		return err
	}

	obs, err := astro.NewObserver(site, a.cfg.Weather, a.cfg.Earth, t)
	if err != nil {
		return err
	}
	if obs.Warning != nil {
		a.log.Warn("%v", obs.Warning)
	}
	pos := obs.Observe(star)
	gal := astro.Galactic(star.RAdeg, star.DecDeg)

	fmt.Fprintf(w, "%s from %s at %s\n", star.Name, site.Name, t.UTC().Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "ICRS      %s %s  mag %.2f\n", astro.FormatHMS(star.RAdeg, 2), astro.FormatDMS(star.DecDeg, 1), star.Mag)
	fmt.Fprintf(w, "CIRS      %s %s\n", astro.FormatHMS(pos.CIRSRADeg, 2), astro.FormatDMS(pos.CIRSDecDeg, 1))
	fmt.Fprintf(w, "Apparent  %s (equinox)\n", astro.FormatHMS(pos.AppRADeg, 2))
	fmt.Fprintf(w, "Observed  Az %7.3f°  El %+7.3f°  ZD %7.3f°\n", pos.AzDeg, pos.ElDeg, pos.ZdDeg)
	fmt.Fprintf(w, "          HA %+8.3f°  Dec %+7.3f°\n", pos.HADeg, pos.DecDeg)
	fmt.Fprintf(w, "Galactic  l %7.3f°  b %+7.3f°\n", gal.LonDeg, gal.LatDeg)
	fmt.Fprintf(w, "Sun sep   %.1f° (%s)\n", pos.SunSepDeg, astro.GetSunSeparationTier(pos.SunSepDeg))

	plan, err := astro.PlanStar(star, []astro.Site{site}, a.cfg.Weather, a.cfg.Earth, t)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "Passes above %.0f° in the next %s\n", astro.MinPassElevation, astro.PassWindowDuration)
	if len(plan.Passes) == 0 {
		fmt.Fprintln(w, "  none")
		return nil
	}
	for _, p := range plan.Passes {
		fmt.Fprintf(w, "  %-6s %s - %s  peak %5.1f° at %s\n",
			p.Status, clock(p.Start), clock(p.End), p.MaxElDeg, clock(p.Peak))
	}
	return nil
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.UTC().Format("15:04")
}

type convertOptions struct {
	at         string
	ra, dec    float64
	glon, glat float64
	elon, elat float64
	ndp        int
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Express an instant in every time scale and convert a sky position between frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(opts.at, time.Now())
			if err != nil {
				return err
			}
			return convert(cmd.OutOrStdout(), a, opts, cmd.Flags().Changed, t)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.at, "time", "t", "now", "UTC instant: RFC 3339, 2006-01-02 15:04:05, JD<n> or MJD<n>")
	f.Float64Var(&opts.ra, "ra", 0, "ICRS right ascension in degrees")
	f.Float64Var(&opts.dec, "dec", 0, "ICRS declination in degrees")
	f.Float64Var(&opts.glon, "glon", 0, "galactic longitude in degrees")
	f.Float64Var(&opts.glat, "glat", 0, "galactic latitude in degrees")
	f.Float64Var(&opts.elon, "elon", 0, "ecliptic longitude of date in degrees")
	f.Float64Var(&opts.elat, "elat", 0, "ecliptic latitude of date in degrees")
	f.IntVar(&opts.ndp, "ndp", 3, "decimal places of a second")
	return cmd
}

// convert prints the time scales at t and, when a position flag pair is
// given, the position in ICRS, galactic and ecliptic frames.
func convert(w io.Writer, a *app, opts convertOptions, changed func(string) bool, t time.Time) error {
	sc, err := astro.TimeScales(t, a.cfg.Earth.DUT1)
	if err != nil {
		return err
	}
	if sc.Warning != nil {
		a.log.Warn("%v", sc.Warning)
	}

	for _, name := range astro.ScaleNames {
		fmt.Fprintf(w, "%-4s %s  JD %.8f\n", name, sc.FormatScale(name, opts.ndp), scaleJD(sc, name).Float())
	}
	fmt.Fprintf(w, "ΔAT %+.0fs  DUT1 %+.4fs  ΔT %+.3fs  TDB-TT %+.6fs\n", sc.DeltaAT, sc.DUT1, sc.DeltaT, sc.TDBmTT)

	st := astro.Sidereal(sc)
	fmt.Fprintf(w, "ERA  %s  GMST %s  GAST %s\n",
		astro.FormatHMS(st.ERA*consts.DR2D, opts.ndp),
		astro.FormatHMS(st.GMST*consts.DR2D, opts.ndp),
		astro.FormatHMS(st.GAST*consts.DR2D, opts.ndp))

	var icrs astro.SkyCoord
	switch {
	case changed("ra") || changed("dec"):
		icrs = astro.SkyCoord{LonDeg: opts.ra, LatDeg: opts.dec}
	case changed("glon") || changed("glat"):
		icrs = astro.FromGalactic(opts.glon, opts.glat)
	case changed("elon") || changed("elat"):
		icrs = astro.FromEcliptic(sc.TT, opts.elon, opts.elat)
	default:
		return nil
	}
	if icrs.LatDeg < -90 || icrs.LatDeg > 90 {
		return fmt.Errorf("latitude %v° outside ±90°", icrs.LatDeg)
	}

	gal := astro.Galactic(icrs.LonDeg, icrs.LatDeg)
	ecl := astro.Ecliptic(sc.TT, icrs.LonDeg, icrs.LatDeg)
	fmt.Fprintf(w, "ICRS      RA %s  Dec %s\n", astro.FormatHMS(icrs.LonDeg, 2), astro.FormatDMS(icrs.LatDeg, 1))
	fmt.Fprintf(w, "Galactic  l %9.5f°  b %+9.5f°\n", gal.LonDeg, gal.LatDeg)
	fmt.Fprintf(w, "Ecliptic  λ %9.5f°  β %+9.5f°\n", ecl.LonDeg, ecl.LatDeg)
	return nil
}

func scaleJD(sc astro.Scales, name string) astro.JD {
	switch name {
	case "UTC":
		return sc.UTC
	case "UT1":
		return sc.UT1
	case "TAI":
		return sc.TAI
	case "TT":
		return sc.TT
	case "TDB":
		return sc.TDB
	case "TCG":
		return sc.TCG
	case "TCB":
		return sc.TCB
	}
	return astro.JD{}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime reads a UTC instant. "" and "now" give now; JD and MJD
// prefixes take a UTC quasi Julian Date.
func parseTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "now") {
		return now.UTC(), nil
	}

	upper := strings.ToUpper(s)
	for _, p := range []struct {
		prefix string
		d1     float64
	}{{"MJD", consts.DJM0}, {"JD", 0}} {
		rest, ok := strings.CutPrefix(upper, p.prefix)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
		}
		return astro.TimeOf(astro.JD{D1: p.d1, D2: v})
	}

	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse time %q: not RFC 3339, a date, JD<n> or MJD<n>", s)
}
