package state

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
)

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	Name string
	Az   string
	El   string
	HA   string
	Rise string
	Set  string
	Mag  string
	Tier astro.ElevationTier
}

// GenerateSummaryRows creates summary rows for stars and bodies, highest
// first.
func GenerateSummaryRows(s *Snapshot) []SummaryRow {
	if s == nil {
		return nil
	}

	type placed struct {
		pos    astro.Position
		window *astro.VisibilityWindow
		mag    string
	}
	var all []placed
	for _, v := range s.Bodies {
		all = append(all, placed{pos: v.Observed, mag: "-"})
	}
	for _, v := range s.Stars {
		all = append(all, placed{pos: v.Position, window: v.Window, mag: fmt.Sprintf("%.2f", v.Mag)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].pos.ElDeg > all[j].pos.ElDeg })

	rows := make([]SummaryRow, 0, len(all))
	for _, p := range all {
		rise, set := windowTimes(p.window)
		rows = append(rows, SummaryRow{
			Name: p.pos.Name,
			Az:   fmt.Sprintf("%6.2f", p.pos.AzDeg),
			El:   fmt.Sprintf("%+6.2f", p.pos.ElDeg),
			HA:   fmt.Sprintf("%+7.2f", p.pos.HADeg),
			Rise: rise,
			Set:  set,
			Mag:  p.mag,
			Tier: astro.GetElevationTier(p.pos.ElDeg),
		})
	}
	return rows
}

func windowTimes(w *astro.VisibilityWindow) (rise, set string) {
	switch {
	case w == nil || !w.Valid:
		return "-", "-"
	case w.AlwaysVisible:
		return "circumpolar", ""
	case w.NeverVisible:
		return "never up", ""
	}
	rise, set = "-", "-"
	if !w.Rise.IsZero() {
		rise = w.Rise.UTC().Format("15:04")
	}
	if !w.Set.IsZero() {
		set = w.Set.UTC().Format("15:04")
	}
	return rise, set
}

// WriteSummaryTable writes a text table to the given writer.
func WriteSummaryTable(w io.Writer, s *Snapshot) {
	if s == nil {
		fmt.Fprintln(w, "No data")
		return
	}

	fmt.Fprintf(w, "Sky @ %s  %s\n", s.Site.Name, s.Time.UTC().Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, name := range astro.ScaleNames {
		fmt.Fprintf(w, "%-4s %s\n", name, s.Scales.FormatScale(name, 3))
	}
	fmt.Fprintf(w, "LAST %s", astro.FormatHMS(s.LASTDeg, 1))
	if s.Twilight != "" {
		fmt.Fprintf(w, "   (%s)", s.Twilight)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 72))

	rows := GenerateSummaryRows(s)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No targets")
		return
	}

	fmt.Fprintf(w, "%-12s %7s %7s %8s %-11s %-6s %5s\n", "Target", "Az", "El", "HA", "Rise", "Set", "Mag")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %7s %7s %8s %-11s %-6s %5s\n",
			truncateStr(r.Name, 12), r.Az, r.El, r.HA, r.Rise, r.Set, r.Mag)
	}

	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
