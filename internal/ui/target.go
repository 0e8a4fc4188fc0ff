package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/state"
)

// SparklineWidth is the width of the elevation trace in cells.
const SparklineWidth = 48

var sparklineBlocks = []rune("▁▂▃▄▅▆▇█")

// Elevation gradient: low (dark blue) → mid (blue) → high (cyan).
var (
	elevColorLow  = [3]uint8{0x1e, 0x2a, 0x5a}
	elevColorMid  = [3]uint8{0x3b, 0x82, 0xf6}
	elevColorHigh = [3]uint8{0x67, 0xe8, 0xf9}
)

// TargetChangedMsg signals the selected target changed.
type TargetChangedMsg struct {
	Target string
}

// TargetPlan is the pass plan and elevation trace for one target. A
// nil plan with no error means the computation is still running.
type TargetPlan struct {
	Sites []string
	Plan  *astro.PassPlan
	Trace *astro.ElevationTrace
	Err   error
}

// TargetModel shows one watched star in detail with its pass plan.
type TargetModel struct {
	width         int
	height        int
	selected      string
	view          state.View
	catalog       astro.StarCatalog
	plan          TargetPlan
	showPassPanel bool
	animTick      int
}

// NewTargetModel creates a new target model.
func NewTargetModel(cat astro.StarCatalog) TargetModel {
	return TargetModel{
		catalog:       cat,
		showPassPanel: true,
	}
}

// SetSize updates the viewport size.
func (m TargetModel) SetSize(width, height int) TargetModel {
	m.width = width
	m.height = height
	return m
}

// SetAnimTick updates the animation tick for shimmer effects.
func (m TargetModel) SetAnimTick(tick int) TargetModel {
	m.animTick = tick
	return m
}

// UpdateData updates with a new view. The first star is selected when
// nothing is, or when the selected one left the watch list.
func (m TargetModel) UpdateData(v state.View) TargetModel {
	m.view = v
	if v.Snapshot == nil || len(v.Snapshot.Stars) == 0 {
		return m
	}
	if _, ok := v.Snapshot.Star(m.selected); !ok {
		m.selected = v.Snapshot.Stars[0].Name
		m.plan = TargetPlan{}
	}
	return m
}

// Select makes name the current target.
func (m TargetModel) Select(name string) TargetModel {
	if name != m.selected {
		m.selected = name
		m.plan = TargetPlan{}
	}
	return m
}

// Selected returns the current target name.
func (m TargetModel) Selected() string {
	return m.selected
}

// SetPlan attaches a computed plan if it belongs to the current target.
func (m TargetModel) SetPlan(target string, p TargetPlan) TargetModel {
	if target == m.selected {
		m.plan = p
	}
	return m
}

// ShowPassPanel reports whether the pass panel is visible.
func (m TargetModel) ShowPassPanel() bool {
	return m.showPassPanel
}

// Update handles messages.
func (m TargetModel) Update(msg tea.Msg) (TargetModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "[":
			m, cmd = m.step(-1)
		case "right", "]":
			m, cmd = m.step(1)
		case "h":
			m.showPassPanel = !m.showPassPanel
		}
	}
	return m, cmd
}

// step moves the selection by dir through the watch list, wrapping.
func (m TargetModel) step(dir int) (TargetModel, tea.Cmd) {
	snap := m.view.Snapshot
	if snap == nil || len(snap.Stars) == 0 {
		return m, nil
	}
	idx := 0
	for i, s := range snap.Stars {
		if s.Name == m.selected {
			idx = i
			break
		}
	}
	n := len(snap.Stars)
	next := snap.Stars[((idx+dir)%n+n)%n].Name
	if next == m.selected {
		return m, nil
	}
	return m.Select(next), func() tea.Msg { return TargetChangedMsg{Target: next} }
}

// View renders the target detail.
func (m TargetModel) View() string {
	snap := m.view.Snapshot
	if snap == nil {
		return "Waiting for the first snapshot...\n"
	}
	sv, ok := snap.Star(m.selected)
	if !ok {
		return dimStyle.Render("No watched stars") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderSelector())
	b.WriteString("\n\n")
	b.WriteString(m.renderDetails(sv, snap))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Elevation ±2h  "))
	b.WriteString(m.renderElevationSparkline(snap.Time))
	b.WriteString("\n")
	if m.showPassPanel {
		b.WriteString("\n")
		b.WriteString(m.renderPassPanel(snap.Time))
	}
	return b.String()
}

func (m TargetModel) renderSelector() string {
	snap := m.view.Snapshot
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	var parts []string
	for _, s := range snap.Stars {
		if s.Name == m.selected {
			parts = append(parts, activeStyle.Render("◆ "+s.Name))
		} else {
			parts = append(parts, dimStyle.Render(s.Name))
		}
	}
	line := strings.Join(parts, dimStyle.Render(" · "))
	if m.width > 0 && lipgloss.Width(line) > m.width {
		return activeStyle.Render("◆ "+m.selected) + dimStyle.Render(fmt.Sprintf("  (%d watched)", len(snap.Stars)))
	}
	return line
}

func (m TargetModel) renderDetails(sv state.StarView, snap *state.Snapshot) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(rowStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render(sv.Name))
	b.WriteString("\n")

	if cat, ok := m.catalog.Find(sv.Name); ok {
		row("ICRS", fmt.Sprintf("%s %s", astro.FormatHMS(cat.RAdeg, 2), astro.FormatDMS(cat.DecDeg, 1)))
		row("Motion", fmt.Sprintf("%+.2f %+.2f mas/yr  π %.2f mas  RV %+.1f km/s",
			cat.PMRA, cat.PMDec, cat.Parallax, cat.RV))
	}
	row("Magnitude", fmt.Sprintf("%.2f", sv.Mag))
	row("Az / El", fmt.Sprintf("%.3f° / ", sv.AzDeg)+renderElevation(sv.ElDeg))
	row("HA / Dec", fmt.Sprintf("%+.3f° / %s", sv.HADeg, astro.FormatDMS(sv.DecDeg, 1)))
	row("CIRS", fmt.Sprintf("%s %s", astro.FormatHMS(sv.CIRSRADeg, 2), astro.FormatDMS(sv.CIRSDecDeg, 1)))
	row("Apparent RA", astro.FormatHMS(sv.AppRADeg, 2))
	row("Galactic", fmt.Sprintf("l %.4f°  b %+.4f°", sv.Galactic.LonDeg, sv.Galactic.LatDeg))

	sun := fmt.Sprintf("%.1f°", sv.SunSepDeg)
	switch astro.GetSunSeparationTier(sv.SunSepDeg) {
	case astro.SunSepWarning:
		sun = errorStyle.Render(sun + " (too close)")
	case astro.SunSepCaution:
		sun = warningStyle.Render(sun)
	}
	row("Sun sep", sun)

	rise, transit, set := windowColumns(sv.Window)
	row("Rise/Set", fmt.Sprintf("%s  transit %s  set %s UTC", rise, transit, set))
	if sv.Window != nil && sv.Window.Valid {
		row("Culminates", fmt.Sprintf("%.1f°", sv.Window.MaxElevation))
	}

	return b.String()
}

func (m TargetModel) renderElevationSparkline(now time.Time) string {
	if m.plan.Err != nil {
		return dimStyle.Render("Error: " + m.plan.Err.Error())
	}

	trace := m.plan.Trace
	if trace == nil {
		return m.renderShimmerSparkline("Computing elevation trace...")
	}

	samples := resampleElevation(trace.Samples, SparklineWidth)
	if len(samples) == 0 {
		return dimStyle.Render("No samples")
	}

	var sb strings.Builder
	sb.WriteString(labelStyle.Render(trace.Site))
	sb.WriteString(" ")

	for _, elev := range samples {
		if elev < 0 {
			elev = 0
		}
		if elev > 90 {
			elev = 90
		}
		t := elev / 90.0

		blockIdx := int(t * 7.0)
		if blockIdx > 7 {
			blockIdx = 7
		}

		r, g, b := interpolateElevColor(t)
		color := fmt.Sprintf("#%02x%02x%02x", r, g, b)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(sparklineBlocks[blockIdx])))
	}

	if current := trace.CurrentElevation(now); current != nil {
		nowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
		sb.WriteString(nowStyle.Render(fmt.Sprintf(" now: %.0f°", current.ElDeg)))
	}

	return sb.String()
}

// renderShimmerSparkline renders a loading animation sparkline.
func (m TargetModel) renderShimmerSparkline(msg string) string {
	var sb strings.Builder

	offset := m.animTick % SparklineWidth
	for i := 0; i < SparklineWidth; i++ {
		dist := (i - offset + SparklineWidth) % SparklineWidth
		gray := 60
		if dist < 8 {
			gray = 60 + dist*8
		}
		color := fmt.Sprintf("#%02x%02x%02x", gray, gray, gray)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("▄"))
	}

	sb.WriteString(" ")
	sb.WriteString(dimStyle.Render(msg))

	return sb.String()
}

// interpolateElevColor returns RGB color for elevation value t in [0, 1].
func interpolateElevColor(t float64) (uint8, uint8, uint8) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	from, to, s := elevColorLow, elevColorMid, t*2
	if t >= 0.5 {
		from, to, s = elevColorMid, elevColorHigh, (t-0.5)*2
	}
	mix := func(i int) uint8 {
		return uint8(float64(from[i])*(1-s) + float64(to[i])*s)
	}
	return mix(0), mix(1), mix(2)
}

// resampleElevation averages samples into width buckets.
func resampleElevation(samples []astro.ElevationSample, width int) []float64 {
	if len(samples) == 0 || width <= 0 {
		return nil
	}

	result := make([]float64, width)
	perBucket := float64(len(samples)) / float64(width)

	for i := 0; i < width; i++ {
		startIdx := min(int(float64(i)*perBucket), len(samples)-1)
		endIdx := max(min(int(float64(i+1)*perBucket), len(samples)), startIdx+1)

		sum := 0.0
		for j := startIdx; j < endIdx; j++ {
			sum += samples[j].ElDeg
		}
		if n := endIdx - startIdx; n > 0 {
			result[i] = sum / float64(n)
		}
	}

	return result
}

func (m TargetModel) renderPassPanel(now time.Time) string {
	var b strings.Builder

	nowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	nextStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	b.WriteString(titleStyle.Render(fmt.Sprintf("PASSES  %s (next 24h, above %.0f°)", m.selected, astro.MinPassElevation)))
	b.WriteString("\n")

	plan := m.plan.Plan
	if plan == nil {
		if m.plan.Err != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %v", m.plan.Err)))
		} else {
			b.WriteString("  ")
			b.WriteString(m.renderShimmerText("Computing pass schedule..."))
		}
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(labelStyle.Render("  SITE            START   PEAK    END     MAX EL  SUN SEP  STATUS"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 64)))
	b.WriteString("\n")

	for _, site := range m.plan.Sites {
		passes := plan.PassesForSite(site)
		if len(passes) == 0 {
			b.WriteString(fmt.Sprintf("  %-14s  ", truncate(site, 14)))
			b.WriteString(dimStyle.Render("-- no passes --"))
			b.WriteString("\n")
			continue
		}
		for i, p := range passes {
			name := ""
			if i == 0 {
				name = truncate(site, 14)
			}
			line := fmt.Sprintf("  %-14s  %s   %s   %s   %5.1f°  ",
				name, clock(p.Start), clock(p.Peak), clock(p.End), p.MaxElDeg)
			b.WriteString(rowStyle.Render(line))

			sunStr := fmt.Sprintf("%6.0f°  ", p.SunMinSep)
			if p.SunMinSep < 10 {
				b.WriteString(warningStyle.Render(sunStr))
			} else {
				b.WriteString(rowStyle.Render(sunStr))
			}

			switch p.Status {
			case astro.PassNow:
				b.WriteString(nowStyle.Render("NOW"))
			case astro.PassNext:
				b.WriteString(nextStyle.Render("NEXT"))
			case astro.PassPast:
				b.WriteString(dimStyle.Render("PAST"))
			default:
				b.WriteString(dimStyle.Render("-"))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if current := plan.CurrentPass(); current != nil {
		b.WriteString(nowStyle.Render(fmt.Sprintf("  ▶ Up at %s, pass ends in %s",
			current.Site, formatDuration(current.End.Sub(now)))))
		b.WriteString("\n")
	}
	if next := plan.NextPass(); next != nil {
		b.WriteString(nextStyle.Render(fmt.Sprintf("  ▷ Next: %s in %s",
			next.Site, formatDuration(next.Start.Sub(now)))))
		b.WriteString("\n")
	}

	return b.String()
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < 0 {
		return "now"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m TargetModel) renderShimmerText(text string) string {
	return shimmer(text, m.animTick)
}
