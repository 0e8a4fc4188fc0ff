package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/state"
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
)

// Styles shared by the views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// DashboardModel shows the clock: every time scale, the sidereal
// times, the solar-system bodies and the recent event log.
type DashboardModel struct {
	width  int
	height int
	view   state.View
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// Init implements the Bubble Tea model interface.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DashboardModel) UpdateData(v state.View) DashboardModel {
	m.view = v
	return m
}

// Update handles messages. The dashboard has no interactive state.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	if m.view.LastError != nil {
		b.WriteString(errorStyle.Render("Error: " + m.view.LastError.Error()))
		b.WriteString("\n\n")
	}

	snap := m.view.Snapshot
	if snap == nil {
		if m.view.LastError == nil {
			b.WriteString("Waiting for the first snapshot...\n")
		}
		return b.String()
	}

	b.WriteString(m.renderSite(snap))
	b.WriteString("\n")
	b.WriteString(m.renderScales(snap))
	b.WriteString("\n")
	b.WriteString(m.renderSidereal(snap))
	b.WriteString("\n")
	b.WriteString(m.renderBodies(snap))
	if len(snap.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range snap.Warnings {
			b.WriteString(warningStyle.Render("  ! " + w))
			b.WriteString("\n")
		}
	}
	if len(m.view.Events) > 0 && m.height > 30 {
		b.WriteString("\n")
		b.WriteString(m.renderEvents())
	}

	return b.String()
}

func (m DashboardModel) renderSite(snap *state.Snapshot) string {
	s := snap.Site
	w := snap.Weather
	line := fmt.Sprintf("%s  %s %s  %.0fm", s.Name,
		astro.FormatDMS(s.LatDeg, 0), astro.FormatDMS(s.LonDeg, 0), s.HeightM)
	wx := fmt.Sprintf("  %.1f hPa  %.1f°C  RH %.0f%%  λ %.2fµm",
		w.PressureHPa, w.TemperatureC, w.Humidity*100, w.WavelengthUm)
	if w.PressureHPa == 0 {
		wx = "  refraction off"
	}
	return titleStyle.Render(line) + dimStyle.Render(wx) + "\n"
}

func (m DashboardModel) renderScales(snap *state.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Time Scales"))
	b.WriteString("\n")

	sc := snap.Scales
	for _, name := range astro.ScaleNames {
		jd := scaleJD(sc, name)
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			labelStyle.Render(fmt.Sprintf("%-4s", name)),
			rowStyle.Render(sc.FormatScale(name, 3)),
			dimStyle.Render(fmt.Sprintf("JD %.6f", jd.Float()))))
	}
	offsets := fmt.Sprintf("  ΔAT %+.0fs  DUT1 %+.4fs  ΔT %.3fs  TDB-TT %+.6fs",
		sc.DeltaAT, sc.DUT1, sc.DeltaT, sc.TDBmTT)
	b.WriteString(dimStyle.Render(offsets))
	b.WriteString("\n")
	if sc.Warning != nil {
		b.WriteString(warningStyle.Render("  ! " + sc.Warning.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func scaleJD(sc astro.Scales, name string) astro.JD {
	switch name {
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
	default:
		return sc.UTC
	}
}

func (m DashboardModel) renderSidereal(snap *state.Snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Earth Rotation"))
	b.WriteString("\n")

	st := snap.Sidereal
	row := func(label string, rad float64) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-5s", label)),
			rowStyle.Render(astro.FormatHMS(rad*consts.DR2D, 3))))
	}
	row("ERA", st.ERA)
	row("GMST", st.GMST)
	row("GAST", st.GAST)
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("EO   "),
		rowStyle.Render(fmt.Sprintf("%+.4f\"", st.EO*consts.DR2AS))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render("LAST "),
		selectedRowStyle.Render(astro.FormatHMS(snap.LASTDeg, 3))))
	return b.String()
}

func (m DashboardModel) renderBodies(snap *state.Snapshot) string {
	var b strings.Builder

	title := "Solar System"
	if snap.Twilight != "" {
		title += "  " + dimStyle.Render("("+snap.Twilight+")")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	header := fmt.Sprintf("%-8s %7s %7s %-13s %-14s %-10s %s",
		"Body", "Az", "El", "RA", "Dec", "Dist", "Light")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(snap.Bodies) == 0 {
		b.WriteString("  No ephemeris\n")
		return b.String()
	}

	for _, body := range snap.Bodies {
		obs := body.Observed
		row := fmt.Sprintf("%-8s %6.1f° %s %-13s %-14s %-10s %s",
			body.Body,
			obs.AzDeg,
			renderElevation(obs.ElDeg),
			astro.FormatHMS(body.RADeg, 1),
			astro.FormatDMS(body.DecDeg, 0),
			formatDistance(body.DistAU),
			astro.FormatLightTime(body.LightTime))
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) renderEvents() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recent Events"))
	b.WriteString("\n")

	events := m.view.Events
	if n := 5; len(events) > n {
		events = events[len(events)-n:]
	}
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		line := fmt.Sprintf("  %s %-8s %s", e.Timestamp.UTC().Format("15:04:05"), e.Type, e.Target)
		if e.Detail != "" {
			line += " " + e.Detail
		}
		b.WriteString(dimStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderElevation renders a 7-wide elevation colored by tier.
func renderElevation(el float64) string {
	s := fmt.Sprintf("%6.1f°", el)
	var style lipgloss.Style
	switch astro.GetElevationTier(el) {
	case astro.ElevationHigh:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("46")) // green
	case astro.ElevationMedium:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("226")) // yellow
	case astro.ElevationLow:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // orange
	default:
		style = dimStyle
	}
	return style.Render(s)
}

// formatDistance picks km for the Moon and au for everything further.
func formatDistance(au float64) string {
	if au <= 0 {
		return "-"
	}
	if au < 0.01 {
		return fmt.Sprintf("%.0f km", au*consts.DAU/1000)
	}
	return fmt.Sprintf("%.5f au", au)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
