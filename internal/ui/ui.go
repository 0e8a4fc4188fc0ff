// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/state"
	"github.com/litescript/ls-sofa/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewStars
	ViewTarget
	ViewSky
)

const viewCount = 4

// PlanRefresh is how long a computed pass plan stays current.
const PlanRefresh = 15 * time.Minute

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// DataUpdateMsg pushes a state view into the UI.
	DataUpdateMsg struct {
		View state.View
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}

	// planUpdatedMsg signals a pass plan computation completed.
	planUpdatedMsg struct {
		target string
		at     time.Time
		plan   TargetPlan
	}
)

// planEntry caches one target's plan. A pending entry is being computed.
type planEntry struct {
	plan    TargetPlan
	at      time.Time
	pending bool
}

// Model is the root Bubble Tea model.
type Model struct {
	state   *state.Manager
	catalog astro.StarCatalog

	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int

	dashboard DashboardModel
	stars     StarsModel
	target    TargetModel
	skyView   SkyViewModel

	view  state.View
	plans map[string]*planEntry
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, cat astro.StarCatalog) Model {
	return Model{
		state:     stateMgr,
		catalog:   cat,
		viewMode:  ViewDashboard,
		dashboard: NewDashboardModel(),
		stars:     NewStarsModel(),
		target:    NewTargetModel(cat),
		skyView:   NewSkyViewModel(cat),
		plans:     make(map[string]*planEntry),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		animTickCmd(),
		m.dashboard.Init(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			m.viewMode = ViewDashboard
		case "2":
			m.viewMode = ViewStars
		case "3":
			m.viewMode = ViewTarget
			cmds = append(cmds, m.maybeRefreshPlan())
		case "4":
			// Entering the sky view focuses the star picked in the table
			if m.viewMode != ViewSky {
				if sv := m.stars.Selected(); sv != nil {
					m.skyView = m.skyView.Focus(sv.Name)
				}
			}
			m.viewMode = ViewSky

		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
			if m.viewMode == ViewTarget {
				cmds = append(cmds, m.maybeRefreshPlan())
			}

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo and tabs take ~10 lines, footer ~2
		contentHeight := msg.Height - 13
		m.dashboard = m.dashboard.SetSize(msg.Width, contentHeight)
		m.stars = m.stars.SetSize(msg.Width, contentHeight)
		m.target = m.target.SetSize(msg.Width, contentHeight)
		m.skyView = m.skyView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		if m.state != nil {
			m = m.pushView(m.state.View())
		}
		cmds = append(cmds, m.maybeRefreshPlan())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		m.target = m.target.SetAnimTick(m.animTick)

	case DataUpdateMsg:
		m = m.pushView(msg.View)
		cmds = append(cmds, m.maybeRefreshPlan())

	case planUpdatedMsg:
		m.plans[msg.target] = &planEntry{plan: msg.plan, at: msg.at}
		m.target = m.target.SetPlan(msg.target, msg.plan)

	case OpenTargetMsg:
		m.target = m.target.Select(msg.Target)
		m.viewMode = ViewTarget
		cmds = append(cmds, m.maybeRefreshPlan())

	case TargetChangedMsg:
		cmds = append(cmds, m.maybeRefreshPlan())

	case ErrorMsg:
		m.view.LastError = msg.Error
		m.dashboard = m.dashboard.UpdateData(m.view)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewStars:
		m.stars, cmd = m.stars.Update(msg)
	case ViewTarget:
		m.target, cmd = m.target.Update(msg)
	case ViewSky:
		m.skyView, cmd = m.skyView.Update(msg)
	}
	return cmd
}

// pushView hands a new state view to every sub-model.
func (m Model) pushView(v state.View) Model {
	m.view = v
	m.dashboard = m.dashboard.UpdateData(v)
	m.stars = m.stars.UpdateData(v, m.histories(v))
	m.target = m.target.UpdateData(v)
	m.skyView = m.skyView.UpdateData(v)
	if e, ok := m.plans[m.target.Selected()]; ok && !e.pending {
		m.target = m.target.SetPlan(m.target.Selected(), e.plan)
	}
	return m
}

func (m Model) histories(v state.View) map[string][]state.TimeSeries {
	if m.state == nil || v.Snapshot == nil {
		return nil
	}
	out := make(map[string][]state.TimeSeries, len(v.Snapshot.Stars))
	for _, s := range v.Snapshot.Stars {
		if h := m.state.History(s.Name); h != nil {
			out[s.Name] = h.Elevation
		}
	}
	return out
}

// maybeRefreshPlan starts a pass plan computation for the selected
// target when it has none or the one it has is older than PlanRefresh.
func (m *Model) maybeRefreshPlan() tea.Cmd {
	snap := m.view.Snapshot
	name := m.target.Selected()
	if snap == nil || name == "" {
		return nil
	}
	star, ok := m.catalog.Find(name)
	if !ok {
		return nil
	}
	if e, ok := m.plans[name]; ok {
		if e.pending {
			return nil
		}
		if age := snap.Time.Sub(e.at); age >= 0 && age < PlanRefresh {
			m.target = m.target.SetPlan(name, e.plan)
			return nil
		}
	}
	m.plans[name] = &planEntry{pending: true, at: snap.Time}
	return planCmd(star, snap.Site, snap.Weather, snap.Earth, snap.Time)
}

// PlanSites returns home followed by the tracking-complex sites, without
// duplicates.
func PlanSites(home astro.Site) []astro.Site {
	sites := []astro.Site{home}
	for _, key := range astro.SiteOrder {
		s := astro.KnownSites[key]
		if s.Name != home.Name {
			sites = append(sites, s)
		}
	}
	return sites
}

// planCmd computes a star's 24h pass plan over PlanSites and its ±2h
// elevation trace at home, off the UI goroutine.
func planCmd(s astro.Star, home astro.Site, w astro.Weather, e astro.EarthParams, now time.Time) tea.Cmd {
	return func() tea.Msg {
		sites := PlanSites(home)
		names := make([]string, len(sites))
		for i, site := range sites {
			names[i] = site.Name
		}

		tp := TargetPlan{Sites: names}
		plan, err := astro.PlanStar(s, sites, w, e, now)
		if err != nil {
			tp.Err = err
			return planUpdatedMsg{target: s.Name, at: now, plan: tp}
		}
		tp.Plan = plan

		obs, err := astro.NewObserver(home, w, e, now)
		if err == nil {
			tp.Trace, err = astro.ComputeElevationTrace(s.Name, home.Name, obs.StarElevation(s), now)
		}
		tp.Err = err
		return planUpdatedMsg{target: s.Name, at: now, plan: tp}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewStars:
		content = m.stars.View()
	case ViewTarget:
		content = m.target.View()
	case ViewSky:
		content = m.skyView.View()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ██╗     ███████╗      ███████╗ ██████╗ ███████╗ █████╗ `,
		`  ██║     ██╔════╝      ██╔════╝██╔═══██╗██╔════╝██╔══██╗`,
		`  ██║     ███████╗█████╗███████╗██║   ██║█████╗  ███████║`,
		`  ██║     ╚════██║╚════╝╚════██║██║   ██║██╔══╝  ██╔══██║`,
		`  ███████╗███████║      ███████║╚██████╔╝██║     ██║  ██║`,
		`  ╚══════╝╚══════╝      ╚══════╝ ╚═════╝ ╚═╝     ╚═╝  ╚═╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	tagline := fmt.Sprintf("  Fundamental Astronomy · Observed Places · v%s", version.Version)
	if m.view.Snapshot != nil {
		tagline += " · " + m.view.Snapshot.Site.Name
	}
	b.WriteString(muted.Render(tagline))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient:
// blue -> purple -> magenta -> pink, darkening toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	switch {
	case xRatio < 0.33:
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	case xRatio < 0.66:
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	default:
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	brightness := 1.0 - (yRatio * 0.5)
	clamp := func(v float64) int {
		return min(max(int(v*brightness), 0), 255)
	}

	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Clock", "[2] Stars", "[3] Target", "[4] Sky"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, mutedStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.view.LastError != nil:
		status = errStyle.Render("ERROR: " + m.view.LastError.Error())
	case m.view.Snapshot != nil:
		status = accentStyle.Render(spinner) + mutedStyle.Render(" "+m.view.Snapshot.Time.UTC().Format("15:04:05 UTC"))
		if m.state != nil {
			next := m.view.LastUpdate.Add(m.state.RefreshInterval())
			countdown := max(time.Until(next).Round(time.Second), 0)
			status += mutedStyle.Render(fmt.Sprintf(" next in %ds", int(countdown.Seconds())))
		}
		if m.view.ComputeDuration > 0 {
			status += mutedStyle.Render(" (" + m.view.ComputeDuration.Round(time.Microsecond).String() + ")")
		}
	default:
		status = accentStyle.Render(spinner) + " " + shimmer("Waiting for data...", m.animTick)
	}

	var help string
	switch m.viewMode {
	case ViewStars:
		help = "↑↓: select | enter: details | tab: switch view"
	case ViewTarget:
		help = "←/→: target | h: passes"
	case ViewSky:
		help = "j/k: focus | l: labels | f: filter"
	default:
		help = "1-4: view | tab: switch view | q: quit"
	}

	return "  " + status + "  " + mutedStyle.Render("|") + "  " + mutedStyle.Render(help)
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(v state.View) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{View: v}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}

// shimmer renders text with a subtle purple shine sweeping across it.
func shimmer(text string, tick int) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	pos := tick % (len(runes) + 8)

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		var r8, g8, b8 int
		switch {
		case dist <= 1:
			r8, g8, b8 = 180, 160, 220
		case dist <= 3:
			r8, g8, b8 = 140, 120, 180
		case dist <= 5:
			r8, g8, b8 = 110, 90, 150
		default:
			r8, g8, b8 = 80, 70, 120
		}

		hexColor := fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(string(r)))
	}

	return result.String()
}
