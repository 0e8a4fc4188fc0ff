package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/state"
)

const (
	// Field of view in degrees
	fovAz = 120.0
	fovEl = 60.0

	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	// Target glyphs
	glyphTarget        = '✦'
	glyphTargetFocused = '◆'
	glyphSun           = '☉'
	glyphMoon          = '☾'
	glyphPlanet        = '●'

	colorTarget        = "#d0c8ff"
	colorTargetFocused = "229" // bright gold
	colorSun           = "220"
	colorMoon          = "252"
	colorPlanet        = "180"

	// Background star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag 3.0-4.0
	glyphStarVeryDim = '·' // mag > 4.0

	// Grayscale so they don't compete with the targets
	colorStarBright  = "255"
	colorStarMedium  = "250"
	colorStarDim     = "244"
	colorStarVeryDim = "240"
)

// LabelMode controls how target labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only the focused target
	LabelAll                      // All targets
)

// TargetFilter selects which kinds of target the sky view draws.
type TargetFilter int

const (
	FilterAll TargetFilter = iota
	FilterStars
	FilterBodies
)

func (f TargetFilter) String() string {
	switch f {
	case FilterStars:
		return "Stars"
	case FilterBodies:
		return "Solar System"
	default:
		return "All Targets"
	}
}

// skyTarget is one focusable object above the horizon.
type skyTarget struct {
	name  string
	azDeg float64
	elDeg float64
	mag   float64
	body  bool
	glyph rune
	color lipgloss.Color
}

// SkyViewModel renders the sky dome with the watched stars, the Sun and
// the Moon against the catalog stars.
type SkyViewModel struct {
	width  int
	height int

	// Camera position (center of view)
	camAz float64
	camEl float64

	animating   bool
	animStartAz float64
	animStartEl float64
	animTargAz  float64
	animTargEl  float64
	animStart   time.Time

	focusIdx int
	focus    string
	targets  []skyTarget

	filter    TargetFilter
	labelMode LabelMode

	// Background stars, kept current with an Observer of their own.
	starCatalog astro.StarCatalog
	observer    *astro.Observer
	built       time.Time
	background  []astro.Position
}

// NewSkyViewModel creates a new sky view model.
func NewSkyViewModel(cat astro.StarCatalog) SkyViewModel {
	return SkyViewModel{
		camAz:       180,
		camEl:       45,
		labelMode:   LabelFocused,
		starCatalog: cat,
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new view.
func (m SkyViewModel) UpdateData(v state.View) SkyViewModel {
	snap := v.Snapshot
	if snap == nil {
		return m
	}

	m.targets = buildSkyTargets(snap, m.filter)
	m.background = m.observeBackground(snap)

	// Keep the focus on the same target by name across updates.
	m.focusIdx = 0
	for i, t := range m.targets {
		if t.name == m.focus {
			m.focusIdx = i
			break
		}
	}
	if len(m.targets) > 0 {
		m.focus = m.targets[m.focusIdx].name
		if !m.animating {
			m.camAz = m.targets[m.focusIdx].azDeg
			m.camEl = m.targets[m.focusIdx].elDeg
		}
	}

	return m
}

// Focus points the camera at the named target if it is in view.
func (m SkyViewModel) Focus(name string) SkyViewModel {
	for i, t := range m.targets {
		if t.name == name {
			m.focusIdx = i
			m.focus = name
			m.camAz = t.azDeg
			m.camEl = t.elDeg
			return m
		}
	}
	return m
}

func buildSkyTargets(snap *state.Snapshot, filter TargetFilter) []skyTarget {
	var out []skyTarget
	if filter != FilterStars {
		for _, b := range snap.Bodies {
			if b.Observed.ElDeg <= astro.MinElevation {
				continue
			}
			t := skyTarget{
				name:  b.Body.String(),
				azDeg: b.Observed.AzDeg,
				elDeg: b.Observed.ElDeg,
				body:  true,
				glyph: glyphPlanet,
				color: colorPlanet,
			}
			switch t.name {
			case "Sun":
				t.glyph, t.color = glyphSun, colorSun
			case "Moon":
				t.glyph, t.color = glyphMoon, colorMoon
			}
			out = append(out, t)
		}
	}
	if filter != FilterBodies {
		for _, s := range snap.Stars {
			if s.ElDeg <= astro.MinElevation {
				continue
			}
			out = append(out, skyTarget{
				name:  s.Name,
				azDeg: s.AzDeg,
				elDeg: s.ElDeg,
				mag:   s.Mag,
				glyph: glyphTarget,
				color: colorTarget,
			})
		}
	}
	return out
}

// observeBackground places every catalog star. The observer is rebuilt
// on a site change or after state.RebuildInterval and advanced otherwise.
func (m *SkyViewModel) observeBackground(snap *state.Snapshot) []astro.Position {
	if len(m.starCatalog.Stars) == 0 {
		return nil
	}

	var err error
	switch {
	case m.observer == nil || m.observer.Site != snap.Site ||
		snap.Time.Sub(m.built) > state.RebuildInterval || snap.Time.Before(m.built):
		m.observer, err = astro.NewObserver(snap.Site, snap.Weather, snap.Earth, snap.Time)
		m.built = snap.Time
	default:
		err = m.observer.Advance(snap.Time)
	}
	if err != nil {
		m.observer = nil
		return nil
	}

	out := make([]astro.Position, 0, len(m.starCatalog.Stars))
	for _, s := range m.starCatalog.Stars {
		if p := m.observer.Observe(s); p.ElDeg > 0 {
			out = append(out, p)
		}
	}
	return out
}

// animTickMsg is sent during animation
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return m.focusPrev()
		case "down", "j":
			return m.focusNext()
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		case "f":
			m.filter = (m.filter + 1) % 3
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyViewModel) focusNext() (SkyViewModel, tea.Cmd) {
	if len(m.targets) == 0 {
		return m, nil
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.targets)
	return m.startAnimation()
}

func (m SkyViewModel) focusPrev() (SkyViewModel, tea.Cmd) {
	if len(m.targets) == 0 {
		return m, nil
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.targets) - 1
	}
	return m.startAnimation()
}

func (m SkyViewModel) startAnimation() (SkyViewModel, tea.Cmd) {
	if m.focusIdx >= len(m.targets) {
		return m, nil
	}

	t := m.targets[m.focusIdx]
	m.focus = t.name
	m.animating = true
	m.animStartAz = m.camAz
	m.animStartEl = m.camEl
	m.animTargAz = t.azDeg
	m.animTargEl = t.elDeg
	m.animStart = time.Now()

	return m, animTick()
}

func (m SkyViewModel) updateAnimation() (SkyViewModel, tea.Cmd) {
	t := float64(time.Since(m.animStart)) / float64(animDuration)

	if t >= 1.0 {
		m.animating = false
		m.camAz = m.animTargAz
		m.camEl = m.animTargEl
		return m, nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	m.camAz = lerpAngle(m.animStartAz, m.animTargAz, t)
	m.camEl = lerp(m.animStartEl, m.animTargEl, t)

	return m, animTick()
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	viewHeight := m.height - 4

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSkyCanvas(m.width, viewHeight))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyViewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")) // violet
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorTarget))

	filterStr := mutedStyle.Render(m.filter.String())
	if m.filter != FilterAll {
		filterStr = accentStyle.Render(m.filter.String())
	}

	var labelStr string
	switch m.labelMode {
	case LabelNone:
		labelStr = mutedStyle.Render("Labels: off")
	case LabelFocused:
		labelStr = accentStyle.Render("Labels: focus")
	case LabelAll:
		labelStr = accentStyle.Render("Labels: all")
	}

	compass := mutedStyle.Render(fmt.Sprintf("Az:%.0f° El:%.0f°", m.camAz, m.camEl))

	return fmt.Sprintf("%s | %s | %s | %s", titleStyle.Render("Sky View"), filterStr, labelStr, compass)
}

func (m SkyViewModel) renderStatus() string {
	if len(m.targets) == 0 {
		return "No targets above the horizon"
	}
	if m.focusIdx >= len(m.targets) {
		return ""
	}

	t := m.targets[m.focusIdx]
	line := fmt.Sprintf(">>> %s | Az:%.1f° El:%.1f°", t.name, t.azDeg, t.elDeg)
	if !t.body {
		line += fmt.Sprintf(" | mag %.2f", t.mag)
	}
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return accentStyle.Render(line)
}

// targetPos tracks a drawn target for label rendering
type targetPos struct {
	x, y       int
	name       string
	isFocused  bool
	labelStart int
	labelEnd   int
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
		}
	}

	horizonY := height - 2

	for _, p := range m.background {
		x, y, visible := m.projectToScreen(p.AzDeg, p.ElDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		glyph, color := m.starGlyph(p.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}

	m.drawCardinal(canvas, colors, width, height, "N", 0)
	m.drawCardinal(canvas, colors, width, height, "E", 90)
	m.drawCardinal(canvas, colors, width, height, "S", 180)
	m.drawCardinal(canvas, colors, width, height, "W", 270)

	var positions []targetPos
	for i, t := range m.targets {
		x, y, visible := m.projectToScreen(t.azDeg, t.elDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		isFocused := i == m.focusIdx
		sym, color := t.glyph, t.color
		if isFocused && !t.body {
			sym, color = glyphTargetFocused, colorTargetFocused
		}
		canvas[y][x] = sym
		colors[y][x] = color

		positions = append(positions, targetPos{x: x, y: y, name: t.name, isFocused: isFocused})
	}

	m.renderLabels(canvas, colors, width, horizonY, positions)

	// Observer marker at bottom center
	if sx, sy := width/2, height-1; sy >= 0 && sx < width {
		canvas[sy][sx] = '▲'
		colors[sy][sx] = "46"
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderLabels draws target labels to the right of each glyph. The
// focused label wins where labels overlap.
func (m SkyViewModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, positions []targetPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	for i := range positions {
		pos := &positions[i]
		pos.labelStart = pos.x + 2
		n := len([]rune(pos.name))
		if pos.isFocused {
			n += 2
		}
		pos.labelEnd = pos.labelStart + n
	}

	focusedClaims := make(map[int]map[int]bool) // y -> x -> claimed
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.labelStart; x < pos.labelEnd; x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		if m.labelMode == LabelFocused && !pos.isFocused {
			continue
		}

		labelColor := lipgloss.Color(colorTarget)
		labelText := pos.name
		if pos.isFocused {
			labelColor = colorTargetFocused
			labelText = "◄ " + pos.name
		}

		for i, r := range []rune(labelText) {
			x := pos.labelStart + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= horizonY {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = labelColor
		}
	}
}

// starGlyph returns the glyph and color for a background star; brighter
// stars get more prominent symbols.
func (m SkyViewModel) starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	case mag < 4.0:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarVeryDim, colorStarVeryDim
	}
}

func (m SkyViewModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label string, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2

	if x >= 0 && x < width && y >= 0 && y < height {
		canvas[y][x] = rune(label[0])
		colors[y][x] = "252"
	}
}

// projectToScreen converts az/el to screen coordinates relative to camera
func (m SkyViewModel) projectToScreen(az, el float64, width, height int) (int, int, bool) {
	dAz := normalizeAngle(az - m.camAz)
	dEl := el - m.camEl

	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dEl < -fovEl/2 || dEl > fovEl/2 {
		return 0, 0, false
	}

	// X: -fovAz/2..+fovAz/2 -> 0..width
	// Y: +fovEl/2..-fovEl/2 -> 0..horizon (higher el = higher on screen)
	horizonY := height - 2

	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovEl/2 - dEl) / fovEl * float64(horizonY))

	return x, y, true
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking shortest path
func lerpAngle(a, b, t float64) float64 {
	return a + normalizeAngle(b-a)*t
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Init returns nil cmd
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
