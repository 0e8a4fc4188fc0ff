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

// trendWidth is the number of history samples in the trend column.
const trendWidth = 16

// OpenTargetMsg requests the target view for a star.
type OpenTargetMsg struct {
	Target string
}

// StarsModel is the watch-list table.
type StarsModel struct {
	width   int
	height  int
	cursor  int
	view    state.View
	history map[string][]state.TimeSeries
}

// NewStarsModel creates a new star table model.
func NewStarsModel() StarsModel {
	return StarsModel{}
}

// SetSize updates the viewport size.
func (m StarsModel) SetSize(width, height int) StarsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new view and the elevation
// history of each star.
func (m StarsModel) UpdateData(v state.View, history map[string][]state.TimeSeries) StarsModel {
	m.view = v
	m.history = history
	if n := m.count(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m
}

func (m StarsModel) count() int {
	if m.view.Snapshot == nil {
		return 0
	}
	return len(m.view.Snapshot.Stars)
}

// Update handles messages.
func (m StarsModel) Update(msg tea.Msg) (StarsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := m.count()
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if n > 0 {
				m.cursor = n - 1
			}
		case "enter":
			if sv := m.Selected(); sv != nil {
				name := sv.Name
				return m, func() tea.Msg { return OpenTargetMsg{Target: name} }
			}
		}
	}
	return m, nil
}

// Selected returns the star under the cursor, if any.
func (m StarsModel) Selected() *state.StarView {
	if m.cursor < 0 || m.cursor >= m.count() {
		return nil
	}
	sv := m.view.Snapshot.Stars[m.cursor]
	return &sv
}

// View renders the table.
func (m StarsModel) View() string {
	var b strings.Builder

	snap := m.view.Snapshot
	if snap == nil {
		b.WriteString("Waiting for the first snapshot...\n")
		return b.String()
	}

	up := 0
	for _, s := range snap.Stars {
		if s.ElDeg > astro.MinElevation {
			up++
		}
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("Watch List  %d/%d above the horizon", up, len(snap.Stars))))
	b.WriteString("\n")

	header := fmt.Sprintf("%-12s %5s %7s %7s %7s %-6s %-6s %-6s %5s %s",
		"Star", "Mag", "Az", "El", "HA", "Rise", "Trans", "Set", "Sun", "Trend")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(snap.Stars) == 0 {
		b.WriteString("  Watch list is empty\n")
		return b.String()
	}

	maxRows := m.height - 4
	if maxRows < 5 {
		maxRows = 5
	}

	stars := snap.Stars
	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := min(startIdx+maxRows, len(stars))

	for i := startIdx; i < endIdx; i++ {
		s := stars[i]
		rise, transit, set := windowColumns(s.Window)
		cols := fmt.Sprintf("%-12s %5.2f %6.1f° ",
			truncate(s.Name, 12), s.Mag, s.AzDeg)
		rest := fmt.Sprintf(" %6.1f° %-6s %-6s %-6s %4.0f° ",
			s.HADeg, rise, transit, set, s.SunSepDeg)

		if i == m.cursor {
			row := cols + fmt.Sprintf("%6.1f°", s.ElDeg) + rest + trendString(m.history[s.Name])
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(cols))
			b.WriteString(renderElevation(s.ElDeg))
			b.WriteString(rowStyle.Render(rest))
			b.WriteString(renderTrend(m.history[s.Name]))
		}
		b.WriteString("\n")
	}

	if len(stars) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d stars", startIdx+1, endIdx, len(stars)))
	}

	return b.String()
}

// windowColumns formats a visibility window as HH:MM UTC columns.
func windowColumns(w *astro.VisibilityWindow) (rise, transit, set string) {
	switch {
	case w == nil || !w.Valid:
		return "-", "-", "-"
	case w.AlwaysVisible:
		return "circ", clock(w.Transit), "circ"
	case w.NeverVisible:
		return "never", "-", "never"
	}
	return clock(w.Rise), clock(w.Transit), clock(w.Set)
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("15:04")
}

// trendString renders the last trendWidth history samples as a sparkline.
func trendString(series []state.TimeSeries) string {
	if len(series) > trendWidth {
		series = series[len(series)-trendWidth:]
	}
	trace := astro.ElevationTrace{Samples: make([]astro.ElevationSample, len(series))}
	for i, p := range series {
		trace.Samples[i] = astro.ElevationSample{Time: p.Timestamp, ElDeg: p.Value}
	}
	return trace.Sparkline()
}

func renderTrend(series []state.TimeSeries) string {
	rising := len(series) > 1 && series[len(series)-1].Value > series[0].Value
	color := lipgloss.Color("39")
	if !rising {
		color = lipgloss.Color("60")
	}
	return lipgloss.NewStyle().Foreground(color).Render(trendString(series))
}
