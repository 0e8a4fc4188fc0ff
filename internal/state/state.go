// Package state provides thread-safe state management for the application.
package state

import (
	"slices"
	"sync"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/config"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventRise     EventType = "RISE"
	EventSet      EventType = "SET"
	EventTransit  EventType = "TRANSIT"
	EventWarning  EventType = "WARNING"
	EventReconfig EventType = "RECONFIG"
)

// Event represents a change between two snapshots.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Target    string    `json:"target,omitempty"`
	Site      string    `json:"site,omitempty"`
	ElDeg     float64   `json:"el_deg,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// TimeSeries is a single data point with timestamp.
type TimeSeries struct {
	Timestamp time.Time `json:"t"`
	Value     float64   `json:"v"`
}

// TargetHistory tracks the recent elevation of one star or body.
type TargetHistory struct {
	Target    string       `json:"target"`
	Elevation []TimeSeries `json:"elevation"`
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	app             config.Config
	current         *Snapshot
	lastUpdate      time.Time
	lastError       error
	computeDuration time.Duration

	// Previous placement for event detection
	prevUp       map[string]bool
	prevHA       map[string]float64
	prevWarnings map[string]bool

	// History buffers
	history       map[string]*TargetHistory
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Snapshot subscribers
	subs    map[int]chan *Snapshot
	nextSub int

	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen   int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen:   720, // an hour at 5s snapshots
		MaxEvents:       50,
		RefreshInterval: time.Second,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxHistoryLen:   cfg.MaxHistoryLen,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		history:         make(map[string]*TargetHistory),
		prevUp:          make(map[string]bool),
		prevHA:          make(map[string]float64),
		prevWarnings:    make(map[string]bool),
		subs:            make(map[int]chan *Snapshot),
	}
}

// Update publishes a new snapshot. A nil snapshot only records the
// error and duration.
func (m *Manager) Update(snap *Snapshot, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastUpdate = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if snap == nil {
		return
	}

	m.detectEvents(snap)
	m.current = snap
	m.updateHistory(snap)

	for _, ch := range m.subs {
		publish(ch, snap)
	}
}

// publish hands snap to ch, replacing a value the reader has not
// taken yet.
func publish(ch chan *Snapshot, snap *Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// detectEvents compares a new snapshot with the previous one.
func (m *Manager) detectEvents(snap *Snapshot) {
	site := snap.Site.Name
	seen := make(map[string]bool, len(snap.Stars)+len(snap.Bodies))

	place := func(name string, p astro.Position) {
		seen[name] = true
		up := p.ElDeg > astro.MinElevation
		if wasUp, ok := m.prevUp[name]; ok && wasUp != up {
			typ := EventSet
			if up {
				typ = EventRise
			}
			m.addEvent(Event{Type: typ, Timestamp: snap.Time, Target: name, Site: site, ElDeg: p.ElDeg})
		}
		// A meridian crossing moves the hour angle through zero; a jump
		// through 180 is the antimeridian.
		if prev, ok := m.prevHA[name]; ok && prev < 0 && p.HADeg >= 0 && p.HADeg-prev < 90 {
			m.addEvent(Event{Type: EventTransit, Timestamp: snap.Time, Target: name, Site: site, ElDeg: p.ElDeg})
		}
		m.prevUp[name] = up
		m.prevHA[name] = p.HADeg
	}

	for _, s := range snap.Stars {
		place(s.Name, s.Position)
	}
	for _, b := range snap.Bodies {
		place(b.Observed.Name, b.Observed)
	}

	// Forget targets that left the watch list.
	for name := range m.prevUp {
		if !seen[name] {
			delete(m.prevUp, name)
			delete(m.prevHA, name)
		}
	}

	warnings := make(map[string]bool, len(snap.Warnings))
	for _, w := range snap.Warnings {
		warnings[w] = true
		if !m.prevWarnings[w] {
			m.addEvent(Event{Type: EventWarning, Timestamp: snap.Time, Site: site, Detail: w})
		}
	}
	m.prevWarnings = warnings
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

func (m *Manager) updateHistory(snap *Snapshot) {
	if m.maxHistoryLen <= 0 {
		return
	}
	add := func(name string, el float64) {
		hist, ok := m.history[name]
		if !ok {
			hist = &TargetHistory{Target: name, Elevation: make([]TimeSeries, 0, m.maxHistoryLen)}
			m.history[name] = hist
		}
		hist.Elevation = append(hist.Elevation, TimeSeries{Timestamp: snap.Time, Value: el})
		if len(hist.Elevation) > m.maxHistoryLen {
			hist.Elevation = hist.Elevation[1:]
		}
	}
	for _, s := range snap.Stars {
		add(s.Name, s.ElDeg)
	}
	for _, b := range snap.Bodies {
		add(b.Observed.Name, b.Observed.ElDeg)
	}
}

// View is a consistent copy of the manager's state.
type View struct {
	Snapshot        *Snapshot
	LastUpdate      time.Time
	LastError       error
	ComputeDuration time.Duration
	Events          []Event
}

// View returns a consistent view of current state.
func (m *Manager) View() View {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return View{
		Snapshot:        m.current,
		LastUpdate:      m.lastUpdate,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		Events:          m.getEventsOrdered(),
	}
}

// Current returns the latest snapshot, or nil before the first update.
func (m *Manager) Current() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// History returns a copy of the elevation history for a target.
func (m *Manager) History(target string) *TargetHistory {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist, ok := m.history[target]
	if !ok {
		return nil
	}
	cp := &TargetHistory{
		Target:    hist.Target,
		Elevation: make([]TimeSeries, len(hist.Elevation)),
	}
	copy(cp.Elevation, hist.Elevation)
	return cp
}

// Subscribe returns a channel that receives each new snapshot and a
// function that cancels the subscription and closes the channel. A slow
// reader only ever sees the latest snapshot.
func (m *Manager) Subscribe() (<-chan *Snapshot, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan *Snapshot, 1)
	m.subs[id] = ch
	if m.current != nil {
		ch <- m.current
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (m *Manager) Subscribers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

// SetAppConfig records a new application config and logs a RECONFIG
// event if the site or watch list changed.
func (m *Manager) SetAppConfig(cfg config.Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.app
	m.app = cfg
	m.refreshInterval = cfg.RefreshInterval
	if prev.SiteName == "" && prev.CustomSite == nil {
		return
	}
	if prev.SiteName != cfg.SiteName || !slices.Equal(prev.Stars, cfg.Stars) || prev.MaxMag != cfg.MaxMag || customSite(prev) != customSite(cfg) {
		m.addEvent(Event{Type: EventReconfig, Timestamp: time.Now(), Site: cfg.SiteName})
		// Rise/set state belongs to the old site.
		m.prevUp = make(map[string]bool)
		m.prevHA = make(map[string]float64)
	}
}

// AppConfig returns the current application config.
func (m *Manager) AppConfig() config.Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.app
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one snapshot has been published.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

func customSite(c config.Config) astro.Site {
	if c.CustomSite == nil {
		return astro.Site{}
	}
	return *c.CustomSite
}
