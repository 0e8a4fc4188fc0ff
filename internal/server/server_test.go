package server

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/ephem"
	"github.com/litescript/ls-sofa/internal/metrics"
	"github.com/litescript/ls-sofa/internal/state"
)

var snapTime = time.Date(2024, 7, 15, 4, 0, 0, 0, time.UTC)

func testSnapshot(at time.Time) *state.Snapshot {
	return &state.Snapshot{
		Time:    at,
		Site:    astro.KnownSites["goldstone"],
		Weather: astro.StandardWeather,
		Stars: []state.StarView{
			{Position: astro.Position{Name: "Vega", AzDeg: 60, ElDeg: 40, HADeg: -35}},
		},
		Bodies: []state.BodyView{
			{
				BodyPosition: ephem.BodyPosition{Body: ephem.Moon, DistAU: 0.0026, Valid: true},
				Observed:     astro.Position{Name: "Moon", ElDeg: 12},
			},
		},
	}
}

func newTestServer(t *testing.T, cfg Config) (*Server, *state.Manager) {
	t.Helper()
	mgr := state.NewManager(state.DefaultConfig())
	return New(cfg, mgr, astro.DefaultStarCatalog(), metrics.NewCollector(), nil), mgr
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s, mgr := newTestServer(t, DefaultConfig())

	if rec := get(t, s.Handler(), "/healthz"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("healthz before data = %d, want 503", rec.Code)
	}
	mgr.Update(testSnapshot(snapTime), 0, nil)
	if rec := get(t, s.Handler(), "/healthz"); rec.Code != http.StatusOK {
		t.Errorf("healthz = %d, want 200", rec.Code)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	s, mgr := newTestServer(t, DefaultConfig())

	if rec := get(t, s.Handler(), "/api/snapshot"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("snapshot before data = %d, want 503", rec.Code)
	}

	mgr.Update(testSnapshot(snapTime), 0, nil)
	rec := get(t, s.Handler(), "/api/snapshot")
	if rec.Code != http.StatusOK {
		t.Fatalf("snapshot = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got state.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Time.Equal(snapTime) || len(got.Stars) != 1 || got.Stars[0].Name != "Vega" {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestObserveEndpoint(t *testing.T) {
	s, mgr := newTestServer(t, DefaultConfig())
	mgr.Update(testSnapshot(snapTime), 0, nil)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"watched star", "star=vega", http.StatusOK},
		{"catalog star", "star=Sirius", http.StatusOK},
		{"unknown star", "star=Nemesis", http.StatusNotFound},
		{"missing param", "", http.StatusBadRequest},
		{"body", "body=luna", http.StatusOK},
		{"body not in snapshot", "body=sun", http.StatusNotFound},
		{"unknown body", "body=pluto", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s.Handler(), "/api/observe?"+tt.query)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestObserveWatchedStarUsesSnapshot(t *testing.T) {
	s, mgr := newTestServer(t, DefaultConfig())
	mgr.Update(testSnapshot(snapTime), 0, nil)

	var got state.StarView
	rec := get(t, s.Handler(), "/api/observe?star=Vega")
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.AzDeg != 60 || got.ElDeg != 40 {
		t.Errorf("Vega = %v,%v, want the snapshot's 60,40", got.AzDeg, got.ElDeg)
	}
}

func TestObserveCatalogStarOnDemand(t *testing.T) {
	s, mgr := newTestServer(t, DefaultConfig())
	mgr.Update(testSnapshot(snapTime), 0, nil)

	var got state.StarView
	rec := get(t, s.Handler(), "/api/observe?star=Sirius")
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	obs, err := astro.NewObserver(astro.KnownSites["goldstone"], astro.StandardWeather, astro.EarthParams{}, snapTime)
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	sirius, _ := astro.DefaultStarCatalog().Find("Sirius")
	want := obs.Observe(sirius)
	if got.Name != "Sirius" || math.Abs(got.ElDeg-want.ElDeg) > 1e-9 || math.Abs(got.AzDeg-want.AzDeg) > 1e-9 {
		t.Errorf("Sirius = %+v, want az %v el %v", got.Position, want.AzDeg, want.ElDeg)
	}
}

func TestEventsAndHistory(t *testing.T) {
	s, mgr := newTestServer(t, DefaultConfig())

	rec := get(t, s.Handler(), "/api/events")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("events with none = %d %q", rec.Code, rec.Body.String())
	}

	below := testSnapshot(snapTime)
	below.Stars[0].ElDeg = -1
	mgr.Update(below, 0, nil)
	mgr.Update(testSnapshot(snapTime.Add(time.Minute)), 0, nil)

	rec = get(t, s.Handler(), "/api/events?n=5")
	var events []state.Event
	if err := json.NewDecoder(rec.Body).Decode(&events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 1 || events[0].Type != state.EventRise || events[0].Target != "Vega" {
		t.Errorf("events = %+v, want Vega RISE", events)
	}

	if rec := get(t, s.Handler(), "/api/events?n=zero"); rec.Code != http.StatusBadRequest {
		t.Errorf("events?n=zero = %d, want 400", rec.Code)
	}

	rec = get(t, s.Handler(), "/api/history?target=Vega")
	var hist state.TargetHistory
	if err := json.NewDecoder(rec.Body).Decode(&hist); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hist.Elevation) != 2 || hist.Elevation[1].Value != 40 {
		t.Errorf("history = %+v", hist)
	}
	if rec := get(t, s.Handler(), "/api/history?target=Deneb"); rec.Code != http.StatusNotFound {
		t.Errorf("history of unknown = %d, want 404", rec.Code)
	}
	if rec := get(t, s.Handler(), "/api/history"); rec.Code != http.StatusBadRequest {
		t.Errorf("history without target = %d, want 400", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 2
	s, mgr := newTestServer(t, cfg)
	mgr.Update(testSnapshot(snapTime), 0, nil)

	for i := 0; i < 2; i++ {
		if rec := get(t, s.Handler(), "/api/snapshot"); rec.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i, rec.Code)
		}
	}
	rec := get(t, s.Handler(), "/api/snapshot")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("429 without Retry-After")
	}

	// Health and metrics are not limited.
	if rec := get(t, s.Handler(), "/healthz"); rec.Code != http.StatusOK {
		t.Errorf("healthz = %d, want 200", rec.Code)
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	other := httptest.NewRecorder()
	s.Handler().ServeHTTP(other, req)
	if other.Code != http.StatusOK {
		t.Errorf("other client = %d, want 200", other.Code)
	}

	body := get(t, s.Handler(), "/metrics").Body.String()
	for _, want := range []string{
		`ls_sofa_rate_limited_total{path="/api/snapshot"} 1`,
		`ls_sofa_http_requests_total{code="429",path="/api/snapshot"} 1`,
		`ls_sofa_http_requests_total{code="200",path="/api/snapshot"} 3`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestWebSocketStream(t *testing.T) {
	s, mgr := newTestServer(t, DefaultConfig())
	mgr.Update(testSnapshot(snapTime), 0, nil)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Errorf("handshake status = %d", resp.StatusCode)
	}

	read := func() state.Snapshot {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		var snap state.Snapshot
		if err := conn.ReadJSON(&snap); err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		return snap
	}

	// The current snapshot arrives on connect.
	if got := read(); !got.Time.Equal(snapTime) {
		t.Errorf("first message time = %v, want %v", got.Time, snapTime)
	}

	next := snapTime.Add(5 * time.Second)
	mgr.Update(testSnapshot(next), 0, nil)
	if got := read(); !got.Time.Equal(next) {
		t.Errorf("second message time = %v, want %v", got.Time, next)
	}

	conn.Close()
	deadline := time.Now().Add(5 * time.Second)
	for mgr.Subscribers() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("subscription not released after client close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, DefaultConfig())
	get(t, s.Handler(), "/api/snapshot")

	rec := get(t, s.Handler(), "/metrics")
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `ls_sofa_http_requests_total{code="503",path="/api/snapshot"} 1`) {
		t.Errorf("metrics did not record the request:\n%s", body)
	}
}
