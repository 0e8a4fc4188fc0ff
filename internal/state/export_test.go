package state

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/ephem"
)

func exportSnap() *Snapshot {
	rise := base.Add(-3 * time.Hour)
	set := base.Add(5 * time.Hour)
	return &Snapshot{
		Time:     base,
		Site:     astro.Site{Name: "Goldstone"},
		LASTDeg:  250.5,
		Twilight: "night",
		Stars: []StarView{
			{
				Position: astro.Position{Name: "Vega", AzDeg: 80, ElDeg: 45, HADeg: -30, Mag: 0.03},
				Window:   &astro.VisibilityWindow{Rise: rise, Set: set, Valid: true},
			},
			{
				Position: astro.Position{Name: "Polaris", AzDeg: 0.5, ElDeg: 35, Mag: 1.98},
				Window:   &astro.VisibilityWindow{Valid: true, AlwaysVisible: true},
			},
			{Position: astro.Position{Name: "Fomalhaut", ElDeg: -20, Mag: 1.16}},
		},
		Bodies: []BodyView{
			{
				BodyPosition: ephem.BodyPosition{Body: ephem.Moon, DistAU: 0.0026, Valid: true},
				Observed:     astro.Position{Name: "Moon", ElDeg: 60},
			},
		},
		Warnings: []string{"dubious year"},
	}
}

func TestGenerateSummaryRows(t *testing.T) {
	rows := GenerateSummaryRows(exportSnap())
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	wantOrder := []string{"Moon", "Vega", "Polaris", "Fomalhaut"}
	for i, name := range wantOrder {
		if rows[i].Name != name {
			t.Errorf("row %d = %q, want %q", i, rows[i].Name, name)
		}
	}

	vega := rows[1]
	if vega.Rise != "01:00" || vega.Set != "09:00" {
		t.Errorf("Vega rise/set = %q/%q, want 01:00/09:00", vega.Rise, vega.Set)
	}
	if vega.Tier != astro.ElevationHigh {
		t.Errorf("Vega tier = %v, want high", vega.Tier)
	}
	if rows[2].Rise != "circumpolar" {
		t.Errorf("Polaris rise = %q, want circumpolar", rows[2].Rise)
	}
	if rows[3].Rise != "-" || rows[0].Mag != "-" {
		t.Errorf("missing window/mag rendered as %q/%q", rows[3].Rise, rows[0].Mag)
	}

	if GenerateSummaryRows(nil) != nil {
		t.Error("GenerateSummaryRows(nil) should be nil")
	}
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, exportSnap())
	out := buf.String()

	for _, want := range []string{
		"Sky @ Goldstone",
		"2024-07-15T04:00:00Z",
		"LAST 16h42m00.0s",
		"(night)",
		"Vega",
		"circumpolar",
		"warning: dubious year",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	WriteSummaryTable(&buf, nil)
	if !strings.Contains(buf.String(), "No data") {
		t.Errorf("nil snapshot output = %q", buf.String())
	}
}

func TestSnapshotWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := exportSnap().WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	stars, ok := decoded["stars"].([]any)
	if !ok || len(stars) != 3 {
		t.Fatalf("stars = %v", decoded["stars"])
	}
	vega := stars[0].(map[string]any)
	if vega["name"] != "Vega" || vega["window"] == nil {
		t.Errorf("vega = %v", vega)
	}
	bodies := decoded["bodies"].([]any)
	moon := bodies[0].(map[string]any)
	if moon["body"] != "Moon" {
		t.Errorf("body = %v, want Moon", moon["body"])
	}
	if _, ok := moon["observed"].(map[string]any); !ok {
		t.Errorf("observed missing: %v", moon)
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Vega", 12, "Vega"},
		{"Alpha Centauri", 12, "Alpha Cent.."},
		{"Hadar", 3, "Had"},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
