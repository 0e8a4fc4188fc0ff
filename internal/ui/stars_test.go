package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/state"
)

func TestStarsNavigation(t *testing.T) {
	m := NewStarsModel().SetSize(100, 30).UpdateData(testView(t), nil)

	if sv := m.Selected(); sv == nil || sv.Name != "Vega" {
		t.Fatalf("initial selection = %+v, want Vega", sv)
	}

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down")) // stays on the last row
	if sv := m.Selected(); sv.Name != "Sirius" {
		t.Errorf("after 3x down = %q, want Sirius", sv.Name)
	}

	m, _ = m.Update(key("home"))
	if sv := m.Selected(); sv.Name != "Vega" {
		t.Errorf("home = %q, want Vega", sv.Name)
	}
	m, _ = m.Update(key("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at the top", m.cursor)
	}
}

func TestStarsEnterOpensTarget(t *testing.T) {
	m := NewStarsModel().UpdateData(testView(t), nil)
	m, _ = m.Update(key("j"))

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	msg, ok := cmd().(OpenTargetMsg)
	if !ok || msg.Target != "Polaris" {
		t.Errorf("enter = %#v, want OpenTargetMsg{Polaris}", cmd())
	}
}

func TestStarsCursorClampedOnShrink(t *testing.T) {
	m := NewStarsModel().UpdateData(testView(t), nil)
	m.cursor = 2

	v := testView(t)
	v.Snapshot.Stars = v.Snapshot.Stars[:1]
	m = m.UpdateData(v, nil)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	m = m.UpdateData(state.View{}, nil)
	if m.Selected() != nil {
		t.Error("Selected() with no snapshot should be nil")
	}
}

func TestStarsView(t *testing.T) {
	m := NewStarsModel().SetSize(120, 30).UpdateData(testView(t), nil)
	out := plain(m.View())

	for _, want := range []string{"2/3 above the horizon", "Vega", "Polaris", "Sirius", "circ"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	empty := plain(NewStarsModel().View())
	if !strings.Contains(empty, "Waiting") {
		t.Errorf("empty View() = %q", empty)
	}
}

func TestWindowColumns(t *testing.T) {
	rise := time.Date(2024, 1, 1, 3, 4, 0, 0, time.UTC)
	tests := []struct {
		name string
		w    *astro.VisibilityWindow
		want [3]string
	}{
		{"nil", nil, [3]string{"-", "-", "-"}},
		{"invalid", &astro.VisibilityWindow{}, [3]string{"-", "-", "-"}},
		{"circumpolar", &astro.VisibilityWindow{Valid: true, AlwaysVisible: true, Transit: rise}, [3]string{"circ", "03:04", "circ"}},
		{"never", &astro.VisibilityWindow{Valid: true, NeverVisible: true}, [3]string{"never", "-", "never"}},
		{"ordinary", &astro.VisibilityWindow{Valid: true, Rise: rise, Transit: rise.Add(time.Hour), Set: rise.Add(2 * time.Hour)},
			[3]string{"03:04", "04:04", "05:04"}},
		{"no rise", &astro.VisibilityWindow{Valid: true, Set: rise}, [3]string{"-", "-", "03:04"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, tr, s := windowColumns(tt.w)
			if got := [3]string{r, tr, s}; got != tt.want {
				t.Errorf("windowColumns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrendString(t *testing.T) {
	var series []state.TimeSeries
	for i := 0; i < 40; i++ {
		series = append(series, state.TimeSeries{Timestamp: testTime.Add(time.Duration(i) * time.Minute), Value: float64(i*2) - 10})
	}

	got := []rune(trendString(series))
	if len(got) != trendWidth {
		t.Fatalf("trendString() has %d cells, want %d", len(got), trendWidth)
	}
	// The last sample is 68 degrees, the 7th of 8 blocks.
	if got[len(got)-1] != '▇' {
		t.Errorf("last cell = %q, want ▇", got[len(got)-1])
	}
	if trendString(nil) != "" {
		t.Error("trendString(nil) not empty")
	}
	if got := trendString(series[:2]); got != "··" {
		t.Errorf("below-horizon trend = %q, want ··", got)
	}
}
