package astro

import (
	"math"
	"testing"
)

func TestGalactic(t *testing.T) {
	// ICRS place of l=320, b=-45.
	ra := radToDeg(5.9338074302227188048671087)
	dec := radToDeg(-1.1784870613579944551540570)

	g := Galactic(ra, dec)
	if math.Abs(g.LonDeg-320) > 1e-12 || math.Abs(g.LatDeg+45) > 1e-12 {
		t.Errorf("Galactic() = %+v, want l=320 b=-45", g)
	}

	back := FromGalactic(g.LonDeg, g.LatDeg)
	if math.Abs(back.LonDeg-ra) > 1e-10 || math.Abs(back.LatDeg-dec) > 1e-10 {
		t.Errorf("FromGalactic(Galactic()) = %+v, want %v %v", back, ra, dec)
	}
}

func TestGalacticCenter(t *testing.T) {
	// Sgr A* sits within a few arcminutes of the galactic origin.
	g := Galactic(266.41683, -29.00781)
	l := g.LonDeg
	if l > 180 {
		l -= 360
	}
	if math.Abs(l) > 0.1 || math.Abs(g.LatDeg) > 0.1 {
		t.Errorf("Galactic(Sgr A*) = %+v, want near 0,0", g)
	}
}

func TestEcliptic(t *testing.T) {
	tt := JD{2456165.5, 0.401182685}

	// SOFA reference for Eceq06.
	eq := FromEcliptic(tt, radToDeg(5.1), radToDeg(-0.9))
	if math.Abs(eq.LonDeg-radToDeg(5.533459733613627767)) > 1e-10 {
		t.Errorf("FromEcliptic() ra = %.12f", eq.LonDeg)
	}
	if math.Abs(eq.LatDeg-radToDeg(-1.246542932554480576)) > 1e-10 {
		t.Errorf("FromEcliptic() dec = %.12f", eq.LatDeg)
	}

	back := Ecliptic(tt, eq.LonDeg, eq.LatDeg)
	if math.Abs(back.LonDeg-radToDeg(5.1)) > 1e-9 || math.Abs(back.LatDeg-radToDeg(-0.9)) > 1e-9 {
		t.Errorf("Ecliptic(FromEcliptic()) = %+v", back)
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		deg  float64
		ndp  int
		want string
	}{
		{90, 1, "06h00m00.0s"},
		{0, 0, "00h00m00s"},
		{-15, 0, "23h00m00s"},
		{279.234735, 2, "18h36m56.34s"},
	}
	for _, tt := range tests {
		if got := FormatHMS(tt.deg, tt.ndp); got != tt.want {
			t.Errorf("FormatHMS(%v, %d) = %q, want %q", tt.deg, tt.ndp, got, tt.want)
		}
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		deg  float64
		ndp  int
		want string
	}{
		{-45.5, 0, `-45°30'00"`},
		{38.783689, 1, `+38°47'01.3"`},
		{0, 0, `+00°00'00"`},
	}
	for _, tt := range tests {
		if got := FormatDMS(tt.deg, tt.ndp); got != tt.want {
			t.Errorf("FormatDMS(%v, %d) = %q, want %q", tt.deg, tt.ndp, got, tt.want)
		}
	}
}

func TestParseHMSAndDMS(t *testing.T) {
	ra, err := ParseHMS('+', 18, 36, 56.34)
	if err != nil {
		t.Fatalf("ParseHMS() error = %v", err)
	}
	if math.Abs(ra-279.23475) > 1e-9 {
		t.Errorf("ParseHMS() = %.9f, want 279.23475", ra)
	}

	dec, err := ParseDMS('-', 16, 42, 58.0)
	if err != nil {
		t.Fatalf("ParseDMS() error = %v", err)
	}
	if math.Abs(dec+16.716111111) > 1e-9 {
		t.Errorf("ParseDMS() = %.9f, want -16.716111111", dec)
	}

	if _, err := ParseHMS('+', 25, 0, 0); err == nil {
		t.Error("ParseHMS(25h) expected an error")
	}
	if _, err := ParseDMS('+', 10, 61, 0); err == nil {
		t.Error("ParseDMS(61') expected an error")
	}
}

func TestLightTimeFromAU(t *testing.T) {
	lt := LightTime(1.0)
	if math.Abs(lt-499.004784) > 1e-5 {
		t.Errorf("LightTime(1 au) = %v, want ~499.0048", lt)
	}
}

func TestFormatLightTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{1.28, "1.3s"},
		{59.9, "59.9s"},
		{499.0, "8m19s"},
		{3600, "1h0m"},
		{80000, "22h13m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatLightTime(tt.seconds); got != tt.want {
				t.Errorf("FormatLightTime(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
