package astro

import (
	"errors"
	"math"
	"time"
)

// ElevationSample is one elevation measurement.
type ElevationSample struct {
	Time  time.Time `json:"time"`
	ElDeg float64   `json:"el_deg"`
}

// VisibilityWindow represents a rise-transit-set cycle for an object.
type VisibilityWindow struct {
	Rise          time.Time `json:"rise"`    // crosses the threshold going up
	Transit       time.Time `json:"transit"` // highest point
	Set           time.Time `json:"set"`     // crosses the threshold going down
	MaxElevation  float64   `json:"max_elevation"`
	Valid         bool      `json:"valid"`
	AlwaysVisible bool      `json:"always_visible"` // never sets (circumpolar)
	NeverVisible  bool      `json:"never_visible"`  // never rises
}

// MinElevation is the default threshold for "above the horizon". The
// elevations are observed ones, so refraction is already in them.
const MinElevation = 0.0

// Errors for visibility calculations.
var (
	ErrInsufficientSamples = errors.New("insufficient samples for visibility calculation")
	ErrNoValidWindow       = errors.New("no valid visibility window found in time range")
	ErrBadStep             = errors.New("sample step must be positive")
)

// SampleElevation evaluates fn every step from start for span.
func SampleElevation(fn ElevationFunc, start time.Time, span, step time.Duration) ([]ElevationSample, error) {
	if step <= 0 {
		return nil, ErrBadStep
	}
	n := int(span/step) + 1
	samples := make([]ElevationSample, 0, n)
	for i := 0; i < n; i++ {
		t := start.Add(time.Duration(i) * step)
		el, err := fn(t)
		if err != nil {
			return nil, err
		}
		samples = append(samples, ElevationSample{Time: t, ElDeg: el})
	}
	return samples, nil
}

// RiseSet finds rise, transit and set in chronological samples, taking
// threshold as the horizon. Crossings are linearly interpolated and the
// transit is refined with a parabola through the highest three samples.
func RiseSet(samples []ElevationSample, threshold float64) (VisibilityWindow, error) {
	if len(samples) < 3 {
		return VisibilityWindow{}, ErrInsufficientSamples
	}

	minEl := 90.0
	maxEl := -90.0
	maxElIdx := 0
	for i, s := range samples {
		if s.ElDeg < minEl {
			minEl = s.ElDeg
		}
		if s.ElDeg > maxEl {
			maxEl = s.ElDeg
			maxElIdx = i
		}
	}

	if minEl > threshold {
		return VisibilityWindow{
			Transit:       samples[maxElIdx].Time,
			MaxElevation:  maxEl,
			Valid:         true,
			AlwaysVisible: true,
		}, nil
	}
	if maxEl < threshold {
		return VisibilityWindow{
			Valid:        true,
			NeverVisible: true,
		}, nil
	}

	// First upward crossing.
	var riseTime time.Time
	riseIdx := -1
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.ElDeg <= threshold && curr.ElDeg > threshold {
			riseTime = interpolateCrossing(prev.Time, curr.Time, prev.ElDeg, curr.ElDeg, threshold)
			riseIdx = i
			break
		}
	}

	// First downward crossing after the rise, or from the start if the
	// object is already up.
	var setTime time.Time
	setFound := false
	startIdx := 1
	if riseIdx > 0 {
		startIdx = riseIdx + 1
	}
	for i := startIdx; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		if prev.ElDeg > threshold && curr.ElDeg <= threshold {
			setTime = interpolateCrossing(prev.Time, curr.Time, prev.ElDeg, curr.ElDeg, threshold)
			setFound = true
			break
		}
	}

	transitTime, transitEl := Culmination(samples)

	up := samples[0].ElDeg > threshold
	return VisibilityWindow{
		Rise:         riseTime,
		Transit:      transitTime,
		Set:          setTime,
		MaxElevation: transitEl,
		Valid:        riseIdx > 0 || setFound || up,
	}, nil
}

// Culmination finds the time and elevation of the highest point.
func Culmination(samples []ElevationSample) (time.Time, float64) {
	if len(samples) == 0 {
		return time.Time{}, 0
	}

	maxIdx := 0
	for i, s := range samples {
		if s.ElDeg > samples[maxIdx].ElDeg {
			maxIdx = i
		}
	}

	if maxIdx == 0 || maxIdx == len(samples)-1 {
		return samples[maxIdx].Time, samples[maxIdx].ElDeg
	}
	return refineMaxElevation(samples[maxIdx-1], samples[maxIdx], samples[maxIdx+1])
}

// refineMaxElevation fits a parabola through three equally spaced
// samples and returns its vertex.
func refineMaxElevation(prev, peak, next ElevationSample) (time.Time, float64) {
	// y = at^2 + bt + c with t = -1, 0, +1
	y0, y1, y2 := prev.ElDeg, peak.ElDeg, next.ElDeg
	c := y1
	a := (y0+y2)/2 - c
	b := (y2 - y0) / 2

	// Only a downward-opening parabola has a maximum.
	if a >= 0 {
		return peak.Time, peak.ElDeg
	}

	tMax := -b / (2 * a)
	if tMax < -1 {
		tMax = -1
	} else if tMax > 1 {
		tMax = 1
	}

	dt := peak.Time.Sub(prev.Time)
	return peak.Time.Add(time.Duration(float64(dt) * tMax)), a*tMax*tMax + b*tMax + c
}

// interpolateCrossing finds the time when elevation crosses a threshold.
func interpolateCrossing(t1, t2 time.Time, el1, el2, threshold float64) time.Time {
	if math.Abs(el2-el1) < 0.0001 {
		return t1
	}

	fraction := (threshold - el1) / (el2 - el1)
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	dt := t2.Sub(t1)
	return t1.Add(time.Duration(float64(dt) * fraction))
}

// ElevationTier categorizes elevation for UI display.
type ElevationTier int

const (
	ElevationNone   ElevationTier = iota // Below horizon
	ElevationLow                         // 0-15 degrees
	ElevationMedium                      // 15-45 degrees
	ElevationHigh                        // 45+ degrees
)

// GetElevationTier returns the tier for a given elevation.
func GetElevationTier(elDeg float64) ElevationTier {
	switch {
	case elDeg <= 0:
		return ElevationNone
	case elDeg < 15:
		return ElevationLow
	case elDeg < 45:
		return ElevationMedium
	default:
		return ElevationHigh
	}
}
