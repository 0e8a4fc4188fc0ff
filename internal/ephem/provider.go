// Package ephem provides apparent places of solar-system bodies.
package ephem

import (
	"context"
	"errors"
	"time"

	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// ErrUnknownBody is returned for a body the provider does not cover.
var ErrUnknownBody = errors.New("ephem: unknown body")

// BodyPosition is a body's geocentric place at one instant.
type BodyPosition struct {
	Body Body      `json:"body"`
	Time time.Time `json:"time"`

	// Dir is the geocentric direction, a unit vector in the GCRS.
	Dir    vm.Vec3 `json:"-"`
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
	DistAU float64 `json:"dist_au"`

	// LightTime is the one-way light time in seconds.
	LightTime float64 `json:"light_time_s"`
	Valid     bool    `json:"valid"`

	// Warning notes degraded accuracy, e.g. a date outside the
	// ephemeris span.
	Warning error `json:"-"`
}

// Path is a sequence of positions over time.
type Path struct {
	Body   Body           `json:"body"`
	Points []BodyPosition `json:"points"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
}

// Provider defines the interface for ephemeris sources.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Position returns the place of body at t.
	Position(ctx context.Context, body Body, t time.Time) (BodyPosition, error)

	// Path returns positions from start to end inclusive, every step.
	Path(ctx context.Context, body Body, start, end time.Time, step time.Duration) (Path, error)

	// Available returns true if this provider can supply the body.
	Available(body Body) bool
}

// Mode selects which corrections are applied.
type Mode int

const (
	ModeApparent  Mode = iota // light time and aberration (default)
	ModeGeometric             // instantaneous geometric direction
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeApparent:
		return "apparent"
	case ModeGeometric:
		return "geometric"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string.
func ParseMode(s string) Mode {
	switch s {
	case "geometric":
		return ModeGeometric
	default:
		return ModeApparent
	}
}
