package astro

import (
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// AngularSeparation returns the angle between two points on the
// celestial sphere. All coordinates in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	return radToDeg(vm.Seps(degToRad(ra1), degToRad(dec1), degToRad(ra2), degToRad(dec2)))
}

// PositionAngle returns the bearing of point 2 from point 1, measured
// from north through east, in degrees 0-360.
func PositionAngle(ra1, dec1, ra2, dec2 float64) float64 {
	return normalizeAngle360(radToDeg(vm.Pas(degToRad(ra1), degToRad(dec1), degToRad(ra2), degToRad(dec2))))
}

// SunSeparationTier categorizes sun separation for display.
type SunSeparationTier int

const (
	SunSepSafe    SunSeparationTier = iota // >= 20 degrees
	SunSepCaution                          // 10-20 degrees
	SunSepWarning                          // < 10 degrees
)

// GetSunSeparationTier returns the tier for a given separation angle.
func GetSunSeparationTier(sepDeg float64) SunSeparationTier {
	switch {
	case sepDeg < 10:
		return SunSepWarning
	case sepDeg < 20:
		return SunSepCaution
	default:
		return SunSepSafe
	}
}

// TwilightPhase names the Sun's depression band.
type TwilightPhase int

const (
	Daylight TwilightPhase = iota
	CivilTwilight
	NauticalTwilight
	AstronomicalTwilight
	Night
)

func (p TwilightPhase) String() string {
	switch p {
	case Daylight:
		return "day"
	case CivilTwilight:
		return "civil twilight"
	case NauticalTwilight:
		return "nautical twilight"
	case AstronomicalTwilight:
		return "astronomical twilight"
	default:
		return "night"
	}
}

// Twilight classifies the sky by the Sun's observed elevation.
func Twilight(sunElDeg float64) TwilightPhase {
	switch {
	case sunElDeg > -0.833:
		return Daylight
	case sunElDeg > -6:
		return CivilTwilight
	case sunElDeg > -12:
		return NauticalTwilight
	case sunElDeg > -18:
		return AstronomicalTwilight
	default:
		return Night
	}
}
