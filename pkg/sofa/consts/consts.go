// Package consts holds the astronomical and numerical constants shared by
// the sofa packages.
package consts

const (
	// DPI is Pi.
	DPI = 3.141592653589793238462643
	// D2PI is 2Pi.
	D2PI = 6.283185307179586476925287
	// DR2D converts radians to degrees.
	DR2D = 57.29577951308232087679815
	// DD2R converts degrees to radians.
	DD2R = 1.745329251994329576923691e-2
	// DR2AS converts radians to arcseconds.
	DR2AS = 206264.8062470963551564734
	// DAS2R converts arcseconds to radians.
	DAS2R = 4.848136811095359935899141e-6
	// DS2R converts seconds of time to radians.
	DS2R = 7.272205216643039903848712e-5
	// TURNAS is arcseconds in a full circle.
	TURNAS = 1296000.0
	// DMAS2R converts milliarcseconds to radians.
	DMAS2R = DAS2R / 1e3
	// DTY is the length of the tropical year B1900 (days).
	DTY = 365.242198781
)

const (
	// DAYSEC is seconds per day.
	DAYSEC = 86400.0
	// DJY is days per Julian year.
	DJY = 365.25
	// DJC is days per Julian century.
	DJC = 36525.0
	// DJM is days per Julian millennium.
	DJM = 365250.0
	// DJ00 is the reference epoch J2000.0 as a Julian Date.
	DJ00 = 2451545.0
	// DJM0 is the Julian Date of Modified Julian Date zero.
	DJM0 = 2400000.5
	// DJM00 is the reference epoch J2000.0 as a Modified Julian Date.
	DJM00 = 51544.5
	// DJM77 is 1977 Jan 1.0 as a Modified Julian Date.
	DJM77 = 43144.0
	// D1900 is the offset of B1900.0 from J2000.0 in days.
	D1900 = 36524.68648
)

const (
	// TTMTAI is TT minus TAI in seconds.
	TTMTAI = 32.184
	// DAU is the astronomical unit in metres.
	DAU = 149597870.7e3
	// CMPS is the speed of light in metres per second.
	CMPS = 299792458.0
	// AULT is the light time for 1 au in seconds.
	AULT = DAU / CMPS
	// DC is the speed of light in au per day.
	DC = DAYSEC / AULT
	// ELG is L_G = 1 - d(TT)/d(TCG).
	ELG = 6.969290134e-10
	// ELB is L_B = 1 - d(TDB)/d(TCB).
	ELB = 1.550519768e-8
	// TDB0 is TDB minus TCB at 1977 Jan 1.0 TAI, in seconds.
	TDB0 = -6.55e-5
	// SRS is the Schwarzschild radius of the Sun in au.
	SRS = 1.97412574336e-8
)

// Reference ellipsoid identifiers.
const (
	WGS84 = 1
	GRS80 = 2
	WGS72 = 3
)

// IYMIN is the earliest year allowed by the calendar routines (4800BC).
const IYMIN = -4799
