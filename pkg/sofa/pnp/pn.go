package pnp

import (
	"github.com/litescript/ls-sofa/pkg/sofa/consts"
	"github.com/litescript/ls-sofa/pkg/sofa/vm"
)

// PN is the full set of precession-nutation products for one date.
type PN struct {
	Dpsi, Deps float64 // nutation used
	Epsa       float64 // mean obliquity of date
	RB         vm.Mat3 // frame bias
	RP         vm.Mat3 // precession
	RBP        vm.Mat3 // bias-precession
	RN         vm.Mat3 // nutation
	RBPN       vm.Mat3 // GCRS to true equator and equinox of date
}

// Pn00 builds the IAU 2000 precession-nutation products from the given
// nutation components.
func Pn00(date1, date2, dpsi, deps float64) PN {
	_, depspr := Pr00(date1, date2)
	epsa := Obl80(date1, date2) + depspr

	rb, rp, rbp := Bp00(date1, date2)
	rn := Numat(epsa, dpsi, deps)

	return PN{
		Dpsi: dpsi, Deps: deps, Epsa: epsa,
		RB: rb, RP: rp, RBP: rbp, RN: rn,
		RBPN: vm.Rxr(rn, rbp),
	}
}

// Pn00a is Pn00 with the nutation supplied by Nut00a.
func Pn00a(date1, date2 float64) PN {
	dpsi, deps := Nut00a(date1, date2)
	return Pn00(date1, date2, dpsi, deps)
}

// Pn00b is Pn00 with the nutation supplied by Nut00b.
func Pn00b(date1, date2 float64) PN {
	dpsi, deps := Nut00b(date1, date2)
	return Pn00(date1, date2, dpsi, deps)
}

// Pn06 builds the IAU 2006 precession-nutation products from the given
// nutation components.
func Pn06(date1, date2, dpsi, deps float64) PN {
	rb := Fw2m(Pfw06(consts.DJM0, consts.DJM00))

	gamb, phib, psib, epsa := Pfw06(date1, date2)
	rbp := Fw2m(gamb, phib, psib, epsa)
	rbpn := Fw2m(gamb, phib, psib+dpsi, epsa+deps)

	return PN{
		Dpsi: dpsi, Deps: deps, Epsa: epsa,
		RB:   rb,
		RP:   vm.Rxr(rbp, vm.Tr(rb)),
		RBP:  rbp,
		RN:   vm.Rxr(rbpn, vm.Tr(rbp)),
		RBPN: rbpn,
	}
}

// Pn06a is Pn06 with the nutation supplied by Nut06a.
func Pn06a(date1, date2 float64) PN {
	dpsi, deps := Nut06a(date1, date2)
	return Pn06(date1, date2, dpsi, deps)
}

// Pnm00a returns the IAU 2000A bias-precession-nutation matrix.
func Pnm00a(date1, date2 float64) vm.Mat3 {
	return Pn00a(date1, date2).RBPN
}

// Pnm00b returns the IAU 2000B bias-precession-nutation matrix.
func Pnm00b(date1, date2 float64) vm.Mat3 {
	return Pn00b(date1, date2).RBPN
}

// Pnm06a returns the IAU 2006/2000A bias-precession-nutation matrix.
func Pnm06a(date1, date2 float64) vm.Mat3 {
	gamb, phib, psib, epsa := Pfw06(date1, date2)
	dpsi, deps := Nut06a(date1, date2)
	return Fw2m(gamb, phib, psib+dpsi, epsa+deps)
}
