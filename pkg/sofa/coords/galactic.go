package coords

import "github.com/litescript/ls-sofa/pkg/sofa/vm"

// icrsToGalactic is the Hipparcos form of the ICRS to galactic rotation,
// R3(-R) R1(pi/2-Q) R3(pi/2+P) with P = 192.85948, Q = 27.12825 and
// R = 32.93192 degrees.
var icrsToGalactic = vm.Mat3{
	{-0.054875560416215368492398900454, -0.873437090234885048760383168409, -0.483835015548713226831774175116},
	{0.494109427875583673525222371358, -0.444829629960011178146614061616, 0.746982244497218890527388004556},
	{-0.867666149019004701181616534570, -0.198076373431201528180486091412, 0.455983776175066922272100478348},
}

// Icrs2g converts ICRS RA,Dec to galactic longitude and latitude.
func Icrs2g(dr, dd float64) (dl, db float64) {
	return toSpherical(vm.Rxp(icrsToGalactic, vm.S2c(dr, dd)))
}

// G2icrs converts galactic longitude and latitude to ICRS RA,Dec.
func G2icrs(dl, db float64) (dr, dd float64) {
	return toSpherical(vm.Trxp(icrsToGalactic, vm.S2c(dl, db)))
}
