package pnp

// lunisolarTerm is one row of a luni-solar nutation series: multipliers of
// l, l', F, D, Om followed by longitude (sin, t*sin, cos) and obliquity
// (cos, t*cos, sin) coefficients.
type lunisolarTerm struct {
	nl, nlp, nf, nd, nom int8
	sp, spt, cp          float64
	ce, cet, se          float64
}

// IAU 2000A luni-solar nutation, units of 0.1 microarcsecond. The first 77
// rows are the IAU 2000B series.
var lunisolar2000 = [...]lunisolarTerm{
	// 1-10
	{0, 0, 0, 0, 1, -172064161.0, -174666.0, 33386.0, 92052331.0, 9086.0, 15377.0},
	{0, 0, 2, -2, 2, -13170906.0, -1675.0, -13696.0, 5730336.0, -3015.0, -4587.0},
	{0, 0, 2, 0, 2, -2276413.0, -234.0, 2796.0, 978459.0, -485.0, 1374.0},
	{0, 0, 0, 0, 2, 2074554.0, 207.0, -698.0, -897492.0, 470.0, -291.0},
	{0, 1, 0, 0, 0, 1475877.0, -3633.0, 11817.0, 73871.0, -184.0, -1924.0},
	{0, 1, 2, -2, 2, -516821.0, 1226.0, -524.0, 224386.0, -677.0, -174.0},
	{1, 0, 0, 0, 0, 711159.0, 73.0, -872.0, -6750.0, 0.0, 358.0},
	{0, 0, 2, 0, 1, -387298.0, -367.0, 380.0, 200728.0, 18.0, 318.0},
	{1, 0, 2, 0, 2, -301461.0, -36.0, 816.0, 129025.0, -63.0, 367.0},
	{0, -1, 2, -2, 2, 215829.0, -494.0, 111.0, -95929.0, 299.0, 132.0},
	// 11-20
	{0, 0, 2, -2, 1, 128227.0, 137.0, 181.0, -68982.0, -9.0, 39.0},
	{-1, 0, 2, 0, 2, 123457.0, 11.0, 19.0, -53311.0, 32.0, -4.0},
	{-1, 0, 0, 2, 0, 156994.0, 10.0, -168.0, -1235.0, 0.0, 82.0},
	{1, 0, 0, 0, 1, 63110.0, 63.0, 27.0, -33228.0, 0.0, -9.0},
	{-1, 0, 0, 0, 1, -57976.0, -63.0, -189.0, 31429.0, 0.0, -75.0},
	{-1, 0, 2, 2, 2, -59641.0, -11.0, 149.0, 25543.0, -11.0, 66.0},
	{1, 0, 2, 0, 1, -51613.0, -42.0, 129.0, 26366.0, 0.0, 78.0},
	{-2, 0, 2, 0, 1, 45893.0, 50.0, 31.0, -24236.0, -10.0, 20.0},
	{0, 0, 0, 2, 0, 63384.0, 11.0, -150.0, -1220.0, 0.0, 29.0},
	{0, 0, 2, 2, 2, -38571.0, -1.0, 158.0, 16452.0, -11.0, 68.0},
	// 21-30
	{0, -2, 2, -2, 2, 32481.0, 0.0, 0.0, -13870.0, 0.0, 0.0},
	{-2, 0, 0, 2, 0, -47722.0, 0.0, -18.0, 477.0, 0.0, -25.0},
	{2, 0, 2, 0, 2, -31046.0, -1.0, 131.0, 13238.0, -11.0, 59.0},
	{1, 0, 2, -2, 2, 28593.0, 0.0, -1.0, -12338.0, 10.0, -3.0},
	{-1, 0, 2, 0, 1, 20441.0, 21.0, 10.0, -10758.0, 0.0, -3.0},
	{2, 0, 0, 0, 0, 29243.0, 0.0, -74.0, -609.0, 0.0, 13.0},
	{0, 0, 2, 0, 0, 25887.0, 0.0, -66.0, -550.0, 0.0, 11.0},
	{0, 1, 0, 0, 1, -14053.0, -25.0, 79.0, 8551.0, -2.0, -45.0},
	{-1, 0, 0, 2, 1, 15164.0, 10.0, 11.0, -8001.0, 0.0, -1.0},
	{0, 2, 2, -2, 2, -15794.0, 72.0, -16.0, 6850.0, -42.0, -5.0},
	// 31-40
	{0, 0, -2, 2, 0, 21783.0, 0.0, 13.0, -167.0, 0.0, 13.0},
	{1, 0, 0, -2, 1, -12873.0, -10.0, -37.0, 6953.0, 0.0, -14.0},
	{0, -1, 0, 0, 1, -12654.0, 11.0, 63.0, 6415.0, 0.0, 26.0},
	{-1, 0, 2, 2, 1, -10204.0, 0.0, 25.0, 5222.0, 0.0, 15.0},
	{0, 2, 0, 0, 0, 16707.0, -85.0, -10.0, 168.0, -1.0, 10.0},
	{1, 0, 2, 2, 2, -7691.0, 0.0, 44.0, 3268.0, 0.0, 19.0},
	{-2, 0, 2, 0, 0, -11024.0, 0.0, -14.0, 104.0, 0.0, 2.0},
	{0, 1, 2, 0, 2, 7566.0, -21.0, -11.0, -3250.0, 0.0, -5.0},
	{0, 0, 2, 2, 1, -6637.0, -11.0, 25.0, 3353.0, 0.0, 14.0},
	{0, -1, 2, 0, 2, -7141.0, 21.0, 8.0, 3070.0, 0.0, 4.0},
	// 41-50
	{0, 0, 0, 2, 1, -6302.0, -11.0, 2.0, 3272.0, 0.0, 4.0},
	{1, 0, 2, -2, 1, 5800.0, 10.0, 2.0, -3045.0, 0.0, -1.0},
	{2, 0, 2, -2, 2, 6443.0, 0.0, -7.0, -2768.0, 0.0, -4.0},
	{-2, 0, 0, 2, 1, -5774.0, -11.0, -15.0, 3041.0, 0.0, -5.0},
	{2, 0, 2, 0, 1, -5350.0, 0.0, 21.0, 2695.0, 0.0, 12.0},
	{0, -1, 2, -2, 1, -4752.0, -11.0, -3.0, 2719.0, 0.0, -3.0},
	{0, 0, 0, -2, 1, -4940.0, -11.0, -21.0, 2720.0, 0.0, -9.0},
	{-1, -1, 0, 2, 0, 7350.0, 0.0, -8.0, -51.0, 0.0, 4.0},
	{2, 0, 0, -2, 1, 4065.0, 0.0, 6.0, -2206.0, 0.0, 1.0},
	{1, 0, 0, 2, 0, 6579.0, 0.0, -24.0, -199.0, 0.0, 2.0},
	// 51-60
	{0, 1, 2, -2, 1, 3579.0, 0.0, 5.0, -1900.0, 0.0, 1.0},
	{1, -1, 0, 0, 0, 4725.0, 0.0, -6.0, -41.0, 0.0, 3.0},
	{-2, 0, 2, 0, 2, -3075.0, 0.0, -2.0, 1313.0, 0.0, -1.0},
	{3, 0, 2, 0, 2, -2904.0, 0.0, 15.0, 1233.0, 0.0, 7.0},
	{0, -1, 0, 2, 0, 4348.0, 0.0, -10.0, -81.0, 0.0, 2.0},
	{1, -1, 2, 0, 2, -2878.0, 0.0, 8.0, 1232.0, 0.0, 4.0},
	{0, 0, 0, 1, 0, -4230.0, 0.0, 5.0, -20.0, 0.0, -2.0},
	{-1, -1, 2, 2, 2, -2819.0, 0.0, 7.0, 1207.0, 0.0, 3.0},
	{-1, 0, 2, 0, 0, -4056.0, 0.0, 5.0, 40.0, 0.0, -2.0},
	{0, -1, 2, 2, 2, -2647.0, 0.0, 11.0, 1129.0, 0.0, 5.0},
	// 61-70
	{-2, 0, 0, 0, 1, -2294.0, 0.0, -10.0, 1266.0, 0.0, -4.0},
	{1, 1, 2, 0, 2, 2481.0, 0.0, -7.0, -1062.0, 0.0, -3.0},
	{2, 0, 0, 0, 1, 2179.0, 0.0, -2.0, -1129.0, 0.0, -2.0},
	{-1, 1, 0, 1, 0, 3276.0, 0.0, 1.0, -9.0, 0.0, 0.0},
	{1, 1, 0, 0, 0, -3389.0, 0.0, 5.0, 35.0, 0.0, -2.0},
	{1, 0, 2, 0, 0, 3339.0, 0.0, -13.0, -107.0, 0.0, 1.0},
	{-1, 0, 2, -2, 1, -1987.0, 0.0, -6.0, 1073.0, 0.0, -2.0},
	{1, 0, 0, 0, 2, -1981.0, 0.0, 0.0, 854.0, 0.0, 0.0},
	{-1, 0, 0, 1, 0, 4026.0, 0.0, -353.0, -553.0, 0.0, -139.0},
	{0, 0, 2, 1, 2, 1660.0, 0.0, -5.0, -710.0, 0.0, -2.0},
	// 71-80
	{-1, 0, 2, 4, 2, -1521.0, 0.0, 9.0, 647.0, 0.0, 4.0},
	{-1, 1, 0, 1, 1, 1314.0, 0.0, 0.0, -700.0, 0.0, 0.0},
	{0, -2, 2, -2, 1, -1283.0, 0.0, 0.0, 672.0, 0.0, 0.0},
	{1, 0, 2, 2, 1, -1331.0, 0.0, 8.0, 663.0, 0.0, 4.0},
	{-2, 0, 2, 2, 2, 1383.0, 0.0, -2.0, -594.0, 0.0, -2.0},
	{-1, 0, 0, 0, 2, 1405.0, 0.0, 4.0, -610.0, 0.0, 2.0},
	{1, 1, 2, -2, 2, 1290.0, 0.0, 0.0, -556.0, 0.0, 0.0},
	{-2, 0, 2, 4, 2, -1214.0, 0.0, 5.0, 518.0, 0.0, 2.0},
	{-1, 0, 4, 0, 2, 1146.0, 0.0, -3.0, -490.0, 0.0, -1.0},
	{2, 0, 2, -2, 1, 1019.0, 0.0, -1.0, -527.0, 0.0, -1.0},
	// 81-90
	{2, 0, 2, 2, 2, -1100.0, 0.0, 9.0, 465.0, 0.0, 4.0},
	{1, 0, 0, 2, 1, -970.0, 0.0, 2.0, 496.0, 0.0, 1.0},
	{3, 0, 0, 0, 0, 1575.0, 0.0, -6.0, -50.0, 0.0, 0.0},
	{3, 0, 2, -2, 2, 934.0, 0.0, -3.0, -399.0, 0.0, -1.0},
	{0, 0, 4, -2, 2, 922.0, 0.0, -1.0, -395.0, 0.0, -1.0},
	{0, 1, 2, 0, 1, 815.0, 0.0, -1.0, -422.0, 0.0, -1.0},
	{0, 0, -2, 2, 1, 834.0, 0.0, 2.0, -440.0, 0.0, 1.0},
	{0, 0, 2, -2, 3, 1248.0, 0.0, 0.0, -170.0, 0.0, 1.0},
	{-1, 0, 0, 4, 0, 1338.0, 0.0, -5.0, -39.0, 0.0, 0.0},
	{2, 0, -2, 0, 1, 716.0, 0.0, -2.0, -389.0, 0.0, -1.0},
	// 91-100
	{-2, 0, 0, 4, 0, 1282.0, 0.0, -3.0, -23.0, 0.0, 1.0},
	{-1, -1, 0, 2, 1, 742.0, 0.0, 1.0, -391.0, 0.0, 0.0},
	{-1, 0, 0, 1, 1, 1020.0, 0.0, -25.0, -495.0, 0.0, -10.0},
	{0, 1, 0, 0, 2, 715.0, 0.0, -4.0, -326.0, 0.0, 2.0},
	{0, 0, -2, 0, 1, -666.0, 0.0, -3.0, 369.0, 0.0, -1.0},
	{0, -1, 2, 0, 1, -667.0, 0.0, 1.0, 346.0, 0.0, 1.0},
	{0, 0, 2, -1, 2, -704.0, 0.0, 0.0, 304.0, 0.0, 0.0},
	{0, 0, 2, 4, 2, -694.0, 0.0, 5.0, 294.0, 0.0, 2.0},
	{-2, -1, 0, 2, 0, -1014.0, 0.0, -1.0, 4.0, 0.0, -1.0},
	{1, 1, 0, -2, 1, -585.0, 0.0, -2.0, 316.0, 0.0, -1.0},
	// 101-110
	{-1, 1, 0, 2, 0, -949.0, 0.0, 1.0, 8.0, 0.0, -1.0},
	{-1, 1, 0, 1, 2, -595.0, 0.0, 0.0, 258.0, 0.0, 0.0},
	{1, -1, 0, 0, 1, 528.0, 0.0, 0.0, -279.0, 0.0, 0.0},
	{1, -1, 2, 2, 2, -590.0, 0.0, 4.0, 252.0, 0.0, 2.0},
	{-1, 1, 2, 2, 2, 570.0, 0.0, -2.0, -244.0, 0.0, -1.0},
	{3, 0, 2, 0, 1, -502.0, 0.0, 3.0, 250.0, 0.0, 2.0},
	{0, 1, -2, 2, 0, -875.0, 0.0, 1.0, 29.0, 0.0, 0.0},
	{-1, 0, 0, -2, 1, -492.0, 0.0, -3.0, 275.0, 0.0, -1.0},
	{0, 1, 2, 2, 2, 535.0, 0.0, -2.0, -228.0, 0.0, -1.0},
	{-1, -1, 2, 2, 1, -467.0, 0.0, 1.0, 240.0, 0.0, 1.0},
	// 111-120
	{0, -1, 0, 0, 2, 591.0, 0.0, 0.0, -253.0, 0.0, 0.0},
	{1, 0, 2, -4, 1, -453.0, 0.0, -1.0, 244.0, 0.0, -1.0},
	{-1, 0, -2, 2, 0, 766.0, 0.0, 1.0, 9.0, 0.0, 0.0},
	{0, -1, 2, 2, 1, -446.0, 0.0, 2.0, 225.0, 0.0, 1.0},
	{2, -1, 2, 0, 2, -488.0, 0.0, 2.0, 207.0, 0.0, 1.0},
	{0, 0, 0, 2, 2, -468.0, 0.0, 0.0, 201.0, 0.0, 0.0},
	{1, -1, 2, 0, 1, -421.0, 0.0, 1.0, 216.0, 0.0, 1.0},
	{-1, 1, 2, 0, 2, 463.0, 0.0, 0.0, -200.0, 0.0, 0.0},
	{0, 1, 0, 2, 0, -673.0, 0.0, 2.0, 14.0, 0.0, 0.0},
	{0, -1, -2, 2, 0, 658.0, 0.0, 0.0, -2.0, 0.0, 0.0},
	// 121-130
	{0, 3, 2, -2, 2, -438.0, 0.0, 0.0, 188.0, 0.0, 0.0},
	{0, 0, 0, 1, 1, -390.0, 0.0, 0.0, 205.0, 0.0, 0.0},
	{-1, 0, 2, 2, 0, 639.0, -11.0, -2.0, -19.0, 0.0, 0.0},
	{2, 1, 2, 0, 2, 412.0, 0.0, -2.0, -176.0, 0.0, -1.0},
	{1, 1, 0, 0, 1, -361.0, 0.0, 0.0, 189.0, 0.0, 0.0},
	{1, 1, 2, 0, 1, 360.0, 0.0, -1.0, -185.0, 0.0, -1.0},
	{2, 0, 0, 0, 2, 588.0, 0.0, -3.0, -24.0, 0.0, 0.0},
	{1, 0, -2, 2, 0, -578.0, 0.0, 1.0, 5.0, 0.0, 0.0},
	{-1, 0, 0, 2, 2, -396.0, 0.0, 0.0, 171.0, 0.0, 0.0},
	{0, 1, 0, 1, 0, 565.0, 0.0, -1.0, -6.0, 0.0, 0.0},
	// 131-140
	{0, 1, 0, -2, 1, -335.0, 0.0, -1.0, 184.0, 0.0, -1.0},
	{-1, 0, 2, -2, 2, 357.0, 0.0, 1.0, -154.0, 0.0, 0.0},
	{0, 0, 0, -1, 1, 321.0, 0.0, 1.0, -174.0, 0.0, 0.0},
	{-1, 1, 0, 0, 1, -301.0, 0.0, -1.0, 162.0, 0.0, 0.0},
	{1, 0, 2, -1, 2, -334.0, 0.0, 0.0, 144.0, 0.0, 0.0},
	{1, -1, 0, 2, 0, 493.0, 0.0, -2.0, -15.0, 0.0, 0.0},
	{0, 0, 0, 4, 0, 494.0, 0.0, -2.0, -19.0, 0.0, 0.0},
	{1, 0, 2, 1, 2, 337.0, 0.0, -1.0, -143.0, 0.0, -1.0},
	{0, 0, 2, 1, 1, 280.0, 0.0, -1.0, -144.0, 0.0, 0.0},
	{1, 0, 0, -2, 2, 309.0, 0.0, 1.0, -134.0, 0.0, 0.0},
	// 141-150
	{-1, 0, 2, 4, 1, -263.0, 0.0, 2.0, 131.0, 0.0, 1.0},
	{1, 0, -2, 0, 1, 253.0, 0.0, 1.0, -138.0, 0.0, 0.0},
	{1, 1, 2, -2, 1, 245.0, 0.0, 0.0, -128.0, 0.0, 0.0},
	{0, 0, 2, 2, 0, 416.0, 0.0, -2.0, -17.0, 0.0, 0.0},
	{-1, 0, 2, -1, 2, -229.0, 0.0, 0.0, 128.0, 0.0, 0.0},
	{-2, 0, 2, 2, 1, 231.0, 0.0, 0.0, -120.0, 0.0, 0.0},
	{4, 0, 2, 0, 2, -259.0, 0.0, 2.0, 109.0, 0.0, 1.0},
	{2, -1, 0, 0, 0, 375.0, 0.0, -1.0, -8.0, 0.0, 0.0},
	{2, 1, 2, -2, 2, 252.0, 0.0, 0.0, -108.0, 0.0, 0.0},
	{0, 1, 2, 1, 2, -245.0, 0.0, 1.0, 104.0, 0.0, 0.0},
	// 151-160
	{1, 0, 4, -2, 2, 243.0, 0.0, -1.0, -104.0, 0.0, 0.0},
	{-1, -1, 0, 0, 1, 208.0, 0.0, 1.0, -112.0, 0.0, 0.0},
	{0, 1, 0, 2, 1, 199.0, 0.0, 0.0, -102.0, 0.0, 0.0},
	{-2, 0, 2, 4, 1, -208.0, 0.0, 1.0, 105.0, 0.0, 0.0},
	{2, 0, 2, 0, 0, 335.0, 0.0, -2.0, -14.0, 0.0, 0.0},
	{1, 0, 0, 1, 0, -325.0, 0.0, 1.0, 7.0, 0.0, 0.0},
	{-1, 0, 0, 4, 1, -187.0, 0.0, 0.0, 96.0, 0.0, 0.0},
	{-1, 0, 4, 0, 1, 197.0, 0.0, -1.0, -100.0, 0.0, 0.0},
	{2, 0, 2, 2, 1, -192.0, 0.0, 2.0, 94.0, 0.0, 1.0},
	{0, 0, 2, -3, 2, -188.0, 0.0, 0.0, 83.0, 0.0, 0.0},
	// 161-170
	{-1, -2, 0, 2, 0, 276.0, 0.0, 0.0, -2.0, 0.0, 0.0},
	{2, 1, 0, 0, 0, -286.0, 0.0, 1.0, 6.0, 0.0, 0.0},
	{0, 0, 4, 0, 2, 186.0, 0.0, -1.0, -79.0, 0.0, 0.0},
	{0, 0, 0, 0, 3, -219.0, 0.0, 0.0, 43.0, 0.0, 0.0},
	{0, 3, 0, 0, 0, 276.0, 0.0, 0.0, 2.0, 0.0, 0.0},
	{0, 0, 2, -4, 1, -153.0, 0.0, -1.0, 84.0, 0.0, 0.0},
	{0, -1, 0, 2, 1, -156.0, 0.0, 0.0, 81.0, 0.0, 0.0},
	{0, 0, 0, 4, 1, -154.0, 0.0, 1.0, 78.0, 0.0, 0.0},
	{-1, -1, 2, 4, 2, -174.0, 0.0, 1.0, 75.0, 0.0, 0.0},
	{1, 0, 2, 4, 2, -163.0, 0.0, 2.0, 69.0, 0.0, 1.0},
	// 171-180
	{-2, 2, 0, 2, 0, -228.0, 0.0, 0.0, 1.0, 0.0, 0.0},
	{-2, -1, 2, 0, 1, 91.0, 0.0, -4.0, -54.0, 0.0, -2.0},
	{-2, 0, 0, 2, 2, 175.0, 0.0, 0.0, -75.0, 0.0, 0.0},
	{-1, -1, 2, 0, 2, -159.0, 0.0, 0.0, 69.0, 0.0, 0.0},
	{0, 0, 4, -2, 1, 141.0, 0.0, 0.0, -72.0, 0.0, 0.0},
	{3, 0, 2, -2, 1, 147.0, 0.0, 0.0, -75.0, 0.0, 0.0},
	{-2, -1, 0, 2, 1, -132.0, 0.0, 0.0, 69.0, 0.0, 0.0},
	{1, 0, 0, -1, 1, 159.0, 0.0, -28.0, -54.0, 0.0, 11.0},
	{0, -2, 0, 2, 0, 213.0, 0.0, 0.0, -4.0, 0.0, 0.0},
	{-2, 0, 0, 4, 1, 123.0, 0.0, 0.0, -64.0, 0.0, 0.0},
	// 181-190
	{-3, 0, 0, 0, 1, -118.0, 0.0, -1.0, 66.0, 0.0, 0.0},
	{1, 1, 2, 2, 2, 144.0, 0.0, -1.0, -61.0, 0.0, 0.0},
	{0, 0, 2, 4, 1, -121.0, 0.0, 1.0, 60.0, 0.0, 0.0},
	{3, 0, 2, 2, 2, -134.0, 0.0, 1.0, 56.0, 0.0, 1.0},
	{-1, 1, 2, -2, 1, -105.0, 0.0, 0.0, 57.0, 0.0, 0.0},
	{2, 0, 0, -4, 1, -102.0, 0.0, 0.0, 56.0, 0.0, 0.0},
	{0, 0, 0, -2, 2, 120.0, 0.0, 0.0, -52.0, 0.0, 0.0},
	{2, 0, 2, -4, 1, 101.0, 0.0, 0.0, -54.0, 0.0, 0.0},
	{-1, 1, 0, 2, 1, -113.0, 0.0, 0.0, 59.0, 0.0, 0.0},
	{0, 0, 2, -1, 1, -106.0, 0.0, 0.0, 61.0, 0.0, 0.0},
	// 191-200
	{0, -2, 2, 2, 2, -129.0, 0.0, 1.0, 55.0, 0.0, 0.0},
	{2, 0, 0, 2, 1, -114.0, 0.0, 0.0, 57.0, 0.0, 0.0},
	{4, 0, 2, -2, 2, 113.0, 0.0, -1.0, -49.0, 0.0, 0.0},
	{2, 0, 0, -2, 2, -102.0, 0.0, 0.0, 44.0, 0.0, 0.0},
	{0, 2, 0, 0, 1, -94.0, 0.0, 0.0, 51.0, 0.0, 0.0},
	{1, 0, 0, -4, 1, -100.0, 0.0, -1.0, 56.0, 0.0, 0.0},
	{0, 2, 2, -2, 1, 87.0, 0.0, 0.0, -47.0, 0.0, 0.0},
	{-3, 0, 0, 4, 0, 161.0, 0.0, 0.0, -1.0, 0.0, 0.0},
	{-1, 1, 2, 0, 1, 96.0, 0.0, 0.0, -50.0, 0.0, 0.0},
	{-1, -1, 0, 4, 0, 151.0, 0.0, -1.0, -5.0, 0.0, 0.0},
	// 201-210
	{-1, -2, 2, 2, 2, -104.0, 0.0, 0.0, 44.0, 0.0, 0.0},
	{-2, -1, 2, 4, 2, -110.0, 0.0, 0.0, 48.0, 0.0, 0.0},
	{1, -1, 2, 2, 1, -100.0, 0.0, 1.0, 50.0, 0.0, 0.0},
	{-2, 1, 0, 2, 0, 92.0, 0.0, -5.0, 12.0, 0.0, -2.0},
	{-2, 1, 2, 0, 1, 82.0, 0.0, 0.0, -45.0, 0.0, 0.0},
	{2, 1, 0, -2, 1, 82.0, 0.0, 0.0, -45.0, 0.0, 0.0},
	{-3, 0, 2, 0, 1, -78.0, 0.0, 0.0, 41.0, 0.0, 0.0},
	{-2, 0, 2, -2, 1, -77.0, 0.0, 0.0, 43.0, 0.0, 0.0},
	{-1, 1, 0, 2, 2, 2.0, 0.0, 0.0, 54.0, 0.0, 0.0},
	{0, -1, 2, -1, 2, 94.0, 0.0, 0.0, -40.0, 0.0, 0.0},
	// 211-220
	{-1, 0, 4, -2, 2, -93.0, 0.0, 0.0, 40.0, 0.0, 0.0},
	{0, -2, 2, 0, 2, -83.0, 0.0, 10.0, 40.0, 0.0, -2.0},
	{-1, 0, 2, 1, 2, 83.0, 0.0, 0.0, -36.0, 0.0, 0.0},
	{2, 0, 0, 0, 2, -91.0, 0.0, 0.0, 39.0, 0.0, 0.0},
	{0, 0, 2, 0, 3, 128.0, 0.0, 0.0, -1.0, 0.0, 0.0},
	{-2, 0, 4, 0, 2, -79.0, 0.0, 0.0, 34.0, 0.0, 0.0},
	{-1, 0, -2, 0, 1, -83.0, 0.0, 0.0, 47.0, 0.0, 0.0},
	{-1, 1, 2, 2, 1, 84.0, 0.0, 0.0, -44.0, 0.0, 0.0},
	{3, 0, 0, 0, 1, 83.0, 0.0, 0.0, -43.0, 0.0, 0.0},
	{-1, 0, 2, 3, 2, 91.0, 0.0, 0.0, -39.0, 0.0, 0.0},
	// 221-230
	{2, -1, 2, 0, 1, -77.0, 0.0, 0.0, 39.0, 0.0, 0.0},
	{0, 1, 2, 2, 1, 84.0, 0.0, 0.0, -43.0, 0.0, 0.0},
	{0, -1, 2, 4, 2, -92.0, 0.0, 1.0, 39.0, 0.0, 0.0},
	{2, -1, 2, 2, 2, -92.0, 0.0, 1.0, 39.0, 0.0, 0.0},
	{0, 2, -2, 2, 0, -94.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{-1, -1, 2, -1, 1, 68.0, 0.0, 0.0, -36.0, 0.0, 0.0},
	{0, -2, 0, 0, 1, -61.0, 0.0, 0.0, 32.0, 0.0, 0.0},
	{1, 0, 2, -4, 2, 71.0, 0.0, 0.0, -31.0, 0.0, 0.0},
	{1, -1, 0, -2, 1, 62.0, 0.0, 0.0, -34.0, 0.0, 0.0},
	{-1, -1, 2, 0, 1, -63.0, 0.0, 0.0, 33.0, 0.0, 0.0},
	// 231-240
	{1, -1, 2, -2, 2, -73.0, 0.0, 0.0, 32.0, 0.0, 0.0},
	{-2, -1, 0, 4, 0, 115.0, 0.0, 0.0, -2.0, 0.0, 0.0},
	{-1, 0, 0, 3, 0, -103.0, 0.0, 0.0, 2.0, 0.0, 0.0},
	{-2, -1, 2, 2, 2, 63.0, 0.0, 0.0, -28.0, 0.0, 0.0},
	{0, 2, 2, 0, 2, 74.0, 0.0, 0.0, -32.0, 0.0, 0.0},
	{1, 1, 0, 2, 0, -103.0, 0.0, -3.0, 3.0, 0.0, -1.0},
	{2, 0, 2, -1, 2, -69.0, 0.0, 0.0, 30.0, 0.0, 0.0},
	{1, 0, 2, 1, 1, 57.0, 0.0, 0.0, -29.0, 0.0, 0.0},
	{4, 0, 0, 0, 0, 94.0, 0.0, 0.0, -4.0, 0.0, 0.0},
	{2, 1, 2, 0, 1, 64.0, 0.0, 0.0, -33.0, 0.0, 0.0},
	// 241-250
	{3, -1, 2, 0, 2, -63.0, 0.0, 0.0, 26.0, 0.0, 0.0},
	{-2, 2, 0, 2, 1, -38.0, 0.0, 0.0, 20.0, 0.0, 0.0},
	{1, 0, 2, -3, 1, -43.0, 0.0, 0.0, 24.0, 0.0, 0.0},
	{1, 1, 2, -4, 1, -45.0, 0.0, 0.0, 23.0, 0.0, 0.0},
	{-1, -1, 2, -2, 1, 47.0, 0.0, 0.0, -24.0, 0.0, 0.0},
	{0, -1, 0, -1, 1, -48.0, 0.0, 0.0, 25.0, 0.0, 0.0},
	{0, -1, 0, -2, 1, 45.0, 0.0, 0.0, -26.0, 0.0, 0.0},
	{-2, 0, 0, 0, 2, 56.0, 0.0, 0.0, -25.0, 0.0, 0.0},
	{-2, 0, -2, 2, 0, 88.0, 0.0, 0.0, 2.0, 0.0, 0.0},
	{-1, 0, -2, 4, 0, -75.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	// 251-260
	{1, -2, 0, 0, 0, 85.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 1, 1, 49.0, 0.0, 0.0, -26.0, 0.0, 0.0},
	{-1, 2, 0, 2, 0, -74.0, 0.0, -3.0, -1.0, 0.0, -1.0},
	{1, -1, 2, -2, 1, -39.0, 0.0, 0.0, 21.0, 0.0, 0.0},
	{1, 2, 2, -2, 2, 45.0, 0.0, 0.0, -20.0, 0.0, 0.0},
	{2, -1, 2, -2, 2, 51.0, 0.0, 0.0, -22.0, 0.0, 0.0},
	{1, 0, 2, -1, 1, -40.0, 0.0, 0.0, 21.0, 0.0, 0.0},
	{2, 1, 2, -2, 1, 41.0, 0.0, 0.0, -21.0, 0.0, 0.0},
	{-2, 0, 0, -2, 1, -42.0, 0.0, 0.0, 24.0, 0.0, 0.0},
	{1, -2, 2, 0, 2, -51.0, 0.0, 0.0, 22.0, 0.0, 0.0},
	// 261-270
	{0, 1, 2, 1, 1, -42.0, 0.0, 0.0, 22.0, 0.0, 0.0},
	{1, 0, 4, -2, 1, 39.0, 0.0, 0.0, -21.0, 0.0, 0.0},
	{-2, 0, 4, 2, 2, 46.0, 0.0, 0.0, -18.0, 0.0, 0.0},
	{1, 1, 2, 1, 2, -53.0, 0.0, 0.0, 22.0, 0.0, 0.0},
	{1, 0, 0, 4, 0, 82.0, 0.0, 0.0, -4.0, 0.0, 0.0},
	{1, 0, 2, 2, 0, 81.0, 0.0, -1.0, -4.0, 0.0, 0.0},
	{2, 0, 2, 1, 2, 47.0, 0.0, 0.0, -19.0, 0.0, 0.0},
	{3, 1, 2, 0, 2, 53.0, 0.0, 0.0, -23.0, 0.0, 0.0},
	{4, 0, 2, 0, 1, -45.0, 0.0, 0.0, 22.0, 0.0, 0.0},
	{-2, -1, 2, 0, 0, -44.0, 0.0, 0.0, -2.0, 0.0, 0.0},
	// 271-280
	{0, 1, -2, 2, 1, -33.0, 0.0, 0.0, 16.0, 0.0, 0.0},
	{1, 0, -2, 1, 0, -61.0, 0.0, 0.0, 1.0, 0.0, 0.0},
	{0, -1, -2, 2, 1, 28.0, 0.0, 0.0, -15.0, 0.0, 0.0},
	{2, -1, 0, -2, 1, -38.0, 0.0, 0.0, 19.0, 0.0, 0.0},
	{-1, 0, 2, -1, 1, -33.0, 0.0, 0.0, 21.0, 0.0, 0.0},
	{1, 0, 2, -3, 2, -60.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{0, 1, 2, -2, 3, 48.0, 0.0, 0.0, -10.0, 0.0, 0.0},
	{0, 0, 2, -3, 1, 27.0, 0.0, 0.0, -14.0, 0.0, 0.0},
	{-1, 0, -2, 2, 1, 38.0, 0.0, 0.0, -20.0, 0.0, 0.0},
	{0, 0, 2, -4, 2, 31.0, 0.0, 0.0, -13.0, 0.0, 0.0},
	// 281-290
	{-2, 1, 0, 0, 1, -29.0, 0.0, 0.0, 15.0, 0.0, 0.0},
	{-1, 0, 0, -1, 1, 28.0, 0.0, 0.0, -15.0, 0.0, 0.0},
	{2, 0, 2, -4, 2, -32.0, 0.0, 0.0, 15.0, 0.0, 0.0},
	{0, 0, 4, -4, 4, 45.0, 0.0, 0.0, -8.0, 0.0, 0.0},
	{0, 0, 4, -4, 2, -44.0, 0.0, 0.0, 19.0, 0.0, 0.0},
	{-1, -2, 0, 2, 1, 28.0, 0.0, 0.0, -15.0, 0.0, 0.0},
	{-2, 0, 0, 3, 0, -51.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{1, 0, -2, 2, 1, -36.0, 0.0, 0.0, 20.0, 0.0, 0.0},
	{-3, 0, 2, 2, 2, 44.0, 0.0, 0.0, -19.0, 0.0, 0.0},
	{-3, 0, 2, 2, 1, 26.0, 0.0, 0.0, -14.0, 0.0, 0.0},
	// 291-300
	{-2, 0, 2, 2, 0, -60.0, 0.0, 0.0, 2.0, 0.0, 0.0},
	{2, -1, 0, 0, 1, 35.0, 0.0, 0.0, -18.0, 0.0, 0.0},
	{-2, 1, 2, 2, 2, -27.0, 0.0, 0.0, 11.0, 0.0, 0.0},
	{1, 1, 0, 1, 0, 47.0, 0.0, 0.0, -1.0, 0.0, 0.0},
	{0, 1, 4, -2, 2, 36.0, 0.0, 0.0, -15.0, 0.0, 0.0},
	{-1, 1, 0, -2, 1, -36.0, 0.0, 0.0, 20.0, 0.0, 0.0},
	{0, 0, 0, -4, 1, -35.0, 0.0, 0.0, 19.0, 0.0, 0.0},
	{1, -1, 0, 2, 1, -37.0, 0.0, 0.0, 19.0, 0.0, 0.0},
	{1, 1, 0, 2, 1, 32.0, 0.0, 0.0, -16.0, 0.0, 0.0},
	{-1, 2, 2, 2, 2, 35.0, 0.0, 0.0, -14.0, 0.0, 0.0},
	// 301-310
	{3, 1, 2, -2, 2, 32.0, 0.0, 0.0, -13.0, 0.0, 0.0},
	{0, -1, 0, 4, 0, 65.0, 0.0, 0.0, -2.0, 0.0, 0.0},
	{2, -1, 0, 2, 0, 47.0, 0.0, 0.0, -1.0, 0.0, 0.0},
	{0, 0, 4, 0, 1, 32.0, 0.0, 0.0, -16.0, 0.0, 0.0},
	{2, 0, 4, -2, 2, 37.0, 0.0, 0.0, -16.0, 0.0, 0.0},
	{-1, -1, 2, 4, 1, -30.0, 0.0, 0.0, 15.0, 0.0, 0.0},
	{1, 0, 0, 4, 1, -32.0, 0.0, 0.0, 16.0, 0.0, 0.0},
	{1, -2, 2, 2, 2, -31.0, 0.0, 0.0, 13.0, 0.0, 0.0},
	{0, 0, 2, 3, 2, 37.0, 0.0, 0.0, -16.0, 0.0, 0.0},
	{-1, 1, 2, 4, 2, 31.0, 0.0, 0.0, -13.0, 0.0, 0.0},
	// 311-320
	{3, 0, 0, 2, 0, 49.0, 0.0, 0.0, -2.0, 0.0, 0.0},
	{-1, 0, 4, 2, 2, 32.0, 0.0, 0.0, -13.0, 0.0, 0.0},
	{1, 1, 2, 2, 1, 23.0, 0.0, 0.0, -12.0, 0.0, 0.0},
	{-2, 0, 2, 6, 2, -43.0, 0.0, 0.0, 18.0, 0.0, 0.0},
	{2, 1, 2, 2, 2, 26.0, 0.0, 0.0, -11.0, 0.0, 0.0},
	{-1, 0, 2, 6, 2, -32.0, 0.0, 0.0, 14.0, 0.0, 0.0},
	{1, 0, 2, 4, 1, -29.0, 0.0, 0.0, 14.0, 0.0, 0.0},
	{2, 0, 2, 4, 2, -27.0, 0.0, 0.0, 12.0, 0.0, 0.0},
	{1, 1, -2, 1, 0, 30.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{-3, 1, 2, 1, 2, -11.0, 0.0, 0.0, 5.0, 0.0, 0.0},
	// 321-330
	{2, 0, -2, 0, 2, -21.0, 0.0, 0.0, 10.0, 0.0, 0.0},
	{-1, 0, 0, 1, 2, -34.0, 0.0, 0.0, 15.0, 0.0, 0.0},
	{-4, 0, 2, 2, 1, -10.0, 0.0, 0.0, 6.0, 0.0, 0.0},
	{-1, -1, 0, 1, 0, -36.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{0, 0, -2, 2, 2, -9.0, 0.0, 0.0, 4.0, 0.0, 0.0},
	{1, 0, 0, -1, 2, -12.0, 0.0, 0.0, 5.0, 0.0, 0.0},
	{0, -1, 2, -2, 3, -21.0, 0.0, 0.0, 5.0, 0.0, 0.0},
	{-2, 1, 2, 0, 0, -29.0, 0.0, 0.0, -1.0, 0.0, 0.0},
	{0, 0, 2, -2, 4, -15.0, 0.0, 0.0, 3.0, 0.0, 0.0},
	{-2, -2, 0, 2, 0, -20.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	// 331-340
	{-2, 0, -2, 4, 0, 28.0, 0.0, 0.0, 0.0, 0.0, -2.0},
	{0, -2, -2, 2, 0, 17.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{1, 2, 0, -2, 1, -22.0, 0.0, 0.0, 12.0, 0.0, 0.0},
	{3, 0, 0, -4, 1, -14.0, 0.0, 0.0, 7.0, 0.0, 0.0},
	{-1, 1, 2, -2, 2, 24.0, 0.0, 0.0, -11.0, 0.0, 0.0},
	{1, -1, 2, -4, 1, 11.0, 0.0, 0.0, -6.0, 0.0, 0.0},
	{1, 1, 0, -2, 2, 14.0, 0.0, 0.0, -6.0, 0.0, 0.0},
	{-3, 0, 2, 0, 0, 24.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{-3, 0, 2, 0, 2, 18.0, 0.0, 0.0, -8.0, 0.0, 0.0},
	{-2, 0, 0, 1, 0, -38.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	// 341-350
	{0, 0, -2, 1, 0, -31.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{-3, 0, 0, 2, 1, -16.0, 0.0, 0.0, 8.0, 0.0, 0.0},
	{-1, -1, -2, 2, 0, 29.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{0, 1, 2, -4, 1, -18.0, 0.0, 0.0, 10.0, 0.0, 0.0},
	{2, 1, 0, -4, 1, -10.0, 0.0, 0.0, 5.0, 0.0, 0.0},
	{0, 2, 0, -2, 1, -17.0, 0.0, 0.0, 10.0, 0.0, 0.0},
	{1, 0, 0, -3, 1, 9.0, 0.0, 0.0, -4.0, 0.0, 0.0},
	{-2, 0, 2, -2, 2, 16.0, 0.0, 0.0, -6.0, 0.0, 0.0},
	{-2, -1, 0, 0, 1, 22.0, 0.0, 0.0, -12.0, 0.0, 0.0},
	{-4, 0, 0, 2, 0, 20.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	// 351-360
	{1, 1, 0, -4, 1, -13.0, 0.0, 0.0, 6.0, 0.0, 0.0},
	{-1, 0, 2, -4, 1, -17.0, 0.0, 0.0, 9.0, 0.0, 0.0},
	{0, 0, 4, -4, 1, -14.0, 0.0, 0.0, 8.0, 0.0, 0.0},
	{0, 3, 2, -2, 2, 0.0, 0.0, 0.0, -7.0, 0.0, 0.0},
	{-3, -1, 0, 4, 0, 14.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{-3, 0, 0, 4, 1, 19.0, 0.0, 0.0, -10.0, 0.0, 0.0},
	{1, -1, -2, 2, 0, -34.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{-1, -1, 0, 2, 2, -20.0, 0.0, 0.0, 8.0, 0.0, 0.0},
	{1, -2, 0, 0, 1, 9.0, 0.0, 0.0, -5.0, 0.0, 0.0},
	{1, -1, 0, 0, 2, -18.0, 0.0, 0.0, 7.0, 0.0, 0.0},
	// 361-370
	{0, 0, 0, 1, 2, 13.0, 0.0, 0.0, -6.0, 0.0, 0.0},
	{-1, -1, 2, 0, 0, 17.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{1, -2, 2, -2, 2, -12.0, 0.0, 0.0, 5.0, 0.0, 0.0},
	{0, -1, 2, -1, 1, 15.0, 0.0, 0.0, -8.0, 0.0, 0.0},
	{-1, 0, 2, 0, 3, -11.0, 0.0, 0.0, 3.0, 0.0, 0.0},
	{1, 1, 0, 0, 2, 13.0, 0.0, 0.0, -5.0, 0.0, 0.0},
	{-1, 1, 2, 0, 0, -18.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{1, 2, 0, 0, 0, -35.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{-1, 2, 2, 0, 2, 9.0, 0.0, 0.0, -4.0, 0.0, 0.0},
	{-1, 0, 0, -2, 2, -19.0, 0.0, 0.0, 10.0, 0.0, 0.0},
}

// nut80Term is one row of the IAU 1980 series in units of 0.1 mas.
type nut80Term struct {
	nl, nlp, nf, nd, nom int8
	sp, spt, ce, cet     float64
}

var nutation1980 = [...]nut80Term{
	// 1-10
	{0, 0, 0, 0, 1, -171996.0, -174.2, 92025.0, 8.9},
	{0, 0, 0, 0, 2, 2062.0, 0.2, -895.0, 0.5},
	{-2, 0, 2, 0, 1, 46.0, 0.0, -24.0, 0.0},
	{2, 0, -2, 0, 0, 11.0, 0.0, 0.0, 0.0},
	{-2, 0, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{1, -1, 0, -1, 0, -3.0, 0.0, 0.0, 0.0},
	{0, -2, 2, -2, 1, -2.0, 0.0, 1.0, 0.0},
	{2, 0, -2, 0, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, -2, 2, -13187.0, -1.6, 5736.0, -3.1},
	{0, 1, 0, 0, 0, 1426.0, -3.4, 54.0, -0.1},
	// 11-20
	{0, 1, 2, -2, 2, -517.0, 1.2, 224.0, -0.6},
	{0, -1, 2, -2, 2, 217.0, -0.5, -95.0, 0.3},
	{0, 0, 2, -2, 1, 129.0, 0.1, -70.0, 0.0},
	{2, 0, 0, -2, 0, 48.0, 0.0, 1.0, 0.0},
	{0, 0, 2, -2, 0, -22.0, 0.0, 0.0, 0.0},
	{0, 2, 0, 0, 0, 17.0, -0.1, 0.0, 0.0},
	{0, 1, 0, 0, 1, -15.0, 0.0, 9.0, 0.0},
	{0, 2, 2, -2, 2, -16.0, 0.1, 7.0, 0.0},
	{0, -1, 0, 0, 1, -12.0, 0.0, 6.0, 0.0},
	{-2, 0, 0, 2, 1, -6.0, 0.0, 3.0, 0.0},
	// 21-30
	{0, -1, 2, -2, 1, -5.0, 0.0, 3.0, 0.0},
	{2, 0, 0, -2, 1, 4.0, 0.0, -2.0, 0.0},
	{0, 1, 2, -2, 1, 4.0, 0.0, -2.0, 0.0},
	{1, 0, 0, -1, 0, -4.0, 0.0, 0.0, 0.0},
	{2, 1, 0, -2, 0, 1.0, 0.0, 0.0, 0.0},
	{0, 0, -2, 2, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 1, -2, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 0, 2, 1.0, 0.0, 0.0, 0.0},
	{-1, 0, 0, 1, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 1, 2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	// 31-40
	{0, 0, 2, 0, 2, -2274.0, -0.2, 977.0, -0.5},
	{1, 0, 0, 0, 0, 712.0, 0.1, -7.0, 0.0},
	{0, 0, 2, 0, 1, -386.0, -0.4, 200.0, 0.0},
	{1, 0, 2, 0, 2, -301.0, 0.0, 129.0, -0.1},
	{1, 0, 0, -2, 0, -158.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, 0, 2, 123.0, 0.0, -53.0, 0.0},
	{0, 0, 0, 2, 0, 63.0, 0.0, -2.0, 0.0},
	{1, 0, 0, 0, 1, 63.0, 0.1, -33.0, 0.0},
	{-1, 0, 0, 0, 1, -58.0, -0.1, 32.0, 0.0},
	{-1, 0, 2, 2, 2, -59.0, 0.0, 26.0, 0.0},
	// 41-50
	{1, 0, 2, 0, 1, -51.0, 0.0, 27.0, 0.0},
	{0, 0, 2, 2, 2, -38.0, 0.0, 16.0, 0.0},
	{2, 0, 0, 0, 0, 29.0, 0.0, -1.0, 0.0},
	{1, 0, 2, -2, 2, 29.0, 0.0, -12.0, 0.0},
	{2, 0, 2, 0, 2, -31.0, 0.0, 13.0, 0.0},
	{0, 0, 2, 0, 0, 26.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, 0, 1, 21.0, 0.0, -10.0, 0.0},
	{-1, 0, 0, 2, 1, 16.0, 0.0, -8.0, 0.0},
	{1, 0, 0, -2, 1, -13.0, 0.0, 7.0, 0.0},
	{-1, 0, 2, 2, 1, -10.0, 0.0, 5.0, 0.0},
	// 51-60
	{1, 1, 0, -2, 0, -7.0, 0.0, 0.0, 0.0},
	{0, 1, 2, 0, 2, 7.0, 0.0, -3.0, 0.0},
	{0, -1, 2, 0, 2, -7.0, 0.0, 3.0, 0.0},
	{1, 0, 2, 2, 2, -8.0, 0.0, 3.0, 0.0},
	{1, 0, 0, 2, 0, 6.0, 0.0, 0.0, 0.0},
	{2, 0, 2, -2, 2, 6.0, 0.0, -3.0, 0.0},
	{0, 0, 0, 2, 1, -6.0, 0.0, 3.0, 0.0},
	{0, 0, 2, 2, 1, -7.0, 0.0, 3.0, 0.0},
	{1, 0, 2, -2, 1, 6.0, 0.0, -3.0, 0.0},
	{0, 0, 0, -2, 1, -5.0, 0.0, 3.0, 0.0},
	// 61-70
	{1, -1, 0, 0, 0, 5.0, 0.0, 0.0, 0.0},
	{2, 0, 2, 0, 1, -5.0, 0.0, 3.0, 0.0},
	{0, 1, 0, -2, 0, -4.0, 0.0, 0.0, 0.0},
	{1, 0, -2, 0, 0, 4.0, 0.0, 0.0, 0.0},
	{0, 0, 0, 1, 0, -4.0, 0.0, 0.0, 0.0},
	{1, 1, 0, 0, 0, -3.0, 0.0, 0.0, 0.0},
	{1, 0, 2, 0, 0, 3.0, 0.0, 0.0, 0.0},
	{1, -1, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{-1, -1, 2, 2, 2, -3.0, 0.0, 1.0, 0.0},
	{-2, 0, 0, 0, 1, -2.0, 0.0, 1.0, 0.0},
	// 71-80
	{3, 0, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{0, -1, 2, 2, 2, -3.0, 0.0, 1.0, 0.0},
	{1, 1, 2, 0, 2, 2.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, -2, 1, -2.0, 0.0, 1.0, 0.0},
	{2, 0, 0, 0, 1, 2.0, 0.0, -1.0, 0.0},
	{1, 0, 0, 0, 2, -2.0, 0.0, 1.0, 0.0},
	{3, 0, 0, 0, 0, 2.0, 0.0, 0.0, 0.0},
	{0, 0, 2, 1, 2, 2.0, 0.0, -1.0, 0.0},
	{-1, 0, 0, 0, 2, 1.0, 0.0, -1.0, 0.0},
	{1, 0, 0, -4, 0, -1.0, 0.0, 0.0, 0.0},
	// 81-90
	{-2, 0, 2, 2, 2, 1.0, 0.0, -1.0, 0.0},
	{-1, 0, 2, 4, 2, -2.0, 0.0, 1.0, 0.0},
	{2, 0, 0, -4, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 1, 2, -2, 2, 1.0, 0.0, -1.0, 0.0},
	{1, 0, 2, 2, 1, -1.0, 0.0, 1.0, 0.0},
	{-2, 0, 2, 4, 2, -1.0, 0.0, 1.0, 0.0},
	{-1, 0, 4, 0, 2, 1.0, 0.0, 0.0, 0.0},
	{1, -1, 0, -2, 0, 1.0, 0.0, 0.0, 0.0},
	{2, 0, 2, -2, 1, 1.0, 0.0, -1.0, 0.0},
	{2, 0, 2, 2, 2, -1.0, 0.0, 0.0, 0.0},
	// 91-100
	{1, 0, 0, 2, 1, -1.0, 0.0, 0.0, 0.0},
	{0, 0, 4, -2, 2, 1.0, 0.0, 0.0, 0.0},
	{3, 0, 2, -2, 2, 1.0, 0.0, 0.0, 0.0},
	{1, 0, 2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 2, 0, 1, 1.0, 0.0, 0.0, 0.0},
	{-1, -1, 0, 2, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 0, -2, 0, 1, -1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, -1, 2, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 0, -2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	// 101-106
	{0, -1, 2, 0, 1, -1.0, 0.0, 0.0, 0.0},
	{1, 1, 0, -2, 1, -1.0, 0.0, 0.0, 0.0},
	{1, 0, -2, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{2, 0, 0, 2, 0, 1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, 4, 2, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 1, 0, 1.0, 0.0, 0.0, 0.0},
}
