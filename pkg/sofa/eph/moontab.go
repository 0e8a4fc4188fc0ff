package eph

// moonTerm multiplies D, M, M' and F. In the longitude/distance table
// l is the longitude coefficient (degrees) and r the distance one
// (metres); in the latitude table l holds the latitude coefficient.
type moonTerm struct {
	nd, nem, nemp, nf int8
	l, r              float64
}

// Longitude and distance, Meeus (1998) Table 47.A.
var moonLR = [...]moonTerm{
	{0, 0, 1, 0, 6.288774, -20905355.0},
	{2, 0, -1, 0, 1.274027, -3699111.0},
	{2, 0, 0, 0, 0.658314, -2955968.0},
	{0, 0, 2, 0, 0.213618, -569925.0},
	{0, 1, 0, 0, -0.185116, 48888.0},
	{0, 0, 0, 2, -0.114332, -3149.0},
	{2, 0, -2, 0, 0.058793, 246158.0},
	{2, -1, -1, 0, 0.057066, -152138.0},
	{2, 0, 1, 0, 0.053322, -170733.0},
	{2, -1, 0, 0, 0.045758, -204586.0},
	{0, 1, -1, 0, -0.040923, -129620.0},
	{1, 0, 0, 0, -0.034720, 108743.0},
	{0, 1, 1, 0, -0.030383, 104755.0},
	{2, 0, 0, -2, 0.015327, 10321.0},
	{0, 0, 1, 2, -0.012528, 0.0},
	{0, 0, 1, -2, 0.010980, 79661.0},
	{4, 0, -1, 0, 0.010675, -34782.0},
	{0, 0, 3, 0, 0.010034, -23210.0},
	{4, 0, -2, 0, 0.008548, -21636.0},
	{2, 1, -1, 0, -0.007888, 24208.0},
	{2, 1, 0, 0, -0.006766, 30824.0},
	{1, 0, -1, 0, -0.005163, -8379.0},
	{1, 1, 0, 0, 0.004987, -16675.0},
	{2, -1, 1, 0, 0.004036, -12831.0},
	{2, 0, 2, 0, 0.003994, -10445.0},
	{4, 0, 0, 0, 0.003861, -11650.0},
	{2, 0, -3, 0, 0.003665, 14403.0},
	{0, 1, -2, 0, -0.002689, -7003.0},
	{2, 0, -1, 2, -0.002602, 0.0},
	{2, -1, -2, 0, 0.002390, 10056.0},
	{1, 0, 1, 0, -0.002348, 6322.0},
	{2, -2, 0, 0, 0.002236, -9884.0},
	{0, 1, 2, 0, -0.002120, 5751.0},
	{0, 2, 0, 0, -0.002069, 0.0},
	{2, -2, -1, 0, 0.002048, -4950.0},
	{2, 0, 1, -2, -0.001773, 4130.0},
	{2, 0, 0, 2, -0.001595, 0.0},
	{4, -1, -1, 0, 0.001215, -3958.0},
	{0, 0, 2, 2, -0.001110, 0.0},
	{3, 0, -1, 0, -0.000892, 3258.0},
	{2, 1, 1, 0, -0.000810, 2616.0},
	{4, -1, -2, 0, 0.000759, -1897.0},
	{0, 2, -1, 0, -0.000713, -2117.0},
	{2, 2, -1, 0, -0.000700, 2354.0},
	{2, 1, -2, 0, 0.000691, 0.0},
	{2, -1, 0, -2, 0.000596, 0.0},
	{4, 0, 1, 0, 0.000549, -1423.0},
	{0, 0, 4, 0, 0.000537, -1117.0},
	{4, -1, 0, 0, 0.000520, -1571.0},
	{1, 0, -2, 0, -0.000487, -1739.0},
	{2, 1, 0, -2, -0.000399, 0.0},
	{0, 0, 2, -2, -0.000381, -4421.0},
	{1, 1, 1, 0, 0.000351, 0.0},
	{3, 0, -2, 0, -0.000340, 0.0},
	{4, 0, -3, 0, 0.000330, 0.0},
	{2, -1, 2, 0, 0.000327, 0.0},
	{0, 2, 1, 0, -0.000323, 1165.0},
	{1, 1, -1, 0, 0.000299, 0.0},
	{2, 0, 3, 0, 0.000294, 0.0},
	{2, 0, -1, -2, 0.000000, 8752.0},
}

// Latitude, Meeus (1998) Table 47.B.
var moonB = [...]moonTerm{
	{0, 0, 0, 1, 5.128122, 0},
	{0, 0, 1, 1, 0.280602, 0},
	{0, 0, 1, -1, 0.277693, 0},
	{2, 0, 0, -1, 0.173237, 0},
	{2, 0, -1, 1, 0.055413, 0},
	{2, 0, -1, -1, 0.046271, 0},
	{2, 0, 0, 1, 0.032573, 0},
	{0, 0, 2, 1, 0.017198, 0},
	{2, 0, 1, -1, 0.009266, 0},
	{0, 0, 2, -1, 0.008822, 0},
	{2, -1, 0, -1, 0.008216, 0},
	{2, 0, -2, -1, 0.004324, 0},
	{2, 0, 1, 1, 0.004200, 0},
	{2, 1, 0, -1, -0.003359, 0},
	{2, -1, -1, 1, 0.002463, 0},
	{2, -1, 0, 1, 0.002211, 0},
	{2, -1, -1, -1, 0.002065, 0},
	{0, 1, -1, -1, -0.001870, 0},
	{4, 0, -1, -1, 0.001828, 0},
	{0, 1, 0, 1, -0.001794, 0},
	{0, 0, 0, 3, -0.001749, 0},
	{0, 1, -1, 1, -0.001565, 0},
	{1, 0, 0, 1, -0.001491, 0},
	{0, 1, 1, 1, -0.001475, 0},
	{0, 1, 1, -1, -0.001410, 0},
	{0, 1, 0, -1, -0.001344, 0},
	{1, 0, 0, -1, -0.001335, 0},
	{0, 0, 3, 1, 0.001107, 0},
	{4, 0, 0, -1, 0.001021, 0},
	{4, 0, -1, 1, 0.000833, 0},
	{0, 0, 1, -3, 0.000777, 0},
	{4, 0, -2, 1, 0.000671, 0},
	{2, 0, 0, -3, 0.000607, 0},
	{2, 0, 2, -1, 0.000596, 0},
	{2, -1, 1, -1, 0.000491, 0},
	{2, 0, -2, 1, -0.000451, 0},
	{0, 0, 3, -1, 0.000439, 0},
	{2, 0, 2, 1, 0.000422, 0},
	{2, 0, -3, -1, 0.000421, 0},
	{2, 1, -1, 1, -0.000366, 0},
	{2, 1, 0, 1, -0.000351, 0},
	{4, 0, 0, 1, 0.000331, 0},
	{2, -1, 1, 1, 0.000315, 0},
	{2, -2, 0, -1, 0.000302, 0},
	{0, 0, 1, 3, -0.000283, 0},
	{2, 1, 1, -1, -0.000229, 0},
	{1, 1, 0, -1, 0.000223, 0},
	{1, 1, 0, 1, 0.000223, 0},
	{0, 1, -2, -1, -0.000220, 0},
	{2, 1, -1, -1, -0.000220, 0},
	{1, 0, 1, 1, -0.000185, 0},
	{2, -1, -2, -1, 0.000181, 0},
	{0, 1, 2, 1, -0.000177, 0},
	{4, 0, -2, -1, 0.000176, 0},
	{4, -1, -1, -1, 0.000166, 0},
	{1, 0, 1, -1, -0.000164, 0},
	{4, 0, 1, -1, 0.000132, 0},
	{1, 0, -1, -1, -0.000119, 0},
	{4, -1, 0, -1, 0.000115, 0},
	{2, -2, 0, 1, 0.000107, 0},
}
