package eph

// epvTerm is one Fourier term a*cos(b+c*t), t in Julian years since J2000.
type epvTerm struct{ a, b, c float64 }

// Sun to Earth, ecliptic frame: T^0 then T^1 series per axis.
var e0x = []epvTerm{
	{0.9998292878132, 1.753485171504, 6.283075850446},
	{0.008352579567414, 1.710344404582, 12.56615170089},
	{0.005611445335148, 0.0, 0.0},
	{0.0001046664295572, 1.66722541677, 18.84922755134},
	{3.110842534677e-05, 0.6687513390251, 83.99684731857},
	{2.55241350355e-05, 0.5830637358413, 0.5296909721118},
	{2.137207845781e-05, 1.092330954011, 1.577343543434},
	{1.680240182951e-05, 0.4955366134987, 6.279552690824},
	{1.679012370795e-05, 6.153014091901, 6.286599010068},
	{1.445526946777e-05, 3.472744100492, 2.352866153506},
	{1.091038246184e-05, 3.689845786119, 5.223693906222},
	{9.344399733932e-06, 6.073934645672, 12.03646072878},
	{8.993182910652e-06, 3.175705249069, 10.21328554739},
	{5.665546034116e-06, 2.152484672246, 1.059381944224},
	{6.844146703035e-06, 1.30696409975, 5.753384878334},
	{7.346610905565e-06, 4.354980070466, 0.3981490189893},
	{6.815396474414e-06, 2.218229211267, 4.705732307012},
	{6.112787253053e-06, 5.384788425458, 6.812766822558},
	{4.518120711239e-06, 6.087604012291, 5.884926831456},
	{4.521963430706e-06, 1.279424524906, 6.256777527156},
}

var e0y = []epvTerm{
	{0.9998921098898, 0.182658325625, 6.283075850446},
	{-0.02442700893735, 0.0, 0.0},
	{0.008352929742915, 0.139527799868, 12.56615170089},
	{0.0001046697300177, 0.09641423109763, 18.84922755134},
	{3.110841876663e-05, 5.381140401712, 83.99684731857},
	{2.570269094593e-05, 5.301016407128, 0.5296909721118},
	{2.14738962361e-05, 2.66251086985, 1.577343543434},
	{1.68034438405e-05, 5.207904119704, 6.279552690824},
	{1.679117312193e-05, 4.582187486968, 6.286599010068},
	{1.44051206844e-05, 1.900688517726, 2.352866153506},
}

var e0z = []epvTerm{
	{2.796207639075e-06, 3.198701560209, 84.33466158131},
	{1.016042198142e-06, 5.422360395913, 5.507553240374},
	{8.044305033647e-07, 3.880222866652, 5.223693906222},
	{4.385347909274e-07, 3.704369937468, 2.352866153506},
	{3.186156414906e-07, 3.999639363235, 1.577343543434},
}

var e1x = []epvTerm{
	{1.234046326004e-06, 0.0, 0.0},
	{5.150068824701e-07, 6.002664557501, 12.56615170089},
}

var e1y = []epvTerm{
	{9.304690546528e-07, 0.0, 0.0},
	{5.150715570663e-07, 4.431807116294, 12.56615170089},
}

var e1z = []epvTerm{
	{2.278290449966e-06, 3.413716033863, 6.283075850446},
	{5.42945820983e-08, 0.0, 0.0},
}

// SSB to Sun, ecliptic frame.
var s0x = []epvTerm{
	{0.00495675753641, 3.741073751789, 0.5296909721118},
	{0.002718490072522, 4.016011511425, 0.2132990797783},
	{0.001546493974344, 2.170528330642, 0.0381329181312},
	{0.0008366855276341, 2.339614075294, 0.0747816656905},
	{0.0002936777942117, 0.0, 0.0},
}

var s0y = []epvTerm{
	{0.004955392320126, 2.170467313679, 0.5296909721118},
	{0.002722325167392, 2.444433682196, 0.2132990797783},
	{0.001546579925346, 0.5992779281546, 0.0381329181312},
	{0.0008363140252966, 0.7687356310801, 0.0747816656905},
	{0.0003385792683603, 0.0, 0.0},
}

var s0z = []epvTerm{
	{0.0001181255122986, 0.4607918989164, 0.2132990797783},
	{0.0001127777651095, 0.4169146331296, 0.5296909721118},
	{4.777754401806e-05, 4.58265700713, 0.0381329181312},
	{1.129354285772e-05, 5.75873514248, 0.0747816656905},
	{-1.149543637123e-05, 0.0, 0.0},
}
