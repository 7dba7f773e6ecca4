package assets

import "github.com/phanxgames/adventure"

// Model-space geometry of the drop tower. Seat parts are drawn at the top
// of the tower and translated down by the seat offset each frame.

var towerTrim = adventure.MustLineStyle("red", 5)

var towerFrame = concat(
	polyline(towerTrim,
		0.1457, 0.0891, 0.147, 0.8493, 0.385, 0.848, 0.3823, 0.0838, 0.1468, 0.2378, 0.3842, 0.3898,
		0.148, 0.5438, 0.3842, 0.6995, 0.1514, 0.8489, 0.378, 0.8452, 0.146, 0.7004, 0.3856, 0.5433,
		0.1456, 0.3904, 0.3856, 0.2368, 0.1457, 0.0891,
	),
	polyline(towerTrim, 0.1466, 0.8485, 0.1252, 0.8483, 0.1254, 0.8904),
	polyline(towerTrim, 0.2648, 0.848, 0.2647, 0.9051),
	polyline(towerTrim, 0.3844, 0.8492, 0.405, 0.8496, 0.405, 0.9045),
)

var towerBaseUpper = concat(
	fill("lightseagreen",
		0.1213, 0.08, 0.1225, 0.1085, 0.1332, 0.1176, 0.1457, 0.1204, 0.3917, 0.12, 0.4035, 0.1137,
		0.4091, 0.1073, 0.4116, 0.08, 0.1213, 0.08,
	),
)

var towerBaseLower = concat(
	fillEdged("mediumturquoise", "black",
		0.0586, 0.001, 0.0588, 0.0432, 0.0678, 0.064, 0.0803, 0.0796, 0.0986, 0.0934, 0.1204, 0.0983,
		0.414, 0.1, 0.4332, 0.1, 0.4526, 0.0782, 0.4626, 0.063, 0.4688, 0.0474, 0.4702, 0.0298,
		0.4702, 0.001, 0.0586, 0.001,
	),
)

var towerBannerEnds = concat(
	fill("white",
		0.09214, 0.8992, 0.4362, 0.9005, 0.4352, 0.8873, 0.4273, 0.8754, 0.4178, 0.8713, 0.404, 0.872,
		0.3956, 0.881, 0.3899, 0.8944, 0.3847, 0.8854, 0.378, 0.8748, 0.3668, 0.869, 0.3527, 0.8735,
		0.344, 0.884, 0.3393, 0.8965, 0.3337, 0.882, 0.325, 0.873, 0.3136, 0.8697, 0.3014, 0.8757,
		0.2942, 0.8868, 0.29, 0.897, 0.2844, 0.8824, 0.2755, 0.8735, 0.2654, 0.8691, 0.2548, 0.8719,
		0.2464, 0.8816, 0.2405, 0.896, 0.235, 0.882, 0.226, 0.8732, 0.2137, 0.8691, 0.2012, 0.8765,
		0.1956, 0.8827, 0.1913, 0.8942, 0.186, 0.8805, 0.176, 0.8719, 0.1652, 0.8686, 0.1536, 0.875,
		0.1457, 0.8843, 0.1419, 0.8968, 0.1368, 0.8852, 0.1318, 0.8764, 0.1197, 0.8713, 0.1085, 0.8719,
		0.1, 0.8792, 0.0936, 0.8881, 0.09214, 0.8992,
	),
)

var towerBannerBase = concat(
	fill("white",
		0.2649, 0.998, 0.0919, 0.899, 0.4374, 0.9005, 0.2649, 0.998,
	),
)

var towerBannerStripes = concat(
	fill("cyan",
		0.265, 0.998, 0.0919, 0.899, 0.1328, 0.8997, 0.2649, 0.998, 0.1666, 0.899, 0.213, 0.8995,
		0.2649, 0.998, 0.2486, 0.8998, 0.283, 0.9, 0.2649, 0.9977, 0.3209, 0.9, 0.3655, 0.9002,
		0.2649, 0.9978, 0.3983, 0.8997, 0.437, 0.9004, 0.265, 0.998,
	),
)

var towerSeatFrame = concat(
	polyline(towerTrim, 0.007, 0.706, 0.5233, 0.7054),
)

var towerSeatBacks = concat(
	fill("navy",
		0.0322, 0.7097, 0.0328, 0.7389, 0.037, 0.748, 0.0457, 0.755, 0.0964, 0.755, 0.1057, 0.7498,
		0.1106, 0.741, 0.1106, 0.7095, 0.0322, 0.7097,
	),
	fill("navy",
		0.162, 0.7163, 0.1622, 0.7392, 0.1673, 0.7486, 0.1765, 0.7549, 0.2246, 0.755, 0.2338, 0.75,
		0.2393, 0.7418, 0.24, 0.7162, 0.162, 0.7163,
	),
	fill("navy",
		0.2909, 0.7147, 0.2912, 0.7408, 0.2958, 0.7504, 0.3055, 0.7538, 0.3546, 0.7543, 0.3646, 0.748,
		0.3688, 0.7398, 0.369, 0.7146, 0.2909, 0.7147,
	),
	fill("navy",
		0.4195, 0.715, 0.4198, 0.7414, 0.4258, 0.7508, 0.436, 0.7547, 0.482, 0.7552, 0.49, 0.7508,
		0.4972, 0.7418, 0.4973, 0.715, 0.4195, 0.715,
	),
)

var towerSeatCage = concat(
	fill("cyan",
		0.01, 0.7184, 0.0106, 0.7489, 0.0168, 0.7613, 0.0253, 0.7706, 0.0405, 0.7781, 0.1002, 0.7782,
		0.1148, 0.7735, 0.1259, 0.7638, 0.1332, 0.7512, 0.1335, 0.7188, 0.1264, 0.7189, 0.1264, 0.7455,
		0.1213, 0.7544, 0.1141, 0.7627, 0.1049, 0.7688, 0.095, 0.7705, 0.0479, 0.7702, 0.0371, 0.7673,
		0.0281, 0.7611, 0.0208, 0.7518, 0.0178, 0.7457, 0.0174, 0.7184, 0.01, 0.7184,
	),
	fill("cyan",
		0.1398, 0.7184, 0.1404, 0.7489, 0.1466, 0.7613, 0.1551, 0.7706, 0.1703, 0.7781, 0.23, 0.7782,
		0.2446, 0.7735, 0.2557, 0.7638, 0.263, 0.7512, 0.2633, 0.7188, 0.2562, 0.7189, 0.2562, 0.7455,
		0.2511, 0.7544, 0.2439, 0.7627, 0.2347, 0.7688, 0.2248, 0.7705, 0.1777, 0.7702, 0.1669, 0.7673,
		0.1579, 0.7611, 0.1506, 0.7518, 0.1476, 0.7457, 0.1472, 0.7184, 0.1398, 0.7184,
	),
	fill("cyan",
		0.2696, 0.7184, 0.2702, 0.7489, 0.2764, 0.7613, 0.2849, 0.7706, 0.3001, 0.7781, 0.3598, 0.7782,
		0.3744, 0.7735, 0.3855, 0.7638, 0.3928, 0.7512, 0.3931, 0.7188, 0.386, 0.7189, 0.386, 0.7455,
		0.3809, 0.7544, 0.3737, 0.7627, 0.3645, 0.7688, 0.3546, 0.7705, 0.3075, 0.7702, 0.2967, 0.7673,
		0.2877, 0.7611, 0.2804, 0.7518, 0.2774, 0.7457, 0.277, 0.7184, 0.2696, 0.7184,
	),
	fill("cyan",
		0.3994, 0.7184, 0.4, 0.7489, 0.4062, 0.7613, 0.4147, 0.7706, 0.4299, 0.7781, 0.4896, 0.7782,
		0.5042, 0.7735, 0.5153, 0.7638, 0.5226, 0.7512, 0.5229, 0.7188, 0.5158, 0.7189, 0.5158, 0.7455,
		0.5107, 0.7544, 0.5035, 0.7627, 0.4943, 0.7688, 0.4844, 0.7705, 0.4373, 0.7702, 0.4265, 0.7673,
		0.4175, 0.7611, 0.4102, 0.7518, 0.4072, 0.7457, 0.4068, 0.7184, 0.3994, 0.7184,
	),
	fill("cyan",
		0.01, 0.7203, 0.134, 0.7209, 0.1335, 0.6731, 0.1265, 0.6605, 0.117, 0.6515, 0.1026, 0.6456,
		0.0438, 0.645, 0.0286, 0.651, 0.018, 0.6603, 0.0105, 0.6735, 0.01, 0.7203,
	),
	fill("cyan",
		0.1398, 0.7203, 0.2638, 0.7209, 0.2633, 0.6731, 0.2563, 0.6605, 0.2468, 0.6515, 0.2324, 0.6456,
		0.1736, 0.645, 0.1584, 0.651, 0.1478, 0.6603, 0.1403, 0.6735, 0.1398, 0.7203,
	),
	fill("cyan",
		0.2696, 0.7203, 0.3936, 0.7209, 0.3931, 0.6731, 0.3861, 0.6605, 0.3766, 0.6515, 0.3622, 0.6456,
		0.3034, 0.645, 0.2882, 0.651, 0.2776, 0.6603, 0.2701, 0.6735, 0.2696, 0.7203,
	),
	fill("cyan",
		0.3994, 0.7203, 0.5234, 0.7209, 0.5229, 0.6731, 0.5159, 0.6605, 0.5064, 0.6515, 0.492, 0.6456,
		0.4332, 0.645, 0.418, 0.651, 0.4074, 0.6603, 0.3999, 0.6735, 0.3994, 0.7203,
	),
)

