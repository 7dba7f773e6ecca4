package assets

import "github.com/phanxgames/adventure"

// Model-space geometry of the ferris wheel. The hub turns about the axle;
// the base and axle ring are static.

var wheelLine = adventure.MustLineStyle("g", 2)

var wheelBase = concat(
	polyline(wheelLine,
		0.503, 0.106, 0.689, 0.105, 0.69, 0.003, 0.233, 0.003, 0.232, 0.106, 0.425, 0.106,
		0.4246, 0.4722, 0.405, 0.486, 0.3916, 0.5035, 0.383, 0.526, 0.381, 0.5514, 0.389, 0.5786,
		0.4085, 0.605, 0.432, 0.6195, 0.458, 0.6266, 0.4907, 0.6214, 0.522, 0.6026, 0.5396, 0.5744,
		0.546, 0.5495, 0.543, 0.5194, 0.5307, 0.495, 0.5175, 0.482, 0.4935, 0.4667, 0.4696, 0.461,
		0.4456, 0.4628, 0.4246, 0.4722, 0.4456, 0.4628, 0.4696, 0.461, 0.4935, 0.4667, 0.5018, 0.4718,
		0.503, 0.106, 0.425, 0.106, 0.503, 0.106,
	),
)

var wheelHub = concat(
	polyline(wheelLine,
		0.3446, 0.3557, 0.3328, 0.371, 0.3213, 0.3816, 0.359, 0.4286, 0.3817, 0.4676, 0.3919, 0.5027,
		0.3863, 0.5162, 0.366, 0.5259, 0.3096, 0.5483, 0.249, 0.566, 0.2578, 0.5812, 0.2646, 0.6,
		0.329, 0.5866, 0.3775, 0.5864, 0.4084, 0.604, 0.426, 0.628, 0.438, 0.6743, 0.4434, 0.7115,
		0.4448, 0.7422, 0.4676, 0.741, 0.49145, 0.7413, 0.4915, 0.6882, 0.4973, 0.6454, 0.5083, 0.6112,
		0.522, 0.6029, 0.5298, 0.5904, 0.556, 0.5851, 0.5867, 0.5844, 0.65525, 0.5892, 0.6574, 0.5724,
		0.6646, 0.5579, 0.602, 0.5429, 0.5617, 0.527, 0.5408, 0.5146, 0.5295, 0.4929, 0.5356, 0.4535,
		0.5528, 0.408, 0.5798, 0.3536, 0.5692, 0.3375, 0.5591, 0.317, 0.5317, 0.3729, 0.5087, 0.4094,
		0.4895, 0.4346, 0.46104, 0.4617, 0.4528, 0.4621, 0.4173, 0.4358, 0.3786, 0.3967, 0.3446, 0.3557,
	),
)

