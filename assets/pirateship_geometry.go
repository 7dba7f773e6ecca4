package assets

import "github.com/phanxgames/adventure"

// Model-space geometry of the pirate ship. The hull, its trim and the
// core swing about the mast head; the mast and base are static.

var (
	shipMast = adventure.MustLineStyle("dimgray", 8)
	shipTrim = adventure.MustLineStyle("red", 5)
)

var shipMastFrame = concat(
	polyline(shipMast, 0.222, 0.053, 0.5313, 0.7204, 0.848, 0.0484),
)

var shipBase = concat(
	fill("silver",
		0.09, 0, 0.1845, 0.0856, 0.8883, 0.0856, 0.981, 0, 0.09, 0,
	),
)

var shipHull = concat(
	fill("sandybrown",
		0.0487, 0.433, 0.0728, 0.3592, 0.1198, 0.2854, 0.2042, 0.22, 0.2798, 0.189, 0.384, 0.174,
		0.698, 0.175, 0.7743, 0.1936, 0.854, 0.228, 0.926, 0.289, 0.964, 0.343, 0.987, 0.402,
		0.9977, 0.4337, 0.807, 0.433, 0.722, 0.3575, 0.32, 0.359, 0.233, 0.433, 0.0487, 0.433,
	),
)

var shipHullTrim = concat(
	polyline(shipTrim,
		0.008, 0.442, 0.239, 0.4415, 0.3276, 0.366, 0.7206, 0.369, 0.809, 0.444, 0.996, 0.4435,
	),
)

var shipCore = concat(
	polyline(shipTrim, 0.53, 0.3675, 0.5312, 0.664),
	polyline(shipTrim,
		0.5313, 0.664, 0.4984, 0.6765, 0.475, 0.705, 0.4785, 0.747, 0.515, 0.779, 0.556, 0.775,
		0.584, 0.744, 0.587, 0.701, 0.5516, 0.6672, 0.5313, 0.664,
	),
)

