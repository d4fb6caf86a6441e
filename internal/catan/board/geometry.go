package board

import (
	"fmt"
	"math"
)

// hexSize is an arbitrary unit radius used only to compute pixel positions
// for corner-sharing canonicalization; it has no meaning outside this file.
const hexSize = 100.0

// cornerAngle returns the angle, in radians, of corner i (0..5) of a
// pointy-top hexagon.
func cornerAngle(i int) float64 {
	return math.Pi / 180 * float64(60*i-30)
}

// pixelCenter converts an axial coordinate to a pointy-top pixel center.
func pixelCenter(a Axial) (float64, float64) {
	x := hexSize * (math.Sqrt(3)*float64(a.Q) + math.Sqrt(3)/2*float64(a.R))
	y := hexSize * (1.5 * float64(a.R))
	return x, y
}

// cornerPoint returns the pixel position of corner i of the hex at a.
func cornerPoint(a Axial, i int) (float64, float64) {
	cx, cy := pixelCenter(a)
	angle := cornerAngle(i)
	return cx + hexSize*math.Cos(angle), cy + hexSize*math.Sin(angle)
}

// pointKey renders a pixel point as a canonical, rounding-tolerant string
// key so that the same physical corner computed from two neighboring hexes
// hashes identically.
func pointKey(x, y float64) string {
	round := func(v float64) float64 {
		r := math.Round(v*1000) / 1000
		if r == 0 {
			r = 0 // fold -0 into +0 so both format as "0.000"
		}
		return r
	}
	return fmt.Sprintf("%.3f,%.3f", round(x), round(y))
}

// edgeKey renders a canonical, order-independent key for a node pair.
func edgeKey(a, b NodeID) string {
	if a > b {
		a, b = b, a
	}
	return string(a) + "|" + string(b)
}
