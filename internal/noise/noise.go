// Package noise provides deterministic pseudo-random values for decorative
// motion. Everything here is a pure hash of (coordinate, seed): no internal
// RNG state, so frames can be evaluated in any order and still agree.
package noise

import "math"

// Value returns a hash-derived value in [0,1) for an integer coordinate.
// splitmix64-style finalizer.
func Value(x int64, seed uint64) float64 {
	z := uint64(x) + seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / float64(1<<53)
}

// Smooth returns value noise at a fractional coordinate: the two
// surrounding lattice values blended with a smoothstep weight.
func Smooth(x float64, seed uint64) float64 {
	x0 := math.Floor(x)
	f := x - x0

	a := Value(int64(x0), seed)
	b := Value(int64(x0)+1, seed)

	w := f * f * (3 - 2*f)
	return a + (b-a)*w
}
