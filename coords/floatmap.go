// Package coords implements the affine real-to-integer coordinate codec
// and the bit-packed status byte that rides alongside each coordinate
// block.
//
// Grounded on _examples/original_source/src/figures.rs's map_float /
// demap_float pair: a real interval [in_min, in_max] is mapped onto an
// integer interval [out_min, out_max] by straight-line interpolation,
// then packed into the 24-bit width the packet layout gives each
// coordinate block.
package coords

import (
	"math"

	"github.com/kd9tfa/hab-telemetry/byteutil"
)

// FloatMap is an affine map between a real interval [InMin, InMax] and
// an integer interval [OutMin, OutMax], packed to 24 bits on the wire.
type FloatMap struct {
	InMin, InMax   float64
	OutMin, OutMax uint32
}

// Latitude maps [-90, 90] degrees onto the full unsigned 24-bit range.
var Latitude = FloatMap{InMin: -90, InMax: 90, OutMin: 0, OutMax: byteutil.U24Max}

// Longitude maps [-180, 180] degrees onto the full unsigned 24-bit range.
var Longitude = FloatMap{InMin: -180, InMax: 180, OutMin: 0, OutMax: byteutil.U24Max}

// slope returns the output-units-per-input-unit ratio.
func (m FloatMap) slope() float64 {
	return float64(m.OutMax-m.OutMin) / (m.InMax - m.InMin)
}

// Map encodes x onto the packed 24-bit range. Debug builds panic if x
// falls outside [InMin, InMax]; release builds silently clamp the
// integer result into [OutMin, OutMax] instead.
func (m FloatMap) Map(x float64) [3]byte {
	checkInRange(x, m.InMin, m.InMax)

	scaled := float64(m.OutMin) + m.slope()*(x-m.InMin)
	rounded := math.Round(scaled)

	out := clampU32(rounded, m.OutMin, m.OutMax)
	return byteutil.PutU24(out)
}

// Demap is the inverse of Map: it recovers the real value a packed
// 24-bit block most likely represents.
func (m FloatMap) Demap(b [3]byte) float64 {
	u := byteutil.U24(b)
	return m.InMin + (float64(u)-float64(m.OutMin))/m.slope()
}

// Granularity returns the real-valued width of one integer step. Map
// rounds to the nearest step, so its quantization error is at most half
// of this value.
func (m FloatMap) Granularity() float64 {
	return 1 / m.slope()
}

func clampU32(v float64, lo, hi uint32) uint32 {
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return uint32(v)
}
