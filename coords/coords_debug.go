//go:build debug

package coords

import "fmt"

// checkInRange panics when x falls outside [lo, hi]. Built only into
// debug builds (`go build -tags debug`), matching the teacher's own
// `#if DEBUG` convention for assertions that are too expensive, or too
// alarming, to carry into a flight binary.
func checkInRange(x, lo, hi float64) {
	if x < lo || x > hi {
		panic(fmt.Sprintf("coords: value %g outside configured range [%g, %g]", x, lo, hi))
	}
}
