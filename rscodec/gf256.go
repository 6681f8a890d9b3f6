package rscodec

// GF(2^8) arithmetic, primitive polynomial 0x11d (x^8+x^4+x^3+x^2+1),
// generator element 2 — the same field and generator the original
// Rust reed_solomon crate (_examples/original_source/src/telemetry.rs)
// builds its codec over.

const fieldCharac = 255

var gfExp [2 * fieldCharac]byte
var gfLog [fieldCharac + 1]byte

func init() {
	x := byte(1)
	for i := 0; i < fieldCharac; i++ {
		gfExp[i] = x
		gfLog[x] = byte(i)
		x = gfMulNoLUT(x, 2)
	}
	for i := fieldCharac; i < len(gfExp); i++ {
		gfExp[i] = gfExp[i-fieldCharac]
	}
}

// gfMulNoLUT multiplies a and b the slow way, used only to build the
// exp/log tables above.
func gfMulNoLUT(a, b byte) byte {
	var p byte
	for i := 0; i < 8 && a != 0 && b != 0; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hiBitSet := a&0x80 != 0
		a <<= 1
		if hiBitSet {
			a ^= 0x1d
		}
		b >>= 1
	}
	return p
}

func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+int(gfLog[b])]
}

func gfDiv(a, b byte) byte {
	if a == 0 {
		return 0
	}
	return gfExp[int(gfLog[a])+fieldCharac-int(gfLog[b])]
}

func gfPow(a byte, power int) byte {
	e := (int(gfLog[a]) * power) % fieldCharac
	if e < 0 {
		e += fieldCharac
	}
	return gfExp[e]
}

func gfInverse(a byte) byte {
	return gfExp[fieldCharac-int(gfLog[a])]
}
