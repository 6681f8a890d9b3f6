package byteutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/kd9tfa/hab-telemetry/byteutil"
)

func Test_PackBools_KnownValues(t *testing.T) {
	assert.Equal(t, byte(0x7B), byteutil.PackBools([8]bool{true, true, false, true, true, true, true, false}))
	assert.Equal(t, byte(0x02), byteutil.PackBools([8]bool{false, true, false, false, false, false, false, false}))
}

func Test_PackUnpackBools_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var bools [8]bool
		for i := range bools {
			bools[i] = rapid.Bool().Draw(t, "bit")
		}

		var packed = byteutil.PackBools(bools)
		var unpacked = byteutil.UnpackBools(packed)

		assert.Equal(t, bools, unpacked)
	})
}

func Test_U24_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var v = uint32(rapid.IntRange(0, byteutil.U24Max).Draw(t, "v"))

		assert.Equal(t, v, byteutil.U24(byteutil.PutU24(v)))
	})
}

func Test_U16BE_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var v = uint16(rapid.IntRange(0, 0xFFFF).Draw(t, "v"))

		assert.Equal(t, v, byteutil.U16BE(byteutil.PutU16BE(v)))
	})
}

func Test_U32BE_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var v = uint32(rapid.IntRange(0, 0xFFFFFFFF).Draw(t, "v"))

		assert.Equal(t, v, byteutil.U32BE(byteutil.PutU32BE(v)))
	})
}
