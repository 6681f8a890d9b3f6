package kiss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kd9tfa/hab-telemetry/kiss"
	"github.com/kd9tfa/hab-telemetry/packeterr"
)

func Test_EscapeAll_KnownValues(t *testing.T) {
	got := kiss.EscapeAll([]byte{0x94, 0xC0, 0x11, 0xDB})
	assert.Equal(t, []byte{0x94, 0xDB, 0xDC, 0x11, 0xDB, 0xDD}, got)

	got2 := kiss.EscapeAll([]byte{0x94, 0xC0, 0x11, 0xDB, 0x00, 0xDB, 0xDB, 0xC0, 0xDC})
	assert.Equal(t, []byte{0x94, 0xDB, 0xDC, 0x11, 0xDB, 0xDD, 0x00, 0xDB, 0xDD, 0xDB, 0xDD, 0xDB, 0xDC, 0xDC}, got2)
}

func Test_HeaderByte_KnownValues(t *testing.T) {
	msg := kiss.SetTXDelay{Value: 24}
	assert.Equal(t, byte(0x01), kiss.HeaderByte(msg, 0))
	assert.Equal(t, byte(0x11), kiss.HeaderByte(msg, 1))
	assert.Equal(t, byte(0xF1), kiss.HeaderByte(msg, 15))
}

func Test_HeaderByte_Return_IgnoresPort(t *testing.T) {
	assert.Equal(t, byte(0xFF), kiss.HeaderByte(kiss.Return{}, 5))
}

func Test_EscapeUnescape_RoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 64).Draw(t, "n")
		s := rapid.SliceOfN(rapid.Byte(), n, n).Draw(t, "s")

		escaped := kiss.EscapeAll(s)
		assert.True(t, kiss.IsFullyEscaped(escaped))

		got, err := kiss.UnescapeAll(escaped)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})
}

func Test_UnescapeAll_RejectsDanglingEscape(t *testing.T) {
	_, err := kiss.UnescapeAll([]byte{0x01, kiss.FESC})
	assert.ErrorIs(t, err, packeterr.ErrInvalidEscape)

	_, err = kiss.UnescapeAll([]byte{0x01, kiss.FESC, 0x02})
	assert.ErrorIs(t, err, packeterr.ErrInvalidEscape)
}

func Test_EncodeDecode_RoundTrip(t *testing.T) {
	msg := kiss.SendDataFrame{Bytes: []byte{0x7E, 0xC0, 0xDB, 0x01}}
	frame := kiss.Encode(3, msg)

	got, port, err := kiss.Decode(frame)
	require.NoError(t, err)
	assert.Equal(t, byte(3), port)
	assert.Equal(t, msg, got)
}

func Test_Decode_RejectsUnrecognizedCommand(t *testing.T) {
	frame := []byte{kiss.FEND, 0x0A, kiss.FEND}
	_, _, err := kiss.Decode(frame)
	assert.ErrorIs(t, err, packeterr.ErrInvalidCommand)
}

func Test_Decode_RejectsMissingDelimiters(t *testing.T) {
	_, _, err := kiss.Decode([]byte{0x00, 0x01})
	assert.ErrorIs(t, err, packeterr.ErrInvalidCommand)
}
