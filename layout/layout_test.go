package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kd9tfa/hab-telemetry/layout"
	"github.com/kd9tfa/hab-telemetry/packeterr"
)

func Test_Default_BuildsExactly(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)
	assert.Len(t, l.Blocks, 7)
	assert.Equal(t, layout.DefaultNBare, l.NBare)
}

func Test_Layout_Identity(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	for i, b := range l.Blocks {
		assert.Equal(t, b.Size(), b.End-b.Begin)
		if i > 0 {
			assert.Equal(t, l.Blocks[i-1].End, b.Begin, "block %d should begin where block %d ends", i, i-1)
		}
	}

	last := l.Blocks[len(l.Blocks)-1]
	assert.Equal(t, l.NBare-len(l.EndHeader)-layout.DelimLen, last.End)
}

func Test_Layout_LabelsAreSequentialFromL0(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	for i, b := range l.Blocks {
		assert.Equal(t, byte(layout.L0+i), b.Label)
	}
}

func Test_Build_RejectsMismatchedSizes(t *testing.T) {
	cfg := []layout.BlockCfg{{Type: layout.I16, TransmitLabel: true}}
	_, err := layout.Build(cfg, layout.DefaultNBare, layout.DefaultCallsign)
	assert.ErrorIs(t, err, packeterr.ErrLayoutMismatch)
}

func Test_StartEndHeader_Envelope(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	assert.Equal(t, []byte{0xE4, 0x1B, 'K', 'D', '9', 'T', 'F', 'A'}, l.StartHeader)
	assert.Equal(t, []byte{'K', 'D', '9', 'T', 'F', 'A', 0xE4, 0x1B}, l.EndHeader)
}
