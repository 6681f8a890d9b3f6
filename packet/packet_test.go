package packet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kd9tfa/hab-telemetry/coords"
	"github.com/kd9tfa/hab-telemetry/layout"
	"github.com/kd9tfa/hab-telemetry/packet"
)

func sampleReadings() packet.Readings {
	blockLat, blockLon := coords.MakeStatusData(38.897957, -77.036560, coords.StatusFlags{
		LatSign:   true,
		GPSLock:   true,
		AltitudeM: 12000,
	}, 0)

	return packet.Readings{
		StatusLatBlock: blockLat,
		StatusLonBlock: blockLon,
		Voltage:        3700,
		Temperature:    -15,
		InternalTemp:   22,
		PacketCounter:  42,
		StationID:      [6]byte{'K', 'D', '9', 'T', 'F', 'A'},
	}
}

func Test_Assemble_PacketShape(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	msg := packet.Assemble(l, packet.BuildBlocks(sampleReadings()))

	assert.Len(t, msg, layout.DefaultNBare)
	assert.Equal(t, l.StartHeader, []byte(msg[:len(l.StartHeader)]))

	for _, b := range l.Blocks {
		delimStart := b.End - layout.DelimLen
		assert.Equal(t, layout.Delim[:], []byte(msg[delimStart:b.End]), "block ending at %d should be delimited", b.End)
	}

	lastDelimStart := layout.DefaultNBare - layout.DelimLen
	assert.Equal(t, layout.Delim[:], []byte(msg[lastDelimStart:]))
}

func Test_ValuesFromPacket_RoundTrip(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	want := sampleReadings()
	msg := packet.Assemble(l, packet.BuildBlocks(want))

	got, err := packet.ValuesFromPacket(l, msg)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func Test_ValuesFromPacket_RoundTrip_Property(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		lat := rapid.Float64Range(-90, 90).Draw(t, "lat")
		lon := rapid.Float64Range(-180, 180).Draw(t, "lon")
		blockLat, blockLon := coords.MakeStatusData(lat, lon, coords.StatusFlags{
			GPSLock:   rapid.Bool().Draw(t, "gpsLock"),
			AltitudeM: rapid.Float64Range(0, 30000).Draw(t, "altitude"),
		}, byte(rapid.IntRange(0, 255).Draw(t, "lonStatus")))

		want := packet.Readings{
			StatusLatBlock: blockLat,
			StatusLonBlock: blockLon,
			Voltage:        int16(rapid.IntRange(-32768, 32767).Draw(t, "voltage")),
			Temperature:    int16(rapid.IntRange(-32768, 32767).Draw(t, "temp")),
			InternalTemp:   int16(rapid.IntRange(-32768, 32767).Draw(t, "internalTemp")),
			PacketCounter:  uint32(rapid.IntRange(0, int(^uint32(0))).Draw(t, "counter")),
			StationID:      [6]byte{'K', 'D', '9', 'T', 'F', 'A'},
		}

		msg := packet.Assemble(l, packet.BuildBlocks(want))
		got, err := packet.ValuesFromPacket(l, msg)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func Test_Assemble_PanicsOnBlockCountMismatch(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)

	assert.Panics(t, func() {
		packet.Assemble(l, packet.BuildBlocks(sampleReadings())[:3])
	})
}
