// Package telemetry composes the layout, packet, rscodec, ax25, and
// kiss packages into the external interface spec.md §6 names:
// generate_packet, generate_packet_no_fec, decode_packet,
// values_from_packet, build_aprs_frame, kiss_encode, kiss_decode.
//
// Grounded on _examples/original_source/src/easypacket.rs, which plays
// the same composing role over the original's lower-level modules.
package telemetry

import (
	"github.com/kd9tfa/hab-telemetry/ax25"
	"github.com/kd9tfa/hab-telemetry/internal/telemetrylog"
	"github.com/kd9tfa/hab-telemetry/kiss"
	"github.com/kd9tfa/hab-telemetry/layout"
	"github.com/kd9tfa/hab-telemetry/packet"
	"github.com/kd9tfa/hab-telemetry/rscodec"
	"github.com/kd9tfa/hab-telemetry/station"
)

// GeneratePacket assembles r against l and appends nFec parity bytes,
// producing a FullMessage of l.NBare+nFec bytes.
func GeneratePacket(l layout.Layout, r packet.Readings, nFec int) (rscodec.FullMessage, error) {
	bare := GeneratePacketNoFEC(l, r)
	full, err := rscodec.Encode(bare, nFec)
	if err != nil {
		return nil, err
	}
	telemetrylog.PacketAssembled(l.NBare, r.PacketCounter)
	return full, nil
}

// GeneratePacketNoFEC assembles r against l without appending parity.
func GeneratePacketNoFEC(l layout.Layout, r packet.Readings) packet.BareMessage {
	return packet.Assemble(l, packet.BuildBlocks(r))
}

// DecodePacket recovers a BareMessage from full, applying skeleton
// repair and the caller-supplied erasure positions.
func DecodePacket(l layout.Layout, full rscodec.FullMessage, erasures []int) (packet.BareMessage, error) {
	telemetrylog.DecodeAttempt(len(full), erasures)

	bare, err := rscodec.Decode(l, full, erasures)
	if err != nil {
		telemetrylog.DecodeFailed(err)
		return nil, err
	}
	return bare, nil
}

// ValuesFromPacket reads a BareMessage back into Readings.
func ValuesFromPacket(l layout.Layout, msg packet.BareMessage) (packet.Readings, error) {
	return packet.ValuesFromPacket(l, msg)
}

// BuildAPRSFrame wraps info in an AX.25 UI frame addressed per cfg.
func BuildAPRSFrame(cfg station.Config, info []byte) (ax25.Frame, error) {
	frame, err := ax25.BuildUIFrame(cfg.DestinationAddress(), cfg.SourceAddress(), cfg.DigipeaterAddresses(), info)
	if err != nil {
		return nil, err
	}
	telemetrylog.FrameBuilt("ax25", len(frame))
	return frame, nil
}

// KissEncode builds a FEND-delimited KISS frame carrying msg on port.
func KissEncode(port byte, msg kiss.Message) []byte {
	frame := kiss.Encode(port, msg)
	telemetrylog.FrameBuilt("kiss", len(frame))
	return frame
}

// KissDecode parses a FEND-delimited KISS frame back into its command
// and payload.
func KissDecode(frame []byte) (kiss.Message, byte, error) {
	return kiss.Decode(frame)
}
