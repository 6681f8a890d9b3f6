// Package packet assembles and disassembles the bare message: the
// fixed-length, labeled, delimited byte array described by spec.md
// §4.2, built from a layout.Layout and a set of per-block payloads.
//
// Grounded on _examples/original_source/src/easypacket.rs's
// assemble/values_from_packet pair and the teacher's own wire-writing
// style in src/ax25_pad.go (sequential buffer append, never in-place
// overlapping writes — see the AX25Block::to_frame bug this module
// deliberately does not reproduce).
package packet

import (
	"github.com/kd9tfa/hab-telemetry/byteutil"
	"github.com/kd9tfa/hab-telemetry/layout"
	"github.com/kd9tfa/hab-telemetry/packeterr"
)

// BareMessage is an assembled, fixed-length packet body, before Reed-
// Solomon parity is appended.
type BareMessage []byte

// Block is one block's payload, ready to be written at its layout
// position. Payload must have exactly the declared length for the
// block's type (layout.BlockIdent.PayloadLen()).
type Block struct {
	Payload []byte
}

// Assemble writes the start header, each block (label, payload,
// delimiter), and the end header into a new BareMessage of exactly
// l.NBare bytes. len(blocks) must equal len(l.Blocks); each block's
// payload must match its declared length, or this panics — a
// mismatched block table is a caller bug, not a recoverable error
// (spec.md §4.2 calls this an assertion, not an error value).
func Assemble(l layout.Layout, blocks []Block) BareMessage {
	if len(blocks) != len(l.Blocks) {
		panic("packet: block count does not match layout")
	}

	msg := make(BareMessage, 0, l.NBare)
	msg = append(msg, l.StartHeader...)
	msg = append(msg, layout.Delim[:]...)

	for i, ident := range l.Blocks {
		payload := blocks[i].Payload
		if len(payload) != ident.PayloadLen() {
			panic("packet: block payload length does not match its layout type")
		}

		if ident.TransmitLabel {
			msg = append(msg, ident.Label)
		}
		msg = append(msg, payload...)
		msg = append(msg, layout.Delim[:]...)
	}

	msg = append(msg, l.EndHeader...)
	msg = append(msg, layout.Delim[:]...)

	return msg
}

// BlockBytes returns the payload bytes (excluding any label byte and
// the trailing delimiter) for block i of msg, per l.
func BlockBytes(l layout.Layout, msg BareMessage, i int) []byte {
	ident := l.Blocks[i]
	h := 0
	if ident.TransmitLabel {
		h = 1
	}
	start := ident.Begin + h
	end := ident.End - layout.DelimLen
	return msg[start:end]
}

// Readings is the default telemetry reading set this module's default
// layout.DefaultBlockConfig carries: two coordinate/status blocks plus
// three 16-bit sensors, a packet counter, and a station ID.
type Readings struct {
	StatusLatBlock  [4]byte
	StatusLonBlock  [4]byte
	Voltage         int16
	Temperature     int16
	InternalTemp    int16
	PacketCounter   uint32
	StationID       [6]byte
}

// ValuesFromPacket reads a BareMessage built against the default
// layout back into a Readings, per spec.md §4.2's numeric
// interpretation: each numeric block's payload is a big-endian integer
// of its declared width. It does not itself demap coordinates or
// unpack status flags — that's coords.UnpackStatusBlocks, given the two
// raw 4-byte blocks returned here.
func ValuesFromPacket(l layout.Layout, msg BareMessage) (Readings, error) {
	if len(msg) != l.NBare {
		return Readings{}, packeterr.ErrLayoutMismatch
	}

	var r Readings

	statusLat := BlockBytes(l, msg, layout.IdxStatusLat)
	copy(r.StatusLatBlock[:], statusLat)

	statusLon := BlockBytes(l, msg, layout.IdxStatusLon)
	copy(r.StatusLonBlock[:], statusLon)

	voltage := BlockBytes(l, msg, layout.IdxVoltage)
	r.Voltage = int16(byteutil.U16BE([2]byte{voltage[0], voltage[1]}))

	temp := BlockBytes(l, msg, layout.IdxTemperature)
	r.Temperature = int16(byteutil.U16BE([2]byte{temp[0], temp[1]}))

	internalTemp := BlockBytes(l, msg, layout.IdxInternalTemp)
	r.InternalTemp = int16(byteutil.U16BE([2]byte{internalTemp[0], internalTemp[1]}))

	counter := BlockBytes(l, msg, layout.IdxPacketCounter)
	r.PacketCounter = byteutil.U32BE([4]byte{counter[0], counter[1], counter[2], counter[3]})

	stationID := BlockBytes(l, msg, layout.IdxStationID)
	copy(r.StationID[:], stationID)

	return r, nil
}

// BuildBlocks turns Readings into the ordered Block slice Assemble
// expects, against the default layout's block ordering.
func BuildBlocks(r Readings) []Block {
	voltage := byteutil.PutU16BE(uint16(r.Voltage))
	temp := byteutil.PutU16BE(uint16(r.Temperature))
	internalTemp := byteutil.PutU16BE(uint16(r.InternalTemp))
	counter := byteutil.PutU32BE(r.PacketCounter)

	return []Block{
		{Payload: r.StatusLatBlock[:]},
		{Payload: r.StatusLonBlock[:]},
		{Payload: voltage[:]},
		{Payload: temp[:]},
		{Payload: internalTemp[:]},
		{Payload: counter[:]},
		{Payload: r.StationID[:]},
	}
}
