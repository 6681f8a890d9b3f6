// Package ax25 builds AX.25 UI frames for APRS transmission: address
// field encoding, the CRC-16 FCS, and the INFO_MAX overflow check.
//
// Grounded on the teacher's src/ax25_pad.go (the address-octet bit
// layout: six shifted-left callsign bytes, bit-packed SSID/C/H/extension
// octet) and spec.md §4.5. Unlike the original's AX25Block::to_frame,
// which writes frame fields into the output buffer in overlapping
// fashion, every write here is a plain sequential append — the bug
// spec.md §9 calls out is not reproduced.
package ax25

import (
	"strings"

	"github.com/kd9tfa/hab-telemetry/packeterr"
)

// On-wire constants, bit-exact per spec.md §6.
const (
	Flag = 0x7E
	Ctrl = 0x03
	PID  = 0xF0

	// InfoMax is the default information-field length ceiling.
	InfoMax = 256
)

// Address is an AX.25 station address: a callsign of up to 6
// characters and an SSID in [0, 15].
type Address struct {
	Callsign string
	SSID     byte
}

func padCallsign(callsign string) [6]byte {
	var out [6]byte
	upper := strings.ToUpper(callsign)
	for i := 0; i < 6; i++ {
		if i < len(upper) {
			out[i] = upper[i]
		} else {
			out[i] = ' '
		}
	}
	return out
}

// encode writes this address's 7-octet AX.25 field. cBit is the
// command/response bit (1 for destination, 0 for source, "has been
// repeated" for digipeaters); last marks the final address octet of
// the whole address field, which sets the AX.25 extension bit.
func (a Address) encode(cBit, last bool) [7]byte {
	var out [7]byte
	padded := padCallsign(a.Callsign)
	for i := 0; i < 6; i++ {
		out[i] = padded[i] << 1
	}

	ssidByte := byte(0b01100000) // reserved RR bits set to 11
	ssidByte |= (a.SSID & 0x0F) << 1
	if cBit {
		ssidByte |= 0x80
	}
	if last {
		ssidByte |= 0x01
	}
	out[6] = ssidByte
	return out
}

// Frame is a fully built AX.25 UI frame, flag-delimited and FCS-
// terminated, ready for HDLC bit-stuffing by an external modem (this
// package does not perform bit-stuffing — see spec.md §4.5).
type Frame []byte

// BuildUIFrame assembles an AX.25 UI frame: FLAG, DST, SRC, digipeater
// PATH, CTRL=0x03, PID=0xF0, INFO, CRC-16 FCS (high byte first), FLAG.
// Returns packeterr.ErrInfoFieldOverflow if len(info) > InfoMax.
func BuildUIFrame(dst, src Address, path []Address, info []byte) (Frame, error) {
	if len(info) > InfoMax {
		return nil, packeterr.ErrInfoFieldOverflow
	}

	body := make([]byte, 0, 7*(2+len(path))+2+len(info))

	dstLast := false // dst is never the last address field
	srcLast := len(path) == 0

	dstBytes := dst.encode(true, dstLast)
	body = append(body, dstBytes[:]...)

	srcBytes := src.encode(false, srcLast)
	body = append(body, srcBytes[:]...)

	for i, p := range path {
		isLast := i == len(path)-1
		pBytes := p.encode(false, isLast)
		body = append(body, pBytes[:]...)
	}

	body = append(body, Ctrl, PID)
	body = append(body, info...)

	fcs := FCS(body)

	frame := make(Frame, 0, 1+len(body)+2+1)
	frame = append(frame, Flag)
	frame = append(frame, body...)
	frame = append(frame, byte(fcs>>8), byte(fcs))
	frame = append(frame, Flag)

	return frame, nil
}
