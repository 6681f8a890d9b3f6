// Package layout implements the block layout engine: given a table of
// block configurations (type + whether the label is transmitted), it
// folds a running offset across the table to produce a fully
// positioned layout, the way spec.md §4.1 describes and
// _examples/original_source/src/parameters.rs computes at compile
// time via its own const-fold.
//
// Everything here is a pure function of its input table; there is no
// runtime or global state. Build is expected to run once, at program
// startup, against a fixed configuration.
package layout

import "github.com/kd9tfa/hab-telemetry/packeterr"

// L0 is the label base: the first configured block gets label L0, the
// second L0+1, and so on.
const L0 = 128

// DelimLen is the width of the 0xF0 0xF0 block delimiter.
const DelimLen = 2

// Delim is the 2-byte sentinel written after every block and after the
// end header.
var Delim = [2]byte{0xF0, 0xF0}

// BlockType names the wire representation of a block's payload.
type BlockType int

const (
	I16 BlockType = iota
	I32
	U32
	F32
	BYTES4
	StaticSlice
	None
)

// typeLen returns the payload length in bytes for fixed-width types;
// StaticSlice's length comes from BlockCfg.StaticLen instead.
func typeLen(t BlockType, staticLen int) int {
	switch t {
	case I16:
		return 2
	case I32, U32, F32, BYTES4:
		return 4
	case StaticSlice:
		return staticLen
	case None:
		return 0
	default:
		return 0
	}
}

// BlockCfg is one row of the build-time block configuration table: a
// type and whether its label byte precedes the payload on the wire.
// StaticLen is only consulted when Type == StaticSlice.
type BlockCfg struct {
	Type          BlockType
	TransmitLabel bool
	StaticLen     int
}

// BlockIdent is one fully positioned entry of the folded layout table.
type BlockIdent struct {
	Type          BlockType
	Label         byte
	TransmitLabel bool
	StaticLen     int
	Begin, End    int
}

// Size is End - Begin: the header byte (if any) plus payload plus
// delimiter.
func (b BlockIdent) Size() int {
	return b.End - b.Begin
}

// PayloadLen is the declared payload length, independent of whether a
// label byte precedes it.
func (b BlockIdent) PayloadLen() int {
	return typeLen(b.Type, b.StaticLen)
}

// Layout is the fully folded, positioned description of a bare
// message: the header/trailer envelope plus the block table.
type Layout struct {
	NBare       int
	Callsign    [6]byte
	StartHeader []byte
	EndHeader   []byte
	Blocks      []BlockIdent
}

// Build folds cfg into a Layout against message length nBare and
// station callsign. It returns packeterr.ErrLayoutMismatch if the
// blocks plus header/trailer/delimiters don't sum to exactly nBare.
func Build(cfg []BlockCfg, nBare int, callsign [6]byte) (Layout, error) {
	startHeader := []byte{0xE4, 0x1B, callsign[0], callsign[1], callsign[2], callsign[3], callsign[4], callsign[5]}
	endHeader := []byte{callsign[0], callsign[1], callsign[2], callsign[3], callsign[4], callsign[5], 0xE4, 0x1B}

	blocks := make([]BlockIdent, len(cfg))
	offset := len(startHeader) + DelimLen

	for i, c := range cfg {
		headerByte := 0
		if c.TransmitLabel {
			headerByte = 1
		}
		size := headerByte + typeLen(c.Type, c.StaticLen) + DelimLen

		blocks[i] = BlockIdent{
			Type:          c.Type,
			Label:         byte(L0 + i),
			TransmitLabel: c.TransmitLabel,
			StaticLen:     c.StaticLen,
			Begin:         offset,
			End:           offset + size,
		}
		offset += size
	}

	want := nBare - len(endHeader) - DelimLen
	if offset != want {
		return Layout{}, packeterr.ErrLayoutMismatch
	}

	return Layout{
		NBare:       nBare,
		Callsign:    callsign,
		StartHeader: startHeader,
		EndHeader:   endHeader,
		Blocks:      blocks,
	}, nil
}
