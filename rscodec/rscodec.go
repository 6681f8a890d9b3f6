// Package rscodec appends and recovers the Reed-Solomon parity bytes
// protecting a bare message, plus the structural-skeleton repair pass
// ahead of decode.
//
// The RS layer (gf256.go, poly.go, rs.go) is a from-scratch classical
// errors-and-erasures codec, grounded on the same algorithm family as
// _examples/original_source's Rust reed_solomon crate (Berlekamp-Massey
// over GF(2^8), following Phil Karn's librs lineage): with no erasures
// it can correct floor(nFec/2) payload errors whose positions are not
// known in advance, and in general any mix of errors and caller-supplied
// erasures with 2*errors + erasures <= nFec.
// github.com/klauspost/reedsolomon, by contrast, is purely an erasure
// codec — its Reconstruct only ever fixes shard positions already
// named as missing, with no capacity to locate an unknown error, so it
// cannot provide that baseline correction capacity by itself.
package rscodec

import (
	"github.com/kd9tfa/hab-telemetry/layout"
	"github.com/kd9tfa/hab-telemetry/packet"
	"github.com/kd9tfa/hab-telemetry/packeterr"
)

// DefaultNFec is the default parity length, at the low end of spec.md's
// "typically 16-19" range.
const DefaultNFec = 16

// FullMessage is a BareMessage with N_fec parity bytes appended.
type FullMessage []byte

// Encode appends nFec parity bytes to bare, producing a FullMessage of
// len(bare)+nFec bytes.
func Encode(bare packet.BareMessage, nFec int) (FullMessage, error) {
	if len(bare)+nFec > fieldCharac {
		return nil, packeterr.ErrLayoutMismatch
	}
	return FullMessage(encodeData(bare, nFec)), nil
}

// syntheticBlocks builds a block list matching l's declared payload
// lengths, each payload byte set to fill. Used to construct the
// min/max synthetic packets for skeleton repair.
func syntheticBlocks(l layout.Layout, fill byte) []packet.Block {
	blocks := make([]packet.Block, len(l.Blocks))
	for i, ident := range l.Blocks {
		payload := make([]byte, ident.PayloadLen())
		for j := range payload {
			payload[j] = fill
		}
		blocks[i] = packet.Block{Payload: payload}
	}
	return blocks
}

// SkeletonMask computes the structural-invariance mask described in
// spec.md §4.3: position i is 0 where a byte of the bare message is
// fixed by the layout (headers, labels, delimiters) regardless of
// payload, and nonzero where it depends on payload.
//
// spec.md's formula is `(bare_skel XOR max_pkt) AND NOT (bare_skel XOR
// min_pkt)` with bare_skel defined as the min packet itself — which
// makes the second term always zero, so the whole expression reduces
// to `min_pkt XOR max_pkt`. That's what's computed here.
func SkeletonMask(l layout.Layout) []byte {
	minPkt := packet.Assemble(l, syntheticBlocks(l, 0x00))
	maxPkt := packet.Assemble(l, syntheticBlocks(l, 0xFF))

	mask := make([]byte, len(minPkt))
	for i := range mask {
		mask[i] = minPkt[i] ^ maxPkt[i]
	}
	return mask
}

// repairStructural returns a copy of full whose bare-message portion
// has every structurally-invariant byte (per mask) overwritten with
// its known-correct value from skeleton, and every payload-dependent
// byte left as received. The parity portion is left untouched.
func repairStructural(full FullMessage, skeleton, mask []byte) []byte {
	out := make([]byte, len(full))
	copy(out, full)

	for i := range mask {
		if mask[i] == 0 {
			out[i] = skeleton[i]
		}
	}
	return out
}

// Decode recovers a BareMessage from a possibly-corrupted FullMessage,
// applying skeleton repair before handing the remaining bytes to the
// RS decoder. erasures are byte positions (into the full message,
// bare+parity) the caller already knows are unreliable; they are
// always treated as unknown regardless of skeleton repair.
//
// Returns packeterr.ErrDecodeUncorrectable if the message cannot be
// recovered: more than nFec/2 unknown-position payload errors (beyond
// what skeleton repair already fixed directly), combined with any
// caller-supplied erasures, exceed the code's correction bound.
func Decode(l layout.Layout, full FullMessage, erasures []int) (packet.BareMessage, error) {
	nBare := l.NBare
	nFec := len(full) - nBare

	skeleton := packet.Assemble(l, syntheticBlocks(l, 0x00))
	mask := SkeletonMask(l)
	repaired := repairStructural(full, skeleton, mask)

	validErasures := make([]int, 0, len(erasures))
	for _, idx := range erasures {
		if idx >= 0 && idx < len(repaired) {
			validErasures = append(validErasures, idx)
		}
	}

	corrected, err := correctMessage(repaired, nFec, validErasures)
	if err != nil {
		return nil, err
	}

	return packet.BareMessage(corrected[:nBare]), nil
}
